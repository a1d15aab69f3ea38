package cmd

import (
	"league-sync/core/config"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// addDatabaseFlags registers the --db-* overrides on fs.
func addDatabaseFlags(fs *pflag.FlagSet) {
	fs.String("db-driver", "", "Database driver (mysql, sqlite)")
	fs.String("db-host", "", "Database host")
	fs.Int("db-port", 0, "Database port")
	fs.String("db-user", "", "Database user")
	fs.String("db-password", "", "Database password")
	fs.String("db-name", "", "Database name, or file path for sqlite")
}

// databaseBindings maps the --db-* flags onto the database config section.
// Only flags the user actually set override the environment.
func databaseBindings(cmd *cobra.Command) []config.Binding {
	return changed(cmd, map[string]string{
		"db-driver":   "database.driver",
		"db-host":     "database.host",
		"db-port":     "database.port",
		"db-user":     "database.user",
		"db-password": "database.password",
		"db-name":     "database.name",
	})
}

func changed(cmd *cobra.Command, keys map[string]string) []config.Binding {
	var out []config.Binding
	for name, key := range keys {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			out = append(out, config.Binding{Key: key, Flag: f})
		}
	}
	return out
}
