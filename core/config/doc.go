// Package config loads league-sync settings.
//
// Values come from struct tag defaults, then a .env file, then environment
// variables, then any command-line flags passed as Bindings. Sections:
//
//   - server: HTTP API listen address and API key
//   - database: league store driver and connection
//   - storage: snapshot bucket (S3/MinIO)
//   - log: level and format
//   - apa: GraphQL endpoint, client headers, refresh token and rate limit
//
// Environment names are the upper-cased keys with dots replaced by
// underscores, e.g. APA_REFRESH_TOKEN or DATABASE_DRIVER.
//
//	cfg, err := config.LoadConfig(".", config.Binding{Key: "apa.refresh_token", Flag: cmd.Flags().Lookup("refresh-token")})
package config
