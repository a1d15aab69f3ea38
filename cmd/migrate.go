package cmd

import (
	"fmt"

	"league-sync/core/config"
	"league-sync/core/database"
	"league-sync/core/logger"
	"league-sync/feature/league"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCmd creates or updates the league store tables.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the league store schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".", databaseBindings(cmd)...)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		l, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer l.Sync()

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}

		repo := league.NewRepository(db)
		if err := repo.Migrate(); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		if err := repo.VerifySchema(); err != nil {
			return err
		}

		l.Info("Schema up to date", zap.String("driver", cfg.Database.Driver), zap.String("database", cfg.Database.Name))
		return nil
	},
}

func init() {
	addDatabaseFlags(migrateCmd.Flags())
	RootCmd.AddCommand(migrateCmd)
}
