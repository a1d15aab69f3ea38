package cmd

import (
	"context"
	"fmt"

	"league-sync/core/config"
	"league-sync/core/database"
	"league-sync/core/logger"
	"league-sync/core/storage"
	"league-sync/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the league store schema and the snapshot bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, true, true)
	},
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the league store schema against the models",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, true, false)
	},
}

var storageCmd = &cobra.Command{
	Use:   "storage",
	Short: "Check the snapshot bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(schemaCmd, storageCmd)

	addDatabaseFlags(integrityCmd.PersistentFlags())
	storageCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the bucket if missing")
}

func runIntegrityChecks(cmd *cobra.Command, runSchema, runStorage bool) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.LoadConfig(".", databaseBindings(cmd)...)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logg.Sync()

	var db *gorm.DB
	if runSchema {
		if db, err = database.Connect(cfg.Database); err != nil {
			return fmt.Errorf("database connection required: %w", err)
		}
	}

	var client storage.Client
	if runStorage {
		if client, err = storage.NewClient(cfg.Storage); err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
	}

	svc := integrity.NewService(db, client, cfg.Storage, logg)

	if runSchema {
		logg.Info("Checking league store schema...", zap.String("driver", cfg.Database.Driver))
		report, err := svc.CheckSchema()
		if err != nil {
			return fmt.Errorf("schema check failed: %w", err)
		}
		if report.Matched {
			logg.Info("Schema matches the league models.")
		} else {
			logg.Warn("Schema mismatches found")
			for table, tbl := range report.Tables {
				if tbl.Status != "ok" {
					logg.Warn("Missing Columns", zap.String("table", table), zap.String("status", tbl.Status), zap.Strings("columns", tbl.MissingColumns))
				}
			}
			for _, e := range report.Errors {
				logg.Error("Inspection Error", zap.String("error", e))
			}
			logg.Info("Run 'league-sync migrate' to update the schema.")
		}
	}

	if runStorage {
		logg.Info("Checking snapshot bucket...", zap.String("bucket", cfg.Storage.Bucket))
		report, err := svc.CheckStorage(ctx)
		if err != nil {
			return fmt.Errorf("storage check failed: %w", err)
		}
		switch {
		case report.Exists:
			logg.Info("Snapshot bucket is present.", zap.Any("snapshots", report.Snapshots))
		case fixFlag:
			logg.Info("Creating snapshot bucket...")
			if err := svc.FixStorage(ctx); err != nil {
				return fmt.Errorf("failed to create bucket: %w", err)
			}
			logg.Info("Snapshot bucket created.")
		default:
			logg.Warn("Snapshot bucket is missing. Run with --fix to create it.")
		}
	}

	return nil
}
