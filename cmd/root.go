package cmd

import (
	"fmt"
	"os"

	"league-sync/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "league-sync",
	Short: "League roster and schedule importer",
	Long: `league-sync imports pool league divisions, team rosters and weekly
schedules from the league GraphQL API into the league store.

Imports are idempotent: records that already exist are never overwritten,
so lineups and scores entered locally survive repeated runs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console encoding with the development preset gives readable CLI errors.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
