package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"league-sync/core/apa"
	"league-sync/core/config"
	"league-sync/core/database"
	"league-sync/core/logger"
	"league-sync/core/reconcile"
	"league-sync/core/storage"
	"league-sync/feature/importer"
	"league-sync/feature/league"
	"league-sync/feature/snapshot"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	divisionID   int
	divisionName string
	divisionRef  string
	sessionID    string
	whatIf       bool
	archiveRun   bool
	fromSnapshot string
)

// importCmd is the parent command for the import drivers.
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import league data from the league API",
	Long: `Import a division's rosters or schedule.

Existing records are reported and left untouched. Use --what-if to see what
an import would create without writing anything.`,
}

var importRosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Import a division, its teams, players and memberships",
	Long: `Import a division with every team roster.

Examples:
  # Preview without writing
  league-sync import roster --division-id 418320 --division-name "Tuesday 8-Ball" --what-if

  # Import into an existing division and archive the payload
  league-sync import roster --division-id 418320 --division-ref div_tuesday --archive`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return validateRosterFlags(divisionName, divisionRef)
	},
	RunE: runImportRoster,
}

var importScheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Import a division's weekly match schedule",
	Long: `Import every playable week of a division's schedule.

Run the roster import first: matches are linked to stored teams by team number.

Examples:
  league-sync import schedule --division-id 418320 --session-id sess_2025_spring
  league-sync import schedule --division-id 418320 --session-id sess_2025_spring --from-snapshot latest`,
	RunE: runImportSchedule,
}

func init() {
	pf := importCmd.PersistentFlags()
	pf.IntVar(&divisionID, "division-id", 0, "Upstream division id")
	pf.StringVar(&divisionRef, "division-ref", "", "Existing division id to import into instead of creating one")
	pf.BoolVar(&whatIf, "what-if", false, "Report what would be written without writing")
	pf.BoolVar(&whatIf, "dry-run", false, "Alias for --what-if")
	pf.BoolVar(&archiveRun, "archive", false, "Archive the fetched payload to object storage")
	pf.StringVar(&fromSnapshot, "from-snapshot", "", "Replay an archived payload (object key or 'latest') instead of calling the API")
	pf.String("refresh-token", "", "Refresh token for the league API (default from APA_REFRESH_TOKEN)")
	addDatabaseFlags(pf)

	importRosterCmd.Flags().StringVar(&divisionName, "division-name", "", "Human-readable division name (required unless --division-ref is set)")
	importScheduleCmd.Flags().StringVar(&sessionID, "session-id", "", "League session the matches belong to")
	_ = importScheduleCmd.MarkFlagRequired("session-id")

	importCmd.AddCommand(importRosterCmd, importScheduleCmd)
	RootCmd.AddCommand(importCmd)
}

// validateRosterFlags requires a division name whenever the roster import
// creates the division. Divisions are never updated, so a blank name would stick.
func validateRosterFlags(name, ref string) error {
	if ref == "" && strings.TrimSpace(name) == "" {
		return fmt.Errorf("--division-name is required unless --division-ref is set")
	}
	return nil
}

// importEnv is everything a driver run needs, built from config and flags.
type importEnv struct {
	logger   *zap.Logger
	importer *importer.Importer
}

func setupImport(ctx context.Context, cmd *cobra.Command) (*importEnv, error) {
	if divisionID <= 0 {
		return nil, fmt.Errorf("--division-id is required")
	}

	bindings := databaseBindings(cmd)
	bindings = append(bindings, changed(cmd, map[string]string{"refresh-token": "apa.refresh_token"})...)

	cfg, err := config.LoadConfig(".", bindings...)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	var store importer.Store
	if db, err := database.Connect(cfg.Database); err != nil {
		if !whatIf {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		l.Warn("Database unavailable, simulating against an empty store", zap.Error(err))
	} else {
		repo := league.NewRepository(db)
		if err := repo.VerifySchema(); err != nil {
			return nil, fmt.Errorf("%w (run 'league-sync migrate')", err)
		}
		store = league.NewStore(repo)
	}

	source, err := buildSource(ctx, cfg, l)
	if err != nil {
		return nil, err
	}

	return &importEnv{logger: l, importer: importer.New(source, store, l)}, nil
}

func buildSource(ctx context.Context, cfg *config.Config, l *zap.Logger) (importer.Source, error) {
	var archive *snapshot.Archive
	if archiveRun || fromSnapshot != "" {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to storage: %w", err)
		}
		archive = snapshot.NewArchive(client, cfg.Storage, l)

		if fromSnapshot != "" {
			l.Info("Replaying archived payload", zap.String("snapshot", fromSnapshot))
			return snapshot.NewReplay(archive, fromSnapshot), nil
		}
		if err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
			return nil, err
		}
	}

	client := apa.NewClient(cfg.APA, l)
	if _, err := client.Authenticate(ctx, cfg.APA.RefreshToken); err != nil {
		return nil, fmt.Errorf("failed to authenticate: %w", err)
	}

	if archive != nil {
		return snapshot.NewArchiving(client, archive), nil
	}
	return client, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func runImportRoster(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	env, err := setupImport(ctx, cmd)
	if err != nil {
		return err
	}
	defer env.logger.Sync()

	res, err := env.importer.ImportRoster(ctx, importer.RosterOptions{
		DivisionID:   divisionID,
		DivisionName: divisionName,
		DivisionRef:  divisionRef,
		DryRun:       whatIf,
	})
	if err != nil {
		return fmt.Errorf("roster import failed: %w", err)
	}

	printImportReport(env.logger, res)
	return nil
}

func runImportSchedule(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	env, err := setupImport(ctx, cmd)
	if err != nil {
		return err
	}
	defer env.logger.Sync()

	res, err := env.importer.ImportSchedule(ctx, importer.ScheduleOptions{
		DivisionID:  divisionID,
		SessionID:   sessionID,
		DivisionRef: divisionRef,
		DryRun:      whatIf,
	})
	if err != nil {
		return fmt.Errorf("schedule import failed: %w", err)
	}

	printImportReport(env.logger, res)
	return nil
}

// printImportReport prints a formatted import report using logger.
func printImportReport(l *zap.Logger, res *importer.Result) {
	l.Info("Import report",
		zap.String("kind", res.Kind),
		zap.String("division", res.DivisionID),
		zap.Bool("dry_run", res.DryRun),
		zap.Duration("took", res.FinishedAt.Sub(res.StartedAt)),
		zap.String("summary", res.Summary()),
	)

	for _, kind := range []reconcile.Kind{
		reconcile.KindDivision, reconcile.KindTeam, reconcile.KindPlayer, reconcile.KindMembership, reconcile.KindMatch,
	} {
		t := res.Report.Tally(kind)
		if t == (reconcile.Tally{}) {
			continue
		}
		l.Info("Totals",
			zap.String("kind", string(kind)),
			zap.Int("created", t.Created),
			zap.Int("existing", t.Existing),
			zap.Int("conflicts", t.Conflicts),
			zap.Int("upserted", t.Upserted),
		)
	}

	for _, c := range res.Report.Conflicts {
		l.Warn("Conflict left untouched",
			zap.String("kind", string(c.Kind)),
			zap.String("key", c.Key),
			zap.Strings("differences", c.Differences),
		)
	}

	if n := len(res.Report.Warnings); n > 0 {
		l.Warn("Import finished with warnings", zap.Int("count", n))
	}

	if res.DryRun {
		l.Info("Dry-run mode: No changes were made.", zap.Int("would_write", len(res.Intents)))
	}
}
