package importer

import (
	"context"
	"errors"
	"time"

	"league-sync/core/apa"
	"league-sync/core/logger"
	"league-sync/core/reconcile"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	KindRoster   = "roster"
	KindSchedule = "schedule"
)

// ErrNoStore is returned when a real run is requested without a store.
var ErrNoStore = errors.New("a league store is required unless running in dry-run mode")

// Source supplies division payloads, either from the live API or a snapshot.
type Source interface {
	FetchRoster(ctx context.Context, divisionID int) (*apa.Division, error)
	FetchSchedule(ctx context.Context, divisionID int) (*apa.Division, error)
}

// Store is the persisted league store as seen by the importer.
type Store interface {
	reconcile.Store
	TeamLister
}

// Importer runs roster and schedule imports.
type Importer struct {
	source Source
	store  Store
	logger *zap.Logger
	clock  func() time.Time
}

// New creates an importer. store may be nil for dry runs, which then behave
// as if the store were empty.
func New(source Source, store Store, logger *zap.Logger) *Importer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Importer{
		source: source,
		store:  store,
		logger: logger,
		clock:  func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the run timestamp source.
func (i *Importer) WithClock(clock func() time.Time) *Importer {
	i.clock = clock
	return i
}

// run is the state of a single driver call.
type run struct {
	result *Result
	engine *reconcile.Engine
	dry    *reconcile.DryRun
	logger *zap.Logger
	runAt  time.Time
}

func (i *Importer) begin(kind string, dryRun bool) (*run, error) {
	runAt := i.clock()
	runID := uuid.NewString()
	log := logger.WithRun(i.logger, runID, dryRun).With(zap.String("import", kind))

	r := &run{
		result: &Result{RunID: runID, Kind: kind, DryRun: dryRun, StartedAt: runAt},
		logger: log,
		runAt:  runAt,
	}

	var store reconcile.Store
	switch {
	case dryRun:
		var base reconcile.Store
		if i.store != nil {
			base = i.store
		}
		r.dry = reconcile.NewDryRun(base)
		store = r.dry
		log.Info("Dry run: no changes will be written")
	case i.store == nil:
		return nil, ErrNoStore
	default:
		store = i.store
	}

	r.engine = reconcile.NewEngine(store, log)
	r.result.Report = r.engine.Report()
	return r, nil
}

func (r *run) warn(class reconcile.WarningClass, key, msg string) {
	r.engine.Warn(reconcile.Warning{Class: class, Key: key, Message: msg})
}

func (r *run) finish(now time.Time) *Result {
	r.result.FinishedAt = now
	if r.dry != nil {
		r.result.Intents = r.dry.Intents()
		for _, in := range r.result.Intents {
			r.logger.Debug("Would write", zap.String("kind", string(in.Kind)), zap.String("key", in.Key))
		}
	}
	r.logger.Info("Import finished", zap.String("summary", r.result.Summary()))
	return r.result
}
