package reconcile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
)

// Engine applies the create / skip / upsert policy against a Store and
// tallies every decision into its Report.
type Engine struct {
	store  Store
	report *Report
	logger *zap.Logger
}

// NewEngine creates an engine over store. A nil logger is replaced with a no-op one.
func NewEngine(store Store, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{store: store, report: NewReport(), logger: logger}
}

// Report returns the running tally.
func (e *Engine) Report() *Report {
	return e.report
}

// Warn records an advisory warning raised outside the engine.
func (e *Engine) Warn(w Warning) {
	e.report.AddWarning(w)
	e.logger.Warn(w.Message, zap.String("class", string(w.Class)), zap.String("key", w.Key))
}

// Reconcile writes rec only when nothing with its identity exists yet.
func (e *Engine) Reconcile(ctx context.Context, rec Record) (Decision, error) {
	d, found, err := e.Match(ctx, rec)
	if err != nil || found {
		return d, err
	}
	return e.Create(ctx, rec)
}

// Match compares rec with its stored copy without writing. When a copy exists
// the skip_existing or skip_conflict decision is recorded and found is true.
// Nothing is recorded when found is false.
func (e *Engine) Match(ctx context.Context, rec Record) (d Decision, found bool, err error) {
	existing, err := e.store.Lookup(ctx, rec)
	if err != nil {
		return Decision{}, false, fmt.Errorf("lookup %s %s: %w", rec.Kind(), rec.Key(), err)
	}
	if existing == nil {
		return Decision{}, false, nil
	}

	d = Decision{Kind: rec.Kind(), Key: rec.Key(), Existing: existing, Outcome: OutcomeSkipExisting}

	if named, ok := rec.(Named); ok {
		if stored, ok := existing.(Named); ok {
			e.checkName(rec.Key(), named.FullName(), stored.FullName())
		}
	}

	if cmp, ok := rec.(Comparer); ok {
		if diffs := cmp.CompareFields(existing); len(diffs) > 0 {
			d.Outcome = OutcomeSkipConflict
			d.Differences = diffs
		}
	}

	e.record(d)
	return d, true, nil
}

// Create writes rec after a Match found nothing. A store reporting
// ErrConflict turns the decision into skip_conflict.
func (e *Engine) Create(ctx context.Context, rec Record) (Decision, error) {
	d := Decision{Kind: rec.Kind(), Key: rec.Key(), Outcome: OutcomeCreate}
	if err := e.store.Write(ctx, rec); err != nil {
		if !errors.Is(err, ErrConflict) {
			return Decision{}, fmt.Errorf("write %s %s: %w", rec.Kind(), rec.Key(), err)
		}
		d.Outcome = OutcomeSkipConflict
		d.Differences = []string{fmt.Sprintf("key: %s already stored", rec.Key())}
	}
	e.record(d)
	return d, nil
}

// Upsert writes rec unconditionally.
func (e *Engine) Upsert(ctx context.Context, rec Record) (Decision, error) {
	if err := e.store.Write(ctx, rec); err != nil {
		return Decision{}, fmt.Errorf("upsert %s %s: %w", rec.Kind(), rec.Key(), err)
	}
	d := Decision{Kind: rec.Kind(), Key: rec.Key(), Outcome: OutcomeUpsert}
	e.record(d)
	return d, nil
}

func (e *Engine) record(d Decision) {
	e.report.Add(d)
	fields := []zap.Field{
		zap.String("kind", string(d.Kind)),
		zap.String("key", d.Key),
		zap.String("outcome", string(d.Outcome)),
	}
	if len(d.Differences) > 0 {
		fields = append(fields, zap.Strings("differences", d.Differences))
	}
	e.logger.Debug("Reconciled record", fields...)
}

func (e *Engine) checkName(key, incoming, stored string) {
	if NormalizeName(incoming) == NormalizeName(stored) {
		return
	}
	distance := fuzzy.LevenshteinDistance(NormalizeName(incoming), NormalizeName(stored))
	e.Warn(Warning{
		Class:    WarnNameMismatch,
		Key:      key,
		Message:  fmt.Sprintf("Name mismatch for %s (edit distance %d): stored %q, incoming %q", key, distance, stored, incoming),
		Incoming: incoming,
		Stored:   stored,
	})
}

// NormalizeName case-folds name and collapses whitespace runs so that
// cosmetic differences do not count as a mismatch.
func NormalizeName(name string) string {
	return cases.Fold().String(strings.Join(strings.Fields(name), " "))
}
