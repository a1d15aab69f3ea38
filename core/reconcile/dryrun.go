package reconcile

import (
	"context"
	"sync"
)

// Intent is a write a dry run would have performed.
type Intent struct {
	Kind   Kind   `json:"kind"`
	Key    string `json:"key"`
	Record Record `json:"record"`
}

// DryRun is a Store that records writes instead of persisting them.
// Lookups see recorded intents first, then the base reader.
type DryRun struct {
	base Store

	mu      sync.Mutex
	intents []Intent
	index   map[string]int
}

// NewDryRun wraps base for read access. base may be nil, in which case the
// dry run behaves like an empty store.
func NewDryRun(base Store) *DryRun {
	return &DryRun{base: base, index: make(map[string]int)}
}

func intentKey(kind Kind, naturalKey string) string {
	return string(kind) + "|" + naturalKey
}

// Lookup implements Store.
func (d *DryRun) Lookup(ctx context.Context, rec Record) (Record, error) {
	d.mu.Lock()
	i, ok := d.index[intentKey(rec.Kind(), rec.NaturalKey())]
	var recorded Record
	if ok {
		recorded = d.intents[i].Record
	}
	d.mu.Unlock()

	if recorded != nil {
		return recorded, nil
	}
	if d.base == nil {
		return nil, nil
	}
	return d.base.Lookup(ctx, rec)
}

// Write implements Store. Nothing is persisted.
func (d *DryRun) Write(_ context.Context, rec Record) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.intents = append(d.intents, Intent{Kind: rec.Kind(), Key: rec.Key(), Record: rec})
	d.index[intentKey(rec.Kind(), rec.NaturalKey())] = len(d.intents) - 1
	return nil
}

// Intents returns the recorded intents in write order.
func (d *DryRun) Intents() []Intent {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]Intent, len(d.intents))
	copy(out, d.intents)
	return out
}
