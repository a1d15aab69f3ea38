package reconcile

import (
	"context"
	"errors"
	"fmt"
)

type fakeRecord struct {
	kind    Kind
	key     string
	natural string
	name    string
	status  string
}

func (f *fakeRecord) Kind() Kind { return f.kind }
func (f *fakeRecord) Key() string { return f.key }

func (f *fakeRecord) NaturalKey() string {
	if f.natural != "" {
		return f.natural
	}
	return f.key
}

type namedRecord struct{ fakeRecord }

func (n *namedRecord) FullName() string { return n.name }

type statusRecord struct{ fakeRecord }

func (s *statusRecord) CompareFields(existing Record) []string {
	stored, ok := existing.(*statusRecord)
	if !ok || stored.status == s.status {
		return nil
	}
	return []string{fmt.Sprintf("status: stored=%s incoming=%s", stored.status, s.status)}
}

// memoryStore is a map-backed Store keyed by kind and natural key.
type memoryStore struct {
	records  map[string]Record
	writes   int
	failWith error
	// taken holds keys a Write must refuse with ErrConflict.
	taken map[string]bool
}

func newMemoryStore() *memoryStore {
	return &memoryStore{records: make(map[string]Record)}
}

func (m *memoryStore) Lookup(_ context.Context, rec Record) (Record, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	return m.records[intentKey(rec.Kind(), rec.NaturalKey())], nil
}

func (m *memoryStore) Write(_ context.Context, rec Record) error {
	if m.failWith != nil {
		return m.failWith
	}
	if m.taken[rec.Key()] {
		return fmt.Errorf("insert %s: %w", rec.Key(), ErrConflict)
	}
	m.writes++
	m.records[intentKey(rec.Kind(), rec.NaturalKey())] = rec
	return nil
}

var errStoreDown = errors.New("store down")
