package reconcile

import (
	"context"
	"errors"
)

// Kind names the entity family a record belongs to.
type Kind string

const (
	KindDivision   Kind = "division"
	KindTeam       Kind = "team"
	KindPlayer     Kind = "player"
	KindMembership Kind = "membership"
	KindMatch      Kind = "match"
)

// Record is a canonical entity ready to be reconciled.
type Record interface {
	// Kind reports the entity family.
	Kind() Kind

	// Key is the synthetic id the record is stored under.
	Key() string

	// NaturalKey is the identity used to find an existing record.
	// For most kinds it equals Key; teams use (apaTeamId, divisionId).
	NaturalKey() string
}

// Comparer is implemented by records that can detect divergence from a
// stored copy. A non-empty result turns skip_existing into skip_conflict.
type Comparer interface {
	CompareFields(existing Record) []string
}

// Named is implemented by records whose display name is checked against the
// stored copy. A mismatch produces a warning, never a write.
type Named interface {
	FullName() string
}

// Store is the persistence capability the engine reconciles against.
type Store interface {
	// Lookup returns the stored record sharing rec's kind and natural key,
	// or (nil, nil) when none exists.
	Lookup(ctx context.Context, rec Record) (Record, error)

	// Write persists rec. Create-once kinds must return ErrConflict instead
	// of replacing a stored record with the same key.
	Write(ctx context.Context, rec Record) error
}

// ErrConflict is returned by Store.Write when the record's key is already
// taken by a row the lookup did not match. The engine reports it as
// skip_conflict and the stored row stays as it is.
var ErrConflict = errors.New("key already taken")

// Outcome is the decision taken for one record.
type Outcome string

const (
	OutcomeCreate       Outcome = "create"
	OutcomeSkipExisting Outcome = "skip_existing"
	OutcomeSkipConflict Outcome = "skip_conflict"
	OutcomeUpsert       Outcome = "upsert"
)

// Decision describes how one record was reconciled.
type Decision struct {
	Kind    Kind    `json:"kind"`
	Key     string  `json:"key"`
	Outcome Outcome `json:"outcome"`

	// Existing is the stored record, nil on create and upsert.
	Existing Record `json:"-"`

	// Differences lists divergent fields for skip_conflict, e.g. "status: stored=scheduled incoming=completed".
	Differences []string `json:"differences,omitempty"`
}

// Written reports whether the decision caused a write.
func (d Decision) Written() bool {
	return d.Outcome == OutcomeCreate || d.Outcome == OutcomeUpsert
}

// WarningClass groups advisory warnings for reporting.
type WarningClass string

const (
	WarnNameMismatch     WarningClass = "name_mismatch"
	WarnTeamNotFound     WarningClass = "team_not_found"
	WarnBye              WarningClass = "bye"
	WarnMissingRoster    WarningClass = "missing_roster"
	WarnInvalidRecord    WarningClass = "invalid_record"
	WarnScheduleFallback WarningClass = "schedule_fallback"
)

// Warning is an advisory note. It never changes what was written.
type Warning struct {
	Class    WarningClass `json:"class"`
	Key      string       `json:"key"`
	Message  string       `json:"message"`
	Incoming string       `json:"incoming,omitempty"`
	Stored   string       `json:"stored,omitempty"`
}
