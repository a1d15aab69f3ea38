package reconcile

import (
	"fmt"
	"sort"
	"strings"
)

// Tally counts outcomes for one kind.
type Tally struct {
	Created   int `json:"created"`
	Existing  int `json:"existing"`
	Conflicts int `json:"conflicts"`
	Upserted  int `json:"upserted"`
}

// Report aggregates decisions and warnings for one run.
type Report struct {
	Kinds     map[Kind]*Tally `json:"kinds"`
	Conflicts []Decision      `json:"conflicts"`
	Warnings  []Warning       `json:"warnings"`
}

// NewReport returns an empty report.
func NewReport() *Report {
	return &Report{Kinds: make(map[Kind]*Tally)}
}

// Add tallies one decision.
func (r *Report) Add(d Decision) {
	t := r.tally(d.Kind)
	switch d.Outcome {
	case OutcomeCreate:
		t.Created++
	case OutcomeSkipExisting:
		t.Existing++
	case OutcomeSkipConflict:
		t.Conflicts++
		r.Conflicts = append(r.Conflicts, d)
	case OutcomeUpsert:
		t.Upserted++
	}
}

// AddWarning appends an advisory warning.
func (r *Report) AddWarning(w Warning) {
	r.Warnings = append(r.Warnings, w)
}

// Tally returns the counts for kind. The zero Tally is returned for kinds never seen.
func (r *Report) Tally(kind Kind) Tally {
	if t, ok := r.Kinds[kind]; ok {
		return *t
	}
	return Tally{}
}

// WarningsOf returns warnings of the given class in the order raised.
func (r *Report) WarningsOf(class WarningClass) []Warning {
	var out []Warning
	for _, w := range r.Warnings {
		if w.Class == class {
			out = append(out, w)
		}
	}
	return out
}

// Writes is the number of decisions that caused a write.
func (r *Report) Writes() int {
	n := 0
	for _, t := range r.Kinds {
		n += t.Created + t.Upserted
	}
	return n
}

// Summary renders a one-line overview, kinds in alphabetical order.
func (r *Report) Summary() string {
	kinds := make([]string, 0, len(r.Kinds))
	for k := range r.Kinds {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)

	parts := make([]string, 0, len(kinds)+1)
	for _, k := range kinds {
		t := r.Kinds[Kind(k)]
		parts = append(parts, fmt.Sprintf("%s: %d created, %d existing, %d conflicts, %d upserted",
			k, t.Created, t.Existing, t.Conflicts, t.Upserted))
	}
	parts = append(parts, fmt.Sprintf("%d warnings", len(r.Warnings)))
	return strings.Join(parts, "; ")
}

func (r *Report) tally(kind Kind) *Tally {
	t, ok := r.Kinds[kind]
	if !ok {
		t = &Tally{}
		r.Kinds[kind] = t
	}
	return t
}
