package importer

import (
	"fmt"
	"time"

	"league-sync/core/reconcile"
)

// Result describes one import run. Each driver call returns its own Result;
// nothing is shared between runs.
type Result struct {
	RunID      string    `json:"runId"`
	Kind       string    `json:"kind"`
	DryRun     bool      `json:"dryRun"`
	DivisionID string    `json:"divisionId"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`

	// Report holds per-kind outcome tallies and advisory warnings.
	Report *reconcile.Report `json:"report"`

	TeamsSkipped      int `json:"teamsSkipped"`
	PlayersSkipped    int `json:"playersSkipped"`
	WeeksProcessed    int `json:"weeksProcessed"`
	WeeksSkipped      int `json:"weeksSkipped"`
	ByeSkips          int `json:"byeSkips"`
	TeamNotFound      int `json:"teamNotFound"`
	ScheduleFallbacks int `json:"scheduleFallbacks"`

	// Intents lists the writes a dry run would have made.
	Intents []reconcile.Intent `json:"intents,omitempty"`
}

// Created returns the number of records of kind created (or that would be).
func (r *Result) Created(kind reconcile.Kind) int {
	return r.Report.Tally(kind).Created
}

// Summary returns a one-line overview of the run.
func (r *Result) Summary() string {
	switch r.Kind {
	case KindSchedule:
		m := r.Report.Tally(reconcile.KindMatch)
		return fmt.Sprintf(
			"weeks=%d weeks_skipped=%d matches_created=%d matches_existing=%d matches_conflict=%d byes=%d team_not_found=%d time_fallbacks=%d warnings=%d",
			r.WeeksProcessed, r.WeeksSkipped, m.Created, m.Existing, m.Conflicts,
			r.ByeSkips, r.TeamNotFound, r.ScheduleFallbacks, len(r.Report.Warnings),
		)
	default:
		d := r.Report.Tally(reconcile.KindDivision)
		t := r.Report.Tally(reconcile.KindTeam)
		p := r.Report.Tally(reconcile.KindPlayer)
		return fmt.Sprintf(
			"divisions=%d teams_created=%d teams_existing=%d teams_conflict=%d teams_skipped=%d byes=%d players_created=%d players_existing=%d players_skipped=%d memberships=%d warnings=%d",
			d.Created, t.Created, t.Existing, t.Conflicts, r.TeamsSkipped, r.ByeSkips,
			p.Created, p.Existing, r.PlayersSkipped,
			r.Report.Tally(reconcile.KindMembership).Upserted, len(r.Report.Warnings),
		)
	}
}
