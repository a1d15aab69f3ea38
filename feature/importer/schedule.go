package importer

import (
	"context"
	"fmt"
	"strconv"

	"league-sync/core/apa"
	"league-sync/core/identity"
	"league-sync/core/reconcile"

	"go.uber.org/zap"
)

// ScheduleOptions configures a schedule import.
type ScheduleOptions struct {
	// DivisionID is the upstream numeric division id.
	DivisionID int
	// SessionID links every imported match to a league session.
	SessionID string
	// DivisionRef overrides the division the matches belong to.
	DivisionRef string
	// DryRun reports decisions without writing. Team references then come
	// from the payload, since no roster import may have run yet.
	DryRun bool
}

// ImportSchedule imports a division's scheduled matches. Existing matches are
// never touched, so lineups and scores entered locally survive re-imports.
func (i *Importer) ImportSchedule(ctx context.Context, opts ScheduleOptions) (*Result, error) {
	r, err := i.begin(KindSchedule, opts.DryRun)
	if err != nil {
		return nil, err
	}

	payload, err := i.source.FetchSchedule(ctx, opts.DivisionID)
	if err != nil {
		return nil, fmt.Errorf("fetch schedule for division %d: %w", opts.DivisionID, err)
	}

	divisionID := opts.DivisionRef
	if divisionID == "" {
		divisionID = identity.DivisionID(strconv.Itoa(opts.DivisionID))
	}
	r.result.DivisionID = divisionID

	var teams TeamMap
	if opts.DryRun {
		teams = TeamMapFromPayload(payload.Teams)
		r.logger.Info("Simulated team mapping from payload", zap.Int("teams", len(teams)))
	} else {
		teams, err = TeamMapFromStore(ctx, i.store, divisionID)
		if err != nil {
			return nil, err
		}
		r.logger.Info("Built team mapping from store", zap.Int("teams", len(teams)))
	}

	for _, week := range payload.Schedule {
		if !week.Playable() {
			r.result.WeeksSkipped++
			r.logger.Info("Skipping week", zap.String("description", week.Description))
			continue
		}
		r.result.WeeksProcessed++

		scope := MatchScope{
			DivisionID: divisionID,
			SessionID:  opts.SessionID,
			Week:       *week.WeekOfPlay,
			Teams:      teams,
			RunAt:      r.runAt,
		}
		for _, m := range week.Matches {
			if err := r.importMatch(ctx, m, scope); err != nil {
				return nil, err
			}
		}
	}

	return r.finish(i.clock()), nil
}

func (r *run) importMatch(ctx context.Context, m apa.Match, scope MatchScope) error {
	if m.IsBye {
		r.result.ByeSkips++
		r.warn(reconcile.WarnBye, m.ID.String(), fmt.Sprintf("Week %d: skipping bye match", scope.Week))
		return nil
	}

	if _, _, ok := scope.Teams.Resolve(m.Home, m.Away); !ok {
		r.result.TeamNotFound++
		r.warn(reconcile.WarnTeamNotFound, m.ID.String(), fmt.Sprintf("Week %d: teams not found - %s vs %s",
			scope.Week, describeSide(m.Home), describeSide(m.Away)))
		return nil
	}

	rec, fallback := TransformMatch(m, scope)
	if rec == nil {
		return nil
	}
	if fallback != nil {
		r.result.ScheduleFallbacks++
		r.warn(reconcile.WarnScheduleFallback, rec.ID, fmt.Sprintf("Week %d: %s vs %s: %v, using run timestamp",
			scope.Week, rec.HomeTeamName, rec.AwayTeamName, fallback.Err))
	}

	d, err := r.engine.Reconcile(ctx, rec)
	if err != nil {
		return err
	}

	fields := []zap.Field{
		zap.String("id", rec.ID),
		zap.Int("week", scope.Week),
		zap.String("status", rec.Status),
		zap.String("outcome", string(d.Outcome)),
	}
	if rec.Status == StatusCompleted {
		fields = append(fields, zap.String("score", fmt.Sprintf("%d-%d", rec.Totals.HomePoints, rec.Totals.AwayPoints)))
	}
	if len(d.Differences) > 0 {
		fields = append(fields, zap.Strings("differences", d.Differences))
	}
	r.logger.Info(rec.HomeTeamName+" vs "+rec.AwayTeamName, fields...)
	return nil
}

func describeSide(t *apa.MatchTeam) string {
	if t == nil {
		return "(missing)"
	}
	return fmt.Sprintf("%s (#%s)", t.Name, t.Number)
}
