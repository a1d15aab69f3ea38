package importer

import (
	"context"
	"errors"
	"fmt"

	"league-sync/core/apa"
	"league-sync/core/identity"
	"league-sync/core/reconcile"

	"go.uber.org/zap"
)

// RosterOptions configures a roster import.
type RosterOptions struct {
	// DivisionID is the upstream numeric division id.
	DivisionID int
	// DivisionName is the human-readable division name stored on creation.
	DivisionName string
	// DivisionRef imports teams into an existing division instead of creating one.
	DivisionRef string
	// DryRun reports decisions without writing.
	DryRun bool
}

// ImportRoster imports a division's teams, players and memberships.
// Teams and players are created once; memberships are rewritten every run.
func (i *Importer) ImportRoster(ctx context.Context, opts RosterOptions) (*Result, error) {
	r, err := i.begin(KindRoster, opts.DryRun)
	if err != nil {
		return nil, err
	}

	payload, err := i.source.FetchRoster(ctx, opts.DivisionID)
	if err != nil {
		return nil, fmt.Errorf("fetch roster for division %d: %w", opts.DivisionID, err)
	}

	divisionID := opts.DivisionRef
	if divisionID == "" {
		division := TransformDivision(payload, opts.DivisionName, r.runAt)
		d, err := r.engine.Reconcile(ctx, division)
		if err != nil {
			return nil, err
		}
		divisionID = division.ID
		r.logger.Info("Division", zap.String("id", divisionID), zap.String("outcome", string(d.Outcome)), zap.String("game_type", division.GameType))
	} else {
		r.logger.Info("Using existing division", zap.String("id", divisionID))
	}
	r.result.DivisionID = divisionID

	for _, team := range payload.Teams {
		if err := r.importTeam(ctx, team, divisionID); err != nil {
			return nil, err
		}
	}

	return r.finish(i.clock()), nil
}

func (r *run) importTeam(ctx context.Context, team apa.Team, divisionID string) error {
	if team.IsBye {
		r.result.ByeSkips++
		r.warn(reconcile.WarnBye, team.ID.String(), fmt.Sprintf("Skipping bye team %q", team.Name))
		return nil
	}

	var captainID string
	if len(team.Roster) > 0 && team.Roster[0].MemberNumber != "" {
		captainID = identity.PlayerID(team.Roster[0].MemberNumber.String())
	}

	rec := TransformTeam(team, divisionID, captainID, r.runAt)
	d, found, err := r.engine.Match(ctx, rec)
	if err != nil {
		return err
	}

	if len(team.Roster) == 0 {
		if !found {
			r.result.TeamsSkipped++
		}
		r.warn(reconcile.WarnMissingRoster, team.ID.String(), fmt.Sprintf("Team %q has no roster", team.Name))
		return nil
	}

	if !found {
		if captainID == "" {
			r.result.TeamsSkipped++
			r.warn(reconcile.WarnInvalidRecord, team.ID.String(), fmt.Sprintf("Skipping team %q: captain has no member number", team.Name))
			return nil
		}
		if d, err = r.engine.Create(ctx, rec); err != nil {
			return err
		}
		if d.Outcome == reconcile.OutcomeSkipConflict {
			// The slot belongs to a team the lookup could not see; leave its roster alone.
			r.logger.Warn("Team slot already taken", zap.String("id", rec.ID), zap.Strings("differences", d.Differences))
			return nil
		}
	}

	// Memberships follow the stored team, which keeps its id after an upstream rename.
	teamID := rec.ID
	if d.Existing != nil {
		teamID = d.Existing.Key()
	}

	fields := []zap.Field{
		zap.String("id", teamID),
		zap.String("number", team.Number.String()),
		zap.String("outcome", string(d.Outcome)),
		zap.Int("roster", len(team.Roster)),
	}
	if len(d.Differences) > 0 {
		fields = append(fields, zap.Strings("differences", d.Differences))
	}
	r.logger.Info("Team "+rec.Name, fields...)

	divisionType := team.DivisionType()
	if divisionType == "" {
		divisionType = divisionTypeEight
	}

	for idx, entry := range team.Roster {
		player, err := TransformPlayer(entry, r.runAt)
		if err != nil {
			if errors.Is(err, ErrMissingField) {
				r.result.PlayersSkipped++
				r.warn(reconcile.WarnInvalidRecord, teamID, err.Error())
				continue
			}
			return err
		}

		pd, err := r.engine.Reconcile(ctx, player)
		if err != nil {
			return err
		}
		r.logger.Debug("Player "+entry.DisplayName,
			zap.String("id", player.ID),
			zap.Int("skill_level", int(entry.SkillLevel)),
			zap.Bool("captain", idx == 0),
			zap.String("outcome", string(pd.Outcome)),
		)

		membership := TransformMembership(entry, teamID, divisionID, player.ID, divisionType, r.runAt)
		if _, err := r.engine.Upsert(ctx, membership); err != nil {
			return err
		}
	}
	return nil
}
