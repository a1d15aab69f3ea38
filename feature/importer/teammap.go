package importer

import (
	"context"
	"fmt"

	"league-sync/core/apa"
	"league-sync/core/identity"
	"league-sync/feature/league/models"
)

// TeamRef is a resolved team reference.
type TeamRef struct {
	ID   string
	Name string
}

// TeamMap maps an upstream team number to a stored team.
type TeamMap map[string]TeamRef

// TeamLister lists the stored teams of a division.
type TeamLister interface {
	ListTeams(ctx context.Context, divisionID string) ([]models.Team, error)
}

// TeamMapFromStore maps the stored teams of a division by the number suffix of their id.
func TeamMapFromStore(ctx context.Context, lister TeamLister, divisionID string) (TeamMap, error) {
	teams, err := lister.ListTeams(ctx, divisionID)
	if err != nil {
		return nil, fmt.Errorf("build team map: %w", err)
	}
	m := make(TeamMap, len(teams))
	for _, t := range teams {
		m[identity.TeamNumber(t.ID)] = TeamRef{ID: t.ID, Name: t.Name}
	}
	return m, nil
}

// TeamMapFromPayload derives the team map from the payload's own team list,
// for runs that cannot rely on a prior roster import. Bye teams are excluded.
func TeamMapFromPayload(teams []apa.Team) TeamMap {
	m := make(TeamMap, len(teams))
	for _, t := range teams {
		if t.IsBye {
			continue
		}
		m[t.Number.String()] = TeamRef{
			ID:   identity.TeamID(t.Name, t.Number.String()),
			Name: identity.CleanTeamName(t.Name),
		}
	}
	return m
}

// Resolve looks up both sides of a match.
func (m TeamMap) Resolve(home, away *apa.MatchTeam) (TeamRef, TeamRef, bool) {
	if home == nil || away == nil {
		return TeamRef{}, TeamRef{}, false
	}
	h, okHome := m[home.Number.String()]
	a, okAway := m[away.Number.String()]
	return h, a, okHome && okAway
}
