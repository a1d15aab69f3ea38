package league

import (
	"context"
	"errors"
	"fmt"

	"league-sync/core/reconcile"
	"league-sync/feature/league/models"
)

// Store adapts the repository to reconcile.Store.
type Store struct {
	repo *Repository
}

// NewStore creates a reconcile store backed by repo.
func NewStore(repo *Repository) *Store {
	return &Store{repo: repo}
}

// Lookup implements reconcile.Store. Teams are found by upstream identity,
// then by synthetic id within the division; everything else by synthetic id.
func (s *Store) Lookup(ctx context.Context, rec reconcile.Record) (reconcile.Record, error) {
	switch r := rec.(type) {
	case *models.Division:
		d, err := s.repo.GetDivision(ctx, r.ID)
		if err != nil || d == nil {
			return nil, err
		}
		return d, nil
	case *models.Team:
		t, err := s.repo.FindTeamByAPAID(ctx, r.APATeamID, r.DivisionID)
		if err != nil {
			return nil, err
		}
		if t == nil {
			// Another upstream team may hold the same slot.
			if t, err = s.repo.GetTeam(ctx, r.DivisionID, r.ID); err != nil || t == nil {
				return nil, err
			}
		}
		return t, nil
	case *models.Player:
		p, err := s.repo.GetPlayer(ctx, r.ID)
		if err != nil || p == nil {
			return nil, err
		}
		return p, nil
	case *models.TeamMembership:
		m, err := s.repo.GetMembership(ctx, r.DivisionID, r.ID)
		if err != nil || m == nil {
			return nil, err
		}
		return m, nil
	case *models.TeamMatch:
		m, err := s.repo.GetMatch(ctx, r.DivisionID, r.ID)
		if err != nil || m == nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unsupported record type %T", rec)
	}
}

// Write implements reconcile.Store. Memberships are upserted; every other
// kind is created once and a taken key is reported as reconcile.ErrConflict.
func (s *Store) Write(ctx context.Context, rec reconcile.Record) error {
	switch rec.(type) {
	case *models.TeamMembership:
		return s.repo.Upsert(ctx, rec)
	case *models.Division, *models.Team, *models.Player, *models.TeamMatch:
		err := s.repo.Create(ctx, rec)
		if errors.Is(err, ErrDuplicate) {
			return fmt.Errorf("%s %s: %w", rec.Kind(), rec.Key(), reconcile.ErrConflict)
		}
		return err
	default:
		return fmt.Errorf("unsupported record type %T", rec)
	}
}

// ListTeams exposes the division's teams for team-reference mapping.
func (s *Store) ListTeams(ctx context.Context, divisionID string) ([]models.Team, error) {
	return s.repo.ListTeams(ctx, divisionID)
}
