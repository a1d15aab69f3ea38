package league

import (
	"context"
	"errors"

	"league-sync/feature/league/models"

	"go.uber.org/zap"
)

// ErrNotFound is returned when the requested division or team does not exist.
var ErrNotFound = errors.New("not found")

// Service answers read-only league queries.
type Service struct {
	repo   *Repository
	logger *zap.Logger
}

// NewService creates a new league service.
func NewService(repo *Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Division returns a division by id.
func (s *Service) Division(ctx context.Context, id string) (*models.Division, error) {
	d, err := s.repo.GetDivision(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrNotFound
	}
	return d, nil
}

// Teams returns the teams of an existing division.
func (s *Service) Teams(ctx context.Context, divisionID string) ([]models.Team, error) {
	if _, err := s.Division(ctx, divisionID); err != nil {
		return nil, err
	}
	return s.repo.ListTeams(ctx, divisionID)
}

// Matches returns the schedule of an existing division.
func (s *Service) Matches(ctx context.Context, divisionID string) ([]models.TeamMatch, error) {
	if _, err := s.Division(ctx, divisionID); err != nil {
		return nil, err
	}
	return s.repo.ListMatches(ctx, divisionID)
}

// Memberships returns the roster of an existing team in a division.
func (s *Service) Memberships(ctx context.Context, divisionID, teamID string) ([]models.TeamMembership, error) {
	t, err := s.repo.GetTeam(ctx, divisionID, teamID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrNotFound
	}
	return s.repo.ListMemberships(ctx, divisionID, teamID)
}
