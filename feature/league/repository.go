package league

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"league-sync/core/database"
	"league-sync/feature/league/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// requiredColumns are the columns the importer writes, per table.
var requiredColumns = map[string][]string{
	"divisions":        {"id", "league", "name", "area", "game_type", "created_at"},
	"teams":            {"id", "division_id", "name", "apa_team_id", "captain_player_id", "created_at"},
	"players":          {"id", "first_name", "last_name", "apa_number", "created_at"},
	"team_memberships": {"id", "team_id", "division_id", "player_id", "role", "joined_at", "left_at", "skill_level_8b", "skill_level_9b"},
	"team_matches":     {"id", "division_id", "session_id", "week", "scheduled_at", "home_team_id", "home_team_name", "away_team_id", "away_team_name", "status", "lineup_plan", "player_matches", "totals", "created_at"},
}

// ErrDuplicate is returned by Create when a row with the same key already exists.
var ErrDuplicate = errors.New("record already exists")

// Repository reads and writes league records.
// Reads of a single record return (nil, nil) when nothing matches.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository over db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the league tables.
func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(models.All()...)
}

// VerifySchema fails when any league table lacks a column the importer writes.
func (r *Repository) VerifySchema() error {
	var problems []string
	for _, table := range []string{"divisions", "teams", "players", "team_memberships", "team_matches"} {
		missing, err := database.MissingColumns(r.db, table, requiredColumns[table])
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			problems = append(problems, fmt.Sprintf("%s missing %s", table, strings.Join(missing, ", ")))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("schema check failed: %s", strings.Join(problems, "; "))
	}
	return nil
}

// GetDivision returns the division with id.
func (r *Repository) GetDivision(ctx context.Context, id string) (*models.Division, error) {
	var d models.Division
	return first(r.db.WithContext(ctx).Where("id = ?", id), &d)
}

// GetTeam returns the team with id in a division.
func (r *Repository) GetTeam(ctx context.Context, divisionID, id string) (*models.Team, error) {
	var t models.Team
	return first(r.db.WithContext(ctx).Where("id = ? AND division_id = ?", id, divisionID), &t)
}

// FindTeamByAPAID returns the team with the given upstream id in a division.
func (r *Repository) FindTeamByAPAID(ctx context.Context, apaTeamID, divisionID string) (*models.Team, error) {
	var t models.Team
	return first(r.db.WithContext(ctx).Where("apa_team_id = ? AND division_id = ?", apaTeamID, divisionID), &t)
}

// GetPlayer returns the player with id.
func (r *Repository) GetPlayer(ctx context.Context, id string) (*models.Player, error) {
	var p models.Player
	return first(r.db.WithContext(ctx).Where("id = ?", id), &p)
}

// GetMembership returns the membership with id in a division.
func (r *Repository) GetMembership(ctx context.Context, divisionID, id string) (*models.TeamMembership, error) {
	var m models.TeamMembership
	return first(r.db.WithContext(ctx).Where("id = ? AND division_id = ?", id, divisionID), &m)
}

// GetMatch returns the match with id in a division.
func (r *Repository) GetMatch(ctx context.Context, divisionID, id string) (*models.TeamMatch, error) {
	var m models.TeamMatch
	return first(r.db.WithContext(ctx).Where("id = ? AND division_id = ?", id, divisionID), &m)
}

// ListTeams returns every team in a division ordered by id.
func (r *Repository) ListTeams(ctx context.Context, divisionID string) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.WithContext(ctx).Where("division_id = ?", divisionID).Order("id").Find(&teams).Error
	if err != nil {
		return nil, fmt.Errorf("list teams for %s: %w", divisionID, err)
	}
	return teams, nil
}

// ListMatches returns every match in a division ordered by week, then id.
func (r *Repository) ListMatches(ctx context.Context, divisionID string) ([]models.TeamMatch, error) {
	var matches []models.TeamMatch
	err := r.db.WithContext(ctx).Where("division_id = ?", divisionID).Order("week").Order("id").Find(&matches).Error
	if err != nil {
		return nil, fmt.Errorf("list matches for %s: %w", divisionID, err)
	}
	return matches, nil
}

// ListMemberships returns every membership on a division's team ordered by player.
func (r *Repository) ListMemberships(ctx context.Context, divisionID, teamID string) ([]models.TeamMembership, error) {
	var memberships []models.TeamMembership
	err := r.db.WithContext(ctx).Where("team_id = ? AND division_id = ?", teamID, divisionID).Order("player_id").Find(&memberships).Error
	if err != nil {
		return nil, fmt.Errorf("list memberships for %s: %w", teamID, err)
	}
	return memberships, nil
}

// Create inserts value and never touches an existing row. A key collision
// returns ErrDuplicate.
func (r *Repository) Create(ctx context.Context, value any) error {
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrDuplicate
	}
	return nil
}

// Upsert inserts value, replacing every non-key column of the row with the
// same primary key.
func (r *Repository) Upsert(ctx context.Context, value any) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(value).Error
}

func first[T any](tx *gorm.DB, dest *T) (*T, error) {
	if err := tx.Take(dest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return dest, nil
}
