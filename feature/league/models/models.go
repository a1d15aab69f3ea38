package models

import (
	"fmt"
	"strings"
	"time"

	"league-sync/core/reconcile"
)

// Division is created once per external division and never updated.
type Division struct {
	ID        string    `gorm:"column:id;primaryKey;size:64" json:"id"`
	League    string    `gorm:"column:league;size:32" json:"league"`
	Name      string    `gorm:"column:name;size:255" json:"name"`
	Area      string    `gorm:"column:area;size:255" json:"area"`
	GameType  string    `gorm:"column:game_type;size:16" json:"gameType"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
}

// TableName overrides the table name.
func (Division) TableName() string { return "divisions" }

func (d *Division) Kind() reconcile.Kind { return reconcile.KindDivision }
func (d *Division) Key() string          { return d.ID }
func (d *Division) NaturalKey() string   { return d.ID }

// Team is identified upstream by (APATeamID, DivisionID); ID is derived from its name
// and unique within its division only.
type Team struct {
	ID              string    `gorm:"column:id;primaryKey;size:191" json:"id"`
	DivisionID      string    `gorm:"column:division_id;primaryKey;size:64;index;uniqueIndex:idx_team_apa_division,priority:2" json:"divisionId"`
	Name            string    `gorm:"column:name;size:255" json:"name"`
	APATeamID       string    `gorm:"column:apa_team_id;size:64;uniqueIndex:idx_team_apa_division,priority:1" json:"apaTeamId"`
	CaptainPlayerID string    `gorm:"column:captain_player_id;size:64" json:"captainPlayerId"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"createdAt"`
}

// TableName overrides the table name.
func (Team) TableName() string { return "teams" }

func (t *Team) Kind() reconcile.Kind { return reconcile.KindTeam }
func (t *Team) Key() string          { return t.ID }

// NaturalKey is the upstream identity, stable across renames.
func (t *Team) NaturalKey() string { return TeamNaturalKey(t.APATeamID, t.DivisionID) }

// TeamNaturalKey joins an upstream team id and a division id.
func TeamNaturalKey(apaTeamID, divisionID string) string {
	return apaTeamID + "@" + divisionID
}

// CompareFields reports a renamed team (same upstream identity, different
// synthetic id) or a slot taken by another upstream team (same synthetic id,
// different upstream identity).
func (t *Team) CompareFields(existing reconcile.Record) []string {
	stored, ok := existing.(*Team)
	if !ok {
		return nil
	}
	var diffs []string
	if stored.ID != t.ID {
		diffs = append(diffs, fmt.Sprintf("id: stored=%s incoming=%s", stored.ID, t.ID))
	}
	if stored.APATeamID != t.APATeamID {
		diffs = append(diffs, fmt.Sprintf("apaTeamId: stored=%s incoming=%s", stored.APATeamID, t.APATeamID))
	}
	return diffs
}

// Player is keyed by member number and never overwritten.
type Player struct {
	ID        string    `gorm:"column:id;primaryKey;size:64" json:"id"`
	FirstName string    `gorm:"column:first_name;size:255" json:"firstName"`
	LastName  string    `gorm:"column:last_name;size:255" json:"lastName"`
	APANumber string    `gorm:"column:apa_number;size:32;index" json:"apaNumber"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`

	// DisplayName is the raw upstream name, kept for mismatch reporting.
	DisplayName string `gorm:"-" json:"-"`
}

// TableName overrides the table name.
func (Player) TableName() string { return "players" }

func (p *Player) Kind() reconcile.Kind { return reconcile.KindPlayer }
func (p *Player) Key() string          { return p.ID }
func (p *Player) NaturalKey() string   { return p.ID }

// FullName prefers the upstream display name when present.
func (p *Player) FullName() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// TeamMembership links a player to a team. Rewritten on every import.
// Team ids repeat across divisions, so the division is part of the key.
type TeamMembership struct {
	ID           string     `gorm:"column:id;primaryKey;size:255" json:"id"`
	TeamID       string     `gorm:"column:team_id;size:191;index" json:"teamId"`
	DivisionID   string     `gorm:"column:division_id;primaryKey;size:64" json:"divisionId"`
	PlayerID     string     `gorm:"column:player_id;size:64;index" json:"playerId"`
	Role         string     `gorm:"column:role;size:32" json:"role"`
	JoinedAt     time.Time  `gorm:"column:joined_at" json:"joinedAt"`
	LeftAt       *time.Time `gorm:"column:left_at" json:"leftAt"`
	SkillLevel8B *int       `gorm:"column:skill_level_8b" json:"skillLevel_8b,omitempty"`
	SkillLevel9B *int       `gorm:"column:skill_level_9b" json:"skillLevel_9b,omitempty"`
}

// TableName overrides the table name.
func (TeamMembership) TableName() string { return "team_memberships" }

func (m *TeamMembership) Kind() reconcile.Kind { return reconcile.KindMembership }
func (m *TeamMembership) Key() string          { return m.ID }
func (m *TeamMembership) NaturalKey() string   { return m.ID + "@" + m.DivisionID }

// TeamMatch is a scheduled match. Once stored it belongs to the league app:
// lineups and scores entered there are never overwritten by an import.
type TeamMatch struct {
	ID            string           `gorm:"column:id;primaryKey;size:255" json:"id"`
	DivisionID    string           `gorm:"column:division_id;primaryKey;size:64;index" json:"divisionId"`
	SessionID     string           `gorm:"column:session_id;size:64" json:"sessionId"`
	Week          int              `gorm:"column:week" json:"week"`
	ScheduledAt   time.Time        `gorm:"column:scheduled_at" json:"scheduledAt"`
	HomeTeamID    string           `gorm:"column:home_team_id;size:191" json:"homeTeamId"`
	HomeTeamName  string           `gorm:"column:home_team_name;size:255" json:"homeTeamName"`
	AwayTeamID    string           `gorm:"column:away_team_id;size:191" json:"awayTeamId"`
	AwayTeamName  string           `gorm:"column:away_team_name;size:255" json:"awayTeamName"`
	Status        string           `gorm:"column:status;size:32" json:"status"`
	LineupPlan    LineupPlan       `gorm:"column:lineup_plan;serializer:json" json:"lineupPlan"`
	PlayerMatches []map[string]any `gorm:"column:player_matches;serializer:json" json:"playerMatches"`
	Totals        MatchTotals      `gorm:"column:totals;serializer:json" json:"totals"`
	CreatedAt     time.Time        `gorm:"column:created_at" json:"createdAt"`
}

// TableName overrides the table name.
func (TeamMatch) TableName() string { return "team_matches" }

func (m *TeamMatch) Kind() reconcile.Kind { return reconcile.KindMatch }
func (m *TeamMatch) Key() string          { return m.ID }
func (m *TeamMatch) NaturalKey() string   { return m.ID + "@" + m.DivisionID }

// CompareFields reports upstream progress the stored match has not seen,
// or local edits upstream does not know about.
func (m *TeamMatch) CompareFields(existing reconcile.Record) []string {
	stored, ok := existing.(*TeamMatch)
	if !ok {
		return nil
	}
	var diffs []string
	if stored.Status != m.Status {
		diffs = append(diffs, fmt.Sprintf("status: stored=%s incoming=%s", stored.Status, m.Status))
	}
	if stored.Totals.HomePoints != m.Totals.HomePoints || stored.Totals.AwayPoints != m.Totals.AwayPoints {
		diffs = append(diffs, fmt.Sprintf("totals: stored=%d-%d incoming=%d-%d",
			stored.Totals.HomePoints, stored.Totals.AwayPoints, m.Totals.HomePoints, m.Totals.AwayPoints))
	}
	return diffs
}

// LineupPlan is owned by the league app; imports only seed the defaults.
type LineupPlan struct {
	Ruleset         string           `json:"ruleset"`
	MaxTeamSkillCap int              `json:"maxTeamSkillCap"`
	Home            []map[string]any `json:"home"`
	Away            []map[string]any `json:"away"`
	Totals          LineupTotals     `json:"totals"`
	Locked          bool             `json:"locked"`
	LockedBy        *string          `json:"lockedBy"`
	LockedAt        *time.Time       `json:"lockedAt"`
	History         []map[string]any `json:"history"`
}

type LineupTotals struct {
	HomePlannedSkillSum int  `json:"homePlannedSkillSum"`
	AwayPlannedSkillSum int  `json:"awayPlannedSkillSum"`
	HomeWithinCap       bool `json:"homeWithinCap"`
	AwayWithinCap       bool `json:"awayWithinCap"`
}

// DefaultMaxTeamSkillCap is the 23-rule cap applied to new lineup plans.
const DefaultMaxTeamSkillCap = 23

// NewLineupPlan returns the empty plan a freshly imported match starts with.
func NewLineupPlan() LineupPlan {
	return LineupPlan{
		MaxTeamSkillCap: DefaultMaxTeamSkillCap,
		Home:            []map[string]any{},
		Away:            []map[string]any{},
		Totals:          LineupTotals{HomeWithinCap: true, AwayWithinCap: true},
		History:         []map[string]any{},
	}
}

type MatchTotals struct {
	HomePoints  int         `json:"homePoints"`
	AwayPoints  int         `json:"awayPoints"`
	BonusPoints BonusPoints `json:"bonusPoints"`
}

type BonusPoints struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// All lists every model in migration order.
func All() []any {
	return []any{&Division{}, &Team{}, &Player{}, &TeamMembership{}, &TeamMatch{}}
}
