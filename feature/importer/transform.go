package importer

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"league-sync/core/apa"
	"league-sync/core/identity"
	"league-sync/feature/league/models"
)

const (
	leagueName     = "APA"
	membershipRole = "player"

	divisionTypeEight = "EIGHT"
	divisionTypeNine  = "NINE"

	GameTypeEightBall = "8-ball"
	GameTypeNineBall  = "9-ball"

	StatusCompleted = "completed"
	StatusScheduled = "scheduled"
)

// ErrNoStartTime is reported when a match carries no start time.
var ErrNoStartTime = errors.New("start time missing")

// InferGameType returns the game type of the first non-bye team that
// exposes a division type, defaulting to 8-ball.
func InferGameType(teams []apa.Team) string {
	for _, t := range teams {
		if t.IsBye || t.DivisionType() == "" {
			continue
		}
		if t.DivisionType() == divisionTypeNine {
			return GameTypeNineBall
		}
		return GameTypeEightBall
	}
	return GameTypeEightBall
}

// TransformDivision builds the division record for payload.
func TransformDivision(payload *apa.Division, name string, runAt time.Time) *models.Division {
	return &models.Division{
		ID:        identity.DivisionID(payload.ID.String()),
		League:    leagueName,
		Name:      name,
		Area:      "",
		GameType:  InferGameType(payload.Teams),
		CreatedAt: runAt,
	}
}

// TransformTeam builds the team record. The name is stored cleaned.
func TransformTeam(t apa.Team, divisionID, captainPlayerID string, runAt time.Time) *models.Team {
	return &models.Team{
		ID:              identity.TeamID(t.Name, t.Number.String()),
		DivisionID:      divisionID,
		Name:            identity.CleanTeamName(t.Name),
		APATeamID:       t.ID.String(),
		CaptainPlayerID: captainPlayerID,
		CreatedAt:       runAt,
	}
}

// TransformPlayer builds the player record for a roster entry.
func TransformPlayer(e apa.RosterEntry, runAt time.Time) (*models.Player, error) {
	if e.MemberNumber == "" {
		return nil, &MissingFieldError{Entity: "roster entry", Field: "memberNumber", Ref: e.DisplayName}
	}
	if strings.TrimSpace(e.DisplayName) == "" {
		return nil, &MissingFieldError{Entity: "roster entry", Field: "displayName", Ref: e.MemberNumber.String()}
	}

	first, last := identity.SplitDisplayName(e.DisplayName)
	return &models.Player{
		ID:          identity.PlayerID(e.MemberNumber.String()),
		FirstName:   first,
		LastName:    last,
		APANumber:   e.MemberNumber.String(),
		CreatedAt:   runAt,
		DisplayName: e.DisplayName,
	}, nil
}

// TransformMembership builds the membership record. The skill level lands in
// the 9-ball column only for NINE divisions.
func TransformMembership(e apa.RosterEntry, teamID, divisionID, playerID, divisionType string, runAt time.Time) *models.TeamMembership {
	level := int(e.SkillLevel)
	m := &models.TeamMembership{
		ID:         identity.MembershipID(teamID, playerID),
		TeamID:     teamID,
		DivisionID: divisionID,
		PlayerID:   playerID,
		Role:       membershipRole,
		JoinedAt:   runAt,
	}
	if divisionType == divisionTypeNine {
		m.SkillLevel9B = &level
	} else {
		m.SkillLevel8B = &level
	}
	return m
}

// MatchScope carries what a match transform needs beyond the match itself.
type MatchScope struct {
	DivisionID string
	SessionID  string
	Week       int
	Teams      TeamMap
	RunAt      time.Time
}

// TimeFallback records a start time replaced by the run timestamp.
type TimeFallback struct {
	Raw string
	Err error
}

// TransformMatch builds the match record. It returns nil for byes and for
// matches whose teams cannot be resolved. A non-nil TimeFallback means the
// start time was unusable and the run timestamp was used instead.
func TransformMatch(m apa.Match, scope MatchScope) (*models.TeamMatch, *TimeFallback) {
	if m.IsBye {
		return nil, nil
	}
	home, away, ok := scope.Teams.Resolve(m.Home, m.Away)
	if !ok {
		return nil, nil
	}

	scheduledAt, err := ParseStartTime(m.StartTime, scope.RunAt)
	var fallback *TimeFallback
	if err != nil {
		fallback = &TimeFallback{Raw: m.StartTime, Err: err}
	}

	status := MapStatus(m.Status)
	return &models.TeamMatch{
		ID:            identity.MatchID(scope.SessionID, scope.Week, home.ID, away.ID),
		DivisionID:    scope.DivisionID,
		SessionID:     scope.SessionID,
		Week:          scope.Week,
		ScheduledAt:   scheduledAt,
		HomeTeamID:    home.ID,
		HomeTeamName:  home.Name,
		AwayTeamID:    away.ID,
		AwayTeamName:  away.Name,
		Status:        status,
		LineupPlan:    models.NewLineupPlan(),
		PlayerMatches: []map[string]any{},
		Totals:        matchTotals(status, m.Results),
		CreatedAt:     scope.RunAt,
	}, fallback
}

// MapStatus maps the upstream match status. Anything but COMPLETED is scheduled.
func MapStatus(status string) string {
	if status == "COMPLETED" {
		return StatusCompleted
	}
	return StatusScheduled
}

func matchTotals(status string, results []apa.MatchResult) models.MatchTotals {
	var totals models.MatchTotals
	if status != StatusCompleted {
		return totals
	}
	for _, r := range results {
		switch r.HomeAway {
		case "HOME":
			totals.HomePoints += int(r.Points.Total)
		case "AWAY":
			totals.AwayPoints += int(r.Points.Total)
		}
	}
	return totals
}

var startTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

// ParseStartTime parses an upstream start time. Timestamps without an offset
// are taken as UTC. On failure it returns runAt together with the reason.
func ParseStartTime(raw string, runAt time.Time) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return runAt, ErrNoStartTime
	}

	var lastErr error
	for _, layout := range startTimeLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return runAt, fmt.Errorf("unparseable start time %q: %w", raw, lastErr)
}
