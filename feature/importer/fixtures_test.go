package importer

import (
	"context"
	"strconv"
	"testing"
	"time"

	"league-sync/core/apa"
	"league-sync/core/database"
	"league-sync/feature/league"

	"github.com/stretchr/testify/require"
)

var runAt = time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

const sessionID = "sess_2025_spring"

type fakeSource struct {
	roster   *apa.Division
	schedule *apa.Division
	err      error
}

func (f *fakeSource) FetchRoster(_ context.Context, _ int) (*apa.Division, error) {
	return f.roster, f.err
}

func (f *fakeSource) FetchSchedule(_ context.Context, _ int) (*apa.Division, error) {
	return f.schedule, f.err
}

func setupStore(t *testing.T) (*league.Store, *league.Repository) {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	repo := league.NewRepository(db)
	require.NoError(t, repo.Migrate())
	return league.NewStore(repo), repo
}

func newImporter(source Source, store Store) *Importer {
	return New(source, store, nil).WithClock(func() time.Time { return runAt })
}

func entry(member, name string, level int) apa.RosterEntry {
	return apa.RosterEntry{MemberNumber: apa.ID(member), DisplayName: name, SkillLevel: apa.Number(level)}
}

func rosterPayload(divisionType string) *apa.Division {
	div := &apa.TeamDivision{ID: "418320", Type: divisionType}
	return &apa.Division{
		ID: "418320",
		Teams: []apa.Team{
			{
				ID: "90001", Name: "We Dem Boyz (T # 3)", Number: "03", Division: div,
				Roster: []apa.RosterEntry{
					entry("12345", "Michael Hayes", 5),
					entry("67890", "Mary Jo Van Dyke", 3),
				},
			},
			{
				ID: "90002", Name: "Rack Attack", Number: "04", Division: div,
				Roster: []apa.RosterEntry{
					entry("22222", "Sam Lee", 4),
					entry("12345", "Michael Hayes", 5),
				},
			},
			{ID: "90099", Name: "BYE", Number: "99", IsBye: true},
		},
	}
}

func week(n int, matches ...apa.Match) apa.Week {
	return apa.Week{ID: apa.ID("w" + strconv.Itoa(n)), WeekOfPlay: &n, Matches: matches}
}

func side(id, name, number string) *apa.MatchTeam {
	return &apa.MatchTeam{ID: apa.ID(id), Name: name, Number: apa.ID(number)}
}

func points(homeAway string, total int) apa.MatchResult {
	var r apa.MatchResult
	r.HomeAway = homeAway
	r.Points.Total = apa.Number(total)
	return r
}

func schedulePayload() *apa.Division {
	boyz := side("90001", "We Dem Boyz (T # 3)", "03")
	rack := side("90002", "Rack Attack", "04")

	return &apa.Division{
		ID: "418320",
		Teams: []apa.Team{
			{ID: "90001", Name: "We Dem Boyz (T # 3)", Number: "03"},
			{ID: "90002", Name: "Rack Attack", Number: "04"},
			{ID: "90099", Name: "BYE", Number: "99", IsBye: true},
		},
		Schedule: []apa.Week{
			week(1,
				apa.Match{
					ID: "mt1", Status: "COMPLETED", StartTime: "2025-01-08T19:30:00Z",
					Results: []apa.MatchResult{points("HOME", 6), points("AWAY", 6), points("HOME", 4)},
					Home:    boyz, Away: rack,
				},
				apa.Match{ID: "mt2", IsBye: true, Status: "UNPLAYED", Home: side("90099", "BYE", "99")},
			),
			{ID: "w2", Description: "Holiday", Skip: true},
			week(3,
				apa.Match{ID: "mt3", Status: "UNPLAYED", Home: rack, Away: boyz},
				apa.Match{ID: "mt4", Status: "UNPLAYED", StartTime: "2025-01-22T19:30:00Z", Home: boyz, Away: side("90007", "Ghost Cue", "07")},
			),
		},
	}
}
