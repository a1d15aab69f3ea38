package league

import (
	"context"
	"regexp"
	"testing"
	"time"

	"league-sync/core/database"
	"league-sync/feature/league/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var seededAt = time.Date(2025, 1, 6, 18, 0, 0, 0, time.UTC)

func setupRepository(t *testing.T) *Repository {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	repo := NewRepository(db)
	require.NoError(t, repo.Migrate())
	return repo
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}
	return gormDB, mock
}

func TestRepository_VerifySchema(t *testing.T) {
	repo := setupRepository(t)
	assert.NoError(t, repo.VerifySchema())

	require.NoError(t, repo.db.Exec("DROP TABLE team_matches").Error)
	err := repo.VerifySchema()
	assert.ErrorContains(t, err, "team_matches missing id")
}

func TestRepository_NotFoundIsNil(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	d, err := repo.GetDivision(ctx, "div_404")
	assert.NoError(t, err)
	assert.Nil(t, d)

	team, err := repo.FindTeamByAPAID(ctx, "1", "div_404")
	assert.NoError(t, err)
	assert.Nil(t, team)

	m, err := repo.GetMatch(ctx, "div_404", "match_x")
	assert.NoError(t, err)
	assert.Nil(t, m)
}

func TestRepository_UpsertAndRead(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &models.Team{
		ID: "team_we_dem_boyz_03", DivisionID: "div_1", Name: "We Dem Boyz", APATeamID: "90001", CreatedAt: seededAt,
	}))
	require.NoError(t, repo.Upsert(ctx, &models.Team{
		ID: "team_rack_attack_04", DivisionID: "div_1", Name: "Rack Attack", APATeamID: "90002", CreatedAt: seededAt,
	}))
	require.NoError(t, repo.Upsert(ctx, &models.Team{
		ID: "team_other_01", DivisionID: "div_2", Name: "Other", APATeamID: "90001", CreatedAt: seededAt,
	}))

	team, err := repo.FindTeamByAPAID(ctx, "90001", "div_1")
	require.NoError(t, err)
	require.NotNil(t, team)
	assert.Equal(t, "team_we_dem_boyz_03", team.ID)

	teams, err := repo.ListTeams(ctx, "div_1")
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, "team_rack_attack_04", teams[0].ID)

	// Upsert replaces non-key columns.
	level := 6
	membership := &models.TeamMembership{ID: "m_t_p_1", TeamID: "team_we_dem_boyz_03", DivisionID: "div_1", PlayerID: "p_1", Role: "player", JoinedAt: seededAt}
	require.NoError(t, repo.Upsert(ctx, membership))
	membership.SkillLevel8B = &level
	require.NoError(t, repo.Upsert(ctx, membership))

	memberships, err := repo.ListMemberships(ctx, "div_1", "team_we_dem_boyz_03")
	require.NoError(t, err)
	require.Len(t, memberships, 1)
	require.NotNil(t, memberships[0].SkillLevel8B)
	assert.Equal(t, 6, *memberships[0].SkillLevel8B)
	assert.Nil(t, memberships[0].LeftAt)
}

func TestRepository_KeysArePerDivision(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	for _, div := range []string{"div_fall", "div_spring"} {
		require.NoError(t, repo.Create(ctx, &models.Team{
			ID: "team_we_dem_boyz_03", DivisionID: div, Name: "We Dem Boyz", APATeamID: "apa_" + div, CreatedAt: seededAt,
		}))
		require.NoError(t, repo.Create(ctx, &models.TeamMatch{
			ID: "match_s_1_a_b", DivisionID: div, Week: 1, LineupPlan: models.NewLineupPlan(), CreatedAt: seededAt,
		}))
		require.NoError(t, repo.Upsert(ctx, &models.TeamMembership{
			ID: "m_team_we_dem_boyz_03_p_1", TeamID: "team_we_dem_boyz_03", DivisionID: div, PlayerID: "p_1", JoinedAt: seededAt,
		}))
	}

	for _, div := range []string{"div_fall", "div_spring"} {
		team, err := repo.GetTeam(ctx, div, "team_we_dem_boyz_03")
		require.NoError(t, err)
		require.NotNil(t, team, div)
		assert.Equal(t, "apa_"+div, team.APATeamID)

		match, err := repo.GetMatch(ctx, div, "match_s_1_a_b")
		require.NoError(t, err)
		assert.NotNil(t, match, div)

		memberships, err := repo.ListMemberships(ctx, div, "team_we_dem_boyz_03")
		require.NoError(t, err)
		assert.Len(t, memberships, 1, div)
	}
}

func TestRepository_CreateNeverOverwrites(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Player{ID: "p_1", FirstName: "Michael", LastName: "Hayes", APANumber: "1", CreatedAt: seededAt}))

	err := repo.Create(ctx, &models.Player{ID: "p_1", FirstName: "Mike", LastName: "Hayes", APANumber: "1", CreatedAt: seededAt})
	assert.ErrorIs(t, err, ErrDuplicate)

	p, err := repo.GetPlayer(ctx, "p_1")
	require.NoError(t, err)
	assert.Equal(t, "Michael", p.FirstName)
}

func TestRepository_MatchJSONColumns(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	match := &models.TeamMatch{
		ID:            "match_s_2_a_b",
		DivisionID:    "div_1",
		Week:          2,
		ScheduledAt:   seededAt,
		Status:        "scheduled",
		LineupPlan:    models.NewLineupPlan(),
		PlayerMatches: []map[string]any{},
		Totals:        models.MatchTotals{HomePoints: 3},
		CreatedAt:     seededAt,
	}
	require.NoError(t, repo.Upsert(ctx, match))
	require.NoError(t, repo.Upsert(ctx, &models.TeamMatch{ID: "match_s_1_a_b", DivisionID: "div_1", Week: 1, LineupPlan: models.NewLineupPlan()}))

	got, err := repo.GetMatch(ctx, "div_1", "match_s_2_a_b")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.DefaultMaxTeamSkillCap, got.LineupPlan.MaxTeamSkillCap)
	assert.True(t, got.LineupPlan.Totals.HomeWithinCap)
	assert.NotNil(t, got.LineupPlan.Home)
	assert.Equal(t, 3, got.Totals.HomePoints)
	assert.True(t, got.ScheduledAt.Equal(seededAt))

	other, err := repo.GetMatch(ctx, "div_2", "match_s_2_a_b")
	require.NoError(t, err)
	assert.Nil(t, other)

	matches, err := repo.ListMatches(ctx, "div_1")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, 1, matches[0].Week)
}

func TestRepository_QueryShape(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `teams` WHERE apa_team_id = ? AND division_id = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "division_id", "apa_team_id"}).AddRow("team_a_03", "div_1", "90001"))

	team, err := repo.FindTeamByAPAID(ctx, "90001", "div_1")
	require.NoError(t, err)
	assert.Equal(t, "team_a_03", team.ID)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `team_memberships`") + ".*" + regexp.QuoteMeta("ON DUPLICATE KEY UPDATE")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Upsert(ctx, &models.TeamMembership{ID: "m_t_p_1", TeamID: "team_a_03", DivisionID: "div_1", PlayerID: "p_1"}))

	// A duplicate leaves the row as it is and affects nothing.
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `players`") + ".*" + regexp.QuoteMeta("ON DUPLICATE KEY UPDATE `id`=`id`")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err = repo.Create(ctx, &models.Player{ID: "p_1", FirstName: "Michael", LastName: "Hayes", APANumber: "1"})
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}
