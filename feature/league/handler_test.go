package league

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"league-sync/core/loader"
	"league-sync/feature/league/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	repo := setupRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &models.Division{ID: "div_1", League: "APA", Name: "Wednesday", CreatedAt: seededAt}))
	require.NoError(t, repo.Upsert(ctx, &models.Team{ID: "team_a_03", DivisionID: "div_1", Name: "A", APATeamID: "90001", CreatedAt: seededAt}))
	require.NoError(t, repo.Upsert(ctx, &models.TeamMembership{ID: "m_team_a_03_p_1", TeamID: "team_a_03", DivisionID: "div_1", PlayerID: "p_1", Role: "player", JoinedAt: seededAt}))
	require.NoError(t, repo.Upsert(ctx, &models.TeamMatch{ID: "match_s_1_a_b", DivisionID: "div_1", Week: 1, Status: "scheduled", LineupPlan: models.NewLineupPlan(), CreatedAt: seededAt}))

	app := fiber.New()
	mgr := loader.NewManager()
	mgr.Register(&Feature{enabled: true, handler: NewHandler(NewService(repo, zap.NewNop()))})
	_, err := mgr.LoadAll(app)
	require.NoError(t, err)
	return app
}

func get(t *testing.T, app *fiber.App, path string) (int, []byte) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func TestHandler_Routes(t *testing.T) {
	app := setupApp(t)

	tests := []struct {
		name   string
		path   string
		status int
		count  int
	}{
		{"Teams", "/divisions/div_1/teams", fiber.StatusOK, 1},
		{"Matches", "/divisions/div_1/matches", fiber.StatusOK, 1},
		{"Memberships", "/divisions/div_1/teams/team_a_03/memberships", fiber.StatusOK, 1},
		{"UnknownDivisionTeams", "/divisions/div_404/teams", fiber.StatusNotFound, -1},
		{"UnknownTeam", "/divisions/div_1/teams/team_404/memberships", fiber.StatusNotFound, -1},
		{"TeamInOtherDivision", "/divisions/div_2/teams/team_a_03/memberships", fiber.StatusNotFound, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := get(t, app, tt.path)
			assert.Equal(t, tt.status, status)
			if tt.count < 0 {
				return
			}
			var items []map[string]any
			require.NoError(t, json.Unmarshal(body, &items))
			assert.Len(t, items, tt.count)
		})
	}
}

func TestHandler_GetDivision(t *testing.T) {
	app := setupApp(t)

	status, body := get(t, app, "/divisions/div_1")
	require.Equal(t, fiber.StatusOK, status)

	var d map[string]any
	require.NoError(t, json.Unmarshal(body, &d))
	assert.Equal(t, "div_1", d["id"])
	assert.Equal(t, "APA", d["league"])

	status, _ = get(t, app, "/divisions/div_404")
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestNewFeature_DisabledWithoutDB(t *testing.T) {
	f := NewFeature(nil, zap.NewNop())
	assert.Equal(t, "league", f.Name())
	assert.False(t, f.IsEnabled())
}
