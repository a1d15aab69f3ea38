package league

import (
	"errors"

	"league-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for league data.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the league routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	divisions := app.Group("/divisions")
	divisions.Get("/:id", h.HandleGetDivision)
	divisions.Get("/:id/teams", h.HandleListTeams)
	divisions.Get("/:id/matches", h.HandleListMatches)
	divisions.Get("/:id/teams/:teamId/memberships", h.HandleListMemberships)
}

// HandleGetDivision returns a single division.
// @Summary Get Division
// @Description Get an imported division by id.
// @Tags league
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Division id (e.g. 'div_418320')"
// @Success 200 {object} models.Division "Division"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /divisions/{id} [get]
func (h *Handler) HandleGetDivision(c *fiber.Ctx) error {
	d, err := h.service.Division(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, "Division lookup failed", err)
	}
	return c.JSON(d)
}

// HandleListTeams returns the teams of a division.
// @Summary List Teams
// @Description List the teams imported into a division.
// @Tags league
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Division id"
// @Success 200 {array} models.Team "Teams"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /divisions/{id}/teams [get]
func (h *Handler) HandleListTeams(c *fiber.Ctx) error {
	teams, err := h.service.Teams(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, "Team listing failed", err)
	}
	return c.JSON(teams)
}

// HandleListMatches returns the schedule of a division.
// @Summary List Matches
// @Description List the scheduled matches of a division ordered by week.
// @Tags league
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Division id"
// @Success 200 {array} models.TeamMatch "Matches"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /divisions/{id}/matches [get]
func (h *Handler) HandleListMatches(c *fiber.Ctx) error {
	matches, err := h.service.Matches(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, "Match listing failed", err)
	}
	return c.JSON(matches)
}

// HandleListMemberships returns the roster of a team.
// @Summary List Memberships
// @Description List the player memberships of a team.
// @Tags league
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Division id"
// @Param teamId path string true "Team id (e.g. 'team_we_dem_boyz_03')"
// @Success 200 {array} models.TeamMembership "Memberships"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /divisions/{id}/teams/{teamId}/memberships [get]
func (h *Handler) HandleListMemberships(c *fiber.Ctx) error {
	memberships, err := h.service.Memberships(c.Context(), c.Params("id"), c.Params("teamId"))
	if err != nil {
		return h.fail(c, "Membership listing failed", err)
	}
	return c.JSON(memberships)
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	if errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	logger.WithRayID(h.service.logger, c).Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
