// handlers/teams.go - team roster and join-request HTTP handlers
package handlers

import (
	"errors"
	"strconv"

	"hacknet/database"
	"hacknet/metrics"
	"hacknet/middleware"
	"hacknet/services"

	"github.com/gofiber/fiber/v2"
)

var (
	teamService       *services.TeamService
	membershipService *services.MembershipService
)

// InitTeamHandlers initializes the team-facing services
func InitTeamHandlers() {
	db := database.GetDB()
	if db == nil {
		panic("Database not initialized before InitTeamHandlers")
	}
	teamService = services.NewTeamService(db)
	membershipService = services.NewMembershipService(db)
}

// ListTeams returns the full roster, optionally scoped to an event
// GET /api/teams?event_id=
func ListTeams(c *fiber.Ctx) error {
	var eventID uint
	if raw := c.Query("event_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{
				"success": false,
				"error":   "Invalid event ID",
			})
		}
		eventID = uint(parsed)
	}

	teams, err := teamService.ListTeams(eventID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to retrieve teams",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"teams":   teams,
		"count":   len(teams),
	})
}

// CreateTeam creates a new team hosted by the caller
// POST /api/teams
func CreateTeam(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	var req struct {
		Name           string   `json:"name"`
		Description    string   `json:"description"`
		RequiredSkills []string `json:"required_skills"`
		EventID        uint     `json:"event_id"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if req.Name == "" {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Team name is required",
		})
	}

	team, err := teamService.CreateTeam(req.Name, req.Description, req.RequiredSkills, req.EventID, userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"team":    team,
	})
}

// RequestJoin records the caller's intent to join a team
// POST /api/teams/requests
func RequestJoin(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	var req struct {
		TeamID uint `json:"team_id"`
	}

	if err := c.BodyParser(&req); err != nil || req.TeamID == 0 {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Team ID is required",
		})
	}

	_, err = membershipService.RequestJoin(userID, req.TeamID)
	switch {
	case errors.Is(err, services.ErrAlreadyRequested):
		metrics.JoinRequests.WithLabelValues("duplicate").Inc()
		return c.Status(409).JSON(fiber.Map{"success": false, "error": err.Error()})
	case errors.Is(err, services.ErrSelfHostConflict):
		metrics.JoinRequests.WithLabelValues("self_host").Inc()
		return c.Status(422).JSON(fiber.Map{"success": false, "error": err.Error()})
	case errors.Is(err, services.ErrTeamNotFound):
		return c.Status(404).JSON(fiber.Map{"success": false, "error": err.Error()})
	case err != nil:
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to record request"})
	}

	metrics.JoinRequests.WithLabelValues("created").Inc()
	return c.Status(201).JSON(fiber.Map{"success": true})
}

// MyRequests returns the IDs of every team the caller has requested to join
// GET /api/teams/requests
func MyRequests(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	ids, err := membershipService.ListPendingTeamIDs(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to retrieve requests",
		})
	}

	if ids == nil {
		ids = []uint{}
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"team_ids": ids,
	})
}

// ListEvents returns the hackathon board
// GET /api/events
func ListEvents(c *fiber.Ctx) error {
	events, err := teamService.ListEvents()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to retrieve events",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"events":  events,
	})
}
