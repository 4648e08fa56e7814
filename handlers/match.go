// handlers/match.go - recommendation bridge endpoint
package handlers

import (
	"errors"
	"net/http"
	"time"

	"hacknet/database"
	"hacknet/metrics"
	"hacknet/middleware"
	"hacknet/models"
	"hacknet/services"

	"github.com/gofiber/fiber/v2"
)

var recommendService *services.RecommendService

// InitMatchHandlers wires the bridge to the ranking engine
func InitMatchHandlers(engineURL string) {
	db := database.GetDB()
	if db == nil {
		panic("Database not initialized before InitMatchHandlers")
	}
	recommendService = services.NewRecommendService(services.GormUserSource{DB: db}, engineURL, &http.Client{
		Timeout: 10 * time.Second,
	})
}

// RequestMatches ranks the submitted candidate teams for the caller.
// Entitlement is verified against the stored user record; the response list
// replaces the roster on the client side.
// POST /api/match
func RequestMatches(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	var req struct {
		Teams      []models.Team `json:"teams"`
		UserSkills []string      `json:"user_skills"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	start := time.Now()
	ranked, err := recommendService.RequestMatches(c.UserContext(), userID, req.Teams, req.UserSkills)
	metrics.MatchLatency.Observe(time.Since(start).Seconds())

	switch {
	case errors.Is(err, services.ErrEntitlementRequired):
		metrics.MatchRequests.WithLabelValues("entitlement").Inc()
		return c.Status(403).JSON(fiber.Map{"success": false, "error": "Premium required"})
	case errors.Is(err, services.ErrServiceUnavailable):
		metrics.MatchRequests.WithLabelValues("unavailable").Inc()
		return c.Status(502).JSON(fiber.Map{"success": false, "error": "Ranking engine offline"})
	case errors.Is(err, services.ErrMalformedResponse):
		metrics.MatchRequests.WithLabelValues("malformed").Inc()
		return c.Status(502).JSON(fiber.Map{"success": false, "error": "Ranking engine returned unexpected data"})
	case errors.Is(err, services.ErrUserNotFound):
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "User not found"})
	case err != nil:
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Match request failed"})
	}

	metrics.MatchRequests.WithLabelValues("ranked").Inc()
	if ranked == nil {
		ranked = []models.Team{}
	}

	return c.JSON(fiber.Map{
		"success":         true,
		"recommendations": ranked,
	})
}
