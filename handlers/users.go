// handlers/users.go - profile endpoints
package handlers

import (
	"time"

	"hacknet/database"
	"hacknet/matching"
	"hacknet/middleware"
	"hacknet/models"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
)

// GetCurrentUser returns the caller's profile
// GET /api/users/me
func GetCurrentUser(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	db := database.GetDB()

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "User not found"})
	}

	return c.JSON(fiber.Map{"success": true, "user": user})
}

// UpdateCurrentUser updates the caller's display name and skill tags. Skills
// are normalized to lower case so ranking and filtering compare directly.
// PUT /api/users/me
func UpdateCurrentUser(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	var req struct {
		Name   string   `json:"name"`
		Skills []string `json:"skills"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	db := database.GetDB()

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "User not found"})
	}

	updates := map[string]interface{}{
		"skills":     pq.StringArray(matching.NormalizeSkills(req.Skills)),
		"updated_at": time.Now(),
	}
	if req.Name != "" {
		updates["name"] = req.Name
	}

	if err := db.Model(&user).Updates(updates).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update profile"})
	}

	db.First(&user, userID)

	return c.JSON(fiber.Map{"success": true, "user": user})
}
