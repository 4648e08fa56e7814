// handlers/billing.go - simulated premium upgrade
package handlers

import (
	"time"

	"hacknet/database"
	"hacknet/middleware"
	"hacknet/models"

	"github.com/gofiber/fiber/v2"
)

// Upgrade flips the caller's premium flag. There is no real payment flow:
// the upgrade is a simulation, the entitlement it grants is real.
// POST /api/billing/upgrade
func Upgrade(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	db := database.GetDB()

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "User not found"})
	}

	if user.IsPremium {
		return c.JSON(fiber.Map{"success": true, "user": user})
	}

	updates := map[string]interface{}{
		"is_premium": true,
		"updated_at": time.Now(),
	}
	if err := db.Model(&user).Updates(updates).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to upgrade"})
	}

	db.First(&user, userID)

	return c.JSON(fiber.Map{"success": true, "user": user})
}
