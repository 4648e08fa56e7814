// cmd/rankd/main.go - standalone team ranking engine
//
// Scores candidate teams by case-insensitive skill intersection and returns
// them best match first, wrapped in a recommendations envelope. The API
// server treats this process as an opaque scorer behind RANK_ENGINE_URL.
package main

import (
	"log"
	"os"

	"hacknet/matching"
	"hacknet/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

type recommendRequest struct {
	UserSkills []string      `json:"user_skills"`
	Teams      []models.Team `json:"teams"`
}

func newApp() *fiber.App {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	app.Post("/recommend", func(c *fiber.Ctx) error {
		var req recommendRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
		}

		ranked := matching.Rank(req.Teams, req.UserSkills)
		if ranked == nil {
			ranked = []models.Team{}
		}

		return c.JSON(fiber.Map{"recommendations": ranked})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	return app
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	app := newApp()

	port := os.Getenv("RANK_ENGINE_PORT")
	if port == "" {
		port = "8000"
	}

	log.Printf("Ranking engine starting on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Failed to start ranking engine:", err)
	}
}
