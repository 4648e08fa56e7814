// database/migrate.go - Database Migration Runner
package database

import (
	"log"

	"hacknet/models"
)

// RunMigrations runs all database migrations
func RunMigrations() {
	db := GetDB()
	log.Println("Running database migrations...")

	if err := db.AutoMigrate(
		&models.User{},
		&models.Event{},
		&models.Team{},
		&models.JoinRequest{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	createIndexes()
	SeedEvents(db)

	log.Println("Migrations completed")
}

func createIndexes() {
	db := GetDB()

	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_teams_host ON teams(host_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_teams_event ON teams(event_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_join_requests_user ON join_requests(user_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_join_requests_team ON join_requests(team_id)")
}
