// database/seed.go - Event reference data
package database

import (
	"log"
	"time"

	"hacknet/models"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// SeedEvents inserts the hackathon board entries if the table is empty.
// Events are reference data: never written to after seeding.
func SeedEvents(db *gorm.DB) {
	var count int64
	db.Model(&models.Event{}).Count(&count)
	if count > 0 {
		return
	}

	year := time.Now().Year()
	events := []models.Event{
		{
			Name:      "Smart India Hackathon",
			StartsAt:  time.Date(year, time.November, 15, 9, 0, 0, 0, time.UTC),
			EndsAt:    time.Date(year, time.November, 17, 18, 0, 0, 0, time.UTC),
			PrizePool: "₹1,00,000",
			Tags:      pq.StringArray{"GovTech", "AI", "Hardware"},
			Status:    models.EventLive,
		},
		{
			Name:      "ETHIndia",
			StartsAt:  time.Date(year, time.December, 2, 9, 0, 0, 0, time.UTC),
			EndsAt:    time.Date(year, time.December, 4, 18, 0, 0, 0, time.UTC),
			PrizePool: "$10,000",
			Tags:      pq.StringArray{"Blockchain", "Web3", "DeFi"},
			Status:    models.EventUpcoming,
		},
		{
			Name:      "HackMIT",
			StartsAt:  time.Date(year+1, time.January, 20, 9, 0, 0, 0, time.UTC),
			EndsAt:    time.Date(year+1, time.January, 22, 18, 0, 0, 0, time.UTC),
			PrizePool: "$15,000",
			Tags:      pq.StringArray{"Open Innovation", "Cloud"},
			Status:    models.EventRegistrationOpen,
		},
	}

	if err := db.Create(&events).Error; err != nil {
		log.Printf("Failed to seed events: %v", err)
		return
	}
	log.Printf("Seeded %d events", len(events))
}
