// models/event.go
package models

import (
	"time"

	"github.com/lib/pq"
)

type EventStatus string

const (
	EventLive             EventStatus = "live"
	EventUpcoming         EventStatus = "upcoming"
	EventRegistrationOpen EventStatus = "registration_open"
)

// Event is a hackathon. Reference data: seeded at migration time and only
// read afterwards. Selecting an event scopes which teams are visible.
type Event struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"not null;size:150"`
	StartsAt  time.Time      `json:"starts_at"`
	EndsAt    time.Time      `json:"ends_at"`
	PrizePool string         `json:"prize_pool" gorm:"size:50"`
	Tags      pq.StringArray `json:"tags" gorm:"type:text[]"`
	Status    EventStatus    `json:"status" gorm:"size:30;index"`

	CreatedAt time.Time `json:"created_at"`
}

func (Event) TableName() string {
	return "events"
}
