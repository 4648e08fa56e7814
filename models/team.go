// models/team.go
package models

import (
	"time"

	"github.com/lib/pq"
)

type Team struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"not null;size:100"`
	Description string `json:"description" gorm:"type:text"`

	// Required skills are stored as entered by the host; comparison is
	// always case-insensitive.
	RequiredSkills pq.StringArray `json:"required_skills" gorm:"type:text[]"`

	HostID  uint  `json:"host_id" gorm:"not null;index"`
	Host    *User `json:"host,omitempty" gorm:"foreignKey:HostID"`
	EventID uint  `json:"event_id" gorm:"index"`

	// Score is assigned by a ranking pass and never persisted. Zero means
	// the team has not been ranked.
	Score         int      `json:"score,omitempty" gorm:"-"`
	MatchedSkills []string `json:"matched_skills,omitempty" gorm:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Team) TableName() string {
	return "teams"
}
