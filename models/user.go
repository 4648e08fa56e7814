// models/user.go
package models

import (
	"time"

	"github.com/lib/pq"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null;size:100" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`

	// Skill tags are normalized to lower case on write so matching and
	// filtering can compare them directly.
	Skills    pq.StringArray `gorm:"type:text[]" json:"skills"`
	IsPremium bool           `gorm:"default:false" json:"is_premium"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	LastLogin time.Time `json:"last_login"`
}

func (User) TableName() string {
	return "users"
}
