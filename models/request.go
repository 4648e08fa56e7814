// models/request.go
package models

import "time"

// JoinRequest records a user's intent to join a team. Existence is the only
// state: there is no accept/reject transition, a team grants workspace entry
// as soon as the request exists.
type JoinRequest struct {
	ID     uint  `json:"id" gorm:"primaryKey"`
	UserID uint  `json:"user_id" gorm:"not null;uniqueIndex:idx_join_requests_pair"`
	User   *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	TeamID uint  `json:"team_id" gorm:"not null;uniqueIndex:idx_join_requests_pair"`
	Team   *Team `json:"team,omitempty" gorm:"foreignKey:TeamID"`

	CreatedAt time.Time `json:"created_at"`
}

func (JoinRequest) TableName() string {
	return "join_requests"
}
