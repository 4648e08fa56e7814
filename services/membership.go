// services/membership.go - join-request ledger
package services

import (
	"errors"
	"time"

	"hacknet/models"

	"gorm.io/gorm"
)

var (
	ErrAlreadyRequested = errors.New("join request already exists for this team")
	ErrSelfHostConflict = errors.New("hosts cannot request to join their own team")
	ErrTeamNotFound     = errors.New("team not found")
	ErrUserNotFound     = errors.New("user not found")
)

// MembershipService tracks which teams a user has asked to join and which
// teams a user hosts. A request has no accept/reject state: it either exists
// or it does not, and its existence is what grants workspace entry.
type MembershipService struct {
	db *gorm.DB
}

func NewMembershipService(db *gorm.DB) *MembershipService {
	return &MembershipService{db: db}
}

// RequestJoin records a user's intent to join a team. At most one request
// may exist per (user, team), and a host can never request their own team.
func (s *MembershipService) RequestJoin(userID, teamID uint) (*models.JoinRequest, error) {
	var team models.Team
	if err := s.db.First(&team, teamID).Error; err != nil {
		return nil, ErrTeamNotFound
	}

	if team.HostID == userID {
		return nil, ErrSelfHostConflict
	}

	if s.IsPending(userID, teamID) {
		return nil, ErrAlreadyRequested
	}

	req := &models.JoinRequest{
		UserID:    userID,
		TeamID:    teamID,
		CreatedAt: time.Now(),
	}

	if err := s.db.Create(req).Error; err != nil {
		// The unique index on (user_id, team_id) is the authority when two
		// requests race past the existence check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyRequested
		}
		return nil, err
	}

	return req, nil
}

// IsPending reports whether a join request exists for the pair.
func (s *MembershipService) IsPending(userID, teamID uint) bool {
	var count int64
	s.db.Model(&models.JoinRequest{}).
		Where("user_id = ? AND team_id = ?", userID, teamID).
		Count(&count)
	return count > 0
}

// IsHost reports whether the user hosts the given team.
func (s *MembershipService) IsHost(userID uint, team models.Team) bool {
	return team.HostID == userID
}

// CanEnterWorkspace reports whether the user may enter the team's private
// workspace: hosts always can, everyone else needs an existing request.
func (s *MembershipService) CanEnterWorkspace(userID, teamID uint) bool {
	var team models.Team
	if err := s.db.First(&team, teamID).Error; err != nil {
		return false
	}
	return s.IsHost(userID, team) || s.IsPending(userID, teamID)
}

// ListPendingTeamIDs returns the IDs of every team the user has requested to
// join. Backs the per-team button state and rehydration after reload.
func (s *MembershipService) ListPendingTeamIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := s.db.Model(&models.JoinRequest{}).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Pluck("team_id", &ids).Error
	return ids, err
}
