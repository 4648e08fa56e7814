// services/team.go - team roster business logic
package services

import (
	"errors"
	"time"

	"hacknet/models"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type TeamService struct {
	db *gorm.DB
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{db: db}
}

// CreateTeam creates a new team with the user as host.
func (s *TeamService) CreateTeam(name, description string, requiredSkills []string, eventID, hostID uint) (*models.Team, error) {
	if name == "" {
		return nil, errors.New("team name is required")
	}

	if len(requiredSkills) == 0 {
		requiredSkills = []string{"general"}
	}

	team := &models.Team{
		Name:           name,
		Description:    description,
		RequiredSkills: pq.StringArray(requiredSkills),
		HostID:         hostID,
		EventID:        eventID,
		CreatedAt:      time.Now(),
	}

	if err := s.db.Create(team).Error; err != nil {
		return nil, err
	}

	return team, nil
}

// GetTeamByID retrieves a team with its host preloaded.
func (s *TeamService) GetTeamByID(teamID uint) (*models.Team, error) {
	var team models.Team
	err := s.db.Preload("Host").First(&team, teamID).Error
	if err != nil {
		return nil, ErrTeamNotFound
	}
	return &team, nil
}

// ListTeams returns the full roster, newest first. When eventID is non-zero
// the roster is scoped to that event.
func (s *TeamService) ListTeams(eventID uint) ([]models.Team, error) {
	var teams []models.Team

	query := s.db.Order("id DESC")
	if eventID != 0 {
		query = query.Where("event_id = ?", eventID)
	}

	err := query.Find(&teams).Error
	return teams, err
}

// ListEvents returns the hackathon board.
func (s *TeamService) ListEvents() ([]models.Event, error) {
	var events []models.Event
	err := s.db.Order("starts_at ASC").Find(&events).Error
	return events, err
}
