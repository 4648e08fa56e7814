// services/recommend.go - bridge to the external ranking engine
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"hacknet/models"

	"gorm.io/gorm"
)

var (
	ErrEntitlementRequired = errors.New("premium entitlement required")
	ErrServiceUnavailable  = errors.New("ranking engine unavailable")
	ErrMalformedResponse   = errors.New("malformed ranking engine response")
)

// UserSource loads the persisted user record the entitlement check runs
// against. Client-supplied flags never reach the check.
type UserSource interface {
	UserByID(id uint) (*models.User, error)
}

// GormUserSource reads users straight from the database.
type GormUserSource struct {
	DB *gorm.DB
}

func (g GormUserSource) UserByID(id uint) (*models.User, error) {
	var user models.User
	if err := g.DB.First(&user, id).Error; err != nil {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

// RecommendService delegates team ranking to the external engine. The engine
// is opaque and possibly unavailable: scores are transient, never persisted,
// and a replay with the same inputs may score differently.
type RecommendService struct {
	users     UserSource
	engineURL string
	client    *http.Client
}

func NewRecommendService(users UserSource, engineURL string, client *http.Client) *RecommendService {
	if client == nil {
		client = http.DefaultClient
	}
	return &RecommendService{users: users, engineURL: engineURL, client: client}
}

type matchRequest struct {
	UserSkills []string      `json:"user_skills"`
	Teams      []models.Team `json:"teams"`
}

// RequestMatches ranks the candidate teams for the user. Entitlement is
// checked against the persisted user record, never a client-supplied flag,
// and a non-premium user causes no engine call at all. The returned list
// replaces the displayed roster; it is not merged with it.
func (s *RecommendService) RequestMatches(ctx context.Context, userID uint, teams []models.Team, userSkills []string) ([]models.Team, error) {
	user, err := s.users.UserByID(userID)
	if err != nil {
		return nil, err
	}

	if !user.IsPremium {
		return nil, ErrEntitlementRequired
	}

	if len(userSkills) == 0 {
		userSkills = user.Skills
	}

	body, err := json.Marshal(matchRequest{UserSkills: userSkills, Teams: teams})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.engineURL+"/recommend", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusForbidden:
		return nil, ErrEntitlementRequired
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, fmt.Errorf("%w: engine returned %d", ErrServiceUnavailable, resp.StatusCode)
	}

	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, ErrMalformedResponse
	}

	return normalizeRanking(raw)
}

// normalizeRanking folds the engine's two response shapes, a bare list or a
// {"recommendations": [...]} envelope, into one ordered slice. Anything else
// fails closed.
func normalizeRanking(raw json.RawMessage) ([]models.Team, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, ErrMalformedResponse
	}

	switch trimmed[0] {
	case '[':
		var ranked []models.Team
		if err := json.Unmarshal(trimmed, &ranked); err != nil {
			return nil, ErrMalformedResponse
		}
		return ranked, nil

	case '{':
		var envelope struct {
			Recommendations *[]models.Team `json:"recommendations"`
		}
		if err := json.Unmarshal(trimmed, &envelope); err != nil || envelope.Recommendations == nil {
			return nil, ErrMalformedResponse
		}
		return *envelope.Recommendations, nil
	}

	return nil, ErrMalformedResponse
}
