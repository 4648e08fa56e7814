// client/api.go - HTTP client for the HacNet API server
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"hacknet/models"
)

// API talks to the HacNet server. Zero value is not usable; construct with
// NewAPI.
type API struct {
	base   string
	client *http.Client
	token  string
}

func NewAPI(baseURL string, httpClient *http.Client) *API {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &API{base: baseURL, client: httpClient}
}

// SetToken installs the bearer token used on authenticated calls.
func (a *API) SetToken(token string) {
	a.token = token
}

func (a *API) doJSON(ctx context.Context, method, path string, in, out any) (int, error) {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return 0, err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.base+path, body)
	if err != nil {
		return 0, err
	}

	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, nil
	}

	if out == nil {
		return resp.StatusCode, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, ErrMalformedResponse
	}
	return resp.StatusCode, nil
}

type loginPayload struct {
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Name     string   `json:"name,omitempty"`
	Skills   []string `json:"skills,omitempty"`
}

type authReply struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	User    *models.User `json:"user"`
	Error   string       `json:"error"`
}

// Login authenticates, or signs up when the email is unknown and signup
// fields are given. On success the returned token is installed on the client.
func (a *API) Login(ctx context.Context, email, password, name string, skills []string) (*models.User, error) {
	var reply authReply
	status, err := a.doJSON(ctx, http.MethodPost, "/api/auth/login", loginPayload{
		Email:    email,
		Password: password,
		Name:     name,
		Skills:   skills,
	}, &reply)
	if err != nil {
		return nil, err
	}

	switch status {
	case http.StatusOK, http.StatusCreated:
	case http.StatusUnauthorized:
		return nil, ErrInvalidCredentials
	case http.StatusBadRequest:
		return nil, ErrSignupRequiresName
	default:
		return nil, fmt.Errorf("%w: login returned %d", ErrServiceUnavailable, status)
	}

	if reply.User == nil || reply.Token == "" {
		return nil, ErrMalformedResponse
	}

	a.token = reply.Token
	return reply.User, nil
}

// FetchRoster returns the full team roster, optionally scoped to an event.
func (a *API) FetchRoster(ctx context.Context, eventID uint) ([]models.Team, error) {
	path := "/api/teams"
	if eventID != 0 {
		path += "?event_id=" + strconv.FormatUint(uint64(eventID), 10)
	}

	var reply struct {
		Teams []models.Team `json:"teams"`
	}
	status, err := a.doJSON(ctx, http.MethodGet, path, nil, &reply)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("%w: roster returned %d", ErrServiceUnavailable, status)
	}
	return reply.Teams, nil
}

// FetchEvents returns the hackathon board.
func (a *API) FetchEvents(ctx context.Context) ([]models.Event, error) {
	var reply struct {
		Events []models.Event `json:"events"`
	}
	status, err := a.doJSON(ctx, http.MethodGet, "/api/events", nil, &reply)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("%w: events returned %d", ErrServiceUnavailable, status)
	}
	return reply.Events, nil
}

// CreateTeam creates a team hosted by the caller and returns it.
func (a *API) CreateTeam(ctx context.Context, name, description string, requiredSkills []string, eventID uint) (*models.Team, error) {
	var reply struct {
		Team *models.Team `json:"team"`
	}
	status, err := a.doJSON(ctx, http.MethodPost, "/api/teams/", map[string]any{
		"name":            name,
		"description":     description,
		"required_skills": requiredSkills,
		"event_id":        eventID,
	}, &reply)
	if err != nil {
		return nil, err
	}
	if status != http.StatusCreated || reply.Team == nil {
		return nil, fmt.Errorf("%w: create team returned %d", ErrServiceUnavailable, status)
	}
	return reply.Team, nil
}

// PersistJoinRequest records a join request durably.
func (a *API) PersistJoinRequest(ctx context.Context, teamID uint) error {
	status, err := a.doJSON(ctx, http.MethodPost, "/api/teams/requests", map[string]uint{
		"team_id": teamID,
	}, nil)
	if err != nil {
		return err
	}

	switch status {
	case http.StatusCreated:
		return nil
	case http.StatusConflict:
		return ErrAlreadyRequested
	case http.StatusUnprocessableEntity:
		return ErrSelfHostConflict
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("%w: join request returned %d", ErrServiceUnavailable, status)
	}
}

// ListUserRequests returns the IDs of teams the caller has requested to
// join. Used to rehydrate ledger state after reload.
func (a *API) ListUserRequests(ctx context.Context) ([]uint, error) {
	var reply struct {
		TeamIDs []uint `json:"team_ids"`
	}
	status, err := a.doJSON(ctx, http.MethodGet, "/api/teams/requests", nil, &reply)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("%w: requests returned %d", ErrServiceUnavailable, status)
	}
	return reply.TeamIDs, nil
}

// UpgradeEntitlement flips the caller's premium flag.
func (a *API) UpgradeEntitlement(ctx context.Context) (*models.User, error) {
	var reply struct {
		User *models.User `json:"user"`
	}
	status, err := a.doJSON(ctx, http.MethodPost, "/api/billing/upgrade", struct{}{}, &reply)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK || reply.User == nil {
		return nil, fmt.Errorf("%w: upgrade returned %d", ErrServiceUnavailable, status)
	}
	return reply.User, nil
}

// RequestMatches asks the server to rank the candidate teams. The server
// re-verifies entitlement; a 403 here means the stored user record is not
// premium regardless of any local flag.
func (a *API) RequestMatches(ctx context.Context, teams []models.Team, userSkills []string) ([]models.Team, error) {
	var reply struct {
		Recommendations []models.Team `json:"recommendations"`
	}
	status, err := a.doJSON(ctx, http.MethodPost, "/api/match", map[string]any{
		"teams":       teams,
		"user_skills": userSkills,
	}, &reply)
	if err != nil {
		return nil, err
	}

	switch status {
	case http.StatusOK:
		return reply.Recommendations, nil
	case http.StatusForbidden:
		return nil, ErrEntitlementRequired
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusInternalServerError:
		return nil, ErrServiceUnavailable
	default:
		return nil, fmt.Errorf("%w: match returned %d", ErrServiceUnavailable, status)
	}
}

// UpdateProfile saves the caller's display name and skills.
func (a *API) UpdateProfile(ctx context.Context, name string, skills []string) (*models.User, error) {
	var reply struct {
		User *models.User `json:"user"`
	}
	status, err := a.doJSON(ctx, http.MethodPut, "/api/users/me", map[string]any{
		"name":   name,
		"skills": skills,
	}, &reply)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK || reply.User == nil {
		return nil, fmt.Errorf("%w: profile update returned %d", ErrServiceUnavailable, status)
	}
	return reply.User, nil
}
