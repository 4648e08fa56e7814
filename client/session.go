// client/session.go - client-side session state
package client

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"hacknet/models"
)

// OpClass identifies a class of long-running operation. One submission per
// class may be in flight at a time.
type OpClass string

const (
	OpRanking OpClass = "ranking"
	OpUpgrade OpClass = "upgrade"
	OpAuth    OpClass = "auth"
)

// Session owns all client-side state for the lifetime of one run. The
// authenticated user and token are the only pieces that survive a restart;
// they persist to a JSON file with an explicit Load/Save/Clear lifecycle.
// Everything else is transient and rebuilt from the server.
type Session struct {
	mu   sync.Mutex
	path string

	user  *models.User
	token string

	event    *models.Event
	inFlight map[OpClass]bool
}

// NewSession creates a session persisting its credential to path. The file
// does not need to exist yet.
func NewSession(path string) *Session {
	return &Session{
		path:     path,
		inFlight: make(map[OpClass]bool),
	}
}

type storedCredential struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// Load rehydrates the persisted credential. A missing file is not an error:
// the session simply starts unauthenticated.
func (s *Session) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	var cred storedCredential
	if err := json.Unmarshal(raw, &cred); err != nil {
		// A corrupt credential file means starting over, not crashing.
		return nil
	}

	s.user = cred.User
	s.token = cred.Token
	return nil
}

// Save persists the current credential.
func (s *Session) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.MarshalIndent(storedCredential{User: s.user, Token: s.token}, "", "  ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, raw, 0o600)
}

// Clear forgets the session and removes the persisted credential.
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.token = ""
	s.event = nil
	s.inFlight = make(map[OpClass]bool)

	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// SetUser installs the authenticated user and token.
func (s *Session) SetUser(user *models.User, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	s.token = token
}

// User returns the authenticated user, or nil.
func (s *Session) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Token returns the bearer token, or empty.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Authenticated reports whether a user is loaded.
func (s *Session) Authenticated() bool {
	return s.User() != nil
}

// SelectEvent records the hackathon in scope.
func (s *Session) SelectEvent(event *models.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.event = event
}

// Event returns the hackathon in scope, or nil.
func (s *Session) Event() *models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.event
}

// BeginOp marks an operation class in flight. It returns false when one is
// already running, which the UI uses to keep the triggering control disabled.
func (s *Session) BeginOp(class OpClass) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inFlight[class] {
		return false
	}
	s.inFlight[class] = true
	return true
}

// EndOp clears the in-flight mark. Callers defer this so the flag clears on
// success and failure alike.
func (s *Session) EndOp(class OpClass) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, class)
}

// OpInFlight reports whether an operation class is running.
func (s *Session) OpInFlight(class OpClass) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight[class]
}
