// client/navigation.go - view state machine and history
package client

import (
	"errors"

	"hacknet/models"
)

// View is one of the four screens the client can show.
type View string

const (
	ViewUnauthenticated View = "unauthenticated"
	ViewEventBoard      View = "events"
	ViewTeamBoard       View = "teams"
	ViewTeamWorkspace   View = "workspace"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNoEventSelected  = errors.New("no event selected")
	ErrWorkspaceDenied  = errors.New("workspace entry requires hosting or a join request")
)

// HistoryEntry is the serializable payload pushed per navigation step. It is
// deliberately minimal: a view can always be reconstructed from it alone.
type HistoryEntry struct {
	View        string       `json:"view,omitempty"`
	CurrentTeam *models.Team `json:"currentTeam,omitempty"`
}

// ViewState is what a history entry resolves to.
type ViewState struct {
	View        View
	CurrentTeam *models.Team
}

// DeriveView resolves a history entry into a view, independent of any
// component state. A nil or empty entry means the event board with no team
// in focus, matching a fresh load.
func DeriveView(entry *HistoryEntry) ViewState {
	if entry == nil || entry.View == "" {
		return ViewState{View: ViewEventBoard}
	}

	if entry.View == "teams" {
		if entry.CurrentTeam != nil {
			return ViewState{View: ViewTeamWorkspace, CurrentTeam: entry.CurrentTeam}
		}
		return ViewState{View: ViewTeamBoard}
	}

	return ViewState{View: ViewEventBoard}
}

// Navigator is the finite state machine over the four views. Every transition
// that changes what the back button should do pushes a history entry, and
// history replay goes through DeriveView only, so back/forward reproduces
// views exactly as direct interaction would.
type Navigator struct {
	session *Session
	roster  *Roster

	state   ViewState
	history []HistoryEntry
	index   int
}

// NewNavigator starts unauthenticated, or on the event board when the
// session already holds a persisted user.
func NewNavigator(session *Session, roster *Roster) *Navigator {
	n := &Navigator{
		session: session,
		roster:  roster,
		state:   ViewState{View: ViewUnauthenticated},
		history: []HistoryEntry{{}},
	}
	if session != nil && session.Authenticated() {
		n.state = ViewState{View: ViewEventBoard}
	}
	return n
}

// State returns the current view state.
func (n *Navigator) State() ViewState {
	return n.state
}

// View returns the current view.
func (n *Navigator) View() View {
	return n.state.View
}

// CurrentTeam returns the team in focus, or nil.
func (n *Navigator) CurrentTeam() *models.Team {
	return n.state.CurrentTeam
}

// Authenticate moves from Unauthenticated to the event board.
func (n *Navigator) Authenticate(user *models.User, token string) {
	n.session.SetUser(user, token)
	n.state = ViewState{View: ViewEventBoard}
	n.history = []HistoryEntry{{}}
	n.index = 0
}

// SelectEvent scopes the roster to the chosen event and shows the team board.
func (n *Navigator) SelectEvent(event *models.Event) error {
	if !n.session.Authenticated() {
		return ErrNotAuthenticated
	}

	n.session.SelectEvent(event)
	n.push(HistoryEntry{View: "teams"})
	n.state = ViewState{View: ViewTeamBoard}
	return nil
}

// EnterWorkspace shows a team's private workspace. Entry is only granted to
// the team's host or a user holding a join request.
func (n *Navigator) EnterWorkspace(team models.Team) error {
	if !n.session.Authenticated() {
		return ErrNotAuthenticated
	}
	if n.state.View != ViewTeamBoard {
		return ErrNoEventSelected
	}
	if !n.roster.CanEnter(n.session.User(), team) {
		return ErrWorkspaceDenied
	}

	t := team
	n.push(HistoryEntry{View: "teams", CurrentTeam: &t})
	n.state = ViewState{View: ViewTeamWorkspace, CurrentTeam: &t}
	return nil
}

// Back leaves the workspace for the team board, clearing the team in focus.
// Equivalent to one browser-back step.
func (n *Navigator) Back() {
	n.HistoryBack()
}

// Logout drops all session state and the persisted credential from any view.
func (n *Navigator) Logout() error {
	err := n.session.Clear()
	n.roster.SetTeams(nil)
	n.roster.SetPending(nil)
	n.state = ViewState{View: ViewUnauthenticated}
	n.history = []HistoryEntry{{}}
	n.index = 0
	return err
}

// HistoryBack replays the previous history entry, as the browser back button
// does. At the oldest entry it stays put.
func (n *Navigator) HistoryBack() {
	if n.index == 0 {
		n.state = DeriveView(nil)
		return
	}
	n.index--
	n.applyEntry()
}

// HistoryForward replays the next history entry.
func (n *Navigator) HistoryForward() {
	if n.index >= len(n.history)-1 {
		return
	}
	n.index++
	n.applyEntry()
}

func (n *Navigator) applyEntry() {
	entry := n.history[n.index]
	n.state = DeriveView(&entry)
}

func (n *Navigator) push(entry HistoryEntry) {
	// Pushing truncates any forward entries, as pushState does.
	n.history = append(n.history[:n.index+1], entry)
	n.index = len(n.history) - 1
}
