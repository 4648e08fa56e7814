package client

import (
	"errors"
	"path/filepath"
	"testing"

	"hacknet/models"
)

func testSession(t *testing.T) *Session {
	t.Helper()
	return NewSession(filepath.Join(t.TempDir(), "session.json"))
}

func authedNavigator(t *testing.T) (*Navigator, *Roster, *Session) {
	t.Helper()
	sess := testSession(t)
	roster := NewRoster()
	nav := NewNavigator(sess, roster)
	nav.Authenticate(&models.User{ID: 1, Name: "Ada"}, "tok")
	return nav, roster, sess
}

func TestDeriveView(t *testing.T) {
	team := &models.Team{ID: 3, Name: "Ship It"}

	tests := []struct {
		name  string
		entry *HistoryEntry
		want  ViewState
	}{
		{"nil entry", nil, ViewState{View: ViewEventBoard}},
		{"empty entry", &HistoryEntry{}, ViewState{View: ViewEventBoard}},
		{"teams without focus", &HistoryEntry{View: "teams"}, ViewState{View: ViewTeamBoard}},
		{"teams with focus", &HistoryEntry{View: "teams", CurrentTeam: team}, ViewState{View: ViewTeamWorkspace, CurrentTeam: team}},
		{"unknown view", &HistoryEntry{View: "settings"}, ViewState{View: ViewEventBoard}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveView(tt.entry)
			if got.View != tt.want.View || got.CurrentTeam != tt.want.CurrentTeam {
				t.Errorf("DeriveView(%+v) = %+v, want %+v", tt.entry, got, tt.want)
			}
		})
	}
}

func TestNavigatorStartsUnauthenticated(t *testing.T) {
	nav := NewNavigator(testSession(t), NewRoster())
	if nav.View() != ViewUnauthenticated {
		t.Fatalf("fresh navigator view = %v", nav.View())
	}
}

func TestNavigatorResumesPersistedSession(t *testing.T) {
	sess := testSession(t)
	sess.SetUser(&models.User{ID: 1}, "tok")

	nav := NewNavigator(sess, NewRoster())
	if nav.View() != ViewEventBoard {
		t.Fatalf("persisted session should land on the event board, got %v", nav.View())
	}
}

func TestNavigatorFullRoundTrip(t *testing.T) {
	nav, roster, _ := authedNavigator(t)
	team := models.Team{ID: 5, HostID: 1, Name: "Ship It"}
	roster.SetTeams([]models.Team{team})

	if err := nav.SelectEvent(&models.Event{ID: 2}); err != nil {
		t.Fatalf("SelectEvent: %v", err)
	}
	if nav.View() != ViewTeamBoard {
		t.Fatalf("after SelectEvent view = %v", nav.View())
	}

	if err := nav.EnterWorkspace(team); err != nil {
		t.Fatalf("EnterWorkspace: %v", err)
	}
	if nav.View() != ViewTeamWorkspace || nav.CurrentTeam() == nil || nav.CurrentTeam().ID != 5 {
		t.Fatalf("after EnterWorkspace state = %+v", nav.State())
	}

	nav.Back()
	if nav.View() != ViewTeamBoard || nav.CurrentTeam() != nil {
		t.Fatalf("back from workspace: view=%v team=%v", nav.View(), nav.CurrentTeam())
	}

	nav.Back()
	if nav.View() != ViewEventBoard || nav.CurrentTeam() != nil {
		t.Fatalf("back from team board: view=%v team=%v", nav.View(), nav.CurrentTeam())
	}

	// at the oldest entry back stays put
	nav.Back()
	if nav.View() != ViewEventBoard {
		t.Fatalf("back at history start moved to %v", nav.View())
	}

	nav.HistoryForward()
	if nav.View() != ViewTeamBoard {
		t.Fatalf("forward should restore the team board, got %v", nav.View())
	}
	nav.HistoryForward()
	if nav.View() != ViewTeamWorkspace || nav.CurrentTeam() == nil {
		t.Fatalf("forward should restore the workspace, got %+v", nav.State())
	}
}

func TestNavigatorPushTruncatesForward(t *testing.T) {
	nav, roster, _ := authedNavigator(t)
	team := models.Team{ID: 5, HostID: 1}
	roster.SetTeams([]models.Team{team})

	nav.SelectEvent(&models.Event{ID: 2})
	nav.EnterWorkspace(team)
	nav.Back()

	// a new push from here must drop the stale workspace entry
	if err := nav.EnterWorkspace(models.Team{ID: 6, HostID: 1}); err != nil {
		t.Fatalf("EnterWorkspace: %v", err)
	}
	nav.HistoryForward()
	if nav.CurrentTeam() == nil || nav.CurrentTeam().ID != 6 {
		t.Fatalf("forward after a new push should stay on the new entry, got %+v", nav.State())
	}
}

func TestNavigatorWorkspaceGuards(t *testing.T) {
	sess := testSession(t)
	roster := NewRoster()
	nav := NewNavigator(sess, roster)
	team := models.Team{ID: 5, HostID: 99}

	if err := nav.EnterWorkspace(team); !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("unauthenticated entry: got %v", err)
	}

	nav.Authenticate(&models.User{ID: 1}, "tok")
	if err := nav.EnterWorkspace(team); !errors.Is(err, ErrNoEventSelected) {
		t.Errorf("entry without an event: got %v", err)
	}

	nav.SelectEvent(&models.Event{ID: 2})
	if err := nav.EnterWorkspace(team); !errors.Is(err, ErrWorkspaceDenied) {
		t.Errorf("entry without a request: got %v", err)
	}

	roster.MarkPending(5)
	if err := nav.EnterWorkspace(team); err != nil {
		t.Errorf("entry with a pending request rejected: %v", err)
	}
}

func TestNavigatorLogout(t *testing.T) {
	nav, roster, sess := authedNavigator(t)
	roster.SetTeams(sampleTeams())
	roster.MarkPending(1)
	nav.SelectEvent(&models.Event{ID: 2})

	if err := nav.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if nav.View() != ViewUnauthenticated {
		t.Errorf("view after logout = %v", nav.View())
	}
	if sess.Authenticated() {
		t.Error("session still authenticated after logout")
	}
	if len(roster.All()) != 0 || roster.PendingCount() != 0 {
		t.Error("roster state survived logout")
	}
}
