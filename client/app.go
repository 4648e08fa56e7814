// client/app.go - ties session, roster, navigation and the API together
package client

import (
	"context"
	"errors"

	"hacknet/models"
)

// App is the top-level client process state: one session, one roster, one
// navigator, one API connection. All methods run on the caller's goroutine;
// state mutations execute to completion before the next event is processed.
type App struct {
	API       *API
	Session   *Session
	Roster    *Roster
	Navigator *Navigator
}

// NewApp builds a client rooted at serverURL, persisting its credential to
// credentialPath, and rehydrates any persisted session.
func NewApp(serverURL, credentialPath string) (*App, error) {
	session := NewSession(credentialPath)
	if err := session.Load(); err != nil {
		return nil, err
	}

	api := NewAPI(serverURL, nil)
	if token := session.Token(); token != "" {
		api.SetToken(token)
	}

	roster := NewRoster()
	app := &App{
		API:       api,
		Session:   session,
		Roster:    roster,
		Navigator: NewNavigator(session, roster),
	}
	return app, nil
}

// Login authenticates (or signs up) and lands on the event board. The
// credential is persisted so the next start skips the auth screen.
func (a *App) Login(ctx context.Context, email, password, name string, skills []string) (*models.User, error) {
	if !a.Session.BeginOp(OpAuth) {
		return nil, nil
	}
	defer a.Session.EndOp(OpAuth)

	user, err := a.API.Login(ctx, email, password, name, skills)
	if err != nil {
		return nil, err
	}

	a.Navigator.Authenticate(user, a.API.token)
	if err := a.Session.Save(); err != nil {
		return nil, err
	}

	return user, a.rehydrateLedger(ctx)
}

// rehydrateLedger pulls the user's pending requests from the server so the
// per-team affordances are correct after a reload.
func (a *App) rehydrateLedger(ctx context.Context) error {
	ids, err := a.API.ListUserRequests(ctx)
	if err != nil {
		return err
	}
	a.Roster.SetPending(ids)
	return nil
}

// Rehydrate restores client state after a restart with a persisted session.
func (a *App) Rehydrate(ctx context.Context) error {
	if !a.Session.Authenticated() {
		return nil
	}
	return a.rehydrateLedger(ctx)
}

// OpenEvent scopes the roster to an event and fetches its teams.
func (a *App) OpenEvent(ctx context.Context, event models.Event) error {
	if err := a.Navigator.SelectEvent(&event); err != nil {
		return err
	}

	teams, err := a.API.FetchRoster(ctx, event.ID)
	if err != nil {
		return err
	}
	a.Roster.SetTeams(teams)
	return nil
}

// RequestJoin checks the ledger invariants locally, persists the request and
// updates the cache so the team's affordance flips to pending/enter.
func (a *App) RequestJoin(ctx context.Context, team models.Team) error {
	if err := a.Roster.CheckRequest(a.Session.User(), team); err != nil {
		return err
	}

	if err := a.API.PersistJoinRequest(ctx, team.ID); err != nil {
		if errors.Is(err, ErrAlreadyRequested) {
			// Another tab got there first; adopt its result.
			a.Roster.MarkPending(team.ID)
		}
		return err
	}

	a.Roster.MarkPending(team.ID)
	return nil
}

// RunAIMatch ranks the unfiltered roster through the server. The triggering
// control stays disabled while the request is in flight; the ranked list
// replaces the displayed roster and Reset restores the original exactly.
func (a *App) RunAIMatch(ctx context.Context) ([]models.Team, error) {
	if !a.Session.BeginOp(OpRanking) {
		return nil, nil
	}
	defer a.Session.EndOp(OpRanking)

	user := a.Session.User()
	if user == nil {
		return nil, ErrNotAuthenticated
	}

	ranked, err := a.API.RequestMatches(ctx, a.Roster.All(), user.Skills)
	if err != nil {
		return nil, err
	}

	a.Roster.ApplyRanking(ranked)
	return ranked, nil
}

// UpgradePremium flips the entitlement server-side and refreshes the
// persisted user record.
func (a *App) UpgradePremium(ctx context.Context) (*models.User, error) {
	if !a.Session.BeginOp(OpUpgrade) {
		return nil, nil
	}
	defer a.Session.EndOp(OpUpgrade)

	user, err := a.API.UpgradeEntitlement(ctx)
	if err != nil {
		return nil, err
	}

	a.Session.SetUser(user, a.Session.Token())
	return user, a.Session.Save()
}

// SaveProfile updates the display name and skills, then refreshes the
// persisted user so ranking uses the new skill vector.
func (a *App) SaveProfile(ctx context.Context, name string, skills []string) (*models.User, error) {
	user, err := a.API.UpdateProfile(ctx, name, skills)
	if err != nil {
		return nil, err
	}

	a.Session.SetUser(user, a.Session.Token())
	a.Roster.Reset()
	return user, a.Session.Save()
}

// Logout clears everything and returns to the auth screen.
func (a *App) Logout() error {
	return a.Navigator.Logout()
}
