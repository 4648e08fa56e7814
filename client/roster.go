// client/roster.go - roster view-model and local ledger cache
package client

import (
	"sync"

	"hacknet/matching"
	"hacknet/models"
)

// Roster holds the unfiltered team list plus the currently displayed view
// over it. Filtering and ranking are overlays: the original list is retained
// untouched so a reset restores it exactly rather than re-deriving it.
//
// It also caches the user's ledger state (which teams have a pending request)
// so per-team affordances and invariant checks work without a round trip.
type Roster struct {
	mu sync.Mutex

	all          []models.Team
	visible      []models.Team
	activeFilter string
	ranked       bool

	pending map[uint]bool
}

func NewRoster() *Roster {
	return &Roster{pending: make(map[uint]bool)}
}

// SetTeams replaces the roster and drops any filter or ranking overlay.
func (r *Roster) SetTeams(teams []models.Team) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.all = append([]models.Team(nil), teams...)
	r.visible = append([]models.Team(nil), teams...)
	r.activeFilter = ""
	r.ranked = false
}

// ToggleFilter applies a skill filter over the unfiltered roster, or clears
// it when skill is already active. Toggling is idempotent, not a stack.
func (r *Roster) ToggleFilter(skill string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.activeFilter == skill || skill == "" {
		r.resetLocked()
		return
	}

	r.activeFilter = skill
	r.ranked = false
	r.visible = append([]models.Team(nil), matching.FilterBySkill(r.all, skill)...)
}

// ApplyRanking replaces the displayed list with the ranked one. The
// unfiltered roster is kept aside for Reset; the ranked list is never merged
// into it.
func (r *Roster) ApplyRanking(ranked []models.Team) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.visible = append([]models.Team(nil), ranked...)
	r.activeFilter = ""
	r.ranked = true
}

// Reset restores the exact unfiltered roster and clears any overlay.
func (r *Roster) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resetLocked()
}

func (r *Roster) resetLocked() {
	r.visible = append([]models.Team(nil), r.all...)
	r.activeFilter = ""
	r.ranked = false
}

// Visible returns the currently displayed teams.
func (r *Roster) Visible() []models.Team {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Team(nil), r.visible...)
}

// All returns the unfiltered roster.
func (r *Roster) All() []models.Team {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Team(nil), r.all...)
}

// ActiveFilter returns the active skill filter, or empty.
func (r *Roster) ActiveFilter() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.activeFilter
}

// Ranked reports whether a ranking overlay is displayed.
func (r *Roster) Ranked() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ranked
}

// SetPending replaces the ledger cache, typically from ListUserRequests on
// reload.
func (r *Roster) SetPending(teamIDs []uint) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.pending = make(map[uint]bool, len(teamIDs))
	for _, id := range teamIDs {
		r.pending[id] = true
	}
}

// MarkPending records a newly created request.
func (r *Roster) MarkPending(teamID uint) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending[teamID] = true
}

// IsPending reports whether the user has requested to join the team.
func (r *Roster) IsPending(teamID uint) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pending[teamID]
}

// PendingCount returns the ledger cache size.
func (r *Roster) PendingCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}

// IsHost reports whether the user hosts the team.
func (r *Roster) IsHost(user *models.User, team models.Team) bool {
	return user != nil && team.HostID == user.ID
}

// CheckRequest applies the ledger invariants locally before any network
// call: a host never requests their own team and a pair holds at most one
// request. The server enforces the same rules durably.
func (r *Roster) CheckRequest(user *models.User, team models.Team) error {
	if r.IsHost(user, team) {
		return ErrSelfHostConflict
	}
	if r.IsPending(team.ID) {
		return ErrAlreadyRequested
	}
	return nil
}

// CanEnter reports whether the user may enter the team's workspace: hosts
// always, everyone else with a pending request.
func (r *Roster) CanEnter(user *models.User, team models.Team) bool {
	return r.IsHost(user, team) || r.IsPending(team.ID)
}

// Overlap flags each of the team's required skills against the user's
// skills for display.
func (r *Roster) Overlap(team models.Team, user *models.User) map[string]bool {
	var skills []string
	if user != nil {
		skills = user.Skills
	}
	return matching.Overlap(team, skills)
}
