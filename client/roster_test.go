package client

import (
	"errors"
	"testing"

	"hacknet/models"

	"github.com/lib/pq"
)

func sampleTeams() []models.Team {
	return []models.Team{
		{ID: 1, Name: "Cloud Nine", HostID: 100, RequiredSkills: pq.StringArray{"AWS", "go"}},
		{ID: 2, Name: "Pixel Pushers", HostID: 101, RequiredSkills: pq.StringArray{"react", "figma"}},
		{ID: 3, Name: "Data Miners", HostID: 102, RequiredSkills: pq.StringArray{"python"}},
		{ID: 4, Name: "Ship It", HostID: 103, RequiredSkills: pq.StringArray{"aws", "terraform"}},
		{ID: 5, Name: "Night Owls", HostID: 104, RequiredSkills: pq.StringArray{}},
	}
}

func visibleIDs(r *Roster) []uint {
	var ids []uint
	for _, tm := range r.Visible() {
		ids = append(ids, tm.ID)
	}
	return ids
}

func equalIDs(a, b []uint) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRosterFilterMatchesAnyCase(t *testing.T) {
	r := NewRoster()
	r.SetTeams(sampleTeams())

	r.ToggleFilter("aws")
	if got := visibleIDs(r); !equalIDs(got, []uint{1, 4}) {
		t.Fatalf("filter aws: got %v, want [1 4]", got)
	}
	if r.ActiveFilter() != "aws" {
		t.Errorf("active filter = %q, want aws", r.ActiveFilter())
	}
}

func TestRosterToggleRestoresExactOrder(t *testing.T) {
	r := NewRoster()
	r.SetTeams(sampleTeams())
	before := visibleIDs(r)

	r.ToggleFilter("python")
	r.ToggleFilter("python")

	if got := visibleIDs(r); !equalIDs(got, before) {
		t.Fatalf("toggle did not restore roster: got %v, want %v", got, before)
	}
	if r.ActiveFilter() != "" {
		t.Errorf("active filter not cleared: %q", r.ActiveFilter())
	}
}

func TestRosterSwitchFilterReplacesNotStacks(t *testing.T) {
	r := NewRoster()
	r.SetTeams(sampleTeams())

	r.ToggleFilter("aws")
	r.ToggleFilter("python")

	if got := visibleIDs(r); !equalIDs(got, []uint{3}) {
		t.Fatalf("switching filters should apply against the full roster, got %v", got)
	}
}

func TestRosterApplyRankingAndReset(t *testing.T) {
	r := NewRoster()
	r.SetTeams(sampleTeams())
	before := visibleIDs(r)

	ranked := []models.Team{
		{ID: 4, Name: "Ship It", Score: 2},
		{ID: 1, Name: "Cloud Nine", Score: 1},
	}
	r.ApplyRanking(ranked)

	if !r.Ranked() {
		t.Fatal("Ranked() should report true after ApplyRanking")
	}
	if got := visibleIDs(r); !equalIDs(got, []uint{4, 1}) {
		t.Fatalf("ranking should replace the visible list, got %v", got)
	}

	r.Reset()
	if got := visibleIDs(r); !equalIDs(got, before) {
		t.Fatalf("reset should restore the exact pre-ranking roster: got %v, want %v", got, before)
	}
	if r.Ranked() {
		t.Error("Ranked() should report false after Reset")
	}
}

func TestRosterPendingCache(t *testing.T) {
	r := NewRoster()
	r.SetPending([]uint{2, 4})

	if !r.IsPending(2) || !r.IsPending(4) {
		t.Fatal("seeded pending ids not reported")
	}
	if r.IsPending(1) {
		t.Fatal("unseeded id reported pending")
	}

	r.MarkPending(1)
	if !r.IsPending(1) {
		t.Fatal("MarkPending did not take")
	}
	if r.PendingCount() != 3 {
		t.Errorf("pending count = %d, want 3", r.PendingCount())
	}
}

func TestRosterCheckRequest(t *testing.T) {
	r := NewRoster()
	host := &models.User{ID: 100}
	other := &models.User{ID: 200}
	team := models.Team{ID: 7, HostID: 100}

	if err := r.CheckRequest(host, team); !errors.Is(err, ErrSelfHostConflict) {
		t.Errorf("host requesting own team: got %v, want ErrSelfHostConflict", err)
	}

	r.MarkPending(7)
	if err := r.CheckRequest(other, team); !errors.Is(err, ErrAlreadyRequested) {
		t.Errorf("duplicate request: got %v, want ErrAlreadyRequested", err)
	}
	// host check wins even when a pending entry exists
	if err := r.CheckRequest(host, team); !errors.Is(err, ErrSelfHostConflict) {
		t.Errorf("host precedence: got %v, want ErrSelfHostConflict", err)
	}

	if err := r.CheckRequest(&models.User{ID: 300}, models.Team{ID: 8, HostID: 100}); err != nil {
		t.Errorf("clean request rejected: %v", err)
	}
}

func TestRosterCanEnter(t *testing.T) {
	r := NewRoster()
	host := &models.User{ID: 50}
	stranger := &models.User{ID: 60}
	team := models.Team{ID: 9, HostID: 50}

	if r.CanEnter(stranger, team) {
		t.Fatal("stranger should not enter the workspace")
	}
	if !r.CanEnter(host, team) {
		t.Fatal("host should enter the workspace")
	}
	r.MarkPending(9)
	if !r.CanEnter(stranger, team) {
		t.Fatal("requester should enter the workspace")
	}
}
