package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync/atomic"
	"testing"

	"hacknet/models"

	"github.com/lib/pq"
)

type stubUsers struct {
	user *models.User
}

func (s stubUsers) UserByID(id uint) (*models.User, error) {
	if s.user == nil || s.user.ID != id {
		return nil, ErrUserNotFound
	}
	return s.user, nil
}

func premiumUser() *models.User {
	return &models.User{ID: 1, Name: "Ada", IsPremium: true, Skills: pq.StringArray{"go", "react"}}
}

func candidateTeams() []models.Team {
	return []models.Team{
		{ID: 10, Name: "Alpha", RequiredSkills: pq.StringArray{"Go"}},
		{ID: 11, Name: "Bravo", RequiredSkills: pq.StringArray{"Rust"}},
	}
}

func TestRequestMatchesNonPremiumNeverCallsEngine(t *testing.T) {
	var calls int64
	engine := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		w.Write([]byte(`[]`))
	}))
	defer engine.Close()

	users := stubUsers{user: &models.User{ID: 1, IsPremium: false}}
	svc := NewRecommendService(users, engine.URL, nil)

	_, err := svc.RequestMatches(context.Background(), 1, candidateTeams(), nil)
	if !errors.Is(err, ErrEntitlementRequired) {
		t.Fatalf("expected ErrEntitlementRequired, got %v", err)
	}
	if atomic.LoadInt64(&calls) != 0 {
		t.Errorf("engine was called %d times for a non-premium user", calls)
	}
}

func TestRequestMatchesNormalizesBothShapes(t *testing.T) {
	const payload = `[{"id":11,"name":"Bravo","score":3},{"id":10,"name":"Alpha","score":1}]`

	shapes := map[string]string{
		"bare list": payload,
		"envelope":  `{"recommendations":` + payload + `}`,
	}

	var results [][]models.Team
	for name, body := range shapes {
		t.Run(name, func(t *testing.T) {
			engine := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(body))
			}))
			defer engine.Close()

			svc := NewRecommendService(stubUsers{user: premiumUser()}, engine.URL, nil)
			ranked, err := svc.RequestMatches(context.Background(), 1, candidateTeams(), nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(ranked) != 2 || ranked[0].ID != 11 || ranked[0].Score != 3 {
				t.Fatalf("unexpected ranking: %+v", ranked)
			}
			results = append(results, ranked)
		})
	}

	if len(results) == 2 && !reflect.DeepEqual(results[0], results[1]) {
		t.Errorf("identical contents normalized differently: %+v vs %+v", results[0], results[1])
	}
}

func TestRequestMatchesFailsClosedOnThirdShape(t *testing.T) {
	bodies := []string{
		`{"results":[]}`,
		`"just a string"`,
		`42`,
		`{"recommendations":"nope"}`,
	}

	for _, body := range bodies {
		engine := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		}))

		svc := NewRecommendService(stubUsers{user: premiumUser()}, engine.URL, nil)
		_, err := svc.RequestMatches(context.Background(), 1, candidateTeams(), nil)
		engine.Close()

		if !errors.Is(err, ErrMalformedResponse) {
			t.Errorf("body %q: expected ErrMalformedResponse, got %v", body, err)
		}
	}
}

func TestRequestMatchesEngineErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"forbidden maps to entitlement", http.StatusForbidden, ErrEntitlementRequired},
		{"server error maps to unavailable", http.StatusInternalServerError, ErrServiceUnavailable},
		{"bad gateway maps to unavailable", http.StatusBadGateway, ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer engine.Close()

			svc := NewRecommendService(stubUsers{user: premiumUser()}, engine.URL, nil)
			_, err := svc.RequestMatches(context.Background(), 1, candidateTeams(), nil)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestRequestMatchesEngineDown(t *testing.T) {
	engine := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	engine.Close() // connection refused from here on

	svc := NewRecommendService(stubUsers{user: premiumUser()}, engine.URL, nil)
	_, err := svc.RequestMatches(context.Background(), 1, candidateTeams(), nil)
	if !errors.Is(err, ErrServiceUnavailable) {
		t.Errorf("expected ErrServiceUnavailable, got %v", err)
	}
}

func TestRequestMatchesUnknownUser(t *testing.T) {
	svc := NewRecommendService(stubUsers{}, "http://localhost:0", nil)
	_, err := svc.RequestMatches(context.Background(), 99, nil, nil)
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
