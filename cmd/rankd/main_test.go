package main

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"hacknet/models"
)

func TestRecommendEndpoint(t *testing.T) {
	app := newApp()

	body, _ := json.Marshal(recommendRequest{
		UserSkills: []string{"go", "react"},
		Teams: []models.Team{
			{ID: 1, Name: "Alpha", RequiredSkills: []string{"Go"}},
			{ID: 2, Name: "Bravo", RequiredSkills: []string{"go", "React"}},
			{ID: 3, Name: "Charlie", RequiredSkills: []string{"rust"}},
		},
	})

	req := httptest.NewRequest("POST", "/recommend", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var reply struct {
		Recommendations []models.Team `json:"recommendations"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		t.Fatalf("decode: %v", err)
	}

	// zero-score teams drop out, best match first
	if len(reply.Recommendations) != 2 {
		t.Fatalf("recommendations = %+v", reply.Recommendations)
	}
	if reply.Recommendations[0].ID != 2 || reply.Recommendations[0].Score != 2 {
		t.Errorf("top recommendation = %+v", reply.Recommendations[0])
	}
	if reply.Recommendations[1].ID != 1 {
		t.Errorf("second recommendation = %+v", reply.Recommendations[1])
	}
}

func TestRecommendEmptyRoster(t *testing.T) {
	app := newApp()

	req := httptest.NewRequest("POST", "/recommend", bytes.NewReader([]byte(`{"user_skills":["go"],"teams":[]}`)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// always a list in the envelope, never null
	if string(raw["recommendations"]) != "[]" {
		t.Errorf("recommendations = %s, want []", raw["recommendations"])
	}
}

func TestRecommendRejectsBadBody(t *testing.T) {
	app := newApp()

	req := httptest.NewRequest("POST", "/recommend", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 400 {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}
