package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AdiJusic22/AI-agentMovies/internal/agent"
	"github.com/AdiJusic22/AI-agentMovies/internal/models"
)

func testOrchestrator(rec agent.RecommenderFunc) *agent.Orchestrator {
	return agent.NewOrchestrator(rec, agent.LogLearner{}, agent.DummySensor{}, agent.DummyActuator{})
}

func TestGetRecommendationsRequiresName(t *testing.T) {
	h := NewRecommendHandler(testOrchestrator(func(_ context.Context, _, _ string, _ int) ([]models.RecItem, error) {
		t.Fatal("no debería llegar al recommender sin nombre")
		return nil, nil
	}))

	req := httptest.NewRequest(http.MethodGet, "/recommend", nil)
	rr := httptest.NewRecorder()
	h.GetRecommendations(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rr.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("body no es JSON: %v", err)
	}
	if body["error"] != "Name is required" {
		t.Fatalf("error = %q", body["error"])
	}
}

func TestGetRecommendationsPassesParams(t *testing.T) {
	var gotName, gotMood string
	var gotN int
	h := NewRecommendHandler(testOrchestrator(func(_ context.Context, name, mood string, n int) ([]models.RecItem, error) {
		gotName, gotMood, gotN = name, mood, n
		return []models.RecItem{{ItemID: 7, Title: "X", Score: 4.2}}, nil
	}))

	req := httptest.NewRequest(http.MethodGet, "/recommend?name=alice&mood=happy&n=3", nil)
	rr := httptest.NewRecorder()
	h.GetRecommendations(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
	if gotName != "alice" || gotMood != "happy" || gotN != 3 {
		t.Fatalf("params = %q %q %d", gotName, gotMood, gotN)
	}
	var items []models.RecItem
	if err := json.Unmarshal(rr.Body.Bytes(), &items); err != nil {
		t.Fatalf("body: %v", err)
	}
	if len(items) != 1 || items[0].ItemID != 7 {
		t.Fatalf("items = %+v", items)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}
}

func TestGetRecommendationsErrorIs500(t *testing.T) {
	h := NewRecommendHandler(testOrchestrator(func(_ context.Context, _, _ string, _ int) ([]models.RecItem, error) {
		return nil, errors.New("store caído")
	}))

	req := httptest.NewRequest(http.MethodGet, "/recommend?name=alice", nil)
	rr := httptest.NewRecorder()
	h.GetRecommendations(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rr.Code)
	}
}

func TestPostEvent(t *testing.T) {
	h := NewRecommendHandler(testOrchestrator(func(_ context.Context, _, _ string, _ int) ([]models.RecItem, error) {
		return nil, nil
	}))

	body := `{"user_id":"alice","event_type":"click","item_id":"7"}`
	req := httptest.NewRequest(http.MethodPost, "/events", jsonBody(body))
	rr := httptest.NewRecorder()
	h.PostEvent(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}

	req = httptest.NewRequest(http.MethodPost, "/events", jsonBody("{no es json"))
	rr = httptest.NewRecorder()
	h.PostEvent(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("json roto devolvió %d", rr.Code)
	}
}
