package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/AdiJusic22/AI-agentMovies/internal/models"
	"github.com/AdiJusic22/AI-agentMovies/internal/service"
)

func jsonBody(s string) io.Reader { return strings.NewReader(s) }

// fakes mínimos para armar un FeedbackService real detrás del handler
type noopStore struct{}

func (noopStore) Insert(_ context.Context, _ *models.FeedbackDoc) error { return nil }
func (noopStore) ByUser(_ context.Context, _, _ string) ([]models.FeedbackDoc, error) {
	return nil, nil
}

type noopRebuilder struct{}

func (noopRebuilder) Rebuild(_ context.Context) error { return nil }

func TestPostFeedbackValidationIs400(t *testing.T) {
	h := NewFeedbackHandler(service.NewFeedbackService(noopStore{}, noopRebuilder{}))

	cases := []string{
		`{"name":"","item_id":1,"mood":"happy","rating":3}`,
		`{"name":"bob","item_id":1,"mood":"happy","rating":0}`,
		`{"name":"bob","item_id":1,"mood":"happy","rating":6}`,
	}
	for _, body := range cases {
		req := httptest.NewRequest(http.MethodPost, "/feedback", jsonBody(body))
		rr := httptest.NewRecorder()
		h.PostFeedback(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("body %s devolvió %d, se esperaba 400", body, rr.Code)
		}
	}
}

func TestPostFeedbackOK(t *testing.T) {
	h := NewFeedbackHandler(service.NewFeedbackService(noopStore{}, noopRebuilder{}))

	req := httptest.NewRequest(http.MethodPost, "/feedback",
		jsonBody(`{"name":"bob","item_id":"7","mood":"sad","rating":4}`))
	rr := httptest.NewRecorder()
	h.PostFeedback(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
}

func TestAsItemID(t *testing.T) {
	cases := []struct {
		in   any
		want int
		ok   bool
	}{
		{float64(42), 42, true}, // número JSON
		{"42", 42, true},        // string numérico
		{"toy story", 0, false},
		{nil, 0, false},
		{true, 0, false},
	}
	for _, c := range cases {
		got, ok := asItemID(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("asItemID(%v) = (%d, %v), se esperaba (%d, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}
