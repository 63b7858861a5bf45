package describe

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/AdiJusic22/AI-agentMovies/internal/models"
)

const tmdbSearchURL = "https://api.themoviedb.org/3/search/movie"

// TMDB busca la sinopsis real en themoviedb.org. Ante cualquier fallo
// (sin key, timeout, sin resultados) cae a la plantilla estática, así
// que nunca rompe una recomendación.
type TMDB struct {
	apiKey   string
	client   *http.Client
	fallback Describer
}

func NewTMDB(apiKey string) *TMDB {
	return &TMDB{
		apiKey:   apiKey,
		client:   &http.Client{Timeout: 4 * time.Second},
		fallback: Template{},
	}
}

type tmdbSearchResponse struct {
	Results []struct {
		Overview string `json:"overview"`
	} `json:"results"`
}

func (t *TMDB) Describe(ctx context.Context, m models.Movie) string {
	if t.apiKey == "" {
		return t.fallback.Describe(ctx, m)
	}

	title := m.Title
	if m.Year != nil {
		title = strings.TrimSpace(strings.TrimSuffix(title, fmt.Sprintf("(%d)", *m.Year)))
	}

	q := url.Values{}
	q.Set("api_key", t.apiKey)
	q.Set("query", title)
	if m.Year != nil {
		q.Set("year", fmt.Sprintf("%d", *m.Year))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, tmdbSearchURL+"?"+q.Encode(), nil)
	if err != nil {
		return t.fallback.Describe(ctx, m)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return t.fallback.Describe(ctx, m)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return t.fallback.Describe(ctx, m)
	}

	var parsed tmdbSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return t.fallback.Describe(ctx, m)
	}
	if len(parsed.Results) == 0 || parsed.Results[0].Overview == "" {
		return t.fallback.Describe(ctx, m)
	}
	return parsed.Results[0].Overview
}
