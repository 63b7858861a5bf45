// internal/service/movie_service.go
package service

import (
	"sort"
	"strings"

	"github.com/AdiJusic22/AI-agentMovies/internal/catalog"
	"github.com/AdiJusic22/AI-agentMovies/internal/engine"
	"github.com/AdiJusic22/AI-agentMovies/internal/models"
)

// MovieService expone el catálogo en memoria (búsqueda y top). Sin
// catálogo cargado todas las operaciones devuelven ErrNoCatalog.
type MovieService struct {
	cat    *catalog.Catalog // puede ser nil
	holder *engine.ModelHolder
}

func NewMovieService(cat *catalog.Catalog, holder *engine.ModelHolder) *MovieService {
	return &MovieService{cat: cat, holder: holder}
}

func (s *MovieService) Get(movieID int) (*models.Movie, error) {
	if s.cat == nil {
		return nil, catalog.ErrNoCatalog
	}
	m, ok := s.cat.Items[movieID]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

// Search filtra por substring de título (case-insensitive), género y
// rango de años, recorriendo los ítems por movieId ascendente.
func (s *MovieService) Search(q, genre string, yearFrom, yearTo, limit, offset int) ([]models.Movie, error) {
	if s.cat == nil {
		return nil, catalog.ErrNoCatalog
	}
	if limit <= 0 {
		limit = 20
	}
	q = strings.ToLower(strings.TrimSpace(q))

	var out []models.Movie
	skipped := 0
	for _, id := range s.cat.ItemIDs {
		m := s.cat.Items[id]
		if q != "" && !strings.Contains(strings.ToLower(m.Title), q) {
			continue
		}
		if genre != "" && !containsGenre(m.Genres, genre) {
			continue
		}
		if yearFrom > 0 && (m.Year == nil || *m.Year < yearFrom) {
			continue
		}
		if yearTo > 0 && (m.Year == nil || *m.Year > yearTo) {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		out = append(out, m)
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

// Top rankea por la media de popularidad del modelo vigente; los ítems
// sin valoraciones quedan fuera, no puntúan 0.
func (s *MovieService) Top(limit int) ([]models.TopMovie, error) {
	if s.cat == nil {
		return nil, catalog.ErrNoCatalog
	}
	m := s.holder.Current()
	if m.Empty() {
		return []models.TopMovie{}, nil
	}
	if limit <= 0 {
		limit = 10
	}

	means := m.Matrix.MeanByItem()
	ids := make([]int, 0, len(means))
	for id := range means {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(a, b int) bool {
		if means[ids[a]] != means[ids[b]] {
			return means[ids[a]] > means[ids[b]]
		}
		return ids[a] < ids[b]
	})

	out := make([]models.TopMovie, 0, limit)
	for _, id := range ids {
		mv, ok := s.cat.Items[id]
		if !ok {
			continue
		}
		out = append(out, models.TopMovie{Movie: mv, AvgRating: means[id]})
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

func containsGenre(genres []string, want string) bool {
	for _, g := range genres {
		if strings.EqualFold(g, want) {
			return true
		}
	}
	return false
}
