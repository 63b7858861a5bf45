package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/AdiJusic22/AI-agentMovies/internal/cache"
	"github.com/AdiJusic22/AI-agentMovies/internal/engine"
	"github.com/AdiJusic22/AI-agentMovies/internal/models"

	"github.com/google/uuid"
)

// cache TTL en segundos; las keys incluyen la versión del modelo, así
// cada rebuild invalida lo cacheado sin borrados explícitos.
const recCacheTTL = 60 * 60

// RecommendationHistory guarda las respuestas servidas (best-effort) y
// permite consultarlas después.
type RecommendationHistory interface {
	Insert(ctx context.Context, rec *models.Recommendation) error
	ByUser(ctx context.Context, userName string, limit int64) ([]models.Recommendation, error)
}

type RecommendService struct {
	planner *engine.Planner
	holder  *engine.ModelHolder
	history RecommendationHistory // puede ser nil
	defN    int
	maxN    int
}

func NewRecommendService(planner *engine.Planner, holder *engine.ModelHolder, history RecommendationHistory, defaultN, maxN int) *RecommendService {
	return &RecommendService{
		planner: planner,
		holder:  holder,
		history: history,
		defN:    defaultN,
		maxN:    maxN,
	}
}

type RecRequest struct {
	Name    string
	Mood    string
	N       int
	Refresh bool
}

func (s *RecommendService) cacheKey(req RecRequest) string {
	return fmt.Sprintf("rec:v%d:user:%s:mood:%s:n:%d",
		s.holder.Version(), req.Name, req.Mood, req.N)
}

// Recommend aplica defaults, consulta cache y delega en el planner.
// Con identidad y estado de feedback fijos la salida es siempre la misma
// lista ordenada.
func (s *RecommendService) Recommend(ctx context.Context, req RecRequest) ([]models.RecItem, error) {
	if req.N <= 0 {
		req.N = s.defN
	} else if req.N > s.maxN {
		req.N = s.maxN
	}
	if req.Mood == "" {
		req.Mood = engine.MoodNeutral
	}

	var cached []models.RecItem
	if !req.Refresh {
		if ok, err := cache.GetJSON(ctx, s.cacheKey(req), &cached); err == nil && ok {
			return cached, nil
		}
	}

	items, strategy, err := s.planner.Recommend(ctx, engine.Identity{Name: req.Name}, req.Mood, req.N)
	if err != nil {
		return nil, err
	}

	// historial en Mongo: si falla no rompemos la respuesta
	if s.history != nil && strategy != engine.StrategyFallback {
		hist := &models.Recommendation{
			ID:        uuid.NewString(),
			UserName:  req.Name,
			Mood:      req.Mood,
			Strategy:  strategy,
			Items:     items,
			CreatedAt: time.Now(),
		}
		if err := s.history.Insert(ctx, hist); err != nil {
			log.Printf("[recommend] error guardando historial: %v\n", err)
		}
	}

	if err := cache.SetJSON(ctx, s.cacheKey(req), items, recCacheTTL); err != nil {
		log.Printf("[recommend] error cacheando respuesta: %v\n", err)
	}

	return items, nil
}

// History lista las respuestas ya servidas al usuario, más recientes
// primero.
func (s *RecommendService) History(ctx context.Context, name string, limit int64) ([]models.Recommendation, error) {
	if s.history == nil {
		return []models.Recommendation{}, nil
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	return s.history.ByUser(ctx, name, limit)
}
