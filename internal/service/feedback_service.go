package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/AdiJusic22/AI-agentMovies/internal/engine"
	"github.com/AdiJusic22/AI-agentMovies/internal/models"
	"github.com/AdiJusic22/AI-agentMovies/internal/repository"

	"github.com/google/uuid"
)

// ErrValidation marca entradas inválidas del cliente; los handlers lo
// traducen a 400 en vez de 500.
var ErrValidation = errors.New("invalid feedback")

// FeedbackStore es lo que este servicio necesita del repositorio.
type FeedbackStore interface {
	Insert(ctx context.Context, fb *models.FeedbackDoc) error
	ByUser(ctx context.Context, userName, mood string) ([]models.FeedbackDoc, error)
}

// ModelRebuilder reconstruye matriz + índice tras cada alta de feedback.
type ModelRebuilder interface {
	Rebuild(ctx context.Context) error
}

type FeedbackService struct {
	mu    sync.Mutex // un solo escritor: serializa los submits
	store FeedbackStore
	model ModelRebuilder
}

func NewFeedbackService(store FeedbackStore, model ModelRebuilder) *FeedbackService {
	return &FeedbackService{store: store, model: model}
}

// SubmitResult es la respuesta de /feedback, con los mismos status que
// espera el frontend.
type SubmitResult struct {
	Status string `json:"status"`
	Rating int    `json:"rating"`
}

const (
	StatusRecorded     = "Feedback recorded and model updated"
	StatusAlreadyRated = "already_rated"
)

// Submit valida y persiste una valoración nueva. Un duplicado para
// (name, itemID, mood) no muta nada y devuelve el rating ya guardado.
// Tras un alta exitosa se reconstruye el modelo antes de devolver, así
// la próxima recomendación ya no puede servir un dislike recién enviado.
func (s *FeedbackService) Submit(ctx context.Context, name string, itemID int, mood string, rating int) (*SubmitResult, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5, got %d", ErrValidation, rating)
	}
	if mood == "" {
		mood = engine.MoodNeutral
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	fb := &models.FeedbackDoc{
		ID:        uuid.NewString(),
		UserName:  name,
		ItemID:    itemID,
		Mood:      mood,
		Rating:    rating,
		Timestamp: time.Now().UTC(),
	}

	if err := s.store.Insert(ctx, fb); err != nil {
		var dup *repository.DuplicateFeedbackError
		if errors.As(err, &dup) {
			return &SubmitResult{Status: StatusAlreadyRated, Rating: dup.Existing}, nil
		}
		return nil, err
	}

	// El rebuild fallido no revierte el alta: el planner consulta los
	// dislikes en vivo, así que la garantía de frescura no depende de
	// la matriz. Queda registrado y se reintenta en el próximo submit.
	if err := s.model.Rebuild(ctx); err != nil {
		log.Printf("[feedback] rebuild tras submit falló: %v\n", err)
	}

	return &SubmitResult{Status: StatusRecorded, Rating: rating}, nil
}

// Ratings devuelve el historial del usuario, opcionalmente por ánimo.
func (s *FeedbackService) Ratings(ctx context.Context, name, mood string) ([]models.FeedbackDoc, error) {
	return s.store.ByUser(ctx, strings.TrimSpace(name), mood)
}

// Stats arma el resumen para /stats: totales, likes, dislikes, ánimo
// favorito e histograma de ánimos.
func (s *FeedbackService) Stats(ctx context.Context, name string) (*models.UserStats, error) {
	name = strings.TrimSpace(name)
	all, err := s.store.ByUser(ctx, name, "")
	if err != nil {
		return nil, err
	}

	stats := &models.UserStats{
		UserName: name,
		Moods:    make(map[string]int),
	}
	for _, f := range all {
		stats.TotalFeedback++
		if f.Liked() {
			stats.LikedCount++
		}
		if f.Disliked() {
			stats.DislikedCount++
		}
		stats.Moods[f.Mood]++
	}

	// ánimo favorito: el más frecuente, alfabético como desempate
	moods := make([]string, 0, len(stats.Moods))
	for m := range stats.Moods {
		moods = append(moods, m)
	}
	sort.Strings(moods)
	best := 0
	for _, m := range moods {
		if stats.Moods[m] > best {
			best = stats.Moods[m]
			stats.FavoriteMood = m
		}
	}

	return stats, nil
}
