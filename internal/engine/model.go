package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/AdiJusic22/AI-agentMovies/internal/catalog"
	"github.com/AdiJusic22/AI-agentMovies/internal/models"
)

// ErrNoModel: no hay catálogo cargado. Dispara el modo fallback, nunca
// es fatal para el caller.
var ErrNoModel = errors.New("engine: no model loaded")

// FeedbackSource es el almacén de feedback visto desde el motor. La
// implementación real vive en repository; los tests usan un fake.
type FeedbackSource interface {
	// All devuelve el snapshot completo para el overlay de la matriz.
	All(ctx context.Context) ([]models.FeedbackDoc, error)
	// Liked: rating >= 4 para (user, mood), más recientes primero.
	Liked(ctx context.Context, userName, mood string) ([]models.FeedbackDoc, error)
	// Disliked: rating <= 2 para (user, mood), sin orden garantizado.
	Disliked(ctx context.Context, userName, mood string) ([]models.FeedbackDoc, error)
}

// Model es un snapshot consistente de catálogo + matriz + índice.
// Inmutable una vez construido; se reemplaza entero en cada rebuild.
type Model struct {
	Catalog *catalog.Catalog
	Matrix  *PreferenceMatrix
	Index   *SimilarityIndex
	BuiltAt time.Time
}

// Empty indica el estado "sin modelo" (catálogo ausente o sin datos).
func (m *Model) Empty() bool {
	return m == nil || m.Catalog == nil || m.Matrix.Empty()
}

// ModelHolder publica el modelo vigente con swap atómico: un request en
// vuelo siempre ve un snapshot consistente. Rebuild construye fuera del
// lock y recién entonces intercambia.
type ModelHolder struct {
	cat     *catalog.Catalog // puede ser nil (modo fallback)
	store   FeedbackSource
	k       int
	workers int

	mu      sync.RWMutex
	cur     *Model
	version uint64
}

func NewModelHolder(cat *catalog.Catalog, store FeedbackSource, k, workers int) *ModelHolder {
	return &ModelHolder{cat: cat, store: store, k: k, workers: workers}
}

// Current devuelve el snapshot vigente (puede estar vacío, nunca se
// bloquea más que lo que dura el swap).
func (h *ModelHolder) Current() *Model {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cur
}

// Version crece con cada intento de rebuild, exitoso o no; las keys de
// cache la incluyen para que un rebuild invalide todo lo cacheado sin
// borrar nada a mano.
func (h *ModelHolder) Version() uint64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.version
}

// Loaded indica si hay un modelo real publicado (false = modo fallback).
func (h *ModelHolder) Loaded() bool {
	return !h.Current().Empty()
}

// Rebuild reconstruye matriz e índice desde cero con el snapshot actual
// de feedback y publica el modelo nuevo. Sin catálogo solo avanza la
// versión: el planner seguirá sirviendo placeholders.
func (h *ModelHolder) Rebuild(ctx context.Context) error {
	if h.cat == nil {
		h.mu.Lock()
		h.cur = nil
		h.version++
		h.mu.Unlock()
		return nil
	}

	feedback, err := h.store.All(ctx)
	if err != nil {
		// la versión avanza también en el fallo: las keys de cache la
		// incluyen y ninguna respuesta cacheada puede sobrevivir a un
		// submit, haya modelo nuevo o no
		h.mu.Lock()
		h.version++
		h.mu.Unlock()
		return fmt.Errorf("engine: feedback snapshot: %w", err)
	}

	start := time.Now()
	matrix := BuildMatrix(h.cat.Ratings, feedback)
	index := BuildIndex(matrix, h.k, h.workers)
	model := &Model{
		Catalog: h.cat,
		Matrix:  matrix,
		Index:   index,
		BuiltAt: time.Now(),
	}

	h.mu.Lock()
	h.cur = model
	h.version++
	h.mu.Unlock()

	log.Printf("[engine] modelo reconstruido: %d usuarios, %d ítems, %d feedback (%s)\n",
		matrix.Users(), matrix.Items(), len(feedback), time.Since(start))
	return nil
}
