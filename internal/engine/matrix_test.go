package engine

import (
	"reflect"
	"testing"
	"time"

	"github.com/AdiJusic22/AI-agentMovies/internal/models"
)

func sampleRatings() []models.Rating {
	return []models.Rating{
		{UserID: 1, MovieID: 101, Rating: 5.0},
		{UserID: 1, MovieID: 102, Rating: 3.0},
		{UserID: 2, MovieID: 101, Rating: 4.0},
		{UserID: 2, MovieID: 103, Rating: 2.0},
		{UserID: 3, MovieID: 102, Rating: 4.0},
	}
}

func TestBuildMatrixBasics(t *testing.T) {
	m := BuildMatrix(sampleRatings(), nil)

	if m.Users() != 3 || m.Items() != 3 {
		t.Fatalf("dimensión %dx%d, quería 3x3", m.Users(), m.Items())
	}
	if got := m.Rating(1, 101); got != 5.0 {
		t.Errorf("Rating(1,101) = %v", got)
	}
	if got := m.Rating(3, 101); got != 0 {
		t.Errorf("celda sin valorar = %v, quería 0", got)
	}
	if got := m.Rating(99, 101); got != 0 {
		t.Errorf("usuario desconocido = %v, quería 0", got)
	}
}

func TestBuildMatrixDeterministic(t *testing.T) {
	fb := []models.FeedbackDoc{
		{ID: "a", UserName: "1", ItemID: 102, Mood: "happy", Rating: 5, Timestamp: time.Unix(100, 0)},
	}
	a := BuildMatrix(sampleRatings(), fb)
	b := BuildMatrix(sampleRatings(), fb)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("dos builds con las mismas entradas dieron matrices distintas")
	}
}

func TestBuildMatrixFeedbackOverlay(t *testing.T) {
	fb := []models.FeedbackDoc{
		// pisa el rating del dataset (3.0 → 1)
		{ID: "a", UserName: "1", ItemID: 102, Mood: "sad", Rating: 1, Timestamp: time.Unix(100, 0)},
		// nombre no numérico: se salta sin error
		{ID: "b", UserName: "alice", ItemID: 101, Mood: "happy", Rating: 5, Timestamp: time.Unix(101, 0)},
		// ítem fuera de la matriz: se salta sin error
		{ID: "c", UserName: "2", ItemID: 999, Mood: "happy", Rating: 5, Timestamp: time.Unix(102, 0)},
	}
	m := BuildMatrix(sampleRatings(), fb)

	if got := m.Rating(1, 102); got != 1.0 {
		t.Errorf("el feedback debería pisar el dataset: Rating(1,102) = %v", got)
	}
	if got := m.Rating(1, 101); got != 5.0 {
		t.Errorf("celda sin feedback cambió: %v", got)
	}
}

func TestBuildMatrixOverlayMostRecentWins(t *testing.T) {
	// mismo usuario/ítem con dos moods: gana el timestamp más nuevo
	fb := []models.FeedbackDoc{
		{ID: "new", UserName: "1", ItemID: 101, Mood: "sad", Rating: 2, Timestamp: time.Unix(200, 0)},
		{ID: "old", UserName: "1", ItemID: 101, Mood: "happy", Rating: 4, Timestamp: time.Unix(100, 0)},
	}
	m := BuildMatrix(sampleRatings(), fb)
	if got := m.Rating(1, 101); got != 2.0 {
		t.Errorf("Rating(1,101) = %v, quería 2 (feedback más reciente)", got)
	}
}

func TestBuildMatrixEmpty(t *testing.T) {
	m := BuildMatrix(nil, nil)
	if !m.Empty() {
		t.Fatal("matriz sin ratings debería estar vacía")
	}
	if means := m.MeanByItem(); len(means) != 0 {
		t.Errorf("MeanByItem sobre matriz vacía = %v", means)
	}
}

func TestMeanByItem(t *testing.T) {
	ratings := append(sampleRatings(),
		// ítem con una sola celda en cero: columna presente, sin valoraciones
		models.Rating{UserID: 1, MovieID: 104, Rating: 0},
	)
	means := BuildMatrix(ratings, nil).MeanByItem()

	// 101: (5+4)/2, solo usuarios que valoraron
	if got := means[101]; got != 4.5 {
		t.Errorf("mean(101) = %v, quería 4.5", got)
	}
	// 102: (3+4)/2
	if got := means[102]; got != 3.5 {
		t.Errorf("mean(102) = %v, quería 3.5", got)
	}
	// 104 no tiene valoraciones: excluido, no puntuado 0
	if _, ok := means[104]; ok {
		t.Error("ítem sin valoraciones no debería aparecer en MeanByItem")
	}
}

func TestTopRatedItem(t *testing.T) {
	m := BuildMatrix(sampleRatings(), nil)

	if top, ok := m.TopRatedItem(1); !ok || top != 101 {
		t.Errorf("TopRatedItem(1) = %d,%v", top, ok)
	}
	if _, ok := m.TopRatedItem(42); ok {
		t.Error("usuario desconocido no debería tener top item")
	}

	// empate de rating: gana el movieId más bajo
	tie := BuildMatrix([]models.Rating{
		{UserID: 7, MovieID: 300, Rating: 4},
		{UserID: 7, MovieID: 200, Rating: 4},
	}, nil)
	if top, _ := tie.TopRatedItem(7); top != 200 {
		t.Errorf("empate: TopRatedItem = %d, quería 200", top)
	}
}
