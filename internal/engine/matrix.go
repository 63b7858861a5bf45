package engine

import (
	"sort"
	"strconv"
	"strings"

	"github.com/AdiJusic22/AI-agentMovies/internal/models"
)

// PreferenceMatrix es la matriz densa usuario×ítem. Filas: userIds del
// dataset ordenados ascendente; columnas: movieIds ordenados ascendente.
// Celda 0 = sin valorar (no es un rating real). Se construye completa en
// cada rebuild; nunca se muta in place.
type PreferenceMatrix struct {
	userIdx map[int]int
	itemIdx map[int]int
	userIDs []int
	itemIDs []int
	data    [][]float64
}

// BuildMatrix arma la matriz a partir de los ratings del dataset y luego
// superpone el feedback local: para cada feedback cuyo userName parsea a
// un userId conocido y cuyo itemId es una columna conocida, el rating del
// feedback pisa al del dataset. El feedback se aplica en orden de
// timestamp (y ID como desempate) para que gane el más reciente y la
// construcción sea idempotente.
func BuildMatrix(ratings []models.Rating, feedback []models.FeedbackDoc) *PreferenceMatrix {
	userSet := make(map[int]bool)
	itemSet := make(map[int]bool)
	for _, r := range ratings {
		userSet[r.UserID] = true
		itemSet[r.MovieID] = true
	}

	m := &PreferenceMatrix{
		userIdx: make(map[int]int, len(userSet)),
		itemIdx: make(map[int]int, len(itemSet)),
		userIDs: make([]int, 0, len(userSet)),
		itemIDs: make([]int, 0, len(itemSet)),
	}
	for u := range userSet {
		m.userIDs = append(m.userIDs, u)
	}
	for i := range itemSet {
		m.itemIDs = append(m.itemIDs, i)
	}
	sort.Ints(m.userIDs)
	sort.Ints(m.itemIDs)
	for idx, u := range m.userIDs {
		m.userIdx[u] = idx
	}
	for idx, i := range m.itemIDs {
		m.itemIdx[i] = idx
	}

	m.data = make([][]float64, len(m.userIDs))
	for r := range m.data {
		m.data[r] = make([]float64, len(m.itemIDs))
	}
	for _, r := range ratings {
		m.data[m.userIdx[r.UserID]][m.itemIdx[r.MovieID]] = r.Rating
	}

	// Overlay del feedback local. Usuarios con nombre no numérico o
	// ítems fuera de la matriz se saltan sin error.
	fb := make([]models.FeedbackDoc, len(feedback))
	copy(fb, feedback)
	sort.Slice(fb, func(a, b int) bool {
		if !fb[a].Timestamp.Equal(fb[b].Timestamp) {
			return fb[a].Timestamp.Before(fb[b].Timestamp)
		}
		return fb[a].ID < fb[b].ID
	})
	for _, f := range fb {
		uid, err := strconv.Atoi(strings.TrimSpace(f.UserName))
		if err != nil {
			continue
		}
		r, okU := m.userIdx[uid]
		c, okI := m.itemIdx[f.ItemID]
		if !okU || !okI {
			continue
		}
		m.data[r][c] = float64(f.Rating)
	}

	return m
}

// Empty indica si la matriz no tiene ningún usuario o ítem.
func (m *PreferenceMatrix) Empty() bool {
	return m == nil || len(m.userIDs) == 0 || len(m.itemIDs) == 0
}

func (m *PreferenceMatrix) Users() int { return len(m.userIDs) }
func (m *PreferenceMatrix) Items() int { return len(m.itemIDs) }

// ItemIDs devuelve los movieIds de las columnas, ascendente.
func (m *PreferenceMatrix) ItemIDs() []int { return m.itemIDs }

func (m *PreferenceMatrix) HasUser(userID int) bool {
	_, ok := m.userIdx[userID]
	return ok
}

// Rating devuelve la celda (0 si usuario o ítem desconocidos).
func (m *PreferenceMatrix) Rating(userID, itemID int) float64 {
	r, okU := m.userIdx[userID]
	c, okI := m.itemIdx[itemID]
	if !okU || !okI {
		return 0
	}
	return m.data[r][c]
}

// MeanByItem calcula la media por columna contando solo celdas con
// valor (> 0). Los ítems sin ninguna valoración no aparecen en el mapa:
// quedan fuera del ranking de popularidad en vez de puntuar 0.
func (m *PreferenceMatrix) MeanByItem() map[int]float64 {
	means := make(map[int]float64, len(m.itemIDs))
	for c, itemID := range m.itemIDs {
		var sum float64
		var count int
		for r := range m.data {
			if v := m.data[r][c]; v > 0 {
				sum += v
				count++
			}
		}
		if count > 0 {
			means[itemID] = sum / float64(count)
		}
	}
	return means
}

// TopRatedItem devuelve el ítem mejor valorado por el usuario (empate:
// movieId más bajo). false si el usuario no existe o no valoró nada.
func (m *PreferenceMatrix) TopRatedItem(userID int) (int, bool) {
	r, ok := m.userIdx[userID]
	if !ok {
		return 0, false
	}
	best, bestVal := 0, 0.0
	for c, itemID := range m.itemIDs {
		if v := m.data[r][c]; v > bestVal {
			best, bestVal = itemID, v
		}
	}
	if bestVal == 0 {
		return 0, false
	}
	return best, true
}

// itemRatings devuelve los ratings no nulos de un usuario por índice de
// fila, como mapa columna→rating (lo usa el índice de similitud).
func (m *PreferenceMatrix) rowNonZero(row int) map[int]float64 {
	out := make(map[int]float64)
	for c, v := range m.data[row] {
		if v > 0 {
			out[c] = v
		}
	}
	return out
}
