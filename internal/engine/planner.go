package engine

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/AdiJusic22/AI-agentMovies/internal/describe"
	"github.com/AdiJusic22/AI-agentMovies/internal/models"
)

// Estrategias de generación de candidatos. Se eligen por la forma de la
// identidad: un id numérico presente en la matriz habilita el modo
// similitud; cualquier otro nombre usa popularidad; sin modelo, dummy.
const (
	StrategyPopularity = "popularity"
	StrategySimilarity = "similarity"
	StrategyFallback   = "fallback"
)

// Los ítems ya gustados salen primero con score máximo fijo.
const likedScore = 5.0

// Identity es la identidad que manda el caller: un nombre de usuario
// ("Adi") o un userId crudo del dataset ("42").
type Identity struct {
	Name string
}

// NumericID intenta interpretar el nombre como userId del dataset. Un
// nombre no numérico no es un error: solo desactiva la personalización
// basada en el dataset.
func (id Identity) NumericID() (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(id.Name))
	if err != nil {
		return 0, false
	}
	return n, true
}

type scoredItem struct {
	itemID int
	score  float64
	reason string
}

// Planner arma la lista final: primero lo ya gustado, después candidatos
// de la estrategia activa, sin repetidos, sin dislikes y filtrado por
// ánimo. Todo determinista: los empates se rompen por movieId.
type Planner struct {
	holder *ModelHolder
	store  FeedbackSource
	moods  *MoodFilter
	desc   describe.Describer
	k      int
}

func NewPlanner(holder *ModelHolder, store FeedbackSource, moods *MoodFilter, desc describe.Describer, k int) *Planner {
	return &Planner{holder: holder, store: store, moods: moods, desc: desc, k: k}
}

// Recommend devuelve hasta n ítems para (identity, mood) y el nombre de
// la estrategia usada. Nunca entra en pánico: sin modelo devuelve
// placeholders; el único error posible viene del store de feedback.
func (p *Planner) Recommend(ctx context.Context, id Identity, mood string, n int) ([]models.RecItem, string, error) {
	if n <= 0 {
		return []models.RecItem{}, StrategyFallback, nil
	}

	m := p.holder.Current()
	if m.Empty() {
		return p.fallbackItems(mood, n), StrategyFallback, nil
	}

	liked, err := p.store.Liked(ctx, id.Name, mood)
	if err != nil {
		return nil, "", fmt.Errorf("planner: liked lookup: %w", err)
	}
	disliked, err := p.store.Disliked(ctx, id.Name, mood)
	if err != nil {
		return nil, "", fmt.Errorf("planner: disliked lookup: %w", err)
	}

	exclude := make(map[int]bool, len(liked)+len(disliked))
	for _, f := range liked {
		exclude[f.ItemID] = true
	}
	for _, f := range disliked {
		exclude[f.ItemID] = true
	}

	seen := make(map[int]bool, n)
	out := make([]models.RecItem, 0, n)

	// 1) lo ya gustado, más reciente primero
	for _, f := range liked {
		if len(out) >= n {
			break
		}
		if seen[f.ItemID] {
			continue
		}
		seen[f.ItemID] = true
		out = append(out, p.likedItem(ctx, m, f, mood))
	}

	strategy := StrategyPopularity
	if len(out) < n {
		var cands []scoredItem
		cands, strategy = p.candidates(m, id)

		// metadata + exclusión de gustados/odiados/ya emitidos
		items := make([]models.RecItem, 0, len(cands))
		for _, c := range cands {
			if exclude[c.itemID] || seen[c.itemID] {
				continue
			}
			mv, ok := m.Catalog.Items[c.itemID]
			if !ok {
				// rating de un ítem que no está en movies.csv: se salta
				continue
			}
			items = append(items, models.RecItem{
				ItemID: c.itemID,
				Title:  mv.Title,
				Year:   mv.Year,
				Genres: mv.Genres,
				Score:  c.score,
				Reason: c.reason,
			})
		}

		items = p.moods.Filter(items, mood)

		for _, it := range items {
			if len(out) >= n {
				break
			}
			seen[it.ItemID] = true
			it.Description = p.desc.Describe(ctx, m.Catalog.Items[it.ItemID])
			it.AgentMood = MoodNote(mood)
			out = append(out, it)
		}
	}

	return out, strategy, nil
}

func (p *Planner) likedItem(ctx context.Context, m *Model, f models.FeedbackDoc, mood string) models.RecItem {
	mv, ok := m.Catalog.Items[f.ItemID]
	if !ok {
		// feedback sobre un ítem fuera del catálogo: degradar, no romper
		mv = models.Movie{MovieID: f.ItemID, Title: fmt.Sprintf("Movie #%d", f.ItemID)}
	}
	return models.RecItem{
		ItemID:      f.ItemID,
		Title:       mv.Title,
		Year:        mv.Year,
		Genres:      mv.Genres,
		Score:       likedScore,
		Reason:      fmt.Sprintf("You liked this one before (rated %d/5)", f.Rating),
		Description: p.desc.Describe(ctx, mv),
		AgentMood:   MoodNote(mood),
	}
}

// candidates genera el ranking crudo según la estrategia activa.
func (p *Planner) candidates(m *Model, id Identity) ([]scoredItem, string) {
	if uid, ok := id.NumericID(); ok && m.Matrix.HasUser(uid) {
		if top, ok := m.Matrix.TopRatedItem(uid); ok {
			if ns := m.Index.Neighbors(top, p.k); len(ns) > 0 {
				anchor := fmt.Sprintf("movie %d", top)
				if mv, ok := m.Catalog.Items[top]; ok {
					anchor = mv.Title
				}
				out := make([]scoredItem, 0, len(ns))
				for _, nb := range ns {
					out = append(out, scoredItem{
						itemID: nb.MovieID,
						score:  nb.Sim,
						reason: fmt.Sprintf("Close match to %s, your top pick", anchor),
					})
				}
				return out, StrategySimilarity
			}
		}
	}

	// Popularidad: media por ítem, descendente, movieId como desempate.
	// Los ítems sin valoraciones no participan (no puntúan 0).
	means := m.Matrix.MeanByItem()
	out := make([]scoredItem, 0, len(means))
	for itemID, mean := range means {
		out = append(out, scoredItem{
			itemID: itemID,
			score:  mean,
			reason: fmt.Sprintf("Popular with viewers (avg %.1f/5)", mean),
		})
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].score != out[b].score {
			return out[a].score > out[b].score
		}
		return out[a].itemID < out[b].itemID
	})
	return out, StrategyPopularity
}

// fallbackItems: placeholders sintéticos cuando no hay catálogo. Misma
// forma que una respuesta real para que el frontend no distinga el caso.
func (p *Planner) fallbackItems(mood string, n int) []models.RecItem {
	out := make([]models.RecItem, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, models.RecItem{
			ItemID:    i,
			Title:     fmt.Sprintf("movie_%d", i),
			Score:     1.0 - float64(i)*0.1,
			Reason:    "Fallback mode",
			AgentMood: MoodNote(mood),
		})
	}
	return out
}
