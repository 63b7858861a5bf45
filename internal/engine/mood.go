package engine

import (
	"sort"

	"github.com/AdiJusic22/AI-agentMovies/internal/models"
)

// MoodNeutral desactiva el filtrado por completo.
const MoodNeutral = "neutral"

// Mapeo estático ánimo → géneros aceptables.
var moodGenres = map[string][]string{
	"happy":    {"Comedy", "Animation", "Children", "Musical"},
	"sad":      {"Drama", "Romance"},
	"excited":  {"Action", "Adventure", "Thriller"},
	"scared":   {"Horror"},
	"relaxed":  {"Documentary", "Comedy"},
	"romantic": {"Romance", "Comedy"},
}

// MoodFilter filtra candidatos por el género que pide el ánimo. El tope
// de resultados (cap) es política para acotar el trabajo posterior, no
// un límite del algoritmo; se configura con MOOD_FILTER_CAP.
type MoodFilter struct {
	cap     int
	allowed map[string]map[string]bool
}

func NewMoodFilter(cap int) *MoodFilter {
	f := &MoodFilter{cap: cap, allowed: make(map[string]map[string]bool, len(moodGenres))}
	for mood, genres := range moodGenres {
		set := make(map[string]bool, len(genres))
		for _, g := range genres {
			set[g] = true
		}
		f.allowed[mood] = set
	}
	return f
}

// Known indica si el ánimo está mapeado (neutral cuenta como conocido).
func (f *MoodFilter) Known(mood string) bool {
	if mood == MoodNeutral {
		return true
	}
	_, ok := f.allowed[mood]
	return ok
}

// Moods lista los ánimos soportados, neutral primero.
func (f *MoodFilter) Moods() []string {
	out := make([]string, 0, len(f.allowed)+1)
	for m := range f.allowed {
		out = append(out, m)
	}
	sort.Strings(out)
	return append([]string{MoodNeutral}, out...)
}

// Filter conserva los ítems cuyos géneros intersectan el conjunto del
// ánimo, preservando el orden de entrada y cortando en cap. Con mood
// neutral (o desconocido) es la identidad: devuelve la entrada tal cual.
func (f *MoodFilter) Filter(items []models.RecItem, mood string) []models.RecItem {
	allowed, ok := f.allowed[mood]
	if mood == MoodNeutral || !ok {
		return items
	}

	out := make([]models.RecItem, 0, f.cap)
	for _, it := range items {
		if !genresIntersect(it.Genres, allowed) {
			continue
		}
		out = append(out, it)
		if f.cap > 0 && len(out) >= f.cap {
			break
		}
	}
	return out
}

func genresIntersect(genres []string, allowed map[string]bool) bool {
	for _, g := range genres {
		if allowed[g] {
			return true
		}
	}
	return false
}

// MoodNote es la frase de presentación que acompaña cada recomendación.
func MoodNote(mood string) string {
	switch mood {
	case "happy":
		return "Feeling good? This one should keep the smile going!"
	case "sad":
		return "Something to match the mood, or maybe lift it a little."
	case "excited":
		return "Buckle up, this one moves fast!"
	case "scared":
		return "Lights off for this one... if you dare."
	case "relaxed":
		return "Easy watching for an easy evening."
	case "romantic":
		return "Date night material, right here."
	default:
		return "Here's a recommendation!"
	}
}
