package engine

import (
	"reflect"
	"testing"

	"github.com/AdiJusic22/AI-agentMovies/internal/models"
)

func recItems(genres ...[]string) []models.RecItem {
	out := make([]models.RecItem, len(genres))
	for i, g := range genres {
		out[i] = models.RecItem{ItemID: i + 1, Genres: g}
	}
	return out
}

func TestFilterNeutralIsIdentity(t *testing.T) {
	f := NewMoodFilter(2) // cap chico a propósito: neutral lo ignora
	items := recItems(
		[]string{"Comedy"},
		[]string{"Horror"},
		[]string{"Drama"},
	)

	got := f.Filter(items, MoodNeutral)
	if !reflect.DeepEqual(got, items) {
		t.Fatalf("filter neutral no es identidad: %+v", got)
	}
}

func TestFilterByMood(t *testing.T) {
	f := NewMoodFilter(10)
	items := recItems(
		[]string{"Comedy"},
		[]string{"Horror"},
		[]string{"Animation", "Drama"},
		nil, // sin géneros: nunca pasa un filtro no neutral
	)

	got := f.Filter(items, "happy")
	if len(got) != 2 || got[0].ItemID != 1 || got[1].ItemID != 3 {
		t.Fatalf("happy devolvió %+v", got)
	}

	got = f.Filter(items, "scared")
	if len(got) != 1 || got[0].ItemID != 2 {
		t.Fatalf("scared devolvió %+v", got)
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	f := NewMoodFilter(10)
	items := []models.RecItem{
		{ItemID: 9, Genres: []string{"Comedy"}},
		{ItemID: 3, Genres: []string{"Comedy"}},
		{ItemID: 7, Genres: []string{"Comedy"}},
	}

	got := f.Filter(items, "happy")
	if got[0].ItemID != 9 || got[1].ItemID != 3 || got[2].ItemID != 7 {
		t.Fatalf("el filtro reordenó la entrada: %+v", got)
	}
}

func TestFilterCap(t *testing.T) {
	f := NewMoodFilter(3)
	var items []models.RecItem
	for i := 0; i < 10; i++ {
		items = append(items, models.RecItem{ItemID: i, Genres: []string{"Comedy"}})
	}

	if got := f.Filter(items, "happy"); len(got) != 3 {
		t.Fatalf("cap=3 pero salieron %d", len(got))
	}
}

func TestUnknownMoodActsAsNeutral(t *testing.T) {
	f := NewMoodFilter(10)
	items := recItems([]string{"Horror"})

	if got := f.Filter(items, "confundido"); len(got) != 1 {
		t.Fatalf("ánimo desconocido debería pasar todo, devolvió %+v", got)
	}
	if f.Known("confundido") {
		t.Error("'confundido' no debería ser un ánimo conocido")
	}
	if !f.Known(MoodNeutral) || !f.Known("happy") {
		t.Error("neutral y happy deberían ser conocidos")
	}
}
