package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseYear(t *testing.T) {
	cases := []struct {
		title string
		want  int // 0 = año desconocido
	}{
		{"Toy Story (1995)", 1995},
		{"Heat (1995)", 1995},
		{"Matrix, The (1999)", 1999},
		{"Cosmos (a) (2019)", 2019},
		{"Sin año", 0},
		{"Paréntesis vacío ()", 0},
		{"No numérico (abcd)", 0},
		{"Termina en paréntesis (1995) extra", 0},
		{"", 0},
	}

	for _, c := range cases {
		got := ParseYear(c.title)
		if c.want == 0 {
			if got != nil {
				t.Errorf("ParseYear(%q) = %d, quería nil", c.title, *got)
			}
			continue
		}
		if got == nil || *got != c.want {
			t.Errorf("ParseYear(%q) = %v, quería %d", c.title, got, c.want)
		}
	}
}

func TestSplitGenres(t *testing.T) {
	got := SplitGenres("Comedy|Romance|Drama")
	if len(got) != 3 || got[0] != "Comedy" || got[2] != "Drama" {
		t.Errorf("SplitGenres devolvió %v", got)
	}

	if SplitGenres("(no genres listed)") != nil {
		t.Error("'(no genres listed)' debería dar nil")
	}
	if SplitGenres("") != nil {
		t.Error("género vacío debería dar nil")
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "movies.csv",
		"movieId,title,genres\n"+
			"1,Toy Story (1995),Animation|Comedy\n"+
			"2,Alien (1979),Horror|Sci-Fi\n"+
			"malo,sin id,Drama\n"+
			"3,Sin Año,Drama\n")
	writeFile(t, dir, "ratings.csv",
		"userId,movieId,rating,timestamp\n"+
			"1,1,4.0,964982703\n"+
			"1,2,5.0,964982931\n"+
			"2,1,3.5,964982400\n"+
			"x,y,z,w\n"+
			"3,1,9.5,964982400\n") // rating fuera de rango: se descarta

	cat, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(cat.Items) != 3 {
		t.Errorf("quería 3 películas, hay %d", len(cat.Items))
	}
	if len(cat.Ratings) != 3 {
		t.Errorf("quería 3 ratings válidos, hay %d", len(cat.Ratings))
	}

	toy := cat.Items[1]
	if toy.Year == nil || *toy.Year != 1995 {
		t.Errorf("año de Toy Story = %v", toy.Year)
	}
	if len(toy.Genres) != 2 || toy.Genres[0] != "Animation" {
		t.Errorf("géneros de Toy Story = %v", toy.Genres)
	}
	if cat.Items[3].Year != nil {
		t.Error("película sin sufijo de año debería tener Year nil")
	}

	// ItemIDs ascendente
	for i := 1; i < len(cat.ItemIDs); i++ {
		if cat.ItemIDs[i-1] >= cat.ItemIDs[i] {
			t.Fatalf("ItemIDs no está ordenado: %v", cat.ItemIDs)
		}
	}
}

func TestLoadMissingDir(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "no-existe"))
	if !errors.Is(err, ErrNoCatalog) {
		t.Fatalf("quería ErrNoCatalog, vino %v", err)
	}
}
