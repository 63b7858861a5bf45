package catalog

import (
	"encoding/csv"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/AdiJusic22/AI-agentMovies/internal/models"
)

// ErrNoCatalog indica que el directorio de datos no existe. No es fatal:
// el sistema entra en modo fallback y sirve placeholders.
var ErrNoCatalog = errors.New("catalog: data directory not found")

// Catalog contiene el catálogo inmutable ya cargado en memoria.
type Catalog struct {
	Items   map[int]models.Movie
	ItemIDs []int // ascendente, para recorridos deterministas
	Ratings []models.Rating
}

// Load lee movies.csv y ratings.csv desde dataDir. Filas malformadas se
// descartan sin abortar la carga.
func Load(dataDir string) (*Catalog, error) {
	if _, err := os.Stat(dataDir); err != nil {
		return nil, ErrNoCatalog
	}

	items, err := loadMovies(filepath.Join(dataDir, "movies.csv"))
	if err != nil {
		return nil, err
	}

	ratings, err := loadRatings(filepath.Join(dataDir, "ratings.csv"))
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	log.Printf("[catalog] %d películas, %d ratings\n", len(items), len(ratings))

	return &Catalog{Items: items, ItemIDs: ids, Ratings: ratings}, nil
}

func loadMovies(path string) (map[int]models.Movie, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	movies := make(map[int]models.Movie)
	reader.Read() // header

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil || len(record) < 2 {
			continue
		}

		movieID, err := strconv.Atoi(record[0])
		if err != nil {
			continue
		}

		var genres []string
		if len(record) >= 3 {
			genres = SplitGenres(record[2])
		}

		movies[movieID] = models.Movie{
			MovieID: movieID,
			Title:   record[1],
			Year:    ParseYear(record[1]),
			Genres:  genres,
		}
	}

	return movies, nil
}

func loadRatings(path string) ([]models.Rating, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	ratings := make([]models.Rating, 0, 1024)
	reader.Read() // header

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil || len(record) < 3 {
			continue
		}

		userID, err1 := strconv.Atoi(record[0])
		movieID, err2 := strconv.Atoi(record[1])
		rating, err3 := strconv.ParseFloat(record[2], 64)
		if err1 != nil || err2 != nil || err3 != nil || rating < 0 || rating > 5 {
			continue
		}

		var ts int64
		if len(record) >= 4 {
			ts, _ = strconv.ParseInt(record[3], 10, 64)
		}

		ratings = append(ratings, models.Rating{
			UserID:    userID,
			MovieID:   movieID,
			Rating:    rating,
			Timestamp: ts,
		})
	}

	return ratings, nil
}

// ParseYear extrae el año de un título con sufijo "(YYYY)". Cualquier
// fallo de parseo devuelve nil (año desconocido), nunca error.
func ParseYear(title string) *int {
	t := strings.TrimSpace(title)
	if !strings.HasSuffix(t, ")") {
		return nil
	}
	i := strings.LastIndex(t, "(")
	if i < 0 {
		return nil
	}
	year, err := strconv.Atoi(t[i+1 : len(t)-1])
	if err != nil {
		return nil
	}
	return &year
}

// SplitGenres separa la lista de géneros delimitada por "|".
func SplitGenres(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "(no genres listed)" {
		return nil
	}
	parts := strings.Split(raw, "|")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
