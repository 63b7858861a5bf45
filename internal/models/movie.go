package models

// Movie es una película del catálogo MovieLens. Se carga una vez desde
// movies.csv y no se muta después.
type Movie struct {
	MovieID int      `json:"movieId" bson:"movieId"`
	Title   string   `json:"title" bson:"title"`
	Year    *int     `json:"year,omitempty" bson:"year,omitempty"`
	Genres  []string `json:"genres" bson:"genres"`
}

// HasGenre indica si la película tiene alguno de los géneros permitidos.
func (m Movie) HasGenre(allowed map[string]bool) bool {
	for _, g := range m.Genres {
		if allowed[g] {
			return true
		}
	}
	return false
}

// TopMovie es una película con su score de popularidad (para /movies/top).
type TopMovie struct {
	Movie
	AvgRating float64 `json:"avgRating"`
}
