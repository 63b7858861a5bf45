package models

// Rating es un evento histórico del dataset (ratings.csv).
// Se carga en bloque una sola vez y nunca se muta.
type Rating struct {
	UserID    int     `json:"userId"`
	MovieID   int     `json:"movieId"`
	Rating    float64 `json:"rating"`
	Timestamp int64   `json:"timestamp"`
}
