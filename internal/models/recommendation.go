package models

import "time"

// RecItem es un ítem recomendado tal como sale por la API.
type RecItem struct {
	ItemID      int      `bson:"itemId"       json:"item_id"`
	Title       string   `bson:"title"        json:"title"`
	Year        *int     `bson:"year,omitempty" json:"year,omitempty"`
	Genres      []string `bson:"genres,omitempty" json:"genres,omitempty"`
	Score       float64  `bson:"score"        json:"score"`
	Reason      string   `bson:"reason"       json:"reason"`
	Description string   `bson:"description,omitempty" json:"llm_description,omitempty"`
	AgentMood   string   `bson:"agentMood,omitempty" json:"agent_mood,omitempty"`
}

// Recommendation es el historial que guardamos en Mongo por cada
// respuesta servida.
type Recommendation struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	UserName  string    `bson:"userName"      json:"userName"`
	Mood      string    `bson:"mood"          json:"mood"`
	Strategy  string    `bson:"strategy"      json:"strategy"`
	Items     []RecItem `bson:"items"         json:"items"`
	CreatedAt time.Time `bson:"createdAt"     json:"createdAt"`
}
