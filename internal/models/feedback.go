package models

import "time"

// Umbrales de clasificación de feedback.
const (
	LikedMinRating    = 4
	DislikedMaxRating = 2
)

// FeedbackDoc es una valoración explícita de un usuario en un contexto de
// ánimo. Append-only: como máximo un documento por (userName, itemId, mood).
type FeedbackDoc struct {
	ID        string    `json:"id" bson:"_id"`
	UserName  string    `json:"user_name" bson:"userName"`
	ItemID    int       `json:"item_id" bson:"itemId"`
	Mood      string    `json:"mood" bson:"mood"`
	Rating    int       `json:"rating" bson:"rating"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

// Liked: rating >= 4. Disliked: rating <= 2. El 3 es neutro y no entra
// en ninguno de los dos conjuntos.
func (f FeedbackDoc) Liked() bool    { return f.Rating >= LikedMinRating }
func (f FeedbackDoc) Disliked() bool { return f.Rating <= DislikedMaxRating }
