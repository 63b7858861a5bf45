package models

// UserStats es el resumen que devuelve /stats.
type UserStats struct {
	UserName      string         `json:"user_name"`
	TotalFeedback int            `json:"total_feedback"`
	LikedCount    int            `json:"liked_count"`
	DislikedCount int            `json:"disliked_count"`
	FavoriteMood  string         `json:"favorite_mood,omitempty"`
	Moods         map[string]int `json:"moods"`
}

// Event es un evento crudo del agente (click, impresión, rating).
// Solo lo consume el learner; no tiene persistencia propia.
type Event struct {
	UserID    string         `json:"user_id"`
	SessionID string         `json:"session_id,omitempty"`
	EventType string         `json:"event_type"`
	ItemID    string         `json:"item_id,omitempty"`
	Timestamp string         `json:"timestamp,omitempty"`
	Context   map[string]any `json:"context,omitempty"`
}
