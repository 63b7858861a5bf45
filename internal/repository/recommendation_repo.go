package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/AdiJusic22/AI-agentMovies/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RecommendationRepository guarda el historial de respuestas servidas.
// Es best-effort: si falla el insert no se rompe la respuesta.
type RecommendationRepository struct {
	col *mongo.Collection
}

func NewRecommendationRepository(db *mongo.Database) *RecommendationRepository {
	return &RecommendationRepository{col: db.Collection("recommendations")}
}

func (r *RecommendationRepository) Insert(ctx context.Context, rec *models.Recommendation) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	if _, err := r.col.InsertOne(ctx, rec); err != nil {
		return fmt.Errorf("recommendation history: insert: %w", err)
	}
	return nil
}

// ByUser lista el historial del usuario, más reciente primero.
func (r *RecommendationRepository) ByUser(ctx context.Context, userName string, limit int64) ([]models.Recommendation, error) {
	cur, err := r.col.Find(ctx,
		bson.M{"userName": userName},
		options.Find().
			SetSort(bson.D{{Key: "createdAt", Value: -1}}).
			SetLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("recommendation history: find: %w", err)
	}
	defer cur.Close(ctx)

	var out []models.Recommendation
	for cur.Next(ctx) {
		var rec models.Recommendation
		if err := cur.Decode(&rec); err != nil {
			return nil, fmt.Errorf("recommendation history: decode: %w", err)
		}
		out = append(out, rec)
	}
	return out, cur.Err()
}
