package repository

import (
	"context"
	"fmt"

	"github.com/AdiJusic22/AI-agentMovies/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DuplicateFeedbackError: ya existe un registro para (userName, itemId,
// mood). El registro existente no se toca; Existing trae su rating.
type DuplicateFeedbackError struct {
	Existing int
}

func (e *DuplicateFeedbackError) Error() string {
	return fmt.Sprintf("feedback already exists (rating=%d)", e.Existing)
}

// FeedbackRepository persiste el feedback en Mongo. La unicidad por
// (userName, itemId, mood) la garantiza un índice compuesto único además
// del pre-chequeo, así tampoco la rompe una carrera entre procesos.
type FeedbackRepository struct {
	col *mongo.Collection
}

func NewFeedbackRepository(db *mongo.Database) *FeedbackRepository {
	return &FeedbackRepository{col: db.Collection("feedback")}
}

// EnsureIndexes crea el índice único; llamar una vez al arrancar.
func (r *FeedbackRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "userName", Value: 1},
			{Key: "itemId", Value: 1},
			{Key: "mood", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("feedback store: create index: %w", err)
	}
	return nil
}

// Insert agrega un registro nuevo. Si ya existe uno para el triple
// devuelve DuplicateFeedbackError con el rating guardado, sin mutar nada.
// Un InsertOne es atómico, así que nunca queda un registro a medias.
func (r *FeedbackRepository) Insert(ctx context.Context, fb *models.FeedbackDoc) error {
	existing, err := r.get(ctx, fb.UserName, fb.ItemID, fb.Mood)
	if err != nil {
		return err
	}
	if existing != nil {
		return &DuplicateFeedbackError{Existing: existing.Rating}
	}

	if _, err := r.col.InsertOne(ctx, fb); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// carrera perdida: otro proceso insertó entre el chequeo y
			// el insert; devolvemos el rating que ganó
			if winner, gerr := r.get(ctx, fb.UserName, fb.ItemID, fb.Mood); gerr == nil && winner != nil {
				return &DuplicateFeedbackError{Existing: winner.Rating}
			}
		}
		return fmt.Errorf("feedback store: insert: %w", err)
	}
	return nil
}

func (r *FeedbackRepository) get(ctx context.Context, userName string, itemID int, mood string) (*models.FeedbackDoc, error) {
	var fb models.FeedbackDoc
	err := r.col.FindOne(ctx, bson.M{
		"userName": userName,
		"itemId":   itemID,
		"mood":     mood,
	}).Decode(&fb)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("feedback store: find: %w", err)
	}
	return &fb, nil
}

// ByUser devuelve el historial completo del usuario; mood vacío trae
// todos los ánimos.
func (r *FeedbackRepository) ByUser(ctx context.Context, userName, mood string) ([]models.FeedbackDoc, error) {
	filter := bson.M{"userName": userName}
	if mood != "" {
		filter["mood"] = mood
	}
	return r.find(ctx, filter, nil)
}

// Liked: rating >= 4 para (user, mood), más recientes primero.
func (r *FeedbackRepository) Liked(ctx context.Context, userName, mood string) ([]models.FeedbackDoc, error) {
	return r.find(ctx,
		bson.M{
			"userName": userName,
			"mood":     mood,
			"rating":   bson.M{"$gte": models.LikedMinRating},
		},
		options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}),
	)
}

// Disliked: rating <= 2 para (user, mood).
func (r *FeedbackRepository) Disliked(ctx context.Context, userName, mood string) ([]models.FeedbackDoc, error) {
	return r.find(ctx, bson.M{
		"userName": userName,
		"mood":     mood,
		"rating":   bson.M{"$lte": models.DislikedMaxRating},
	}, nil)
}

// All devuelve el snapshot completo para el overlay de la matriz.
func (r *FeedbackRepository) All(ctx context.Context) ([]models.FeedbackDoc, error) {
	return r.find(ctx, bson.M{}, nil)
}

func (r *FeedbackRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.FeedbackDoc, error) {
	var cur *mongo.Cursor
	var err error
	if opts != nil {
		cur, err = r.col.Find(ctx, filter, opts)
	} else {
		cur, err = r.col.Find(ctx, filter)
	}
	if err != nil {
		return nil, fmt.Errorf("feedback store: find: %w", err)
	}
	defer cur.Close(ctx)

	var out []models.FeedbackDoc
	for cur.Next(ctx) {
		var fb models.FeedbackDoc
		if err := cur.Decode(&fb); err != nil {
			return nil, fmt.Errorf("feedback store: decode: %w", err)
		}
		out = append(out, fb)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("feedback store: cursor: %w", err)
	}
	return out, nil
}
