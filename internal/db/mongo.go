package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/AdiJusic22/AI-agentMovies/internal/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect abre la conexión a Mongo y devuelve el handle de la base.
// Los repositorios reciben el *mongo.Database por inyección; no hay
// estado global de sesión.
func Connect(ctx context.Context, cfg *config.Config) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	log.Printf("[mongo] conectado a %s / DB=%s\n", cfg.MongoURI, cfg.MongoDB)
	return client.Database(cfg.MongoDB), nil
}
