package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"runtime"

	_ "github.com/AdiJusic22/AI-agentMovies/docs" // swagger docs

	"github.com/AdiJusic22/AI-agentMovies/internal/agent"
	"github.com/AdiJusic22/AI-agentMovies/internal/cache"
	"github.com/AdiJusic22/AI-agentMovies/internal/catalog"
	"github.com/AdiJusic22/AI-agentMovies/internal/config"
	"github.com/AdiJusic22/AI-agentMovies/internal/db"
	"github.com/AdiJusic22/AI-agentMovies/internal/describe"
	"github.com/AdiJusic22/AI-agentMovies/internal/engine"
	"github.com/AdiJusic22/AI-agentMovies/internal/handler"
	"github.com/AdiJusic22/AI-agentMovies/internal/models"
	"github.com/AdiJusic22/AI-agentMovies/internal/repository"
	"github.com/AdiJusic22/AI-agentMovies/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title AI Agent Movies API
// @version 1.0
// @description Recomendador de películas condicionado por el ánimo del usuario
// @host localhost:8080
// @BasePath /
func main() {
	cfg := config.Load()
	ctx := context.Background()

	// Mongo (feedback + historial) y Redis (cache de respuestas)
	mongoDB, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("[mongo] %v", err)
	}
	cache.InitRedis(cfg)

	// catálogo: si falta el directorio arrancamos en modo fallback
	cat, err := catalog.Load(cfg.DataDir)
	if err != nil {
		if !errors.Is(err, catalog.ErrNoCatalog) {
			log.Fatalf("[catalog] %v", err)
		}
		log.Printf("[catalog] %s no existe, arrancando en modo fallback\n", cfg.DataDir)
		cat = nil
	}

	// repos
	fbRepo := repository.NewFeedbackRepository(mongoDB)
	if err := fbRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("[mongo] %v", err)
	}
	recRepo := repository.NewRecommendationRepository(mongoDB)

	// motor: primer build al arrancar, después uno por cada feedback
	holder := engine.NewModelHolder(cat, fbRepo, cfg.KNNNeighbors, runtime.NumCPU())
	if err := holder.Rebuild(ctx); err != nil {
		log.Fatalf("[engine] %v", err)
	}

	moods := engine.NewMoodFilter(cfg.MoodFilterCap)

	var desc describe.Describer = describe.Template{}
	if cfg.TMDBAPIKey != "" {
		desc = describe.NewTMDB(cfg.TMDBAPIKey)
	}

	planner := engine.NewPlanner(holder, fbRepo, moods, desc, cfg.KNNNeighbors)

	// services
	recSvc := service.NewRecommendService(planner, holder, recRepo, cfg.DefaultN, cfg.MaxN)
	fbSvc := service.NewFeedbackService(fbRepo, holder)
	movieSvc := service.NewMovieService(cat, holder)

	// ciclo del agente: sense → think → act → learn
	orch := agent.NewOrchestrator(
		agent.RecommenderFunc(func(ctx context.Context, name, mood string, n int) ([]models.RecItem, error) {
			return recSvc.Recommend(ctx, service.RecRequest{Name: name, Mood: mood, N: n})
		}),
		agent.LogLearner{},
		agent.DummySensor{},
		agent.DummyActuator{},
	)

	// handlers
	recH := handler.NewRecommendHandler(orch)
	histH := handler.NewHistoryHandler(recSvc)
	fbH := handler.NewFeedbackHandler(fbSvc)
	movieH := handler.NewMovieHandler(movieSvc)
	monH := handler.NewMonitoringHandler(holder)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// frontend estático
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/static/", http.StatusFound)
	})
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	r.Get("/health", handler.Health)
	r.Get("/monitoring", monH.GetStatus)

	r.Get("/recommend", recH.GetRecommendations)
	r.Get("/ws/recommend", recH.GetRecommendationsWS)
	r.Post("/events", recH.PostEvent)
	r.Get("/recommendations", histH.GetHistory)

	r.Post("/feedback", fbH.PostFeedback)
	r.Get("/ratings", fbH.GetRatings)
	r.Get("/stats", fbH.GetStats)

	r.Get("/movies/search", movieH.Search)
	r.Get("/movies/top", movieH.Top)
	r.Get("/movies/{id}", movieH.GetMovie)

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
