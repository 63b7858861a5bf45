package agent

import (
	"context"
	"log"
	"time"

	"github.com/AdiJusic22/AI-agentMovies/internal/models"
)

// Colaboradores del agente. Recommender es el único con contenido real;
// sensor, actuador y learner son stubs que completan el ciclo
// sense → think → act → learn.
type Recommender interface {
	Recommend(ctx context.Context, name, mood string, n int) ([]models.RecItem, error)
}

// RecommenderFunc adapta una función suelta al interface Recommender.
type RecommenderFunc func(ctx context.Context, name, mood string, n int) ([]models.RecItem, error)

func (f RecommenderFunc) Recommend(ctx context.Context, name, mood string, n int) ([]models.RecItem, error) {
	return f(ctx, name, mood, n)
}

type Learner interface {
	Learn(ctx context.Context, event models.Event) error
}

type Sensor interface {
	Sense(ctx context.Context) models.Event
}

type Actuator interface {
	Act(ctx context.Context, recs []models.RecItem)
}

// DummySensor emite un evento sintético de contexto.
type DummySensor struct{}

func (DummySensor) Sense(context.Context) models.Event {
	return models.Event{
		EventType: "impression",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// DummyActuator solo deja constancia en el log.
type DummyActuator struct{}

func (DummyActuator) Act(_ context.Context, recs []models.RecItem) {
	log.Printf("[agent] actuando sobre %d recomendaciones\n", len(recs))
}

// LogLearner registra el evento y nada más; el aprendizaje real pasa por
// el feedback store.
type LogLearner struct{}

func (LogLearner) Learn(_ context.Context, event models.Event) error {
	log.Printf("[agent] evento aprendido: type=%s user=%s item=%s\n",
		event.EventType, event.UserID, event.ItemID)
	return nil
}

// Orchestrator encadena los colaboradores. Es pasamanos fino: toda la
// lógica de recomendación vive en el planner.
type Orchestrator struct {
	recommender Recommender
	learner     Learner
	sensor      Sensor
	actuator    Actuator
}

func NewOrchestrator(r Recommender, l Learner, s Sensor, a Actuator) *Orchestrator {
	return &Orchestrator{recommender: r, learner: l, sensor: s, actuator: a}
}

func (o *Orchestrator) Learner() Learner { return o.learner }

// Step ejecuta un ciclo completo del agente para un request.
func (o *Orchestrator) Step(ctx context.Context, name, mood string, n int) ([]models.RecItem, error) {
	data := o.sensor.Sense(ctx)

	recs, err := o.recommender.Recommend(ctx, name, mood, n)
	if err != nil {
		return nil, err
	}

	o.actuator.Act(ctx, recs)

	if err := o.learner.Learn(ctx, data); err != nil {
		// el learn del ciclo es best-effort, no voltea la respuesta
		log.Printf("[agent] learn falló: %v\n", err)
	}
	return recs, nil
}
