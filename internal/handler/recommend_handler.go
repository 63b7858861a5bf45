package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/AdiJusic22/AI-agentMovies/internal/agent"
	"github.com/AdiJusic22/AI-agentMovies/internal/models"
	"github.com/AdiJusic22/AI-agentMovies/internal/service"

	"github.com/gorilla/websocket"
)

type RecommendHandler struct {
	orch *agent.Orchestrator
}

func NewRecommendHandler(o *agent.Orchestrator) *RecommendHandler {
	return &RecommendHandler{orch: o}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// @Summary Recomendaciones para un usuario según su ánimo
// @Tags recommend
// @Produce json
// @Param name query string true "nombre de usuario o userId del dataset"
// @Param mood query string false "ánimo (neutral por defecto)"
// @Param n query int false "cantidad de recomendaciones (máx 50)"
// @Param refresh query bool false "si true, ignora cache Redis"
// @Success 200 {array} models.RecItem
// @Router /recommend [get]
func (h *RecommendHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "Name is required")
		return
	}
	mood := r.URL.Query().Get("mood")
	n, _ := strconv.Atoi(r.URL.Query().Get("n"))

	items, err := h.orch.Step(r.Context(), name, mood, n)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// @Summary Ingesta de eventos crudos del agente
// @Tags events
// @Accept json
// @Success 200 {object} map[string]string
// @Router /events [post]
func (h *RecommendHandler) PostEvent(w http.ResponseWriter, r *http.Request) {
	var ev models.Event
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.orch.Learner().Learn(r.Context(), ev); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type HistoryHandler struct {
	svc *service.RecommendService
}

func NewHistoryHandler(s *service.RecommendService) *HistoryHandler {
	return &HistoryHandler{svc: s}
}

// @Summary Historial de recomendaciones servidas a un usuario
// @Tags recommend
// @Produce json
// @Param name query string true "nombre de usuario"
// @Param limit query int false "máx registros (10 por defecto)"
// @Success 200 {object} map[string]interface{}
// @Router /recommendations [get]
func (h *HistoryHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "Name is required")
		return
	}
	limit, _ := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)

	list, err := h.svc.History(r.Context(), name, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"recommendations": list})
}

// upgrader global (no afecta a swagger)
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary Recomendaciones con progreso (WebSocket)
// @Tags recommend
// @Produce json
// @Param name query string true "nombre de usuario"
// @Param mood query string false "ánimo"
// @Param n query int false "cantidad"
// @Success 200 {object} map[string]interface{}
// @Router /ws/recommend [get]
func (h *RecommendHandler) GetRecommendationsWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "websocket upgrade failed", http.StatusBadRequest)
		return
	}
	defer conn.Close()

	name := r.URL.Query().Get("name")
	mood := r.URL.Query().Get("mood")
	n, _ := strconv.Atoi(r.URL.Query().Get("n"))

	if name == "" {
		conn.WriteJSON(map[string]any{"type": "error", "error": "Name is required"})
		return
	}

	conn.WriteJSON(map[string]any{
		"type": "start",
		"msg":  "Connected, thinking about your mood...",
	})

	steps := []string{"loading preferences", "ranking candidates", "applying mood filter"}
	for i, s := range steps {
		time.Sleep(200 * time.Millisecond)
		conn.WriteJSON(map[string]any{
			"type": "progress",
			"step": i + 1,
			"msg":  s,
		})
	}

	items, err := h.orch.Step(r.Context(), name, mood, n)
	if err != nil {
		conn.WriteJSON(map[string]any{"type": "error", "error": err.Error()})
		return
	}

	conn.WriteJSON(map[string]any{
		"type":        "recommendations",
		"name":        name,
		"mood":        mood,
		"items":       items,
		"generatedAt": time.Now(),
	})
}
