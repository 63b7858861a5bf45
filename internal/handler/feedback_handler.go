package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/AdiJusic22/AI-agentMovies/internal/service"
)

type FeedbackHandler struct {
	svc *service.FeedbackService
}

func NewFeedbackHandler(s *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{svc: s}
}

// El frontend manda item_id a veces como string y a veces como número;
// aceptamos los dos.
type feedbackRequest struct {
	Name   string `json:"name"`
	ItemID any    `json:"item_id"`
	Mood   string `json:"mood"`
	Rating int    `json:"rating"`
}

func asItemID(v any) (int, bool) {
	switch x := v.(type) {
	case float64:
		return int(x), true
	case string:
		n, err := strconv.Atoi(x)
		return n, err == nil
	default:
		return 0, false
	}
}

// @Summary Registrar feedback de un usuario
// @Tags feedback
// @Accept json
// @Produce json
// @Param body body feedbackRequest true "feedback"
// @Success 200 {object} service.SubmitResult
// @Router /feedback [post]
func (h *FeedbackHandler) PostFeedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	itemID, ok := asItemID(req.ItemID)
	if !ok {
		writeError(w, http.StatusBadRequest, "item_id must be an integer")
		return
	}

	res, err := h.svc.Submit(r.Context(), req.Name, itemID, req.Mood, req.Rating)
	if errors.Is(err, service.ErrValidation) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// @Summary Historial de valoraciones de un usuario
// @Tags feedback
// @Produce json
// @Param name query string true "nombre de usuario"
// @Param mood query string false "filtrar por ánimo"
// @Success 200 {object} map[string]interface{}
// @Router /ratings [get]
func (h *FeedbackHandler) GetRatings(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "Name is required")
		return
	}
	mood := r.URL.Query().Get("mood")

	list, err := h.svc.Ratings(r.Context(), name, mood)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ratings": list})
}

// @Summary Estadísticas de un usuario
// @Tags feedback
// @Produce json
// @Param name query string true "nombre de usuario"
// @Success 200 {object} models.UserStats
// @Router /stats [get]
func (h *FeedbackHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "Name is required")
		return
	}

	stats, err := h.svc.Stats(r.Context(), name)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
