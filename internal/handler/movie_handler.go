// internal/handler/movie_handler.go
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/AdiJusic22/AI-agentMovies/internal/catalog"
	"github.com/AdiJusic22/AI-agentMovies/internal/service"

	"github.com/go-chi/chi/v5"
)

type MovieHandler struct {
	svc *service.MovieService
}

func NewMovieHandler(s *service.MovieService) *MovieHandler { return &MovieHandler{svc: s} }

// @Summary Detalle de una película del catálogo
// @Tags movies
// @Produce json
// @Param id path int true "movieId"
// @Success 200 {object} models.Movie
// @Router /movies/{id} [get]
func (h *MovieHandler) GetMovie(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid movie id")
		return
	}

	m, err := h.svc.Get(id)
	if errors.Is(err, catalog.ErrNoCatalog) {
		writeError(w, http.StatusServiceUnavailable, "catalog not loaded")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if m == nil {
		writeError(w, http.StatusNotFound, "movie not found")
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// @Summary Buscar películas por título, género o año
// @Tags movies
// @Produce json
// @Param q query string false "substring del título"
// @Param genre query string false "género exacto"
// @Param yearFrom query int false "año desde"
// @Param yearTo query int false "año hasta"
// @Param limit query int false "máx resultados"
// @Param offset query int false "salto"
// @Success 200 {array} models.Movie
// @Router /movies/search [get]
func (h *MovieHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	genre := r.URL.Query().Get("genre")
	yearFrom, _ := strconv.Atoi(r.URL.Query().Get("yearFrom"))
	yearTo, _ := strconv.Atoi(r.URL.Query().Get("yearTo"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	list, err := h.svc.Search(q, genre, yearFrom, yearTo, limit, offset)
	if errors.Is(err, catalog.ErrNoCatalog) {
		writeError(w, http.StatusServiceUnavailable, "catalog not loaded")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// @Summary Top de películas por popularidad
// @Tags movies
// @Produce json
// @Param limit query int false "máx resultados"
// @Success 200 {array} models.TopMovie
// @Router /movies/top [get]
func (h *MovieHandler) Top(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	list, err := h.svc.Top(limit)
	if errors.Is(err, catalog.ErrNoCatalog) {
		writeError(w, http.StatusServiceUnavailable, "catalog not loaded")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, list)
}
