package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	apperrors "github.com/tvtrackr/tracker-server-go/internal/errors"
	"github.com/tvtrackr/tracker-server-go/internal/middleware"
	"github.com/tvtrackr/tracker-server-go/internal/service"
)

type ShowHandler struct {
	showService *service.ShowService
}

func NewShowHandler(showService *service.ShowService) *ShowHandler {
	return &ShowHandler{showService: showService}
}

func (h *ShowHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/search", h.Search)
	r.Post("/favorites", h.AddFavorite)
	r.Get("/favorites", h.ListFavorites)
	r.Delete("/favorites/{showID}", h.RemoveFavorite)
	r.Put("/favorites/{showID}/rating", h.RateShow)
	r.Get("/{showID}/episodes", h.ListEpisodes)

	return r
}

// GET /api/shows/search?q=
func (h *ShowHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, apperrors.MissingRequired("q parameter"))
		return
	}

	result, err := h.showService.SearchShows(r.Context(), query)
	if err != nil {
		log.Warn().Err(err).Str("query", query).Msg("show search failed")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

type addFavoriteRequest struct {
	CatalogID int64    `json:"catalog_id"`
	Name      string   `json:"name"`
	ImageURL  *string  `json:"image_url"`
	Genres    []string `json:"genres"`
	Rating    *float64 `json:"rating"`
	Premiered *string  `json:"premiered"`
	Status    *string  `json:"status"`
	Summary   *string  `json:"summary"`
}

// POST /api/shows/favorites
func (h *ShowHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	var req addFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.InvalidInput("body", "malformed JSON"))
		return
	}
	if req.CatalogID <= 0 {
		writeError(w, apperrors.MissingRequired("catalog_id"))
		return
	}
	if req.Name == "" {
		writeError(w, apperrors.MissingRequired("name"))
		return
	}

	user := middleware.GetUser(r.Context())
	show, err := h.showService.AddFavorite(r.Context(), user.ID, service.AddFavoriteParams{
		CatalogID: req.CatalogID,
		Name:      req.Name,
		ImageURL:  req.ImageURL,
		Genres:    req.Genres,
		Rating:    req.Rating,
		Premiered: req.Premiered,
		Status:    req.Status,
		Summary:   req.Summary,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, show)
}

// GET /api/shows/favorites
func (h *ShowHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	shows, err := h.showService.ListFavorites(r.Context(), user.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, shows)
}

// DELETE /api/shows/favorites/{showID}
func (h *ShowHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	showID := chi.URLParam(r, "showID")

	if err := h.showService.RemoveFavorite(r.Context(), showID, user.ID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Show removed from favorites"})
}

type rateShowRequest struct {
	Rating *float64 `json:"rating"`
}

// PUT /api/shows/favorites/{showID}/rating
func (h *ShowHandler) RateShow(w http.ResponseWriter, r *http.Request) {
	var req rateShowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.InvalidInput("body", "malformed JSON"))
		return
	}
	if req.Rating == nil {
		writeError(w, apperrors.MissingRequired("rating"))
		return
	}

	user := middleware.GetUser(r.Context())
	showID := chi.URLParam(r, "showID")

	if err := h.showService.RateShow(r.Context(), showID, user.ID, *req.Rating); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Rating updated"})
}

// GET /api/shows/{showID}/episodes
func (h *ShowHandler) ListEpisodes(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	showID := chi.URLParam(r, "showID")

	episodes, err := h.showService.ListEpisodes(r.Context(), showID, user.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, episodes)
}
