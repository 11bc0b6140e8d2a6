package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/tvtrackr/tracker-server-go/internal/errors"
	"github.com/tvtrackr/tracker-server-go/internal/middleware"
	"github.com/tvtrackr/tracker-server-go/internal/service"
)

type EpisodeHandler struct {
	showService *service.ShowService
}

func NewEpisodeHandler(showService *service.ShowService) *EpisodeHandler {
	return &EpisodeHandler{showService: showService}
}

func (h *EpisodeHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/upcoming", h.Upcoming)
	r.Put("/{episodeID}/watched", h.SetWatched)

	return r
}

// GET /api/episodes/upcoming
func (h *EpisodeHandler) Upcoming(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	episodes, err := h.showService.UpcomingEpisodes(r.Context(), user.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, episodes)
}

type setWatchedRequest struct {
	Watched *bool `json:"watched"`
}

// PUT /api/episodes/{episodeID}/watched
func (h *EpisodeHandler) SetWatched(w http.ResponseWriter, r *http.Request) {
	var req setWatchedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.InvalidInput("body", "malformed JSON"))
		return
	}

	// Watched defaults to true when the body omits it.
	watched := true
	if req.Watched != nil {
		watched = *req.Watched
	}

	user := middleware.GetUser(r.Context())
	episodeID := chi.URLParam(r, "episodeID")

	if err := h.showService.SetWatched(r.Context(), episodeID, user.ID, watched); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Episode updated"})
}
