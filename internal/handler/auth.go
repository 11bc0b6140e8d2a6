package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/tvtrackr/tracker-server-go/internal/config"
	apperrors "github.com/tvtrackr/tracker-server-go/internal/errors"
	"github.com/tvtrackr/tracker-server-go/internal/middleware"
	"github.com/tvtrackr/tracker-server-go/internal/model"
	"github.com/tvtrackr/tracker-server-go/internal/service"
)

type AuthHandler struct {
	authService    *service.AuthService
	authMiddleware *middleware.AuthMiddleware
}

func NewAuthHandler(authService *service.AuthService, authMiddleware *middleware.AuthMiddleware) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		authMiddleware: authMiddleware,
	}
}

func (h *AuthHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/session", h.CreateSession)

	r.Group(func(r chi.Router) {
		r.Use(h.authMiddleware.Handler)
		r.Get("/me", h.Me)
		r.Post("/logout", h.Logout)
	})

	return r
}

type createSessionResponse struct {
	User         *model.User `json:"user"`
	SessionToken string      `json:"session_token"`
}

// POST /api/auth/session
func (h *AuthHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	sessionID := r.Header.Get("X-Session-ID")
	if sessionID == "" {
		writeError(w, apperrors.MissingRequired("X-Session-ID header"))
		return
	}

	user, token, err := h.authService.CreateSession(r.Context(), sessionID)
	if err != nil {
		log.Warn().Err(err).Msg("session creation failed")
		writeError(w, err)
		return
	}

	middleware.SetSessionCookie(w, token, config.SessionTTL)
	writeJSON(w, http.StatusOK, createSessionResponse{
		User:         user,
		SessionToken: token,
	})
}

// GET /api/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, middleware.GetUser(r.Context()))
}

// POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := middleware.ExtractToken(r)
	if err := h.authService.Logout(r.Context(), token); err != nil {
		writeError(w, err)
		return
	}

	middleware.ClearSessionCookie(w)
	writeJSON(w, http.StatusOK, messageResponse{Message: "Logged out successfully"})
}
