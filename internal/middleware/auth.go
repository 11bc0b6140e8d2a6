package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	apperrors "github.com/tvtrackr/tracker-server-go/internal/errors"
	"github.com/tvtrackr/tracker-server-go/internal/httputil"
	"github.com/tvtrackr/tracker-server-go/internal/model"
	"github.com/tvtrackr/tracker-server-go/internal/repository"
)

type contextKey string

const UserContextKey contextKey = "user"

// SessionCookieName is the cookie carrying the session token; it matches the
// token field name the identity provider uses.
const SessionCookieName = "session_token"

func GetUser(ctx context.Context) *model.User {
	if user, ok := ctx.Value(UserContextKey).(*model.User); ok {
		return user
	}
	return nil
}

type AuthMiddleware struct {
	sessionRepo repository.SessionRepository
	userRepo    repository.UserRepository
}

func NewAuthMiddleware(sessionRepo repository.SessionRepository, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{sessionRepo: sessionRepo, userRepo: userRepo}
}

func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := ExtractToken(r)
		if token == "" {
			httputil.WriteError(w, apperrors.Unauthenticated())
			return
		}

		session, err := m.sessionRepo.FindByToken(r.Context(), token)
		if err != nil {
			log.Error().Err(err).Msg("auth middleware: database error")
			httputil.WriteError(w, apperrors.Database(err))
			return
		}
		if session == nil {
			httputil.WriteError(w, apperrors.InvalidSession())
			return
		}

		// Expired sessions are rejected here but the row is left in place.
		if !time.Now().UTC().Before(session.ExpiresAt.UTC()) {
			httputil.WriteError(w, apperrors.SessionExpired())
			return
		}

		user, err := m.userRepo.FindByID(r.Context(), session.UserID)
		if err != nil {
			log.Error().Err(err).Msg("auth middleware: database error")
			httputil.WriteError(w, apperrors.Database(err))
			return
		}
		if user == nil {
			// Session points at a deleted user; reject rather than crash.
			log.Warn().Str("user_id", session.UserID).Msg("auth middleware: session references missing user")
			httputil.WriteError(w, apperrors.UserNotFound())
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ExtractToken pulls the session token from the request. The cookie takes
// precedence over the Authorization header when both are present.
func ExtractToken(r *http.Request) string {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return ""
}

// SetSessionCookie sets the session token cookie for cross-site use, matching
// the seven day session lifetime.
func SetSessionCookie(w http.ResponseWriter, token string, maxAge time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

// ClearSessionCookie expires the session cookie. The deletion cookie carries
// the same attributes as the set cookie; browsers match on them for
// cross-site requests.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}
