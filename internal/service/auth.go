package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/tvtrackr/tracker-server-go/internal/client"
	"github.com/tvtrackr/tracker-server-go/internal/config"
	apperrors "github.com/tvtrackr/tracker-server-go/internal/errors"
	"github.com/tvtrackr/tracker-server-go/internal/model"
	"github.com/tvtrackr/tracker-server-go/internal/repository"
)

type AuthService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	identity    client.IdentityClient
}

func NewAuthService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	identity client.IdentityClient,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		identity:    identity,
	}
}

// CreateSession exchanges an opaque external session id for a verified
// identity, creates the user on first login, and persists a session adopting
// the provider's token verbatim. Repeated logins stack sessions; earlier ones
// stay valid until they expire.
func (s *AuthService) CreateSession(ctx context.Context, sessionID string) (*model.User, string, error) {
	data, err := s.identity.Exchange(ctx, sessionID)
	if err != nil {
		return nil, "", apperrors.UpstreamAuth(err)
	}

	user, err := s.userRepo.FindByEmail(ctx, data.Email)
	if err != nil {
		return nil, "", apperrors.Database(err)
	}

	if user == nil {
		user, err = s.userRepo.Create(ctx, model.CreateUserParams{
			ID:      uuid.NewString(),
			Email:   data.Email,
			Name:    data.Name,
			Picture: data.Picture,
		})
		if err != nil {
			return nil, "", apperrors.Database(err)
		}
		log.Info().Str("user_id", user.ID).Msg("user created")
	}
	// An existing user is reused verbatim; name and picture are not
	// refreshed from the new exchange.

	_, err = s.sessionRepo.Create(ctx, model.CreateSessionParams{
		ID:           uuid.NewString(),
		UserID:       user.ID,
		SessionToken: data.SessionToken,
		ExpiresAt:    time.Now().UTC().Add(config.SessionTTL),
	})
	if err != nil {
		return nil, "", apperrors.Database(err)
	}

	log.Info().Str("user_id", user.ID).Msg("session created")

	return user, data.SessionToken, nil
}

// Logout deletes the session row for the presented token. A token with no
// matching session is not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessionRepo.DeleteByToken(ctx, token); err != nil {
		return apperrors.Database(err)
	}
	return nil
}
