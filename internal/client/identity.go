package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tvtrackr/tracker-server-go/internal/config"
)

// IdentityData is the verified identity returned by the identity provider in
// exchange for an opaque session id.
type IdentityData struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	Picture      string `json:"picture"`
	SessionToken string `json:"session_token"`
}

type IdentityClient interface {
	Exchange(ctx context.Context, sessionID string) (*IdentityData, error)
}

type identityClient struct {
	url    string
	client *http.Client
}

// NewIdentityClient builds a client for the identity provider's session-data
// endpoint. The url is the full endpoint, not a base.
func NewIdentityClient(url string) IdentityClient {
	return &identityClient{
		url: url,
		client: &http.Client{
			Timeout: config.ExternalRequestTimeout,
		},
	}
}

func (c *identityClient) Exchange(ctx context.Context, sessionID string) (*IdentityData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Session-ID", sessionID)

	start := time.Now()
	resp, err := c.client.Do(req)
	elapsed := time.Since(start)

	if err != nil {
		log.Error().Err(err).Dur("elapsed", elapsed).Msg("identity exchange request error")
		return nil, fmt.Errorf("identity exchange failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Warn().Int("status", resp.StatusCode).Dur("elapsed", elapsed).Msg("identity exchange rejected")
		return nil, fmt.Errorf("identity exchange failed with status %d", resp.StatusCode)
	}

	var data IdentityData
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode identity response: %w", err)
	}

	log.Debug().Dur("elapsed", elapsed).Msg("identity exchange successful")

	return &data, nil
}
