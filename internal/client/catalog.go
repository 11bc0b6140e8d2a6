package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tvtrackr/tracker-server-go/internal/config"
)

// CatalogEpisode is one episode as returned by the show catalog.
type CatalogEpisode struct {
	ID       int64   `json:"id"`
	Season   int     `json:"season"`
	Number   int     `json:"number"`
	Name     string  `json:"name"`
	Airdate  *string `json:"airdate"`
	Airstamp *string `json:"airstamp"`
	Runtime  *int    `json:"runtime"`
	Summary  *string `json:"summary"`
}

type CatalogClient interface {
	// SearchShows returns the catalog's search response verbatim.
	SearchShows(ctx context.Context, query string) (json.RawMessage, error)
	ListEpisodes(ctx context.Context, catalogID int64) ([]CatalogEpisode, error)
}

type catalogClient struct {
	baseURL string
	client  *http.Client
}

func NewCatalogClient(baseURL string) CatalogClient {
	return &catalogClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: config.ExternalRequestTimeout,
		},
	}
}

func (c *catalogClient) SearchShows(ctx context.Context, query string) (json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/search/shows?q=%s", c.baseURL, url.QueryEscape(query))
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}

func (c *catalogClient) ListEpisodes(ctx context.Context, catalogID int64) ([]CatalogEpisode, error) {
	endpoint := fmt.Sprintf("%s/shows/%d/episodes", c.baseURL, catalogID)
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var episodes []CatalogEpisode
	if err := json.Unmarshal(body, &episodes); err != nil {
		return nil, fmt.Errorf("decode episodes response: %w", err)
	}
	return episodes, nil
}

func (c *catalogClient) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	elapsed := time.Since(start)

	if err != nil {
		log.Error().Err(err).Str("url", endpoint).Dur("elapsed", elapsed).Msg("catalog request error")
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Warn().Str("url", endpoint).Int("status", resp.StatusCode).Dur("elapsed", elapsed).Msg("catalog request rejected")
		return nil, fmt.Errorf("catalog request failed with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read catalog response: %w", err)
	}

	log.Debug().Str("url", endpoint).Dur("elapsed", elapsed).Msg("catalog request successful")

	return body, nil
}
