// Package providers holds thin clients for the third-party media APIs
// the proxy routes forward to. Handlers treat responses as opaque; no
// provider protocol leaks into the clip model.
package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/keagan/railcut/internal/config"
)

// PexelsClient searches the Pexels stock photo/video catalog.
type PexelsClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     zerolog.Logger
}

// NewPexelsClient creates a client from provider configuration.
func NewPexelsClient(cfg config.PexelsConfig, logger zerolog.Logger) *PexelsClient {
	return &PexelsClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		logger:     logger.With().Str("component", "pexels").Logger(),
	}
}

// Search queries the catalog. mediaType is "photos" or "videos"; the
// response body is passed through untouched.
func (c *PexelsClient) Search(ctx context.Context, query, mediaType string, page int) (json.RawMessage, error) {
	path := "/v1/search"
	if mediaType == "videos" {
		path = "/videos/search"
	}

	q := url.Values{}
	q.Set("query", query)
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pexels search failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Warn().Int("status", resp.StatusCode).Msg("pexels returned non-OK")
		return nil, fmt.Errorf("pexels search returned status %d", resp.StatusCode)
	}

	return json.RawMessage(body), nil
}
