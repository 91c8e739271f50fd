package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/keagan/railcut/internal/config"
)

// SFXClient turns a text prompt into generated sound-effect audio.
type SFXClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     zerolog.Logger
}

// NewSFXClient creates a client from provider configuration.
func NewSFXClient(cfg config.SFXConfig, logger zerolog.Logger) *SFXClient {
	return &SFXClient{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		logger:     logger.With().Str("component", "sfx").Logger(),
	}
}

type sfxRequest struct {
	Text string `json:"text"`
}

// Generate posts the prompt and returns the raw audio bytes.
func (c *SFXClient) Generate(ctx context.Context, text string) ([]byte, error) {
	payload, err := json.Marshal(sfxRequest{Text: text})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sound generation failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sound generation returned status %d", resp.StatusCode)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().
		Int("bytes", len(audio)).
		Dur("elapsed", time.Since(start)).
		Msg("sound effect generated")

	return audio, nil
}
