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

// TranscribeClient forwards an audio URL to the configured speech-to-
// text provider and returns its transcript verbatim.
type TranscribeClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     zerolog.Logger
}

// NewTranscribeClient creates a client from provider configuration.
func NewTranscribeClient(cfg config.TranscribeConfig, logger zerolog.Logger) *TranscribeClient {
	return &TranscribeClient{
		httpClient: &http.Client{Timeout: 120 * time.Second},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		logger:     logger.With().Str("component", "transcribe").Logger(),
	}
}

type transcribeRequest struct {
	AudioURL string `json:"audio_url"`
}

// Transcribe submits the audio URL and passes the provider's JSON
// response through untouched.
func (c *TranscribeClient) Transcribe(ctx context.Context, audioURL string) (json.RawMessage, error) {
	payload, err := json.Marshal(transcribeRequest{AudioURL: audioURL})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("transcription failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Warn().Int("status", resp.StatusCode).Msg("transcription provider returned non-OK")
		return nil, fmt.Errorf("transcription returned status %d", resp.StatusCode)
	}

	return json.RawMessage(body), nil
}
