// Package api exposes the thin server routes that proxy third-party
// media APIs for the browser editor: stock search, sound-effect
// generation, upload presigning, and transcription.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// StockSearcher searches a stock media catalog.
type StockSearcher interface {
	Search(ctx context.Context, query, mediaType string, page int) (json.RawMessage, error)
}

// SoundGenerator turns a text prompt into audio bytes.
type SoundGenerator interface {
	Generate(ctx context.Context, text string) ([]byte, error)
}

// UploadPresigner issues presigned upload URLs.
type UploadPresigner interface {
	PresignPut(key string, expires time.Duration) (string, error)
}

// Transcriber turns an audio URL into a transcript.
type Transcriber interface {
	Transcribe(ctx context.Context, audioURL string) (json.RawMessage, error)
}

// ServerConfig wires the proxy server's collaborators.
type ServerConfig struct {
	Port      int
	AssetsDir string
	Stock     StockSearcher
	Sounds    SoundGenerator
	Presigner UploadPresigner
	Scribe    Transcriber
	Expiry    time.Duration
	Logger    zerolog.Logger
}

// Server is the HTTP proxy server.
type Server struct {
	httpServer *http.Server
	logger     zerolog.Logger
}

// NewServer builds the server around the proxy router.
func NewServer(cfg ServerConfig) *Server {
	router := NewRouter(cfg)

	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf("127.0.0.1:%d", cfg.Port),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 0,
			IdleTimeout:  60 * time.Second,
		},
		logger: cfg.Logger.With().Str("component", "api").Logger(),
	}
}

// Start blocks serving requests until Shutdown.
func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.httpServer.Addr).Msg("starting proxy server")
	err := s.httpServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("shutting down proxy server")
	return s.httpServer.Shutdown(ctx)
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}
