package api

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/keagan/railcut/pkg/util"
)

func NewRouter(cfg ServerConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(RequestIDMiddleware())
	r.Use(RecoveryMiddleware(cfg.Logger))
	r.Use(LoggingMiddleware(cfg.Logger))

	r.Post("/api/sfx", sfxHandler(cfg))
	r.Get("/api/pexels", pexelsHandler(cfg))
	r.Post("/api/uploads/presign", presignHandler(cfg))
	r.Post("/api/transcribe", transcribeHandler(cfg))

	if cfg.AssetsDir != "" {
		fs := http.StripPrefix("/assets/", http.FileServer(http.Dir(cfg.AssetsDir)))
		r.Get("/assets/*", fs.ServeHTTP)
	}

	return r
}

// sfxHandler generates a sound effect from a text prompt, stores the
// audio under the assets dir, and returns its URL.
func sfxHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SFXRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
			return
		}
		if req.Text == "" {
			WriteError(w, http.StatusBadRequest, "text is required", "BAD_REQUEST")
			return
		}

		audio, err := cfg.Sounds.Generate(r.Context(), req.Text)
		if err != nil {
			cfg.Logger.Error().Err(err).Msg("sound generation failed")
			WriteError(w, http.StatusBadGateway, "sound generation failed", "PROVIDER_ERROR")
			return
		}

		if err := util.EnsureDir(cfg.AssetsDir); err != nil {
			WriteError(w, http.StatusInternalServerError, "assets dir unavailable", "INTERNAL_ERROR")
			return
		}
		name := util.UniqueAssetName("sfx", ".mp3")
		if err := os.WriteFile(filepath.Join(cfg.AssetsDir, name), audio, 0644); err != nil {
			WriteError(w, http.StatusInternalServerError, "could not store audio", "INTERNAL_ERROR")
			return
		}

		WriteJSON(w, http.StatusOK, SFXResponse{URL: "/assets/" + name})
	}
}

// pexelsHandler proxies a stock media search.
func pexelsHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("query")
		if query == "" {
			WriteError(w, http.StatusBadRequest, "query is required", "BAD_REQUEST")
			return
		}
		mediaType := r.URL.Query().Get("type")
		if mediaType == "" {
			mediaType = "photos"
		}
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))

		raw, err := cfg.Stock.Search(r.Context(), query, mediaType, page)
		if err != nil {
			cfg.Logger.Error().Err(err).Str("query", query).Msg("stock search failed")
			WriteError(w, http.StatusBadGateway, "stock search failed", "PROVIDER_ERROR")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(raw)
	}
}

// presignHandler returns presigned PUT URLs for the requested files.
func presignHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PresignRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
			return
		}
		if len(req.FileNames) == 0 {
			WriteError(w, http.StatusBadRequest, "file_names is required", "BAD_REQUEST")
			return
		}

		resp := PresignResponse{Uploads: make([]PresignedUpload, 0, len(req.FileNames))}
		for _, name := range req.FileNames {
			url, err := cfg.Presigner.PresignPut(name, cfg.Expiry)
			if err != nil {
				cfg.Logger.Error().Err(err).Str("file", name).Msg("presign failed")
				WriteError(w, http.StatusBadGateway, "presign failed", "PROVIDER_ERROR")
				return
			}
			resp.Uploads = append(resp.Uploads, PresignedUpload{FileName: name, URL: url})
		}

		WriteJSON(w, http.StatusOK, resp)
	}
}

// transcribeHandler proxies transcription of an audio URL.
func transcribeHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TranscribeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
			return
		}
		if req.AudioURL == "" {
			WriteError(w, http.StatusBadRequest, "audio_url is required", "BAD_REQUEST")
			return
		}

		raw, err := cfg.Scribe.Transcribe(r.Context(), req.AudioURL)
		if err != nil {
			cfg.Logger.Error().Err(err).Msg("transcription failed")
			WriteError(w, http.StatusBadGateway, "transcription failed", "PROVIDER_ERROR")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(raw)
	}
}
