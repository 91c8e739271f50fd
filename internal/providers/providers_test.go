package providers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/keagan/railcut/internal/config"
)

func TestPexelsSearchPhotos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/search" {
			t.Errorf("path = %s, want /v1/search", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "key123" {
			t.Errorf("auth header = %q", r.Header.Get("Authorization"))
		}
		if r.URL.Query().Get("query") != "ocean" || r.URL.Query().Get("page") != "2" {
			t.Errorf("query = %v", r.URL.Query())
		}
		w.Write([]byte(`{"photos":[]}`))
	}))
	defer srv.Close()

	c := NewPexelsClient(config.PexelsConfig{BaseURL: srv.URL, APIKey: "key123"}, zerolog.Nop())
	raw, err := c.Search(context.Background(), "ocean", "photos", 2)
	if err != nil {
		t.Fatalf("Search error = %v", err)
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("response not passed through as JSON: %v", err)
	}
}

func TestPexelsSearchVideosPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/videos/search" {
			t.Errorf("path = %s, want /videos/search", r.URL.Path)
		}
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewPexelsClient(config.PexelsConfig{BaseURL: srv.URL}, zerolog.Nop())
	if _, err := c.Search(context.Background(), "surf", "videos", 1); err != nil {
		t.Fatalf("Search error = %v", err)
	}
}

func TestPexelsNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewPexelsClient(config.PexelsConfig{BaseURL: srv.URL}, zerolog.Nop())
	if _, err := c.Search(context.Background(), "x", "photos", 1); err == nil {
		t.Fatal("expected error on non-OK status")
	}
}

func TestSFXGenerate(t *testing.T) {
	audio := []byte{0xff, 0xfb, 0x90, 0x00}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if r.Header.Get("xi-api-key") != "sk" {
			t.Errorf("api key header = %q", r.Header.Get("xi-api-key"))
		}
		body, _ := io.ReadAll(r.Body)
		var req map[string]string
		if err := json.Unmarshal(body, &req); err != nil || req["text"] != "door slam" {
			t.Errorf("request body = %s", body)
		}
		w.Write(audio)
	}))
	defer srv.Close()

	c := NewSFXClient(config.SFXConfig{BaseURL: srv.URL, APIKey: "sk"}, zerolog.Nop())
	got, err := c.Generate(context.Background(), "door slam")
	if err != nil {
		t.Fatalf("Generate error = %v", err)
	}
	if string(got) != string(audio) {
		t.Error("audio bytes not passed through")
	}
}

func TestTranscribePassThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tk" {
			t.Errorf("auth header = %q", r.Header.Get("Authorization"))
		}
		body, _ := io.ReadAll(r.Body)
		var req map[string]string
		if err := json.Unmarshal(body, &req); err != nil || req["audio_url"] == "" {
			t.Errorf("request body = %s", body)
		}
		w.Write([]byte(`{"text":"hello world"}`))
	}))
	defer srv.Close()

	c := NewTranscribeClient(config.TranscribeConfig{BaseURL: srv.URL, APIKey: "tk"}, zerolog.Nop())
	raw, err := c.Transcribe(context.Background(), "https://cdn/audio.mp3")
	if err != nil {
		t.Fatalf("Transcribe error = %v", err)
	}
	if string(raw) != `{"text":"hello world"}` {
		t.Errorf("transcript = %s", raw)
	}
}
