package api

import (
	"encoding/json"
	"net/http"
)

type SFXRequest struct {
	Text string `json:"text"`
}

type SFXResponse struct {
	URL string `json:"url"`
}

type PresignRequest struct {
	FileNames []string `json:"file_names"`
}

type PresignedUpload struct {
	FileName string `json:"file_name"`
	URL      string `json:"url"`
}

type PresignResponse struct {
	Uploads []PresignedUpload `json:"uploads"`
}

type TranscribeRequest struct {
	AudioURL string `json:"audio_url"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// WriteJSON writes a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes a JSON error envelope.
func WriteError(w http.ResponseWriter, status int, msg, code string) {
	WriteJSON(w, status, ErrorResponse{Error: msg, Code: code})
}
