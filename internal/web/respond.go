package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/devicedigihelp/backend/internal/genai"
)

// Error codes carried in JSON error bodies so clients can distinguish
// failure kinds without parsing the detail message.
const (
	codeInvalidRequest = "invalid_request"
	codeBlocked        = "blocked"
	codeUpstreamError  = "upstream_error"
	codeInternalError  = "internal_error"
)

type errorResponse struct {
	Detail string `json:"detail"`
	Code   string `json:"code"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, detail, code string) {
	writeJSON(w, status, errorResponse{Detail: detail, Code: code})
}

// writeGenerationError maps an inference failure to a 500 with a code that
// tells blocked content apart from upstream trouble.
func writeGenerationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, genai.ErrBlocked):
		writeError(w, http.StatusInternalServerError, "the model declined to process this content", codeBlocked)
	case errors.Is(err, genai.ErrNoText):
		writeError(w, http.StatusInternalServerError, "the model returned an empty response", codeUpstreamError)
	default:
		writeError(w, http.StatusInternalServerError, "failed to generate a response", codeUpstreamError)
	}
}
