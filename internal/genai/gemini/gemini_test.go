package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devicedigihelp/backend/internal/genai"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c := NewClient("test-key", "gemini-2.5-flash")
	c.baseURL = server.URL
	return c
}

func TestGenerate(t *testing.T) {
	var gotPath, gotKey string
	var gotReq request

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		_ = json.NewDecoder(r.Body).Decode(&gotReq)

		resp := map[string]any{
			"candidates": []map[string]any{
				{
					"content": map[string]any{
						"parts": []map[string]any{{"text": "Microwave\n1. Open door"}},
					},
					"finishReason": "STOP",
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})

	text, err := c.Generate(context.Background(), &genai.Request{
		System:    "identify the device",
		Text:      "describe it",
		Image:     []byte{0xFF, 0xD8},
		ImageMIME: "image/jpeg",
	})
	require.NoError(t, err)
	assert.Equal(t, "Microwave\n1. Open door", text)

	assert.Equal(t, "/models/gemini-2.5-flash:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
	require.NotNil(t, gotReq.SystemInstruction)
	assert.Equal(t, "identify the device", gotReq.SystemInstruction.Parts[0].Text)
	require.Len(t, gotReq.Contents, 1)
	require.Len(t, gotReq.Contents[0].Parts, 2)
	assert.Equal(t, "image/jpeg", gotReq.Contents[0].Parts[0].InlineData.MIMEType)
	assert.Equal(t, "describe it", gotReq.Contents[0].Parts[1].Text)
}

func TestGenerateTextOnly(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req request
		_ = json.NewDecoder(r.Body).Decode(&req)
		if len(req.Contents[0].Parts) != 1 || req.Contents[0].Parts[0].InlineData != nil {
			http.Error(w, "expected a single text part", http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": "PS5 Controller\n1. Hold PS button"}}}},
			},
		})
	})

	text, err := c.Generate(context.Background(), &genai.Request{
		System: "write a manual",
		Text:   "Sony PS5 controller",
	})
	require.NoError(t, err)
	assert.Contains(t, text, "PS5")
}

func TestGenerateBlockedPrompt(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"promptFeedback": map[string]any{"blockReason": "SAFETY"},
		})
	})

	_, err := c.Generate(context.Background(), &genai.Request{Text: "hi"})
	require.Error(t, err)
	assert.ErrorIs(t, err, genai.ErrBlocked)
}

func TestGenerateBlockedCandidate(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{{"finishReason": "SAFETY"}},
		})
	})

	_, err := c.Generate(context.Background(), &genai.Request{Text: "hi"})
	assert.ErrorIs(t, err, genai.ErrBlocked)
}

func TestGenerateNoText(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"candidates": []map[string]any{}})
	})

	_, err := c.Generate(context.Background(), &genai.Request{Text: "hi"})
	assert.ErrorIs(t, err, genai.ErrNoText)
}

func TestGenerateAPIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	_, err := c.Generate(context.Background(), &genai.Request{Text: "hi"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, genai.ErrBlocked)
}

func TestGenerateNetworkError(t *testing.T) {
	c := NewClient("test-key", "gemini-2.5-flash")
	c.baseURL = "http://127.0.0.1:1"

	_, err := c.Generate(context.Background(), &genai.Request{Text: "hi"})
	assert.Error(t, err)
}
