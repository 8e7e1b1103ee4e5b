package genai

import (
	"context"
	"errors"
)

// Request is one inference call: a system instruction plus user content.
// Image is optional; when set, ImageMIME must carry its media type and the
// backend sends a mixed image+text message.
type Request struct {
	System    string
	Text      string
	Image     []byte
	ImageMIME string
}

// Generator produces text from a prompt using an external multimodal model.
type Generator interface {
	Generate(ctx context.Context, req *Request) (string, error)
}

// Backends wrap these sentinels so callers can tell a declined request from
// a transport failure with errors.Is.
var (
	// ErrBlocked means the model declined the request (safety filtering).
	ErrBlocked = errors.New("generation blocked by the model")
	// ErrNoText means the call succeeded but returned no usable text.
	ErrNoText = errors.New("model returned no text")
)
