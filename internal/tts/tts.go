package tts

import "context"

// Synthesizer converts manual text into spoken audio bytes (MP3).
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}
