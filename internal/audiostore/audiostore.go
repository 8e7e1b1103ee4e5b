package audiostore

import (
	"context"
	"io"
)

// Store persists generated audio manuals and serves them back for download.
type Store interface {
	// Save writes audio bytes and returns the generated filename.
	Save(ctx context.Context, audio []byte) (filename string, err error)
	// Open returns a reader for a previously saved file.
	Open(ctx context.Context, filename string) (io.ReadCloser, error)
	// Delete removes a saved file.
	Delete(ctx context.Context, filename string) error
}
