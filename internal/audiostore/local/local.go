package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalAudioStore writes generated MP3 manuals under a base directory.
// Filenames are UUID-based so concurrent requests can never collide on the
// same path.
type LocalAudioStore struct {
	basePath string
}

func NewLocalAudioStore(basePath string) (*LocalAudioStore, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create audio directory: %w", err)
	}
	return &LocalAudioStore{basePath: basePath}, nil
}

func (s *LocalAudioStore) Save(_ context.Context, audio []byte) (string, error) {
	filename := fmt.Sprintf("manual_%s.mp3", uuid.NewString())
	filePath := filepath.Join(s.basePath, filename)

	if err := os.WriteFile(filePath, audio, 0644); err != nil {
		return "", fmt.Errorf("failed to write audio file: %w", err)
	}
	return filename, nil
}

func (s *LocalAudioStore) Open(_ context.Context, filename string) (io.ReadCloser, error) {
	filePath, err := s.safeJoin(filename)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("audio file not found")
		}
		return nil, fmt.Errorf("failed to open audio file: %w", err)
	}
	return f, nil
}

func (s *LocalAudioStore) Delete(_ context.Context, filename string) error {
	filePath, err := s.safeJoin(filename)
	if err != nil {
		return err
	}

	if err := os.Remove(filePath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("audio file not found")
		}
		return fmt.Errorf("failed to delete audio file: %w", err)
	}
	return nil
}

// safeJoin resolves filename relative to basePath and rejects directory
// traversal. Download filenames arrive straight from the URL path.
func (s *LocalAudioStore) safeJoin(filename string) (string, error) {
	absBase, err := filepath.Abs(s.basePath)
	if err != nil {
		return "", fmt.Errorf("invalid base path: %w", err)
	}

	absPath, err := filepath.Abs(filepath.Join(s.basePath, filename))
	if err != nil {
		return "", fmt.Errorf("invalid path: %w", err)
	}

	if !strings.HasPrefix(absPath, absBase+string(filepath.Separator)) {
		return "", fmt.Errorf("path traversal attempt")
	}
	return absPath, nil
}
