package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/devicedigihelp/backend/internal/domain"
)

type ManualStore struct {
	db *sql.DB
}

func NewManualStore(db *sql.DB) *ManualStore {
	return &ManualStore{db: db}
}

func (s *ManualStore) Create(ctx context.Context, deviceName, manualText, language, source, imageURL, audioFile string) (*domain.ManualRecord, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO manuals (device_name, manual_text, language, source, image_url, audio_file)
		VALUES (?, ?, ?, ?, ?, ?)
	`, deviceName, manualText, language, source, imageURL, audioFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create manual: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return s.GetByID(ctx, id)
}

func (s *ManualStore) GetByID(ctx context.Context, id int64) (*domain.ManualRecord, error) {
	rec := &domain.ManualRecord{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, device_name, manual_text, language, source, image_url, audio_file, created_at
		FROM manuals WHERE id = ?
	`, id).Scan(&rec.ID, &rec.DeviceName, &rec.ManualText, &rec.Language, &rec.Source, &rec.ImageURL, &rec.AudioFile, &rec.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get manual: %w", err)
	}

	return rec, nil
}

func (s *ManualStore) ListRecent(ctx context.Context, limit int) ([]*domain.ManualRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, device_name, manual_text, language, source, image_url, audio_file, created_at
		FROM manuals ORDER BY created_at DESC, id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list manuals: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "error", err)
		}
	}()

	var records []*domain.ManualRecord
	for rows.Next() {
		rec := &domain.ManualRecord{}
		if err := rows.Scan(&rec.ID, &rec.DeviceName, &rec.ManualText, &rec.Language, &rec.Source, &rec.ImageURL, &rec.AudioFile, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan manual: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating manuals: %w", err)
	}

	return records, nil
}
