package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/devicedigihelp/backend/internal/domain"
)

type ContactStore struct {
	db *sql.DB
}

func NewContactStore(db *sql.DB) *ContactStore {
	return &ContactStore{db: db}
}

func (s *ContactStore) Create(ctx context.Context, name, email, message string, emailSent bool) (*domain.ContactSubmission, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO contact_submissions (name, email, message, email_sent) VALUES (?, ?, ?, ?)
	`, name, email, message, emailSent)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact submission: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return s.GetByID(ctx, id)
}

func (s *ContactStore) GetByID(ctx context.Context, id int64) (*domain.ContactSubmission, error) {
	sub := &domain.ContactSubmission{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, message, email_sent, created_at
		FROM contact_submissions WHERE id = ?
	`, id).Scan(&sub.ID, &sub.Name, &sub.Email, &sub.Message, &sub.EmailSent, &sub.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contact submission: %w", err)
	}

	return sub, nil
}
