package domain

import "time"

// ManualSource identifies which endpoint produced a stored manual.
const (
	SourceImage  = "image"
	SourceText   = "text"
	SourceLegacy = "legacy"
)

type ManualRecord struct {
	ID         int64
	DeviceName string
	ManualText string
	Language   string
	Source     string
	ImageURL   string
	AudioFile  string
	CreatedAt  time.Time
}

type ContactSubmission struct {
	ID        int64
	Name      string
	Email     string
	Message   string
	EmailSent bool
	CreatedAt time.Time
}
