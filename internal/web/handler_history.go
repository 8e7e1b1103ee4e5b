package web

import (
	"net/http"
	"strconv"
	"time"
)

const defaultRecentLimit = 20

type manualSummary struct {
	ID         int64     `json:"id"`
	DeviceName string    `json:"device_name"`
	Language   string    `json:"language"`
	Source     string    `json:"source"`
	ImageURL   string    `json:"image_url,omitempty"`
	AudioFile  string    `json:"audio_file,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func (s *Server) handleRecentManuals(w http.ResponseWriter, r *http.Request) {
	limit := defaultRecentLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 100 {
			writeError(w, http.StatusBadRequest, "limit must be between 1 and 100", codeInvalidRequest)
			return
		}
		limit = n
	}

	records, err := s.service.RecentManuals(r.Context(), limit)
	if err != nil {
		s.logger.Error("list recent manuals failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list manuals", codeInternalError)
		return
	}

	summaries := make([]manualSummary, 0, len(records))
	for _, rec := range records {
		summaries = append(summaries, manualSummary{
			ID:         rec.ID,
			DeviceName: rec.DeviceName,
			Language:   rec.Language,
			Source:     rec.Source,
			ImageURL:   rec.ImageURL,
			AudioFile:  rec.AudioFile,
			CreatedAt:  rec.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"manuals": summaries})
}
