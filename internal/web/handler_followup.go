package web

import (
	"net/http"
	"strings"
)

func (s *Server) handleAskFollowUp(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "failed to parse form", codeInvalidRequest)
		return
	}

	device := strings.TrimSpace(r.FormValue("device"))
	question := strings.TrimSpace(r.FormValue("question"))
	if device == "" || question == "" {
		writeError(w, http.StatusBadRequest, "device and question are required", codeInvalidRequest)
		return
	}

	// The image is optional; when present it must still be a real image.
	var imageData []byte
	var mimeType string
	if file, _, err := r.FormFile("file"); err == nil {
		defer closeWithLog(file, "upload file", s.logger)
		var ok bool
		imageData, mimeType, ok = s.readImageFile(w, file)
		if !ok {
			return
		}
	}

	answer, err := s.service.AskFollowUp(r.Context(), device, question, formLanguage(r), imageData, mimeType)
	if err != nil {
		s.logger.Error("follow-up failed", "device", device, "error", err)
		writeGenerationError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"answer": answer})
}
