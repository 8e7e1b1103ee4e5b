package web

import (
	"io"
	"net/http"
)

type legacyManualResponse struct {
	Success          bool    `json:"success"`
	DeviceIdentified string  `json:"device_identified"`
	TextManual       string  `json:"text_manual"`
	AudioFileURL     *string `json:"audio_file_url"`
}

// handleProcessDeviceImage is the original single-shot flow: identify the
// device, return a plain-text numbered guide, and narrate it to an mp3
// downloadable from /api/download/.
func (s *Server) handleProcessDeviceImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "failed to parse form", codeInvalidRequest)
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "image file required", codeInvalidRequest)
		return
	}
	defer closeWithLog(file, "upload file", s.logger)

	imageData, mimeType, ok := s.readImageFile(w, file)
	if !ok {
		return
	}

	manual, err := s.service.ProcessDeviceImage(r.Context(), imageData, mimeType)
	if err != nil {
		s.logger.Error("process device image failed", "error", err)
		writeGenerationError(w, err)
		return
	}

	resp := legacyManualResponse{
		Success:          true,
		DeviceIdentified: manual.DeviceName,
		TextManual:       manual.ManualBody,
	}
	if manual.AudioFile != "" {
		url := "/api/download/" + manual.AudioFile
		resp.AudioFileURL = &url
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDownloadAudio(w http.ResponseWriter, r *http.Request) {
	filename := r.PathValue("filename")

	reader, err := s.audioStore.Open(r.Context(), filename)
	if err != nil {
		writeError(w, http.StatusNotFound, "audio file not found", codeInvalidRequest)
		return
	}
	defer closeWithLog(reader, "audio reader", s.logger)

	w.Header().Set("Content-Type", "audio/mpeg")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if _, err := io.Copy(w, reader); err != nil {
		s.logger.Error("write audio failed", "filename", filename, "error", err)
	}
}
