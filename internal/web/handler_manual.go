package web

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

const maxUploadSize = 50 * 1024 * 1024 // 50 MB

const defaultLanguage = "English"

// allowedImageTypes is the set of MIME types accepted for uploaded photos.
// net/http.DetectContentType handles JPEG, PNG, and GIF via magic-byte
// sniffing. WebP is detected separately because the WHATWG sniff spec (and
// therefore the stdlib) does not include a WebP signature.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

// isWebP reports whether data is a WebP image (RIFF container with "WEBP" at
// offset 8).
func isWebP(data []byte) bool {
	return len(data) >= 12 &&
		string(data[0:4]) == "RIFF" &&
		string(data[8:12]) == "WEBP"
}

// allowedImageMIME returns the detected MIME type and true if the data is an
// accepted image format, or ("", false) otherwise.
func allowedImageMIME(data []byte) (string, bool) {
	if isWebP(data) {
		return "image/webp", true
	}
	mime := http.DetectContentType(data)
	if allowedImageTypes[mime] {
		return mime, true
	}
	return "", false
}

// readImageFile reads and sniffs an uploaded file, rejecting anything that is
// not a recognized image before the data reaches the model.
func (s *Server) readImageFile(w http.ResponseWriter, file multipart.File) ([]byte, string, bool) {
	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to read uploaded file", codeInternalError)
		s.logger.Error("read upload failed", "error", err)
		return nil, "", false
	}

	mimeType, ok := allowedImageMIME(data)
	if !ok {
		writeError(w, http.StatusBadRequest, "file must be a JPEG, PNG, GIF, or WebP image", codeInvalidRequest)
		return nil, "", false
	}

	return data, mimeType, true
}

// formLanguage returns the requested output language, defaulting to English.
func formLanguage(r *http.Request) string {
	language := strings.TrimSpace(r.FormValue("language"))
	if language == "" {
		return defaultLanguage
	}
	return language
}

type manualResponse struct {
	ManualText string  `json:"manual_text"`
	ImageURL   *string `json:"image_url"`
}

func (s *Server) handleGenerateManual(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "failed to parse form", codeInvalidRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "image file required", codeInvalidRequest)
		return
	}
	defer closeWithLog(file, "upload file", s.logger)

	imageData, mimeType, ok := s.readImageFile(w, file)
	if !ok {
		return
	}

	result, err := s.service.GenerateManualFromImage(r.Context(), imageData, mimeType, formLanguage(r))
	if err != nil {
		s.logger.Error("generate manual failed", "error", err)
		writeGenerationError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, manualResponse{ManualText: result.ManualText})
}

func (s *Server) handleGenerateManualFromText(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Query    string `json:"query"`
		Language string `json:"language"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", codeInvalidRequest)
		return
	}

	req.Query = strings.TrimSpace(req.Query)
	if req.Query == "" {
		writeError(w, http.StatusBadRequest, "query is required", codeInvalidRequest)
		return
	}
	if strings.TrimSpace(req.Language) == "" {
		req.Language = defaultLanguage
	}

	result, err := s.service.GenerateManualFromText(r.Context(), req.Query, req.Language)
	if err != nil {
		s.logger.Error("generate manual from text failed", "error", err)
		writeGenerationError(w, err)
		return
	}

	resp := manualResponse{ManualText: result.ManualText}
	if result.ImageURL != "" {
		resp.ImageURL = &result.ImageURL
	}
	writeJSON(w, http.StatusOK, resp)
}
