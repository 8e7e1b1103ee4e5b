package web

import (
	"encoding/json"
	"net/http"
	netmail "net/mail"
	"strings"
)

func (s *Server) handleContactSubmit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", codeInvalidRequest)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)
	if req.Name == "" || req.Email == "" || req.Message == "" {
		writeError(w, http.StatusBadRequest, "name, email, and message are required", codeInvalidRequest)
		return
	}
	if _, err := netmail.ParseAddress(req.Email); err != nil {
		writeError(w, http.StatusBadRequest, "invalid email address", codeInvalidRequest)
		return
	}

	// Delivery is fire-and-forget; the submitter always sees success.
	s.service.SubmitContact(r.Context(), req.Name, req.Email, req.Message)

	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": "Thanks for reaching out. We'll get back to you soon.",
	})
}

func (s *Server) handleChatSubmit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", codeInvalidRequest)
		return
	}

	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "message is required", codeInvalidRequest)
		return
	}

	s.service.SubmitChat(r.Context(), req.Message)

	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": "Message received.",
	})
}
