package web

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/devicedigihelp/backend/internal/audiostore"
	"github.com/devicedigihelp/backend/internal/service"
)

type Server struct {
	service     *service.GuideService
	audioStore  audiostore.Store
	mux         *http.ServeMux
	corsOrigins string
	logger      *slog.Logger
}

func NewServer(svc *service.GuideService, audio audiostore.Store, corsOrigins string, logger *slog.Logger) *Server {
	s := &Server{
		service:     svc,
		audioStore:  audio,
		mux:         http.NewServeMux(),
		corsOrigins: corsOrigins,
		logger:      logger,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /{$}", s.handleRoot)
	s.mux.HandleFunc("POST /generate-manual/", s.handleGenerateManual)
	s.mux.HandleFunc("POST /generate-manual-from-text/", s.handleGenerateManualFromText)
	s.mux.HandleFunc("POST /ask-follow-up/", s.handleAskFollowUp)
	s.mux.HandleFunc("POST /contact-submit/", s.handleContactSubmit)
	s.mux.HandleFunc("POST /chat-submit/", s.handleChatSubmit)
	s.mux.HandleFunc("POST /api/process_device_image", s.handleProcessDeviceImage)
	s.mux.HandleFunc("GET /api/download/{filename}", s.handleDownloadAudio)
	s.mux.HandleFunc("GET /manuals/recent", s.handleRecentManuals)
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "DigiHelp backend is running",
	})
}

// securityHeaders adds defensive HTTP response headers to every response.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}

// cors allows the configured frontend origin to call the API from a browser.
func cors(origins string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", origins)
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// statusRecorder wraps http.ResponseWriter to capture the written status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestLogger(s.logger, securityHeaders(cors(s.corsOrigins, s.mux))).ServeHTTP(w, r)
}

func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("starting server", "addr", addr)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return srv.ListenAndServe()
}

// closeWithLog closes c and logs any error, using label to identify the resource.
func closeWithLog(c io.Closer, label string, logger *slog.Logger) {
	if err := c.Close(); err != nil {
		logger.Error("failed to close resource", "label", label, "error", err)
	}
}
