package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/devicedigihelp/backend/internal/audiostore/local"
	"github.com/devicedigihelp/backend/internal/config"
	"github.com/devicedigihelp/backend/internal/db"
	"github.com/devicedigihelp/backend/internal/genai"
	claudegen "github.com/devicedigihelp/backend/internal/genai/claude"
	geminigen "github.com/devicedigihelp/backend/internal/genai/gemini"
	googlesearch "github.com/devicedigihelp/backend/internal/imagesearch/google"
	"github.com/devicedigihelp/backend/internal/logging"
	"github.com/devicedigihelp/backend/internal/mail"
	"github.com/devicedigihelp/backend/internal/service"
	"github.com/devicedigihelp/backend/internal/store"
	"github.com/devicedigihelp/backend/internal/tts"
	openaitts "github.com/devicedigihelp/backend/internal/tts/openai"
	"github.com/devicedigihelp/backend/internal/web"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	manualStore := store.NewManualStore(database)
	contactStore := store.NewContactStore(database)

	generator := newGenerator(cfg, logger)
	if generator == nil {
		return
	}

	searcher, err := googlesearch.NewSearcher(context.Background(), cfg.SearchAPIKey, cfg.SearchEngineID)
	if err != nil {
		logger.Error("failed to initialize image search", "error", err)
		return
	}

	audioStore, err := local.NewLocalAudioStore(cfg.AudioPath)
	if err != nil {
		logger.Error("failed to initialize audio store", "error", err)
		return
	}

	var speech tts.Synthesizer
	if cfg.OpenAIAPIKey != "" {
		logger.Info("audio narration enabled", "model", cfg.TTSModel, "voice", cfg.TTSVoice)
		speech = openaitts.NewSynthesizer(cfg.OpenAIAPIKey, cfg.TTSModel, cfg.TTSVoice)
	} else {
		logger.Info("audio narration disabled, OPENAI_API_KEY not set")
	}

	relay := mail.NewSMTPRelay(cfg.SMTPHost, cfg.SMTPPort, cfg.SenderEmail, cfg.SenderAppPassword)

	guideService := service.NewGuideService(generator, speech, searcher, relay, audioStore, manualStore, contactStore, logger)
	server := web.NewServer(guideService, audioStore, cfg.CORSOrigins, logger)

	if err := server.ListenAndServe(cfg.ListenAddr); err != nil {
		logger.Error("server error", "error", err)
	}
}

func newGenerator(cfg *config.Config, logger *slog.Logger) genai.Generator {
	switch cfg.GenBackend {
	case "claude":
		logger.Info("using Claude generation backend", "model", cfg.ClaudeModel)
		return claudegen.NewClient(cfg.ClaudeAPIKey, cfg.ClaudeModel)
	default:
		logger.Info("using Gemini generation backend", "model", cfg.GeminiModel)
		return geminigen.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	}
}
