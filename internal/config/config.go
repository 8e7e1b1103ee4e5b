package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr        string
	DBPath            string
	GenBackend        string
	GeminiAPIKey      string
	GeminiModel       string
	ClaudeAPIKey      string
	ClaudeModel       string
	OpenAIAPIKey      string
	TTSModel          string
	TTSVoice          string
	SearchAPIKey      string
	SearchEngineID    string
	SenderEmail       string
	SenderAppPassword string
	SMTPHost          string
	SMTPPort          int
	AudioPath         string
	CORSOrigins       string
	LogLevel          string
	LogFile           string
}

func Load() *Config {
	// Optional .env file for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	return &Config{
		ListenAddr:        getEnv("LISTEN_ADDR", ":8000"),
		DBPath:            getEnv("DB_PATH", "/data/digihelp.db"),
		GenBackend:        getEnv("GEN_BACKEND", "gemini"),
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		GeminiModel:       getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		ClaudeAPIKey:      getEnv("CLAUDE_API_KEY", ""),
		ClaudeModel:       getEnv("CLAUDE_MODEL", "claude-sonnet-4-5"),
		OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
		TTSModel:          getEnv("TTS_MODEL", "tts-1"),
		TTSVoice:          getEnv("TTS_VOICE", "alloy"),
		SearchAPIKey:      getEnv("SEARCH_API_KEY", ""),
		SearchEngineID:    getEnv("SEARCH_ENGINE_ID", ""),
		SenderEmail:       getEnv("SENDER_EMAIL", ""),
		SenderAppPassword: getEnv("SENDER_APP_PASSWORD", ""),
		SMTPHost:          getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:          getEnvInt("SMTP_PORT", 465),
		AudioPath:         getEnv("AUDIO_PATH", "/data/manuals"),
		CORSOrigins:       getEnv("CORS_ORIGINS", "*"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFile:           getEnv("LOG_FILE", ""),
	}
}

// Validate reports the first missing required setting. The process must not
// serve any request without a working inference backend, mail credentials,
// and image-search credentials.
func (c *Config) Validate() error {
	switch c.GenBackend {
	case "gemini":
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY environment variable not set")
		}
	case "claude":
		if c.ClaudeAPIKey == "" {
			return fmt.Errorf("CLAUDE_API_KEY is required when GEN_BACKEND=claude")
		}
	default:
		return fmt.Errorf("unknown GEN_BACKEND %q (expected gemini or claude)", c.GenBackend)
	}
	if c.SenderEmail == "" {
		return fmt.Errorf("SENDER_EMAIL environment variable not set")
	}
	if c.SenderAppPassword == "" {
		return fmt.Errorf("SENDER_APP_PASSWORD environment variable not set")
	}
	if c.SearchAPIKey == "" {
		return fmt.Errorf("SEARCH_API_KEY environment variable not set")
	}
	if c.SearchEngineID == "" {
		return fmt.Errorf("SEARCH_ENGINE_ID environment variable not set")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	val, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	var n int
	if _, err := fmt.Sscanf(val, "%d", &n); err != nil {
		return defaultVal
	}
	return n
}
