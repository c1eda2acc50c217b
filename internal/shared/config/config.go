package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultGroqURL   = "https://api.groq.com/openai/v1/chat/completions"
	defaultGroqModel = "mixtral-8x7b-32768"

	defaultDenylist        = "Lodha, DLF, Prestige, Sobha, Godrej"
	defaultFallbackMessage = "Unable to fetch live property suggestions. Please retry."
)

// Config holds application configuration. It is built once at startup and
// passed explicitly into constructors; nothing reads the environment after Load.
type Config struct {
	Port            string
	Env             string
	CORSAllowOrigin []string
	DatabaseURL     string

	GroqAPIKey  string
	GroqAPIURL  string
	GroqModel   string
	GroqTimeout time.Duration

	SuggestRetryBackoff    time.Duration
	SuggestDenylist        []string
	SuggestFallbackMessage string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	return Config{
		Port:            getEnv("PORT", "8080"),
		Env:             normalizeEnv(getEnv("ENV", "dev")),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		DatabaseURL:     os.Getenv("DATABASE_URL"),

		GroqAPIKey:  os.Getenv("GROQ_API_KEY"),
		GroqAPIURL:  getEnv("GROQ_API_URL", defaultGroqURL),
		GroqModel:   getEnv("GROQ_MODEL", defaultGroqModel),
		GroqTimeout: time.Duration(getEnvInt("GROQ_TIMEOUT_SECONDS", 30)) * time.Second,

		SuggestRetryBackoff:    time.Duration(getEnvInt("SUGGEST_RETRY_BACKOFF_MS", 500)) * time.Millisecond,
		SuggestDenylist:        splitAndTrim(getEnv("SUGGEST_DENYLIST", defaultDenylist)),
		SuggestFallbackMessage: getEnv("SUGGEST_FALLBACK_MESSAGE", defaultFallbackMessage),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val <= 0 {
		return def
	}
	return val
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}
