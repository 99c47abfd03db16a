package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultGeminiModel   = "gemini-2.0-flash"
	DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com"
)

type Config struct {
	// Server
	Port         string
	Env          string
	MaxBodyBytes int64

	// Gemini AI
	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string
	GeminiTimeout time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:          getEnvOrDefault("PORT", "8080"),
		Env:           getEnvOrDefault("ENV", "development"),
		MaxBodyBytes:  int64(getEnvAsIntOrDefault("MAX_BODY_BYTES", 1<<20)),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   getEnvOrDefault("GEMINI_MODEL", DefaultGeminiModel),
		GeminiBaseURL: getEnvOrDefault("GEMINI_BASE_URL", DefaultGeminiBaseURL),
		GeminiTimeout: time.Duration(getEnvAsIntOrDefault("GEMINI_TIMEOUT_SECONDS", 0)) * time.Second,
	}

	return cfg
}

// HasCredential reports whether an upstream API key is configured.
// A missing key is not fatal at startup; each chat request checks it.
func (c *Config) HasCredential() bool {
	return c.GeminiAPIKey != ""
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
