// Package config provides configuration for the content service.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the service configuration.
type Config struct {
	// Server settings
	HTTPPort int

	// LLM provider settings (OpenAI-compatible)
	LLMBaseURL string
	LLMAPIKey  string
	LLMModel   string
	LLMTimeout time.Duration

	// Search settings
	SerpAPIURL string
	SerpAPIKey string

	// Content fetch settings
	FetchTimeout time.Duration

	// Session settings
	SessionTTL     time.Duration
	SessionBackend string
	DatabaseURL    string
	BadgerPath     string

	// Guidelines
	GuidelinesPath string

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() *Config {
	cfg := &Config{
		HTTPPort:       getEnvInt("HTTP_PORT", 8087),
		LLMBaseURL:     getEnv("LLM_BASE_URL", "https://api.openai.com"),
		LLMAPIKey:      getEnv("LLM_API_KEY", ""),
		LLMModel:       getEnv("LLM_MODEL", "gpt-4o-mini"),
		LLMTimeout:     time.Duration(getEnvInt("LLM_TIMEOUT_MS", 120000)) * time.Millisecond,
		SerpAPIURL:     getEnv("SERPAPI_URL", "https://serpapi.com/search.json"),
		SerpAPIKey:     getEnv("SERPAPI_KEY", ""),
		FetchTimeout:   time.Duration(getEnvInt("FETCH_TIMEOUT_MS", 30000)) * time.Millisecond,
		SessionTTL:     time.Duration(getEnvInt("SESSION_TTL_MS", 3600000)) * time.Millisecond,
		SessionBackend: getEnv("SESSION_BACKEND", "memory"),
		DatabaseURL:    getEnv("DATABASE_URL", "file:sessions.db?cache=shared&mode=rwc"),
		BadgerPath:     getEnv("BADGER_PATH", "sessions-badger"),
		GuidelinesPath: getEnv("GUIDELINES_PATH", ""),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}
