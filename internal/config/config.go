package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Session configuration
	SessionSecret string

	// Assistant configuration
	GeminiAPIKey     string
	GeminiModel      string
	AssistantTimeout time.Duration

	// HTTP configuration
	AllowedOrigins []string

	// Development mode
	Development bool
}

// Load reads configuration from the environment, loading a .env file first
// when one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		SessionSecret:    getEnv("SESSION_SECRET", "your-secret-key-change-this-in-production"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		GeminiModel:      getEnv("GEMINI_MODEL", ""),
		AssistantTimeout: time.Duration(getIntEnv("ASSISTANT_TIMEOUT_SECONDS", 30)) * time.Second,
		AllowedOrigins:   getSliceEnv("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:3001"}),
		Development:      getBoolEnv("DEVELOPMENT", true),
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is empty")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getSliceEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}
