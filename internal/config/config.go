// Package config reads application configuration from the environment.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/mrexodia/pangram-webui/internal/credits"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	CORSAllowOrigin []string
	PangramAPIKey   string
	PangramAPIURL   string
	DatabasePath    string
	CreditUnitPrice float64
}

// DefaultDatabasePath is the history database location when PANGRAM_DB is unset.
const DefaultDatabasePath = "pangram_history.db"

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of a local env file for dev convenience.
	_ = godotenv.Load()

	env := normalizeEnv(getEnv("ENV", "dev"))
	apiKey := os.Getenv("PANGRAM_API_KEY")
	if apiKey == "" {
		log.Printf("PANGRAM_API_KEY is not set; analysis requests will fail")
	}

	return Config{
		Port:            getEnv("PORT", "8080"),
		Env:             env,
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		PangramAPIKey:   apiKey,
		PangramAPIURL:   getEnv("PANGRAM_API_URL", ""),
		DatabasePath:    getEnv("PANGRAM_DB", DefaultDatabasePath),
		CreditUnitPrice: getEnvFloat("CREDIT_UNIT_PRICE", credits.DefaultUnitPrice),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil || parsed <= 0 {
		log.Printf("ignoring invalid %s=%q", key, raw)
		return def
	}
	return parsed
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
	default:
		return "dev"
	}
}
