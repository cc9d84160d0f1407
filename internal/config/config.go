// Package config provides centralized configuration loaded from environment
// variables. Shared by both cmd/api and cmd/export.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// --------------------------------------------------------------------------
// Constants — queue IDs and provider routing
// --------------------------------------------------------------------------

// ArenaQueueID is the Riot queue ID for the Arena game mode.
const ArenaQueueID = 1700

// APIKeyPrefix is the fixed prefix of every Riot developer/production key.
const APIKeyPrefix = "RGAPI-"

// --------------------------------------------------------------------------
// Config struct — populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// Riot API
	RiotAPIKey        string
	RiotRegion        string // regional routing value: americas, europe, asia, sea
	RiotRequestsPer2M int    // outbound budget shared by all upstream calls

	// API server
	APIHost     string
	APIPort     int
	Environment string // development, staging, production
	Debug       bool

	// CORS
	CORSAllowOrigins []string

	// Inbound rate limiting
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Reference cache
	CacheEnabled    bool
	VersionTTL      time.Duration
	ReferenceTTL    time.Duration
	FallbackVersion string

	// Prediction bridge
	PredictorPython  string
	PredictorScript  string
	PredictorTimeout time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
// It fails fast when the Riot API key is absent or does not carry the
// provider's fixed prefix.
func Load() (*Config, error) {
	apiKey := envOr("RIOT_API_KEY", "")
	if apiKey == "" {
		return nil, fmt.Errorf("RIOT_API_KEY must be set")
	}
	if !strings.HasPrefix(apiKey, APIKeyPrefix) {
		return nil, fmt.Errorf("RIOT_API_KEY must start with %q (got %q...)", APIKeyPrefix, truncateKey(apiKey))
	}

	return &Config{
		RiotAPIKey:        apiKey,
		RiotRegion:        envOr("RIOT_REGION", "americas"),
		RiotRequestsPer2M: envInt("RIOT_REQUESTS_PER_2MIN", 90),

		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 3001)),
		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 50),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 120)) * time.Second,

		CacheEnabled:    envBool("CACHE_ENABLED", true),
		VersionTTL:      time.Duration(envInt("VERSION_TTL_MINUTES", 30)) * time.Minute,
		ReferenceTTL:    time.Duration(envInt("REFERENCE_TTL_HOURS", 24)) * time.Hour,
		FallbackVersion: envOr("DDRAGON_FALLBACK_VERSION", "15.1.1"),

		PredictorPython:  envOr("PREDICTOR_PYTHON", "python3"),
		PredictorScript:  envOr("PREDICTOR_SCRIPT", "scripts/predict_service.py"),
		PredictorTimeout: time.Duration(envInt("PREDICTOR_TIMEOUT_SECONDS", 30)) * time.Second,
	}, nil
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// truncateKey returns only the leading characters of a key for error messages.
func truncateKey(key string) string {
	if len(key) <= 8 {
		return key
	}
	return key[:8]
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
