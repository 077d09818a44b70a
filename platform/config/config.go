// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// CatalogConfig provides settings for the vehicle catalog store.
type CatalogConfig interface {
	GetCatalogPath() string
}

// AIConfig provides settings for the hosted model used by the chat agent.
type AIConfig interface {
	GetNemotronAPIKey() string
	GetNemotronBaseURL() string
	GetNemotronModel() string
	GetModelTemperature() float64
	GetMaxTokens() int
	IsAgentEnabled() bool
}

// ChatConfig provides settings for the chat orchestration module.
type ChatConfig interface {
	AIConfig
	GetSuggestionsPath() string
}

// RateLimitConfig provides settings for per-IP rate limiting.
type RateLimitConfig interface {
	GetRateLimitPerSecond() float64
	GetRateLimitBurst() int
}

// Config holds all application configuration loaded from the environment.
type Config struct {
	Env      string
	HTTPAddr string

	CORSAllowAll   bool
	CORSOrigins    []string
	CORSAllowCreds bool

	CatalogPath     string
	SuggestionsPath string

	NemotronAPIKey   string
	NemotronBaseURL  string
	NemotronModel    string
	ModelTemperature float64
	MaxTokens        int

	RateLimitPerSecond float64
	RateLimitBurst     int
}

// =============================================================================
// Interface Implementations
// =============================================================================

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// CatalogConfig implementation
func (c *Config) GetCatalogPath() string { return c.CatalogPath }

// AIConfig implementation
func (c *Config) GetNemotronAPIKey() string    { return c.NemotronAPIKey }
func (c *Config) GetNemotronBaseURL() string   { return c.NemotronBaseURL }
func (c *Config) GetNemotronModel() string     { return c.NemotronModel }
func (c *Config) GetModelTemperature() float64 { return c.ModelTemperature }
func (c *Config) GetMaxTokens() int            { return c.MaxTokens }

// IsAgentEnabled reports whether a usable model API key is configured.
// Obvious placeholder values count as unconfigured so the server can still
// serve deterministic scoring endpoints without a key.
func (c *Config) IsAgentEnabled() bool {
	key := strings.ToLower(c.NemotronAPIKey)
	if key == "" || len(key) < 20 {
		return false
	}
	return !strings.Contains(key, "your-nemotron") && !strings.Contains(key, "your-key")
}

// ChatConfig implementation
func (c *Config) GetSuggestionsPath() string { return c.SuggestionsPath }

// RateLimitConfig implementation
func (c *Config) GetRateLimitPerSecond() float64 { return c.RateLimitPerSecond }
func (c *Config) GetRateLimitBurst() int         { return c.RateLimitBurst }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:                getEnv("APP_ENV", "development"),
		HTTPAddr:           getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:       corsAllowAll,
		CORSOrigins:        corsOrigins,
		CORSAllowCreds:     strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
		CatalogPath:        getEnv("CATALOG_PATH", "data/cars.json"),
		SuggestionsPath:    getEnv("SUGGESTIONS_PATH", "data/suggested_cars.json"),
		NemotronAPIKey:     getEnv("NEMOTRON_API_KEY", ""),
		NemotronBaseURL:    getEnv("NEMOTRON_BASE_URL", "https://integrate.api.nvidia.com/v1"),
		NemotronModel:      getEnv("NEMOTRON_MODEL", "nvidia/nvidia-nemotron-nano-9b-v2"),
		ModelTemperature:   mustFloat(getEnv("MODEL_TEMPERATURE", "0.7")),
		MaxTokens:          mustInt(getEnv("MAX_TOKENS", "1000")),
		RateLimitPerSecond: mustFloat(getEnv("RATE_LIMIT_PER_SECOND", "10")),
		RateLimitBurst:     mustInt(getEnv("RATE_LIMIT_BURST", "20")),
	}

	if cfg.CatalogPath == "" {
		return nil, fmt.Errorf("CATALOG_PATH is required")
	}
	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustInt(value string) int {
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return result
}

func mustFloat(value string) float64 {
	result, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
