// Package config provides environment-backed configuration for the service
package config

import (
	"os"
	"strconv"
	"time"
)

// Default configuration values
const (
	// DefaultPort is the default HTTP listen port
	DefaultPort = "8080"
	// DefaultAllowedHost is the only host accepted for submitted URLs
	DefaultAllowedHost = "www.lifewire.com"
	// DefaultSummaryModel is the generation model used for summaries
	DefaultSummaryModel = "claude-3-5-haiku-latest"
	// DefaultSummaryMaxTokens bounds the length of a generated summary
	DefaultSummaryMaxTokens = 2000
	// DefaultExtractTimeout bounds a single page extraction
	DefaultExtractTimeout = 60 * time.Second
	// DefaultSummarizeTimeout bounds a single summarization call
	DefaultSummarizeTimeout = 120 * time.Second
)

// Config holds the runtime configuration for the service
type Config struct {
	Port string

	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string

	AllowedHost      string
	AnthropicAPIKey  string
	SummaryModel     string
	SummaryMaxTokens int64
	ExtractTimeout   time.Duration
	SummarizeTimeout time.Duration
}

// Load reads the configuration from the environment
func Load() *Config {
	return &Config{
		Port:             GetEnv("PORT", DefaultPort),
		DBHost:           GetEnv("DB_HOST", ""),
		DBPort:           GetEnvInt("DB_PORT", 0),
		DBUser:           GetEnv("DB_USER", ""),
		DBPassword:       GetEnv("DB_PASSWORD", ""),
		DBName:           GetEnv("DB_NAME", ""),
		AllowedHost:      GetEnv("ALLOWED_HOST", DefaultAllowedHost),
		AnthropicAPIKey:  GetEnv("ANTHROPIC_API_KEY", ""),
		SummaryModel:     GetEnv("SUMMARY_MODEL", DefaultSummaryModel),
		SummaryMaxTokens: int64(GetEnvInt("SUMMARY_MAX_TOKENS", DefaultSummaryMaxTokens)),
		ExtractTimeout:   GetEnvDuration("EXTRACT_TIMEOUT", DefaultExtractTimeout),
		SummarizeTimeout: GetEnvDuration("SUMMARIZE_TIMEOUT", DefaultSummarizeTimeout),
	}
}

// GetEnv retrieves the value of an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// GetEnvInt retrieves an integer environment variable with a fallback value
// if not set or not parseable
func GetEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

// GetEnvDuration retrieves a duration environment variable with a fallback
// value if not set or not parseable
func GetEnvDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
