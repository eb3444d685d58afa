package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// Auth. Empty disables authentication.
	APIKey string

	// Upload limits
	MaxUploadBytes int64

	// Analysis defaults
	DefaultMinParagraphLength int
	DefaultMinTokenLength     int
	DefaultTopTokens          int
	DefaultMaxParagraphs      int

	// Profiles
	ProfileDir string

	// Run retention
	RunTTL          time.Duration
	CleanupInterval time.Duration

	// PDF
	PDFFallbackPdftotext bool
}

func Load() Config {
	// Local development convenience; absent .env files are fine.
	_ = godotenv.Load()

	cfg := Config{
		Port: envOr("PORT", "8090"),

		APIKey: os.Getenv("PARASCOPE_API_KEY"),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		DefaultMinParagraphLength: envInt("DEFAULT_MIN_PARAGRAPH_LENGTH", 50),
		DefaultMinTokenLength:     envInt("DEFAULT_MIN_TOKEN_LENGTH", 2),
		DefaultTopTokens:          envInt("DEFAULT_TOP_TOKENS", 50),
		DefaultMaxParagraphs:      envInt("DEFAULT_MAX_PARAGRAPHS", 200),

		ProfileDir: envOr("PROFILE_DIR", "profiles"),

		RunTTL:          envDuration("RUN_TTL", 1*time.Hour),
		CleanupInterval: envDuration("CLEANUP_INTERVAL", 5*time.Minute),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.DefaultMinParagraphLength < 0 {
		cfg.DefaultMinParagraphLength = 50
	}
	if cfg.DefaultMinTokenLength <= 0 {
		cfg.DefaultMinTokenLength = 2
	}
	if cfg.DefaultTopTokens <= 0 {
		cfg.DefaultTopTokens = 50
	}
	if cfg.DefaultMaxParagraphs <= 0 {
		cfg.DefaultMaxParagraphs = 200
	}
	if cfg.RunTTL <= 0 {
		cfg.RunTTL = 1 * time.Hour
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = 5 * time.Minute
	}

	return cfg
}

func (c Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("PORT must be numeric: %q", c.Port)
	}
	return nil
}

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

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
