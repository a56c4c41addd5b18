package dedup

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config controls the duplicate detection pipeline.
type Config struct {
	// SimilarityThreshold is the minimum oracle score for a candidate to
	// be reported as a match (0.0-1.0).
	SimilarityThreshold float64

	// MinCommonTokens is the number of lowercase words two texts must
	// share before the oracle is consulted at all.
	MinCommonTokens int

	// MaxPresented caps how many matches the resolver shows the user.
	MaxPresented int

	// RequestTimeout bounds each individual oracle comparison. A timeout
	// skips that candidate rather than aborting the scan.
	RequestTimeout time.Duration
}

// DefaultConfig returns the standard pipeline settings.
func DefaultConfig() Config {
	return Config{
		SimilarityThreshold: 0.70,
		MinCommonTokens:     3,
		MaxPresented:        3,
		RequestTimeout:      30 * time.Second,
	}
}

// Validate checks that the configuration values are sane.
func (c Config) Validate() error {
	if c.SimilarityThreshold < 0.0 || c.SimilarityThreshold > 1.0 {
		return fmt.Errorf("similarity threshold must be 0.0-1.0, got %.2f", c.SimilarityThreshold)
	}
	if c.MinCommonTokens < 1 {
		return fmt.Errorf("min common tokens must be >= 1, got %d", c.MinCommonTokens)
	}
	if c.MaxPresented < 1 {
		return fmt.Errorf("max presented must be >= 1, got %d", c.MaxPresented)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %v", c.RequestTimeout)
	}
	return nil
}

// ConfigFromEnv returns the default configuration with any
// QUOTES_DEDUP_* environment overrides applied. Unparseable values are
// ignored.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	cfg.SimilarityThreshold = parseEnvFloat("QUOTES_DEDUP_SIMILARITY_THRESHOLD", cfg.SimilarityThreshold)
	cfg.MinCommonTokens = parseEnvInt("QUOTES_DEDUP_MIN_COMMON_TOKENS", cfg.MinCommonTokens)
	cfg.MaxPresented = parseEnvInt("QUOTES_DEDUP_MAX_PRESENTED", cfg.MaxPresented)
	cfg.RequestTimeout = parseEnvDuration("QUOTES_DEDUP_REQUEST_TIMEOUT", cfg.RequestTimeout)
	return cfg
}

func parseEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func parseEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func parseEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
