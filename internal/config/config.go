// Package config loads runtime settings from the environment, with a
// .env file honored when present.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// WordPress settings
	WordPressURL      string
	WordPressUser     string
	WordPressPassword string

	// Gemini settings
	GeminiAPIKey      string
	GeminiModel       string
	MaxGeminiRequests int // maximum text-generation requests per run (0 = unlimited)
	MaxImagenRequests int // maximum image-generation requests per run (0 = unlimited)

	// Feed settings
	FeedsConfigPath string
	MinTitleLength  int // raw titles at or below this length are dropped before clustering
	TopicLimit      int // ranked multi-source topics kept per run
	ExemptLimit     int // per-group cap for exempt (single-source) topics

	// Publishing settings
	MaxPostsPerRun int
	PostDelay      time.Duration // politeness pause after each successful publish
	PostStatus     string        // "publish" or "draft"

	// Ledger settings
	LedgerPath string

	// Scraper settings
	ScrapeArticles bool

	// App settings
	Debug          bool
	RequestTimeout time.Duration
	RetryAttempts  int
	RetryDelay     time.Duration

	// Images
	PredefinedImageDir string
}

func Load() (*Config, error) {
	// Missing .env is fine; real deployments use plain environment variables.
	_ = godotenv.Load()

	cfg := &Config{
		FeedsConfigPath:    "configs/feeds.yaml",
		GeminiModel:        "gemini-2.5-flash",
		MaxGeminiRequests:  0,
		MaxImagenRequests:  0,
		MinTitleLength:     10,
		TopicLimit:         20,
		ExemptLimit:        5,
		MaxPostsPerRun:     3,
		PostDelay:          3 * time.Second,
		PostStatus:         "publish",
		LedgerPath:         "processed_topics.json",
		ScrapeArticles:     true,
		RequestTimeout:     30 * time.Second,
		RetryAttempts:      3,
		RetryDelay:         5 * time.Second,
		PredefinedImageDir: "predefined_images",
	}

	cfg.WordPressURL = os.Getenv("WORDPRESS_URL")
	cfg.WordPressUser = os.Getenv("WORDPRESS_USER")
	cfg.WordPressPassword = os.Getenv("WORDPRESS_APP_PASSWORD")
	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")

	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		cfg.GeminiModel = v
	}
	if v := os.Getenv("FEEDS_CONFIG_PATH"); v != "" {
		cfg.FeedsConfigPath = v
	}
	if v := os.Getenv("LEDGER_PATH"); v != "" {
		cfg.LedgerPath = v
	}
	if v := os.Getenv("PREDEFINED_IMAGE_DIR"); v != "" {
		cfg.PredefinedImageDir = v
	}
	if v := os.Getenv("POST_STATUS"); v == "publish" || v == "draft" {
		cfg.PostStatus = v
	}
	if v := os.Getenv("SCRAPE_ARTICLES"); v == "false" {
		cfg.ScrapeArticles = false
	}
	if os.Getenv("DEBUG") == "true" {
		cfg.Debug = true
	}

	cfg.MaxPostsPerRun = getEnvIntOrDefault("MAX_POSTS_PER_RUN", cfg.MaxPostsPerRun)
	cfg.TopicLimit = getEnvIntOrDefault("TOPIC_LIMIT", cfg.TopicLimit)
	cfg.ExemptLimit = getEnvIntOrDefault("EXEMPT_LIMIT", cfg.ExemptLimit)
	cfg.MaxGeminiRequests = getEnvIntOrDefault("MAX_GEMINI_REQUESTS", cfg.MaxGeminiRequests)
	cfg.MaxImagenRequests = getEnvIntOrDefault("MAX_IMAGEN_REQUESTS", cfg.MaxImagenRequests)
	cfg.RetryAttempts = getEnvIntOrDefault("RETRY_ATTEMPTS", cfg.RetryAttempts)

	if v := os.Getenv("POST_DELAY_SECONDS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val >= 0 {
			cfg.PostDelay = time.Duration(val) * time.Second
		}
	}

	return cfg, cfg.Validate()
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil && intValue >= 0 {
			return intValue
		}
	}
	return defaultValue
}

func (c *Config) Validate() error {
	if c.WordPressURL == "" {
		return fmt.Errorf("WORDPRESS_URL is required")
	}
	if c.WordPressUser == "" {
		return fmt.Errorf("WORDPRESS_USER is required")
	}
	if c.WordPressPassword == "" {
		return fmt.Errorf("WORDPRESS_APP_PASSWORD is required")
	}
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	return nil
}
