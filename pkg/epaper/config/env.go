package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// envConfig is the environment variable surface, read with cleanenv.
//
//	PORT             - Server port (default: "8080")
//	ENVIRONMENT      - Runtime environment (default: "development")
//	STORAGE_URL      - Asset storage: "memory://" (default) or "file:///path"
//	GEMINI_API_KEY   - API key for generation endpoints (optional)
//	EVENT_LOGGING    - Log edition events (default: true)
//	SEED_DEMO_DATA   - Load the demo editions at startup (default: true)
type envConfig struct {
	Port         string `env:"PORT" env-default:""`
	Environment  string `env:"ENVIRONMENT" env-default:""`
	StorageURL   string `env:"STORAGE_URL" env-default:""`
	GeminiAPIKey string `env:"GEMINI_API_KEY" env-default:""`
	EventLogging *bool  `env:"EVENT_LOGGING"`
	SeedDemoData *bool  `env:"SEED_DEMO_DATA"`
}

// WithEnv applies environment variable overrides.
func WithEnv() Option {
	return func(c *ServerConfig) error {
		var env envConfig
		if err := cleanenv.ReadEnv(&env); err != nil {
			return fmt.Errorf("failed to read environment: %w", err)
		}

		if env.Port != "" {
			c.Port = env.Port
		}
		if env.Environment != "" {
			c.Environment = env.Environment
		}
		if env.GeminiAPIKey != "" {
			c.GeminiAPIKey = env.GeminiAPIKey
		}
		if env.EventLogging != nil {
			c.EnableEventLogging = *env.EventLogging
		}
		if env.SeedDemoData != nil {
			c.SeedDemoData = *env.SeedDemoData
		}

		return applyStorageURL(c, env.StorageURL)
	}
}

// applyStorageURL parses the STORAGE_URL scheme into the storage settings.
func applyStorageURL(c *ServerConfig, url string) error {
	switch {
	case url == "" || url == "memory" || url == "memory://":
		c.StorageType = "memory"
		c.StorageDir = ""
	case strings.HasPrefix(url, "file://"):
		path := strings.TrimPrefix(url, "file://")
		if path == "" {
			return fmt.Errorf("filesystem path cannot be empty in STORAGE_URL")
		}
		c.StorageType = "fs"
		c.StorageDir = path
	default:
		return fmt.Errorf("unsupported STORAGE_URL format: %s (use 'memory://' or 'file://...')", url)
	}
	return nil
}

func nowUTC() time.Time {
	return time.Now().UTC()
}
