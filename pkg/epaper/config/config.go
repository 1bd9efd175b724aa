package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/presslayer/epaper-studio/pkg/epaper"
	"github.com/presslayer/epaper-studio/pkg/epaper/ai"
	"github.com/presslayer/epaper-studio/pkg/epaper/repo/memory"
	fsstorage "github.com/presslayer/epaper-studio/pkg/epaper/storage/fs"
	memorystorage "github.com/presslayer/epaper-studio/pkg/epaper/storage/memory"
)

// Option applies configuration to a ServerConfig instance.
type Option func(*ServerConfig) error

// Load constructs a ServerConfig by applying the supplied options on top of
// library defaults.
func Load(opts ...Option) (*ServerConfig, error) {
	cfg := defaults()

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func defaults() ServerConfig {
	return ServerConfig{
		Port:               "8080",
		Environment:        "development",
		StorageType:        "memory",
		EnableEventLogging: true,
		SeedDemoData:       true,
	}
}

// ServerConfig represents server configuration for the epaper-studio service
type ServerConfig struct {
	Port        string
	Environment string // development, production, testing

	// Asset storage configuration
	StorageType string // "memory", "fs"
	StorageDir  string // base directory when StorageType is "fs"

	// Generation configuration. Generation endpoints return 503 when no API
	// key is configured.
	GeminiAPIKey string

	// Server options
	EnableEventLogging bool
	SeedDemoData       bool
}

// Validate validates the server configuration
func (c *ServerConfig) Validate() error {
	if c.Port == "" {
		return errors.New("port is required")
	}

	if c.StorageType != "memory" && c.StorageType != "fs" {
		return errors.New("storage_type must be 'memory' or 'fs'")
	}

	if c.StorageType == "fs" && c.StorageDir == "" {
		return errors.New("storage_dir is required when using fs storage")
	}

	return nil
}

// BuildService creates a Service and its AssetStore from the server
// configuration.
func (c *ServerConfig) BuildService(ctx context.Context) (epaper.Service, epaper.AssetStore, error) {
	repo := memory.New()

	assets, err := c.buildAssetStore()
	if err != nil {
		return nil, nil, err
	}

	options := []epaper.Option{
		epaper.WithRepository(repo),
		epaper.WithAssetStore(assets),
	}

	if c.GeminiAPIKey != "" {
		client, err := ai.New(ctx, ai.Config{APIKey: c.GeminiAPIKey})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to build gemini client: %w", err)
		}
		options = append(options,
			epaper.WithTextGenerator(client),
			epaper.WithImageGenerator(client))
	}

	if c.EnableEventLogging {
		options = append(options, epaper.WithEventSink(epaper.NewLoggingEventSink(slogLogger{})))
	} else {
		options = append(options, epaper.WithEventSink(epaper.NewNoopEventSink()))
	}

	svc, err := epaper.New(options...)
	if err != nil {
		return nil, nil, err
	}

	if c.SeedDemoData {
		if err := epaper.SeedDemoEditions(ctx, repo, nowUTC()); err != nil {
			return nil, nil, fmt.Errorf("failed to seed demo editions: %w", err)
		}
	}

	return svc, assets, nil
}

func (c *ServerConfig) buildAssetStore() (epaper.AssetStore, error) {
	switch c.StorageType {
	case "fs":
		return fsstorage.New(fsstorage.Config{BaseDir: c.StorageDir})
	default:
		return memorystorage.New(), nil
	}
}

// slogLogger adapts log/slog to the epaper.Logger interface
type slogLogger struct{}

func (slogLogger) Infof(format string, args ...interface{}) {
	slog.Info(fmt.Sprintf(format, args...))
}

func (slogLogger) Errorf(format string, args ...interface{}) {
	slog.Error(fmt.Sprintf(format, args...))
}
