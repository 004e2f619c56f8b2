package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/KirkDiggler/eventregistry/events"
	regerrors "github.com/KirkDiggler/eventregistry/internal/errors"
	"github.com/KirkDiggler/eventregistry/internal/logging"
)

// Config holds all configuration for the demo binary
type Config struct {
	Events  EventsConfig
	Logging LoggingConfig
}

// EventsConfig holds the event types the demo registry declares
type EventsConfig struct {
	Types []events.EventType
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Service string
	Version string
	Format  string
	Level   slog.Level
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	level, err := logging.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return nil, regerrors.Wrap(err, "LOG_LEVEL")
	}

	cfg := &Config{
		Events: EventsConfig{
			Types: parseEventTypes(getEnvOrDefault("EVENT_TYPES", "open,close")),
		},
		Logging: LoggingConfig{
			Service: getEnvOrDefault("SERVICE_NAME", "eventdemo"),
			Version: getEnvOrDefault("SERVICE_VERSION", "dev"),
			Format:  getEnvOrDefault("LOG_FORMAT", "text"),
			Level:   level,
		},
	}

	// Validate required fields
	if len(cfg.Events.Types) == 0 {
		return nil, regerrors.InvalidArgument("EVENT_TYPES must name at least one event type")
	}
	if cfg.Logging.Format != "text" && cfg.Logging.Format != "json" {
		return nil, regerrors.InvalidArgumentf("LOG_FORMAT must be text or json, got %q", cfg.Logging.Format)
	}

	return cfg, nil
}

func parseEventTypes(value string) []events.EventType {
	var types []events.EventType
	for _, part := range strings.Split(value, ",") {
		if name := strings.TrimSpace(part); name != "" {
			types = append(types, events.EventType(name))
		}
	}
	return types
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
