package config

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// LogLevel controls log verbosity.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// Config holds the application configuration.
type Config struct {
	// GeminiAPIKey enables the business advisor. Optional.
	GeminiAPIKey string `env:"GEMINI_API_KEY"`

	// AdvisorModel is the Gemini model the advisor talks to.
	AdvisorModel string `env:"EMPIRE_ADVISOR_MODEL" envDefault:"gemini-2.5-flash"`

	// CatalogPath points to a YAML file overriding prices and templates.
	CatalogPath string `env:"EMPIRE_CATALOG"`

	LogLevel LogLevel `env:"EMPIRE_LOG_LEVEL" envDefault:"info"`
	LogFile  string   `env:"EMPIRE_LOG_FILE" envDefault:"empire.log"`
}

// LoadConfig loads the configuration from environment variables.
func LoadConfig() (*Config, error) {
	return load(env.Options{})
}

// LoadConfigFrom loads the configuration from the given variables instead of
// the process environment.
func LoadConfigFrom(vars map[string]string) (*Config, error) {
	return load(env.Options{Environment: vars})
}

func load(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}
	if !cfg.LogLevel.IsValid() {
		return nil, fmt.Errorf("config: EMPIRE_LOG_LEVEL %q is invalid; valid values: debug, info, warn, error", cfg.LogLevel)
	}
	return cfg, nil
}

// AdvisorEnabled reports whether an API key for the advisor is configured.
func (c *Config) AdvisorEnabled() bool { return c.GeminiAPIKey != "" }

// NewLogger returns a text logger writing to w at the configured level.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	var lvl slog.Level
	switch c.LogLevel {
	case LogDebug:
		lvl = slog.LevelDebug
	case LogWarn:
		lvl = slog.LevelWarn
	case LogError:
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
