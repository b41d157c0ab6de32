package config

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfigFrom(map[string]string{})
	if err != nil {
		t.Fatalf("LoadConfigFrom: %v", err)
	}
	if cfg.LogLevel != LogInfo {
		t.Errorf("Expected log level info, got %q", cfg.LogLevel)
	}
	if cfg.LogFile != "empire.log" {
		t.Errorf("Expected log file empire.log, got %q", cfg.LogFile)
	}
	if cfg.AdvisorModel != "gemini-2.5-flash" {
		t.Errorf("Expected default advisor model, got %q", cfg.AdvisorModel)
	}
	if cfg.AdvisorEnabled() {
		t.Error("Advisor should be disabled without an API key")
	}
}

func TestLoadConfigFromVars(t *testing.T) {
	cfg, err := LoadConfigFrom(map[string]string{
		"GEMINI_API_KEY":   "secret",
		"EMPIRE_CATALOG":   "catalog.yaml",
		"EMPIRE_LOG_LEVEL": "debug",
	})
	if err != nil {
		t.Fatalf("LoadConfigFrom: %v", err)
	}
	if !cfg.AdvisorEnabled() {
		t.Error("Advisor should be enabled with an API key")
	}
	if cfg.CatalogPath != "catalog.yaml" {
		t.Errorf("Expected catalog path, got %q", cfg.CatalogPath)
	}
	if cfg.LogLevel != LogDebug {
		t.Errorf("Expected debug level, got %q", cfg.LogLevel)
	}
}

func TestLoadConfigRejectsLogLevel(t *testing.T) {
	_, err := LoadConfigFrom(map[string]string{"EMPIRE_LOG_LEVEL": "loud"})
	if err == nil || !strings.Contains(err.Error(), "EMPIRE_LOG_LEVEL") {
		t.Errorf("Expected log level error, got %v", err)
	}
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	cfg := &Config{LogLevel: LogWarn}
	logger := cfg.NewLogger(&buf)

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Errorf("Unexpected log output: %q", out)
	}
}
