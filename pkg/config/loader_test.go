package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.App.Name != "drivelink" {
		t.Errorf("Expected app name drivelink, got %s", cfg.App.Name)
	}
	if cfg.HTTP.Port != 5000 {
		t.Errorf("Expected default port 5000, got %d", cfg.HTTP.Port)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Expected default log level info, got %s", cfg.Logging.Level)
	}
	if cfg.Assistant.MinDelay != time.Second {
		t.Errorf("Expected assistant min delay 1s, got %v", cfg.Assistant.MinDelay)
	}
	if cfg.Assistant.MaxDelay != 2500*time.Millisecond {
		t.Errorf("Expected assistant max delay 2.5s, got %v", cfg.Assistant.MaxDelay)
	}
	if !cfg.Seed.Demo {
		t.Error("Expected demo seeding on by default")
	}
	if cfg.Tracing.Enabled {
		t.Error("Expected tracing off by default")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("APP_ENVIRONMENT", "production")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.HTTP.Port != 8080 {
		t.Errorf("Expected port 8080 from env, got %d", cfg.HTTP.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Expected log level debug from env, got %s", cfg.Logging.Level)
	}
	if cfg.App.Environment != "production" {
		t.Errorf("Expected environment production from env, got %s", cfg.App.Environment)
	}
}
