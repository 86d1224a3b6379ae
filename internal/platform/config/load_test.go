package config_test

import (
	"testing"
	"time"

	"github.com/ekocak/todo-service/internal/platform/config"
)

func TestLoad_LocalProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want \"debug\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want \"text\"", cfg.Log.Format)
	}
	if cfg.Database.DSN == "" {
		t.Error("Database.DSN is empty, want local DSN")
	}
	if cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = true, want false for local")
	}
}

func TestLoad_BaseConfigInheritance(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	// These come from base.yaml, not overridden by local.yaml.
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want \"0.0.0.0\" (from base)", cfg.Server.Host)
	}
	if cfg.Client.Retry.MaxAttempts != 3 {
		t.Errorf("Client.Retry.MaxAttempts = %d, want 3 (from base)", cfg.Client.Retry.MaxAttempts)
	}
	if cfg.GenAI.Model != "gemini-2.5-flash" {
		t.Errorf("GenAI.Model = %q, want \"gemini-2.5-flash\" (from base)", cfg.GenAI.Model)
	}
	if cfg.Auth.TokenTTL != 20*time.Minute {
		t.Errorf("Auth.TokenTTL = %v, want 20m (from base)", cfg.Auth.TokenTTL)
	}
}

func TestLoad_EnvOverrideSimpleKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_PORT", "9090")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090 (env override)", cfg.Server.Port)
	}
}

func TestLoad_EnvOverrideSnakeCaseKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_AUTH_TOKEN_TTL", "1h")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Auth.TokenTTL != time.Hour {
		t.Errorf("Auth.TokenTTL = %v, want 1h (env override)", cfg.Auth.TokenTTL)
	}
}

func TestLoad_EnvOverrideDeeplyNestedKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_CLIENT_RETRY_MAX_ATTEMPTS", "7")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Client.Retry.MaxAttempts != 7 {
		t.Errorf("Client.Retry.MaxAttempts = %d, want 7 (env override)", cfg.Client.Retry.MaxAttempts)
	}
}

func TestLoad_MissingProfile(t *testing.T) {
	t.Chdir("../../..")

	_, err := config.Load("nonexistent")
	if err == nil {
		t.Fatal("Load(\"nonexistent\") returned nil error, want error")
	}
}

func TestLoad_InvalidProfileName(t *testing.T) {
	for _, profile := range []string{"", "  ", "../etc", `a\b`} {
		if _, err := config.Load(profile); err == nil {
			t.Errorf("Load(%q) returned nil error, want error", profile)
		}
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Server.Port = 0
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() = nil, want error for port 0")
	}
}

func TestValidate_MissingAuthSecret(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Auth.Secret = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() = nil, want error for empty auth secret")
	}
}

func TestValidate_MissingDSN(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Database.DSN = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() = nil, want error for empty database DSN")
	}
}

func TestValidate_TelemetryDisabledSkipsChecks(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Telemetry = config.TelemetryConfig{Enabled: false}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil when telemetry disabled", err)
	}
}

func validConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  2 * time.Minute,
		},
		Log: config.LogConfig{Level: "info", Format: "json"},
		Database: config.DatabaseConfig{
			DSN:          "postgres://localhost/todoapp",
			MaxOpenConns: 10,
			MaxIdleConns: 5,
		},
		Auth: config.AuthConfig{Secret: "s3cret", TokenTTL: 20 * time.Minute},
		Client: config.ClientConfig{
			BaseURL: "https://generativelanguage.googleapis.com",
			Timeout: 30 * time.Second,
			Retry: config.RetryConfig{
				MaxAttempts:     3,
				InitialInterval: 100 * time.Millisecond,
				MaxInterval:     10 * time.Second,
				Multiplier:      2.0,
			},
			CircuitBreaker: config.CircuitBreakerConfig{
				MaxFailures:   5,
				Timeout:       30 * time.Second,
				HalfOpenLimit: 1,
			},
		},
		GenAI: config.GenAIConfig{APIKey: "key", Model: "gemini-2.5-flash"},
		Telemetry: config.TelemetryConfig{
			Enabled:     true,
			Exporter:    "stdout",
			ServiceName: "todo-service",
		},
	}
}
