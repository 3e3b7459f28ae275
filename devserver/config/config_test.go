package config

import (
	"os"
	"reflect"
	"testing"
	"time"
)

func TestLoadConfig_RequiredFields(t *testing.T) {
	t.Cleanup(withCleanEnv(t, nil))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.JWTSecret != testSecret {
		t.Errorf("Expected JWTSecret %q, got %q", testSecret, cfg.JWTSecret)
	}
}

func TestLoadConfig_MissingSecret(t *testing.T) {
	t.Cleanup(withCleanEnv(t, nil))
	os.Unsetenv("JWT_SECRET")

	if _, err := Load(); err == nil {
		t.Error("Expected error for missing JWT_SECRET, got nil")
	}
}

func TestLoadConfig_ShortSecret(t *testing.T) {
	t.Cleanup(withCleanEnv(t, map[string]string{"JWT_SECRET": "short"}))

	if _, err := Load(); err == nil {
		t.Error("Expected error for short JWT_SECRET, got nil")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Cleanup(withCleanEnv(t, nil))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Port != "5000" {
		t.Errorf("Expected default port 5000, got %s", cfg.Port)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("Expected default token TTL 24h, got %s", cfg.TokenTTL)
	}
	if cfg.RateLimitAuth != 5 {
		t.Errorf("Expected default auth rate limit 5, got %d", cfg.RateLimitAuth)
	}
	if cfg.CORSAllowedOrigins != nil {
		t.Errorf("Expected no CORS origins by default, got %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadConfig_TokenTTL(t *testing.T) {
	tests := []struct {
		value string
		want  time.Duration
	}{
		{"90m", 90 * time.Minute},
		{"3600", time.Hour},
		{"not-a-duration", 24 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Cleanup(withCleanEnv(t, map[string]string{"TOKEN_TTL": tt.value}))

			cfg, err := Load()
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if cfg.TokenTTL != tt.want {
				t.Errorf("Expected TokenTTL %s, got %s", tt.want, cfg.TokenTTL)
			}
		})
	}
}

func TestLoadConfig_NegativeTokenTTL(t *testing.T) {
	t.Cleanup(withCleanEnv(t, map[string]string{"TOKEN_TTL": "-5m"}))

	if _, err := Load(); err == nil {
		t.Error("Expected error for negative TOKEN_TTL, got nil")
	}
}

func TestLoadConfig_RateLimitBounds(t *testing.T) {
	for _, value := range []string{"0", "10001"} {
		t.Run(value, func(t *testing.T) {
			t.Cleanup(withCleanEnv(t, map[string]string{"RATE_LIMIT_AUTH": value}))

			if _, err := Load(); err == nil {
				t.Errorf("Expected error for RATE_LIMIT_AUTH=%s, got nil", value)
			}
		})
	}
}

func TestLoadConfig_CORSOrigins(t *testing.T) {
	t.Cleanup(withCleanEnv(t, map[string]string{
		"CORS_ALLOWED_ORIGINS": " http://localhost:3000 , ,https://admin.example.com",
	}))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	want := []string{"http://localhost:3000", "https://admin.example.com"}
	if !reflect.DeepEqual(cfg.CORSAllowedOrigins, want) {
		t.Errorf("Expected origins %v, got %v", want, cfg.CORSAllowedOrigins)
	}
}
