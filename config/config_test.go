package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

func TestBuild_Defaults(t *testing.T) {
	cfg, err := build(newViper())
	if err != nil {
		t.Fatalf("build() error = %v", err)
	}

	if cfg.HTTPServer.Port != 8080 || cfg.HTTPServer.Mode != "debug" {
		t.Errorf("HTTPServer = %+v", cfg.HTTPServer)
	}
	if cfg.Gemini.APIKey != "" {
		t.Errorf("APIKey should default to empty")
	}
	if cfg.Gemini.Model != "gemini-2.5-flash" || cfg.Gemini.Timeout != 30*time.Second {
		t.Errorf("Gemini = %+v", cfg.Gemini)
	}
	if cfg.AI.UTCOffsetHours != 9 {
		t.Errorf("UTCOffsetHours = %d, want 9", cfg.AI.UTCOffsetHours)
	}
	if !cfg.RateLimit.Enabled || cfg.RateLimit.RequestsPerMin != 30 {
		t.Errorf("RateLimit = %+v", cfg.RateLimit)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "*" {
		t.Errorf("AllowedOrigins = %v", cfg.CORS.AllowedOrigins)
	}
}

func TestBuild_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  any
	}{
		{name: "port", key: "http_server.port", val: 0},
		{name: "timeout", key: "gemini.timeout", val: "0s"},
		{name: "offset", key: "ai.utc_offset_hours", val: 20},
		{name: "rate", key: "rate_limit.requests_per_min", val: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newViper()
			v.Set(tt.key, tt.val)
			if _, err := build(v); err == nil {
				t.Errorf("build() with %s=%v should fail", tt.key, tt.val)
			}
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "  test-key  ")
	t.Setenv("HTTP_SERVER_PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://todo.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Gemini.APIKey != "test-key" {
		t.Errorf("APIKey = %q", cfg.Gemini.APIKey)
	}
	if cfg.HTTPServer.Port != 9090 {
		t.Errorf("Port = %d", cfg.HTTPServer.Port)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 || cfg.CORS.AllowedOrigins[1] != "https://todo.example.com" {
		t.Errorf("AllowedOrigins = %v", cfg.CORS.AllowedOrigins)
	}
}

func TestSplitList(t *testing.T) {
	got := splitList([]string{"a, b", "", " c ,,"})
	if len(got) != 3 || got[0] != "a" || got[2] != "c" {
		t.Errorf("splitList() = %v", got)
	}
}
