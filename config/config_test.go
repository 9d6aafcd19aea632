package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/s0up4200/tmdb"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
tmdb:
  api_key: file-key
  language: de-DE
  region: DE
  include_adult: true
  request_rate: 10

logging:
  level: debug
  format: json

filters:
  highRated: VoteAverage >= 7.5
  recent: Year >= 2020
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.TMDB.APIKey != "file-key" {
		t.Errorf("expected api key 'file-key', got %q", cfg.TMDB.APIKey)
	}
	if cfg.TMDB.BaseURL != tmdb.DefaultBaseURL {
		t.Errorf("expected default base URL, got %q", cfg.TMDB.BaseURL)
	}
	if cfg.TMDB.Language != "de-DE" || cfg.TMDB.Region != "DE" {
		t.Errorf("unexpected locale settings: %+v", cfg.TMDB)
	}
	if !cfg.TMDB.IncludeAdult {
		t.Error("expected include_adult to be true")
	}
	if cfg.TMDB.RequestRate != 10 {
		t.Errorf("expected request rate 10, got %d", cfg.TMDB.RequestRate)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("unexpected logging settings: %+v", cfg.Logging)
	}
	if len(cfg.Filters) != 2 {
		t.Errorf("expected 2 filters, got %d", len(cfg.Filters))
	}
	if cfg.Filters["highRated"] != "VoteAverage >= 7.5" {
		t.Errorf("unexpected filter expression: %q", cfg.Filters["highRated"])
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "env-key")

	// Run from an empty directory so no stray config file is found.
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Chdir(wd) }()

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.TMDB.APIKey != "env-key" {
		t.Errorf("expected api key from environment, got %q", cfg.TMDB.APIKey)
	}
	if cfg.TMDB.RequestRate != tmdb.DefaultRequestRate {
		t.Errorf("expected default request rate, got %d", cfg.TMDB.RequestRate)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Errorf("expected logging defaults, got %+v", cfg.Logging)
	}
	if !cfg.Logging.Color {
		t.Error("expected color to default to true")
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			TMDB: TMDBConfig{
				APIKey:      "valid-api-key",
				BaseURL:     tmdb.DefaultBaseURL,
				RequestRate: tmdb.DefaultRequestRate,
			},
			Logging: LoggingConfig{
				Level:  "info",
				Format: "console",
			},
		}
	}

	tests := []struct {
		name        string
		mutate      func(*Config)
		wantErr     bool
		errContains string
	}{
		{
			name:    "valid config",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:        "missing api key",
			mutate:      func(c *Config) { c.TMDB.APIKey = "" },
			wantErr:     true,
			errContains: "api_key",
		},
		{
			name:        "placeholder api key",
			mutate:      func(c *Config) { c.TMDB.APIKey = "your-api-key-here" },
			wantErr:     true,
			errContains: "api_key",
		},
		{
			name:        "negative request rate",
			mutate:      func(c *Config) { c.TMDB.RequestRate = -1 },
			wantErr:     true,
			errContains: "request_rate",
		},
		{
			name:    "zero request rate disables throttling",
			mutate:  func(c *Config) { c.TMDB.RequestRate = 0 },
			wantErr: false,
		},
		{
			name:        "invalid logging level",
			mutate:      func(c *Config) { c.Logging.Level = "verbose" },
			wantErr:     true,
			errContains: "logging level",
		},
		{
			name:        "invalid logging format",
			mutate:      func(c *Config) { c.Logging.Format = "xml" },
			wantErr:     true,
			errContains: "logging format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.errContains)
			}
		})
	}
}
