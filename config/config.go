package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/s0up4200/tmdb"
)

// Load loads the configuration from file and environment. When no
// explicit path is given, a missing config file is not an error; the
// API key can come from the TMDB_API_KEY environment variable alone.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "tmdb"))
		}

		// Check /etc
		v.AddConfigPath("/etc/tmdb/")
	}

	// Environment variables override file values, so TMDB_LOGGING_LEVEL
	// maps onto logging.level. The credential keeps its conventional
	// name without the section prefix.
	v.SetEnvPrefix("TMDB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("tmdb.api_key", "TMDB_API_KEY")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
		if configPath != "" {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// API defaults
	v.SetDefault("tmdb.base_url", tmdb.DefaultBaseURL)
	v.SetDefault("tmdb.request_rate", tmdb.DefaultRequestRate)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.TMDB.APIKey == "" || cfg.TMDB.APIKey == "your-api-key-here" {
		return fmt.Errorf("tmdb.api_key must be set to a valid API key")
	}

	if cfg.TMDB.BaseURL == "" {
		return fmt.Errorf("tmdb.base_url is required")
	}

	if cfg.TMDB.RequestRate < 0 {
		return fmt.Errorf("tmdb.request_rate must not be negative")
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
