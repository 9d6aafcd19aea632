package config

// Config represents the complete configuration structure
type Config struct {
	TMDB    TMDBConfig    `mapstructure:"tmdb"`
	Logging LoggingConfig `mapstructure:"logging"`
	Filters FilterConfig  `mapstructure:"filters"`
}

// TMDBConfig holds TMDB API connection details
type TMDBConfig struct {
	APIKey       string `mapstructure:"api_key"`
	BaseURL      string `mapstructure:"base_url"`
	Language     string `mapstructure:"language"`
	Region       string `mapstructure:"region"`
	IncludeAdult bool   `mapstructure:"include_adult"`
	RequestRate  int    `mapstructure:"request_rate"`
}

// FilterConfig maps filter names to expr expressions
type FilterConfig map[string]string

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
