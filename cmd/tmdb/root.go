package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/tmdb"
	"github.com/s0up4200/tmdb/config"
	"github.com/s0up4200/tmdb/filter"
)

var (
	cfgFile  string
	logLevel string

	cfg     *config.Config
	logger  zerolog.Logger
	client  *tmdb.Client
	filters *filter.Manager
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tmdb",
	Short: "Query The Movie Database for movie and TV metadata",
	Long: `tmdb is a CLI for The Movie Database (TMDB) v3 API. It searches
movies, TV shows and people, shows details, genres and certifications,
and narrows result listings with expr filter expressions.`,
	SilenceUsage:      true,
	PersistentPreRunE: initializeApp,
}

// execute adds all child commands to the root command and sets flags appropriately.
func execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setVersion(version, buildTime string) {
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override logging level (debug, info, warn, error)")
}

// initializeApp initializes the configuration and the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	// These commands never talk to the API, so they work without a key.
	switch cmd.Name() {
	case "help", "completion", "update":
		return nil
	}

	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	logger = setupLogger(cfg.Logging)

	opts := []tmdb.Option{
		tmdb.WithLogger(logger),
		tmdb.WithRequestRate(cfg.TMDB.RequestRate),
	}
	if cfg.TMDB.BaseURL != "" && cfg.TMDB.BaseURL != tmdb.DefaultBaseURL {
		opts = append(opts, tmdb.WithBaseURL(cfg.TMDB.BaseURL))
	}

	client, err = tmdb.New(cfg.TMDB.APIKey, opts...)
	if err != nil {
		return fmt.Errorf("failed to create TMDB client: %w", err)
	}

	filters = filter.NewManager()
	if err := filters.RegisterAll(cfg.Filters); err != nil {
		return fmt.Errorf("failed to load filters from config: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; colors only when stderr is a real terminal.
	color := cfg.Color && isatty.IsTerminal(os.Stderr.Fd())
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !color,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// describeError turns API errors into messages a user can act on.
func describeError(err error) error {
	if verr, ok := tmdb.AsValidationError(err); ok {
		return fmt.Errorf("request rejected: %s", strings.Join(verr.Messages, "; "))
	}
	if tmdb.IsInvalidAPIKey(err) {
		return fmt.Errorf("TMDB rejected the API key, check tmdb.api_key in config")
	}
	return err
}
