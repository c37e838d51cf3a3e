package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/cspend/internal/config"
	"github.com/theirongolddev/cspend/internal/logging"
)

var (
	flagBudget   string
	flagTheme    string
	flagExport   string
	flagLogFile  string
	flagLogLevel string
	flagQuiet    bool
)

var rootCmd = &cobra.Command{
	Use:               "cspend",
	Short:             "Terminal expense tracker",
	Long:              "Track expenses against a session budget, interactively or from the command line.",
	SilenceUsage:      true,
	PersistentPreRunE: loadEnv,
	RunE:              runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagBudget, "budget", "b", "", "Session budget (skips the prompt)")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Color theme")
	rootCmd.PersistentFlags().StringVar(&flagExport, "export", "", "SQLite archive for finished sessions")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write diagnostic logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// loadEnv reads .env from the working directory when present.
func loadEnv(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}
	return nil
}

// loadConfig returns the config file contents, falling back to defaults on error.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  Config unreadable, using defaults: %v\n", err)
		}
		return config.DefaultConfig()
	}
	return cfg
}

// Flags win over env and config.

func budgetInput(cfg config.Config) string {
	if flagBudget != "" {
		return flagBudget
	}
	return config.GetDefaultBudget(cfg)
}

func themeName(cfg config.Config) string {
	if flagTheme != "" {
		return flagTheme
	}
	return config.GetTheme(cfg)
}

func exportPath(cfg config.Config) string {
	if flagExport != "" {
		return flagExport
	}
	return config.GetExportPath(cfg)
}

func logLevel(cfg config.Config) string {
	if flagLogLevel != "" {
		return flagLogLevel
	}
	return cfg.Log.Level
}

// fileLogger returns a logger over the configured log file, or a no-op logger
// when none is set. The terminal UI never logs to stderr.
func fileLogger(cfg config.Config) (zerolog.Logger, io.Closer, error) {
	path := flagLogFile
	if path == "" {
		path = cfg.Log.File
	}
	if path == "" {
		return zerolog.Nop(), io.NopCloser(nil), nil
	}
	return logging.File(path, logLevel(cfg))
}

// commandLogger logs to stderr for headless commands, or to the log file when one
// is configured.
func commandLogger(cfg config.Config) (zerolog.Logger, io.Closer, error) {
	if flagLogFile != "" || cfg.Log.File != "" {
		return fileLogger(cfg)
	}
	if flagQuiet {
		return zerolog.Nop(), io.NopCloser(nil), nil
	}
	log, err := logging.Console(logLevel(cfg))
	return log, io.NopCloser(nil), err
}
