// Package main provides the semvocab binary entry point. Semvocab is the
// canonical-vocabulary registry and validation gateway for the controlled
// modeling notation; the CLI loads configuration, invokes the validation
// API and renders human-readable output.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c360studio/semvocab/config"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "semvocab"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Canonical vocabulary registry and validation gateway",
		Long: `Semvocab maintains the canonical vocabulary for the controlled
modeling notation and validates model handles against it.

It provides:
- Handle classification across the generative hierarchy (L1/L2/L3)
- Checkpoint validation with configurable strictness
- Vocabulary export as markdown or RDF/SKOS`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	app := &appContext{configPath: &configPath, logLevel: &logLevel}

	cmd.AddCommand(validateCmd(app))
	cmd.AddCommand(checkCmd(app))
	cmd.AddCommand(rulesCmd(app))
	cmd.AddCommand(exportCmd(app))
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

// appContext defers config loading until a subcommand actually runs, so
// flag parsing happens first.
type appContext struct {
	configPath *string
	logLevel   *string
}

// load resolves configuration and logging for a command invocation.
func (a *appContext) load() (*App, error) {
	var cfg *config.Config
	var err error
	if *a.configPath != "" {
		cfg, err = config.LoadFromFile(*a.configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
	} else {
		cfg, err = config.NewLoader(nil).Load()
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}

	levelName := cfg.Log.Level
	if *a.logLevel != "" {
		levelName = *a.logLevel
	}
	level := slog.LevelInfo
	switch strings.ToLower(levelName) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	return newApp(cfg, logger, os.Stdout)
}
