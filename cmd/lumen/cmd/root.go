// Package cmd provides the CLI commands for the lumen launcher.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/lumen-sh/lumen/internal/config"
	"github.com/lumen-sh/lumen/internal/execute"
	"github.com/lumen-sh/lumen/internal/inventory"
	"github.com/lumen-sh/lumen/internal/lock"
	"github.com/lumen-sh/lumen/internal/logging"
	"github.com/lumen-sh/lumen/internal/query"
	"github.com/lumen-sh/lumen/internal/ui"
	"github.com/lumen-sh/lumen/pkg/version"
)

var (
	configPath     string
	debugMode      bool
	loggingCleanup func()
)

// NewRootCmd creates the root command for the lumen CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lumen",
		Short: "Keyboard-driven application launcher",
		Long: `Lumen is a quick launcher: type to find applications, evaluate
arithmetic, convert currencies, open URLs, and search files, emoji,
and the web from a single input line.

Run 'lumen' with no arguments to open the interactive launcher.`,
		Version: version.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return cmd.Help()
			}
			return runLauncher(cmd.Context())
		},
	}

	cmd.SetVersionTemplate("lumen version {{.Version}}\n")

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	cmd.PersistentPreRunE = setupLogging
	cmd.PersistentPostRun = teardownLogging

	cmd.AddCommand(newQueryCmd())
	cmd.AddCommand(newAppsCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// setupLogging installs the file logger before any command runs.
func setupLogging(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logCfg := logging.Config{
		Level:    cfg.Logging.Level,
		FilePath: cfg.Logging.File,
	}
	if debugMode {
		logCfg.Level = "debug"
	}

	cleanup, err := logging.SetupDefault(logCfg)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	loggingCleanup = cleanup
	return nil
}

func teardownLogging(_ *cobra.Command, _ []string) {
	if loggingCleanup != nil {
		loggingCleanup()
		loggingCleanup = nil
	}
}

// loadConfig loads the configured or default config file.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	return config.Load(path)
}

// buildResolver assembles the interpreter chain in priority order. The
// prefix interpreters come first so their queries never reach the
// heuristics, and the ranker is last before the web-search fallback.
func buildResolver(cfg *config.Config, entries []inventory.Entry, logger *slog.Logger) *query.Resolver {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.TempDir()
	}

	var files *query.FileInterpreter
	if len(cfg.Search.FileSearchDirs) > 0 {
		files = query.NewFileInterpreterDirs(cfg.Search.FileSearchDirs)
	} else {
		files = query.NewFileInterpreter(home)
	}

	chain := []query.Interpreter{
		files,
		query.NewEmojiInterpreter(),
		query.NewCurrencyInterpreter(cfg.Currency, http.DefaultClient, logger),
		query.URLInterpreter{},
		query.CalcInterpreter{},
		query.ShellInterpreter{},
		query.MentionInterpreter{},
		query.NewRankInterpreter(entries, cfg.Search.ResultLimit),
	}
	return query.NewResolver(chain, logger)
}

// runLauncher opens the interactive launcher window.
func runLauncher(ctx context.Context) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("lumen needs a terminal; use 'lumen query' for scripted lookups")
	}

	instance, err := lock.Acquire(lock.DefaultPath())
	if err != nil {
		return fmt.Errorf("another lumen instance is already running: %w", err)
	}
	defer func() { _ = instance.Release() }()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := slog.Default()
	entries := inventory.Build(inventory.Options{
		ExtraDirs: cfg.Inventory.ExtraDirs,
		Exclude:   cfg.Inventory.Exclude,
	})
	logger.Info("inventory built", "entries", len(entries))

	resolver := buildResolver(cfg, entries, logger)
	dispatcher := execute.New(logger)
	styles := ui.StylesFromConfig(cfg.UI)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Theme edits apply to the open window without a restart.
	watchPath := configPath
	if watchPath == "" {
		watchPath = config.DefaultPath()
	}
	updates, err := config.Watch(ctx, watchPath)
	if err != nil {
		logger.Warn("config watching disabled", "error", err)
		updates = nil
	}

	return ui.Run(ctx, resolver, dispatcher, styles, updates)
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
