package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/navshell/internal/config"
	"github.com/alexisbeaulieu97/navshell/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/navshell/internal/ports"
	"github.com/alexisbeaulieu97/navshell/internal/storage"
)

// AppContext bundles state shared by every command: flags, the loaded
// configuration and the bootstrap log buffer that collects entries until a
// real logger exists.
type AppContext struct {
	flags     *rootFlags
	bootstrap *logging.EventBuffer
	early     ports.Logger
	cfg       *config.Config
}

func newAppContext(flags *rootFlags) *AppContext {
	buffer := logging.NewEventBuffer(0)
	return &AppContext{
		flags:     flags,
		bootstrap: buffer,
		early:     logging.NewBufferedLogger(buffer),
	}
}

// Config loads the configuration once and applies command-line overrides.
func (a *AppContext) Config() (*config.Config, error) {
	if a.cfg != nil {
		return a.cfg, nil
	}

	a.early.Debug(context.Background(), "loading configuration", "path", a.flags.configPath)
	cfg, err := config.Load(a.flags.configPath)
	if err != nil {
		return nil, err
	}

	if a.flags.verbose {
		cfg.Log.Level = "debug"
	}
	if a.flags.backend != "" && a.flags.backend != cfg.Storage.Backend {
		cfg.Storage.Backend = a.flags.backend
		if a.flags.storePath == "" && a.flags.backend != storage.BackendMemory {
			// The configured path belongs to the other backend.
			if err := refillStorePath(cfg); err != nil {
				return nil, err
			}
		}
	}
	if a.flags.storePath != "" {
		cfg.Storage.Path = a.flags.storePath
	}
	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}

	a.early.Debug(context.Background(), "configuration loaded",
		"backend", cfg.Storage.Backend,
		"store", cfg.Storage.Path,
		"start_path", cfg.StartPath,
	)
	a.cfg = cfg
	return cfg, nil
}

func refillStorePath(cfg *config.Config) error {
	dir, err := config.HomeDir()
	if err != nil {
		return fmt.Errorf("determine home directory: %w", err)
	}
	name := "settings.json"
	if cfg.Storage.Backend == storage.BackendSQLite {
		name = "settings.db"
	}
	cfg.Storage.Path = filepath.Join(dir, name)
	return nil
}

// CommandContext returns parent tagged with a correlation ID (kept when
// parent already has one) and a logger writing to w, scoped to component. Buffered bootstrap entries are
// replayed into the new logger.
func (a *AppContext) CommandContext(parent context.Context, w io.Writer, component string) (context.Context, ports.Logger, error) {
	cfg, err := a.Config()
	if err != nil {
		return nil, nil, err
	}

	logger, err := logging.New(logging.Options{
		Writer:    w,
		Level:     cfg.Log.Level,
		Format:    logFormat(cfg.Log.Format, w),
		Layer:     "cmd",
		Component: component,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create logger: %w", err)
	}
	a.bootstrap.Flush(logger)

	if parent == nil {
		parent = context.Background()
	}
	ctx, _ := logging.EnsureCorrelationID(parent)
	return ctx, logger, nil
}

// OpenStore opens the configured settings store.
func (a *AppContext) OpenStore(ctx context.Context) (storage.Store, error) {
	cfg, err := a.Config()
	if err != nil {
		return nil, err
	}
	store, err := storage.Open(ctx, cfg.Storage.Backend, cfg.Storage.Path)
	if err != nil {
		return nil, newCommandError("open settings store", cfg.Storage.Backend+" "+cfg.Storage.Path, err,
			"Check the store path and its permissions, or pick another backend with --backend.")
	}
	return store, nil
}

// logFormat resolves "auto" to console output on terminals and JSON
// elsewhere.
func logFormat(format string, w io.Writer) string {
	if format != "auto" {
		return format
	}
	if isTerminal(w) {
		return logging.FormatConsole
	}
	return logging.FormatJSON
}

func isTerminal(v interface{}) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}

// commandLogger is a convenience for RunE bodies.
func commandLogger(cmd *cobra.Command, a *AppContext, component string) (context.Context, ports.Logger, error) {
	return a.CommandContext(cmd.Context(), cmd.ErrOrStderr(), component)
}
