package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/navshell/internal/app"
	"github.com/alexisbeaulieu97/navshell/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/navshell/internal/tui/shell"
)

var errNotInteractive = errors.New("navshell needs an interactive terminal; use 'navshell resolve' or 'navshell settings' in scripts")

// runShell launches the interactive shell. While Bubble Tea owns the
// terminal, logs are appended to the configured log file.
func runShell(cmd *cobra.Command, appCtx *AppContext) error {
	if !isTerminal(cmd.InOrStdin()) || !isTerminal(cmd.OutOrStdout()) {
		return errNotInteractive
	}

	cfg, err := appCtx.Config()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Log.File), 0o755); err != nil {
		return newCommandError("open log file", cfg.Log.File, err, "Set log.file or NAVSHELL_LOG_FILE to a writable location.")
	}
	logFile, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return newCommandError("open log file", cfg.Log.File, err, "Set log.file or NAVSHELL_LOG_FILE to a writable location.")
	}
	defer logFile.Close()

	ctx, logger, err := appCtx.CommandContext(cmd.Context(), logFile, "command.shell")
	if err != nil {
		return err
	}

	store, err := appCtx.OpenStore(ctx)
	if err != nil {
		logger.Error(ctx, "settings store unavailable", "error", err)
		return err
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			logger.Warn(ctx, "closing settings store failed", "error", cerr)
		}
	}()

	session, err := app.NewSession(store,
		app.WithLogger(logger),
		app.WithPublisher(events.NewLoggingPublisher(logger)),
	)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	session.Start(ctx, cfg.StartPath)
	logger.Info(ctx, "launching shell", "start_path", session.Current().Path, "backend", cfg.Storage.Backend)

	m := shell.NewModel(ctx, session)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		logger.Error(ctx, "shell execution failed", "error", err)
		return fmt.Errorf("failed to run shell: %w", err)
	}

	logger.Info(ctx, "shell closed", "path", session.Current().Path)
	return nil
}
