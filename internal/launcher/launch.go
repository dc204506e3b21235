package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/roster/internal/app"
	"github.com/thenoetrevino/roster/internal/config"
	"github.com/thenoetrevino/roster/internal/database"
	"github.com/thenoetrevino/roster/internal/logging"
	"github.com/thenoetrevino/roster/internal/tui"
)

// Launch starts the user screen. dataDirOverride, when non-empty, replaces
// the configured data directory.
func Launch(dataDirOverride string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dataDir := dataDirOverride
	if dataDir == "" {
		if dataDir, err = cfg.ResolveDataDir(); err != nil {
			return fmt.Errorf("failed to resolve data directory: %w", err)
		}
	}

	// Initialize logging to file before anything touches the store
	if err := logging.Init(dataDir); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	// Create root context with signal handling for graceful shutdown.
	// Cancelling it is the only way in-flight store tasks are stopped.
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	db, err := database.InitDB(ctx, dataDir)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	application := app.New(db, app.WithLogger(logging.Logger))
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	slog.Info("starting roster", "data_dir", dataDir)

	model := tui.New(ctx, application, cfg)
	p := tea.NewProgram(model, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			slog.Info("shutdown signal received, cleaning up")
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}

	return nil
}
