// Package cli holds the plumbing shared by the roster subcommands:
// opening the store, output formatting and exit codes.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/app"
	"github.com/thenoetrevino/roster/internal/config"
	"github.com/thenoetrevino/roster/internal/database"
)

type contextKey struct{}

// AppKey is the context key under which an already-built App can be passed
// to a command. Tests use it to run commands against an in-memory store.
var AppKey = contextKey{}

// CLI represents the CLI application context
type CLI struct {
	App *app.App

	// ownsApp is false when the App came from the context; the caller closes it then.
	ownsApp bool
}

// WithApp returns a context carrying application
func WithApp(ctx context.Context, application *app.App) context.Context {
	return context.WithValue(ctx, AppKey, application)
}

// NewCLI opens the store under dataDir and builds the application container
func NewCLI(ctx context.Context, dataDir string) (*CLI, error) {
	db, err := database.InitDB(ctx, dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &CLI{
		App:     app.New(db),
		ownsApp: true,
	}, nil
}

// GetCLIFromContext reuses an App stored in ctx, or opens the store in the
// data directory selected by the command's flags and config.
func GetCLIFromContext(ctx context.Context, cmd *cobra.Command) (*CLI, error) {
	if application, ok := ctx.Value(AppKey).(*app.App); ok && application != nil {
		return &CLI{App: application}, nil
	}

	dataDir, err := DataDir(cmd)
	if err != nil {
		return nil, err
	}
	return NewCLI(ctx, dataDir)
}

// DataDir returns the --data-dir flag when set, otherwise the configured
// data directory.
func DataDir(cmd *cobra.Command) (string, error) {
	if flag := cmd.Flags().Lookup("data-dir"); flag != nil && flag.Value.String() != "" {
		return flag.Value.String(), nil
	}

	cfg, err := config.Load()
	if err != nil {
		return "", fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg.ResolveDataDir()
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.ownsApp {
		return nil
	}
	if err := c.App.Close(); err != nil {
		slog.Error("error closing database", "error", err)
		return err
	}
	return nil
}
