package app

import (
	"database/sql"
	"log/slog"

	userservice "github.com/thenoetrevino/roster/internal/services/user"
)

// App holds all application services and provides dependency injection.
type App struct {
	db *sql.DB

	UserService userservice.Service
}

// New creates a new App on top of an open database
func New(db *sql.DB, opts ...Option) *App {
	cfg := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	return &App{
		db:          db,
		UserService: userservice.NewService(db, cfg.logger),
	}
}

// Close releases the database handle
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
