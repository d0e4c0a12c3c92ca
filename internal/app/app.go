// Package app wires roster's services together
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/roster/internal/config"
	"github.com/thenoetrevino/roster/internal/database"
	archiveservice "github.com/thenoetrevino/roster/internal/services/archive"
	studentservice "github.com/thenoetrevino/roster/internal/services/student"
)

// App holds all application services and provides dependency injection.
// The archive database is only opened when a command asks for it.
type App struct {
	Config *config.Config

	// Service layer (business logic)
	StudentService studentservice.Service

	archiveService archiveservice.Service
	db             *sql.DB
	ownsDB         bool
	logger         *slog.Logger
}

// New creates a new App with all services initialized.
func New(cfg *config.Config, opts ...Option) *App {
	appCfg := &appConfig{}
	for _, opt := range opts {
		opt(appCfg)
	}

	if cfg == nil {
		cfg = config.Default()
	}
	logger := appCfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	a := &App{
		Config:         cfg,
		StudentService: studentservice.NewService(),
		logger:         logger,
	}

	if appCfg.db != nil {
		a.db = appCfg.db
		a.archiveService = archiveservice.NewService(database.NewArchiveRepo(appCfg.db))
	}

	return a
}

// ArchiveService returns the archive service, opening the archive database
// at Config.ArchiveDB on first use
func (a *App) ArchiveService(ctx context.Context) (archiveservice.Service, error) {
	if a.archiveService != nil {
		return a.archiveService, nil
	}

	db, err := database.InitDB(ctx, a.Config.ArchiveDB)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive %s: %w", a.Config.ArchiveDB, err)
	}
	a.logger.Debug("archive opened", "path", a.Config.ArchiveDB)

	a.db = db
	a.ownsDB = true
	a.archiveService = archiveservice.NewService(database.NewArchiveRepo(db))
	return a.archiveService, nil
}

// Close releases the archive database if App opened it.
func (a *App) Close() error {
	if a.db == nil || !a.ownsDB {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	a.archiveService = nil
	return err
}
