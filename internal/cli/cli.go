// Package cli holds the shared plumbing of roster's commands: application
// setup, flag helpers, output formatting and exit codes
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/thenoetrevino/roster/internal/app"
	"github.com/thenoetrevino/roster/internal/cli/styles"
	"github.com/thenoetrevino/roster/internal/config"
	"github.com/thenoetrevino/roster/internal/logging"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const appKey contextKey = "app"

// CLI represents the CLI application context
type CLI struct {
	App       *app.App // Application container with services
	ctx       context.Context
	logCloser io.Closer
	borrowed  bool // App was injected through the context and is closed by its owner
}

// NewCLI loads the config, sets up logging and builds the application
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Logging is best effort; a read-only home must not stop the roster from working
	logCloser, err := logging.Init(cfg.LogLevel)
	if err != nil {
		logging.Setup(io.Discard, cfg.LogLevel)
	}

	styles.Init(cfg.ColorScheme)

	return &CLI{
		App:       app.New(cfg, app.WithLogger(slog.Default())),
		ctx:       ctx,
		logCloser: logCloser,
	}, nil
}

// WithApp returns a context carrying an already built App. Commands run with
// this context use it instead of building their own.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// GetCLIFromContext returns a CLI around the App stored by WithApp, or a
// freshly initialized CLI when the context carries none
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		styles.Init(a.Config.ColorScheme)
		return &CLI{App: a, ctx: ctx, borrowed: true}, nil
	}
	return NewCLI(ctx)
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if c.borrowed {
		return nil
	}

	err := c.App.Close()
	if c.logCloser != nil {
		if closeErr := c.logCloser.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}
	return err
}
