package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/roster/internal/app"
	"github.com/thenoetrevino/roster/internal/config"
	"github.com/thenoetrevino/roster/internal/database"
	"github.com/thenoetrevino/roster/internal/testutil"
)

// SetupCLITest builds an App whose roster file holds lines and whose archive
// is an in-memory database. It returns the App and the roster file path.
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles with internal/cli.
func SetupCLITest(t *testing.T, lines ...string) (*app.App, string) {
	t.Helper()

	path := testutil.WriteRosterFile(t, lines...)

	db, err := database.InitDB(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to init archive: %v", err)
	}

	cfg := config.Default()
	cfg.DataFile = path
	cfg.ArchiveDB = filepath.Join(t.TempDir(), "unused.db")

	appInstance := app.New(cfg, app.WithDB(db))
	t.Cleanup(func() {
		_ = appInstance.Close()
		_ = db.Close()
	})

	return appInstance, path
}
