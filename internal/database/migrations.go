package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the archive schema if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS snapshots (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			label TEXT NOT NULL,
			source TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return err
	}

	// position keeps the roster order, which is the only identity a record has
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS snapshot_students (
			snapshot_id INTEGER NOT NULL,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			age INTEGER NOT NULL,
			grade REAL NOT NULL,
			PRIMARY KEY (snapshot_id, position),
			FOREIGN KEY (snapshot_id) REFERENCES snapshots(id) ON DELETE CASCADE
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_snapshots_created
		ON snapshots(created_at)
	`)
	return err
}
