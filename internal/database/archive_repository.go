package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/roster/internal/models"
)

// ArchiveRepo handles all snapshot-related database operations.
type ArchiveRepo struct {
	db *sql.DB
}

// NewArchiveRepo creates a new ArchiveRepo wrapping the given database connection.
func NewArchiveRepo(db *sql.DB) *ArchiveRepo {
	return &ArchiveRepo{db: db}
}

// CreateSnapshot stores a copy of students, keeping their order
func (r *ArchiveRepo) CreateSnapshot(ctx context.Context, label, source string, students []models.Student) (*models.Snapshot, error) {
	var snapshotID int64

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			`INSERT INTO snapshots (label, source) VALUES (?, ?)`,
			label, source,
		)
		if err != nil {
			return fmt.Errorf("failed to insert snapshot '%s': %w", label, err)
		}

		snapshotID, err = result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get snapshot ID after insert: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO snapshot_students (snapshot_id, position, name, age, grade) VALUES (?, ?, ?, ?, ?)`,
		)
		if err != nil {
			return fmt.Errorf("failed to prepare student insert: %w", err)
		}
		defer stmt.Close()

		for i, s := range students {
			if _, err := stmt.ExecContext(ctx, snapshotID, i, s.Name, s.Age, s.Grade); err != nil {
				return fmt.Errorf("failed to insert student %d of snapshot %d: %w", i, snapshotID, err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.getSnapshotHeader(ctx, int(snapshotID))
}

// ListSnapshots returns every snapshot, newest first, with its student count
func (r *ArchiveRepo) ListSnapshots(ctx context.Context) ([]*models.Snapshot, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT s.id, s.label, s.source, s.created_at, COUNT(ss.position)
		FROM snapshots s
		LEFT JOIN snapshot_students ss ON ss.snapshot_id = s.id
		GROUP BY s.id
		ORDER BY s.id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snapshots := []*models.Snapshot{}
	for rows.Next() {
		snapshot := &models.Snapshot{}
		if err := rows.Scan(&snapshot.ID, &snapshot.Label, &snapshot.Source, &snapshot.CreatedAt, &snapshot.Count); err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snapshot)
	}

	return snapshots, rows.Err()
}

// GetSnapshot returns a snapshot and its students in their original order.
// Returns models.ErrSnapshotNotFound if id does not exist.
func (r *ArchiveRepo) GetSnapshot(ctx context.Context, id int) (*models.SnapshotDetail, error) {
	header, err := r.getSnapshotHeader(ctx, id)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT name, age, grade FROM snapshot_students WHERE snapshot_id = ? ORDER BY position`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	detail := &models.SnapshotDetail{
		Snapshot: *header,
		Students: []models.Student{},
	}
	for rows.Next() {
		var s models.Student
		if err := rows.Scan(&s.Name, &s.Age, &s.Grade); err != nil {
			return nil, err
		}
		detail.Students = append(detail.Students, s)
	}

	return detail, rows.Err()
}

// DeleteSnapshot removes a snapshot (cascade removes its students).
// Returns models.ErrSnapshotNotFound if id does not exist.
func (r *ArchiveRepo) DeleteSnapshot(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM snapshots WHERE id = ?", id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("snapshot %d: %w", id, models.ErrSnapshotNotFound)
	}
	return nil
}

// getSnapshotHeader loads a snapshot row together with its student count
func (r *ArchiveRepo) getSnapshotHeader(ctx context.Context, id int) (*models.Snapshot, error) {
	snapshot := &models.Snapshot{}
	err := r.db.QueryRowContext(ctx, `
		SELECT s.id, s.label, s.source, s.created_at,
			(SELECT COUNT(*) FROM snapshot_students ss WHERE ss.snapshot_id = s.id)
		FROM snapshots s
		WHERE s.id = ?`,
		id,
	).Scan(&snapshot.ID, &snapshot.Label, &snapshot.Source, &snapshot.CreatedAt, &snapshot.Count)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("snapshot %d: %w", id, models.ErrSnapshotNotFound)
	}
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}
