// Package archive snapshots roster files into the SQLite archive and
// restores them back
package archive

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/roster/internal/database"
	"github.com/thenoetrevino/roster/internal/models"
	"github.com/thenoetrevino/roster/internal/roster"
)

const maxLabelLength = 100

// Service defines all archive-related business operations
type Service interface {
	// Read operations
	ListSnapshots(ctx context.Context) ([]*models.Snapshot, error)
	GetSnapshot(ctx context.Context, id int) (*models.SnapshotDetail, error)

	// Write operations
	SaveSnapshot(ctx context.Context, req SaveSnapshotRequest) (*models.Snapshot, error)
	Restore(ctx context.Context, req RestoreRequest) (*models.SnapshotDetail, error)
	DeleteSnapshot(ctx context.Context, id int) error
}

// SaveSnapshotRequest encapsulates data for archiving a roster file
type SaveSnapshotRequest struct {
	Label string
	Path  string // Roster file to archive
}

// RestoreRequest encapsulates data for writing a snapshot back to a roster file
type RestoreRequest struct {
	ID   int
	Path string
}

// service implements Service interface
type service struct {
	repo database.DataStore
}

// NewService creates a new archive service
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

// ListSnapshots retrieves every archived snapshot, newest first
func (s *service) ListSnapshots(ctx context.Context) ([]*models.Snapshot, error) {
	return s.repo.ListSnapshots(ctx)
}

// GetSnapshot retrieves a snapshot with its students
func (s *service) GetSnapshot(ctx context.Context, id int) (*models.SnapshotDetail, error) {
	if id <= 0 {
		return nil, ErrInvalidSnapshotID
	}
	return s.repo.GetSnapshot(ctx, id)
}

// SaveSnapshot loads the roster file and archives its records
func (s *service) SaveSnapshot(ctx context.Context, req SaveSnapshotRequest) (*models.Snapshot, error) {
	req.Label = strings.TrimSpace(req.Label)
	if err := validateSaveSnapshot(req); err != nil {
		return nil, err
	}

	store := roster.NewStore()
	if err := store.Load(req.Path); err != nil {
		return nil, err
	}

	snapshot, err := s.repo.CreateSnapshot(ctx, req.Label, req.Path, store.Students())
	if err != nil {
		return nil, fmt.Errorf("failed to create snapshot: %w", err)
	}

	slog.Info("snapshot saved", "id", snapshot.ID, "label", snapshot.Label, "records", snapshot.Count)
	return snapshot, nil
}

// Restore overwrites the roster file at req.Path with the snapshot's records
func (s *service) Restore(ctx context.Context, req RestoreRequest) (*models.SnapshotDetail, error) {
	if req.ID <= 0 {
		return nil, ErrInvalidSnapshotID
	}
	if req.Path == "" {
		return nil, ErrEmptyPath
	}

	detail, err := s.repo.GetSnapshot(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	store := roster.NewStore()
	store.Replace(detail.Students)
	if err := store.Save(req.Path); err != nil {
		return nil, err
	}

	slog.Info("snapshot restored", "id", detail.ID, "path", req.Path, "records", store.Len())
	return detail, nil
}

// DeleteSnapshot removes a snapshot
func (s *service) DeleteSnapshot(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidSnapshotID
	}
	if err := s.repo.DeleteSnapshot(ctx, id); err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	return nil
}

// validateSaveSnapshot validates a SaveSnapshotRequest
func validateSaveSnapshot(req SaveSnapshotRequest) error {
	if req.Label == "" {
		return ErrEmptyLabel
	}
	if len(req.Label) > maxLabelLength {
		return ErrLabelTooLong
	}
	if req.Path == "" {
		return ErrEmptyPath
	}
	return nil
}
