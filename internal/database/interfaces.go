package database

import (
	"context"

	"github.com/thenoetrevino/roster/internal/models"
)

// DataStore defines the archive operations the services depend on.
// This interface enables substituting fakes in service tests.
type DataStore interface {
	CreateSnapshot(ctx context.Context, label, source string, students []models.Student) (*models.Snapshot, error)
	ListSnapshots(ctx context.Context) ([]*models.Snapshot, error)
	GetSnapshot(ctx context.Context, id int) (*models.SnapshotDetail, error)
	DeleteSnapshot(ctx context.Context, id int) error
}
