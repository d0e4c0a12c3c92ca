package archive

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/roster/internal/database"
	"github.com/thenoetrevino/roster/internal/models"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// setupService creates an archive service over an in-memory database
func setupService(t *testing.T) Service {
	t.Helper()
	db, err := database.InitDB(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewService(database.NewArchiveRepo(db))
}

// writeRoster writes a roster file and returns its path
func writeRoster(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "students.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// ============================================================================
// SaveSnapshot
// ============================================================================

func TestSaveSnapshot(t *testing.T) {
	svc := setupService(t)
	path := writeRoster(t, "Alice,20,3.8\nBob,22,3.5\nnotarow\nCara,21,3.8\n")

	snapshot, err := svc.SaveSnapshot(context.Background(), SaveSnapshotRequest{
		Label: "  midterm  ",
		Path:  path,
	})
	require.NoError(t, err)

	assert.Equal(t, "midterm", snapshot.Label)
	assert.Equal(t, path, snapshot.Source)
	assert.Equal(t, 3, snapshot.Count)
}

func TestSaveSnapshot_Validation(t *testing.T) {
	svc := setupService(t)
	path := writeRoster(t, "Alice,20,3.8\n")

	tests := []struct {
		name    string
		req     SaveSnapshotRequest
		wantErr error
	}{
		{name: "empty label", req: SaveSnapshotRequest{Label: "  ", Path: path}, wantErr: ErrEmptyLabel},
		{name: "label too long", req: SaveSnapshotRequest{Label: strings.Repeat("x", 101), Path: path}, wantErr: ErrLabelTooLong},
		{name: "empty path", req: SaveSnapshotRequest{Label: "ok"}, wantErr: ErrEmptyPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SaveSnapshot(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSaveSnapshot_RosterErrors(t *testing.T) {
	svc := setupService(t)

	_, err := svc.SaveSnapshot(context.Background(), SaveSnapshotRequest{
		Label: "missing",
		Path:  filepath.Join(t.TempDir(), "absent.txt"),
	})
	assert.ErrorIs(t, err, models.ErrFileAccess)

	_, err = svc.SaveSnapshot(context.Background(), SaveSnapshotRequest{
		Label: "malformed",
		Path:  writeRoster(t, "Alice,x,3.8\n"),
	})
	assert.ErrorIs(t, err, models.ErrFormat)

	snapshots, err := svc.ListSnapshots(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snapshots, "failed saves must not create snapshots")
}

// ============================================================================
// Restore
// ============================================================================

func TestRestore_WritesLoadableRoster(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	path := writeRoster(t, "Alice,20,3.8\nBob,22,3.5\nCara,21,3.8\n")

	snapshot, err := svc.SaveSnapshot(ctx, SaveSnapshotRequest{Label: "before", Path: path})
	require.NoError(t, err)

	// Roster changes after the snapshot
	require.NoError(t, os.WriteFile(path, []byte("Zed,40,1\n"), 0o644))

	detail, err := svc.Restore(ctx, RestoreRequest{ID: snapshot.ID, Path: path})
	require.NoError(t, err)
	assert.Len(t, detail.Students, 3)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Alice,20,3.8\nBob,22,3.5\nCara,21,3.8\n", string(data))
}

func TestRestore_Errors(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "out.txt")

	_, err := svc.Restore(ctx, RestoreRequest{ID: 0, Path: path})
	assert.ErrorIs(t, err, ErrInvalidSnapshotID)

	_, err = svc.Restore(ctx, RestoreRequest{ID: 1})
	assert.ErrorIs(t, err, ErrEmptyPath)

	_, err = svc.Restore(ctx, RestoreRequest{ID: 99, Path: path})
	assert.ErrorIs(t, err, models.ErrSnapshotNotFound)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "unknown snapshot must not touch the roster file")
}

// ============================================================================
// Read / delete
// ============================================================================

func TestGetAndDeleteSnapshot(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	path := writeRoster(t, "Alice,20,3.8\n")

	snapshot, err := svc.SaveSnapshot(ctx, SaveSnapshotRequest{Label: "one", Path: path})
	require.NoError(t, err)

	detail, err := svc.GetSnapshot(ctx, snapshot.ID)
	require.NoError(t, err)
	assert.Equal(t, []models.Student{models.NewStudent("Alice", 20, 3.8)}, detail.Students)

	_, err = svc.GetSnapshot(ctx, -1)
	assert.ErrorIs(t, err, ErrInvalidSnapshotID)

	require.NoError(t, svc.DeleteSnapshot(ctx, snapshot.ID))
	assert.ErrorIs(t, svc.DeleteSnapshot(ctx, snapshot.ID), models.ErrSnapshotNotFound)
	assert.ErrorIs(t, svc.DeleteSnapshot(ctx, 0), ErrInvalidSnapshotID)
}
