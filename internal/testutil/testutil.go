package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/beegood/ufund-api/internal/domain"
	"github.com/beegood/ufund-api/internal/repository"
	"github.com/beegood/ufund-api/internal/repository/jsonfile"
)

// SnapshotFile writes v as a JSON snapshot into a temp dir and returns the
// path. The file lives for the duration of the test.
func SnapshotFile(t *testing.T, name string, v any) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to encode snapshot %s: %v", name, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write snapshot %s: %v", name, err)
	}
	return path
}

// NewRepositories opens a full set of stores over empty temp snapshots.
func NewRepositories(t *testing.T) *repository.Repositories {
	t.Helper()

	repos, err := jsonfile.NewRepositories(
		SnapshotFile(t, "cupboard.json", []domain.Need{}),
		SnapshotFile(t, "users.json", []domain.User{}),
		SnapshotFile(t, "sessions.json", []domain.Session{}),
	)
	if err != nil {
		t.Fatalf("failed to open test repositories: %v", err)
	}
	return repos
}
