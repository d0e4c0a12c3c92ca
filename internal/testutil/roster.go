package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteRosterFile writes lines, each followed by a newline, to a fresh
// students.txt in a temp dir and returns its path
func WriteRosterFile(t *testing.T, lines ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "students.txt")
	var content string
	if len(lines) > 0 {
		content = strings.Join(lines, "\n") + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write roster file: %v", err)
	}
	return path
}

// ReadRosterLines returns the lines of a roster file without terminators
func ReadRosterLines(t *testing.T, path string) []string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read roster file: %v", err)
	}
	content := strings.TrimSuffix(string(data), "\n")
	if content == "" {
		return nil
	}
	return strings.Split(content, "\n")
}

// SampleRoster is the three-record roster used across command tests
var SampleRoster = []string{
	"Alice,20,3.8",
	"Bob,22,3.5",
	"Cara,19,3.9",
}
