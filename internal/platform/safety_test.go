package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveDataDir(t *testing.T) {
	t.Parallel()

	devBase := filepath.Join(os.TempDir(), "eisen-dev")
	insideTemp := filepath.Join(os.TempDir(), "already-safe")

	tests := []struct {
		name      string
		dir       string
		forceTemp bool
		expected  string
	}{
		{"Normal Mode - Empty", "", false, "."},
		{"Normal Mode - Specific Path", "/some/path", false, "/some/path"},
		{"Dev Mode - Empty", "", true, filepath.Join(devBase, "default")},
		{"Dev Mode - Current Dir", ".", true, filepath.Join(devBase, "default")},
		{"Dev Mode - Relative Name", "board", true, filepath.Join(devBase, "board")},
		{"Dev Mode - Traversal", "../bad/path", true, filepath.Join(devBase, "path")},
		{"Dev Mode - Home Config", "/home/u/.config/eisen", true, filepath.Join(devBase, "eisen")},
		{"Dev Mode - Inside Temp", insideTemp, true, insideTemp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ResolveDataDir(tt.dir, tt.forceTemp); got != tt.expected {
				t.Errorf("ResolveDataDir(%q, %v) = %q, want %q", tt.dir, tt.forceTemp, got, tt.expected)
			}
		})
	}
}

func TestIsDevRun(t *testing.T) {
	// Test binaries always count as dev runs.
	if !IsDevRun() {
		t.Error("IsDevRun() = false inside go test")
	}
}
