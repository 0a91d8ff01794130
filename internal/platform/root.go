package platform

import (
	"errors"
	"os"
	"path/filepath"
)

// LocalDirName marks a project-local board: a directory with this name in
// the working directory or any of its parents is used as the data directory.
const LocalDirName = ".eisen"

// ErrRootNotFound is returned by FindRoot when no local board exists.
var ErrRootNotFound = errors.New("no local board found")

// FindRoot walks upwards from startDir looking for a LocalDirName directory
// and returns its absolute path.
func FindRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(dir, LocalDirName)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrRootNotFound
		}
		dir = parent
	}
}
