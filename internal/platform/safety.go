package platform

import (
	"os"
	"path/filepath"
	"strings"
)

// IsDevRun reports whether the process was built by `go run` or `go test`.
// Both place their binaries under the temp dir; test binaries also end in ".test".
func IsDevRun() bool {
	exe, err := os.Executable()
	if err != nil {
		return false
	}
	if strings.HasPrefix(strings.ToLower(exe), strings.ToLower(os.TempDir())) {
		return true
	}
	return strings.HasSuffix(exe, ".test") || strings.HasSuffix(exe, ".test.exe")
}

// ResolveDataDir applies the dev sandbox to dir. With forceTemp, a dir
// outside the temp dir is replaced by a namespaced one inside it; a dir
// already under the temp dir (e.g. from t.TempDir) is kept.
func ResolveDataDir(dir string, forceTemp bool) string {
	if !forceTemp {
		if dir == "" {
			return "."
		}
		return dir
	}

	clean := filepath.Clean(dir)
	if rel, err := filepath.Rel(os.TempDir(), clean); err == nil && filepath.IsAbs(clean) && !strings.HasPrefix(rel, "..") {
		return clean
	}

	name := filepath.Base(clean)
	if dir == "" || name == "." || name == string(os.PathSeparator) {
		name = "default"
	}
	return filepath.Join(os.TempDir(), "eisen-dev", name)
}
