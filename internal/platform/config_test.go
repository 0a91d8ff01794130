package platform

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv(t *testing.T) {
	t.Setenv(EnvHome, "/data/eisen")
	t.Setenv(EnvAdapter, "sqlite")
	t.Setenv(EnvFormat, "yaml")
	t.Setenv(EnvLogLevel, "DEBUG")

	env := LoadEnv()
	assert.Equal(t, "/data/eisen", env.Home)
	assert.Equal(t, "sqlite", env.Adapter)
	assert.Equal(t, "yaml", env.Format)
	assert.Equal(t, slog.LevelDebug, env.Level())
}

func TestEnv_Level(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"info":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"loud":    slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, Env{LogLevel: in}.Level(), in)
	}
}

func TestEnv_DataDir(t *testing.T) {
	project := t.TempDir()
	board := filepath.Join(project, LocalDirName)
	require.NoError(t, os.Mkdir(board, 0755))
	nested := filepath.Join(project, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))

	assert.Equal(t, "/flag", Env{Home: "/env"}.DataDir("/flag", nested))
	assert.Equal(t, "/env", Env{Home: "/env"}.DataDir("", nested))
	assert.Equal(t, board, Env{}.DataDir("", nested))

	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	t.Setenv("HOME", "/home/u")
	assert.Equal(t, "/xdg/eisen", Env{}.DataDir("", ""))
}
