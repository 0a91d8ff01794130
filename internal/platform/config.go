package platform

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by LoadEnv.
const (
	EnvHome     = "EISEN_HOME"
	EnvAdapter  = "EISEN_ADAPTER"
	EnvFormat   = "EISEN_FORMAT"
	EnvLogLevel = "EISEN_LOG_LEVEL"
)

// Env holds the defaults taken from the environment.
type Env struct {
	Home     string
	Adapter  string
	Format   string
	LogLevel string
}

// LoadEnv reads the EISEN_* variables. A .env file in the working directory
// is loaded first; variables already set in the process win over it.
func LoadEnv() Env {
	_ = godotenv.Load()

	return Env{
		Home:     os.Getenv(EnvHome),
		Adapter:  os.Getenv(EnvAdapter),
		Format:   os.Getenv(EnvFormat),
		LogLevel: os.Getenv(EnvLogLevel),
	}
}

// Level maps LogLevel to a slog level; unknown values mean info.
func (e Env) Level() slog.Level {
	switch strings.ToLower(strings.TrimSpace(e.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// DataDir picks the data directory: flag, then EISEN_HOME, then the nearest
// local board above wd, then $HOME/.config/eisen.
func (e Env) DataDir(flag, wd string) string {
	if flag != "" {
		return flag
	}
	if e.Home != "" {
		return e.Home
	}
	if wd != "" {
		if root, err := FindRoot(wd); err == nil {
			return root
		}
	}
	if cfg, err := os.UserConfigDir(); err == nil {
		return filepath.Join(cfg, "eisen")
	}
	return LocalDirName
}
