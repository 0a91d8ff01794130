package eisen

import (
	"context"
	"log/slog"

	"github.com/aretw0/eisen/internal/platform"
	"github.com/aretw0/eisen/pkg/core"
)

// --- Types ---

// App is a wired board plus the storage behind it.
type App = platform.App

// Note is a public alias for core.Note.
type Note = core.Note

// Fields is a public alias for core.Fields.
type Fields = core.Fields

// Quadrant is a public alias for core.Quadrant.
type Quadrant = core.Quadrant

// Quadrants of the matrix.
const (
	Q1 = core.Q1
	Q2 = core.Q2
	Q3 = core.Q3
	Q4 = core.Q4
)

// Storage adapter names accepted by WithAdapter.
const (
	AdapterFS     = platform.AdapterFS
	AdapterSQLite = platform.AdapterSQLite
	AdapterMemory = platform.AdapterMemory
)

// --- Configuration ---

// Option defines a functional option for configuring eisen.
type Option = platform.Option

// WithAdapter selects the storage adapter ("fs", "sqlite" or "memory").
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithFormat selects the snapshot format ("json" or "yaml").
func WithFormat(name string) Option {
	return platform.WithFormat(name)
}

// WithLogger sets the logger for every component.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithStorage injects a custom storage.
func WithStorage(s core.Storage) Option {
	return platform.WithStorage(s)
}

// WithVersioning commits every snapshot write to git (fs adapter only).
func WithVersioning(enabled bool) Option {
	return platform.WithVersioning(enabled)
}

// WithReadOnly keeps the storage untouched.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithForceTemp forces the data directory into the temp dir.
func WithForceTemp(force bool) Option {
	return platform.WithForceTemp(force)
}

// WithDevSafety controls the `go run` sandbox.
func WithDevSafety(enabled bool) Option {
	return platform.WithDevSafety(enabled)
}

// WithIDFunc replaces the note id allocator.
func WithIDFunc(fn core.IDFunc) Option {
	return platform.WithIDFunc(fn)
}

// WithWatcherErrorHandler receives runtime failures of the fs watcher.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// --- Factory ---

// New opens the data directory dir and returns a signed-out board.
func New(ctx context.Context, dir string, opts ...Option) (*App, error) {
	return platform.New(ctx, dir, opts...)
}
