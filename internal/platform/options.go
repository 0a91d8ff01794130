package platform

import (
	"log/slog"

	"github.com/aretw0/eisen/pkg/core"
)

// options holds the internal configuration for an eisen board.
type options struct {
	storage core.Storage
	logger  *slog.Logger
	adapter string
	format  string
	config  map[string]any
}

// Option defines a functional option for configuring eisen.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		adapter: AdapterFS,
		format:  "json",
		config:  make(map[string]any),
	}
}

// WithAdapter selects the storage adapter by name ("fs", "sqlite" or "memory").
// Defaults to "fs".
func WithAdapter(name string) Option {
	return func(o *options) {
		if name != "" {
			o.adapter = name
		}
	}
}

// WithFormat selects the snapshot format ("json" or "yaml").
func WithFormat(name string) Option {
	return func(o *options) {
		if name != "" {
			o.format = name
		}
	}
}

// WithLogger sets the logger for every component.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStorage injects a storage, skipping adapter selection.
func WithStorage(s core.Storage) Option {
	return func(o *options) {
		o.storage = s
	}
}

// WithVersioning commits every snapshot write to a git repository in the
// data directory. Only the fs adapter supports it.
func WithVersioning(enabled bool) Option {
	return func(o *options) {
		o.config["versioned"] = enabled
	}
}

// WithReadOnly rejects every write at the storage layer.
// Mutations still apply in memory but are not persisted.
// The dev sandbox is bypassed, since nothing can be damaged.
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.config["read_only"] = enabled
	}
}

// WithForceTemp forces the data directory into the temp dir.
func WithForceTemp(force bool) Option {
	return func(o *options) {
		o.config["temp_dir"] = force
	}
}

// WithDevSafety controls the sandbox used under `go run` and `go test`.
// By default (true) the data directory is re-rooted into the temp dir.
func WithDevSafety(enabled bool) Option {
	return func(o *options) {
		o.config["dev_safety"] = enabled
	}
}

// WithIDFunc replaces the note id allocator.
func WithIDFunc(fn core.IDFunc) Option {
	return func(o *options) {
		o.config["id_func"] = fn
	}
}

// WithWatcherErrorHandler receives runtime failures of the fs watcher.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.config["watcher_error_handler"] = fn
	}
}
