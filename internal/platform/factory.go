package platform

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aretw0/eisen/pkg/adapters/fs"
	"github.com/aretw0/eisen/pkg/adapters/memory"
	"github.com/aretw0/eisen/pkg/adapters/sqlite"
	"github.com/aretw0/eisen/pkg/board"
	"github.com/aretw0/eisen/pkg/core"
	"github.com/aretw0/eisen/pkg/identity"
	"github.com/aretw0/eisen/pkg/persist"
)

// Storage adapter names.
const (
	AdapterFS     = "fs"
	AdapterSQLite = "sqlite"
	AdapterMemory = "memory"
)

// App is a fully wired board together with the storage behind it.
type App struct {
	*board.Board

	Dir     string
	Storage core.Storage
	Persist *persist.Adapter

	closer func() error
}

// Close releases the storage (the sqlite connection, if any).
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer()
}

// New opens the storage in dir and returns a signed-out board on top of it.
//
//	app, err := platform.New("~/.config/eisen", platform.WithAdapter("sqlite"))
func New(ctx context.Context, dir string, opts ...Option) (*App, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	codec, err := persist.CodecFor(o.format)
	if err != nil {
		return nil, err
	}

	app := &App{Storage: o.storage}
	if app.Storage == nil {
		app.Dir = resolveDir(dir, o)
		if err := openStorage(ctx, app, o); err != nil {
			return nil, err
		}
	}

	app.Persist = persist.New(app.Storage, persist.WithCodec(codec), persist.WithLogger(o.logger))

	var storeOpts []core.StoreOption
	if fn, ok := o.config["id_func"].(core.IDFunc); ok {
		storeOpts = append(storeOpts, core.WithIDFunc(fn))
	}
	app.Board = board.New(
		identity.NewSelector(app.Storage, o.logger),
		app.Persist,
		board.WithLogger(o.logger),
		board.WithStoreOptions(storeOpts...),
	)
	return app, nil
}

func resolveDir(dir string, o *options) string {
	readOnly, _ := o.config["read_only"].(bool)
	forceTemp, _ := o.config["temp_dir"].(bool)
	devSafety := true
	if v, ok := o.config["dev_safety"].(bool); ok {
		devSafety = v
	}

	useTemp := forceTemp || (IsDevRun() && devSafety && !readOnly && o.adapter != AdapterMemory)
	resolved := ResolveDataDir(dir, useTemp)
	if useTemp && resolved != filepath.Clean(dir) {
		o.logger.Debug("dev sandbox enabled", "requested", dir, "path", resolved)
	}
	return resolved
}

func openStorage(ctx context.Context, app *App, o *options) error {
	readOnly, _ := o.config["read_only"].(bool)
	versioned, _ := o.config["versioned"].(bool)

	switch o.adapter {
	case AdapterFS:
		errorHandler, _ := o.config["watcher_error_handler"].(func(error))
		s := fs.NewStorage(fs.Config{
			Path:         app.Dir,
			AutoInit:     true,
			Versioned:    versioned,
			ReadOnly:     readOnly,
			Logger:       o.logger,
			ErrorHandler: errorHandler,
		})
		if err := s.Initialize(ctx); err != nil {
			return err
		}
		app.Storage = s

	case AdapterSQLite:
		if versioned {
			return fmt.Errorf("versioning is not supported by the %s adapter", o.adapter)
		}
		if err := os.MkdirAll(app.Dir, 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
		s, err := sqlite.Open(ctx, filepath.Join(app.Dir, sqlite.DefaultFileName), o.logger)
		if err != nil {
			return err
		}
		s.SetReadOnly(readOnly)
		app.Storage = s
		app.closer = s.Close

	case AdapterMemory:
		app.Storage = memory.NewStorage()

	default:
		return fmt.Errorf("unknown adapter: %s", o.adapter)
	}
	return nil
}
