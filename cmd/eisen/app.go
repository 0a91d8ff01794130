package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/eisen"
	"github.com/aretw0/eisen/pkg/core"
)

var errNotSignedIn = errors.New("not signed in (run 'eisen login <identity>')")

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// openApp wires the board from flags and environment.
func openApp(ctx context.Context) *eisen.App {
	wd, err := os.Getwd()
	if err != nil {
		fatal("Failed to get CWD", err)
	}

	app, err := eisen.New(ctx, env.DataDir(dataDir, wd),
		eisen.WithAdapter(firstNonEmpty(adapterName, env.Adapter)),
		eisen.WithFormat(firstNonEmpty(formatName, env.Format)),
		eisen.WithVersioning(versioned),
		eisen.WithLogger(slog.Default()),
	)
	if err != nil {
		fatal("Error opening board", err)
	}
	slog.Debug("board opened", "dir", app.Dir)
	return app
}

// openStore resumes the last identity and returns its store.
func openStore(ctx context.Context) (*eisen.App, *core.Store) {
	app := openApp(ctx)
	if !app.Resume(ctx) {
		app.Close()
		fatal("Error", errNotSignedIn)
	}
	store, _ := app.Store()
	return app, store
}

// reportNotFound prints the benign not-found outcome. It reports whether err
// was ErrNotFound.
func reportNotFound(w io.Writer, id string, err error) bool {
	if !errors.Is(err, core.ErrNotFound) {
		return false
	}
	fmt.Fprintf(w, "No note with id %s; nothing changed.\n", id)
	return true
}

// resolveID expands a unique id prefix (as printed by 'show --ids') to the
// full id. Unknown or ambiguous prefixes are returned unchanged.
func resolveID(store *core.Store, arg string) string {
	if arg == "" {
		return arg
	}
	if _, ok := store.Get(arg); ok {
		return arg
	}
	match := ""
	for _, n := range store.Notes() {
		if len(n.ID) > len(arg) && n.ID[:len(arg)] == arg {
			if match != "" {
				return arg
			}
			match = n.ID
		}
	}
	if match == "" {
		return arg
	}
	return match
}
