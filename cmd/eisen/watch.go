package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/eisen"
	"github.com/aretw0/eisen/internal/render"
	"github.com/aretw0/eisen/pkg/core"
	"github.com/aretw0/eisen/pkg/persist"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Redraw the matrix whenever the board changes (fs adapter)",
	Long: `Watch draws the matrix and redraws it each time another eisen process
changes the current board or switches identity. Stop it with Ctrl+C.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		app, store := openStore(ctx)
		defer app.Close()

		watchable, ok := app.Storage.(core.Watchable)
		if !ok {
			fatal("Error", errors.New("watch needs the fs adapter"))
		}
		events, err := watchable.Watch(ctx)
		if err != nil {
			fatal("Error starting watcher", err)
		}

		out := cmd.OutOrStdout()
		draw(out, app.Identity(), store)
		for e := range events {
			if !refresh(ctx, app, e) {
				continue
			}
			store, _ = app.Store()
			draw(out, app.Identity(), store)
		}
	},
}

// refresh applies e to the board and reports whether the view changed.
func refresh(ctx context.Context, app *eisen.App, e core.Event) bool {
	switch e.Key {
	case persist.SnapshotKey(app.Identity()):
		slog.Debug("board changed", "event", e.String())
		app.Reload(ctx)
		return true
	case persist.LastIdentityKey:
		prev := app.Identity()
		if !app.Resume(ctx) || app.Identity() == prev {
			return false
		}
		slog.Debug("identity changed", "from", prev, "to", app.Identity())
		return true
	default:
		return false
	}
}

func draw(w io.Writer, identity string, store *core.Store) {
	// Clear the screen and home the cursor.
	fmt.Fprint(w, "\033[H\033[2J")
	fmt.Fprintf(w, "%s (%d notes)\n", identity, store.Len())
	fmt.Fprintln(w, render.Matrix(store.Matrix(), render.Options{}))
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
