package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/eisen/pkg/adapters/fs"
	"github.com/aretw0/eisen/pkg/persist"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the commits of the current board (fs adapter with --git)",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		app, _ := openStore(ctx)
		defer app.Close()

		storage, ok := app.Storage.(*fs.Storage)
		if !ok {
			fatal("Error", errors.New("history needs the fs adapter"))
		}
		entries, err := storage.History(ctx, persist.SnapshotKey(app.Identity()), historyLimit)
		if err != nil {
			fatal("Error reading history", err)
		}
		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No history (enable it with --git).")
			return
		}
		for _, e := range entries {
			fmt.Fprintln(cmd.OutOrStdout(), e)
		}
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of entries")
}
