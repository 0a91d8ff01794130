package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/eisen/pkg/core"
)

var moveCmd = &cobra.Command{
	Use:   "move <id> <quadrant>",
	Short: "Move a note to another quadrant",
	Long: `Move reassigns a note to Q1, Q2, Q3 or Q4. The note keeps its place
relative to the other notes.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		q, err := core.ParseQuadrant(args[1])
		if err != nil {
			fatal("Error", err)
		}

		ctx := context.Background()
		app, store := openStore(ctx)
		defer app.Close()

		id := resolveID(store, args[0])
		if err := store.Move(ctx, id, q); err != nil {
			if reportNotFound(cmd.OutOrStdout(), args[0], err) {
				return
			}
			fatal("Error moving note", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Moved %s to %s\n", id, q.Label())
	},
}

func init() {
	rootCmd.AddCommand(moveCmd)
}
