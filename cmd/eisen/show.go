package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/eisen/internal/render"
)

var (
	showIDs   bool
	showWidth int
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Draw the matrix",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		app, store := openStore(ctx)
		defer app.Close()

		fmt.Fprintln(cmd.OutOrStdout(), render.Matrix(store.Matrix(), render.Options{
			CellWidth: showWidth,
			ShowIDs:   showIDs,
		}))
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showIDs, "ids", false, "Print a short id under each note")
	showCmd.Flags().IntVar(&showWidth, "width", 0, "Inner width of each quadrant")
}
