package main

import (
	"context"
	"encoding/json"

	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Print the internal state of the board and its storage as JSON",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		app := openApp(ctx)
		defer app.Close()
		app.Resume(ctx)

		out := map[string]any{
			app.ComponentType(): app.State(),
		}
		if c, ok := app.Storage.(introspection.Component); ok {
			if i, ok := app.Storage.(introspection.Introspectable); ok {
				out[c.ComponentType()] = i.State()
			}
		}

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(out); err != nil {
			fatal("Error encoding JSON", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(stateCmd)
}
