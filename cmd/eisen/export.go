package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/eisen/pkg/persist"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the current board as JSON or YAML",
	Long: `Export prints the notes of the current identity in the snapshot format.
The global --format flag picks JSON (default) or YAML.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		codec, err := persist.CodecFor(firstNonEmpty(formatName, env.Format))
		if err != nil {
			fatal("Error", err)
		}

		ctx := context.Background()
		app, store := openStore(ctx)
		defer app.Close()

		data, err := codec.Encode(store.Notes())
		if err != nil {
			fatal("Error encoding notes", err)
		}

		if exportOutput == "" || exportOutput == "-" {
			if _, err := cmd.OutOrStdout().Write(data); err != nil {
				fatal("Error writing output", err)
			}
			return
		}
		if err := os.WriteFile(exportOutput, data, 0644); err != nil {
			fatal("Error writing output", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default stdout)")
}
