package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/aretw0/eisen/pkg/core"
)

var (
	listJSON     bool
	listQuadrant string
	listMatch    string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes in collection order",
	Example: `  eisen list --quadrant Q2
  eisen list --match "*bill*" --json`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if listMatch != "" && !doublestar.ValidatePattern(listMatch) {
			fatal("Error", fmt.Errorf("%w: %q", doublestar.ErrBadPattern, listMatch))
		}

		ctx := context.Background()
		app, store := openStore(ctx)
		defer app.Close()

		notes := store.Notes()
		if listQuadrant != "" {
			q, err := core.ParseQuadrant(listQuadrant)
			if err != nil {
				fatal("Error", err)
			}
			notes = core.Partition(notes, q)
		}
		if listMatch != "" {
			notes = matchTitles(notes, listMatch)
		}

		if listJSON {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			if notes == nil {
				notes = []core.Note{}
			}
			if err := encoder.Encode(notes); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}

		for _, n := range notes {
			line := fmt.Sprintf("%s %s %s", n.Quadrant, n.ID, n.Title)
			if n.Body != "" {
				line += " - " + n.Body
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
	},
}

// matchTitles keeps the notes whose lowercased title matches the glob.
func matchTitles(notes []core.Note, pattern string) []core.Note {
	pattern = strings.ToLower(pattern)
	var out []core.Note
	for _, n := range notes {
		if ok, _ := doublestar.Match(pattern, strings.ToLower(n.Title)); ok {
			out = append(out, n)
		}
	}
	return out
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVarP(&listQuadrant, "quadrant", "q", "", "Only list one quadrant")
	listCmd.Flags().StringVar(&listMatch, "match", "", "Only list titles matching a glob (case-insensitive)")
}
