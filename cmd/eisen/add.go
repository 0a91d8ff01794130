package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/eisen/pkg/core"
)

var (
	addTitle    string
	addBody     string
	addColor    string
	addQuadrant string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a note to the front of a quadrant",
	Example: `  eisen add --title "Pay bills" --body "Due today" --quadrant Q1
  eisen add --title "Gym" --quadrant q2 --color study`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		q, err := core.ParseQuadrant(addQuadrant)
		if err != nil {
			fatal("Error", err)
		}

		ctx := context.Background()
		app, store := openStore(ctx)
		defer app.Close()

		n, err := store.Create(ctx, core.Fields{
			Title:    addTitle,
			Body:     addBody,
			Color:    core.ResolveColor(addColor),
			Quadrant: q,
		})
		if err != nil {
			fatal("Error adding note", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added %s to %s\n", n.ID, n.Quadrant.Label())
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addTitle, "title", "t", "", "Note title (required)")
	addCmd.Flags().StringVarP(&addBody, "body", "b", "", "Note body")
	addCmd.Flags().StringVarP(&addColor, "color", "c", "", "Color preset (home, work, study, business) or literal color")
	addCmd.Flags().StringVarP(&addQuadrant, "quadrant", "q", string(core.Q1), "Quadrant: Q1, Q2, Q3 or Q4")
}
