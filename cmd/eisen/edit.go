package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/eisen/pkg/core"
)

var (
	editTitle    string
	editBody     string
	editColor    string
	editQuadrant string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change the fields of a note",
	Long: `Edit opens the note, applies the given flags on top of its current
values and saves it. Fields without a flag are left as they are.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		app, store := openStore(ctx)
		defer app.Close()

		id := resolveID(store, args[0])
		session := store.Session()
		if err := session.Begin(id); err != nil {
			reportNotFound(cmd.OutOrStdout(), args[0], err)
			return
		}

		draft, _ := session.Draft()
		flags := cmd.Flags()
		if flags.Changed("title") {
			draft.Title = editTitle
		}
		if flags.Changed("body") {
			draft.Body = editBody
		}
		if flags.Changed("color") {
			draft.Color = core.ResolveColor(editColor)
		}
		if flags.Changed("quadrant") {
			q, err := core.ParseQuadrant(editQuadrant)
			if err != nil {
				fatal("Error", err)
			}
			draft.Quadrant = q
		}
		session.SetDraft(draft)

		if err := session.Submit(ctx); err != nil {
			if reportNotFound(cmd.OutOrStdout(), args[0], err) {
				return
			}
			fatal("Error editing note", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", id)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVarP(&editTitle, "title", "t", "", "New title")
	editCmd.Flags().StringVarP(&editBody, "body", "b", "", "New body")
	editCmd.Flags().StringVarP(&editColor, "color", "c", "", "New color preset or literal color")
	editCmd.Flags().StringVarP(&editQuadrant, "quadrant", "q", "", "New quadrant")
}
