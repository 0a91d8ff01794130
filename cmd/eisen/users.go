package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	usersMatch string
	usersRmYes bool
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List identities with stored notes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		app := openApp(ctx)
		defer app.Close()

		app.Resume(ctx)
		current := app.Identity()

		ids, err := app.Persist.Identities(ctx, usersMatch)
		if err != nil {
			fatal("Error listing identities", err)
		}
		for _, id := range ids {
			marker := " "
			if id == current {
				marker = "*"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, id)
		}
	},
}

var usersRmCmd = &cobra.Command{
	Use:   "rm <identity>",
	Short: "Delete every note of an identity",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		app := openApp(ctx)
		defer app.Close()

		id := args[0]
		if !usersRmYes && !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("Delete all notes of %q?", id)) {
			fmt.Fprintln(cmd.OutOrStdout(), "Kept.")
			return
		}
		if err := app.Persist.Forget(ctx, id); err != nil {
			fatal("Error", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed notes of %s\n", id)
	},
}

func init() {
	rootCmd.AddCommand(usersCmd)
	usersCmd.AddCommand(usersRmCmd)
	usersCmd.Flags().StringVar(&usersMatch, "match", "", "Only list identities matching a glob")
	usersRmCmd.Flags().BoolVarP(&usersRmYes, "yes", "y", false, "Delete without asking")
}
