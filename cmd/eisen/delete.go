package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a note",
	Long:  `Delete removes a note after confirmation. Pass --yes to skip the prompt.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		app, store := openStore(ctx)
		defer app.Close()

		id := resolveID(store, args[0])
		n, ok := store.Get(id)
		if !ok {
			fmt.Fprintf(cmd.OutOrStdout(), "No note with id %s; nothing changed.\n", args[0])
			return
		}

		if !deleteYes && !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("Delete %q?", n.Title)) {
			fmt.Fprintln(cmd.OutOrStdout(), "Kept.")
			return
		}

		if err := store.Delete(ctx, id); err != nil {
			reportNotFound(cmd.OutOrStdout(), args[0], err)
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", id)
	},
}

// confirm asks a yes/no question; anything but y/yes means no.
func confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N] ", question)
	line, _ := bufio.NewReader(in).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Delete without asking")
}
