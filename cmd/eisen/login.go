package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login <identity>",
	Short: "Switch to the board of an identity",
	Long: `Login selects the identity whose notes the other commands work on.
The identity is a plain label; nothing is authenticated. A new identity
starts with four sample notes.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		app := openApp(ctx)
		defer app.Close()

		if !app.SignIn(ctx, strings.Join(args, " ")) {
			fatal("Error", errors.New("identity cannot be empty"))
		}
		store, _ := app.Store()
		fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (%d notes)\n", app.Identity(), store.Len())
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the current identity (its notes are kept)",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		app := openApp(ctx)
		defer app.Close()

		app.Resume(ctx)
		who := app.Identity()
		app.SignOut(ctx)
		if who == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "Not signed in.")
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Signed out %s\n", who)
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Print the current identity",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		app := openApp(ctx)
		defer app.Close()

		if !app.Resume(ctx) {
			fatal("Error", errNotSignedIn)
		}
		fmt.Fprintln(cmd.OutOrStdout(), app.Identity())
	},
}

func init() {
	rootCmd.AddCommand(loginCmd, logoutCmd, whoamiCmd)
}
