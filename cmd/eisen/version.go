package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/eisen"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of eisen",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "eisen version %s\n", strings.TrimSpace(eisen.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
