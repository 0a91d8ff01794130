package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/eisen/internal/platform"
)

var (
	verbose     bool
	dataDir     string
	adapterName string
	formatName  string
	versioned   bool

	env platform.Env
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "eisen",
	Short: "Sort notes into an Eisenhower matrix",
	Long: `Eisen keeps short notes in the four quadrants of an Eisenhower matrix
(urgent/important). Each identity has its own board, stored locally.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		env = platform.LoadEnv()

		level := env.Level()
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dataDir, "dir", "", "Data directory (default $EISEN_HOME, a .eisen dir above the working dir, or ~/.config/eisen)")
	rootCmd.PersistentFlags().StringVar(&adapterName, "adapter", "", "Storage adapter: fs, sqlite or memory (default $EISEN_ADAPTER or fs)")
	rootCmd.PersistentFlags().StringVar(&formatName, "format", "", "Snapshot format: json or yaml (default $EISEN_FORMAT or json)")
	rootCmd.PersistentFlags().BoolVar(&versioned, "git", false, "Commit every change to a git repository in the data directory (fs only)")
}
