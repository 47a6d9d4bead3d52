package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zoocast/catalog-api/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "catalog-api",
	Short: "Zoo Catalog API server",
	Long: `Zoo Catalog API - RSS catalog backend for the Zoo Telegram Mini App

The server fetches the configured podcast RSS feed on demand and serves
it as a catalog grouped by media type, year and month, ready to be
consumed by the Mini App front end.

Features:
  • RSS feed fetching and normalization
  • Audio/video catalog grouped by year and month
  • Telegram bot that opens the Mini App from /start`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	// Set up configuration loading with lazy initialization
	cobra.OnInitialize(loadConfig)
}

// loadConfig loads the configuration when a command needs it
// This is called lazily only when a command that needs config runs
func loadConfig() {
	// Skip config loading for commands that don't need it
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}
