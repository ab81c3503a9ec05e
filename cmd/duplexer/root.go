package main

import (
	"github.com/spf13/cobra"

	"github.com/printworks/duplexer/internal/api"
	"github.com/printworks/duplexer/internal/server/endpoints"
	"github.com/printworks/duplexer/version"
)

var (
	cfgFile   string
	homeDir   string
	serverURL string
)

var rootCmd = &cobra.Command{
	Use:   "duplexer",
	Short: "Prepare PDFs for manual duplex printing",
	Long: `Duplexer prepares PDFs for printing on single-sided printers.

The batch pipeline cleans a directory of PDFs (strip first/last page,
insert a title page, pad to even page counts), merges everything into a
single sequence, splits it into fixed-size batches, and reorders each
batch so it can be printed in two passes: fronts in reverse order, then
backs rotated 180 degrees after flipping the stack.

The serve command runs a local web form for one-off per-file transforms.`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.duplexer/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "duplexer home directory (default: ~/.duplexer)",
	)

	// API commands call a running server over HTTP.
	registry := api.NewRegistry()
	for _, ep := range endpoints.All(endpoints.Config{}) {
		registry.Register(ep)
	}
	apiCmd := registry.BuildCommands(func() string { return serverURL })
	apiCmd.PersistentFlags().StringVar(
		&serverURL, "server", "http://127.0.0.1:8080", "URL of the running duplexer server",
	)

	rootCmd.AddCommand(apiCmd)
	rootCmd.AddCommand(versionCmd)
}
