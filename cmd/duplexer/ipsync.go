package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/printworks/duplexer/internal/config"
	"github.com/printworks/duplexer/internal/ipsync"
)

var ipsyncEndpoint string

var ipsyncCmd = &cobra.Command{
	Use:   "ipsync",
	Short: "Publish the host's IP address to a remote endpoint",
	Long: `Ipsync resolves the host's outbound IP address and POSTs it as JSON
to the configured endpoint, retrying transient failures.

The endpoint comes from the config file (ipsync.endpoint) or the
--endpoint flag.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))

		cm, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		cfg := cm.Get()

		endpoint := ipsyncEndpoint
		if endpoint == "" {
			endpoint = cfg.IPSync.Endpoint
		}

		report, err := ipsync.Publish(cmd.Context(), ipsync.Config{
			Endpoint: endpoint,
			Attempts: cfg.IPSync.Attempts,
			Logger:   logger,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Published %s for %s\n", report.IP, report.Host)
		return nil
	},
}

func init() {
	ipsyncCmd.Flags().StringVar(&ipsyncEndpoint, "endpoint", "", "endpoint URL (default: from config)")

	rootCmd.AddCommand(ipsyncCmd)
}
