package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/printworks/duplexer/internal/config"
	"github.com/printworks/duplexer/internal/server"
)

var (
	serveHost string
	servePort string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the duplexer web form",
	Long: `Start the duplexer HTTP server.

The server provides:
  - /        - Web form for one-off PDF transforms
  - /process - Multipart upload endpoint backing the form
  - /health  - Basic server health check

Configuration changes are picked up without a restart.

Examples:
  duplexer serve                 # Start on default port 8080
  duplexer serve --port 3000     # Start on custom port
  duplexer serve --host 0.0.0.0  # Bind to all interfaces`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))

		cm, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		cm.WatchConfig()
		cfg := cm.Get()

		host := serveHost
		if host == "" {
			host = cfg.Server.Host
		}
		port := servePort
		if port == "" {
			port = cfg.Server.Port
		}

		srv, err := server.New(server.Config{
			Host:          host,
			Port:          port,
			MaxUploadMB:   cfg.Server.MaxUploadMB,
			ConfigManager: cm,
			Logger:        logger,
		})
		if err != nil {
			return err
		}

		// Start server (blocks until shutdown)
		return srv.Start(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "host to bind to (default: from config, 127.0.0.1)")
	serveCmd.Flags().StringVar(&servePort, "port", "", "port to listen on (default: from config, 8080)")

	rootCmd.AddCommand(serveCmd)
}
