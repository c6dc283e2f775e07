package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/bukkenlabs/bukken/internal/config"
	"github.com/bukkenlabs/bukken/internal/server"
)

var (
	serveHost string
	servePort string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the bukken server",
	Long: `Start the bukken HTTP server.

The server refuses to start when no enabled LLM provider resolves an
API key (e.g. GEMINI_API_KEY is unset).

The server provides:
  - /              - Landing page
  - /extract-data/ - PDF upload and field extraction
  - /health        - Health check

Examples:
  bukken serve                   # Start on default port 8080
  bukken serve --port 3000       # Start on custom port
  bukken serve --host 0.0.0.0    # Bind to all interfaces`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Set up logger
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))

		// Load configuration with hot reload
		cfgMgr, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		cfgMgr.WatchConfig()

		// Flags win over the config file's server section.
		host := cfgMgr.Get().Server.Host
		port := cfgMgr.Get().Server.Port
		if cmd.Flags().Changed("host") {
			host = serveHost
		}
		if cmd.Flags().Changed("port") {
			port = servePort
		}

		srv, err := server.New(server.Config{
			Host:          host,
			Port:          port,
			ConfigManager: cfgMgr,
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
	serveCmd.Flags().StringVar(&serveHost, "host", "127.0.0.1", "Host to bind to")
	serveCmd.Flags().StringVar(&servePort, "port", "8080", "Port to listen on")

	rootCmd.AddCommand(serveCmd)
}
