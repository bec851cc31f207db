package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/omdiag/internal/adapters/driving/httpapi"
)

var (
	serveAddr    string
	serveOrigins []string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Serve the assessment over a JSON HTTP API.

Endpoints:
  GET    /health
  GET    /api/dimensions
  POST   /api/score
  POST   /api/report?backend=&glossary=&title=
  POST   /api/sessions
  GET    /api/sessions/{id}
  PUT    /api/sessions/{id}/answers/{dimension}
  GET    /api/sessions/{id}/summary
  GET    /api/sessions/{id}/report
  DELETE /api/sessions/{id}

Report endpoints are rate limited by server.export_rate and
server.export_burst.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from settings)")
	serveCmd.Flags().StringSliceVar(&serveOrigins, "cors-origin", nil, "allowed CORS origin (repeatable, default any)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if reportService == nil || assessmentService == nil {
		return errors.New("services not configured")
	}

	cfg := httpapi.Config{
		Addr:           serveAddr,
		AllowedOrigins: serveOrigins,
	}
	if settingsService != nil {
		settings, err := settingsService.Get()
		if err != nil {
			return fmt.Errorf("failed to get settings: %w", err)
		}
		if cfg.Addr == "" {
			cfg.Addr = settings.Server.Addr
		}
		cfg.ExportRate = settings.Server.ExportRate
		cfg.ExportBurst = settings.Server.ExportBurst
	}

	server, err := httpapi.NewServer(&httpapi.Ports{
		Report:     reportService,
		Assessment: assessmentService,
	}, cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.Printf("HTTP API listening on %s\n", server.Addr())
	return server.Run(ctx)
}
