package main

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"spacex-dashboard/dashboard"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard over HTTP",
	Long: `Serves the dashboard page on LISTEN_ADDR (default 127.0.0.1:8050).
The page loads Plotly.js from its CDN; chart data is computed in-process.
SIGINT or SIGTERM shuts the server down gracefully.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := bootstrap(ctx, logger)
	if err != nil {
		return err
	}

	srv, err := dashboard.NewServer(s.dataset, dashboard.DefaultRegistry(s.views), s.theme, logger)
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", s.cfg.ListenAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.cfg.ListenAddr, err)
	}

	logger.Info("=== SpaceX Launch Records Dashboard on http://%s ===", ln.Addr())
	if err := srv.Serve(ctx, ln); err != nil {
		return err
	}
	logger.Info("Dashboard stopped")
	return nil
}
