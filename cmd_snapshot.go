package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"spacex-dashboard/config"
	"spacex-dashboard/dashboard"
	"spacex-dashboard/snapshot"
	"spacex-dashboard/utils"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Write a screenshot of every site view",
	Long: `Starts the dashboard on a loopback port and captures one full-page PNG per
dropdown option into SNAPSHOT_DIR using headless Chrome (CHROME_BIN, or the
first Chrome/Chromium found on PATH).`,
	Args: cobra.NoArgs,
	RunE: runSnapshot,
}

func runSnapshot(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := bootstrap(ctx, logger)
	if err != nil {
		return err
	}

	// Request logs of the embedded server are only useful when debugging.
	serverLog := utils.NewDiscardLogger()
	if s.cfg.Debug {
		serverLog = logger
	}
	srv, err := dashboard.NewServer(s.dataset, dashboard.DefaultRegistry(s.views), s.theme, serverLog)
	if err != nil {
		return err
	}

	results, err := snapshot.New(s.cfg, srv, logger).Run(ctx, snapshot.DefaultTargets())
	printSnapshotResults(cmd, s.cfg, results)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	return nil
}

func printSnapshotResults(cmd *cobra.Command, cfg *config.Config, results []snapshot.Result) {
	out := cmd.OutOrStdout()
	ok := 0
	for _, r := range results {
		if r.Err == nil {
			ok++
			fmt.Fprintf(out, "  %-14s %s\n", r.Target.Site, r.Path)
		}
	}
	fmt.Fprintf(out, "\n  %d/%d snapshots written to %s\n", ok, len(results), cfg.SnapshotDir)
}
