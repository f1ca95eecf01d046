package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"spacex-dashboard/dashboard"
	"spacex-dashboard/tui"
	"spacex-dashboard/utils"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run the dashboard in the terminal",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func runTUI(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := bootstrap(ctx, logger)
	if err != nil {
		return err
	}

	// The screen belongs to tview from here on.
	quiet := utils.NewDiscardLogger()
	binding := dashboard.NewBinding(s.dataset, dashboard.DefaultRegistry(s.views), quiet)

	tui.SetupTheme(s.theme)
	return tui.New(binding, quiet).Run(ctx)
}
