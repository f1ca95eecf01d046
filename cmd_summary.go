package main

import (
	"github.com/spf13/cobra"

	"spacex-dashboard/services"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print an overview of the launch records",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func runSummary(cmd *cobra.Command, _ []string) error {
	s, err := bootstrap(cmd.Context(), logger)
	if err != nil {
		return err
	}

	insights := services.NewInsightService(logger)
	insights.Print(cmd.OutOrStdout(), insights.Generate(s.dataset))
	return nil
}
