package main

import (
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "spacex-dashboard",
	Short: "Interactive SpaceX launch records dashboard",
	Long: "Loads the launch records once and serves a site dropdown, a payload range\n" +
		"slider, a success pie chart and a payload/outcome scatter chart.",
	Args:          cobra.NoArgs,
	RunE:          runServe,
	SilenceErrors: true,
	SilenceUsage:  true,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.Version = version
}
