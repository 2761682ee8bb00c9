package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/systune/systune/cmd"
)

var (
	version = "v0.1.0" // Overwritten at build time
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "systune",
		Short: "AI-assisted Linux diagnostics and tuning",
		Long: `systune gathers hardware, kernel, and log diagnostics from the local
machine, asks an AI model for tuning suggestions, and offers a menu of
recognized remediation actions you can apply after review.`,
		SilenceUsage: true,
	}

	// Disable automatic 'completion' command added by cobra
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Add subcommands
	rootCmd.AddCommand(
		cmd.NewTuneCmd(),
		cmd.NewReportCmd(),
		cmd.NewActionsCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("systune version %s\n", version)
		},
	}
}
