package cmd

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"github.com/systune/systune/pkg/formatter"
	"github.com/systune/systune/pkg/sysinfo"
)

var (
	reportOutputFormat string
	reportLogLines     int
)

func NewReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Collect and display system diagnostics without AI analysis",
		Long: `Gather the same hardware, kernel, and log diagnostics as 'systune tune'
and print them locally. No network call is made.

Examples:
  # Human-readable report
  systune report

  # Machine-readable report
  systune report -o json`,
		Args: cobra.NoArgs,
		RunE: runReport,
	}

	cmd.Flags().StringVarP(&reportOutputFormat, "output", "o", "human", "Output format (human, json, yaml)")
	cmd.Flags().IntVar(&reportLogLines, "log-lines", sysinfo.DefaultLogLines, "Maximum journal lines to collect")

	return cmd
}

func runReport(cmd *cobra.Command, args []string) error {
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	s.Suffix = " Gathering system diagnostics..."
	s.Start()

	collector := sysinfo.New(sysinfo.ExecRunner{}, sysinfo.WithLogLines(reportLogLines))
	report := collector.Collect(cmd.Context())

	s.Stop()
	printSuccess(fmt.Sprintf("Collected %d diagnostic sections", len(report.Sections)))

	return formatter.DisplayReport(report, reportOutputFormat)
}
