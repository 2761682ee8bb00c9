package cmd

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/systune/systune/pkg/advisor"
	"github.com/systune/systune/pkg/config"
	"github.com/systune/systune/pkg/formatter"
	"github.com/systune/systune/pkg/llm"
	"github.com/systune/systune/pkg/remedy"
	"github.com/systune/systune/pkg/sysinfo"
)

var (
	tuneProvider     string
	tuneModel        string
	tuneOutputFormat string
	tuneNoMenu       bool
	tuneLogLines     int
)

func NewTuneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tune",
		Short: "Collect diagnostics, get AI tuning suggestions, optionally apply fixes",
		Long: `Gather hardware, kernel, and log diagnostics from this machine, send the
report to an AI model for tuning suggestions, and offer a menu of
recognized remediation actions.

Examples:
  # Full run with the default provider (OpenAI)
  systune tune

  # Use Claude and skip the remediation menu
  systune tune --provider claude --no-menu

  # Machine-readable analysis
  systune tune -o json --no-menu`,
		Args: cobra.NoArgs,
		RunE: runTune,
	}

	cmd.Flags().StringVar(&tuneProvider, "provider", "", "LLM provider (openai, claude). Defaults to auto-detect from env")
	cmd.Flags().StringVar(&tuneModel, "model", "", "LLM model to use (overrides default)")
	cmd.Flags().StringVarP(&tuneOutputFormat, "output", "o", "human", "Output format (human, json, yaml)")
	cmd.Flags().BoolVar(&tuneNoMenu, "no-menu", false, "Skip the interactive remediation menu")
	cmd.Flags().IntVar(&tuneLogLines, "log-lines", sysinfo.DefaultLogLines, "Maximum journal lines to collect")

	return cmd
}

func runTune(cmd *cobra.Command, args []string) error {
	// Resolve credentials before doing any work.
	settings, err := config.Load(tuneProvider, tuneModel)
	if err != nil {
		return err
	}

	printTuneHeader(settings)

	// Create spinner for visual feedback
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	s.Suffix = " Gathering system diagnostics..."
	s.Start()

	runner := sysinfo.ExecRunner{}
	collector := sysinfo.New(runner, sysinfo.WithLogLines(tuneLogLines))
	report := collector.Collect(cmd.Context())

	s.Stop()
	printSuccess(fmt.Sprintf("Collected %d diagnostic sections", len(report.Sections)))

	llmClient, err := settings.NewClient()
	if err != nil {
		return fmt.Errorf("failed to initialize LLM client: %w", err)
	}
	printLLMInfo(llmClient)

	s.Suffix = " Querying AI for tuning suggestions..."
	s.Start()

	analysis, err := advisor.New(llmClient).Advise(report)
	if err != nil {
		s.Stop()
		return fmt.Errorf("AI analysis failed: %w", err)
	}

	s.Stop()
	printSuccess("Analysis complete")

	if err := formatter.DisplayResults(analysis, tuneOutputFormat); err != nil {
		return err
	}

	if tuneNoMenu || tuneOutputFormat != "human" {
		return nil
	}

	fmt.Println()
	presenter := remedy.NewPresenter(runner)
	return presenter.Offer(cmd.Context(), analysis.Suggestions)
}

func printTuneHeader(settings *config.Settings) {
	cyan := color.New(color.FgCyan, color.Bold)
	fmt.Println()
	cyan.Println("🩺 Linux AI Tuning Assistant")
	fmt.Printf("📡 Provider: %s\n", settings.Provider)
	fmt.Println()
}

func printLLMInfo(client llm.LLM) {
	fmt.Printf("🤖 Model: %s (%s)\n", client.Model(), client.Provider())
}

func printSuccess(msg string) {
	green := color.New(color.FgGreen)
	green.Printf("✓ %s\n", msg)
}
