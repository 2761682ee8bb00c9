package remedy

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/systune/systune/pkg/model"
	"github.com/systune/systune/pkg/sysinfo"
)

// StepTimeout bounds each remediation command.
const StepTimeout = 30 * time.Second

// Presenter renders the remediation menu and applies the chosen action.
// Input and output are injectable so the prompt loop is testable.
type Presenter struct {
	in     io.Reader
	out    io.Writer
	runner sysinfo.Runner
}

func NewPresenter(runner sysinfo.Runner) *Presenter {
	return &Presenter{in: os.Stdin, out: os.Stdout, runner: runner}
}

func NewPresenterIO(runner sysinfo.Runner, in io.Reader, out io.Writer) *Presenter {
	return &Presenter{in: in, out: out, runner: runner}
}

// Offer shows one numbered menu entry per suggestion plus a skip entry,
// reads the user's choice, and applies the matched catalog action exactly
// once. Suggestions without a recognized action are shown for manual
// review. With no suggestions there is nothing to offer and Offer returns
// immediately without prompting.
func (p *Presenter) Offer(ctx context.Context, suggestions []model.Suggestion) error {
	if len(suggestions) == 0 {
		return nil
	}

	cyan := color.New(color.FgCyan, color.Bold)
	cyan.Fprintln(p.out, "🔧 REMEDIATION MENU:")
	for i, s := range suggestions {
		label := "manual review"
		if action, ok := Match(s); ok {
			label = "auto-fix: " + action.Title
		}
		fmt.Fprintf(p.out, "   %d. %s [%s]\n", i+1, s.Action, label)
	}
	fmt.Fprintf(p.out, "   0. Skip\n")

	choice, err := p.readChoice(len(suggestions))
	if err != nil {
		return err
	}
	if choice == 0 {
		fmt.Fprintln(p.out, "Skipping remediation.")
		return nil
	}

	selected := suggestions[choice-1]
	action, ok := Match(selected)
	if !ok {
		fmt.Fprintf(p.out, "No automatic action for this suggestion. Apply it manually:\n   %s\n", selected.Action)
		if selected.Explanation != "" {
			fmt.Fprintf(p.out, "   Why: %s\n", selected.Explanation)
		}
		return nil
	}

	p.apply(ctx, action)
	return nil
}

func (p *Presenter) readChoice(max int) (int, error) {
	scanner := bufio.NewScanner(p.in)
	for {
		fmt.Fprintf(p.out, "Select an option [0-%d]: ", max)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, fmt.Errorf("read choice: %w", err)
			}
			// EOF counts as skip.
			return 0, nil
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" || strings.EqualFold(input, "q") {
			return 0, nil
		}
		n, err := strconv.Atoi(input)
		if err != nil || n < 0 || n > max {
			fmt.Fprintf(p.out, "Invalid choice %q.\n", input)
			continue
		}
		return n, nil
	}
}

// apply runs the action's steps in order and stops at the first failure.
// Failures (permission denied included) are reported, never retried, and
// the remaining steps are not run.
func (p *Presenter) apply(ctx context.Context, action Action) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	fmt.Fprintf(p.out, "Applying: %s\n", action.Title)
	for _, step := range action.Steps {
		stepCtx, cancel := context.WithTimeout(ctx, StepTimeout)
		_, err := p.runner.Run(stepCtx, step.Name, step.Args...)
		cancel()
		if err != nil {
			red.Fprintf(p.out, "✗ %s failed: %v\n", step, err)
			fmt.Fprintln(p.out, "Remaining steps skipped. This action may require root privileges.")
			return
		}
		green.Fprintf(p.out, "✓ %s\n", step)
	}
	green.Fprintf(p.out, "✓ %s applied\n", action.Title)
}
