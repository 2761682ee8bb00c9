package prompts

import (
	"strings"
	"testing"

	"github.com/systune/systune/pkg/sysinfo"
)

func TestBuildTunePromptIncludesReportAndContract(t *testing.T) {
	report := &sysinfo.Report{
		Sections: []sysinfo.Section{
			{Name: "Journal Errors", Content: "oom-killer invoked"},
			{Name: "Memory Info", Content: "Mem: 2Gi"},
		},
	}

	prompt, err := BuildTunePrompt(report)
	if err != nil {
		t.Fatalf("BuildTunePrompt returned error: %v", err)
	}

	for _, want := range []string{
		"Linux performance tuning assistant",
		"oom-killer invoked",
		"Mem: 2Gi",
		`"root_cause"`,
		`"suggestions"`,
		"No issues detected",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildTunePromptDeterministic(t *testing.T) {
	report := &sysinfo.Report{
		Sections: []sysinfo.Section{{Name: "CPU Info", Content: "4 cores"}},
	}

	a, err := BuildTunePrompt(report)
	if err != nil {
		t.Fatalf("BuildTunePrompt returned error: %v", err)
	}
	b, err := BuildTunePrompt(report)
	if err != nil {
		t.Fatalf("BuildTunePrompt returned error: %v", err)
	}
	if a != b {
		t.Fatal("prompt differs for identical reports")
	}
}
