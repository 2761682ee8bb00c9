package parser

import (
	"testing"
)

func TestParseTuneResponseJSON(t *testing.T) {
	raw := `{
  "root_cause": "Swap exhausted under load",
  "severity": "high",
  "issues": [
    {"component": "memory", "severity": "high", "description": "no swap configured"}
  ],
  "suggestions": [
    {"priority": "high", "category": "swap", "action": "Add a swap file", "explanation": "avoids OOM kills"}
  ],
  "full_analysis": "details"
}`

	analysis, err := ParseTuneResponse(raw)
	if err != nil {
		t.Fatalf("ParseTuneResponse returned error: %v", err)
	}
	if analysis.RootCause != "Swap exhausted under load" {
		t.Fatalf("RootCause = %q", analysis.RootCause)
	}
	if len(analysis.Suggestions) != 1 || analysis.Suggestions[0].Category != "swap" {
		t.Fatalf("Suggestions = %+v", analysis.Suggestions)
	}
}

func TestParseTuneResponseStripsFences(t *testing.T) {
	raw := "```json\n{\"root_cause\": \"ok\", \"severity\": \"low\"}\n```"

	analysis, err := ParseTuneResponse(raw)
	if err != nil {
		t.Fatalf("ParseTuneResponse returned error: %v", err)
	}
	if analysis.RootCause != "ok" {
		t.Fatalf("RootCause = %q; fences not stripped", analysis.RootCause)
	}
}

func TestParseTuneResponsePlainTextYieldsOneSuggestionPerLine(t *testing.T) {
	raw := "- Add swap space\n- Vacuum the journal\n\n- Enable fstrim"

	analysis, err := ParseTuneResponse(raw)
	if err != nil {
		t.Fatalf("ParseTuneResponse returned error: %v", err)
	}
	if len(analysis.Suggestions) != 3 {
		t.Fatalf("got %d suggestions, want 3: %+v", len(analysis.Suggestions), analysis.Suggestions)
	}
	want := []string{"Add swap space", "Vacuum the journal", "Enable fstrim"}
	for i, w := range want {
		if analysis.Suggestions[i].Action != w {
			t.Fatalf("suggestion %d = %q, want %q", i, analysis.Suggestions[i].Action, w)
		}
	}
	if analysis.FullAnalysis != raw {
		t.Fatalf("FullAnalysis should keep the raw text")
	}
}

func TestParseTuneResponseNoIssuesHasNoSuggestions(t *testing.T) {
	for _, raw := range []string{"No issues detected", "no errors found in the logs"} {
		analysis, err := ParseTuneResponse(raw)
		if err != nil {
			t.Fatalf("ParseTuneResponse(%q) returned error: %v", raw, err)
		}
		if len(analysis.Suggestions) != 0 {
			t.Fatalf("ParseTuneResponse(%q) produced suggestions: %+v", raw, analysis.Suggestions)
		}
	}
}
