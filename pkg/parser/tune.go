package parser

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/systune/systune/pkg/model"
)

// ParseTuneResponse turns the raw model output into an Analysis. Structured
// JSON is preferred; plain text degrades to one suggestion per non-empty
// line so each distinct recommendation stays individually selectable.
func ParseTuneResponse(raw string) (*model.Analysis, error) {
	cleaned := stripFences(raw)

	var analysis model.Analysis
	if err := json.Unmarshal([]byte(cleaned), &analysis); err != nil {
		return fallbackAnalysis(raw, cleaned), nil
	}
	if analysis.Problem == "" {
		analysis.Problem = "System tuning analysis"
	}
	return &analysis, nil
}

func fallbackAnalysis(raw, cleaned string) *model.Analysis {
	analysis := &model.Analysis{
		Problem:      "System tuning analysis",
		RootCause:    "Analysis completed (see full analysis for details)",
		Severity:     "medium",
		FullAnalysis: raw,
	}

	if noIssues(cleaned) {
		analysis.RootCause = strings.TrimSpace(cleaned)
		analysis.Severity = "low"
		return analysis
	}

	for _, line := range strings.Split(cleaned, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, "-*• \t"))
		if line == "" {
			continue
		}
		analysis.Suggestions = append(analysis.Suggestions, model.Suggestion{
			Priority: "medium",
			Action:   line,
		})
	}

	return analysis
}

func noIssues(text string) bool {
	t := strings.ToLower(strings.TrimSpace(text))
	return strings.HasPrefix(t, "no issues detected") || strings.HasPrefix(t, "no errors found")
}

// stripFences removes markdown code fences such as ```json ... ``` so JSON can be parsed
func stripFences(text string) string {
	re := regexp.MustCompile("```[a-zA-Z]*\n|```")
	return strings.TrimSpace(re.ReplaceAllString(text, ""))
}
