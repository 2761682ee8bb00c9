package prompts

import (
	"encoding/json"
	"fmt"

	"github.com/systune/systune/pkg/sysinfo"
)

// knownCategories are the suggestion categories the remediation menu can act
// on; the model is told to use them so matching stays simple.
var knownCategories = []string{"swap", "journal", "trim", "swappiness", "other"}

func BuildTunePrompt(report *sysinfo.Report) (string, error) {
	reportJSON, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}

	categoriesJSON, err := json.Marshal(knownCategories)
	if err != nil {
		return "", fmt.Errorf("marshal categories: %w", err)
	}

	return fmt.Sprintf(`You are a Linux performance tuning assistant. Given the following system
details and recent error logs, suggest optimizations. If anything looks
critical or unstable, flag it clearly.

System Report:
%s

Please analyze this host and provide:
1. The most likely root cause of any problems visible in the logs
2. Specific issues found in the hardware/software configuration
3. Concise, actionable tuning suggestions
4. If possible, a single quick-fix command

Respond in JSON format with this structure:
{
  "root_cause": "Brief explanation of the root cause, or 'No issues detected'",
  "severity": "low|medium|high|critical",
  "issues": [
    {
      "component": "subsystem (e.g. memory, disk, kernel)",
      "severity": "low|medium|high|critical",
      "description": "what's wrong",
      "evidence": "specific log line or value"
    }
  ],
  "suggestions": [
    {
      "priority": "high|medium|low",
      "category": "one of %s",
      "action": "what to do",
      "command": "shell command if applicable",
      "explanation": "why this helps"
    }
  ],
  "quick_fix": "single shell command for immediate relief if possible",
  "full_analysis": "detailed explanation of the findings"
}

If the logs show no errors and the hardware looks healthy, return an empty
suggestions array and set root_cause to "No issues detected". Be concise but
thorough.`, string(reportJSON), string(categoriesJSON)), nil
}
