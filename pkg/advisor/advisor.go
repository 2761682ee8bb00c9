package advisor

import (
	"fmt"

	"github.com/systune/systune/pkg/llm"
	"github.com/systune/systune/pkg/model"
	"github.com/systune/systune/pkg/parser"
	"github.com/systune/systune/pkg/prompts"
	"github.com/systune/systune/pkg/sysinfo"
)

// Advisor sends one system report to the configured model and parses the
// returned suggestions. There is no retry: a failed call fails the stage.
type Advisor struct {
	llm llm.LLM
}

func New(l llm.LLM) *Advisor {
	return &Advisor{llm: l}
}

func (a *Advisor) Advise(report *sysinfo.Report) (*model.Analysis, error) {
	prompt, err := prompts.BuildTunePrompt(report)
	if err != nil {
		return nil, err
	}

	rawResp, err := a.llm.Chat(prompt)
	if err != nil {
		return nil, fmt.Errorf("LLM chat: %w", err)
	}

	return parser.ParseTuneResponse(rawResp)
}
