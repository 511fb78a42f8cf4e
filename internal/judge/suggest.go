package judge

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dedshivam/code4edutech/internal/llm"
	"github.com/dedshivam/code4edutech/internal/prompts"
	"github.com/dedshivam/code4edutech/internal/types"
)

// maxSuggestions caps the suggestion list; the service is asked for 3-5.
const maxSuggestions = 5

// fallbackSuggestions is the fixed list returned when the reasoning
// service is unavailable or fails. Generic, but still actionable.
var fallbackSuggestions = []string{
	"Consider acquiring the missing technical skills identified in the analysis",
	"Highlight relevant project experience more prominently",
	"Add specific metrics and achievements to demonstrate impact",
}

type suggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

// Suggest produces actionable, candidate-facing improvement suggestions
// grounded in the evaluation gaps. The result is never empty.
func (j *Judge) Suggest(ctx context.Context, judgment types.SemanticJudgment, reqs *types.JobRequirements, missingSkills []string) []string {
	if j.client == nil {
		return append([]string(nil), fallbackSuggestions...)
	}

	prompt := buildSuggestPrompt(judgment, reqs, missingSkills)

	raw, err := j.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return append([]string(nil), fallbackSuggestions...)
	}

	raw = llm.CleanJSONBlock(raw)
	if err := validateSuggestionsJSON(raw); err != nil {
		return append([]string(nil), fallbackSuggestions...)
	}

	var resp suggestionsResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil || len(resp.Suggestions) == 0 {
		return append([]string(nil), fallbackSuggestions...)
	}

	suggestions := resp.Suggestions
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

func buildSuggestPrompt(judgment types.SemanticJudgment, reqs *types.JobRequirements, missingSkills []string) string {
	template := prompts.MustGet("scoring.json", "generate-suggestions")
	return prompts.Format(template, map[string]string{
		"RequiredSkills":  joinOrNone(reqs.RequiredSkills),
		"PreferredSkills": joinOrNone(reqs.PreferredSkills),
		"ExperienceYears": fmt.Sprintf("%d", reqs.ExperienceYears),
		"Education":       reqs.Education.String(),
		"Analysis":        judgment.Analysis,
		"Gaps":            joinOrNone(judgment.Gaps),
		"MissingSkills":   joinOrNone(missingSkills),
	})
}
