// Package judge adapts the external reasoning service into the bounded
// semantic-judgment and suggestion contracts the scoring engine consumes.
// Every entry point degrades deterministically when the service is absent
// or misbehaves; the pipeline never blocks on the judge.
package judge

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dedshivam/code4edutech/internal/llm"
	"github.com/dedshivam/code4edutech/internal/prompts"
	"github.com/dedshivam/code4edutech/internal/types"
)

// ExcerptLimit bounds the resume excerpt sent to the external service, to
// respect payload and cost limits.
const ExcerptLimit = 2000

// NeutralScore is the deterministic fallback when no judgment is available.
const NeutralScore = 50.0

// Judge invokes the external reasoning service for semantic fit analysis.
// A nil client puts the Judge in permanent fallback mode, which is a valid
// configuration, not an error.
type Judge struct {
	client llm.Client
}

// New creates a Judge backed by the given client. Pass nil for a judge
// that always returns the deterministic fallback.
func New(client llm.Client) *Judge {
	return &Judge{client: client}
}

// judgmentResponse mirrors the external service response contract.
// Pointer fields distinguish absent values from zero values.
type judgmentResponse struct {
	Score     *float64 `json:"semantic_score"`
	Analysis  string   `json:"analysis"`
	Strengths []string `json:"strengths"`
	Gaps      []string `json:"gaps"`
}

// Evaluate rates the semantic fit of a resume against job requirements.
// It always returns a well-formed judgment; failures of any kind produce
// the neutral fallback with an explanatory rationale.
func (j *Judge) Evaluate(ctx context.Context, resumeText string, reqs *types.JobRequirements) types.SemanticJudgment {
	if j.client == nil {
		return fallbackJudgment("semantic analysis unavailable: no reasoning service configured")
	}

	prompt := buildJudgePrompt(resumeText, reqs)

	raw, err := j.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return fallbackJudgment(fmt.Sprintf("semantic analysis failed: %v", err))
	}

	raw = llm.CleanJSONBlock(raw)
	if err := validateJudgmentJSON(raw); err != nil {
		return fallbackJudgment(fmt.Sprintf("semantic analysis returned malformed response: %v", err))
	}

	var resp judgmentResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return fallbackJudgment(fmt.Sprintf("semantic analysis returned unparseable response: %v", err))
	}

	// Missing fields are treated as absent, not fatal.
	score := NeutralScore
	if resp.Score != nil {
		score = clamp(*resp.Score)
	}

	return types.SemanticJudgment{
		Score:     score,
		Analysis:  resp.Analysis,
		Strengths: emptyIfNil(resp.Strengths),
		Gaps:      emptyIfNil(resp.Gaps),
	}
}

func fallbackJudgment(rationale string) types.SemanticJudgment {
	return types.SemanticJudgment{
		Score:     NeutralScore,
		Analysis:  rationale,
		Strengths: []string{},
		Gaps:      []string{},
	}
}

func buildJudgePrompt(resumeText string, reqs *types.JobRequirements) string {
	template := prompts.MustGet("scoring.json", "judge-resume-fit")
	return prompts.Format(template, map[string]string{
		"RequiredSkills":  joinOrNone(reqs.RequiredSkills),
		"PreferredSkills": joinOrNone(reqs.PreferredSkills),
		"ExperienceYears": fmt.Sprintf("%d", reqs.ExperienceYears),
		"Education":       reqs.Education.String(),
		"ResumeExcerpt":   Excerpt(resumeText),
	})
}

// Excerpt returns the leading ExcerptLimit characters of text.
func Excerpt(text string) string {
	runes := []rune(text)
	if len(runes) <= ExcerptLimit {
		return text
	}
	return string(runes[:ExcerptLimit])
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}

func emptyIfNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

func clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
