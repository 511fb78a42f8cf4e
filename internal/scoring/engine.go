package scoring

import (
	"context"
	"fmt"
	"math"

	"github.com/dedshivam/code4edutech/internal/judge"
	"github.com/dedshivam/code4edutech/internal/nlp"
	"github.com/dedshivam/code4edutech/internal/textproc"
	"github.com/dedshivam/code4edutech/internal/types"
)

// Composite blend weights. relevance = hard*0.6 + semantic*0.4, where the
// semantic component is lexical*0.4 + judged*0.6.
const (
	hardMatchWeight     = 0.6
	semanticMatchWeight = 0.4
	lexicalWeight       = 0.4
	judgedWeight        = 0.6
)

// Verdict thresholds are inclusive lower bounds of their tier.
const (
	highThreshold   = 75.0
	mediumThreshold = 50.0
)

// Engine runs the full evaluation pipeline. It is stateless between calls
// and safe for concurrent use; each evaluation builds its own lexical
// vectorizer.
type Engine struct {
	judge *judge.Judge
}

// NewEngine creates an Engine around the given judge. A judge in fallback
// mode (nil client) is fully supported.
func NewEngine(j *judge.Judge) *Engine {
	if j == nil {
		j = judge.New(nil)
	}
	return &Engine{judge: j}
}

// Evaluate scores a resume against a job. It always returns a well-formed
// result: internal failures are converted into a zero-score Low verdict
// with an error marker in the details, never propagated to the caller.
func (e *Engine) Evaluate(ctx context.Context, resumeText, jobDescriptionText string, reqs *types.JobRequirements) (result *types.EvaluationResult) {
	defer func() {
		if r := recover(); r != nil {
			result = errorResult(fmt.Sprintf("evaluation failed: %v", r))
		}
	}()

	// Incomplete job postings are common; default rather than reject.
	if reqs == nil {
		reqs = &types.JobRequirements{}
	}

	profile := nlp.Extract(resumeText)

	hardScore, breakdown := HardMatch(profile, reqs)

	vectorizer := textproc.NewVectorizer(0)
	lexicalScore := vectorizer.Similarity(resumeText, jobDescriptionText)

	judgment := e.judge.Evaluate(ctx, resumeText, reqs)

	combinedSemantic := clampScore(lexicalScore*lexicalWeight + judgment.Score*judgedWeight)
	relevance := clampScore(hardScore*hardMatchWeight + combinedSemantic*semanticMatchWeight)

	missingRequired, missingPreferred := MissingSkills(profile.Skills, reqs.RequiredSkills, reqs.PreferredSkills)
	missing := make([]string, 0, len(missingRequired)+len(missingPreferred))
	missing = append(missing, missingRequired...)
	missing = append(missing, missingPreferred...)

	suggestions := e.judge.Suggest(ctx, judgment, reqs, missing)

	return &types.EvaluationResult{
		RelevanceScore:         round2(relevance),
		HardMatchScore:         round2(hardScore),
		SemanticMatchScore:     round2(combinedSemantic),
		Verdict:                DetermineVerdict(relevance),
		MissingSkills:          missing,
		ImprovementSuggestions: suggestions,
		Details: types.EvaluationDetails{
			HardMatch:        breakdown,
			LexicalScore:     round2(lexicalScore),
			Judgment:         judgment,
			CombinedSemantic: round2(combinedSemantic),
			Weights: types.ScoringWeights{
				HardMatch:     hardMatchWeight,
				SemanticMatch: semanticMatchWeight,
			},
			MissingRequired:  missingRequired,
			MissingPreferred: missingPreferred,
		},
	}
}

// DetermineVerdict classifies a relevance score. 75 and 50 are inclusive
// lower bounds of High and Medium.
func DetermineVerdict(relevanceScore float64) types.Verdict {
	switch {
	case relevanceScore >= highThreshold:
		return types.VerdictHigh
	case relevanceScore >= mediumThreshold:
		return types.VerdictMedium
	default:
		return types.VerdictLow
	}
}

// errorResult is the total-availability contract: a well-formed zero
// result with a diagnostic marker, produced when the pipeline itself
// fails unexpectedly.
func errorResult(message string) *types.EvaluationResult {
	return &types.EvaluationResult{
		RelevanceScore:         0,
		HardMatchScore:         0,
		SemanticMatchScore:     0,
		Verdict:                types.VerdictLow,
		MissingSkills:          []string{},
		ImprovementSuggestions: []string{"An error occurred during evaluation; the result is incomplete"},
		Details: types.EvaluationDetails{
			MissingRequired:  []string{},
			MissingPreferred: []string{},
			Error:            message,
		},
	}
}

func round2(score float64) float64 {
	return math.Round(score*100) / 100
}
