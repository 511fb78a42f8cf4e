// Package types defines the shared data model for resume relevance evaluation.
package types

import (
	"github.com/go-playground/validator/v10"
)

// Verdict is the coarse tri-level classification of a relevance score.
type Verdict string

// Verdict values, from best to worst fit.
const (
	VerdictHigh   Verdict = "High"
	VerdictMedium Verdict = "Medium"
	VerdictLow    Verdict = "Low"
)

// JobRequirements is the structured requirement record for a job posting.
// It is an immutable input to a scoring run; incomplete fields are treated
// as "no requirement" rather than rejected.
type JobRequirements struct {
	RequiredSkills  []string       `json:"required_skills"`
	PreferredSkills []string       `json:"preferred_skills"`
	ExperienceYears int            `json:"experience_required" validate:"min=0"`
	Education       EducationLevel `json:"education_required"`

	// Responsibilities is optional context extracted from the posting.
	// It does not participate in hard-match scoring.
	Responsibilities []string `json:"key_responsibilities,omitempty"`
}

// Validate checks the JobRequirements using the validator.
// The scoring engine itself never rejects a requirements record; this is
// for callers (CLI, store) that want to surface malformed input early.
func (r *JobRequirements) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// ResumeProfile holds the attributes extracted from a resume for one
// scoring run. It is recomputed whenever the raw text changes.
type ResumeProfile struct {
	RawText         string         `json:"-"`
	Skills          []string       `json:"skills"`
	ExperienceYears int            `json:"experience_years"`
	Education       EducationLevel `json:"education"`
}

// SemanticJudgment is the normalized output of the external reasoning
// service. The engine treats it as opaque but numerically bounded.
type SemanticJudgment struct {
	Score     float64  `json:"semantic_score"`
	Analysis  string   `json:"analysis"`
	Strengths []string `json:"strengths"`
	Gaps      []string `json:"gaps"`
}

// SkillCategoryScore is the per-category skill match breakdown.
type SkillCategoryScore struct {
	Score   float64 `json:"score"`
	Matched int     `json:"matched"`
	Total   int     `json:"total"`
}

// ExperienceScore is the experience dimension of the hard match.
type ExperienceScore struct {
	Score         float64 `json:"score"`
	ResumeYears   int     `json:"resume_years"`
	RequiredYears int     `json:"required_years"`
}

// EducationScore is the education dimension of the hard match.
type EducationScore struct {
	Score         float64        `json:"score"`
	ResumeLevel   EducationLevel `json:"resume_level"`
	RequiredLevel EducationLevel `json:"required_level"`
}

// HardMatchBreakdown retains the per-dimension scores and counts behind a
// hard-match aggregate, for audit and display.
type HardMatchBreakdown struct {
	RequiredSkills  SkillCategoryScore `json:"required_skills"`
	PreferredSkills SkillCategoryScore `json:"preferred_skills"`
	Experience      ExperienceScore    `json:"experience"`
	Education       EducationScore     `json:"education"`
}

// ScoringWeights records the blend applied to the two top-level sub-scores.
type ScoringWeights struct {
	HardMatch     float64 `json:"hard_match"`
	SemanticMatch float64 `json:"semantic_match"`
}

// EvaluationDetails is the full breakdown record kept alongside an
// evaluation for later inspection. All fields serialize to nested
// maps/lists/primitives.
type EvaluationDetails struct {
	HardMatch        HardMatchBreakdown `json:"hard_match_details"`
	LexicalScore     float64            `json:"lexical_score"`
	Judgment         SemanticJudgment   `json:"semantic_judgment"`
	CombinedSemantic float64            `json:"combined_semantic_score"`
	Weights          ScoringWeights     `json:"scoring_weights"`
	MissingRequired  []string           `json:"missing_required_skills"`
	MissingPreferred []string           `json:"missing_preferred_skills"`

	// Error marks an internal evaluation failure. The UI layer is expected
	// to flag results carrying this to a human operator.
	Error string `json:"error,omitempty"`
}

// EvaluationResult is the complete outcome of one resume evaluation.
// Every evaluation produces a well-formed result; failures surface through
// Details.Error, never as a missing result.
type EvaluationResult struct {
	RelevanceScore         float64           `json:"relevance_score"`
	HardMatchScore         float64           `json:"hard_match_score"`
	SemanticMatchScore     float64           `json:"semantic_match_score"`
	Verdict                Verdict           `json:"verdict"`
	MissingSkills          []string          `json:"missing_skills"`
	ImprovementSuggestions []string          `json:"improvement_suggestions"`
	Details                EvaluationDetails `json:"evaluation_details"`
}
