package observability

import (
	"bytes"
	"testing"

	"github.com/dedshivam/code4edutech/internal/batch"
	"github.com/dedshivam/code4edutech/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintRequirements(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	reqs := &types.JobRequirements{
		RequiredSkills:  []string{"python", "sql"},
		PreferredSkills: []string{"airflow"},
		ExperienceYears: 3,
		Education:       types.EducationBachelors,
	}

	p.PrintRequirements(reqs)
	output := buf.String()

	assert.Contains(t, output, "PARSED JOB REQUIREMENTS")
	assert.Contains(t, output, "3 years")
	assert.Contains(t, output, "bachelors")
	assert.Contains(t, output, "python")
	assert.Contains(t, output, "airflow")
}

func TestPrintRequirements_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRequirements(nil)

	assert.Empty(t, buf.String())
}

func TestPrintEvaluation(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.EvaluationResult{
		RelevanceScore:     71.5,
		HardMatchScore:     80,
		SemanticMatchScore: 58.75,
		Verdict:            types.VerdictMedium,
		MissingSkills:      []string{"aws"},
		ImprovementSuggestions: []string{
			"Gain hands-on experience with aws",
		},
		Details: types.EvaluationDetails{
			HardMatch: types.HardMatchBreakdown{
				RequiredSkills: types.SkillCategoryScore{Score: 50, Matched: 1, Total: 2},
				Experience:     types.ExperienceScore{Score: 100, ResumeYears: 5, RequiredYears: 3},
				Education: types.EducationScore{
					Score:         100,
					ResumeLevel:   types.EducationBachelors,
					RequiredLevel: types.EducationBachelors,
				},
			},
		},
	}

	p.PrintEvaluation(result)
	output := buf.String()

	assert.Contains(t, output, "EVALUATION RESULT")
	assert.Contains(t, output, "Medium")
	assert.Contains(t, output, "71.50")
	assert.Contains(t, output, "(1/2)")
	assert.Contains(t, output, "aws")
}

func TestPrintEvaluation_ShowsError(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.EvaluationResult{
		Verdict: types.VerdictLow,
		Details: types.EvaluationDetails{Error: "evaluation failed: timeout"},
	}

	p.PrintEvaluation(result)

	assert.Contains(t, buf.String(), "evaluation failed: timeout")
}

func TestPrintBatchReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := &batch.Report{
		JobTitle:       "Data Engineer",
		TotalProcessed: 10,
		Successful:     9,
		Failed:         1,
		AverageScore:   61.3,
		HighCount:      2,
		MediumCount:    4,
		LowCount:       3,
		TopCandidates: []batch.Candidate{
			{Name: "Alice", Score: 88, Verdict: types.VerdictHigh},
			{Filename: "anon.pdf", Score: 74, Verdict: types.VerdictMedium},
		},
	}

	p.PrintBatchReport(report)
	output := buf.String()

	assert.Contains(t, output, "BATCH REPORT")
	assert.Contains(t, output, "Data Engineer")
	assert.Contains(t, output, "Alice")
	assert.Contains(t, output, "anon.pdf")
	assert.Contains(t, output, "High 2 / Medium 4 / Low 3")
}

func TestPrintBatchReport_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintBatchReport(nil)

	assert.Empty(t, buf.String())
}
