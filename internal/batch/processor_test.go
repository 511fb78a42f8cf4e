package batch

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/dedshivam/code4edutech/internal/ingestion"
	"github.com/dedshivam/code4edutech/internal/scoring"
	"github.com/dedshivam/code4edutech/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func batchRequirements() *types.JobRequirements {
	return &types.JobRequirements{
		RequiredSkills:  []string{"python", "sql"},
		ExperienceYears: 2,
		Education:       types.EducationBachelors,
	}
}

func TestProcess_OrderedResults(t *testing.T) {
	p := NewProcessor(scoring.NewEngine(nil), Options{Workers: 3})

	items := []Item{
		{Filename: "a.pdf", Text: "Engineer with 4 years of experience in python and sql. Bachelor of Science."},
		{Filename: "b.pdf", Text: "Marketing coordinator with no technical background."},
		{Filename: "c.pdf", Text: "Python developer, 1 year of experience."},
	}

	result := p.Process(context.Background(), "python and sql role", batchRequirements(), items)

	require.Len(t, result.Items, 3)
	assert.Equal(t, "a.pdf", result.Items[0].Filename)
	assert.Equal(t, "b.pdf", result.Items[1].Filename)
	assert.Equal(t, "c.pdf", result.Items[2].Filename)
	for i, item := range result.Items {
		assert.Equal(t, i, item.Index)
		assert.NotEqual(t, uuid.Nil, item.ID)
	}

	assert.Equal(t, 3, result.TotalProcessed)
	assert.Equal(t, 3, result.Successful)
	assert.Equal(t, 0, result.Failed)
}

func TestProcess_EmptyTextFailsItemOnly(t *testing.T) {
	p := NewProcessor(scoring.NewEngine(nil), Options{})

	items := []Item{
		{Filename: "ok.pdf", Text: "Python developer with 3 years of experience."},
		{Filename: "blank.pdf", Text: "   \n  "},
	}

	result := p.Process(context.Background(), "python role", batchRequirements(), items)

	assert.Equal(t, 1, result.Successful)
	assert.Equal(t, 1, result.Failed)
	assert.Empty(t, result.Items[0].Error)
	assert.NotNil(t, result.Items[0].Result)
	assert.Contains(t, result.Items[1].Error, "no text")
	assert.Nil(t, result.Items[1].Result)
}

func TestProcess_CancelledContext(t *testing.T) {
	p := NewProcessor(scoring.NewEngine(nil), Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := p.Process(ctx, "role", batchRequirements(), []Item{
		{Filename: "a.pdf", Text: "some resume text"},
	})

	assert.Equal(t, 1, result.Failed)
	assert.Contains(t, result.Items[0].Error, "cancelled")
}

func TestProcess_NoItems(t *testing.T) {
	p := NewProcessor(scoring.NewEngine(nil), Options{})

	result := p.Process(context.Background(), "role", batchRequirements(), nil)

	assert.Equal(t, 0, result.TotalProcessed)
	assert.Empty(t, result.Items)
}

func sampleResult() *Result {
	return &Result{
		TotalProcessed: 4,
		Successful:     3,
		Failed:         1,
		Items: []ItemResult{
			{
				Index:     0,
				Filename:  "alice.pdf",
				Candidate: ingestion.ContactInfo{Name: "Alice", Email: "alice@example.com"},
				Result: &types.EvaluationResult{
					RelevanceScore: 82, HardMatchScore: 85, SemanticMatchScore: 78,
					Verdict: types.VerdictHigh, MissingSkills: []string{},
				},
			},
			{
				Index:     1,
				Filename:  "bob.pdf",
				Candidate: ingestion.ContactInfo{Name: "Bob", Email: "bob@example.com"},
				Result: &types.EvaluationResult{
					RelevanceScore: 55, HardMatchScore: 50, SemanticMatchScore: 62,
					Verdict: types.VerdictMedium, MissingSkills: []string{"aws", "docker"},
				},
			},
			{
				Index:    2,
				Filename: "broken.pdf",
				Error:    "no text could be extracted from the resume",
			},
			{
				Index:     3,
				Filename:  "carol.pdf",
				Candidate: ingestion.ContactInfo{Name: "Carol"},
				Result: &types.EvaluationResult{
					RelevanceScore: 40, HardMatchScore: 35, SemanticMatchScore: 47,
					Verdict: types.VerdictLow, MissingSkills: []string{"python"},
				},
			},
		},
	}
}

func TestReport_Summary(t *testing.T) {
	report := sampleResult().Report("Data Engineer")

	assert.Equal(t, "Data Engineer", report.JobTitle)
	assert.Equal(t, 4, report.TotalProcessed)
	assert.Equal(t, 3, report.Successful)
	assert.Equal(t, 1, report.Failed)
	assert.InDelta(t, (82.0+55.0+40.0)/3.0, report.AverageScore, 1e-9)
	assert.Equal(t, 1, report.HighCount)
	assert.Equal(t, 1, report.MediumCount)
	assert.Equal(t, 1, report.LowCount)

	require.Len(t, report.TopCandidates, 3)
	assert.Equal(t, "Alice", report.TopCandidates[0].Name)
	assert.Equal(t, "Bob", report.TopCandidates[1].Name)
	assert.Equal(t, "Carol", report.TopCandidates[2].Name)
}

func TestReport_TopCandidatesCapped(t *testing.T) {
	result := &Result{}
	for i := 0; i < 8; i++ {
		result.TotalProcessed++
		result.Successful++
		result.Items = append(result.Items, ItemResult{
			Index:    i,
			Filename: "r.pdf",
			Result: &types.EvaluationResult{
				RelevanceScore: float64(i * 10),
				Verdict:        types.VerdictLow,
			},
		})
	}

	report := result.Report("role")

	require.Len(t, report.TopCandidates, maxTopCandidates)
	assert.Equal(t, 70.0, report.TopCandidates[0].Score)
}

func TestReport_AllFailed(t *testing.T) {
	result := &Result{
		TotalProcessed: 1,
		Failed:         1,
		Items:          []ItemResult{{Filename: "x.pdf", Error: "boom"}},
	}

	report := result.Report("role")

	assert.Equal(t, 0.0, report.AverageScore)
	assert.Empty(t, report.TopCandidates)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer

	err := sampleResult().WriteCSV(&buf)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, strings.Join(csvHeader, ","), lines[0])
	assert.Contains(t, lines[1], "alice.pdf")
	assert.Contains(t, lines[1], "82.00")
	assert.Contains(t, lines[2], "aws; docker")
	assert.Contains(t, lines[3], "no text could be extracted")
	assert.Contains(t, lines[4], "Low")
}
