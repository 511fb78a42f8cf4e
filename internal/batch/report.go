package batch

import (
	"sort"

	"github.com/dedshivam/code4edutech/internal/types"
)

// maxTopCandidates caps the ranked shortlist in a report.
const maxTopCandidates = 5

// Candidate is one row of the report shortlist.
type Candidate struct {
	Filename string        `json:"filename"`
	Name     string        `json:"name"`
	Email    string        `json:"email"`
	Score    float64       `json:"score"`
	Verdict  types.Verdict `json:"verdict"`
}

// Report summarizes a batch run for display and export.
type Report struct {
	JobTitle       string      `json:"job_title"`
	TotalProcessed int         `json:"total_processed"`
	Successful     int         `json:"successful"`
	Failed         int         `json:"failed"`
	AverageScore   float64     `json:"average_score"`
	HighCount      int         `json:"high_potential"`
	MediumCount    int         `json:"medium_potential"`
	LowCount       int         `json:"low_potential"`
	TopCandidates  []Candidate `json:"top_candidates"`
}

// Report builds the summary for a completed batch. Failed items count
// toward totals but not toward the score average or verdict tallies.
func (r *Result) Report(jobTitle string) *Report {
	report := &Report{
		JobTitle:       jobTitle,
		TotalProcessed: r.TotalProcessed,
		Successful:     r.Successful,
		Failed:         r.Failed,
		TopCandidates:  []Candidate{},
	}

	var scoreSum float64
	candidates := make([]Candidate, 0, r.Successful)

	for _, item := range r.Items {
		if item.Error != "" || item.Result == nil {
			continue
		}

		scoreSum += item.Result.RelevanceScore
		switch item.Result.Verdict {
		case types.VerdictHigh:
			report.HighCount++
		case types.VerdictMedium:
			report.MediumCount++
		case types.VerdictLow:
			report.LowCount++
		}

		candidates = append(candidates, Candidate{
			Filename: item.Filename,
			Name:     item.Candidate.Name,
			Email:    item.Candidate.Email,
			Score:    item.Result.RelevanceScore,
			Verdict:  item.Result.Verdict,
		})
	}

	if len(candidates) > 0 {
		report.AverageScore = scoreSum / float64(len(candidates))
	}

	// Ties keep submission order.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	if len(candidates) > maxTopCandidates {
		candidates = candidates[:maxTopCandidates]
	}
	report.TopCandidates = candidates

	return report
}
