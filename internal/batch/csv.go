package batch

import (
	"encoding/csv"
	"fmt"
	"io"
)

// csvHeader is the column layout of an exported batch result.
var csvHeader = []string{
	"filename",
	"candidate_name",
	"candidate_email",
	"relevance_score",
	"hard_match_score",
	"semantic_match_score",
	"verdict",
	"missing_skills",
	"error",
}

// WriteCSV exports every item of the batch, failed ones included, as one
// CSV row each in submission order.
func (r *Result) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, item := range r.Items {
		row := []string{
			item.Filename,
			item.Candidate.Name,
			item.Candidate.Email,
			"", "", "", "",
			"",
			item.Error,
		}
		if item.Result != nil {
			row[3] = fmt.Sprintf("%.2f", item.Result.RelevanceScore)
			row[4] = fmt.Sprintf("%.2f", item.Result.HardMatchScore)
			row[5] = fmt.Sprintf("%.2f", item.Result.SemanticMatchScore)
			row[6] = string(item.Result.Verdict)
			row[7] = joinSkills(item.Result.MissingSkills)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
