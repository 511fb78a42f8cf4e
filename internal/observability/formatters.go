// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/dedshivam/code4edutech/internal/batch"
	"github.com/dedshivam/code4edutech/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRequirements outputs a human-readable summary of parsed job
// requirements.
func (p *Printer) PrintRequirements(reqs *types.JobRequirements) {
	if reqs == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Experience: %d years\n", reqs.ExperienceYears))
	sb.WriteString(fmt.Sprintf("Education:  %s\n", reqs.Education))
	sb.WriteString("\n")

	writeSkillList(&sb, "Required Skills:", reqs.RequiredSkills)
	writeSkillList(&sb, "Preferred Skills:", reqs.PreferredSkills)

	p.printBox("PARSED JOB REQUIREMENTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintEvaluation outputs the score breakdown of a single evaluation.
func (p *Printer) PrintEvaluation(result *types.EvaluationResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Relevance: %6.2f   Verdict: %s\n", result.RelevanceScore, result.Verdict))
	sb.WriteString(fmt.Sprintf("Hard:      %6.2f   Semantic: %.2f\n", result.HardMatchScore, result.SemanticMatchScore))
	sb.WriteString("\n")

	hm := result.Details.HardMatch
	sb.WriteString(fmt.Sprintf("Required skills:  %5.1f (%d/%d)\n",
		hm.RequiredSkills.Score, hm.RequiredSkills.Matched, hm.RequiredSkills.Total))
	sb.WriteString(fmt.Sprintf("Preferred skills: %5.1f (%d/%d)\n",
		hm.PreferredSkills.Score, hm.PreferredSkills.Matched, hm.PreferredSkills.Total))
	sb.WriteString(fmt.Sprintf("Experience:       %5.1f (%dy vs %dy)\n",
		hm.Experience.Score, hm.Experience.ResumeYears, hm.Experience.RequiredYears))
	sb.WriteString(fmt.Sprintf("Education:        %5.1f (%s vs %s)\n",
		hm.Education.Score, hm.Education.ResumeLevel, hm.Education.RequiredLevel))
	sb.WriteString("\n")

	writeSkillList(&sb, "Missing Skills:", result.MissingSkills)
	writeSkillList(&sb, "Suggestions:", result.ImprovementSuggestions)

	if result.Details.Error != "" {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", result.Details.Error))
	}

	p.printBox("EVALUATION RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBatchReport outputs the summary of a batch run.
func (p *Printer) PrintBatchReport(report *batch.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Job:        %s\n", report.JobTitle))
	sb.WriteString(fmt.Sprintf("Processed:  %d (%d ok, %d failed)\n",
		report.TotalProcessed, report.Successful, report.Failed))
	sb.WriteString(fmt.Sprintf("Avg score:  %.2f\n", report.AverageScore))
	sb.WriteString(fmt.Sprintf("Verdicts:   High %d / Medium %d / Low %d\n",
		report.HighCount, report.MediumCount, report.LowCount))

	if len(report.TopCandidates) > 0 {
		sb.WriteString("\nTop Candidates:\n")
		count := min(len(report.TopCandidates), maxItemsToShow)
		for i := 0; i < count; i++ {
			c := report.TopCandidates[i]
			name := c.Name
			if name == "" {
				name = c.Filename
			}
			sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, name))
			sb.WriteString(fmt.Sprintf("    Score: %.2f (%s)\n", c.Score, c.Verdict))
		}
	}

	p.printBox("BATCH REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// writeSkillList appends a truncated bulleted list under a heading. Empty
// lists are skipped entirely.
func writeSkillList(sb *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}

	sb.WriteString(heading + "\n")
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		item := items[i]
		if len(item) > 50 {
			item = item[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("  • %s\n", item))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
	sb.WriteString("\n")
}
