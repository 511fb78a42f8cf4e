// Package parsing turns free-form job description text into a structured
// JobRequirements record. The primary path asks the external reasoning
// service for a structured extraction; a rule-based path covers service
// absence and failure, so parsing always yields a usable record.
package parsing

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/dedshivam/code4edutech/internal/llm"
	"github.com/dedshivam/code4edutech/internal/nlp"
	"github.com/dedshivam/code4edutech/internal/prompts"
	"github.com/dedshivam/code4edutech/internal/types"
)

// Section indicator phrases. A line containing one switches the current
// section for the skills that follow it.
var (
	requiredIndicators  = []string{"required", "must have", "essential", "mandatory"}
	preferredIndicators = []string{"preferred", "nice to have", "plus", "bonus", "desirable"}
)

// responsibilityIndicators mark the heading lines that introduce a
// bulleted duties list.
var responsibilityIndicators = []string{
	"responsible for", "duties", "responsibilities", "role includes", "you will",
}

// maxResponsibilities caps the extracted duties list.
const maxResponsibilities = 5

// Parser extracts job requirements from posting text. A nil client puts
// the parser in permanent rule-based mode.
type Parser struct {
	client llm.Client
}

// New creates a Parser backed by the given client. Pass nil for a parser
// that only uses the rule-based extractors.
func New(client llm.Client) *Parser {
	return &Parser{client: client}
}

// ParseJobDescription extracts structured requirements from job text.
// Failures of the reasoning service fall through to the rule-based path,
// so the returned record is always non-nil.
func (p *Parser) ParseJobDescription(ctx context.Context, jobText string) *types.JobRequirements {
	if p.client == nil {
		return ParseRuleBased(jobText)
	}

	template := prompts.MustGet("scoring.json", "parse-job-requirements")
	prompt := prompts.Format(template, map[string]string{
		"JobText": jobText,
	})

	raw, err := p.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return ParseRuleBased(jobText)
	}

	raw = llm.CleanJSONBlock(raw)
	if err := validateRequirementsJSON(raw); err != nil {
		return ParseRuleBased(jobText)
	}

	var reqs types.JobRequirements
	if err := json.Unmarshal([]byte(raw), &reqs); err != nil {
		return ParseRuleBased(jobText)
	}

	if reqs.ExperienceYears < 0 {
		reqs.ExperienceYears = 0
	}
	reqs.RequiredSkills = dedup(reqs.RequiredSkills)
	reqs.PreferredSkills = dedup(reqs.PreferredSkills)

	return &reqs
}

// ParseRuleBased extracts requirements without the reasoning service.
// Skills found in the text are assigned to the required or preferred
// bucket based on the most recent section indicator line above them.
func ParseRuleBased(jobText string) *types.JobRequirements {
	skills := nlp.ExtractSkills(jobText)

	const (
		sectionNone = iota
		sectionRequired
		sectionPreferred
	)

	var required, preferred []string
	section := sectionNone

	for _, line := range strings.Split(jobText, "\n") {
		lineLower := strings.ToLower(line)
		switch {
		case containsAny(lineLower, requiredIndicators):
			section = sectionRequired
		case containsAny(lineLower, preferredIndicators):
			section = sectionPreferred
		}

		for _, skill := range skills {
			if !strings.Contains(lineLower, strings.ToLower(skill)) {
				continue
			}
			switch section {
			case sectionRequired:
				required = append(required, skill)
			case sectionPreferred:
				preferred = append(preferred, skill)
			}
		}
	}

	// Without section structure all skills are treated as required, unless
	// the list is long enough that an even split is more plausible.
	if len(required) == 0 && len(preferred) == 0 {
		if len(skills) > 5 {
			half := len(skills) / 2
			required = skills[:half]
			preferred = skills[half:]
		} else {
			required = skills
		}
	}

	return &types.JobRequirements{
		RequiredSkills:   dedup(required),
		PreferredSkills:  dedup(preferred),
		ExperienceYears:  nlp.ExtractExperienceYears(jobText),
		Education:        nlp.ExtractEducationLevel(jobText),
		Responsibilities: ExtractResponsibilities(jobText),
	}
}

// ExtractResponsibilities collects bulleted lines that follow a duties
// heading, up to maxResponsibilities entries.
func ExtractResponsibilities(text string) []string {
	lines := strings.Split(text, "\n")
	responsibilities := make([]string, 0, maxResponsibilities)

	for i, line := range lines {
		lineLower := strings.ToLower(strings.TrimSpace(line))
		if !containsAny(lineLower, responsibilityIndicators) {
			continue
		}

		for j := i + 1; j < len(lines) && j < i+10; j++ {
			next := strings.TrimSpace(lines[j])
			if next == "" {
				break
			}
			if strings.HasPrefix(next, "-") || strings.HasPrefix(next, "•") || strings.HasPrefix(next, "*") {
				responsibilities = append(responsibilities, strings.TrimLeft(next, "-•* "))
			}
		}
	}

	if len(responsibilities) > maxResponsibilities {
		responsibilities = responsibilities[:maxResponsibilities]
	}
	return responsibilities
}

func containsAny(s string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(s, needle) {
			return true
		}
	}
	return false
}

// dedup removes duplicates by lowercase form, keeping first-seen order
// and casing. It always returns a non-nil slice.
func dedup(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		key := strings.ToLower(item)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
	}
	return out
}
