package nlp

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/dedshivam/code4edutech/internal/types"
)

// Extract runs all attribute extractors over the text and assembles a
// ResumeProfile. It never fails: absent attributes yield zero values.
func Extract(text string) *types.ResumeProfile {
	return &types.ResumeProfile{
		RawText:         text,
		Skills:          ExtractSkills(text),
		ExperienceYears: ExtractExperienceYears(text),
		Education:       ExtractEducationLevel(text),
	}
}

// ExtractSkills finds technical skills in the text. Vocabulary matches are
// reported in their canonical (vocabulary) form; entity-pass additions keep
// their original casing. The result is deduplicated by lowercase form, with
// the first-seen casing retained.
func ExtractSkills(text string) []string {
	textLower := strings.ToLower(text)

	seen := make(map[string]bool)
	skills := make([]string, 0)

	for _, skill := range technicalSkills {
		if strings.Contains(textLower, skill) && !seen[skill] {
			seen[skill] = true
			skills = append(skills, skill)
		}
	}

	for _, span := range entitySpans(text) {
		key := strings.ToLower(span)
		if len(span) > 2 && !seen[key] {
			seen[key] = true
			skills = append(skills, span)
		}
	}

	return skills
}

// ExtractExperienceYears returns the maximum year count stated anywhere in
// the text, or 0 if no pattern matches. Resumes often phrase experience in
// several places; the maximum avoids undercounting from partial matches.
func ExtractExperienceYears(text string) int {
	textLower := strings.ToLower(text)

	best := 0
	for _, pattern := range experiencePatterns {
		for _, match := range pattern.FindAllStringSubmatch(textLower, -1) {
			years, err := strconv.Atoi(match[1])
			if err != nil {
				continue
			}
			if years > best {
				best = years
			}
		}
	}

	return best
}

// ExtractEducationLevel returns the highest education level whose keyword
// set appears in the text, or EducationUnknown when nothing matches.
func ExtractEducationLevel(text string) types.EducationLevel {
	textLower := strings.ToLower(text)

	detected := make(map[string]bool)
	for level, matchers := range educationMatchers {
		for _, matcher := range matchers {
			if matcher.MatchString(textLower) {
				detected[level] = true
				break
			}
		}
	}

	for _, level := range educationRank {
		if detected[level] {
			return types.ParseEducationLevel(level)
		}
	}

	return types.EducationUnknown
}

// commonCapitalizedWords are ordinary English words that frequently start
// sentences or headings and must not be picked up as entity spans.
var commonCapitalizedWords = map[string]bool{
	"the": true, "and": true, "with": true, "for": true, "from": true,
	"this": true, "that": true, "have": true, "has": true, "was": true,
	"are": true, "were": true, "will": true, "can": true, "not": true,
	"all": true, "our": true, "your": true, "their": true, "about": true,
	"experience": true, "education": true, "skills": true, "projects": true,
	"summary": true, "objective": true, "work": true, "january": true,
	"february": true, "march": true, "april": true, "may": true, "june": true,
	"july": true, "august": true, "september": true, "october": true,
	"november": true, "december": true, "present": true,
}

// entitySpans performs a lightweight organization/product-like entity pass:
// runs of capitalized tokens (or tokens with interior capitals) are joined
// into spans, preserving original casing. Common sentence-lead words and
// section headings are filtered out.
func entitySpans(text string) []string {
	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || r == ',' || r == ';' || r == '(' || r == ')' ||
			r == ':' || r == '|' || r == '/' || r == '•'
	})

	spans := make([]string, 0)
	var current []string

	flush := func() {
		if len(current) > 0 {
			spans = append(spans, strings.Join(current, " "))
			current = nil
		}
	}

	for _, token := range tokens {
		cleaned := strings.Trim(token, ".-–—'\"")
		if isEntityToken(cleaned) {
			current = append(current, cleaned)
			continue
		}
		flush()
	}
	flush()

	return spans
}

// isEntityToken reports whether a token looks like part of an org/product
// name: leading uppercase or interior capitals, not a known common word.
func isEntityToken(token string) bool {
	if len(token) < 2 {
		return false
	}

	runes := []rune(token)
	if !unicode.IsUpper(runes[0]) {
		return false
	}

	hasLetter := false
	for _, r := range runes {
		if unicode.IsLetter(r) {
			hasLetter = true
			break
		}
	}
	if !hasLetter {
		return false
	}

	return !commonCapitalizedWords[strings.ToLower(token)]
}
