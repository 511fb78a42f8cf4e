// Package ingestion turns raw resume and job posting inputs into clean
// plain text and pulls out the coarse document structure (contact lines,
// section bodies) that downstream extraction works from.
package ingestion

import (
	"regexp"
	"strings"
)

var (
	// artifactPattern matches characters outside the set a text-converted
	// document legitimately uses. PDF extraction tends to leave ligature
	// and control garbage behind.
	artifactPattern = regexp.MustCompile(`[^\p{L}\p{N}_\s\-.,;:()\[\]@+/&%]`)

	multiSpacePattern = regexp.MustCompile(`[ \t]+`)
	blankRunPattern   = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes extracted document text while preserving line
// structure. Line endings become LF, conversion artifacts become spaces,
// runs of spaces collapse, and blank-line runs shrink to one blank line.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = artifactPattern.ReplaceAllString(content, " ")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = multiSpacePattern.ReplaceAllString(line, " ")
		cleaned = append(cleaned, strings.TrimSpace(line))
	}

	result := strings.Join(cleaned, "\n")
	result = blankRunPattern.ReplaceAllString(result, "\n\n")

	return strings.TrimSpace(result)
}
