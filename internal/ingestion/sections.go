package ingestion

import (
	"regexp"
	"strings"
)

// Sections is the coarse split of a resume into its conventional parts.
// Absent sections are empty strings.
type Sections struct {
	Experience     string `json:"experience"`
	Education      string `json:"education"`
	Skills         string `json:"skills"`
	Projects       string `json:"projects"`
	Certifications string `json:"certifications"`
}

// sectionHeaderSkip is how far past a section start the search for the
// next section begins, so a heading does not terminate its own section.
const sectionHeaderSkip = 50

type sectionPattern struct {
	name    string
	pattern *regexp.Regexp
}

var sectionPatterns = []sectionPattern{
	{"experience", regexp.MustCompile(`(experience|work\s+experience|professional\s+experience|employment|career)`)},
	{"education", regexp.MustCompile(`(education|academic|qualification|degree)`)},
	{"skills", regexp.MustCompile(`(skills|technical\s+skills|competencies|expertise)`)},
	{"projects", regexp.MustCompile(`(projects|personal\s+projects|portfolio)`)},
	{"certifications", regexp.MustCompile(`(certifications?|certificates?|credentials)`)},
}

// ExtractSections locates conventional resume section headings and slices
// the text between them. Each section runs from its heading to the next
// detected heading, or to the end of the document.
func ExtractSections(text string) Sections {
	textLower := strings.ToLower(text)
	bodies := make(map[string]string, len(sectionPatterns))

	for _, sp := range sectionPatterns {
		loc := sp.pattern.FindStringIndex(textLower)
		if loc == nil {
			continue
		}
		start := loc[0]

		end := len(text)
		searchFrom := start + sectionHeaderSkip
		if searchFrom > len(textLower) {
			searchFrom = len(textLower)
		}
		for _, other := range sectionPatterns {
			if other.name == sp.name {
				continue
			}
			otherLoc := other.pattern.FindStringIndex(textLower[searchFrom:])
			if otherLoc == nil {
				continue
			}
			if candidate := searchFrom + otherLoc[0]; candidate < end {
				end = candidate
			}
		}

		bodies[sp.name] = strings.TrimSpace(text[start:end])
	}

	return Sections{
		Experience:     bodies["experience"],
		Education:      bodies["education"],
		Skills:         bodies["skills"],
		Projects:       bodies["projects"],
		Certifications: bodies["certifications"],
	}
}
