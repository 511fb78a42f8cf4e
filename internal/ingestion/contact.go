package ingestion

import (
	"regexp"
	"strings"
)

// ContactInfo holds the contact details found in a resume. Fields that
// cannot be detected stay empty.
type ContactInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	digitPattern = regexp.MustCompile(`\d`)
)

// nonNameKeywords rule a line out as a candidate name line.
var nonNameKeywords = []string{"resume", "cv", "curriculum", "vitae", "email", "phone", "@"}

// ExtractContactInfo pulls email, phone, and a best-effort name from
// resume text. The name heuristic takes the first short, digit-free line
// near the top that is not a document heading.
func ExtractContactInfo(text string) ContactInfo {
	info := ContactInfo{
		Email: emailPattern.FindString(text),
		Phone: strings.TrimSpace(phonePattern.FindString(text)),
	}

	lines := strings.Split(text, "\n")
	if len(lines) > 5 {
		lines = lines[:5]
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || len(strings.Fields(line)) > 4 {
			continue
		}
		if containsAnyFold(line, nonNameKeywords) || digitPattern.MatchString(line) {
			continue
		}
		info.Name = line
		break
	}

	return info
}

func containsAnyFold(s string, needles []string) bool {
	lower := strings.ToLower(s)
	for _, needle := range needles {
		if strings.Contains(lower, needle) {
			return true
		}
	}
	return false
}
