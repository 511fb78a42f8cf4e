// Package nlp provides rule-based attribute extraction from resume and job
// text: skills, years of experience, and education level.
package nlp

import "regexp"

// technicalSkills is the fixed vocabulary of known skill tokens. Matching
// is case-insensitive substring containment, matching the behavior of the
// job-side parser. Extend the table here; scoring code never needs to
// change.
var technicalSkills = []string{
	"python", "java", "javascript", "c++", "c#", "php", "ruby", "go", "rust", "kotlin",
	"swift", "typescript", "scala", "r", "matlab", "sql", "nosql", "mongodb", "postgresql",
	"mysql", "oracle", "redis", "elasticsearch", "docker", "kubernetes", "aws", "azure",
	"gcp", "terraform", "jenkins", "git", "github", "gitlab", "jira", "confluence",
	"react", "angular", "vue", "node.js", "express", "django", "flask", "spring",
	"laravel", "rails", "asp.net", "tensorflow", "pytorch", "scikit-learn", "pandas",
	"numpy", "matplotlib", "seaborn", "tableau", "power bi", "excel", "spark", "hadoop",
	"kafka", "rabbitmq", "microservices", "restful", "graphql", "soap", "api", "agile",
	"scrum", "devops", "ci/cd", "machine learning", "deep learning", "ai", "nlp",
	"computer vision", "data science", "data analysis", "statistics", "blockchain",
	"cybersecurity", "linux", "windows", "macos", "bash", "powershell", "html", "css",
	"bootstrap", "sass", "less", "webpack", "npm", "yarn", "junit", "selenium", "pytest",
}

// educationKeywords maps each education level to its synonym tokens.
// Only presence matters, not frequency. Short alphabetic tokens ("ms",
// "ba") are matched on word boundaries so they cannot fire inside ordinary
// words; dotted and multi-word tokens are matched as substrings.
var educationKeywords = map[string][]string{
	"phd":         {"ph.d", "phd", "doctorate", "doctoral"},
	"masters":     {"master", "msc", "ma", "mba", "ms", "m.sc", "m.a", "m.s"},
	"bachelors":   {"bachelor", "bsc", "ba", "be", "btech", "b.sc", "b.a", "b.e", "b.tech"},
	"diploma":     {"diploma", "certificate"},
	"high_school": {"high school", "secondary", "12th", "intermediate"},
}

// educationMatchers holds a compiled matcher per keyword.
var educationMatchers = compileEducationMatchers()

func compileEducationMatchers() map[string][]*regexp.Regexp {
	matchers := make(map[string][]*regexp.Regexp, len(educationKeywords))
	for level, keywords := range educationKeywords {
		compiled := make([]*regexp.Regexp, 0, len(keywords))
		for _, keyword := range keywords {
			pattern := regexp.QuoteMeta(keyword)
			if isAlphabetic(keyword) {
				pattern = `\b` + pattern + `\b`
			}
			compiled = append(compiled, regexp.MustCompile(pattern))
		}
		matchers[level] = compiled
	}
	return matchers
}

func isAlphabetic(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return s != ""
}

// educationRank orders level names from highest to lowest for resolution
// when multiple levels are detected.
var educationRank = []string{"phd", "masters", "bachelors", "diploma", "high_school"}

// experiencePatterns are applied in order against lowercased text; every
// integer capture across every pattern is collected and the maximum wins.
var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*years?\s+(?:of\s+)?experience`),
	regexp.MustCompile(`(\d+)\+?\s*yrs?\s+(?:of\s+)?experience`),
	regexp.MustCompile(`experience\s*:\s*(\d+)\+?\s*years?`),
	regexp.MustCompile(`(\d+)\+?\s*years?\s+in`),
	regexp.MustCompile(`over\s+(\d+)\s+years?`),
	regexp.MustCompile(`more\s+than\s+(\d+)\s+years?`),
}
