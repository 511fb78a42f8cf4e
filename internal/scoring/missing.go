package scoring

// MissingSkills returns the required and preferred job skills with no
// resume skill clearing the fuzzy threshold. Callers report required gaps
// first so they are always surfaced before preferred ones.
func MissingSkills(resumeSkills, requiredSkills, preferredSkills []string) (missingRequired, missingPreferred []string) {
	missingRequired = missingFrom(resumeSkills, requiredSkills)
	missingPreferred = missingFrom(resumeSkills, preferredSkills)
	return missingRequired, missingPreferred
}

func missingFrom(resumeSkills, jobSkills []string) []string {
	missing := make([]string, 0)
	for _, jobSkill := range jobSkills {
		if !skillMatched(jobSkill, resumeSkills) {
			missing = append(missing, jobSkill)
		}
	}
	return missing
}
