// Package scoring implements the resume relevance scoring engine: the
// hard-match calculator over discrete attributes and the composite scorer
// that blends it with lexical and judged semantic fit.
package scoring

import (
	"github.com/dedshivam/code4edutech/internal/fuzzy"
	"github.com/dedshivam/code4edutech/internal/types"
)

// Hard-match dimension weights. These are fixed constants; changing them
// breaks score comparability with previously stored evaluations.
const (
	requiredSkillWeight  = 0.5
	preferredSkillWeight = 0.2
	experienceWeight     = 0.2
	educationWeight      = 0.1
)

// HardMatch combines the skill, experience, and education dimensions into
// one weighted sub-score in [0,100], returning the per-dimension breakdown
// for audit alongside the aggregate.
func HardMatch(profile *types.ResumeProfile, reqs *types.JobRequirements) (float64, types.HardMatchBreakdown) {
	required := skillCategoryScore(profile.Skills, reqs.RequiredSkills)
	preferred := skillCategoryScore(profile.Skills, reqs.PreferredSkills)
	experience := experienceScore(profile.ExperienceYears, reqs.ExperienceYears)
	education := educationScore(profile.Education, reqs.Education)

	total := required.Score*requiredSkillWeight +
		preferred.Score*preferredSkillWeight +
		experience.Score*experienceWeight +
		education.Score*educationWeight

	breakdown := types.HardMatchBreakdown{
		RequiredSkills:  required,
		PreferredSkills: preferred,
		Experience:      experience,
		Education:       education,
	}

	return clampScore(total), breakdown
}

// skillCategoryScore counts job skills that any resume skill matches,
// exactly (case-insensitive) or fuzzily above the threshold, each job
// skill counted at most once. An empty category uses a denominator of 1,
// scoring 0 rather than a vacuous 100 — deliberate, see the edge-case
// tests before changing.
func skillCategoryScore(resumeSkills, jobSkills []string) types.SkillCategoryScore {
	matched := 0
	for _, jobSkill := range jobSkills {
		if skillMatched(jobSkill, resumeSkills) {
			matched++
		}
	}

	total := len(jobSkills)
	denominator := total
	if denominator == 0 {
		denominator = 1
	}

	score := float64(matched) / float64(denominator) * 100
	if score > 100 {
		score = 100
	}

	return types.SkillCategoryScore{
		Score:   score,
		Matched: matched,
		Total:   denominator,
	}
}

// skillMatched reports whether any resume skill matches the job skill.
// Exact lowercase equality is a ratio of 100 and always clears the
// threshold, so a single fuzzy pass covers both cases.
func skillMatched(jobSkill string, resumeSkills []string) bool {
	for _, resumeSkill := range resumeSkills {
		if fuzzy.Match(resumeSkill, jobSkill) {
			return true
		}
	}
	return false
}

// experienceScore gives linear credit up to the requirement, capped at
// 100. No requirement means full credit.
func experienceScore(resumeYears, requiredYears int) types.ExperienceScore {
	score := 100.0
	if requiredYears > 0 {
		ratio := float64(resumeYears) / float64(requiredYears)
		if ratio > 1 {
			ratio = 1
		}
		score = ratio * 100
	}

	return types.ExperienceScore{
		Score:         score,
		ResumeYears:   resumeYears,
		RequiredYears: requiredYears,
	}
}

// educationScore compares levels on the ordinal scale. Meeting or
// exceeding the requirement is full credit; being below earns partial
// linear credit by rank ratio.
func educationScore(resumeLevel, requiredLevel types.EducationLevel) types.EducationScore {
	score := 100.0
	if requiredLevel != types.EducationUnknown && resumeLevel < requiredLevel {
		score = float64(resumeLevel) / float64(requiredLevel) * 100
	}

	return types.EducationScore{
		Score:         score,
		ResumeLevel:   resumeLevel,
		RequiredLevel: requiredLevel,
	}
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
