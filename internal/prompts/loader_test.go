package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownPrompts(t *testing.T) {
	for _, key := range []string{"judge-resume-fit", "generate-suggestions", "parse-job-requirements"} {
		prompt, err := Get("scoring.json", key)
		require.NoError(t, err, key)
		assert.NotEmpty(t, prompt)
	}
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get("scoring.json", "no-such-prompt")
	assert.Error(t, err)
}

func TestGet_UnknownFile(t *testing.T) {
	_, err := Get("missing.json", "judge-resume-fit")
	assert.Error(t, err)
}

func TestFormat_ReplacesPlaceholders(t *testing.T) {
	out := Format("skills: {{.Skills}}, years: {{.Years}}", map[string]string{
		"Skills": "python, sql",
		"Years":  "3",
	})
	assert.Equal(t, "skills: python, sql, years: 3", out)
}

func TestJudgePromptCarriesAllFields(t *testing.T) {
	template := MustGet("scoring.json", "judge-resume-fit")
	for _, placeholder := range []string{"{{.RequiredSkills}}", "{{.PreferredSkills}}", "{{.ExperienceYears}}", "{{.Education}}", "{{.ResumeExcerpt}}"} {
		assert.True(t, strings.Contains(template, placeholder), placeholder)
	}
}
