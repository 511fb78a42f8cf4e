package judge

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dedshivam/code4edutech/internal/llm"
	"github.com/dedshivam/code4edutech/internal/types"
	"github.com/stretchr/testify/assert"
)

// fakeClient is a substitutable llm.Client for deterministic tests.
type fakeClient struct {
	response   string
	err        error
	lastPrompt string
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	f.lastPrompt = prompt
	return f.response, f.err
}

func (f *fakeClient) Close() error { return nil }

func sampleRequirements() *types.JobRequirements {
	return &types.JobRequirements{
		RequiredSkills:  []string{"python", "aws"},
		PreferredSkills: []string{"sql"},
		ExperienceYears: 3,
		Education:       types.EducationBachelors,
	}
}

func TestEvaluate_NoClientFallsBack(t *testing.T) {
	j := New(nil)

	judgment := j.Evaluate(context.Background(), "resume text", sampleRequirements())

	assert.Equal(t, NeutralScore, judgment.Score)
	assert.Contains(t, judgment.Analysis, "no reasoning service configured")
	assert.Empty(t, judgment.Strengths)
	assert.Empty(t, judgment.Gaps)
}

func TestEvaluate_ParsesResponse(t *testing.T) {
	client := &fakeClient{response: `{
		"semantic_score": 82.5,
		"analysis": "strong backend background",
		"strengths": ["python depth"],
		"gaps": ["no aws exposure"]
	}`}
	j := New(client)

	judgment := j.Evaluate(context.Background(), "resume text", sampleRequirements())

	assert.Equal(t, 82.5, judgment.Score)
	assert.Equal(t, "strong backend background", judgment.Analysis)
	assert.Equal(t, []string{"python depth"}, judgment.Strengths)
	assert.Equal(t, []string{"no aws exposure"}, judgment.Gaps)
}

func TestEvaluate_ClampsOutOfRangeScore(t *testing.T) {
	client := &fakeClient{response: `{"semantic_score": 180, "analysis": "x"}`}
	j := New(client)

	judgment := j.Evaluate(context.Background(), "resume", sampleRequirements())

	assert.Equal(t, 100.0, judgment.Score)
}

func TestEvaluate_MissingScoreTreatedAsAbsent(t *testing.T) {
	client := &fakeClient{response: `{"analysis": "no score field"}`}
	j := New(client)

	judgment := j.Evaluate(context.Background(), "resume", sampleRequirements())

	assert.Equal(t, NeutralScore, judgment.Score)
	assert.Equal(t, "no score field", judgment.Analysis)
}

func TestEvaluate_ServiceErrorFallsBack(t *testing.T) {
	client := &fakeClient{err: errors.New("quota exhausted")}
	j := New(client)

	judgment := j.Evaluate(context.Background(), "resume", sampleRequirements())

	assert.Equal(t, NeutralScore, judgment.Score)
	assert.Contains(t, judgment.Analysis, "quota exhausted")
}

func TestEvaluate_MalformedTypeFallsBack(t *testing.T) {
	client := &fakeClient{response: `{"semantic_score": "very good"}`}
	j := New(client)

	judgment := j.Evaluate(context.Background(), "resume", sampleRequirements())

	assert.Equal(t, NeutralScore, judgment.Score)
	assert.Contains(t, judgment.Analysis, "malformed")
}

func TestEvaluate_MarkdownWrappedResponse(t *testing.T) {
	client := &fakeClient{response: "```json\n{\"semantic_score\": 61}\n```"}
	j := New(client)

	judgment := j.Evaluate(context.Background(), "resume", sampleRequirements())

	assert.Equal(t, 61.0, judgment.Score)
}

func TestEvaluate_ExcerptBoundsResumeText(t *testing.T) {
	client := &fakeClient{response: `{"semantic_score": 50}`}
	j := New(client)
	longResume := strings.Repeat("a", ExcerptLimit+500)

	j.Evaluate(context.Background(), longResume, sampleRequirements())

	assert.NotContains(t, client.lastPrompt, strings.Repeat("a", ExcerptLimit+1))
	assert.Contains(t, client.lastPrompt, strings.Repeat("a", ExcerptLimit))
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "short", Excerpt("short"))
	assert.Len(t, []rune(Excerpt(strings.Repeat("x", 5000))), ExcerptLimit)
}

func TestSuggest_NoClientReturnsFallback(t *testing.T) {
	j := New(nil)

	suggestions := j.Suggest(context.Background(), types.SemanticJudgment{}, sampleRequirements(), []string{"aws"})

	assert.Equal(t, fallbackSuggestions, suggestions)
	assert.NotEmpty(t, suggestions)
}

func TestSuggest_ParsesResponse(t *testing.T) {
	client := &fakeClient{response: `{"suggestions": ["learn aws fundamentals", "add metrics to project bullets", "obtain a cloud certification"]}`}
	j := New(client)

	suggestions := j.Suggest(context.Background(), types.SemanticJudgment{}, sampleRequirements(), []string{"aws"})

	assert.Len(t, suggestions, 3)
	assert.Equal(t, "learn aws fundamentals", suggestions[0])
}

func TestSuggest_TruncatesToFive(t *testing.T) {
	client := &fakeClient{response: `{"suggestions": ["a", "b", "c", "d", "e", "f", "g"]}`}
	j := New(client)

	suggestions := j.Suggest(context.Background(), types.SemanticJudgment{}, sampleRequirements(), nil)

	assert.Len(t, suggestions, 5)
}

func TestSuggest_EmptyListFallsBack(t *testing.T) {
	client := &fakeClient{response: `{"suggestions": []}`}
	j := New(client)

	suggestions := j.Suggest(context.Background(), types.SemanticJudgment{}, sampleRequirements(), nil)

	assert.Equal(t, fallbackSuggestions, suggestions)
}

func TestSuggest_ErrorFallsBack(t *testing.T) {
	client := &fakeClient{err: errors.New("timeout")}
	j := New(client)

	suggestions := j.Suggest(context.Background(), types.SemanticJudgment{}, sampleRequirements(), nil)

	assert.Equal(t, fallbackSuggestions, suggestions)
}
