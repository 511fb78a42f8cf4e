package ingestion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const resumeDoc = `John Smith
john.smith@example.com | (555) 123-4567

Experience
Data engineer at Acme building ingestion pipelines with python and airflow for five years.

Education
B.Tech in Computer Science from a state university, graduated 2019.

Skills
python, sql, airflow, docker`

func TestCleanText_NormalizesLineEndingsAndSpaces(t *testing.T) {
	got := CleanText("line one\r\nline   two\r\rline three")

	assert.Equal(t, "line one\nline two\n\nline three", got)
}

func TestCleanText_StripsArtifacts(t *testing.T) {
	got := CleanText("skills ★ python ✦ sql")

	assert.Equal(t, "skills python sql", got)
}

func TestCleanText_KeepsUnicodeLetters(t *testing.T) {
	got := CleanText("José Müller, Zürich")

	assert.Equal(t, "José Müller, Zürich", got)
}

func TestCleanText_CollapsesBlankRuns(t *testing.T) {
	got := CleanText("a\n\n\n\n\nb")

	assert.Equal(t, "a\n\nb", got)
}

func TestCleanText_Empty(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "", CleanText("   \n  \n"))
}

func TestExtractContactInfo(t *testing.T) {
	info := ExtractContactInfo(resumeDoc)

	assert.Equal(t, "John Smith", info.Name)
	assert.Equal(t, "john.smith@example.com", info.Email)
	assert.Equal(t, "(555) 123-4567", info.Phone)
}

func TestExtractContactInfo_SkipsHeadingsAndNumbers(t *testing.T) {
	text := "RESUME\n123 Main Street\nJane Doe\njane@example.com"

	info := ExtractContactInfo(text)

	assert.Equal(t, "Jane Doe", info.Name)
	assert.Equal(t, "jane@example.com", info.Email)
}

func TestExtractContactInfo_NothingFound(t *testing.T) {
	info := ExtractContactInfo("An unusually long opening line that cannot possibly be a candidate name")

	assert.Empty(t, info.Name)
	assert.Empty(t, info.Email)
	assert.Empty(t, info.Phone)
}

func TestExtractSections(t *testing.T) {
	sections := ExtractSections(resumeDoc)

	assert.True(t, strings.HasPrefix(sections.Experience, "Experience"))
	assert.Contains(t, sections.Experience, "Acme")
	assert.NotContains(t, sections.Experience, "B.Tech")

	assert.Contains(t, sections.Education, "B.Tech")
	assert.Contains(t, sections.Skills, "docker")

	assert.Empty(t, sections.Projects)
	assert.Empty(t, sections.Certifications)
}

func TestExtractSections_NoHeadings(t *testing.T) {
	sections := ExtractSections("Just a paragraph about nothing in particular.")

	assert.Empty(t, sections.Experience)
	assert.Empty(t, sections.Education)
	assert.Empty(t, sections.Skills)
}

func TestTextFromHTML(t *testing.T) {
	html := `<html><head><script>var x = 1;</script></head><body>
		<nav>Home | Jobs | About</nav>
		<main><h1>Data Engineer</h1><p>Build pipelines with python and sql.</p></main>
		<footer>Copyright</footer>
	</body></html>`

	text, err := TextFromHTML(html)

	assert.NoError(t, err)
	assert.Contains(t, text, "Data Engineer")
	assert.Contains(t, text, "python and sql")
	assert.NotContains(t, text, "Home | Jobs")
	assert.NotContains(t, text, "Copyright")
	assert.NotContains(t, text, "var x")
}

func TestTextFromHTML_FallsBackToBody(t *testing.T) {
	text, err := TextFromHTML("<html><body><p>plain posting text</p></body></html>")

	assert.NoError(t, err)
	assert.Equal(t, "plain posting text", text)
}
