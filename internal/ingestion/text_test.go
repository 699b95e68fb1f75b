package ingestion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText_NormalizesLineEndings(t *testing.T) {
	input := "line one\r\nline two\rline three"
	assert.Equal(t, "line one\nline two\nline three", CleanText(input))
}

func TestCleanText_CollapsesHorizontalWhitespace(t *testing.T) {
	input := "Senior    Engineer\t\tat   Acme"
	assert.Equal(t, "Senior Engineer at Acme", CleanText(input))
}

func TestCleanText_CapsBlankLines(t *testing.T) {
	input := "Section A\n\n\n\n\nSection B"
	assert.Equal(t, "Section A\n\nSection B", CleanText(input))
}

func TestCleanText_NormalizesBulletMarkers(t *testing.T) {
	input := "• Built services\n· Led team\n▪ Shipped features"
	expected := "- Built services\n- Led team\n- Shipped features"
	assert.Equal(t, expected, CleanText(input))
}

func TestCleanText_PreservesIndentation(t *testing.T) {
	input := "Experience:\n    Engineer at Acme"
	assert.Equal(t, "Experience:\n    Engineer at Acme", CleanText(input))
}

func TestCleanText_Empty(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "", CleanText("   \n\t\n  "))
}

func TestExtractText_PlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Jane Doe\r\n\r\n\r\nBackend  Engineer"), 0o644))

	text, err := ExtractText(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\n\nBackend Engineer", text)
}

func TestExtractText_UnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.png")
	require.NoError(t, os.WriteFile(path, []byte("binary"), 0o644))

	_, err := ExtractText(path)
	require.Error(t, err)

	var fileErr *FileError
	require.ErrorAs(t, err, &fileErr)
	assert.Contains(t, fileErr.Message, "unsupported file format")
}

func TestExtractText_MissingFile(t *testing.T) {
	_, err := ExtractText(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)

	var fileErr *FileError
	assert.ErrorAs(t, err, &fileErr)
}

func TestExtractText_CorruptPDF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf"), 0o644))

	_, err := ExtractText(path)
	assert.Error(t, err)
}

func TestStripDocxTags(t *testing.T) {
	input := `<w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p><w:p><w:r><w:t>Engineer</w:t></w:r></w:p>`
	assert.Equal(t, "Jane Doe\nEngineer", CleanText(stripDocxTags(input)))
}

func TestFetchJobText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body>
			<nav>Menu</nav>
			<div class="job-description">Go   Engineer.
			5 years required.</div>
		</body></html>`))
	}))
	defer server.Close()

	text, err := FetchJobText(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Contains(t, text, "Go Engineer.")
	assert.Contains(t, text, "5 years required.")
	assert.NotContains(t, text, "Menu")
}

func TestFetchJobText_BadURL(t *testing.T) {
	_, err := FetchJobText(context.Background(), "not a url")
	assert.Error(t, err)
}
