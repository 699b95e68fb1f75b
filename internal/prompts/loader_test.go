package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ValidPrompt(t *testing.T) {
	ClearCache()

	prompt, err := Get("extraction.json", "extract-resume")
	require.NoError(t, err)
	assert.NotEmpty(t, prompt)
	assert.Contains(t, prompt, "totalYearsExperience")
	assert.Contains(t, prompt, "{{.Content}}")
}

func TestGet_AllExpectedKeys(t *testing.T) {
	ClearCache()

	for _, key := range []string{"extract-resume", "extract-job"} {
		prompt, err := Get("extraction.json", key)
		require.NoError(t, err, "key %s", key)
		assert.NotEmpty(t, prompt)
	}

	prompt, err := Get("matching.json", "classify-domain")
	require.NoError(t, err)
	assert.Contains(t, prompt, "{{.Domains}}")
}

func TestGet_InvalidFile(t *testing.T) {
	ClearCache()

	_, err := Get("nonexistent.json", "some-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prompt file")
}

func TestGet_InvalidKey(t *testing.T) {
	ClearCache()

	_, err := Get("extraction.json", "nonexistent-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMustGet_Panics(t *testing.T) {
	ClearCache()

	assert.Panics(t, func() {
		MustGet("nonexistent.json", "some-key")
	})
}

func TestFormat(t *testing.T) {
	template := "Extract from:\n{{.Content}}\nDomains: {{.Domains}}"
	data := map[string]string{
		"Content": "resume text",
		"Domains": "IT/Software, Healthcare",
	}

	result := Format(template, data)
	assert.Equal(t, "Extract from:\nresume text\nDomains: IT/Software, Healthcare", result)
}

func TestFormat_UnmatchedPlaceholderRemains(t *testing.T) {
	result := Format("Hello {{.Name}}", map[string]string{})
	assert.Equal(t, "Hello {{.Name}}", result)
}

func TestCaching(t *testing.T) {
	ClearCache()

	prompt1, err := Get("extraction.json", "extract-job")
	require.NoError(t, err)
	prompt2, err := Get("extraction.json", "extract-job")
	require.NoError(t, err)

	assert.Equal(t, prompt1, prompt2)
}
