package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeTempConfig(t, `{
		"job_url": "https://example.com/posting",
		"experience_weight": 30,
		"education_weight": 20,
		"skills_weight": 50,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/posting", cfg.JobURL)
	assert.Equal(t, 30, cfg.ExperienceWeight)
	assert.Equal(t, 50, cfg.SkillsWeight)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := writeTempConfig(t, "{not json")
	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate_MutuallyExclusiveInputs(t *testing.T) {
	dir := t.TempDir()
	jobPath := filepath.Join(dir, "job.txt")
	require.NoError(t, os.WriteFile(jobPath, []byte("job"), 0o644))

	cfg := &Config{Job: jobPath, JobURL: "https://example.com"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")

	cfg = &Config{Resume: "a.pdf", ResumeDir: dir}
	assert.Error(t, cfg.Validate())
}

func TestValidate_WeightRange(t *testing.T) {
	cfg := &Config{SkillsWeight: 150}
	assert.Error(t, cfg.Validate())
}

func TestValidate_BadURL(t *testing.T) {
	cfg := &Config{JobURL: "not a url"}
	assert.Error(t, cfg.Validate())
}

func TestValidate_MissingFiles(t *testing.T) {
	cfg := &Config{Resume: filepath.Join(t.TempDir(), "nope.pdf")}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resume file not found")
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvAPIKey, "env-key")
	t.Setenv(EnvDatabaseURL, "postgres://env")

	cfg := &Config{}
	cfg.FromEnv()
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, "postgres://env", cfg.DatabaseURL)

	// Explicit values win over the environment
	cfg = &Config{APIKey: "explicit"}
	cfg.FromEnv()
	assert.Equal(t, "explicit", cfg.APIKey)
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Resume: "mine.pdf"}
	merged := cfg.MergeWithDefaults(Config{
		Resume:           "default.pdf",
		JobURL:           "https://example.com",
		ExperienceWeight: 35,
		Concurrency:      8,
	})

	assert.Equal(t, "mine.pdf", merged.Resume)
	assert.Equal(t, "https://example.com", merged.JobURL)
	assert.Equal(t, 35, merged.ExperienceWeight)
	assert.Equal(t, 8, merged.Concurrency)
}
