package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/scoring"
)

func TestWeightsFromConfig(t *testing.T) {
	assert.Nil(t, weightsFromConfig(&config.Config{}))

	w := weightsFromConfig(&config.Config{
		ExperienceWeight: 30,
		EducationWeight:  20,
		SkillsWeight:     50,
	})
	require.NotNil(t, w)
	assert.Equal(t, scoring.Weights{Experience: 30, Education: 20, Skills: 50}, *w)
}

func TestLoadResumeDir_FiltersBySupportedExtensions(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "alice.txt"), []byte("resume"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.png"), []byte("binary"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive"), 0o755))

	docs, err := loadResumeDir(dir)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "alice.txt", docs[0].Name)
	assert.Equal(t, "resume", docs[0].Text)
}

func TestLoadResumeDir_MissingDirectory(t *testing.T) {
	_, err := loadResumeDir(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestResolveConfig_FlagOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"skills_weight": 40, "verbose": false}`), 0o644))

	cfg, err := resolveConfig(path, commandDefaults(), func(cfg *config.Config) {
		cfg.SkillsWeight = 60
		cfg.Verbose = true
	})
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.SkillsWeight)
	assert.True(t, cfg.Verbose)
}

func TestResolveConfig_FillsDefaults(t *testing.T) {
	cfg, err := resolveConfig("", commandDefaults(), func(cfg *config.Config) {})
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Concurrency)
	assert.Zero(t, cfg.SkillsWeight, "weights stay unset for the engine to default")

	cfg, err = resolveConfig("", commandDefaults(), func(cfg *config.Config) {
		cfg.Concurrency = 8
	})
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Concurrency, "explicit values win over defaults")
}
