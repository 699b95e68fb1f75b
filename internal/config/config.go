// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Inputs
	Resume    string `json:"resume,omitempty"`     // Path to resume file (PDF, DOCX, or text)
	ResumeDir string `json:"resume_dir,omitempty"` // Directory of resumes for batch mode
	Job       string `json:"job,omitempty"`        // Path to job posting text file
	JobURL    string `json:"job_url,omitempty" validate:"omitempty,url"` // URL to fetch job posting from

	// Scoring weights; zero values fall back to the engine defaults
	ExperienceWeight int `json:"experience_weight,omitempty" validate:"gte=0,lte=100"`
	EducationWeight  int `json:"education_weight,omitempty" validate:"gte=0,lte=100"`
	SkillsWeight     int `json:"skills_weight,omitempty" validate:"gte=0,lte=100"`

	// Behavior
	APIKey       string `json:"api_key,omitempty"`       // Gemini API key
	UseLLMDomain bool   `json:"use_llm_domain,omitempty"` // Classify domains with the model instead of keywords
	Verbose      bool   `json:"verbose,omitempty"`        // Print detailed debug information
	Concurrency  int    `json:"concurrency,omitempty" validate:"gte=0,lte=64"`
	DatabaseURL  string `json:"database_url,omitempty"` // PostgreSQL connection URL
}

// EnvAPIKey is the environment variable holding the Gemini API key.
const EnvAPIKey = "GEMINI_API_KEY"

// EnvDatabaseURL is the environment variable holding the PostgreSQL URL.
const EnvDatabaseURL = "DATABASE_URL"

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv fills unset credential fields from the environment.
func (c *Config) FromEnv() {
	if c.APIKey == "" {
		c.APIKey = os.Getenv(EnvAPIKey)
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv(EnvDatabaseURL)
	}
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	// Validate mutually exclusive fields
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}
	if c.Resume != "" && c.ResumeDir != "" {
		return fmt.Errorf("config error: 'resume' and 'resume_dir' are mutually exclusive")
	}

	// Validate file paths exist (if specified)
	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}
	if c.ResumeDir != "" {
		if info, err := os.Stat(c.ResumeDir); os.IsNotExist(err) || (err == nil && !info.IsDir()) {
			return fmt.Errorf("config error: resume directory not found: %s", c.ResumeDir)
		}
	}
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.ResumeDir == "" {
		result.ResumeDir = defaults.ResumeDir
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Int fields: use default if zero
	if result.ExperienceWeight == 0 {
		result.ExperienceWeight = defaults.ExperienceWeight
	}
	if result.EducationWeight == 0 {
		result.EducationWeight = defaults.EducationWeight
	}
	if result.SkillsWeight == 0 {
		result.SkillsWeight = defaults.SkillsWeight
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
