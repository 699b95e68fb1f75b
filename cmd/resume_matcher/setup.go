package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/domain"
	"github.com/jonathan/resume-matcher/internal/extract"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/pipeline"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/store"
)

// commandDefaults returns the baseline configuration every command
// starts from; config file values and changed flags take priority.
// Weights stay zero so the scoring engine applies its own defaults.
func commandDefaults() config.Config {
	return config.Config{
		Concurrency: pipeline.DefaultConcurrency,
	}
}

// buildClient creates the Gemini client wrapped with an in-memory cache
// so repeated extractions of the same text cost one call.
func buildClient(ctx context.Context, cfg *config.Config) (llm.Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}
	client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return llm.NewCachedClient(client, llm.NewMemoryCache()), nil
}

// buildMatcher wires the extractor, domain classifier, and scoring
// weights into a pipeline matcher.
func buildMatcher(client llm.Client, cfg *config.Config) *pipeline.Matcher {
	var classifier domain.Classifier = domain.KeywordClassifier{}
	if cfg.UseLLMDomain {
		classifier = domain.NewLLMClassifier(client, cfg.Verbose)
	}

	opts := []pipeline.Option{pipeline.WithConcurrency(cfg.Concurrency)}
	if w := weightsFromConfig(cfg); w != nil {
		opts = append(opts, pipeline.WithWeights(w))
	}
	return pipeline.NewMatcher(extract.NewExtractor(client, cfg.Verbose), classifier, opts...)
}

// weightsFromConfig returns custom scoring weights, or nil when the
// config leaves them all unset.
func weightsFromConfig(cfg *config.Config) *scoring.Weights {
	if cfg.ExperienceWeight == 0 && cfg.EducationWeight == 0 && cfg.SkillsWeight == 0 {
		return nil
	}
	return &scoring.Weights{
		Experience: cfg.ExperienceWeight,
		Education:  cfg.EducationWeight,
		Skills:     cfg.SkillsWeight,
	}
}

// ingestJob returns the job posting text from whichever source the
// config names, plus a short name for reporting.
func ingestJob(ctx context.Context, cfg *config.Config) (string, string, error) {
	if cfg.JobURL != "" {
		text, err := ingestion.FetchJobText(ctx, cfg.JobURL)
		if err != nil {
			return "", "", fmt.Errorf("job ingestion from URL failed: %w", err)
		}
		return cfg.JobURL, text, nil
	}
	text, err := ingestion.ExtractText(cfg.Job)
	if err != nil {
		return "", "", fmt.Errorf("job ingestion from file failed: %w", err)
	}
	return cfg.Job, text, nil
}

// connectStore opens the result store when a database URL is
// configured. Failure to connect is a warning, not a fatal error.
func connectStore(ctx context.Context, cfg *config.Config) *store.Store {
	if cfg.DatabaseURL == "" {
		return nil
	}
	db, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		fmt.Printf("Warning: Failed to connect to database: %v\n", err)
		fmt.Printf("Continuing without database persistence...\n")
		return nil
	}
	if err := db.EnsureSchema(ctx); err != nil {
		fmt.Printf("Warning: Failed to prepare database schema: %v\n", err)
		db.Close()
		return nil
	}
	if cfg.Verbose {
		fmt.Printf("[VERBOSE] Connected to database\n")
	}
	return db
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
