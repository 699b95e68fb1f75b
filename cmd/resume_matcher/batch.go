package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/pipeline"
	"github.com/jonathan/resume-matcher/internal/types"
)

var batchCommand = &cobra.Command{
	Use:   "batch",
	Short: "Rank a directory of resumes against one job posting",
	Long: `Runs every resume in a directory through extraction and scoring
against a single job posting, then prints the candidates ranked by
overall score. A resume that fails to process is reported and skipped;
it never aborts the batch.`,
	RunE: runBatchCmd,
}

var (
	batchConfigPath  string
	batchResumeDir   string
	batchJob         string
	batchJobURL      string
	batchConcurrency int
	batchAPIKey      string
	batchLLMDomain   bool
	batchVerbose     bool
	batchDatabaseURL string
)

// resumeExtensions are the file types picked up from the resume directory.
var resumeExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".doc":  true,
	".txt":  true,
	".md":   true,
}

func init() {
	batchCommand.Flags().StringVar(&batchConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	batchCommand.Flags().StringVarP(&batchResumeDir, "resume-dir", "d", "", "Directory of resume files")
	batchCommand.Flags().StringVarP(&batchJob, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	batchCommand.Flags().StringVar(&batchJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	batchCommand.Flags().IntVar(&batchConcurrency, "concurrency", 0, "Maximum resumes processed at once (default 4)")
	batchCommand.Flags().BoolVar(&batchLLMDomain, "llm-domain", false, "Classify domains with the model, falling back to keywords")
	batchCommand.Flags().BoolVarP(&batchVerbose, "verbose", "v", false, "Print detailed debug information")
	batchCommand.Flags().StringVar(&batchAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	batchCommand.Flags().StringVar(&batchDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(batchCommand)
}

func runBatchCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := resolveConfig(batchConfigPath, commandDefaults(), func(cfg *config.Config) {
		if cmd.Flags().Changed("resume-dir") {
			cfg.ResumeDir = batchResumeDir
		}
		if cmd.Flags().Changed("job") {
			cfg.Job = batchJob
		}
		if cmd.Flags().Changed("job-url") {
			cfg.JobURL = batchJobURL
		}
		if cmd.Flags().Changed("concurrency") {
			cfg.Concurrency = batchConcurrency
		}
		if cmd.Flags().Changed("api-key") {
			cfg.APIKey = batchAPIKey
		}
		if cmd.Flags().Changed("llm-domain") {
			cfg.UseLLMDomain = batchLLMDomain
		}
		if cmd.Flags().Changed("verbose") {
			cfg.Verbose = batchVerbose
		}
		if cmd.Flags().Changed("db-url") {
			cfg.DatabaseURL = batchDatabaseURL
		}
	})
	if err != nil {
		return err
	}

	if cfg.ResumeDir == "" {
		return fmt.Errorf("--resume-dir is required (via flag or config)")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("either --job or --job-url must be provided (via flag or config)")
	}

	docs, err := loadResumeDir(cfg.ResumeDir)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		return fmt.Errorf("no resume files found in %s", cfg.ResumeDir)
	}

	client, err := buildClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	fmt.Printf("Step 1/3: Ingesting job posting...\n")
	jobName, jobText, err := ingestJob(ctx, cfg)
	if err != nil {
		return err
	}

	matcher := buildMatcher(client, cfg)
	job := matcher.PrepareJob(ctx, jobText)

	fmt.Printf("Step 2/3: Scoring %d resumes...\n", len(docs))
	outcomes := matcher.MatchBatch(ctx, docs, job)

	fmt.Printf("Step 3/3: Ranking complete.\n")
	names := make([]string, len(outcomes))
	results := make([]*types.MatchResult, len(outcomes))
	for i, o := range outcomes {
		names[i] = o.Name
		results[i] = o.Result
		if o.Err != nil {
			fmt.Printf("Warning: %s failed: %v\n", o.Name, o.Err)
		}
	}
	observability.NewPrinter(os.Stdout).PrintRanking(names, results)

	if db := connectStore(ctx, cfg); db != nil {
		defer db.Close()
		for _, o := range outcomes {
			if o.Result == nil {
				continue
			}
			if _, err := db.SaveMatch(ctx, o.Name, jobName, o.Resume, job, o.Result); err != nil {
				fmt.Printf("Warning: Failed to save match for %s: %v\n", o.Name, err)
			}
		}
	}

	return printJSON(outcomes)
}

// loadResumeDir reads every supported resume file in dir into a
// pipeline document. Unreadable files are skipped with a warning.
func loadResumeDir(dir string) ([]pipeline.Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume directory: %w", err)
	}

	var docs []pipeline.Document
	for _, entry := range entries {
		if entry.IsDir() || !resumeExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		text, err := ingestion.ExtractText(path)
		if err != nil {
			fmt.Printf("Warning: Skipping %s: %v\n", entry.Name(), err)
			continue
		}
		docs = append(docs, pipeline.Document{Name: entry.Name(), Text: text})
	}
	return docs, nil
}
