package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/observability"
)

var matchCommand = &cobra.Command{
	Use:   "match",
	Short: "Score one resume against one job posting",
	Long: `Extracts structured data from a resume and a job posting, classifies
their working domains, and prints the full match result as JSON.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runMatchCmd,
}

var (
	matchConfigPath  string
	matchResume      string
	matchJob         string
	matchJobURL      string
	matchExpWeight   int
	matchEduWeight   int
	matchSklWeight   int
	matchAPIKey      string
	matchLLMDomain   bool
	matchVerbose     bool
	matchDatabaseURL string
)

func init() {
	matchCommand.Flags().StringVar(&matchConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	matchCommand.Flags().StringVarP(&matchResume, "resume", "r", "", "Path to resume file (PDF, DOCX, or text)")
	matchCommand.Flags().StringVarP(&matchJob, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	matchCommand.Flags().StringVar(&matchJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	matchCommand.Flags().IntVar(&matchExpWeight, "experience-weight", 0, "Experience weight (weights must sum to 100)")
	matchCommand.Flags().IntVar(&matchEduWeight, "education-weight", 0, "Education weight (weights must sum to 100)")
	matchCommand.Flags().IntVar(&matchSklWeight, "skills-weight", 0, "Skills weight (weights must sum to 100)")
	matchCommand.Flags().BoolVar(&matchLLMDomain, "llm-domain", false, "Classify domains with the model, falling back to keywords")
	matchCommand.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	matchCommand.Flags().StringVar(&matchAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	// Database URL for result persistence
	matchCommand.Flags().StringVar(&matchDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(matchCommand)
}

// resolveConfig loads the optional config file, applies CLI overrides
// for the flags the caller marked as changed, then fills anything still
// unset from the command defaults and the environment.
func resolveConfig(path string, defaults config.Config, apply func(cfg *config.Config)) (*config.Config, error) {
	var cfg config.Config
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	apply(&cfg)
	cfg = cfg.MergeWithDefaults(defaults)
	cfg.FromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func runMatchCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := resolveConfig(matchConfigPath, commandDefaults(), func(cfg *config.Config) {
		if cmd.Flags().Changed("resume") {
			cfg.Resume = matchResume
		}
		if cmd.Flags().Changed("job") {
			cfg.Job = matchJob
		}
		if cmd.Flags().Changed("job-url") {
			cfg.JobURL = matchJobURL
		}
		if cmd.Flags().Changed("experience-weight") {
			cfg.ExperienceWeight = matchExpWeight
		}
		if cmd.Flags().Changed("education-weight") {
			cfg.EducationWeight = matchEduWeight
		}
		if cmd.Flags().Changed("skills-weight") {
			cfg.SkillsWeight = matchSklWeight
		}
		if cmd.Flags().Changed("api-key") {
			cfg.APIKey = matchAPIKey
		}
		if cmd.Flags().Changed("llm-domain") {
			cfg.UseLLMDomain = matchLLMDomain
		}
		if cmd.Flags().Changed("verbose") {
			cfg.Verbose = matchVerbose
		}
		if cmd.Flags().Changed("db-url") {
			cfg.DatabaseURL = matchDatabaseURL
		}
	})
	if err != nil {
		return err
	}

	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required (via flag or config)")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("either --job or --job-url must be provided (via flag or config)")
	}

	client, err := buildClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	fmt.Printf("Step 1/3: Ingesting documents...\n")
	resumeText, err := ingestion.ExtractText(cfg.Resume)
	if err != nil {
		return fmt.Errorf("resume ingestion failed: %w", err)
	}
	jobName, jobText, err := ingestJob(ctx, cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Step 2/3: Extracting and classifying...\n")
	matcher := buildMatcher(client, cfg)
	resume, job, result, err := matcher.MatchPair(ctx, resumeText, jobText)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintResume(resume)
		printer.PrintJob(job)
		printer.PrintMatchResult(result)
	}

	fmt.Printf("Step 3/3: Scoring complete: %d/100 (%s)\n", result.OverallScore, result.Assessment.Label)

	if db := connectStore(ctx, cfg); db != nil {
		defer db.Close()
		id, err := db.SaveMatch(ctx, cfg.Resume, jobName, resume, job, result)
		if err != nil {
			fmt.Printf("Warning: Failed to save match: %v\n", err)
		} else if cfg.Verbose {
			fmt.Printf("[VERBOSE] Saved match: %s\n", id)
		}
	}

	return printJSON(result)
}
