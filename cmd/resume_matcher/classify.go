package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/domain"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/observability"
)

var classifyCommand = &cobra.Command{
	Use:   "classify",
	Short: "Classify the working domain of a document",
	Long: `Classifies a resume or job posting into one of the known working
domains using keyword analysis, or the model when --llm-domain is set.`,
	RunE: runClassifyCmd,
}

var (
	classifyFile      string
	classifyAPIKey    string
	classifyLLMDomain bool
	classifyVerbose   bool
)

func init() {
	classifyCommand.Flags().StringVarP(&classifyFile, "file", "f", "", "Path to document file (PDF, DOCX, or text)")
	classifyCommand.Flags().BoolVar(&classifyLLMDomain, "llm-domain", false, "Classify with the model, falling back to keywords")
	classifyCommand.Flags().BoolVarP(&classifyVerbose, "verbose", "v", false, "Print detailed debug information")
	classifyCommand.Flags().StringVar(&classifyAPIKey, "api-key", "", "Gemini API Key (only needed with --llm-domain)")
	_ = classifyCommand.MarkFlagRequired("file")

	rootCmd.AddCommand(classifyCommand)
}

func runClassifyCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	text, err := ingestion.ExtractText(classifyFile)
	if err != nil {
		return fmt.Errorf("document ingestion failed: %w", err)
	}

	var classifier domain.Classifier = domain.KeywordClassifier{}
	if classifyLLMDomain {
		cfg := &config.Config{APIKey: classifyAPIKey, Verbose: classifyVerbose}
		cfg.FromEnv()
		client, err := buildClient(ctx, cfg)
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()
		classifier = domain.NewLLMClassifier(client, classifyVerbose)
	}

	classification := classifier.Classify(ctx, text)
	if classifyVerbose {
		observability.NewPrinter(os.Stdout).PrintClassification(classification)
	}

	return printJSON(classification)
}
