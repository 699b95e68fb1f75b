package extract

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/prompts"
	"github.com/jonathan/resume-matcher/internal/repair"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/types"
)

// documentCharLimit caps how much document text goes into one extraction
// prompt. Resumes and postings rarely carry signal past this point.
const documentCharLimit = 8000

// Extractor turns raw document text into validated records via the LLM.
// Every failure mode degrades to the default record; extraction never
// returns an error.
type Extractor struct {
	client  llm.Client
	verbose bool
}

// NewExtractor creates an Extractor backed by client.
func NewExtractor(client llm.Client, verbose bool) *Extractor {
	return &Extractor{client: client, verbose: verbose}
}

// ExtractResume extracts a structured resume record from document text.
func (e *Extractor) ExtractResume(ctx context.Context, text string) *types.ResumeRecord {
	parsed := e.extract(ctx, text, types.DocTypeResume, "extract-resume")
	return ValidateResume(parsed)
}

// ExtractJob extracts a structured job description record from posting
// text.
func (e *Extractor) ExtractJob(ctx context.Context, text string) *types.JDRecord {
	parsed := e.extract(ctx, text, types.DocTypeJob, "extract-job")
	return ValidateJob(parsed)
}

// extract runs prompt -> generate -> repair -> advisory schema check and
// returns the repaired payload, or nil when any stage fails.
func (e *Extractor) extract(ctx context.Context, text string, docType types.DocType, promptKey string) map[string]any {
	if text == "" || e.client == nil {
		return nil
	}

	excerpt := text
	if len(excerpt) > documentCharLimit {
		excerpt = excerpt[:documentCharLimit]
	}
	prompt := prompts.Format(prompts.MustGet("extraction.json", promptKey), map[string]string{
		"Content": excerpt,
	})

	raw, err := e.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		fmt.Printf("Warning: %s extraction call failed: %v. Using default record.\n", docType, err)
		return nil
	}
	if e.verbose {
		log.Printf("[VERBOSE] %s extraction returned %d chars", docType, len(raw))
	}

	parsed := repair.ExtractAndRepair(raw)
	if parsed == nil {
		fmt.Printf("Warning: %s extraction output was unrecoverable. Using default record.\n", docType)
		return nil
	}

	// Advisory only: a schema violation is logged and the lenient
	// validator still coerces the payload.
	if err := schemas.CheckExtraction(docType, parsed); err != nil {
		if e.verbose {
			log.Printf("[VERBOSE] %s payload failed schema check: %v", docType, err)
		}
	}
	return parsed
}
