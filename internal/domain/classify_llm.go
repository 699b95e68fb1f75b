package domain

import (
	"context"
	"log"
	"strings"

	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/prompts"
	"github.com/jonathan/resume-matcher/internal/repair"
)

// classifyExcerptLimit caps how much document text goes into the
// classification prompt.
const classifyExcerptLimit = 2000

// LLMClassifier asks the model for a domain classification and falls back
// to the keyword strategy whenever the response is unusable. It satisfies
// the same total contract as KeywordClassifier.
type LLMClassifier struct {
	client   llm.Client
	fallback KeywordClassifier
	verbose  bool
}

// NewLLMClassifier creates an LLMClassifier backed by client.
func NewLLMClassifier(client llm.Client, verbose bool) *LLMClassifier {
	return &LLMClassifier{client: client, verbose: verbose}
}

// Classify implements Classifier. The method field of the result reports
// which strategy actually produced the answer.
func (c *LLMClassifier) Classify(ctx context.Context, text string) *Classification {
	if strings.TrimSpace(text) == "" || c.client == nil {
		return c.fallback.Classify(ctx, text)
	}

	excerpt := text
	if len(excerpt) > classifyExcerptLimit {
		excerpt = excerpt[:classifyExcerptLimit]
	}
	prompt := prompts.Format(prompts.MustGet("matching.json", "classify-domain"), map[string]string{
		"Domains": strings.Join(Names(), ", "),
		"Content": excerpt,
	})

	raw, err := c.client.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		if c.verbose {
			log.Printf("[VERBOSE] LLM classification failed: %v, falling back to keywords", err)
		}
		return c.fallback.Classify(ctx, text)
	}

	parsed := repair.ExtractAndRepair(raw)
	if parsed == nil {
		if c.verbose {
			log.Printf("[VERBOSE] LLM classification returned unparseable output, falling back to keywords")
		}
		return c.fallback.Classify(ctx, text)
	}

	result := classificationFromPayload(parsed)
	if result == nil {
		if c.verbose {
			log.Printf("[VERBOSE] LLM classification named no usable domain, falling back to keywords")
		}
		return c.fallback.Classify(ctx, text)
	}
	return result
}

// classificationFromPayload validates a repaired LLM payload into a
// Classification, or nil when the primary domain is unusable.
func classificationFromPayload(parsed map[string]any) *Classification {
	primary, _ := parsed["primaryDomain"].(string)
	primary = strings.TrimSpace(primary)
	if primary == "" || (!IsKnown(primary) && primary != DomainUnknown) {
		return nil
	}

	confidence := 0
	if f, ok := parsed["confidence"].(float64); ok && f >= 0 {
		confidence = int(f)
		if confidence > 100 {
			confidence = 100
		}
	}

	result := &Classification{
		PrimaryDomain:   primary,
		Confidence:      confidence,
		DetectedDomains: []DetectedDomain{{Domain: primary, Score: confidence}},
		Method:          MethodLLM,
	}
	if reasoning, ok := parsed["reasoning"].(string); ok {
		result.Reasoning = strings.TrimSpace(reasoning)
	}
	if related, ok := parsed["relatedDomains"].([]any); ok {
		for _, item := range related {
			name, ok := item.(string)
			if !ok || !IsKnown(strings.TrimSpace(name)) {
				continue
			}
			result.DetectedDomains = append(result.DetectedDomains, DetectedDomain{Domain: strings.TrimSpace(name)})
		}
	}
	return result
}
