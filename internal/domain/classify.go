package domain

import (
	"context"
	"math"
	"sort"
	"strings"
)

// Classification methods
const (
	MethodKeyword = "keyword"
	MethodLLM     = "llm"
)

// DetectedDomain is one ranked classification candidate.
type DetectedDomain struct {
	Domain       string `json:"domain"`
	KeywordCount int    `json:"keywordCount"`
	Score        int    `json:"score"`
}

// Classification is the result of classifying one document.
type Classification struct {
	PrimaryDomain   string           `json:"primaryDomain"`
	Confidence      int              `json:"confidence"`
	DetectedDomains []DetectedDomain `json:"detectedDomains"`
	Method          string           `json:"method"`
	Reasoning       string           `json:"reasoning,omitempty"`
}

// Classifier assigns a primary domain to document text. Implementations
// are total: they always return a classification, degrading to Unknown
// rather than failing.
type Classifier interface {
	Classify(ctx context.Context, text string) *Classification
}

// KeywordClassifier ranks domains by raw keyword occurrence counts. It is
// deterministic and needs no external services.
type KeywordClassifier struct{}

// Classify implements Classifier using keyword counting.
func (KeywordClassifier) Classify(_ context.Context, text string) *Classification {
	return ClassifyText(text)
}

// ClassifyText counts catalog keyword occurrences in text and returns the
// ranked result. Keywords match as substrings of the lowercased text and
// overlapping hits each count. Ties keep catalog order.
func ClassifyText(text string) *Classification {
	result := &Classification{
		PrimaryDomain:   DomainUnknown,
		Confidence:      0,
		DetectedDomains: []DetectedDomain{},
		Method:          MethodKeyword,
	}
	if strings.TrimSpace(text) == "" {
		return result
	}

	lower := strings.ToLower(text)
	total := 0
	for _, category := range catalog {
		count := 0
		for _, kw := range category.Keywords {
			count += strings.Count(lower, kw)
		}
		if count > 0 {
			result.DetectedDomains = append(result.DetectedDomains, DetectedDomain{
				Domain:       category.Name,
				KeywordCount: count,
				Score:        count,
			})
			total += count
		}
	}
	if len(result.DetectedDomains) == 0 {
		return result
	}

	sort.SliceStable(result.DetectedDomains, func(i, j int) bool {
		return result.DetectedDomains[i].Score > result.DetectedDomains[j].Score
	})

	top := result.DetectedDomains[0]
	result.PrimaryDomain = top.Domain
	result.Confidence = int(math.Min(100, math.Round(100*float64(top.Score)/float64(total))))
	return result
}
