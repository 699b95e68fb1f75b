package ingestion

import (
	"context"

	"github.com/jonathan/resume-matcher/internal/fetch"
)

// FetchJobText downloads a job posting page and returns its cleaned
// main body text.
func FetchJobText(ctx context.Context, urlStr string) (string, error) {
	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return "", err
	}

	text, err := fetch.ExtractMainText(result.HTML, fetch.JobPostingSelectors())
	if err != nil {
		return "", err
	}

	return CleanText(text), nil
}
