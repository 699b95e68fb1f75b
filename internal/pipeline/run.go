// Package pipeline provides the high-level orchestration for the resume
// matching process.
package pipeline

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/domain"
	"github.com/jonathan/resume-matcher/internal/extract"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/types"
)

// DefaultConcurrency bounds how many resumes are processed at once in
// batch mode.
const DefaultConcurrency = 4

// Document is a named piece of source text to run through the pipeline.
type Document struct {
	Name string
	Text string
}

// Outcome pairs a processed resume with its match result. Err is set
// when the document failed to score; a failed document never aborts
// the rest of a batch.
type Outcome struct {
	Name   string
	Resume *types.ResumeRecord
	Result *types.MatchResult
	Err    error
}

// Matcher wires extraction, domain classification, and scoring into a
// single entry point.
type Matcher struct {
	extractor   *extract.Extractor
	classifier  domain.Classifier
	weights     *scoring.Weights
	concurrency int
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithWeights overrides the default scoring weights.
func WithWeights(w *scoring.Weights) Option {
	return func(m *Matcher) { m.weights = w }
}

// WithConcurrency bounds parallelism for batch runs.
func WithConcurrency(n int) Option {
	return func(m *Matcher) {
		if n > 0 {
			m.concurrency = n
		}
	}
}

// NewMatcher creates a Matcher. The classifier fills in the domain when
// extraction could not determine one.
func NewMatcher(extractor *extract.Extractor, classifier domain.Classifier, opts ...Option) *Matcher {
	m := &Matcher{
		extractor:   extractor,
		classifier:  classifier,
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// PrepareResume extracts a structured resume from raw text and
// classifies its domain when the model did not provide a usable one.
func (m *Matcher) PrepareResume(ctx context.Context, text string) *types.ResumeRecord {
	record := m.extractor.ExtractResume(ctx, text)
	if !domain.IsKnown(record.Domain) {
		if c := m.classifier.Classify(ctx, text); c != nil {
			record.Domain = c.PrimaryDomain
		}
	}
	return record
}

// PrepareJob extracts a structured job description from raw text and
// classifies its domain when the model did not provide a usable one.
func (m *Matcher) PrepareJob(ctx context.Context, text string) *types.JDRecord {
	record := m.extractor.ExtractJob(ctx, text)
	if !domain.IsKnown(record.Domain) {
		if c := m.classifier.Classify(ctx, text); c != nil {
			record.Domain = c.PrimaryDomain
		}
	}
	return record
}

// MatchPair runs the full pipeline for one resume against one job
// posting. The resume and job are extracted concurrently.
func (m *Matcher) MatchPair(ctx context.Context, resumeText, jobText string) (*types.ResumeRecord, *types.JDRecord, *types.MatchResult, error) {
	var resume *types.ResumeRecord
	var job *types.JDRecord

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		resume = m.PrepareResume(gCtx, resumeText)
		return nil
	})
	g.Go(func() error {
		job = m.PrepareJob(gCtx, jobText)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}

	result, err := scoring.Score(resume, job, m.weights)
	if err != nil {
		return resume, job, nil, fmt.Errorf("scoring failed: %w", err)
	}
	return resume, job, result, nil
}

// MatchBatch scores every resume document against an already prepared
// job description and returns outcomes ranked by overall score, best
// first. Failed documents sort last and carry their error.
func (m *Matcher) MatchBatch(ctx context.Context, resumes []Document, job *types.JDRecord) []Outcome {
	outcomes := make([]Outcome, len(resumes))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(m.concurrency)

	for i, doc := range resumes {
		g.Go(func() error {
			resume := m.PrepareResume(gCtx, doc.Text)
			result, err := scoring.Score(resume, job, m.weights)
			outcomes[i] = Outcome{Name: doc.Name, Resume: resume, Result: result, Err: err}
			return nil
		})
	}
	// Goroutines never return errors; failures stay in their outcome.
	_ = g.Wait()

	sort.SliceStable(outcomes, func(a, b int) bool {
		oa, ob := outcomes[a], outcomes[b]
		if (oa.Result == nil) != (ob.Result == nil) {
			return ob.Result == nil
		}
		if oa.Result == nil {
			return false
		}
		return oa.Result.OverallScore > ob.Result.OverallScore
	})
	return outcomes
}
