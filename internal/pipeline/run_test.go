package pipeline

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/domain"
	"github.com/jonathan/resume-matcher/internal/extract"
	"github.com/jonathan/resume-matcher/internal/llm"
)

// scriptedClient returns a canned response for the first marker found
// in the prompt.
type scriptedClient struct {
	responses map[string]string
}

func (s *scriptedClient) lookup(prompt string) (string, error) {
	for marker, out := range s.responses {
		if strings.Contains(prompt, marker) {
			return out, nil
		}
	}
	return "", errors.New("no scripted response")
}

func (s *scriptedClient) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	return s.lookup(prompt)
}

func (s *scriptedClient) GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	return s.lookup(prompt)
}

func (s *scriptedClient) GetModel(tier llm.ModelTier) string { return "scripted" }
func (s *scriptedClient) Close() error                       { return nil }

type fixedClassifier struct {
	calls atomic.Int64
	out   *domain.Classification
}

func (f *fixedClassifier) Classify(ctx context.Context, text string) *domain.Classification {
	f.calls.Add(1)
	return f.out
}

const (
	strongResume = `{
		"role": "Backend Engineer",
		"totalYearsExperience": 6,
		"domain": "Backend Development",
		"skills": [{"name": "Go"}, {"name": "PostgreSQL"}],
		"education": [{"degree": "Bachelor of Science", "field": "CS"}]
	}`
	weakResume = `{
		"role": "Sales Associate",
		"totalYearsExperience": 1,
		"domain": "Sales/Marketing",
		"skills": [{"name": "CRM"}],
		"education": []
	}`
	backendJob = `{
		"jobTitle": "Backend Engineer",
		"minExperienceYears": 5,
		"requiredEducation": "Bachelor",
		"requiredSkills": ["Go", "PostgreSQL"],
		"domain": "Backend Development"
	}`
)

func TestPrepareResume_KeepsExtractedDomain(t *testing.T) {
	client := &scriptedClient{responses: map[string]string{"RESUME_A": strongResume}}
	classifier := &fixedClassifier{out: &domain.Classification{PrimaryDomain: "Healthcare"}}
	matcher := NewMatcher(extract.NewExtractor(client, false), classifier)

	record := matcher.PrepareResume(context.Background(), "RESUME_A text")

	assert.Equal(t, "Backend Development", record.Domain)
	assert.Zero(t, classifier.calls.Load(), "classifier should not run when extraction names a domain")
}

func TestPrepareResume_ClassifiesWhenDomainUnknown(t *testing.T) {
	client := &scriptedClient{responses: map[string]string{
		"RESUME_A": `{"role": "Nurse", "totalYearsExperience": 3}`,
	}}
	classifier := &fixedClassifier{out: &domain.Classification{PrimaryDomain: "Healthcare", Method: domain.MethodKeyword}}
	matcher := NewMatcher(extract.NewExtractor(client, false), classifier)

	record := matcher.PrepareResume(context.Background(), "RESUME_A text")

	assert.Equal(t, "Healthcare", record.Domain)
	assert.Equal(t, int64(1), classifier.calls.Load())
}

func TestMatchPair_AlignedCandidateScoresFull(t *testing.T) {
	client := &scriptedClient{responses: map[string]string{
		"RESUME_A": strongResume,
		"JOB_A":    backendJob,
	}}
	matcher := NewMatcher(extract.NewExtractor(client, false), domain.KeywordClassifier{})

	resume, job, result, err := matcher.MatchPair(context.Background(), "RESUME_A text", "JOB_A text")
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "Backend Engineer", resume.Role)
	assert.Equal(t, "Backend Engineer", job.JobTitle)
	assert.Equal(t, 100, result.OverallScore)
	assert.Equal(t, "excellent", result.Assessment.SeverityTier)
}

func TestMatchBatch_RanksBestFirst(t *testing.T) {
	client := &scriptedClient{responses: map[string]string{
		"RESUME_WEAK":   weakResume,
		"RESUME_STRONG": strongResume,
		"JOB_A":         backendJob,
	}}
	matcher := NewMatcher(extract.NewExtractor(client, false), domain.KeywordClassifier{}, WithConcurrency(2))

	job := matcher.PrepareJob(context.Background(), "JOB_A text")
	outcomes := matcher.MatchBatch(context.Background(), []Document{
		{Name: "weak.pdf", Text: "RESUME_WEAK text"},
		{Name: "strong.pdf", Text: "RESUME_STRONG text"},
	}, job)

	require.Len(t, outcomes, 2)
	assert.Equal(t, "strong.pdf", outcomes[0].Name)
	assert.Equal(t, "weak.pdf", outcomes[1].Name)
	assert.Greater(t, outcomes[0].Result.OverallScore, outcomes[1].Result.OverallScore)
	for _, o := range outcomes {
		assert.NoError(t, o.Err)
	}
}

func TestMatchBatch_Deterministic(t *testing.T) {
	client := &scriptedClient{responses: map[string]string{
		"RESUME_WEAK":   weakResume,
		"RESUME_STRONG": strongResume,
		"JOB_A":         backendJob,
	}}
	matcher := NewMatcher(extract.NewExtractor(client, false), domain.KeywordClassifier{})

	job := matcher.PrepareJob(context.Background(), "JOB_A text")
	docs := []Document{
		{Name: "weak.pdf", Text: "RESUME_WEAK text"},
		{Name: "strong.pdf", Text: "RESUME_STRONG text"},
	}

	first := matcher.MatchBatch(context.Background(), docs, job)
	for i := 0; i < 5; i++ {
		again := matcher.MatchBatch(context.Background(), docs, job)
		require.Equal(t, len(first), len(again))
		for j := range first {
			assert.Equal(t, first[j].Name, again[j].Name)
			assert.Equal(t, first[j].Result.OverallScore, again[j].Result.OverallScore)
		}
	}
}
