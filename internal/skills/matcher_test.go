package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"  Python  ", "python"},
		{"Node.js", "nodejs"},
		{"C++", "c"},
		{"CI/CD", "cicd"},
		{"Machine   Learning", "machine learning"},
		{"REST-API", "restapi"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Normalize(tt.input), "input %q", tt.input)
	}
}

func TestMatchSkill_Strategies(t *testing.T) {
	tests := []struct {
		name       string
		candidate  string
		required   string
		strategy   string
		confidence float64
	}{
		{name: "exact", candidate: "Python", required: "python", strategy: StrategyExact, confidence: 1.0},
		{name: "exact after normalization", candidate: "Node.js", required: "NodeJS", strategy: StrategyExact, confidence: 1.0},
		{name: "analogy react", candidate: "React", required: "ReactJS", strategy: StrategyAnalogy, confidence: 0.95},
		{name: "analogy golang", candidate: "Golang", required: "Go", strategy: StrategyAnalogy, confidence: 0.95},
		{name: "analogy k8s", candidate: "k8s", required: "Kubernetes", strategy: StrategyAnalogy, confidence: 0.95},
		{name: "fuzzy typo", candidate: "Javascrpt", required: "JavaScript", strategy: StrategyFuzzy},
		{name: "substring", candidate: "PostgreSQL Administration", required: "PostgreSQL", strategy: StrategySubstring, confidence: 0.88},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := MatchSkill(tt.candidate, tt.required)
			require.True(t, m.IsMatch)
			assert.Equal(t, tt.strategy, m.Strategy)
			if tt.confidence > 0 {
				assert.InDelta(t, tt.confidence, m.Confidence, 0.001)
			} else {
				assert.GreaterOrEqual(t, m.Confidence, 0.70)
			}
		})
	}
}

func TestMatchSkill_NoMatch(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		required  string
	}{
		{name: "unrelated", candidate: "Accounting", required: "Kubernetes"},
		{name: "short strings skip substring", candidate: "sql", required: "mysql"},
		{name: "empty candidate", candidate: "", required: "Python"},
		{name: "empty required", candidate: "Python", required: ""},
		{name: "below fuzzy threshold", candidate: "Java", required: "Haskell"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := MatchSkill(tt.candidate, tt.required)
			assert.False(t, m.IsMatch)
			assert.Equal(t, StrategyNone, m.Strategy)
			assert.Zero(t, m.Confidence)
		})
	}
}

func TestMatchList_KeepsBestMatchPerRequiredSkill(t *testing.T) {
	candidates := []string{"React", "ReactJS", "Golang", "PostgreSQL"}
	required := []string{"ReactJS", "Go", "Kafka"}

	result := MatchList(candidates, required)

	assert.Equal(t, []string{"ReactJS", "Go"}, result.Matched)
	assert.Equal(t, []string{"Kafka"}, result.Missing)
	require.Len(t, result.Details, 2)

	// "ReactJS" matches the exact candidate spelling over the analogy.
	assert.Equal(t, "ReactJS", result.Details[0].Required)
	assert.Equal(t, "ReactJS", result.Details[0].Matched)
	assert.Equal(t, StrategyExact, result.Details[0].Strategy)
	assert.Equal(t, 1.0, result.Details[0].Confidence)

	assert.Equal(t, "Go", result.Details[1].Required)
	assert.Equal(t, "Golang", result.Details[1].Matched)
	assert.Equal(t, StrategyAnalogy, result.Details[1].Strategy)
}

func TestMatchList_MatchedHoldsRequiredSpelling(t *testing.T) {
	result := MatchList([]string{"React"}, []string{"ReactJS"})

	require.Len(t, result.Matched, 1)
	assert.Equal(t, "ReactJS", result.Matched[0])
	assert.Equal(t, "React", result.Details[0].Matched)
}

func TestMatchList_Empty(t *testing.T) {
	result := MatchList(nil, nil)
	assert.Empty(t, result.Matched)
	assert.Empty(t, result.Missing)

	result = MatchList(nil, []string{"Python"})
	assert.Equal(t, []string{"Python"}, result.Missing)
}
