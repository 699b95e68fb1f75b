package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListQuery_Defaults(t *testing.T) {
	query, args := listQuery(MatchFilters{})

	assert.Contains(t, query, "ORDER BY overall_score DESC")
	assert.Contains(t, query, "LIMIT $1")
	assert.Equal(t, []any{50}, args)
}

func TestListQuery_AllFilters(t *testing.T) {
	query, args := listQuery(MatchFilters{
		ResumeName: "jane",
		JobName:    "backend",
		MinScore:   60,
		Limit:      10,
	})

	assert.Contains(t, query, "resume_name ILIKE $1")
	assert.Contains(t, query, "job_name ILIKE $2")
	assert.Contains(t, query, "overall_score >= $3")
	assert.Contains(t, query, "LIMIT $4")
	assert.Equal(t, []any{"%jane%", "%backend%", 60, 10}, args)
}

func TestListQuery_MinScoreOnly(t *testing.T) {
	query, args := listQuery(MatchFilters{MinScore: 75})

	assert.Contains(t, query, "overall_score >= $1")
	assert.Contains(t, query, "LIMIT $2")
	assert.Equal(t, []any{75, 50}, args)
}
