package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/types"
)

func TestCheckExtraction_ValidResumePayload(t *testing.T) {
	payload := map[string]any{
		"role":                 "Engineer",
		"totalYearsExperience": float64(5),
		"skills":               []any{"Python", map[string]any{"name": "Go"}},
		"education":            []any{map[string]any{"degree": "Bachelor"}},
		"summary":              "summary text",
	}

	assert.NoError(t, CheckExtraction(types.DocTypeResume, payload))
}

func TestCheckExtraction_MissingRequiredField(t *testing.T) {
	payload := map[string]any{
		"role":   "Engineer",
		"skills": []any{"Python"},
	}

	err := CheckExtraction(types.DocTypeResume, payload)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestCheckExtraction_NullFieldsAllowed(t *testing.T) {
	// The schema is advisory and stays permissive: nulls pass so the
	// lenient validator can substitute defaults downstream.
	payload := map[string]any{
		"role":                 nil,
		"totalYearsExperience": nil,
		"skills":               nil,
		"education":            nil,
	}

	assert.NoError(t, CheckExtraction(types.DocTypeResume, payload))
}

func TestCheckExtraction_JobPayload(t *testing.T) {
	payload := map[string]any{
		"jobTitle":           "Backend Engineer",
		"minExperienceYears": "5",
		"requiredSkills":     []any{"Go", "PostgreSQL"},
	}

	assert.NoError(t, CheckExtraction(types.DocTypeJob, payload))

	err := CheckExtraction(types.DocTypeJob, map[string]any{"jobTitle": "x"})
	require.Error(t, err)
}

func TestValidateJSONString_BadSchema(t *testing.T) {
	err := ValidateJSONString("{not a schema", `{"a": 1}`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}
