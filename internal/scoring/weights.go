// Package scoring combines experience, education, skill, and domain
// signals into a single auditable match score. Scoring is a pure function
// over validated records; the same inputs always produce the same result.
package scoring

// Section point ceilings. Sub-scores are normalized against these before
// the weights apply.
const (
	maxExperienceScore = 35
	maxEducationScore  = 25
	maxSkillsScore     = 40
)

// Weights apportions the overall score across the three criteria. Values
// are percentage points and must sum to 100.
type Weights struct {
	Experience int `json:"experience" validate:"min=0,max=100"`
	Education  int `json:"education" validate:"min=0,max=100"`
	Skills     int `json:"skills" validate:"min=0,max=100"`
}

// DefaultWeights returns the standard 35/25/40 split.
func DefaultWeights() Weights {
	return Weights{Experience: 35, Education: 25, Skills: 40}
}

// Sum returns the total weight.
func (w Weights) Sum() int {
	return w.Experience + w.Education + w.Skills
}
