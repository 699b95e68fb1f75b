package scoring

import (
	"fmt"

	"github.com/jonathan/resume-matcher/internal/types"
)

// checkExperience compares candidate years against the job's minimum.
// A job with no minimum is automatically met at full score.
func checkExperience(resume *types.ResumeRecord, jd *types.JDRecord) (types.ExperienceMatch, int) {
	candidate := resume.TotalYearsExperience
	required := jd.MinExperienceYears
	if candidate < 0 {
		candidate = 0
	}
	if required < 0 {
		required = 0
	}

	match := types.ExperienceMatch{
		Met:                 candidate >= required,
		CandidateExperience: candidate,
		RequiredExperience:  required,
	}

	switch {
	case required == 0:
		match.Percentage = 100
		match.Details = fmt.Sprintf("No specific experience required. Candidate has %d years.", candidate)
		return match, maxExperienceScore
	case match.Met:
		match.Percentage = 100
		match.Details = fmt.Sprintf("Candidate has %d years, required %d years. Meets requirement.", candidate, required)
		return match, maxExperienceScore
	default:
		match.Percentage = 100 * candidate / required
		if match.Percentage > 100 {
			match.Percentage = 100
		}
		score := maxExperienceScore * candidate / required
		if score < 1 {
			score = 1
		}
		match.Details = fmt.Sprintf("Candidate has %d years, required %d years. %d%% match.", candidate, required, match.Percentage)
		return match, score
	}
}
