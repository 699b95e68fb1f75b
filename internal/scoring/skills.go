package scoring

import (
	"fmt"
	"math"

	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
)

// checkSkills runs the skill matcher over every required skill. A job
// listing no required skills is automatically met at full score.
func checkSkills(resume *types.ResumeRecord, jd *types.JDRecord) (types.SkillsMatch, int) {
	candidateSkills := resume.SkillNames()
	requiredSkills := jd.CleanRequiredSkills()

	if len(requiredSkills) == 0 {
		return types.SkillsMatch{
			Met:                  true,
			CandidateSkillsCount: len(candidateSkills),
			RequiredSkillsCount:  0,
			Percentage:           100,
			MatchedSkills:        candidateSkills,
			MissingSkills:        []string{},
			SkillMatchDetails:    []types.SkillMatchDetail{},
			AllCandidateSkills:   candidateSkills,
			Details:              fmt.Sprintf("No specific skills required. Candidate has %d skills.", len(candidateSkills)),
		}, maxSkillsScore
	}

	listMatch := skills.MatchList(candidateSkills, requiredSkills)
	matched := len(listMatch.Matched)
	required := len(requiredSkills)

	percentage := int(math.Round(100 * float64(matched) / float64(required)))
	score := int(math.Round(maxSkillsScore * float64(matched) / float64(required)))
	if matched > 0 && score < 1 {
		score = 1
	}

	match := types.SkillsMatch{
		Met:                  percentage >= 50,
		CandidateSkillsCount: matched,
		RequiredSkillsCount:  required,
		Percentage:           percentage,
		MatchedSkills:        listMatch.Matched,
		MissingSkills:        listMatch.Missing,
		SkillMatchDetails:    listMatch.Details,
		AllCandidateSkills:   candidateSkills,
		Details:              skillsDetails(matched, required, len(candidateSkills), percentage),
	}
	return match, score
}

func skillsDetails(matched, required, candidates, percentage int) string {
	switch {
	case percentage == 0:
		return fmt.Sprintf("No matching skills. Candidate has %d, required %d.", candidates, required)
	case percentage < 25:
		return fmt.Sprintf("%d/%d required skills (%d%%). Limited match.", matched, required, percentage)
	case percentage < 50:
		return fmt.Sprintf("%d/%d required skills (%d%%). Partial match.", matched, required, percentage)
	case percentage < 75:
		return fmt.Sprintf("%d/%d required skills (%d%%). Good match.", matched, required, percentage)
	default:
		return fmt.Sprintf("%d/%d required skills (%d%%). Excellent match.", matched, required, percentage)
	}
}
