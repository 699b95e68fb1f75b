package scoring

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/resume-matcher/internal/domain"
	"github.com/jonathan/resume-matcher/internal/types"
)

// ErrMissingInput is returned when scoring is attempted without both
// records. It is the only error the engine produces; malformed data in a
// present record degrades instead of failing.
var ErrMissingInput = errors.New("scoring requires both a resume and a job description record")

// noDomainPenaltyScore is the compatibility score at or above which the
// raw overall score passes through unadjusted.
const noDomainPenaltyScore = 85

// Score computes the match result for a validated resume and job
// description pair. A nil weights pointer means defaults; weights that do
// not sum to 100 are replaced by the defaults with a printed warning.
func Score(resume *types.ResumeRecord, jd *types.JDRecord, weights *Weights) (*types.MatchResult, error) {
	if resume == nil || jd == nil {
		return nil, ErrMissingInput
	}

	w := DefaultWeights()
	if weights != nil {
		if sum := weights.Sum(); sum != 100 {
			fmt.Printf("Warning: weights sum to %d, expected 100. Using defaults.\n", sum)
		} else {
			w = *weights
		}
	}

	// 1. Domain compatibility and adjustment factor
	compat := domain.Compat(resume.Domain, jd.Domain)
	adjustment := domain.AdjustmentFactor(compat.Score)

	// 2. Per-criterion analysis
	expMatch, expScore := checkExperience(resume, jd)
	eduMatch, eduScore := checkEducation(resume, jd)
	sklMatch, sklScore := checkSkills(resume, jd)

	// 3. Weighted combination
	raw := float64(expScore)/maxExperienceScore*float64(w.Experience) +
		float64(eduScore)/maxEducationScore*float64(w.Education) +
		float64(sklScore)/maxSkillsScore*float64(w.Skills)
	raw = math.Min(100, math.Max(0, raw))

	// 4. Domain penalty, only below the no-penalty threshold
	var overall int
	if compat.Score >= noDomainPenaltyScore {
		overall = int(math.Round(raw))
	} else {
		overall = int(math.Floor(raw * adjustment))
	}

	result := &types.MatchResult{
		CriteriaAnalysis: types.CriteriaAnalysis{
			DomainMatch: types.DomainMatch{
				ResumeDomain:     resume.Domain,
				JDDomain:         jd.Domain,
				Compatibility:    compat.Score,
				Level:            compat.Level,
				AdjustmentFactor: adjustment,
				Details:          compat.Details,
			},
			ExperienceMatch: expMatch,
			EducationMatch:  eduMatch,
			SkillsMatch:     sklMatch,
		},
		SectionScores: types.SectionScores{
			ExperienceMatch: expScore,
			EducationMatch:  eduScore,
			SkillsMatch:     sklScore,
		},
		RawOverallScore:  raw,
		DomainAdjustment: adjustment,
		OverallScore:     overall,
		Assessment:       assess(overall),
	}

	result.Gaps = buildGaps(compat, expMatch, eduMatch, sklMatch)
	result.Recommendations = []string{
		compat.Details,
		expMatch.Details,
		eduMatch.Details,
		sklMatch.Details,
	}
	result.Summary = buildSummary(compat, expMatch, eduMatch, sklMatch, overall)
	return result, nil
}

func buildGaps(compat domain.Compatibility, exp types.ExperienceMatch, edu types.EducationMatch, skl types.SkillsMatch) []string {
	gaps := []string{}
	if compat.Score < 60 {
		gaps = append(gaps, fmt.Sprintf("Domain shift: %s -> %s (%d%% compatibility)", compat.ResumeDomain, compat.JDDomain, compat.Score))
	}
	if !exp.Met {
		gaps = append(gaps, fmt.Sprintf("Experience: %d%% match", exp.Percentage))
	}
	if !edu.Met {
		gaps = append(gaps, fmt.Sprintf("Education: %d%% match", edu.Percentage))
	}
	if !skl.Met {
		gaps = append(gaps, fmt.Sprintf("Skills: %d%% match", skl.Percentage))
	}
	return gaps
}

func buildSummary(compat domain.Compatibility, exp types.ExperienceMatch, edu types.EducationMatch, skl types.SkillsMatch, overall int) string {
	matched := 0
	for _, met := range []bool{exp.Met, edu.Met, skl.Met} {
		if met {
			matched++
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Matches %d/3 criteria. ", matched)

	if compat.Score < 35 {
		fmt.Fprintf(&sb, "Major domain shift (%s -> %s). ", compat.ResumeDomain, compat.JDDomain)
	} else if compat.Score < 60 {
		fmt.Fprintf(&sb, "Moderate domain change (%s -> %s). ", compat.ResumeDomain, compat.JDDomain)
	}

	switch {
	case overall >= 75:
		sb.WriteString("Strong candidate for interview.")
	case overall >= 60:
		sb.WriteString("Good candidate to consider.")
	case overall >= 40:
		sb.WriteString("Moderate candidate with gaps.")
	default:
		sb.WriteString("Significant improvement needed.")
	}
	return sb.String()
}
