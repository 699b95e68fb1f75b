package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const degreeNotSpecified = "not specified"

// degreeHierarchy ranks degree keywords from doctorate down. Scanning
// happens in declaration order and the first keyword found in a degree
// string wins, so "master" outranks "bachelor" inside one string.
var degreeHierarchy = []struct {
	Keyword string
	Level   int
}{
	{"phd", 4},
	{"doctorate", 4},
	{"master", 3},
	{"m.tech", 3},
	{"mba", 3},
	{"bachelor", 2},
	{"b.tech", 2},
	{"b.s", 2},
	{"b.a", 2},
	{"diploma", 1},
	{"high school", 0},
}

// degreeLevel maps a free-form degree string to its hierarchy level.
// Unrecognized degrees rank at 0.
func degreeLevel(degree string) int {
	lower := strings.ToLower(strings.TrimSpace(degree))
	if lower == "" {
		return 0
	}
	for _, entry := range degreeHierarchy {
		if strings.Contains(lower, entry.Keyword) {
			return entry.Level
		}
	}
	return 0
}

// highestDegree scans all education entries and keeps the best-ranked one,
// returning its original spelling and its level.
func highestDegree(entries []types.Education) (string, int) {
	degree := degreeNotSpecified
	level := 0
	for _, entry := range entries {
		if l := degreeLevel(entry.Degree); l > level {
			level = l
			degree = entry.Degree
		}
	}
	return degree, level
}

// checkEducation compares the candidate's highest degree against the
// required one. Overqualification is flagged but scores full marks.
func checkEducation(resume *types.ResumeRecord, jd *types.JDRecord) (types.EducationMatch, int) {
	candidateDegree, candidateLevel := highestDegree(resume.Education)
	requiredDegree := jd.RequiredEducation
	if strings.TrimSpace(requiredDegree) == "" {
		requiredDegree = degreeNotSpecified
	}
	requiredLevel := degreeLevel(requiredDegree)

	match := types.EducationMatch{
		Met:             candidateLevel >= requiredLevel,
		CandidateDegree: candidateDegree,
		RequiredDegree:  requiredDegree,
	}

	switch {
	case requiredLevel == 0:
		match.Percentage = 100
		match.Details = "No specific education required."
		return match, maxEducationScore
	case match.Met:
		match.Percentage = 100
		match.IsOverqualified = candidateLevel > requiredLevel
		if match.IsOverqualified {
			match.Details = fmt.Sprintf("Candidate is overqualified: has %s (required: %s).", candidateDegree, requiredDegree)
		} else {
			match.Details = fmt.Sprintf("Candidate has %s, required: %s. Meets requirement.", candidateDegree, requiredDegree)
		}
		return match, maxEducationScore
	default:
		match.Percentage = 100 * candidateLevel / requiredLevel
		score := maxEducationScore * candidateLevel / requiredLevel
		if score < 1 && candidateLevel > 0 {
			score = 1
		}
		match.Details = fmt.Sprintf("Candidate has %s, required: %s. %d%% match.", candidateDegree, requiredDegree, match.Percentage)
		return match, score
	}
}
