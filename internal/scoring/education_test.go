package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-matcher/internal/types"
)

func TestDegreeLevel(t *testing.T) {
	tests := []struct {
		degree string
		level  int
	}{
		{"PhD in Computer Science", 4},
		{"Doctorate", 4},
		{"Master of Science", 3},
		{"M.Tech", 3},
		{"MBA", 3},
		{"Bachelor of Arts", 2},
		{"B.Tech in ECE", 2},
		{"B.S. Computer Science", 2},
		{"Diploma in Nursing", 1},
		{"High School", 0},
		{"Certificate Course", 0},
		{"", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.level, degreeLevel(tt.degree), "degree %q", tt.degree)
	}
}

func TestHighestDegree(t *testing.T) {
	entries := []types.Education{
		{Degree: "Diploma in Electronics"},
		{Degree: "Master of Science"},
		{Degree: "Bachelor of Engineering"},
	}

	degree, level := highestDegree(entries)
	assert.Equal(t, "Master of Science", degree)
	assert.Equal(t, 3, level)

	degree, level = highestDegree(nil)
	assert.Equal(t, degreeNotSpecified, degree)
	assert.Zero(t, level)
}

func TestCheckEducation_OverqualifiedIsNotPenalized(t *testing.T) {
	resume := &types.ResumeRecord{Education: []types.Education{{Degree: "PhD in Biology"}}}
	jd := &types.JDRecord{RequiredEducation: "Bachelor"}

	match, score := checkEducation(resume, jd)

	assert.True(t, match.Met)
	assert.True(t, match.IsOverqualified)
	assert.Equal(t, maxEducationScore, score)
	assert.Equal(t, 100, match.Percentage)
	assert.Contains(t, match.Details, "overqualified")
}

func TestCheckEducation_PartialCredit(t *testing.T) {
	resume := &types.ResumeRecord{Education: []types.Education{{Degree: "Diploma"}}}
	jd := &types.JDRecord{RequiredEducation: "Master"}

	match, score := checkEducation(resume, jd)

	assert.False(t, match.Met)
	assert.Equal(t, 33, match.Percentage)
	assert.Equal(t, 8, score)
	assert.False(t, match.IsOverqualified)
}

func TestCheckEducation_NoRequirement(t *testing.T) {
	resume := &types.ResumeRecord{}
	for _, required := range []string{"", "Not specified", "High School"} {
		jd := &types.JDRecord{RequiredEducation: required}
		match, score := checkEducation(resume, jd)
		assert.True(t, match.Met, "required %q", required)
		assert.Equal(t, maxEducationScore, score)
	}
}

func TestCheckSkills_Details(t *testing.T) {
	resume := &types.ResumeRecord{Skills: []types.Skill{
		{Name: "Python"}, {Name: "Go"}, {Name: "SQL"},
	}}
	jd := &types.JDRecord{RequiredSkills: []string{"Python", "Go", "Kafka", "Rust"}}

	match, score := checkSkills(resume, jd)

	assert.Equal(t, 50, match.Percentage)
	assert.True(t, match.Met)
	assert.Equal(t, 20, score)
	assert.Equal(t, []string{"Python", "Go"}, match.MatchedSkills)
	assert.Equal(t, []string{"Kafka", "Rust"}, match.MissingSkills)
	assert.Equal(t, []string{"Python", "Go", "SQL"}, match.AllCandidateSkills)
	assert.Contains(t, match.Details, "2/4 required skills")
}

func TestCheckSkills_MinimumOnePointWithAnyMatch(t *testing.T) {
	resume := &types.ResumeRecord{Skills: []types.Skill{{Name: "Python"}}}
	required := make([]string, 0, 50)
	required = append(required, "Python")
	for i := 0; i < 49; i++ {
		required = append(required, "Kubernetes")
	}
	jd := &types.JDRecord{RequiredSkills: required}

	match, score := checkSkills(resume, jd)

	assert.Equal(t, 1, score)
	assert.Equal(t, 2, match.Percentage)
	assert.False(t, match.Met)
}

func TestCheckExperience_ZeroYearsAgainstRequirement(t *testing.T) {
	resume := &types.ResumeRecord{TotalYearsExperience: 0}
	jd := &types.JDRecord{MinExperienceYears: 5}

	match, score := checkExperience(resume, jd)

	assert.False(t, match.Met)
	assert.Equal(t, 0, match.Percentage)
	assert.Equal(t, 1, score)
}
