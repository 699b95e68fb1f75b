package types

// DomainMatch reports how compatible the candidate's working domain is
// with the job's domain.
type DomainMatch struct {
	ResumeDomain     string  `json:"resumeDomain"`
	JDDomain         string  `json:"jdDomain"`
	Compatibility    int     `json:"compatibility"`
	Level            string  `json:"level"`
	AdjustmentFactor float64 `json:"adjustmentFactor"`
	Details          string  `json:"details"`
}

// ExperienceMatch reports the years-of-experience comparison.
type ExperienceMatch struct {
	Met                 bool   `json:"met"`
	CandidateExperience int    `json:"candidateExperience"`
	RequiredExperience  int    `json:"requiredExperience"`
	Percentage          int    `json:"percentage"`
	Details             string `json:"details"`
}

// EducationMatch reports the degree-level comparison. Overqualification is
// surfaced but never penalized.
type EducationMatch struct {
	Met             bool   `json:"met"`
	CandidateDegree string `json:"candidateDegree"`
	RequiredDegree  string `json:"requiredDegree"`
	Percentage      int    `json:"percentage"`
	IsOverqualified bool   `json:"isOverqualified"`
	Details         string `json:"details"`
}

// SkillMatchDetail records how a single required skill was satisfied.
type SkillMatchDetail struct {
	Required   string  `json:"required"`
	Matched    string  `json:"matched"`
	Strategy   string  `json:"strategy"`
	Confidence float64 `json:"confidence"`
}

// SkillsMatch reports the required-skill coverage. MatchedSkills and
// MissingSkills hold the job's skill names, not the candidate spellings.
type SkillsMatch struct {
	Met                  bool               `json:"met"`
	CandidateSkillsCount int                `json:"candidateSkillsCount"`
	RequiredSkillsCount  int                `json:"requiredSkillsCount"`
	Percentage           int                `json:"percentage"`
	MatchedSkills        []string           `json:"matchedSkills"`
	MissingSkills        []string           `json:"missingSkills"`
	SkillMatchDetails    []SkillMatchDetail `json:"skillMatchDetails"`
	AllCandidateSkills   []string           `json:"allCandidateSkills"`
	Details              string             `json:"details"`
}

// CriteriaAnalysis groups the per-criterion analyses of one match.
type CriteriaAnalysis struct {
	DomainMatch     DomainMatch     `json:"domainMatch"`
	ExperienceMatch ExperienceMatch `json:"experienceMatch"`
	EducationMatch  EducationMatch  `json:"educationMatch"`
	SkillsMatch     SkillsMatch     `json:"skillsMatch"`
}

// SectionScores holds the weighted per-section point totals.
type SectionScores struct {
	ExperienceMatch int `json:"experienceMatch"`
	EducationMatch  int `json:"educationMatch"`
	SkillsMatch     int `json:"skillsMatch"`
}

// Assessment is the human-facing tier for an overall score.
type Assessment struct {
	Label        string `json:"label"`
	SeverityTier string `json:"severityTier"`
}

// MatchResult is the full output of scoring one resume against one job
// description. Field names are part of the output contract.
type MatchResult struct {
	CriteriaAnalysis CriteriaAnalysis `json:"criteriaAnalysis"`
	SectionScores    SectionScores    `json:"sectionScores"`
	RawOverallScore  float64          `json:"rawOverallScore"`
	DomainAdjustment float64          `json:"domainAdjustment"`
	OverallScore     int              `json:"overallScore"`
	Assessment       Assessment       `json:"assessment"`
	Gaps             []string         `json:"gaps"`
	Recommendations  []string         `json:"recommendations"`
	Summary          string           `json:"summary"`
}
