// Package extract turns raw document text into validated records. It
// drives the LLM extraction prompt, repairs the model output, and applies
// a lenient structural validation that always produces a usable record.
package extract

import "github.com/jonathan/resume-matcher/internal/types"

// Sentinel values used when a field could not be extracted.
const (
	NotExtracted  = "Not extracted"
	NotSpecified  = "Not specified"
	DomainUnknown = "Unknown"
)

// DefaultResume returns the canonical fallback resume record. Extraction
// failures of any kind degrade to this structure so downstream scoring
// always has a well-formed input.
func DefaultResume() *types.ResumeRecord {
	return &types.ResumeRecord{
		Role:                 NotExtracted,
		TotalYearsExperience: 0,
		ExperienceDetails:    []types.ExperienceDetail{},
		Skills:               []types.Skill{},
		Education:            []types.Education{},
		Certifications:       []string{},
		Domain:               DomainUnknown,
		Summary:              NotExtracted,
	}
}

// DefaultJob returns the canonical fallback job description record.
func DefaultJob() *types.JDRecord {
	return &types.JDRecord{
		JobTitle:           NotExtracted,
		MinExperienceYears: 0,
		RequiredEducation:  NotSpecified,
		RequiredSkills:     []string{},
		PreferredSkills:    []string{},
		Domain:             DomainUnknown,
	}
}
