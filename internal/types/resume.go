// Package types defines the structured records exchanged between the
// extraction, classification, and scoring stages.
package types

import "strings"

// DocType identifies which extraction contract a document follows.
type DocType string

// Supported document types
const (
	DocTypeResume DocType = "Resume"
	DocTypeJob    DocType = "Job Description"
)

// Skill is a single candidate skill. Raw extraction output may deliver
// skills as bare strings or as objects; the validator normalizes both
// forms to this type and drops entries without a name.
type Skill struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency,omitempty"`
}

// ExperienceDetail describes one position held by the candidate.
type ExperienceDetail struct {
	Role      string  `json:"role"`
	Company   string  `json:"company"`
	StartDate string  `json:"startDate,omitempty"`
	EndDate   string  `json:"endDate,omitempty"`
	Years     float64 `json:"years"`
}

// Education describes one education entry on a resume.
type Education struct {
	Degree      string `json:"degree"`
	Field       string `json:"field,omitempty"`
	Institution string `json:"institution,omitempty"`
	Year        int    `json:"year,omitempty"`
}

// ResumeRecord is the validated form of an extracted resume. Records are
// built by the extract package only; downstream code never reads the raw
// parsed payload.
type ResumeRecord struct {
	Role                 string             `json:"role"`
	TotalYearsExperience int                `json:"totalYearsExperience"`
	ExperienceDetails    []ExperienceDetail `json:"experienceDetails"`
	Skills               []Skill            `json:"skills"`
	Education            []Education        `json:"education"`
	Certifications       []string           `json:"certifications"`
	Domain               string             `json:"domain"`
	Summary              string             `json:"summary"`

	Responsibilities []string `json:"responsibilities,omitempty"`
	KeyAchievements  []string `json:"keyAchievements,omitempty"`
	Technologies     []string `json:"technologies,omitempty"`
	SoftSkills       []string `json:"softSkills,omitempty"`
	Languages        []string `json:"languages,omitempty"`
}

// SkillNames returns the non-empty skill names in extraction order.
func (r *ResumeRecord) SkillNames() []string {
	names := make([]string, 0, len(r.Skills))
	for _, s := range r.Skills {
		if name := strings.TrimSpace(s.Name); name != "" {
			names = append(names, name)
		}
	}
	return names
}
