package types

import "strings"

// JDRecord is the validated form of an extracted job description.
type JDRecord struct {
	JobTitle           string   `json:"jobTitle"`
	MinExperienceYears int      `json:"minExperienceYears"`
	RequiredEducation  string   `json:"requiredEducation"`
	RequiredSkills     []string `json:"requiredSkills"`
	PreferredSkills    []string `json:"preferredSkills,omitempty"`
	Responsibilities   []string `json:"responsibilities,omitempty"`
	Benefits           []string `json:"benefits,omitempty"`
	Domain             string   `json:"domain"`
	Description        string   `json:"description,omitempty"`
}

// CleanRequiredSkills returns the non-empty required skills in listing order.
func (j *JDRecord) CleanRequiredSkills() []string {
	skills := make([]string, 0, len(j.RequiredSkills))
	for _, s := range j.RequiredSkills {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}
