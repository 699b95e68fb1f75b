package extract

import (
	"strconv"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// ValidateResume converts a repaired extraction payload into a
// ResumeRecord. It is total: missing or malformed required fields fall
// back to the defaults, lists reset to empty on type mismatch, and a nil
// payload yields the canonical default record. It never returns an error.
func ValidateResume(parsed map[string]any) *types.ResumeRecord {
	record := DefaultResume()
	if parsed == nil {
		return record
	}

	record.Role = stringField(parsed, "role", record.Role)
	record.TotalYearsExperience = intField(parsed, "totalYearsExperience", 0)
	record.Skills = skillList(parsed, "skills")
	record.Education = educationList(parsed, "education")
	record.ExperienceDetails = experienceList(parsed, "experienceDetails")
	record.Certifications = stringList(parsed, "certifications")
	record.Domain = stringField(parsed, "domain", record.Domain)
	record.Summary = stringField(parsed, "summary", record.Summary)

	record.Responsibilities = optionalStringList(parsed, "responsibilities")
	record.KeyAchievements = optionalStringList(parsed, "keyAchievements")
	record.Technologies = optionalStringList(parsed, "technologies")
	record.SoftSkills = optionalStringList(parsed, "softSkills")
	record.Languages = optionalStringList(parsed, "languages")
	return record
}

// ValidateJob converts a repaired extraction payload into a JDRecord under
// the same total-function contract as ValidateResume.
func ValidateJob(parsed map[string]any) *types.JDRecord {
	record := DefaultJob()
	if parsed == nil {
		return record
	}

	record.JobTitle = stringField(parsed, "jobTitle", record.JobTitle)
	record.MinExperienceYears = intField(parsed, "minExperienceYears", 0)
	record.RequiredEducation = stringField(parsed, "requiredEducation", record.RequiredEducation)
	record.RequiredSkills = stringList(parsed, "requiredSkills")
	record.PreferredSkills = stringList(parsed, "preferredSkills")
	record.Responsibilities = optionalStringList(parsed, "responsibilities")
	record.Benefits = optionalStringList(parsed, "benefits")
	record.Domain = stringField(parsed, "domain", record.Domain)
	record.Description = stringField(parsed, "description", "")
	return record
}

// stringField returns the trimmed string at key, or fallback when the
// value is missing, null, non-string, or blank.
func stringField(m map[string]any, key, fallback string) string {
	if v, ok := m[key].(string); ok {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return fallback
}

// intField coerces the value at key to a non-negative integer. Numeric
// strings are accepted, with thousands separators stripped, so "1,500" and
// "5.7" both parse. Anything else yields fallback.
func intField(m map[string]any, key string, fallback int) int {
	n, ok := toInt(m[key])
	if !ok || n < 0 {
		return fallback
	}
	return n
}

func toInt(v any) (int, bool) {
	switch t := v.(type) {
	case float64:
		return int(t), true
	case int:
		return t, true
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(t), ",", "")
		if s == "" {
			return 0, false
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int(f), true
		}
	}
	return 0, false
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(t), ",", "")
		if s == "" {
			return 0, false
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

// stringList coerces the value at key to a list of non-empty strings.
// Scalar non-string entries are stringified, object entries contribute
// their name field, and null or empty entries drop. A missing or
// non-list value resets to an empty list.
func stringList(m map[string]any, key string) []string {
	raw, ok := m[key].([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		switch t := item.(type) {
		case string:
			if s := strings.TrimSpace(t); s != "" {
				out = append(out, s)
			}
		case float64:
			out = append(out, strconv.FormatFloat(t, 'f', -1, 64))
		case map[string]any:
			if name := stringField(t, "name", ""); name != "" {
				out = append(out, name)
			}
		}
	}
	return out
}

// optionalStringList is stringList for fields that stay nil when absent so
// they marshal away entirely.
func optionalStringList(m map[string]any, key string) []string {
	if _, ok := m[key]; !ok {
		return nil
	}
	return stringList(m, key)
}

// skillList normalizes the skills tagged union: a bare string becomes a
// Skill with only a name, an object contributes name and proficiency, and
// entries with no usable name drop.
func skillList(m map[string]any, key string) []types.Skill {
	raw, ok := m[key].([]any)
	if !ok {
		return []types.Skill{}
	}
	out := make([]types.Skill, 0, len(raw))
	for _, item := range raw {
		switch t := item.(type) {
		case string:
			if s := strings.TrimSpace(t); s != "" {
				out = append(out, types.Skill{Name: s})
			}
		case map[string]any:
			name := stringField(t, "name", "")
			if name == "" {
				continue
			}
			out = append(out, types.Skill{
				Name:        name,
				Proficiency: stringField(t, "proficiency", ""),
			})
		}
	}
	return out
}

func educationList(m map[string]any, key string) []types.Education {
	raw, ok := m[key].([]any)
	if !ok {
		return []types.Education{}
	}
	out := make([]types.Education, 0, len(raw))
	for _, item := range raw {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		degree := stringField(entry, "degree", "")
		if degree == "" {
			continue
		}
		year, _ := toInt(entry["year"])
		out = append(out, types.Education{
			Degree:      degree,
			Field:       stringField(entry, "field", ""),
			Institution: stringField(entry, "institution", ""),
			Year:        year,
		})
	}
	return out
}

func experienceList(m map[string]any, key string) []types.ExperienceDetail {
	raw, ok := m[key].([]any)
	if !ok {
		return []types.ExperienceDetail{}
	}
	out := make([]types.ExperienceDetail, 0, len(raw))
	for _, item := range raw {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		years, _ := toFloat(entry["years"])
		out = append(out, types.ExperienceDetail{
			Role:      stringField(entry, "role", ""),
			Company:   stringField(entry, "company", ""),
			StartDate: stringField(entry, "startDate", ""),
			EndDate:   stringField(entry, "endDate", ""),
			Years:     years,
		})
	}
	return out
}
