package domain

import "fmt"

// Compatibility levels
const (
	LevelPerfect    = "Perfect"
	LevelGood       = "Good"
	LevelAcceptable = "Acceptable"
	LevelPoor       = "Poor"
	LevelUnknown    = "Unknown"
)

// Compatibility reports how well experience from one domain transfers to
// another.
type Compatibility struct {
	ResumeDomain string `json:"resumeDomain"`
	JDDomain     string `json:"jdDomain"`
	Score        int    `json:"score"`
	Level        string `json:"level"`
	Details      string `json:"details"`
}

// compatibilityMatrix scores 0-100 how well experience in the row domain
// transfers to the column domain. The matrix is symmetric.
var compatibilityMatrix = map[string]map[string]int{
	"IT/Software": {
		"IT/Software":          100,
		"Backend Development":  95,
		"Frontend Development": 90,
		"AI/ML/Data Science":   75,
		"DevOps/Cloud":         85,
		"QA/Testing":           80,
		"Finance/Accounting":   20,
		"Healthcare":           15,
		"Sales/Marketing":      10,
		"HR/Recruitment":       10,
		"Finance/Banking":      15,
	},
	"Backend Development": {
		"IT/Software":          95,
		"Backend Development":  100,
		"Frontend Development": 60,
		"AI/ML/Data Science":   80,
		"DevOps/Cloud":         85,
		"QA/Testing":           75,
		"Finance/Accounting":   20,
		"Healthcare":           15,
		"Sales/Marketing":      10,
		"HR/Recruitment":       10,
		"Finance/Banking":      20,
	},
	"Frontend Development": {
		"IT/Software":          90,
		"Backend Development":  60,
		"Frontend Development": 100,
		"AI/ML/Data Science":   40,
		"DevOps/Cloud":         50,
		"QA/Testing":           70,
		"Finance/Accounting":   10,
		"Healthcare":           10,
		"Sales/Marketing":      15,
		"HR/Recruitment":       10,
		"Finance/Banking":      10,
	},
	"AI/ML/Data Science": {
		"IT/Software":          75,
		"Backend Development":  80,
		"Frontend Development": 40,
		"AI/ML/Data Science":   100,
		"DevOps/Cloud":         60,
		"QA/Testing":           50,
		"Finance/Accounting":   45,
		"Healthcare":           50,
		"Sales/Marketing":      20,
		"HR/Recruitment":       10,
		"Finance/Banking":      50,
	},
	"DevOps/Cloud": {
		"IT/Software":          85,
		"Backend Development":  85,
		"Frontend Development": 50,
		"AI/ML/Data Science":   60,
		"DevOps/Cloud":         100,
		"QA/Testing":           70,
		"Finance/Accounting":   25,
		"Healthcare":           20,
		"Sales/Marketing":      10,
		"HR/Recruitment":       10,
		"Finance/Banking":      25,
	},
	"QA/Testing": {
		"IT/Software":          80,
		"Backend Development":  75,
		"Frontend Development": 70,
		"AI/ML/Data Science":   50,
		"DevOps/Cloud":         70,
		"QA/Testing":           100,
		"Finance/Accounting":   20,
		"Healthcare":           20,
		"Sales/Marketing":      15,
		"HR/Recruitment":       10,
		"Finance/Banking":      20,
	},
	"Finance/Accounting": {
		"IT/Software":          20,
		"Backend Development":  20,
		"Frontend Development": 10,
		"AI/ML/Data Science":   45,
		"DevOps/Cloud":         25,
		"QA/Testing":           20,
		"Finance/Accounting":   100,
		"Healthcare":           30,
		"Sales/Marketing":      50,
		"HR/Recruitment":       40,
		"Finance/Banking":      85,
	},
	"Healthcare": {
		"IT/Software":          15,
		"Backend Development":  15,
		"Frontend Development": 10,
		"AI/ML/Data Science":   50,
		"DevOps/Cloud":         20,
		"QA/Testing":           20,
		"Finance/Accounting":   30,
		"Healthcare":           100,
		"Sales/Marketing":      25,
		"HR/Recruitment":       20,
		"Finance/Banking":      25,
	},
	"Sales/Marketing": {
		"IT/Software":          10,
		"Backend Development":  10,
		"Frontend Development": 15,
		"AI/ML/Data Science":   20,
		"DevOps/Cloud":         10,
		"QA/Testing":           15,
		"Finance/Accounting":   50,
		"Healthcare":           25,
		"Sales/Marketing":      100,
		"HR/Recruitment":       70,
		"Finance/Banking":      60,
	},
	"HR/Recruitment": {
		"IT/Software":          10,
		"Backend Development":  10,
		"Frontend Development": 10,
		"AI/ML/Data Science":   10,
		"DevOps/Cloud":         10,
		"QA/Testing":           10,
		"Finance/Accounting":   40,
		"Healthcare":           20,
		"Sales/Marketing":      70,
		"HR/Recruitment":       100,
		"Finance/Banking":      40,
	},
	"Finance/Banking": {
		"IT/Software":          15,
		"Backend Development":  20,
		"Frontend Development": 10,
		"AI/ML/Data Science":   50,
		"DevOps/Cloud":         25,
		"QA/Testing":           20,
		"Finance/Accounting":   85,
		"Healthcare":           25,
		"Sales/Marketing":      60,
		"HR/Recruitment":       40,
		"Finance/Banking":      100,
	},
}

// Compat looks up how compatible a candidate's domain is with a job's
// domain. Either domain being empty or outside the matrix yields the
// Unknown level with score 0.
func Compat(resumeDomain, jdDomain string) Compatibility {
	result := Compatibility{ResumeDomain: resumeDomain, JDDomain: jdDomain}

	row, ok := compatibilityMatrix[resumeDomain]
	if resumeDomain == "" || jdDomain == "" || !ok {
		result.Level = LevelUnknown
		result.Details = "Could not determine domain(s)"
		return result
	}
	score, ok := row[jdDomain]
	if !ok {
		result.Level = LevelUnknown
		result.Details = "Could not determine domain(s)"
		return result
	}

	result.Score = score
	result.Level = levelFor(score)
	result.Details = compatDetails(resumeDomain, jdDomain, result.Level)
	return result
}

func levelFor(score int) string {
	switch {
	case score >= 85:
		return LevelPerfect
	case score >= 60:
		return LevelGood
	case score >= 35:
		return LevelAcceptable
	default:
		return LevelPoor
	}
}

func compatDetails(resumeDomain, jdDomain, level string) string {
	if resumeDomain == jdDomain {
		return fmt.Sprintf("Both from same domain (%s). Excellent match.", resumeDomain)
	}
	switch level {
	case LevelPerfect:
		return fmt.Sprintf("Strong domain alignment: %s -> %s.", resumeDomain, jdDomain)
	case LevelGood:
		return fmt.Sprintf("Reasonable domain alignment: %s -> %s. Some skills are transferable.", resumeDomain, jdDomain)
	case LevelAcceptable:
		return fmt.Sprintf("Moderate domain shift: %s -> %s. Candidate may need upskilling.", resumeDomain, jdDomain)
	default:
		return fmt.Sprintf("Significant domain change: %s -> %s. Major career pivot required.", resumeDomain, jdDomain)
	}
}

// AdjustmentFactor converts a compatibility score into the multiplier
// applied to the raw overall score. Scores of 85 and above are never
// penalized.
func AdjustmentFactor(score int) float64 {
	switch {
	case score >= 85:
		return 1.0
	case score >= 70:
		return 0.90
	case score >= 60:
		return 0.80
	case score >= 50:
		return 0.65
	case score >= 35:
		return 0.45
	default:
		return 0.25
	}
}
