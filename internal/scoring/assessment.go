package scoring

import "github.com/jonathan/resume-matcher/internal/types"

// assessmentTiers maps overall-score thresholds to labels, highest first.
// The boundaries are a contract consumers key on; the label text is
// presentation only.
var assessmentTiers = []struct {
	Threshold int
	Label     string
	Tier      string
}{
	{90, "Excellent Match", "excellent"},
	{75, "Great Match", "great"},
	{60, "Good Match", "good"},
	{40, "Moderate Match", "moderate"},
	{0, "Poor Match", "poor"},
}

func assess(score int) types.Assessment {
	for _, tier := range assessmentTiers {
		if score >= tier.Threshold {
			return types.Assessment{Label: tier.Label, SeverityTier: tier.Tier}
		}
	}
	last := assessmentTiers[len(assessmentTiers)-1]
	return types.Assessment{Label: last.Label, SeverityTier: last.Tier}
}
