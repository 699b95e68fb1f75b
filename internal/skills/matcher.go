// Package skills matches candidate skills against job requirements using
// layered comparison strategies of decreasing confidence.
package skills

import (
	"regexp"
	"strings"

	"github.com/agext/levenshtein"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Match strategies, in the order they are attempted
const (
	StrategyExact     = "exact"
	StrategyAnalogy   = "analogy"
	StrategyFuzzy     = "fuzzy"
	StrategySubstring = "substring"
	StrategyNone      = "none"
)

// Strategy confidence constants
const (
	confidenceExact     = 1.0
	confidenceAnalogy   = 0.95
	confidenceSubstring = 0.88
	fuzzyThreshold      = 0.70
	substringMinLength  = 3
)

var (
	nonAlnum      = regexp.MustCompile(`[^a-z0-9\s]+`)
	whitespaceRun = regexp.MustCompile(`\s+`)
)

// Normalize lowercases a skill, strips everything outside [a-z0-9\s], and
// collapses whitespace. All comparisons run on normalized strings.
func Normalize(skill string) string {
	s := strings.ToLower(skill)
	s = nonAlnum.ReplaceAllString(s, "")
	s = whitespaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Match is the outcome of comparing one candidate skill against one
// required skill.
type Match struct {
	IsMatch    bool    `json:"isMatch"`
	Strategy   string  `json:"strategy"`
	Confidence float64 `json:"confidence"`
}

// MatchSkill compares a candidate skill against a required skill. The
// strategies run in order: exact, analogy group, fuzzy similarity,
// substring containment. The first success wins.
func MatchSkill(candidate, required string) Match {
	cand := Normalize(candidate)
	req := Normalize(required)
	if cand == "" || req == "" {
		return Match{Strategy: StrategyNone}
	}

	if cand == req {
		return Match{IsMatch: true, Strategy: StrategyExact, Confidence: confidenceExact}
	}

	if candGroup, ok := analogyGroup(cand); ok {
		if reqGroup, ok := analogyGroup(req); ok && candGroup == reqGroup {
			return Match{IsMatch: true, Strategy: StrategyAnalogy, Confidence: confidenceAnalogy}
		}
	}

	if ratio := levenshtein.Similarity(cand, req, levenshtein.NewParams()); ratio >= fuzzyThreshold {
		return Match{IsMatch: true, Strategy: StrategyFuzzy, Confidence: ratio}
	}

	if len(cand) > substringMinLength && len(req) > substringMinLength {
		if strings.Contains(cand, req) || strings.Contains(req, cand) {
			return Match{IsMatch: true, Strategy: StrategySubstring, Confidence: confidenceSubstring}
		}
	}

	return Match{Strategy: StrategyNone}
}

// ListMatch summarizes matching a full required-skill list against a
// candidate's skills. Matched and Missing hold the job's skill spellings.
type ListMatch struct {
	Matched []string
	Missing []string
	Details []types.SkillMatchDetail
}

// MatchList resolves each required skill independently against the whole
// candidate list, keeping the highest-confidence successful match.
func MatchList(candidateSkills, requiredSkills []string) ListMatch {
	result := ListMatch{
		Matched: []string{},
		Missing: []string{},
		Details: []types.SkillMatchDetail{},
	}

	for _, required := range requiredSkills {
		best := Match{Strategy: StrategyNone}
		bestCandidate := ""
		for _, candidate := range candidateSkills {
			m := MatchSkill(candidate, required)
			if m.IsMatch && m.Confidence > best.Confidence {
				best = m
				bestCandidate = candidate
			}
		}

		if !best.IsMatch {
			result.Missing = append(result.Missing, required)
			continue
		}
		result.Matched = append(result.Matched, required)
		result.Details = append(result.Details, types.SkillMatchDetail{
			Required:   required,
			Matched:    bestCandidate,
			Strategy:   best.Strategy,
			Confidence: roundConfidence(best.Confidence),
		})
	}
	return result
}

func roundConfidence(c float64) float64 {
	return float64(int(c*100+0.5)) / 100
}
