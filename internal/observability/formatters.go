// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/domain"
	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResume outputs a human-readable summary of an extracted resume.
func (p *Printer) PrintResume(record *types.ResumeRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Role:       %s\n", record.Role))
	sb.WriteString(fmt.Sprintf("Experience: %d years\n", record.TotalYearsExperience))
	sb.WriteString(fmt.Sprintf("Domain:     %s\n", record.Domain))

	if len(record.Skills) > 0 {
		sb.WriteString("\nSkills:\n")
		count := min(len(record.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			skill := record.Skills[i]
			sb.WriteString(fmt.Sprintf("  • %s", skill.Name))
			if skill.Proficiency != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", skill.Proficiency))
			}
			sb.WriteString("\n")
		}
		if len(record.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(record.Skills)-maxItemsToShow))
		}
	}

	if len(record.Education) > 0 {
		sb.WriteString("\nEducation:\n")
		count := min(len(record.Education), 3)
		for i := 0; i < count; i++ {
			edu := record.Education[i]
			sb.WriteString(fmt.Sprintf("  • %s", edu.Degree))
			if edu.Field != "" {
				sb.WriteString(fmt.Sprintf(" in %s", edu.Field))
			}
			sb.WriteString("\n")
		}
	}

	p.printBox("EXTRACTED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJob outputs a human-readable summary of an extracted job description.
func (p *Printer) PrintJob(record *types.JDRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title:      %s\n", record.JobTitle))
	sb.WriteString(fmt.Sprintf("Experience: %d+ years\n", record.MinExperienceYears))
	sb.WriteString(fmt.Sprintf("Education:  %s\n", record.RequiredEducation))
	sb.WriteString(fmt.Sprintf("Domain:     %s\n", record.Domain))

	if len(record.RequiredSkills) > 0 {
		sb.WriteString("\nRequired Skills:\n")
		count := min(len(record.RequiredSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", record.RequiredSkills[i]))
		}
		if len(record.RequiredSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(record.RequiredSkills)-maxItemsToShow))
		}
	}

	if len(record.PreferredSkills) > 0 {
		sb.WriteString("\nPreferred:\n")
		count := min(len(record.PreferredSkills), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", record.PreferredSkills[i]))
		}
		if len(record.PreferredSkills) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(record.PreferredSkills)-3))
		}
	}

	p.printBox("EXTRACTED JOB DESCRIPTION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintClassification outputs a domain classification summary.
func (p *Printer) PrintClassification(c *domain.Classification) {
	if c == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Domain:     %s\n", c.PrimaryDomain))
	sb.WriteString(fmt.Sprintf("Confidence: %d%%\n", c.Confidence))
	sb.WriteString(fmt.Sprintf("Method:     %s\n", c.Method))

	if len(c.DetectedDomains) > 0 {
		sb.WriteString("\nDetected:\n")
		count := min(len(c.DetectedDomains), 3)
		for i := 0; i < count; i++ {
			d := c.DetectedDomains[i]
			sb.WriteString(fmt.Sprintf("  • %s (%d hits)\n", d.Domain, d.KeywordCount))
		}
	}
	if c.Reasoning != "" {
		reasoning := c.Reasoning
		if len(reasoning) > 50 {
			reasoning = reasoning[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("\n%s\n", reasoning))
	}

	p.printBox("DOMAIN CLASSIFICATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchResult outputs the scored match with section breakdown.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall Score: %d/100 (%s)\n", result.OverallScore, result.Assessment.Label))
	sb.WriteString(fmt.Sprintf("Raw Score:     %.1f\n", result.RawOverallScore))
	sb.WriteString(fmt.Sprintf("Domain:        %s (x%.2f)\n",
		result.CriteriaAnalysis.DomainMatch.Level, result.DomainAdjustment))
	sb.WriteString("\n")

	scores := result.SectionScores
	sb.WriteString(fmt.Sprintf("Experience: %d/35\n", scores.ExperienceMatch))
	sb.WriteString(fmt.Sprintf("Education:  %d/25\n", scores.EducationMatch))
	sb.WriteString(fmt.Sprintf("Skills:     %d/40\n", scores.SkillsMatch))

	if len(result.Gaps) > 0 {
		sb.WriteString("\nGaps:\n")
		count := min(len(result.Gaps), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.Gaps[i]))
		}
	}

	p.printBox("MATCH RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRanking outputs a ranked list of candidate scores, best first.
// Entries are printed in the order given.
func (p *Printer) PrintRanking(names []string, results []*types.MatchResult) {
	if len(names) == 0 || len(names) != len(results) {
		return
	}

	var sb strings.Builder
	for i, name := range names {
		if len(name) > 32 {
			name = name[:29] + "..."
		}
		if results[i] == nil {
			sb.WriteString(fmt.Sprintf("#%d  %-32s  failed\n", i+1, name))
			continue
		}
		sb.WriteString(fmt.Sprintf("#%d  %-32s  %3d  %s\n",
			i+1, name, results[i].OverallScore, results[i].Assessment.Label))
	}

	p.printBox("CANDIDATE RANKING", strings.TrimSuffix(sb.String(), "\n"))
}
