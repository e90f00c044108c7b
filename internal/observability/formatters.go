// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/skill-search/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 10
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

// PrintParsedJob outputs a human-readable summary of the parsed job posting.
func (p *Printer) PrintParsedJob(job *types.ParsedJob) {
	if job == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Requirements: %d\n", len(job.Requirements)))

	count := min(len(job.Requirements), maxItemsToShow)
	for i := 0; i < count; i++ {
		req := job.Requirements[i]
		sb.WriteString(fmt.Sprintf("  • %s  %.2f", req.Skill, req.Importance))
		if req.Inferred {
			sb.WriteString(" (inferred)")
		}
		sb.WriteString("\n")
	}
	if len(job.Requirements) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(job.Requirements)-maxItemsToShow))
	}

	if len(job.SoftSkills) > 0 {
		sb.WriteString(fmt.Sprintf("\nSoft skills: %d\n", len(job.SoftSkills)))
		count = min(len(job.SoftSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			soft := job.SoftSkills[i]
			sb.WriteString(fmt.Sprintf("  • %s  %.2f\n", soft.Skill, soft.Value))
		}
		if len(job.SoftSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(job.SoftSkills)-maxItemsToShow))
		}
	}

	p.printBox("PARSED JOB POSTING", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintParsedResume outputs a human-readable summary of the parsed resume.
func (p *Printer) PrintParsedResume(resume *types.ParsedResume) {
	if resume == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Characters: %d  Lines: %d\n", resume.Statistics.Characters, resume.Statistics.Lines))
	if resume.Profile.TotalExperienceYears != nil {
		sb.WriteString(fmt.Sprintf("Experience: %d years\n", *resume.Profile.TotalExperienceYears))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Skills: %d\n", len(resume.Skills)))
	count := min(len(resume.Skills), maxItemsToShow)
	for i := 0; i < count; i++ {
		skill := resume.Skills[i]
		sb.WriteString(fmt.Sprintf("  • %s", skill.Skill))
		if skill.ExperienceYears != nil {
			sb.WriteString(fmt.Sprintf(" (%d yrs)", *skill.ExperienceYears))
		}
		if skill.Mentions > 1 {
			sb.WriteString(fmt.Sprintf(" ×%d", skill.Mentions))
		}
		sb.WriteString("\n")
	}
	if len(resume.Skills) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resume.Skills)-maxItemsToShow))
	}

	if len(resume.Sections) > 0 {
		names := make([]string, 0, len(resume.Sections))
		for name := range resume.Sections {
			names = append(names, name)
		}
		sort.Strings(names)
		sb.WriteString(fmt.Sprintf("\nSections: %s\n", strings.Join(names, ", ")))
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}
