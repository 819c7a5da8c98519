// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/skillsync/internal/types"
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

// PrintGapReport outputs a human-readable summary of a gap analysis.
func (p *Printer) PrintGapReport(report *types.GapReport) {
	if report == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Role:      %s\n", report.TargetRole.Name))
	sb.WriteString(fmt.Sprintf("Readiness: %d%%\n", report.MatchPercentage))
	sb.WriteString("\n")

	if len(report.Proficient) > 0 {
		sb.WriteString("Proficient:\n")
		count := min(len(report.Proficient), maxItemsToShow)
		for i := 0; i < count; i++ {
			skill := report.Proficient[i]
			sb.WriteString(fmt.Sprintf("  ✓ %s (%s)\n", skill.Name, skill.CurrentLevel))
		}
		if len(report.Proficient) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Proficient)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(report.ToImprove) > 0 {
		sb.WriteString("To Improve:\n")
		count := min(len(report.ToImprove), maxItemsToShow)
		for i := 0; i < count; i++ {
			skill := report.ToImprove[i]
			sb.WriteString(fmt.Sprintf("  ↑ %s (%s → %s)\n", skill.Name, skill.CurrentLevel, skill.RequiredLevel))
		}
		if len(report.ToImprove) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.ToImprove)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(report.Missing) > 0 {
		sb.WriteString("Missing:\n")
		count := min(len(report.Missing), maxItemsToShow)
		for i := 0; i < count; i++ {
			skill := report.Missing[i]
			sb.WriteString(fmt.Sprintf("  ✗ %s [%s]\n", skill.Name, skill.Category))
		}
		if len(report.Missing) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Missing)-maxItemsToShow))
		}
	}

	p.printBox("SKILL GAP ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendations outputs the priority and additional skill picks.
func (p *Printer) PrintRecommendations(recs *types.Recommendations) {
	if recs == nil || (len(recs.Priority) == 0 && len(recs.Additional) == 0) {
		return
	}

	var sb strings.Builder

	if len(recs.Priority) > 0 {
		sb.WriteString("Priority:\n")
		for _, id := range recs.Priority {
			sb.WriteString(fmt.Sprintf("  • %s\n", id))
		}
	}
	if len(recs.Additional) > 0 {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("Additional:\n")
		for _, id := range recs.Additional {
			sb.WriteString(fmt.Sprintf("  • %s\n", id))
		}
	}

	p.printBox("RECOMMENDED NEXT SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRoadmap outputs the ordered learning plan with per-step resources.
func (p *Printer) PrintRoadmap(plan *types.RoadmapPlan) {
	if plan == nil || len(plan.Steps) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Steps: %d   Hours: %d   Weeks: ~%d\n\n",
		plan.TotalSteps, plan.TotalEstimatedHours, plan.EstimatedWeeks))

	count := min(len(plan.Steps), maxItemsToShow)
	for i := 0; i < count; i++ {
		step := plan.Steps[i]
		label := "learn"
		if step.Status == types.StepStatusUpgrade {
			label = "upgrade"
		}
		sb.WriteString(fmt.Sprintf("#%d  %s (%s)\n", step.Step, step.Name, label))
		sb.WriteString(fmt.Sprintf("    Target: %s   ~%dh\n", step.TargetLevel, step.EstimatedHours))
		if len(step.Resources) > 0 {
			name := step.Resources[0].Name
			if len(name) > 40 {
				name = name[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Start with: %s\n", name))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(plan.Steps) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more steps", len(plan.Steps)-maxItemsToShow))
	}

	p.printBox("LEARNING ROADMAP", sb.String())
}
