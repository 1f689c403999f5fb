// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/hhsaputraa/random-team-maker/internal/simulation"
	"github.com/hhsaputraa/random-team-maker/internal/types"
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
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		line = truncate(line, boxWidth-4)
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most width runes, ending in "..." when cut.
func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-3]) + "..."
}

// PrintTeams outputs each team with its size and company counts. Members are
// listed for at most maxItemsToShow teams.
func (p *Printer) PrintTeams(result *types.DistributionResult) {
	if result == nil || len(result.Teams) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d members in %d teams of %d\n\n", result.TotalMembers, len(result.Teams), result.TeamSize))

	for i, team := range result.Teams {
		sb.WriteString(fmt.Sprintf("Team %d (%d)  %s\n", team.ID, team.Size(), formatDistribution(team.CompanyDistribution)))
		if i < maxItemsToShow {
			for _, m := range team.Members {
				sb.WriteString(fmt.Sprintf("  • %s (%s)\n", m.Name, m.Company))
			}
		}
	}

	if len(result.Teams) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... members of %d more teams not shown\n", len(result.Teams)-maxItemsToShow))
	}
	if len(result.Unassigned) > 0 {
		sb.WriteString(fmt.Sprintf("\n⚠ %d members unassigned\n", len(result.Unassigned)))
	}

	p.printBox("TEAMS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSummary outputs the per-company balance of a build.
func (p *Printer) PrintSummary(summary types.Summary) {
	if summary.Teams == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Assigned: %d / %d\n", summary.AssignedMembers, summary.TotalMembers))
	if len(summary.UndersizedTeams) > 0 {
		sb.WriteString(fmt.Sprintf("Undersized teams: %v\n", summary.UndersizedTeams))
	}
	sb.WriteString("\n")

	for _, b := range summary.CompanyBalances {
		mark := "✓"
		if b.Spread() > 1 {
			mark = "✗"
		}
		sb.WriteString(fmt.Sprintf("%s %-20s total %3d  min %2d  max %2d\n", mark, b.Company, b.Total, b.Min, b.Max))
	}

	p.printBox("COMPANY BALANCE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintReport outputs a simulation report.
func (p *Printer) PrintReport(report *simulation.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Runs: %d  Teams: %d  Team size: %d\n", report.Runs, report.Teams, report.TeamSize))
	if report.RunsWithDrops > 0 {
		sb.WriteString(fmt.Sprintf("⚠ %d runs dropped %d members\n", report.RunsWithDrops, report.TotalUnassigned))
	}
	sb.WriteString("\n")

	for _, c := range report.Companies {
		sb.WriteString(fmt.Sprintf("%-20s mean %.2f  worst %d  even %d/%d\n",
			c.Company, c.MeanSpread, c.WorstSpread, c.EvenRuns, report.Runs))
	}

	p.printBox("SIMULATION", strings.TrimSuffix(sb.String(), "\n"))
}

// formatDistribution renders non-zero counts sorted by company name.
func formatDistribution(dist map[string]int) string {
	companies := make([]string, 0, len(dist))
	for c, n := range dist {
		if n > 0 {
			companies = append(companies, c)
		}
	}
	sort.Strings(companies)

	parts := make([]string, len(companies))
	for i, c := range companies {
		parts[i] = fmt.Sprintf("%s:%d", c, dist[c])
	}
	return strings.Join(parts, " ")
}
