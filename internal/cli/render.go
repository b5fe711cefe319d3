package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tripagent/tripagent/internal/match"
	"github.com/tripagent/tripagent/internal/profile"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4")).Bold(true)
	sectionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	scoreStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB454")).Bold(true)
	faintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).Italic(true)
	agentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
)

func okLine(label, value string) string {
	return fmt.Sprintf("%s %s: %s", okStyle.Render("+"), label, value)
}

func renderProfile(p *profile.Profile) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Your trip"))
	b.WriteString("\n")
	for _, c := range profile.Categories {
		value := p.Display(c)
		if value == "not specified" {
			value = faintStyle.Render(value)
		}
		fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render(c.Label()+":"), value)
	}
	return b.String()
}

func renderMatches(matches []match.ScoredMatch) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Recommendations"))
	b.WriteString("\n")
	if len(matches) == 0 {
		b.WriteString(faintStyle.Render("  Nothing in the catalog scores above the threshold for this trip.\n"))
		b.WriteString("  Try a looser budget or duration, or lower --threshold.\n")
		return b.String()
	}
	for i, m := range matches {
		pkg := m.Package
		fmt.Fprintf(&b, "\n%d. %s %s\n", i+1, pkg.Name, scoreStyle.Render(fmt.Sprintf("%d/100", m.Score)))
		fmt.Fprintf(&b, "   %s, %d days, %.0f-%.0f, rated %.1f\n",
			pkg.Destination, pkg.DurationDays, pkg.PriceMin, pkg.PriceMax, pkg.Rating)
		if len(pkg.Styles) > 0 {
			fmt.Fprintf(&b, "   styles: %s\n", strings.Join(pkg.Styles, ", "))
		}
		if pkg.BestSeason != "" {
			fmt.Fprintf(&b, "   best season: %s\n", pkg.BestSeason)
		}
		b.WriteString(labelStyle.Render("   " + renderBreakdown(m.SubScores)))
		b.WriteString("\n")
	}
	return b.String()
}

func renderBreakdown(subs []match.SubScore) string {
	parts := make([]string, 0, len(subs))
	for _, ss := range subs {
		parts = append(parts, fmt.Sprintf("%s %d/%d",
			ss.Dimension, int(math.Round(ss.Points)), int(math.Round(ss.Max))))
	}
	return strings.Join(parts, ", ")
}

func renderLodging(lines []string) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Where to stay"))
	b.WriteString("\n")
	for _, line := range lines {
		if line == "" {
			b.WriteString("\n")
			continue
		}
		fmt.Fprintf(&b, "  %s\n", line)
	}
	return b.String()
}
