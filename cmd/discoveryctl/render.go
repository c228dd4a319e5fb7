package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jsamuelsen11/discovery-dashboard/internal/domain/completion"
)

const barWidth = 30

var (
	barColors = map[completion.ProgressColor]lipgloss.Color{
		completion.ProgressExcellent: lipgloss.Color("42"),
		completion.ProgressGood:      lipgloss.Color("33"),
		completion.ProgressModerate:  lipgloss.Color("214"),
		completion.ProgressPoor:      lipgloss.Color("196"),
	}
	badgeColors = map[completion.StatusColor]lipgloss.Color{
		completion.ColorGreen:  lipgloss.Color("42"),
		completion.ColorBlue:   lipgloss.Color("33"),
		completion.ColorYellow: lipgloss.Color("220"),
		completion.ColorRed:    lipgloss.Color("196"),
		completion.ColorGray:   lipgloss.Color("245"),
	}

	trackStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	titleStyle   = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// progressBar renders the percentage of r as a bar width cells wide,
// colored by its progress band.
func progressBar(r completion.Result, width int) string {
	filled := min(max(r.Percentage, 0), 100) * width / 100
	fill := lipgloss.NewStyle().Foreground(barColors[r.ProgressColor])
	return fill.Render(strings.Repeat("█", filled)) + trackStyle.Render(strings.Repeat("░", width-filled))
}

// statusBadge renders the status of r in its badge color.
func statusBadge(r completion.Result) string {
	return lipgloss.NewStyle().Bold(true).Foreground(badgeColors[r.StatusColor]).Render(r.Status.String())
}

func renderResult(w io.Writer, r completion.Result) {
	fmt.Fprintf(w, "%s %3d%%  %s\n", progressBar(r, barWidth), r.Percentage, statusBadge(r))
	fmt.Fprintln(w, titleStyle.Render(completion.Describe(r)))
	fmt.Fprintln(w, mutedStyle.Render(completion.DetailedBreakdown(r)))
}

func renderFindings(w io.Writer, errs, warnings []string) {
	for _, e := range errs {
		fmt.Fprintln(w, errorStyle.Render("error: "+e))
	}
	for _, warn := range warnings {
		fmt.Fprintln(w, warningStyle.Render("warning: "+warn))
	}
}
