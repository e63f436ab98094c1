package ui

import (
	"github.com/charmbracelet/lipgloss"

	"polybench/internal/benchmark"
)

// This file centralizes the lipgloss styles used by the CLI reports.

var (
	// Headers
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFF")).
			Background(lipgloss.Color("#7D56F4")). // Brand Color
			Bold(true).
			Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")) // Light purple

	itemStyle = lipgloss.NewStyle().PaddingLeft(2)

	// Comparison status
	passStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")) // Light Gray
	regressionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)
	improvementStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("46")). // Green
				Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Header renders a report title.
func Header(title string) string {
	return headerStyle.Render(title)
}

// Section renders a heading inside a report.
func Section(title string) string {
	return sectionStyle.Render(title)
}

// Item renders one indented list entry.
func Item(text string) string {
	return itemStyle.Render(text)
}

// Muted renders secondary text such as hints.
func Muted(text string) string {
	return mutedStyle.Render(text)
}

// Status renders a comparison status in its colour.
func Status(s benchmark.Status) string {
	switch s {
	case benchmark.StatusRegression:
		return regressionStyle.Render(string(s))
	case benchmark.StatusImprovement:
		return improvementStyle.Render(string(s))
	}
	return passStyle.Render(string(s))
}
