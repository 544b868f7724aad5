package demo

import "github.com/charmbracelet/lipgloss"

// Output styling. Lipgloss degrades to plain text when stdout is not a
// terminal, so captured output stays assertable.
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8BC34A"))

	summaryStyle = lipgloss.NewStyle().
			Faint(true)

	gridStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)
