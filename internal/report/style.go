package report

import "github.com/charmbracelet/lipgloss"

var (
	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#3B82F6"))

	metricStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F59E0B"))

	insightStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("#10B981"))
)
