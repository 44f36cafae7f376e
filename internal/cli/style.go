package cli

import "github.com/charmbracelet/lipgloss"

var (
	successMark = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Render("✓")
	failMark    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render("✗")
	keyStyle    = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)
