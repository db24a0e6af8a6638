package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	helpStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Bold(true)
	gaugeStyle   = lipgloss.NewStyle().Bold(true)
)
