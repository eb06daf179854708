package cli

import "github.com/charmbracelet/lipgloss"

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true).Width(14)
	crumbStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)
