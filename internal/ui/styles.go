package ui

import "github.com/charmbracelet/lipgloss"

var (
	InfoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FAFFF"))
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00D787"))
	WarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700"))
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")).Bold(true)
	DimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	TitleStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	ToolStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#AF87FF"))
)
