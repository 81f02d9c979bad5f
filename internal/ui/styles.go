package ui

import "github.com/charmbracelet/lipgloss"

var (
	TitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#BB86FC"))
	InputStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF"))
	ResultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	DimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	ErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

	KeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#1F1F1F")).
			Align(lipgloss.Center)
	AccentKeyStyle = KeyStyle.Background(lipgloss.Color("#BB86FC"))
	ActiveKeyStyle = KeyStyle.Background(lipgloss.Color("#03DAC6")).Foreground(lipgloss.Color("#000000"))
)
