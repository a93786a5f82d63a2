package tui

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary = lipgloss.Color("39")  // blue
	ColorAccent  = lipgloss.Color("170") // magenta
	ColorSuccess = lipgloss.Color("42")  // green
	ColorDanger  = lipgloss.Color("196") // red
	ColorMuted   = lipgloss.Color("241") // gray

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	FieldLabelStyle = lipgloss.NewStyle().
			Width(18).
			Foreground(ColorMuted)

	FocusedLabelStyle = lipgloss.NewStyle().
				Width(18).
				Bold(true).
				Foreground(ColorAccent)

	ResultBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 2).
			MarginTop(1)

	ResultValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)

	StatusKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)
)
