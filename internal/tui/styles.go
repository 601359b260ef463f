package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#d787ff"))
	activeTabStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).Reverse(true)
	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#888"))
	labelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#888"))
	valueStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#fff"))
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#555"))
	warnStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffaf00"))
	okStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#5fd75f"))
	errStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f5f"))

	// Piano keys.
	whiteKeyStyle = lipgloss.NewStyle().Width(4).Align(lipgloss.Center).
			Foreground(lipgloss.Color("#000")).Background(lipgloss.Color("#eee"))
	blackKeyStyle = lipgloss.NewStyle().Width(4).Align(lipgloss.Center).
			Foreground(lipgloss.Color("#eee")).Background(lipgloss.Color("#222"))
	offKeyStyle = lipgloss.NewStyle().Width(4).Align(lipgloss.Center).
			Foreground(lipgloss.Color("#555")).Strikethrough(true)
	fkeyStyle = lipgloss.NewStyle().Width(4).Align(lipgloss.Center).
			Foreground(lipgloss.Color("#555"))
)
