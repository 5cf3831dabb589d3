package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/showctl/cueline/internal/theme"
)

var (
	paneStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	propsPane   = paneStyle.Copy().BorderForeground(lipgloss.Color(string(theme.Outline)))
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(string(theme.Text)))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(string(theme.Light4)))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(string(theme.Gray245)))
	playStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(string(theme.Playhead)))
)
