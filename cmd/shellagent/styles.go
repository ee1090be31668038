package main

import "github.com/charmbracelet/lipgloss"

// styles groups the terminal colors used by the REPL. When stdout is not a
// terminal every style is the zero value, which renders plain text.
type styles struct {
	banner  lipgloss.Style
	prompt  lipgloss.Style
	agent   lipgloss.Style
	warn    lipgloss.Style
	errText lipgloss.Style
	faint   lipgloss.Style
}

func newStyles(enabled bool) styles {
	if !enabled {
		return styles{}
	}
	return styles{
		banner:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		prompt:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		agent:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		warn:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		errText: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		faint:   lipgloss.NewStyle().Faint(true),
	}
}
