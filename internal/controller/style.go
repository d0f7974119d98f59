package controller

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type styles struct {
	enabled bool
	pass    lipgloss.Style
	fail    lipgloss.Style
	label   lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(w io.Writer, enabled bool) styles {
	if !enabled {
		return styles{}
	}

	renderer := lipgloss.NewRenderer(w)
	// The writer may not be a terminal when color is forced, so skip detection.
	renderer.SetColorProfile(termenv.ANSI)

	return styles{
		enabled: true,
		pass:    renderer.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		fail:    renderer.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		label:   renderer.NewStyle().Foreground(lipgloss.Color("3")),
		muted:   renderer.NewStyle().Faint(true),
	}
}

func (s styles) paint(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}

	return style.Render(text)
}
