package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mrlokans/bookshelf/internal/theme"
)

type styles struct {
	app      lipgloss.Style
	header   lipgloss.Style
	label    lipgloss.Style
	field    lipgloss.Style
	item     lipgloss.Style
	selected lipgloss.Style
	author   lipgloss.Style
	button   lipgloss.Style
	disabled lipgloss.Style
	message  lipgloss.Style
	title    lipgloss.Style
	subtitle lipgloss.Style
	help     lipgloss.Style
}

// newStyles derives every style from the two role colors of a palette,
// the same way the web stylesheet uses --color-dark and --color-light.
func newStyles(p theme.Palette) styles {
	fg := p.Foreground()
	bg := p.Background()

	base := lipgloss.NewStyle().Foreground(fg).Background(bg)

	return styles{
		app:      base.Padding(1, 2),
		header:   base.Bold(true).MarginBottom(1),
		label:    base.Faint(true),
		field:    base.Bold(true),
		item:     base.PaddingLeft(2),
		selected: lipgloss.NewStyle().Foreground(bg).Background(fg).Bold(true).PaddingLeft(2),
		author:   base.Faint(true),
		button:   lipgloss.NewStyle().Foreground(bg).Background(fg).Padding(0, 2).MarginTop(1),
		disabled: base.Faint(true).Padding(0, 2).MarginTop(1),
		message:  base.Italic(true).MarginTop(1),
		title:    base.Bold(true),
		subtitle: base.Faint(true).MarginBottom(1),
		help:     base.Faint(true).MarginTop(1),
	}
}
