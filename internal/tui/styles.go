package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title, success, pending, accent lipgloss.Style
	muted, errorText, help          lipgloss.Style
	panel, form                     lipgloss.Style
	table                           table.Styles
	checked, unchecked              string
}

// newStyles builds the Lip Gloss styles for a theme name (classic, neon, mono).
// noColor keeps the theme's glyphs but drops every color.
func newStyles(theme string, noColor bool) styles {
	s := styles{
		title:     lipgloss.NewStyle().Bold(true),
		success:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		pending:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		accent:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		muted:     lipgloss.NewStyle().Faint(true),
		errorText: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		help:      lipgloss.NewStyle().Faint(true),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1),
		form: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1),
		checked:   "☑",
		unchecked: "☐",
	}

	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	ts.Selected = ts.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)

	switch theme {
	case "neon":
		s.title = s.title.Foreground(lipgloss.Color("213"))
		s.accent = s.accent.Foreground(lipgloss.Color("51"))
		s.pending = s.pending.Foreground(lipgloss.Color("226"))
		s.panel = s.panel.BorderForeground(lipgloss.Color("213"))
		ts.Selected = ts.Selected.Background(lipgloss.Color("201"))
		s.checked, s.unchecked = "◼", "◻"
	case "mono":
		s.checked, s.unchecked = "[x]", "[ ]"
		noColor = true
	}
	s.table = ts
	if noColor {
		s.stripColor()
	}
	return s
}

// stripColor replaces every colored style with a plain one.
func (s *styles) stripColor() {
	plain := lipgloss.NewStyle()
	s.title, s.success, s.pending, s.accent = plain.Bold(true), plain, plain, plain
	s.errorText = plain.Bold(true)
	s.panel = s.panel.BorderForeground(lipgloss.NoColor{})
	s.form = s.form.BorderForeground(lipgloss.NoColor{})
	s.table.Header = s.table.Header.BorderForeground(lipgloss.NoColor{})
	s.table.Cell = s.table.Cell.UnsetForeground().UnsetBackground()
	s.table.Selected = plain.Reverse(true)
}
