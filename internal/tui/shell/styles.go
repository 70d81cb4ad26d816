package shell

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/navshell/internal/settings"
)

// palette is the set of colors one theme renders with.
type palette struct {
	text    lipgloss.Color
	muted   lipgloss.Color
	primary lipgloss.Color
	accent  lipgloss.Color
	success lipgloss.Color
	border  lipgloss.Color
}

var (
	lightPalette = palette{
		text:    lipgloss.Color("235"),
		muted:   lipgloss.Color("244"),
		primary: lipgloss.Color("25"),
		accent:  lipgloss.Color("162"),
		success: lipgloss.Color("28"),
		border:  lipgloss.Color("250"),
	}

	darkPalette = palette{
		text:    lipgloss.Color("252"),
		muted:   lipgloss.Color("245"),
		primary: lipgloss.Color("111"),
		accent:  lipgloss.Color("212"),
		success: lipgloss.Color("42"),
		border:  lipgloss.Color("238"),
	}
)

// styleSheet is shared by every copy of a Model and rebuilt whenever the
// theme cell changes.
type styleSheet struct {
	theme settings.Theme

	nav        lipgloss.Style
	navLink    lipgloss.Style
	navActive  lipgloss.Style
	title      lipgloss.Style
	subtitle   lipgloss.Style
	body       lipgloss.Style
	muted      lipgloss.Style
	hint       lipgloss.Style
	button     lipgloss.Style
	secondary  lipgloss.Style
	box        lipgloss.Style
	nested     lipgloss.Style
	success    lipgloss.Style
	status     lipgloss.Style
	footer     lipgloss.Style
	addressBar lipgloss.Style
}

func newStyleSheet(theme settings.Theme) *styleSheet {
	s := &styleSheet{}
	s.apply(theme)
	return s
}

func (s *styleSheet) apply(theme settings.Theme) {
	p := lightPalette
	if theme == settings.ThemeDark {
		p = darkPalette
	}
	s.theme = theme

	s.nav = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(p.border).
		PaddingBottom(0).
		MarginBottom(1)

	s.navLink = lipgloss.NewStyle().
		Foreground(p.muted).
		PaddingRight(2)

	s.navActive = s.navLink.
		Foreground(p.primary).
		Bold(true).
		Underline(true)

	s.title = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.primary).
		MarginBottom(1)

	s.subtitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.accent)

	s.body = lipgloss.NewStyle().Foreground(p.text)
	s.muted = lipgloss.NewStyle().Foreground(p.muted)
	s.hint = lipgloss.NewStyle().Foreground(p.muted).Italic(true).MarginTop(1)

	s.button = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.primary).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.primary).
		Padding(0, 2)

	s.secondary = s.button.
		Foreground(p.muted).
		BorderForeground(p.muted)

	s.box = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(p.border).
		Padding(0, 2).
		MarginTop(1)

	s.nested = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(p.accent).
		PaddingLeft(2).
		MarginTop(1)

	s.success = lipgloss.NewStyle().Foreground(p.success).Bold(true)
	s.status = lipgloss.NewStyle().Foreground(p.muted).PaddingLeft(2)

	s.footer = lipgloss.NewStyle().
		Foreground(p.muted).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(p.border).
		MarginTop(1)

	s.addressBar = lipgloss.NewStyle().
		Foreground(p.text).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.accent).
		Padding(0, 1)
}
