package shell

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds every binding the shell reacts to.
type KeyMap struct {
	Quit    key.Binding
	Help    key.Binding
	Back    key.Binding
	Forward key.Binding
	Address key.Binding

	Login     key.Binding
	Dashboard key.Binding
	DemoUser  key.Binding

	Home     key.Binding
	Profile  key.Binding
	Settings key.Binding

	Submit key.Binding
	Cancel key.Binding

	ThemeLight    key.Binding
	ThemeDark     key.Binding
	ToggleTheme   key.Binding
	Notifications key.Binding
	Save          key.Binding
	Reset         key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "alt+left"),
			key.WithHelp("b", "back"),
		),
		Forward: key.NewBinding(
			key.WithKeys("f", "alt+right"),
			key.WithHelp("f", "forward"),
		),
		Address: key.NewBinding(
			key.WithKeys("g", ":"),
			key.WithHelp("g", "go to path"),
		),
		Login: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "login"),
		),
		Dashboard: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "dashboard"),
		),
		DemoUser: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "user 101"),
		),
		Home: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "home"),
		),
		Profile: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "profile"),
		),
		Settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "settings"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "press button"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		ThemeLight: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "light theme"),
		),
		ThemeDark: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "dark theme"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle theme"),
		),
		Notifications: key.NewBinding(
			key.WithKeys("n", " "),
			key.WithHelp("n", "toggle notifications"),
		),
		Save: key.NewBinding(
			key.WithKeys("w", "ctrl+s"),
			key.WithHelp("w", "save"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
	}
}

// contextHelp adapts a set of bindings to help.KeyMap.
type contextHelp struct {
	short []key.Binding
	full  [][]key.Binding
}

func (c contextHelp) ShortHelp() []key.Binding { return c.short }
func (c contextHelp) FullHelp() [][]key.Binding { return c.full }

var _ help.KeyMap = contextHelp{}
