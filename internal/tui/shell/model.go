// Package shell is the interactive terminal front end: a navigation bar, the
// routed views and the settings panel, rendered with Bubble Tea.
package shell

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/navshell/internal/app"
	"github.com/alexisbeaulieu97/navshell/internal/router"
	"github.com/alexisbeaulieu97/navshell/internal/settings"
)

// Model is the shell's Bubble Tea model. Navigation and settings state live
// in the session; the model only holds presentation state.
type Model struct {
	ctx     context.Context
	session *app.Session

	keys    KeyMap
	help    help.Model
	address textinput.Model
	styles  *styleSheet
	notices *noticeBoard

	addressing bool
	showHelp   bool

	width  int
	height int

	unsubscribe []func()
}

// NewModel creates a shell over session. The session should already have a
// current state (see app.Session.Start).
func NewModel(ctx context.Context, session *app.Session) Model {
	if ctx == nil {
		ctx = context.Background()
	}

	ti := textinput.New()
	ti.Prompt = "go to: "
	ti.Placeholder = app.PathDashboard
	ti.CharLimit = 256

	styles := newStyleSheet(session.Theme().Get())
	notices := &noticeBoard{}
	unsubscribe := []func(){
		session.Theme().Subscribe(styles.apply),
		subscribeNotices(session.Publisher(), notices),
	}

	return Model{
		ctx:         ctx,
		session:     session,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		address:     ti,
		styles:      styles,
		notices:     notices,
		width:       80,
		height:      24,
		unsubscribe: unsubscribe,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Close detaches the model from the theme cell and the event publisher.
func (m Model) Close() {
	for _, unsubscribe := range m.unsubscribe {
		unsubscribe()
	}
}

// Current returns the active navigation state.
func (m Model) Current() router.State {
	return m.session.Current()
}

// Theme returns the theme the shell is currently styled with.
func (m Model) Theme() settings.Theme {
	return m.styles.theme
}

func (m Model) leaf() router.View {
	return m.session.Current().Match.Leaf()
}

func (m Model) inDashboard() bool {
	return m.session.Current().Match.Contains(app.ViewDashboard)
}

func (m Model) navigate(path string) Model {
	m.session.Navigate(m.ctx, path)
	return m
}
