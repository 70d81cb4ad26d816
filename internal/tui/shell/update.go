package shell

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/navshell/internal/app"
	"github.com/alexisbeaulieu97/navshell/internal/settings"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.address.Width = max(msg.Width-16, 10)
		return m, nil

	case tea.KeyMsg:
		m.notices.clear()
		return m.handleKeyPress(msg)

	case NavigateMsg:
		return m.navigate(msg.Path), nil

	case BackMsg:
		m.session.Back(m.ctx)
		return m, nil
	}

	if m.addressing {
		var cmd tea.Cmd
		m.address, cmd = m.address.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKeyPress routes keys to the address bar, the help overlay or the
// active view.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.addressing {
		return m.handleAddressKeys(msg)
	}

	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Cancel):
			m.showHelp = false
		case msg.String() == "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.Address):
		m.addressing = true
		m.address.SetValue(m.session.Current().Path)
		m.address.CursorEnd()
		return m, m.address.Focus()
	case key.Matches(msg, m.keys.Back):
		m.session.Back(m.ctx)
		return m, nil
	case key.Matches(msg, m.keys.Forward):
		m.session.Forward(m.ctx)
		return m, nil
	case key.Matches(msg, m.keys.Login):
		return m.navigate(app.PathLogin), nil
	case key.Matches(msg, m.keys.Dashboard):
		return m.navigate(app.PathDashboard), nil
	case key.Matches(msg, m.keys.DemoUser):
		return m.navigate(app.PathDemoUser), nil
	}

	switch m.leaf() {
	case app.ViewLogin:
		return m.handleLoginKeys(msg)
	case app.ViewUser:
		return m.handleUserKeys(msg)
	case app.ViewSettings:
		if next, handled := m.handleSettingsKeys(msg); handled {
			return next, nil
		}
	}

	if m.inDashboard() {
		return m.handleDashboardKeys(msg)
	}
	return m, nil
}

func (m Model) handleAddressKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		path := strings.TrimSpace(m.address.Value())
		m = m.closeAddress()
		if path == "" {
			return m, nil
		}
		return m.navigate(path), nil
	case key.Matches(msg, m.keys.Cancel):
		return m.closeAddress(), nil
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.address, cmd = m.address.Update(msg)
	return m, cmd
}

func (m Model) closeAddress() Model {
	m.addressing = false
	m.address.Blur()
	m.address.Reset()
	return m
}

func (m Model) handleLoginKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Submit) {
		return m.navigate(app.PathDashboard), nil
	}
	return m, nil
}

// handleUserKeys drives the "Go Back" button of the user details page.
func (m Model) handleUserKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Submit) || key.Matches(msg, m.keys.Cancel) {
		m.session.Back(m.ctx)
	}
	return m, nil
}

func (m Model) handleDashboardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Home):
		return m.navigate(app.PathDashboard), nil
	case key.Matches(msg, m.keys.Profile):
		return m.navigate(app.PathProfile), nil
	case key.Matches(msg, m.keys.Settings):
		return m.navigate(app.PathSettings), nil
	}
	return m, nil
}

// handleSettingsKeys applies settings panel keys to the mounted controller.
// handled is false for keys the panel does not own.
func (m Model) handleSettingsKeys(msg tea.KeyMsg) (Model, bool) {
	ctrl := m.session.Settings()
	if ctrl == nil {
		return m, false
	}

	switch {
	case key.Matches(msg, m.keys.ThemeLight):
		_ = ctrl.SetTheme(settings.ThemeLight)
	case key.Matches(msg, m.keys.ThemeDark):
		_ = ctrl.SetTheme(settings.ThemeDark)
	case key.Matches(msg, m.keys.ToggleTheme):
		ctrl.ToggleTheme()
	case key.Matches(msg, m.keys.Notifications):
		ctrl.ToggleNotifications()
	case key.Matches(msg, m.keys.Save):
		ctrl.Save(m.ctx)
	case key.Matches(msg, m.keys.Reset):
		ctrl.Reset(m.ctx)
	default:
		return m, false
	}
	return m, true
}
