package shell

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/navshell/internal/app"
	"github.com/alexisbeaulieu97/navshell/internal/router"
	"github.com/alexisbeaulieu97/navshell/internal/settings"
)

// View renders the current model state
func (m Model) View() string {
	var content strings.Builder

	content.WriteString(m.renderNavbar())
	content.WriteString("\n")

	if m.addressing {
		content.WriteString(m.styles.addressBar.Render(m.address.View()))
		content.WriteString("\n")
	}

	content.WriteString(router.Compose(m.session.Current().Match, m.renderRoute))
	content.WriteString("\n")
	if m.notices.text != "" {
		content.WriteString(m.styles.success.Render(m.notices.text))
		content.WriteString("\n")
	}
	content.WriteString(m.renderFooter())

	return content.String()
}

func (m Model) renderNavbar() string {
	path := m.session.Current().Path
	links := make([]string, 0, len(app.NavbarLinks())+1)
	for i, link := range app.NavbarLinks() {
		links = append(links, m.renderLink(fmt.Sprintf("%d %s", i+1, link.Label), link.Active(path)))
	}
	links = append(links, m.styles.muted.Render(path))
	return m.styles.nav.Render(lipgloss.JoinHorizontal(lipgloss.Top, links...))
}

func (m Model) renderLink(label string, active bool) string {
	if active {
		return m.styles.navActive.Render(label)
	}
	return m.styles.navLink.Render(label)
}

// renderRoute renders one view of the matched chain. outlet holds the
// rendering of the nested child, if any.
func (m Model) renderRoute(view router.View, params router.Params, outlet string) string {
	switch view {
	case app.ViewLogin:
		return m.renderLogin()
	case app.ViewDashboard:
		return m.renderDashboard(outlet)
	case app.ViewDashboardHome:
		return m.section("Dashboard Home", "Welcome to your dashboard.")
	case app.ViewProfile:
		return m.section("User Profile", "This is your profile section.")
	case app.ViewSettings:
		return m.renderSettings()
	case app.ViewUser:
		return m.renderUser(params.Get("id"))
	case app.ViewNotFound:
		return m.styles.title.Render("404 Page Not Found")
	default:
		return outlet
	}
}

func (m Model) section(title, body string) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.subtitle.Render(title),
		m.styles.body.Render(body),
	)
}

func (m Model) renderLogin() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.title.Render("Login"),
		m.styles.body.Render("Press enter to enter the Dashboard."),
		m.styles.button.Render("Login"),
	)
}

func (m Model) renderDashboard(outlet string) string {
	path := m.session.Current().Path
	links := make([]string, 0, len(app.DashboardLinks()))
	for _, link := range app.DashboardLinks() {
		label := fmt.Sprintf("%s %s", strings.ToLower(link.Label[:1]), link.Label)
		links = append(links, m.renderLink(label, link.Active(path)))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.title.Render("Dashboard"),
		lipgloss.JoinHorizontal(lipgloss.Top, links...),
		m.styles.nested.Render(outlet),
	)
}

func (m Model) renderUser(id string) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.title.Render("User Details"),
		m.styles.body.Render("User ID: ")+m.styles.subtitle.Render(id),
		m.styles.button.Render("Go Back"),
	)
}

func (m Model) renderSettings() string {
	ctrl := m.session.Settings()
	if ctrl == nil {
		return ""
	}
	prefs := ctrl.Preferences()

	theme := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.subtitle.Render("Theme"),
		radio("Light", prefs.Theme == settings.ThemeLight)+"  "+radio("Dark", prefs.Theme == settings.ThemeDark),
		m.styles.hint.Render("Theme applies immediately but is persisted only when you save."),
	)

	notifications := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.subtitle.Render("Notifications"),
		checkbox("Enable Email Notifications", prefs.NotificationsEnabled),
		m.styles.hint.Render("Toggle email notifications for dashboard alerts. Saved when you save."),
	)

	account := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.subtitle.Render("Account"),
		m.styles.body.Render("Status: ")+m.styles.success.Render("Active"),
		m.styles.muted.Render("No destructive account actions are available from this page."),
	)

	status := ctrl.StatusLine()
	if ctrl.State() == settings.StateModified {
		status += " (unsaved changes)"
	}
	actions := lipgloss.JoinHorizontal(lipgloss.Center,
		m.styles.button.Render("Save"),
		" ",
		m.styles.secondary.Render("Reset"),
		m.styles.status.Render(status),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.subtitle.Render("Settings"),
		m.styles.muted.Render("Change visual and notification preferences for this dashboard. Save to persist."),
		m.styles.box.Render(theme),
		m.styles.box.Render(notifications),
		m.styles.box.Render(account),
		actions,
	)
}

func radio(label string, selected bool) string {
	if selected {
		return "(•) " + label
	}
	return "( ) " + label
}

func checkbox(label string, checked bool) string {
	if checked {
		return "[x] " + label
	}
	return "[ ] " + label
}

func (m Model) renderFooter() string {
	keys := m.helpKeys()
	if m.showHelp {
		return m.styles.footer.Render(m.help.FullHelpView(keys.full))
	}
	return m.styles.footer.Render(m.help.ShortHelpView(keys.short))
}

// helpKeys lists the bindings relevant to the active view.
func (m Model) helpKeys() contextHelp {
	k := m.keys
	global := []key.Binding{k.Login, k.Dashboard, k.DemoUser, k.Back, k.Forward, k.Address, k.Help, k.Quit}

	var local []key.Binding
	switch m.leaf() {
	case app.ViewLogin:
		local = []key.Binding{withHelp(k.Submit, "login")}
	case app.ViewUser:
		local = []key.Binding{withHelp(k.Submit, "go back")}
	case app.ViewSettings:
		local = []key.Binding{k.ThemeLight, k.ThemeDark, k.ToggleTheme, k.Notifications, k.Save, k.Reset}
	}
	if m.inDashboard() {
		local = append([]key.Binding{k.Home, k.Profile, k.Settings}, local...)
	}

	short := append(append([]key.Binding{}, local...), k.Back, k.Help, k.Quit)
	full := [][]key.Binding{global}
	if len(local) > 0 {
		full = append([][]key.Binding{local}, full...)
	}
	return contextHelp{short: short, full: full}
}

func withHelp(b key.Binding, desc string) key.Binding {
	b.SetHelp(b.Help().Key, desc)
	return b
}
