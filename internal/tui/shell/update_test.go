package shell

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/navshell/internal/app"
	"github.com/alexisbeaulieu97/navshell/internal/settings"
)

func TestUpdate_WindowSizeMsg(t *testing.T) {
	m, _ := newTestModel(t, app.PathLogin)

	next, cmd := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	shellModel, ok := next.(Model)
	require.True(t, ok)
	assert.Nil(t, cmd)
	assert.Equal(t, 120, shellModel.width)
	assert.Equal(t, 40, shellModel.height)
}

func TestUpdate_QuitKeys(t *testing.T) {
	m, _ := newTestModel(t, app.PathLogin)

	for _, k := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(k)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestUpdate_NavbarKeys(t *testing.T) {
	m, _ := newTestModel(t, app.PathLogin)

	m = press(t, m, runes("2"))
	assert.Equal(t, app.PathDashboard, m.Current().Path)
	assert.Equal(t, app.ViewDashboardHome, m.Current().Match.Leaf())

	m = press(t, m, runes("3"))
	assert.Equal(t, "101", m.Current().Params().Get("id"))

	m = press(t, m, runes("1"))
	assert.Equal(t, app.ViewLogin, m.Current().Match.Leaf())
}

func TestUpdate_LoginEnterOpensDashboard(t *testing.T) {
	m, _ := newTestModel(t, "/")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, app.PathDashboard, m.Current().Path)
}

func TestUpdate_DashboardSubnav(t *testing.T) {
	m, _ := newTestModel(t, app.PathDashboard)

	m = press(t, m, runes("p"))
	assert.Equal(t, app.ViewProfile, m.Current().Match.Leaf())

	m = press(t, m, runes("s"))
	assert.Equal(t, app.ViewSettings, m.Current().Match.Leaf())

	m = press(t, m, runes("h"))
	assert.Equal(t, app.ViewDashboardHome, m.Current().Match.Leaf())
}

func TestUpdate_SubnavKeysIgnoredOutsideDashboard(t *testing.T) {
	m, _ := newTestModel(t, app.PathLogin)

	m = press(t, m, runes("s"))

	assert.Equal(t, app.PathLogin, m.Current().Path)
}

func TestUpdate_BackAndForward(t *testing.T) {
	m, _ := newTestModel(t, app.PathLogin)

	m = press(t, m, runes("b"))
	assert.Equal(t, app.PathLogin, m.Current().Path, "back with no history is a no-op")

	m = press(t, m, runes("2"), runes("p"), runes("b"))
	assert.Equal(t, app.PathDashboard, m.Current().Path)

	m = press(t, m, runes("f"))
	assert.Equal(t, app.PathProfile, m.Current().Path)
}

func TestUpdate_UserGoBack(t *testing.T) {
	m, _ := newTestModel(t, app.PathDashboard)

	m = press(t, m, runes("3"))
	require.Equal(t, app.ViewUser, m.Current().Match.Leaf())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, app.PathDashboard, m.Current().Path)
}

func TestUpdate_SettingsKeys(t *testing.T) {
	m, store := newTestModel(t, app.PathSettings)
	ctx := context.Background()

	m = press(t, m, runes("d"))
	assert.Equal(t, settings.ThemeDark, m.Theme(), "theme applies before saving")
	_, ok, err := store.Get(ctx, settings.KeyTheme)
	require.NoError(t, err)
	assert.False(t, ok)

	m = press(t, m, runes("n"), runes("w"))
	v, ok, err := store.Get(ctx, settings.KeyNotifications)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "false", v)
	v, _, _ = store.Get(ctx, settings.KeyTheme)
	assert.Equal(t, "dark", v)

	m = press(t, m, runes("t"))
	assert.Equal(t, settings.ThemeLight, m.Theme())

	m = press(t, m, runes("r"))
	assert.Equal(t, settings.ThemeLight, m.Theme())
	_, ok, err = store.Get(ctx, settings.KeyTheme)
	require.NoError(t, err)
	assert.False(t, ok, "reset clears stored entries")
}

func TestUpdate_SettingsRemountReloadsStore(t *testing.T) {
	m, store := newTestModel(t, app.PathSettings)
	require.NoError(t, store.Set(context.Background(), settings.KeyTheme, "dark"))

	m = press(t, m, runes("l"), runes("h"), runes("s"))

	assert.Equal(t, settings.ThemeDark, m.Theme())
}

func TestUpdate_AddressBar(t *testing.T) {
	m, _ := newTestModel(t, app.PathLogin)

	m = press(t, m, runes("g"))
	require.True(t, m.addressing)
	assert.Equal(t, app.PathLogin, m.address.Value())

	m.address.SetValue("")
	m = press(t, m, runes("/user/42"), tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.addressing)
	assert.Equal(t, "42", m.Current().Params().Get("id"))
}

func TestUpdate_AddressBarCancel(t *testing.T) {
	m, _ := newTestModel(t, app.PathLogin)

	m = press(t, m, runes("g"), runes("q"), tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, m.addressing)
	assert.Equal(t, app.PathLogin, m.Current().Path, "keys typed in the address bar are not shortcuts")
}

func TestUpdate_UnknownPathShowsNotFound(t *testing.T) {
	m, _ := newTestModel(t, app.PathLogin)

	next, _ := m.Update(NavigateMsg{Path: "/nowhere"})
	m = next.(Model)

	assert.True(t, m.Current().Match.Wildcard)
	assert.Equal(t, app.ViewNotFound, m.Current().Match.Leaf())

	next, _ = m.Update(BackMsg{})
	m = next.(Model)
	assert.Equal(t, app.PathLogin, m.Current().Path)
}

func TestUpdate_HelpToggle(t *testing.T) {
	m, _ := newTestModel(t, app.PathLogin)

	m = press(t, m, runes("?"))
	require.True(t, m.showHelp)

	m = press(t, m, runes("2"))
	assert.Equal(t, app.PathLogin, m.Current().Path, "help overlay swallows navigation keys")

	m = press(t, m, runes("?"))
	assert.False(t, m.showHelp)
}
