package shell

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/navshell/internal/app"
	"github.com/alexisbeaulieu97/navshell/internal/storage"
)

func newTestModel(t *testing.T, start string) (Model, *storage.Memory) {
	t.Helper()
	store := storage.NewMemory()
	session, err := app.NewSession(store)
	require.NoError(t, err)
	session.Start(context.Background(), start)

	m := NewModel(context.Background(), session)
	t.Cleanup(m.Close)
	return m, store
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press feeds keys through Update and returns the resulting model.
func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}
