package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsShowDefaults(t *testing.T) {
	home := setupHome(t)

	res := executeCommand(t, "settings", "show")
	require.NoError(t, res.err)

	assert.Contains(t, res.stdout, "theme: light")
	assert.Contains(t, res.stdout, "notifications: true")
	assert.Contains(t, res.stdout, "status: Not saved")

	_, err := os.Stat(filepath.Join(home, ".navshell", "settings.json"))
	assert.True(t, os.IsNotExist(err), "reading does not create the store document")
}

func TestSettingsSetPersistsAcrossRuns(t *testing.T) {
	for _, backend := range []string{"file", "sqlite"} {
		t.Run(backend, func(t *testing.T) {
			setupHome(t)
			store := filepath.Join(t.TempDir(), "prefs")

			res := executeCommand(t, "--backend", backend, "--store", store, "settings", "set", "--theme", "dark", "--notifications", "false")
			require.NoError(t, res.err, res.stderr)
			assert.Contains(t, res.stdout, "theme: dark")
			assert.Contains(t, res.stdout, "status: Saved: ")

			res = executeCommand(t, "--backend", backend, "--store", store, "settings", "show")
			require.NoError(t, res.err, res.stderr)
			assert.Contains(t, res.stdout, "theme: dark")
			assert.Contains(t, res.stdout, "notifications: false")

			res = executeCommand(t, "--backend", backend, "--store", store, "settings", "reset")
			require.NoError(t, res.err, res.stderr)
			assert.Contains(t, res.stdout, "theme: light")

			res = executeCommand(t, "--backend", backend, "--store", store, "settings", "show")
			require.NoError(t, res.err, res.stderr)
			assert.Contains(t, res.stdout, "theme: light")
			assert.Contains(t, res.stdout, "notifications: true")
		})
	}
}

func TestSettingsSetUsesConfiguredStore(t *testing.T) {
	home := setupHome(t)

	res := executeCommand(t, "--backend", "sqlite", "settings", "set", "--theme", "dark")
	require.NoError(t, res.err, res.stderr)

	_, err := os.Stat(filepath.Join(home, ".navshell", "settings.db"))
	require.NoError(t, err)
}

func TestSettingsBackendFlagKeepsConfiguredPathForSameBackend(t *testing.T) {
	home := setupHome(t)
	dir := t.TempDir()
	custom := filepath.Join(dir, "custom.db")
	cfgPath := filepath.Join(dir, "navshell.yaml")
	cfgData := "storage:\n  backend: sqlite\n  path: " + custom + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgData), 0o644))

	res := executeCommand(t, "-c", cfgPath, "--backend", "sqlite", "settings", "set", "--theme", "dark")
	require.NoError(t, res.err, res.stderr)

	_, err := os.Stat(custom)
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(home, ".navshell", "settings.db"))
	assert.True(t, os.IsNotExist(err), "default store must stay untouched")

	res = executeCommand(t, "-c", cfgPath, "settings", "show")
	require.NoError(t, res.err, res.stderr)
	assert.Contains(t, res.stdout, "theme: dark")
}

func TestSettingsBackendFlagSwitchesToDefaultPathForOtherBackend(t *testing.T) {
	home := setupHome(t)
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "navshell.yaml")
	cfgData := "storage:\n  backend: file\n  path: " + filepath.Join(dir, "prefs.json") + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgData), 0o644))

	res := executeCommand(t, "-c", cfgPath, "--backend", "sqlite", "settings", "set", "--theme", "dark")
	require.NoError(t, res.err, res.stderr)

	_, err := os.Stat(filepath.Join(home, ".navshell", "settings.db"))
	require.NoError(t, err)
}

func TestSettingsSetValidatesInput(t *testing.T) {
	setupHome(t)

	res := executeCommand(t, "settings", "set")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "nothing to set")

	res = executeCommand(t, "settings", "set", "--theme", "purple")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "invalid theme")

	res = executeCommand(t, "settings", "set", "--notifications", "maybe")
	require.Error(t, res.err)
}

func TestSettingsVerboseReplaysBootstrapLogs(t *testing.T) {
	setupHome(t)

	res := executeCommand(t, "--verbose", "--backend", "memory", "settings", "show")
	require.NoError(t, res.err)

	assert.Contains(t, res.stderr, "loading configuration")
	assert.Contains(t, res.stderr, `"component":"command.settings.show"`)
	assert.Contains(t, res.stderr, "settings.loaded")
}

func TestSettingsCorruptStoreFallsBackToDefaults(t *testing.T) {
	setupHome(t)
	store := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(store, []byte("not json"), 0o644))

	res := executeCommand(t, "--store", store, "settings", "show")
	require.NoError(t, res.err)

	assert.Contains(t, res.stdout, "theme: light")
	assert.Contains(t, res.stderr, "could not read settings from store")
}
