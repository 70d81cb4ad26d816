package main

import (
	"bytes"
	"testing"
)

type commandResult struct {
	stdout string
	stderr string
	err    error
}

// executeCommand runs the root command with args in a throwaway HOME.
func executeCommand(t *testing.T, args ...string) commandResult {
	t.Helper()
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetIn(&bytes.Buffer{})
	root.SetArgs(args)

	err := root.Execute()
	return commandResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}
