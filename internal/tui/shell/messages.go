package shell

// NavigateMsg asks the shell to navigate to Path, as if typed in the
// address bar.
type NavigateMsg struct {
	Path string
}

// BackMsg asks the shell to go back one step in history.
type BackMsg struct{}
