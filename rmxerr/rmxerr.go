// Package rmxerr carries errors through the bubbletea update loop.
package rmxerr

import tea "github.com/charmbracelet/bubbletea"

type (
	ErrMsg struct {
		Err error
	}
)

func (m ErrMsg) Error() string {
	return m.Err.Error()
}

func (m ErrMsg) Unwrap() error {
	return m.Err
}

// Cmd returns a command that reports err as an ErrMsg.
func Cmd(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrMsg{Err: err}
	}
}
