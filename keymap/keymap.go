package keymap

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type Mapping struct {
	CycleFocus key.Binding
	GoBack     key.Binding
	Quit       key.Binding
	Select     key.Binding
	RootUp     key.Binding
	RootDown   key.Binding
	OctaveUp   key.Binding
	OctaveDown key.Binding
	Chromatic  key.Binding
}

var DefaultMapping = Mapping{
	CycleFocus: key.NewBinding(
		key.WithKeys(tea.KeyTab.String()),
		key.WithHelp("tab", "cycle focus"),
	),
	GoBack: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "go back"),
	),
	Quit: key.NewBinding(
		key.WithKeys(tea.KeyCtrlC.String()),
		key.WithHelp("ctrl+c", "quit"),
	),
	Select: key.NewBinding(
		key.WithKeys(tea.KeyEnter.String()),
		key.WithHelp("enter", "select"),
	),
	RootUp: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "root up"),
	),
	RootDown: key.NewBinding(
		key.WithKeys("-", "_"),
		key.WithHelp("-", "root down"),
	),
	OctaveUp: key.NewBinding(
		key.WithKeys(">", "."),
		key.WithHelp(">", "octave up"),
	),
	OctaveDown: key.NewBinding(
		key.WithKeys("<", ","),
		key.WithHelp("<", "octave down"),
	),
	Chromatic: key.NewBinding(
		key.WithKeys("`"),
		key.WithHelp("`", "chromatic keys"),
	),
}

// ShortHelp implements help.KeyMap.
func (m Mapping) ShortHelp() []key.Binding {
	return []key.Binding{m.Select, m.CycleFocus, m.GoBack, m.Quit}
}

// FullHelp implements help.KeyMap.
func (m Mapping) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.Select, m.CycleFocus, m.GoBack, m.Quit},
		{m.RootUp, m.RootDown, m.OctaveUp, m.OctaveDown, m.Chromatic},
	}
}
