// Package rootui is the text input used to pick the root note.
package rootui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rapidmidiex/rmxtheory/pitch"
	"github.com/rapidmidiex/rmxtheory/rmxerr"
	"github.com/rapidmidiex/rmxtheory/styles"
)

type (
	ToggleFocusMsg struct{}

	// RootChanged is sent once a new root note has been entered.
	RootChanged struct {
		Pitch pitch.Pitch
	}
)

type model struct {
	input     textinput.Model
	current   pitch.Pitch
	rootStyle lipgloss.Style
	err       error
}

func New(root pitch.Pitch) model {
	ti := textinput.New()
	ti.Placeholder = "C4, D♭3, F#2 or 61"
	ti.Prompt = "┃ "
	ti.CharLimit = 8
	ti.Width = 20

	return model{
		input:     ti,
		current:   root,
		rootStyle: styles.BoldStyle.Copy().Foreground(styles.Primary),
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case ToggleFocusMsg:
		if m.input.Focused() {
			m.input.Blur()
			return m, nil
		}
		cmd = m.input.Focus()
		return m, cmd

	case RootChanged:
		m.current = msg.Pitch
		m.err = nil
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEnter && m.input.Focused() {
			value := m.input.Value()
			m.input.Reset()
			return m, submit(value)
		}

	// We handle errors just like any other message
	case rmxerr.ErrMsg:
		m.err = msg
		return m, nil
	}

	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string {
	view := fmt.Sprintf("Root: %s\n%s", m.rootStyle.Render(m.current.Name()), m.input.View())
	if m.err != nil {
		view += "\n" + styles.RenderError(m.err.Error())
	}
	return view + "\n"
}

func submit(value string) tea.Cmd {
	return func() tea.Msg {
		p, err := pitch.Parse(value)
		if err != nil {
			return rmxerr.ErrMsg{Err: fmt.Errorf("root: %w", err)}
		}
		return RootChanged{Pitch: p}
	}
}
