package rmxtheory

import (
	"fmt"
	"io"
	"log"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rapidmidiex/rmxtheory/config"
	"github.com/rapidmidiex/rmxtheory/keymap"
	"github.com/rapidmidiex/rmxtheory/pianoui"
	"github.com/rapidmidiex/rmxtheory/pitch"
	"github.com/rapidmidiex/rmxtheory/rmxerr"
	"github.com/rapidmidiex/rmxtheory/rootui"
	"github.com/rapidmidiex/rmxtheory/scale"
	"github.com/rapidmidiex/rmxtheory/scaleui"
)

// ********
// Code heavily based on "Project Journal"
// https://github.com/bashbunni/pjs
// https://www.youtube.com/watch?v=uJ2egAkSkjg&t=319s
// ********

type (
	appView int
	focused int

	mainModel struct {
		curView appView
		focused focused
		root    pitch.Pitch

		rootInput tea.Model
		scales    tea.Model
		piano     tea.Model

		log *log.Logger
	}
)

const (
	scaleView appView = iota
	pianoView
)

const (
	tableFocus focused = iota
	rootFocus
)

func NewModel(cfg *config.Config) (mainModel, error) {
	root, err := pitch.Parse(cfg.Root)
	if err != nil {
		return mainModel{}, fmt.Errorf("root: %w", err)
	}
	if _, ok := scale.Lookup(cfg.Scale); !ok {
		return mainModel{}, fmt.Errorf("%w: unknown scale %q", scale.ErrInvalidScale, cfg.Scale)
	}

	return mainModel{
		curView:   scaleView,
		focused:   tableFocus,
		root:      root,
		rootInput: rootui.New(root),
		scales:    scaleui.New(root, cfg.Scale),
		log:       log.Default(),
	}, nil
}

func (m mainModel) Init() tea.Cmd {
	return tea.Batch(
		m.rootInput.Init(),
		m.scales.Init(),
	)
}

func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	// Errors are rendered by the sub-model of the current view.
	case rmxerr.ErrMsg:
		m.log.Println(msg.Error())

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keymap.DefaultMapping.Quit):
			return m, tea.Quit
		case m.curView == scaleView && key.Matches(msg, keymap.DefaultMapping.CycleFocus):
			m.focused = (m.focused + 1) % 2
			m.rootInput, cmd = m.rootInput.Update(rootui.ToggleFocusMsg{})
			cmds = append(cmds, cmd)
			m.scales, cmd = m.scales.Update(scaleui.ToggleFocusMsg{})
			cmds = append(cmds, cmd)
			return m, tea.Batch(cmds...)
		}
		if m.curView == scaleView {
			switch m.focused {
			case rootFocus:
				m.rootInput, cmd = m.rootInput.Update(msg)
			case tableFocus:
				m.scales, cmd = m.scales.Update(msg)
			}
			return m, cmd
		}

	case rootui.RootChanged:
		m.root = msg.Pitch
		m.rootInput, cmd = m.rootInput.Update(msg)
		cmds = append(cmds, cmd)
		m.scales, cmd = m.scales.Update(msg)
		cmds = append(cmds, cmd)
		if m.piano != nil {
			m.piano, cmd = m.piano.Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case scaleui.ScaleSelected:
		m.piano = pianoui.New(m.root, msg.Named)
		m.curView = pianoView
		m.log.Printf("selected %s from %s", msg.Named.Name, m.root)
		return m, m.piano.Init()

	case pianoui.LeaveMsg:
		m.curView = scaleView
		return m, nil
	}

	// Call sub-model Updates
	switch m.curView {
	case scaleView:
		m.rootInput, cmd = m.rootInput.Update(msg)
		cmds = append(cmds, cmd)
		m.scales, cmd = m.scales.Update(msg)
		cmds = append(cmds, cmd)
	case pianoView:
		m.piano, cmd = m.piano.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m mainModel) View() string {
	switch m.curView {
	case pianoView:
		return m.piano.View()
	default:
		return m.rootInput.View() + "\n" + m.scales.View()
	}
}

// Run starts the terminal UI and blocks until it exits.
func Run(cfg *config.Config) error {
	if cfg.DebugLog != "" {
		f, err := tea.LogToFile(cfg.DebugLog, "rmx")
		if err != nil {
			return fmt.Errorf("debug log: %w", err)
		}
		defer f.Close()
	} else {
		// stdout belongs to the UI
		log.SetOutput(io.Discard)
	}

	m, err := NewModel(cfg)
	if err != nil {
		return err
	}

	var opts []tea.ProgramOption
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(m, opts...)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
