// Package pianoui renders a virtual keyboard over one scale.
package pianoui

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rapidmidiex/rmxtheory/keymap"
	"github.com/rapidmidiex/rmxtheory/pitch"
	"github.com/rapidmidiex/rmxtheory/rmxerr"
	"github.com/rapidmidiex/rmxtheory/rootui"
	"github.com/rapidmidiex/rmxtheory/scale"
	"github.com/rapidmidiex/rmxtheory/styles"
	"github.com/rapidmidiex/rmxtheory/vpiano"
	"golang.org/x/term"
)

var docStyle = styles.DocStyle

type (
	LeaveMsg struct{}

	model struct {
		named scale.Named
		root  pitch.Pitch
		// Piano keys bound to the scale degrees.
		piano vpiano.Notes
		// {"a": Note{60, "C", ...}}
		keys vpiano.NoteKeyMap
		// Key binding of the last key played.
		active string
		// Bind every semitone of the root's octave instead of the scale.
		chromatic bool
		err    error

		log *log.Logger
	}
)

func New(root pitch.Pitch, named scale.Named) model {
	m := model{
		named: named,
		log:   log.Default(),
	}
	m.err = m.setRoot(root)
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keymap.DefaultMapping.GoBack):
			return m, leave
		case key.Matches(msg, keymap.DefaultMapping.RootUp):
			return m, m.shift(1)
		case key.Matches(msg, keymap.DefaultMapping.RootDown):
			return m, m.shift(-1)
		case key.Matches(msg, keymap.DefaultMapping.OctaveUp):
			return m, m.shift(12)
		case key.Matches(msg, keymap.DefaultMapping.OctaveDown):
			return m, m.shift(-12)
		case key.Matches(msg, keymap.DefaultMapping.Chromatic):
			m.chromatic = !m.chromatic
			m.active = ""
			m.err = m.setRoot(m.root)
			return m, nil
		}

		if note, ok := m.keys[msg.String()]; ok {
			m.active = note.KeyBinding
			m.log.Printf("pianoui: played %s (%d)", note.FullName, note.MIDI)
		}

	case rootui.RootChanged:
		if err := m.setRoot(msg.Pitch); err != nil {
			return m, rmxerr.Cmd(err)
		}
		m.active = ""
		m.err = nil

	case rmxerr.ErrMsg:
		m.err = msg
	}
	return m, nil
}

func (m model) View() string {
	physicalWidth, _, _ := term.GetSize(int(os.Stdout.Fd()))
	doc := strings.Builder{}

	if physicalWidth > 0 {
		docStyle = docStyle.MaxWidth(physicalWidth)
	}

	doc.WriteString(styles.BoldStyle.Render(fmt.Sprintf("%s %s", m.root.Name(), m.named.Name)))
	doc.WriteString("  " + m.named.Scale.String())
	if m.chromatic {
		doc.WriteString("  (chromatic keys)")
	}
	doc.WriteString("\n\n")

	// Keyboard
	keys := make([]string, 0, len(m.piano))
	for _, n := range m.piano {
		style := styles.PianoKey
		switch {
		case n.KeyBinding == m.active:
			style = styles.ActiveKey
		case n.IsAccidental:
			style = styles.AccidentalKey
		}
		keys = append(keys, style.Render(n.FullName+"\n\n"+"("+n.KeyBinding+")"))
	}
	doc.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, keys...) + "\n\n")

	// Status bar
	status := "play a key"
	if n, ok := m.keys[m.active]; ok {
		status = fmt.Sprintf("%s  MIDI %d", n.FullName, n.MIDI)
	}
	doc.WriteString(styles.RenderStatus("NOTE", status) + "\n")

	if m.err != nil {
		doc.WriteString("\n" + styles.RenderError(m.err.Error()) + "\n")
	}
	return docStyle.Render(doc.String())
}

// shift moves the root by n semitones, staying within the MIDI range.
func (m model) shift(n int) tea.Cmd {
	next := int(m.root) + n
	if !vpiano.InRange(next) {
		return rmxerr.Cmd(fmt.Errorf("root %d is outside the MIDI range", next))
	}
	return func() tea.Msg {
		return rootui.RootChanged{Pitch: pitch.Pitch(next)}
	}
}

func (m *model) setRoot(root pitch.Pitch) error {
	seq, err := scale.Octave(root, m.named.Scale)
	if err != nil {
		return fmt.Errorf("%s: %w", m.named.Name, err)
	}
	m.root = root
	if m.chromatic {
		m.piano = vpiano.MakeOctaveNotes(vpiano.OctaveOf(root))
	} else {
		m.piano = vpiano.MakeScaleNotes(seq)
	}
	m.keys = m.piano.ToBindingMap()
	return nil
}

func leave() tea.Msg {
	return LeaveMsg{}
}
