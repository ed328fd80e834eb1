// Package scaleui lists the built-in scales in a table.
package scaleui

import (
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rapidmidiex/rmxtheory/keymap"
	"github.com/rapidmidiex/rmxtheory/pitch"
	"github.com/rapidmidiex/rmxtheory/rootui"
	"github.com/rapidmidiex/rmxtheory/scale"
	"github.com/rapidmidiex/rmxtheory/styles"
	"golang.org/x/term"
)

var (
	docStyle = styles.DocStyle
)

type (
	ToggleFocusMsg struct{}

	// ScaleSelected is sent when a scale is picked from the table.
	ScaleSelected struct {
		Named scale.Named
	}
)

type Model struct {
	root       pitch.Pitch
	scaleTable table.Model
	help       help.Model
	log        *log.Logger
}

// New builds the table from the catalog with the cursor on the named
// scale, if it exists.
func New(root pitch.Pitch, selected string) Model {
	m := Model{
		root: root,
		help: help.New(),
		log:  log.Default(),
	}
	m.scaleTable = makeScaleTable(root)

	if named, ok := scale.Lookup(selected); ok {
		for i, n := range scale.Catalog {
			if n.Name == named.Name {
				m.scaleTable.MoveDown(i)
				break
			}
		}
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.scaleTable.SetWidth(msg.Width - 10)
	case ToggleFocusMsg:
		if m.scaleTable.Focused() {
			m.scaleTable.Blur()
		} else {
			m.scaleTable.Focus()
		}
		return m, nil
	case rootui.RootChanged:
		m.root = msg.Pitch
		m.scaleTable.SetRows(makeRows(m.root))
		m.log.Printf("scaleui: root changed to %s", m.root)
		return m, nil
	case tea.KeyMsg:
		if m.scaleTable.Focused() && key.Matches(msg, keymap.DefaultMapping.Select) {
			cmds = append(cmds, scaleSelect(m.Selected()))
		}
	}
	newTable, tCmd := m.scaleTable.Update(msg)
	m.scaleTable = newTable

	cmds = append(cmds, tCmd)
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	physicalWidth, _, _ := term.GetSize(int(os.Stdout.Fd()))
	doc := strings.Builder{}

	// Scale table
	{
		scaleTable := styles.BaseStyle.Width(styles.Width).Render(m.scaleTable.View())
		doc.WriteString(scaleTable)
	}

	// Help menu
	{
		doc.WriteString("\n" + styles.HelpMenu.Render(m.help.View(keymap.DefaultMapping)))
	}

	if physicalWidth > 0 {
		docStyle = styles.DocStyle.MaxWidth(physicalWidth)
	}

	return docStyle.Render(doc.String())
}

// Selected returns the scale under the cursor.
func (m Model) Selected() scale.Named {
	return scale.Catalog[m.scaleTable.Cursor()]
}

func makeRows(root pitch.Pitch) []table.Row {
	rows := make([]table.Row, 0, len(scale.Catalog))
	for _, n := range scale.Catalog {
		notes := ""
		if seq, err := scale.Octave(root, n.Scale); err == nil {
			notes = strings.Join(seq.Names(), " ")
		}
		rows = append(rows, table.Row{n.Name, n.Scale.String(), notes})
	}
	return rows
}

func makeScaleTable(root pitch.Pitch) table.Model {
	columns := []table.Column{
		{Title: "Scale", Width: 16},
		{Title: "Steps", Width: 16},
		{Title: "Notes", Width: 32},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(makeRows(root)),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Commands
func scaleSelect(n scale.Named) tea.Cmd {
	return func() tea.Msg {
		return ScaleSelected{n}
	}
}
