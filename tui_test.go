package rmxtheory_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rapidmidiex/rmxtheory"
	"github.com/rapidmidiex/rmxtheory/config"
	"github.com/rapidmidiex/rmxtheory/pianoui"
	"github.com/rapidmidiex/rmxtheory/rootui"
	"github.com/rapidmidiex/rmxtheory/scale"
	"github.com/rapidmidiex/rmxtheory/scaleui"
	"github.com/stretchr/testify/require"
)

// collect runs a command and flattens batches into their messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var msgs []tea.Msg
	for _, c := range batch {
		msgs = append(msgs, collect(c)...)
	}
	return msgs
}

func find[T any](msgs []tea.Msg) (T, bool) {
	for _, msg := range msgs {
		if v, ok := msg.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func TestNewModel(t *testing.T) {
	t.Run("rejects a bad root", func(t *testing.T) {
		_, err := rmxtheory.NewModel(&config.Config{Root: "H4", Scale: "major"})
		require.Error(t, err)
	})

	t.Run("rejects an unknown scale", func(t *testing.T) {
		_, err := rmxtheory.NewModel(&config.Config{Root: "C4", Scale: "hungarian"})
		require.ErrorIs(t, err, scale.ErrInvalidScale)
	})
}

func TestMainModel(t *testing.T) {
	m, err := rmxtheory.NewModel(testConfig())
	require.NoError(t, err)

	var model tea.Model = m
	require.Contains(t, model.View(), "Root:")
	require.Contains(t, model.View(), "C4 D4 E4 F4 G4 A4 B4 C5")

	t.Run("moves the root everywhere", func(t *testing.T) {
		next, _ := model.Update(rootui.RootChanged{Pitch: 62})
		require.Contains(t, next.View(), "D4 E4 F♯4 G4 A4 B4 D♭5 D5")
	})

	t.Run("opens the piano for the selected scale and goes back", func(t *testing.T) {
		next, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
		selected, ok := find[scaleui.ScaleSelected](collect(cmd))
		require.True(t, ok)
		require.Equal(t, "Major", selected.Named.Name)

		next, _ = next.Update(selected)
		require.Contains(t, next.View(), "C4 Major")
		require.Contains(t, next.View(), "(a)")

		next, cmd = next.Update(tea.KeyMsg{Type: tea.KeyEsc})
		leave, ok := find[pianoui.LeaveMsg](collect(cmd))
		require.True(t, ok)

		next, _ = next.Update(leave)
		require.Contains(t, next.View(), "Root:")
	})

	t.Run("quits on ctrl+c", func(t *testing.T) {
		_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		require.NotNil(t, cmd)
		require.Equal(t, tea.Quit(), cmd())
	})
}
