package rmxtheory_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rapidmidiex/rmxtheory"
	"github.com/rapidmidiex/rmxtheory/config"
	"github.com/rapidmidiex/rmxtheory/pitch"
	"github.com/rapidmidiex/rmxtheory/scale"
	"github.com/rapidmidiex/rmxtheory/wsmsg"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{Root: "C4", Scale: "major", Velocity: 100}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := rmxtheory.NewRootCmd(testConfig())
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestNameCmd(t *testing.T) {
	t.Run("names MIDI numbers and note names", func(t *testing.T) {
		out, err := execute(t, "name", "24", "61", "Eb3")
		require.NoError(t, err)
		require.Equal(t, "24\tC1\n61\tD♭4\n51\tE♭3\n", out)
	})

	t.Run("avoids a neighbor letter", func(t *testing.T) {
		out, err := execute(t, "name", "--avoid", "D", "25")
		require.NoError(t, err)
		require.Equal(t, "25\tC♯1\n", out)
	})

	t.Run("spells a line", func(t *testing.T) {
		out, err := execute(t, "name", "--line", "62", "61", "60")
		require.NoError(t, err)
		require.Equal(t, "62\tD4\n61\tC♯4\n60\tB♯4\n", out)
	})

	t.Run("rejects negative input", func(t *testing.T) {
		_, err := execute(t, "name", "--", "-3")
		require.ErrorIs(t, err, pitch.ErrOutOfRange)
	})
}

func TestSpellCmd(t *testing.T) {
	out, err := execute(t, "spell", "1")
	require.NoError(t, err)
	require.Equal(t, "D♭ C♯\n", out)
}

func TestScaleCmd(t *testing.T) {
	t.Run("prints one octave by default", func(t *testing.T) {
		out, err := execute(t, "scale", "dorian", "--root", "D4")
		require.NoError(t, err)
		require.Equal(t, "D4 Dorian (2-1-2-2-2-1-2)\nD4 E4 F4 G4 A4 B4 C5 D5\n", out)
	})

	t.Run("takes the scale from the shared --scale flag", func(t *testing.T) {
		out, err := execute(t, "--scale=dorian", "scale", "--root", "D4")
		require.NoError(t, err)
		require.Equal(t, "D4 Dorian (2-1-2-2-2-1-2)\nD4 E4 F4 G4 A4 B4 C5 D5\n", out)

		out, err = execute(t, "scales", "--scale", "dorian")
		require.NoError(t, err)
		require.Contains(t, out, "Dorian")
	})

	t.Run("honors start and end", func(t *testing.T) {
		out, err := execute(t, "scale", "major", "--start", "-2", "--end", "1")
		require.NoError(t, err)
		require.Contains(t, out, "A3 B3 C4\n")
	})

	t.Run("rejects unknown scales", func(t *testing.T) {
		_, err := execute(t, "scale", "hungarian")
		require.ErrorIs(t, err, scale.ErrInvalidScale)
	})

	t.Run("rejects an inverted range", func(t *testing.T) {
		_, err := execute(t, "scale", "--start", "3", "--end", "1")
		require.ErrorIs(t, err, scale.ErrInvalidRange)
	})

	t.Run("writes RMX messages", func(t *testing.T) {
		out, err := execute(t, "scale", "major", "--json", "--velocity", "90")
		require.NoError(t, err)

		var envelopes []wsmsg.Envelope
		sc := bufio.NewScanner(strings.NewReader(out))
		for sc.Scan() {
			var e wsmsg.Envelope
			require.NoError(t, json.Unmarshal(sc.Bytes(), &e))
			envelopes = append(envelopes, e)
		}
		require.Len(t, envelopes, 9)
		require.Equal(t, wsmsg.SCALE, envelopes[0].Typ)

		var note wsmsg.MIDIMsg
		require.NoError(t, envelopes[1].Unwrap(&note))
		require.Equal(t, wsmsg.MIDIMsg{State: wsmsg.NOTE_ON, Number: 60, Velocity: 90}, note)
	})
}

func TestScalesCmd(t *testing.T) {
	out, err := execute(t, "scales")
	require.NoError(t, err)
	require.Equal(t, len(scale.Catalog), strings.Count(out, "\n"))
	require.Contains(t, out, "Octatonic 2")
}
