package wsmsg_test

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/rapidmidiex/rmxtheory/pitch"
	"github.com/rapidmidiex/rmxtheory/scale"
	"github.com/rapidmidiex/rmxtheory/wsmsg"
	"github.com/stretchr/testify/require"
)

func TestMsgTypeMarshaling(t *testing.T) {
	t.Run("unmarshals type from JSON", func(t *testing.T) {
		message := []byte(`{
    "id": "7b0f33ba-8a50-446d-aaa4-4de4aa96fc6c",
    "type": "scale",
    "payload": {
        "name": "Major",
        "root": 60,
        "intervals": [2, 2, 1, 2, 2, 2, 1]
    },
    "userId": "00000000-0000-0000-0000-000000000000"
}`)

		var got wsmsg.Envelope
		err := json.Unmarshal(message, &got)
		require.NoError(t, err)
		require.Equal(t, wsmsg.SCALE, got.Typ)

		var payload wsmsg.ScaleMsg
		require.NoError(t, got.Unwrap(&payload))
		require.Equal(t, "Major", payload.Name)
		require.Equal(t, 60, payload.Root)
	})

	t.Run("marshals type to JSON", func(t *testing.T) {
		message := wsmsg.Envelope{
			Typ: wsmsg.MIDI,
		}

		got, err := json.Marshal(message)
		require.NoError(t, err)
		want := `"type":"midi"`
		require.Containsf(t, string(got), want, "JSON does not contain [ %s ]\n%s", want, string(got))
	})

	t.Run("rejects unknown types", func(t *testing.T) {
		var got wsmsg.Envelope
		err := json.Unmarshal([]byte(`{"type":"text"}`), &got)
		require.Error(t, err)
	})
}

func TestFromSequence(t *testing.T) {
	userID := uuid.New()

	t.Run("encodes a scale header and its notes", func(t *testing.T) {
		seq, err := scale.Octave(pitch.MiddleC, scale.Major)
		require.NoError(t, err)

		got, err := wsmsg.FromSequence(userID, "Major", seq, 100)
		require.NoError(t, err)
		require.Len(t, got, 9)

		require.Equal(t, wsmsg.SCALE, got[0].Typ)
		var head wsmsg.ScaleMsg
		require.NoError(t, got[0].Unwrap(&head))
		require.Equal(t, wsmsg.ScaleMsg{
			Name:      "Major",
			Root:      60,
			Intervals: []int{2, 2, 1, 2, 2, 2, 1},
			Start:     0,
			End:       8,
			Notes:     []string{"C4", "D4", "E4", "F4", "G4", "A4", "B4", "C5"},
		}, head)

		wantNumbers := []int{60, 62, 64, 65, 67, 69, 71, 72}
		ids := map[uuid.UUID]struct{}{got[0].ID: {}}
		for i, e := range got[1:] {
			require.Equal(t, wsmsg.MIDI, e.Typ)
			require.Equal(t, userID, e.UserID)

			var note wsmsg.MIDIMsg
			require.NoError(t, e.Unwrap(&note))
			require.Equal(t, wsmsg.MIDIMsg{State: wsmsg.NOTE_ON, Number: wantNumbers[i], Velocity: 100}, note)

			ids[e.ID] = struct{}{}
		}
		require.Len(t, ids, len(got), "message IDs must be unique")
	})

	t.Run("names notes as one melodic line", func(t *testing.T) {
		seq, err := scale.NewSequence(62, scale.Chromatic, 0, 3)
		require.NoError(t, err)

		got, err := wsmsg.FromSequence(userID, "Chromatic", seq, 100)
		require.NoError(t, err)

		var head wsmsg.ScaleMsg
		require.NoError(t, got[0].Unwrap(&head))
		require.Equal(t, []string{"D4", "E♭4", "E4"}, head.Notes)
		require.Equal(t, seq.Names(), head.Notes)
	})

	t.Run("rejects notes outside the MIDI range", func(t *testing.T) {
		seq, err := scale.NewSequence(120, scale.Major, 0, 8)
		require.NoError(t, err)

		_, err = wsmsg.FromSequence(userID, "Major", seq, 100)
		require.ErrorIs(t, err, wsmsg.ErrNoteRange)
	})

	t.Run("rejects bad velocity", func(t *testing.T) {
		seq, err := scale.Octave(pitch.MiddleC, scale.Major)
		require.NoError(t, err)

		_, err = wsmsg.FromSequence(userID, "Major", seq, 128)
		require.ErrorIs(t, err, wsmsg.ErrVelocityRange)
	})
}
