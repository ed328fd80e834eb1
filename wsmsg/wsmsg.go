// Package wsmsg contains the RMX message types used to share scales between clients.
package wsmsg

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rapidmidiex/rmxtheory/pitch"
	"github.com/rapidmidiex/rmxtheory/scale"
)

var (
	ErrNoteRange     = errors.New("MIDI note out of range")
	ErrVelocityRange = errors.New("MIDI velocity out of range")
)

type (
	MsgType   int
	NoteState int

	Envelope struct {
		// Message identifier
		ID uuid.UUID `json:"id"`
		// MIDIMsg | ScaleMsg
		Typ MsgType `json:"type"`
		// RMX client identifier
		UserID uuid.UUID `json:"userId"`
		// Actual message data.
		Payload json.RawMessage `json:"payload"`
	}

	MIDIMsg struct {
		State NoteState `json:"state"`
		// MIDI Note # in "C4 Convention", C4 = 60. Available values: (0-127)
		Number int `json:"number"`
		// MIDI Velocity (0-127)
		Velocity int `json:"velocity"`
	}

	// ScaleMsg announces a scale run. The MIDI messages for its notes follow it.
	ScaleMsg struct {
		Name      string   `json:"name"`
		Root      int      `json:"root"`
		Intervals []int    `json:"intervals"`
		Start     int      `json:"start"`
		End       int      `json:"end"`
		Notes     []string `json:"notes"`
	}
)

const (
	MIDI MsgType = iota
	SCALE
)

const (
	NOTE_OFF NoteState = iota
	NOTE_ON
)

func (e *Envelope) SetPayload(payload any) error {
	p, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	e.Payload = p
	return nil
}

func (e *Envelope) Unwrap(msg any) error {
	return json.Unmarshal(e.Payload, msg)
}

func (t *MsgType) UnmarshalJSON(data []byte) error {
	var rawType string
	err := json.Unmarshal(data, &rawType)
	if err != nil {
		return err
	}

	switch rawType {
	case "midi":
		*t = MIDI
	case "scale":
		*t = SCALE
	default:
		return fmt.Errorf("unknown type: %s", rawType)
	}
	return nil
}

func (t MsgType) MarshalJSON() ([]byte, error) {
	switch t {
	case MIDI:
		return []byte(`"midi"`), nil
	case SCALE:
		return []byte(`"scale"`), nil
	}
	return []byte{}, fmt.Errorf("unknown MsgTyp value: %d", t)
}

// FromSequence encodes a scale run as a SCALE envelope followed by one
// NOTE_ON envelope per pitch.
func FromSequence(userID uuid.UUID, name string, seq scale.Sequence, velocity int) ([]Envelope, error) {
	if velocity < 0 || velocity > 127 {
		return nil, fmt.Errorf("%w: %d", ErrVelocityRange, velocity)
	}

	pitches := seq.Pitches()
	envelopes := make([]Envelope, 0, len(pitches)+1)

	head := Envelope{ID: uuid.New(), Typ: SCALE, UserID: userID}
	err := head.SetPayload(ScaleMsg{
		Name:      name,
		Root:      int(seq.Root()),
		Intervals: seq.Scale().Intervals(),
		Start:     seq.Start(),
		End:       seq.End(),
		Notes:     pitch.SpellLine(pitches),
	})
	if err != nil {
		return nil, fmt.Errorf("marshal scale: %w", err)
	}
	envelopes = append(envelopes, head)

	for _, p := range pitches {
		if p < 0 || p > pitch.MaxMIDI {
			return nil, fmt.Errorf("%w: %s is %d", ErrNoteRange, p.Name(), int(p))
		}
		e := Envelope{ID: uuid.New(), Typ: MIDI, UserID: userID}
		err := e.SetPayload(MIDIMsg{State: NOTE_ON, Number: int(p), Velocity: velocity})
		if err != nil {
			return nil, fmt.Errorf("marshal note: %w", err)
		}
		envelopes = append(envelopes, e)
	}
	return envelopes, nil
}
