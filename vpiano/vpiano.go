package vpiano

import (
	"strconv"

	"github.com/rapidmidiex/rmxtheory/pitch"
	"github.com/rapidmidiex/rmxtheory/scale"
)

type (
	Note struct {
		// MIDI note number, based on C4=60
		MIDI int
		// Name of the note, ex: "C", "D♭"
		Name string
		// Name with octave, ex: "D♭4"
		FullName string
		// Denotes if note is sharp/flat ie. "black" key.
		IsAccidental bool
		// qwerty keyboard key binding.
		KeyBinding string
	}

	Notes []Note

	NoteKeyMap map[string]Note

	// Octave number in scientific pitch notation, C4 = MIDI 60.
	Octave int
)

// qwerty keys ordered to allow for fingering similar to a real piano.
var qwertyKeys = []string{"a", "w", "s", "e", "d", "f", "t", "g", "y", "h", "u", "j", "k", "o", "l", "p", ";", "'"}

// OctaveOf returns the octave that contains p.
func OctaveOf(p pitch.Pitch) Octave {
	return Octave(p.Octave())
}

// MakeOctaveNotes creates a chromatic keyboard starting on the C of the given octave, ex: Octave(4) starts at C4. The keybindings start at C, using the home row for naturals and q-row for accidentals, in an attempt to map close to actual piano fingerings. Keys past MIDI 127 are left unbound.
func MakeOctaveNotes(octave Octave) Notes {
	root := int(pitch.C0) + 12*int(octave)
	notes := make([]Note, 0, len(qwertyKeys))

	for i, kb := range qwertyKeys {
		if !InRange(root + i) {
			continue
		}
		p := pitch.Pitch(root + i)
		notes = append(notes, makeNote(p, kb, p.Spell()))
	}

	return notes
}

// MakeScaleNotes binds the qwerty keys, in order, to successive pitches of the sequence.
// Names follow the sequence's melodic spelling. Pitches beyond the number of keys are left out.
func MakeScaleNotes(seq scale.Sequence) Notes {
	pitches := seq.Pitches()
	if len(pitches) > len(qwertyKeys) {
		pitches = pitches[:len(qwertyKeys)]
	}

	spelled := pitch.LineSpellings(pitches)
	notes := make([]Note, 0, len(pitches))
	for i, p := range pitches {
		notes = append(notes, makeNote(p, qwertyKeys[i], spelled[i]))
	}
	return notes
}

func makeNote(p pitch.Pitch, kb string, s pitch.Spelling) Note {
	return Note{
		MIDI:         int(p),
		Name:         s.String(),
		FullName:     s.String() + strconv.Itoa(p.Octave()),
		IsAccidental: p.Spell().Accidental != pitch.Natural,
		KeyBinding:   kb,
	}
}

func (notes Notes) ToBindingMap() NoteKeyMap {
	nMap := make(NoteKeyMap, len(notes))
	for _, n := range notes {
		nMap[n.KeyBinding] = n
	}
	return nMap
}

// InRange reports whether midiNum is a valid MIDI note number.
func InRange(midiNum int) bool {
	return midiNum >= 0 && midiNum <= int(pitch.MaxMIDI)
}
