// Package pitch names absolute pitches and their pitch classes.
package pitch

import "fmt"

type (
	// Letter is one of the seven natural note names.
	Letter int

	Accidental int

	// Spelling is one way to write a pitch class, ex: D♭ or C♯.
	Spelling struct {
		Letter     Letter
		Accidental Accidental
	}

	// Pitch is an absolute semitone number, MIDI numbering (C4 = 60).
	Pitch int
)

const (
	C Letter = iota
	D
	E
	F
	G
	A
	B
)

const (
	Natural Accidental = iota
	Sharp
	Flat
	DoubleSharp
	DoubleFlat
)

const (
	// MIDI number for C0
	C0      Pitch = 12
	MiddleC Pitch = 60
	// Highest MIDI note number, G9
	MaxMIDI Pitch = 127
)

var letterNames = [...]string{"C", "D", "E", "F", "G", "A", "B"}

// Semitones above C of each natural letter.
var letterClasses = [...]int{0, 2, 4, 5, 7, 9, 11}

// Ordered spellings per pitch class. The first entry is the default.
var spellings = [12][]Spelling{
	{{C, Natural}, {B, Sharp}},
	{{D, Flat}, {C, Sharp}},
	{{D, Natural}},
	{{E, Flat}, {D, Sharp}},
	{{E, Natural}},
	{{F, Natural}, {E, Sharp}},
	{{F, Sharp}, {G, Flat}},
	{{G, Natural}},
	{{A, Flat}, {G, Sharp}},
	{{A, Natural}},
	{{B, Flat}, {A, Sharp}},
	{{B, Natural}, {C, Flat}},
}

func (l Letter) String() string {
	if l < C || l > B {
		return fmt.Sprintf("Letter(%d)", int(l))
	}
	return letterNames[l]
}

// Class returns the pitch class of the natural letter. Letters outside C-B
// report 0.
func (l Letter) Class() int {
	if l < C || l > B {
		return 0
	}
	return letterClasses[l]
}

// Glyph returns the display symbol. Natural is written as nothing.
func (a Accidental) Glyph() string {
	switch a {
	case Sharp:
		return "♯"
	case Flat:
		return "♭"
	case DoubleSharp:
		return "𝄪"
	case DoubleFlat:
		return "𝄫"
	default:
		return ""
	}
}

// Shift returns how many semitones the accidental moves a natural letter.
func (a Accidental) Shift() int {
	switch a {
	case Sharp:
		return 1
	case Flat:
		return -1
	case DoubleSharp:
		return 2
	case DoubleFlat:
		return -2
	default:
		return 0
	}
}

func (s Spelling) String() string {
	return s.Letter.String() + s.Accidental.Glyph()
}

// Class returns the pitch class the spelling denotes, 0-11.
func (s Spelling) Class() int {
	return mod(s.Letter.Class()+s.Accidental.Shift(), 12)
}

// Spellings lists the valid spellings of a pitch class in priority order.
// The class is reduced modulo 12 first.
func Spellings(class int) []Spelling {
	list := spellings[mod(class, 12)]
	out := make([]Spelling, len(list))
	copy(out, list)
	return out
}

// Class returns the pitch class, 0-11.
func (p Pitch) Class() int {
	return mod(int(p), 12)
}

// Octave returns the octave number, with C4 = 60. Pitches below C0 get
// negative octaves.
func (p Pitch) Octave() int {
	return floorDiv(int(p)-12, 12)
}

// Spell returns the default spelling of the pitch.
func (p Pitch) Spell() Spelling {
	return spellings[p.Class()][0]
}

// SpellAvoiding returns the first spelling whose letter differs from
// neighbor, or the default spelling if every candidate uses that letter.
func (p Pitch) SpellAvoiding(neighbor Letter) Spelling {
	list := spellings[p.Class()]
	for _, s := range list {
		if s.Letter != neighbor {
			return s
		}
	}
	return list[0]
}

// Name formats the pitch with its default spelling, ex: "C4", "D♭5".
func (p Pitch) Name() string {
	return p.format(p.Spell())
}

// NameAvoiding formats the pitch, avoiding the neighbor's letter when an
// enharmonic spelling allows it.
func (p Pitch) NameAvoiding(neighbor Letter) string {
	return p.format(p.SpellAvoiding(neighbor))
}

func (p Pitch) String() string {
	return p.Name()
}

func (p Pitch) format(s Spelling) string {
	return fmt.Sprintf("%s%d", s, p.Octave())
}

// SpellLine names a melodic line. Each pitch after the first avoids the
// letter chosen for the pitch before it.
func SpellLine(pitches []Pitch) []string {
	spelled := LineSpellings(pitches)
	names := make([]string, len(pitches))
	for i, p := range pitches {
		names[i] = p.format(spelled[i])
	}
	return names
}

// LineSpellings is SpellLine without the formatting.
func LineSpellings(pitches []Pitch) []Spelling {
	out := make([]Spelling, 0, len(pitches))
	for i, p := range pitches {
		s := p.Spell()
		if i > 0 {
			s = p.SpellAvoiding(out[i-1].Letter)
		}
		out = append(out, s)
	}
	return out
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
