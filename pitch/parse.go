package pitch

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

var (
	ErrBadName    = errors.New("bad note name")
	ErrOutOfRange = errors.New("pitch outside the MIDI range")
)

// Octaves a note name may carry. C-1 is MIDI 0 and G9 is MIDI 127.
const (
	minOctave = -1
	maxOctave = 9
)

// Parse reads a note name such as "C4", "c#4", "D♭-1", "Bbb3", "Fx2" or a
// bare MIDI number such as "61". The result must lie in 0-127.
func Parse(s string) (Pitch, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrBadName)
	}

	n, err := strconv.Atoi(s)
	switch {
	case err == nil:
		if !inMIDI(n) {
			return 0, fmt.Errorf("%w: %d", ErrOutOfRange, n)
		}
		return Pitch(n), nil
	case errors.Is(err, strconv.ErrRange):
		return 0, fmt.Errorf("%w: %q", ErrOutOfRange, s)
	}

	runes := []rune(s)
	letter, ok := letterFromRune(runes[0])
	if !ok {
		return 0, fmt.Errorf("%w: %q: letter must be one of A-G", ErrBadName, s)
	}

	shift, rest := readAccidentals(runes[1:])

	octave, err := strconv.Atoi(string(rest))
	switch {
	case errors.Is(err, strconv.ErrRange):
		return 0, fmt.Errorf("%w: %q: octave out of range", ErrOutOfRange, s)
	case err != nil:
		return 0, fmt.Errorf("%w: %q: octave: %v", ErrBadName, s, err)
	case octave < minOctave || octave > maxOctave:
		return 0, fmt.Errorf("%w: %q: octave must be %d to %d", ErrOutOfRange, s, minOctave, maxOctave)
	}

	n = (octave+1)*12 + letter.Class() + shift
	if !inMIDI(n) {
		return 0, fmt.Errorf("%w: %q is %d", ErrOutOfRange, s, n)
	}
	return Pitch(n), nil
}

func inMIDI(n int) bool {
	return n >= 0 && n <= int(MaxMIDI)
}

func letterFromRune(r rune) (Letter, bool) {
	i := strings.IndexRune("CDEFGAB", unicode.ToUpper(r))
	if i < 0 {
		return 0, false
	}
	return Letter(i), true
}

// readAccidentals consumes accidental symbols and returns the total shift
// along with the remaining runes.
func readAccidentals(runes []rune) (int, []rune) {
	shift := 0
	for i, r := range runes {
		switch r {
		case '#', '♯', 's':
			shift++
		case 'b', '♭':
			shift--
		case 'x', '𝄪':
			shift += 2
		case '𝄫':
			shift -= 2
		case '♮':
		default:
			return shift, runes[i:]
		}
	}
	return shift, nil
}

// ParseLetter reads a single note letter, ex: "D" or "d".
func ParseLetter(s string) (Letter, error) {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) != 1 {
		return 0, fmt.Errorf("%w: %q is not a single letter", ErrBadName, s)
	}
	l, ok := letterFromRune(runes[0])
	if !ok {
		return 0, fmt.Errorf("%w: %q: letter must be one of A-G", ErrBadName, s)
	}
	return l, nil
}
