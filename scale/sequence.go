package scale

import (
	"errors"
	"fmt"

	"github.com/rapidmidiex/rmxtheory/pitch"
)

var ErrInvalidRange = errors.New("invalid degree range")

type (
	// Sequence is the run of scale pitches from root over the degrees
	// [start, end). Nothing is stored; pitches are computed on demand.
	Sequence struct {
		root       pitch.Pitch
		scale      Scale
		start, end int
	}

	// Iterator walks a Sequence one degree at a time.
	Iterator struct {
		intervals []int
		cur       pitch.Pitch
		// Position within one period of the scale.
		degree int
		// Degrees left to produce.
		left int
	}
)

func NewSequence(root pitch.Pitch, s Scale, start, end int) (Sequence, error) {
	if s.Len() == 0 {
		return Sequence{}, fmt.Errorf("%w: empty scale", ErrInvalidScale)
	}
	if start > end {
		return Sequence{}, fmt.Errorf("%w: start %d is after end %d", ErrInvalidRange, start, end)
	}
	return Sequence{root: root, scale: s, start: start, end: end}, nil
}

// Octave is the sequence from root up to and including the note one period
// above it.
func Octave(root pitch.Pitch, s Scale) (Sequence, error) {
	return NewSequence(root, s, 0, s.Len()+1)
}

func (q Sequence) Root() pitch.Pitch { return q.root }
func (q Sequence) Scale() Scale      { return q.scale }
func (q Sequence) Start() int        { return q.start }
func (q Sequence) End() int          { return q.end }

// Len is the number of pitches Iter produces.
func (q Sequence) Len() int {
	return q.end - q.start
}

// At returns the pitch i degrees after start. i is not limited to Len.
func (q Sequence) At(i int) pitch.Pitch {
	return q.root + pitch.Pitch(q.scale.Offset(q.start+i))
}

// Iter returns a fresh iterator positioned at start.
func (q Sequence) Iter() *Iterator {
	return &Iterator{
		intervals: q.scale.intervals,
		cur:       q.At(0),
		degree:    mod(q.start, q.scale.Len()),
		left:      q.Len(),
	}
}

// Next returns the next pitch, or false once the sequence is exhausted.
func (it *Iterator) Next() (pitch.Pitch, bool) {
	if it.left <= 0 {
		return 0, false
	}
	p := it.cur
	it.cur += pitch.Pitch(it.intervals[it.degree])
	it.degree = (it.degree + 1) % len(it.intervals)
	it.left--
	return p, true
}

// Pitches collects the whole sequence.
func (q Sequence) Pitches() []pitch.Pitch {
	out := make([]pitch.Pitch, 0, q.Len())
	it := q.Iter()
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		out = append(out, p)
	}
	return out
}

// Names spells the sequence as a melodic line.
func (q Sequence) Names() []string {
	return pitch.SpellLine(q.Pitches())
}
