// Package scale turns interval patterns into pitches.
package scale

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidScale = errors.New("invalid scale")

// Scale is an ordered pattern of semitone steps that repeats every period.
// The zero Scale is not usable; build one with New.
type Scale struct {
	intervals []int
	span      int
}

// New builds a scale from its steps. Every step must be positive and the
// steps must add up to a whole number of octaves.
func New(intervals ...int) (Scale, error) {
	if len(intervals) == 0 {
		return Scale{}, fmt.Errorf("%w: no intervals", ErrInvalidScale)
	}

	span := 0
	for i, n := range intervals {
		if n <= 0 {
			return Scale{}, fmt.Errorf("%w: interval %d is %d", ErrInvalidScale, i, n)
		}
		span += n
	}
	if span%12 != 0 {
		return Scale{}, fmt.Errorf("%w: intervals sum to %d, not a multiple of 12", ErrInvalidScale, span)
	}

	steps := make([]int, len(intervals))
	copy(steps, intervals)
	return Scale{intervals: steps, span: span}, nil
}

// MustNew is like New but panics on error.
func MustNew(intervals ...int) Scale {
	s, err := New(intervals...)
	if err != nil {
		panic(err)
	}
	return s
}

// Intervals returns a copy of the steps.
func (s Scale) Intervals() []int {
	out := make([]int, len(s.intervals))
	copy(out, s.intervals)
	return out
}

// Len is the number of degrees in one period.
func (s Scale) Len() int {
	return len(s.intervals)
}

// Span is the size of one period in semitones.
func (s Scale) Span() int {
	return s.span
}

// Mode returns the scale starting on its n-th degree.
func (s Scale) Mode(n int) Scale {
	return Scale{intervals: Rotate(s.intervals, n), span: s.span}
}

// String writes the steps as "2-2-1-2-2-2-1".
func (s Scale) String() string {
	parts := make([]string, len(s.intervals))
	for i, n := range s.intervals {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, "-")
}

// Rotate shifts xs left by n places, moving the first n elements to the
// end. n is taken modulo len(xs). xs is not modified.
func Rotate(xs []int, n int) []int {
	out := make([]int, len(xs))
	if len(xs) == 0 {
		return out
	}
	n = mod(n, len(xs))
	copy(out, xs[n:])
	copy(out[len(xs)-n:], xs[:n])
	return out
}

func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// divmod is floor division with a remainder in [0, b).
func divmod(a, b int) (int, int) {
	r := mod(a, b)
	return (a - r) / b, r
}
