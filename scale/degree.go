package scale

// Offset returns the distance in semitones from the tonic to a degree.
// The scale must have been built with New.
// Degrees past the last step continue into higher periods and negative
// degrees count down below the tonic, ex: for Major, Offset(7) is 12 and
// Offset(-1) is -1.
func (s Scale) Offset(degree int) int {
	periods, rem := divmod(degree, len(s.intervals))

	sum := 0
	for _, n := range s.intervals[:rem] {
		sum += n
	}
	return periods*s.span + sum
}
