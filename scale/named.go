package scale

import "strings"

var (
	Major = MustNew(2, 2, 1, 2, 2, 2, 1)

	Ionian     = Major
	Dorian     = Major.Mode(1)
	Phrygian   = Major.Mode(2)
	Lydian     = Major.Mode(3)
	Mixolydian = Major.Mode(4)
	Aeolian    = Major.Mode(5)
	Locrian    = Major.Mode(6)
	Minor      = Aeolian

	HarmonicMinor = MustNew(2, 1, 2, 2, 1, 3, 1)
	MelodicMinor  = MustNew(2, 1, 2, 2, 2, 2, 1)

	Chromatic = MustNew(1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1)
	WholeTone = MustNew(2, 2, 2, 2, 2, 2)

	Octatonic1 = MustNew(2, 1, 2, 1, 2, 1, 2, 1)
	Octatonic2 = Octatonic1.Mode(1)

	MajorPentatonic = MustNew(2, 2, 3, 2, 3)
	MinorPentatonic = MajorPentatonic.Mode(4)
	Blues           = MustNew(3, 2, 1, 1, 3, 2)
)

// Named pairs a scale with its display name.
type Named struct {
	Name  string
	Scale Scale
}

// Catalog lists the built-in scales in display order.
var Catalog = []Named{
	{"Major", Major},
	{"Dorian", Dorian},
	{"Phrygian", Phrygian},
	{"Lydian", Lydian},
	{"Mixolydian", Mixolydian},
	{"Minor", Minor},
	{"Locrian", Locrian},
	{"Harmonic Minor", HarmonicMinor},
	{"Melodic Minor", MelodicMinor},
	{"Chromatic", Chromatic},
	{"Whole Tone", WholeTone},
	{"Octatonic 1", Octatonic1},
	{"Octatonic 2", Octatonic2},
	{"Major Pentatonic", MajorPentatonic},
	{"Minor Pentatonic", MinorPentatonic},
	{"Blues", Blues},
}

var aliases = map[string]string{
	"ionian":  "major",
	"aeolian": "minor",
}

// Lookup finds a catalog scale by name, ignoring case, spaces, dashes and
// underscores. "Ionian" and "Aeolian" are accepted.
func Lookup(name string) (Named, bool) {
	key := normalize(name)
	if alias, ok := aliases[key]; ok {
		key = alias
	}
	for _, n := range Catalog {
		if normalize(n.Name) == key {
			return n, true
		}
	}
	return Named{}, false
}

func normalize(name string) string {
	r := strings.NewReplacer(" ", "", "-", "", "_", "")
	return strings.ToLower(r.Replace(strings.TrimSpace(name)))
}
