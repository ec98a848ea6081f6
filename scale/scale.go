package scale

import (
	"errors"
	"sort"

	"github.com/katalvlaran/cantus/figure"
	"github.com/katalvlaran/cantus/pitch"
	"github.com/katalvlaran/cantus/voicing"
)

// Mode selects the interval pattern of the scale.
type Mode int

const (
	Major Mode = iota
	NaturalMinor
	HarmonicMinor
	MelodicMinor
)

// ErrUnknownMode indicates a Mode value outside the declared constants.
var ErrUnknownMode = errors.New("scale: unknown mode")

// modeSemis maps each mode to the chromatic offset of its seven degrees
// above the tonic.
var modeSemis = map[Mode][7]int{
	Major:         {0, 2, 4, 5, 7, 9, 11},
	NaturalMinor:  {0, 2, 3, 5, 7, 8, 10},
	HarmonicMinor: {0, 2, 3, 5, 7, 8, 11},
	MelodicMinor:  {0, 2, 3, 5, 7, 9, 11},
}

// modeNames maps each mode to its display name.
var modeNames = map[Mode]string{
	Major:         "major",
	NaturalMinor:  "natural minor",
	HarmonicMinor: "harmonic minor",
	MelodicMinor:  "melodic minor",
}

// String returns the mode's display name.
func (m Mode) String() string {
	if n, ok := modeNames[m]; ok {
		return n
	}

	return "unknown"
}

// Scale is a key: a tonic pitch class and a mode.
type Scale struct {
	Tonic pitch.Class
	Mode  Mode
}

// New returns the scale with the given tonic and mode.
func New(tonic pitch.Class, mode Mode) (Scale, error) {
	if _, ok := modeSemis[mode]; !ok {
		return Scale{}, ErrUnknownMode
	}

	return Scale{Tonic: tonic, Mode: mode}, nil
}

// String renders the key as e.g. "C major" or "F# harmonic minor".
func (s Scale) String() string {
	return s.Tonic.String() + " " + s.Mode.String()
}

// ClassForStep returns the spelled class the scale places on the given
// diatonic letter (StepC..StepB). Every diatonic mode uses each letter
// exactly once, so the lookup is total.
func (s Scale) ClassForStep(step int) pitch.Class {
	step = ((step % 7) + 7) % 7
	degree := ((step - s.Tonic.Step) + 7) % 7
	want := stepSemi(s.Tonic.Step) + s.Tonic.Alter + modeSemis[s.Mode][degree]
	alter := want - stepSemi(step)
	// Wrap into the nearest spelling (keeps B# out of C-degree answers).
	for alter > 6 {
		alter -= 12
	}
	for alter < -6 {
		alter += 12
	}

	return pitch.Class{Step: step, Alter: alter}
}

// Degree returns the 1-based scale degree of p's class, and whether the
// class belongs to the scale at all.
func (s Scale) Degree(p pitch.Pitch) (int, bool) {
	c := s.ClassForStep(p.Step)
	if p.SameClass(c) {
		return ((p.Step-s.Tonic.Step)+7)%7 + 1, true
	}

	return 0, false
}

// ClassForOffset returns the spelled class a figure offset denotes above
// the given root: the diatonic class of the target letter, shifted by the
// offset's accidental (or pinned to natural).
func (s Scale) ClassForOffset(root pitch.Pitch, off figure.Offset) pitch.Class {
	c := s.ClassForStep(root.Step + off.Number - 1)
	if off.Natural {
		c.Alter = 0

		return c
	}
	c.Alter += off.Alter

	return c
}

// PitchesForDegrees returns every pitch inside the bounding range whose
// spelled class matches one of the figure offsets above root, in ascending
// order without duplicates.
//
// Complexity: O(k·octaves + m log m) for k offsets and m matches.
func (s Scale) PitchesForDegrees(root pitch.Pitch, offsets []figure.Offset, within voicing.Range) []pitch.Pitch {
	classes := make([]pitch.Class, 0, len(offsets))
	for _, off := range offsets {
		c := s.ClassForOffset(root, off)
		dup := false
		for _, have := range classes {
			if have == c {
				dup = true
				break
			}
		}
		if !dup {
			classes = append(classes, c)
		}
	}

	var out []pitch.Pitch
	for _, c := range classes {
		for oct := within.Low.Octave - 1; oct <= within.High.Octave+1; oct++ {
			p := pitch.Pitch{Step: c.Step, Alter: c.Alter, Octave: oct}
			if within.Contains(p) {
				out = append(out, p)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return pitch.Compare(out[i], out[j]) < 0 })

	return out
}

func stepSemi(step int) int {
	semis := [7]int{0, 2, 4, 5, 7, 9, 11}

	return semis[((step%7)+7)%7]
}
