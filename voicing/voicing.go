package voicing

import (
	"sort"

	"github.com/katalvlaran/cantus/pitch"
)

// NewRange returns the inclusive range [low, high].
// Returns ErrInvertedRange if low sounds above high.
func NewRange(low, high pitch.Pitch) (Range, error) {
	if pitch.Compare(low, high) > 0 {
		return Range{}, ErrInvertedRange
	}

	return Range{Low: low, High: high}, nil
}

// MustRange is NewRange that panics on error; for literals in presets,
// tests and examples.
func MustRange(low, high string) Range {
	r, err := NewRange(pitch.MustParse(low), pitch.MustParse(high))
	if err != nil {
		panic(err)
	}

	return r
}

// Contains reports whether p lies inside the range, bounds included.
func (r Range) Contains(p pitch.Pitch) bool {
	return pitch.Compare(r.Low, p) <= 0 && pitch.Compare(p, r.High) <= 0
}

// Filter returns the pitches of ps that lie inside the range,
// in their original order.
func (r Range) Filter(ps []pitch.Pitch) []pitch.Pitch {
	var out []pitch.Pitch
	for _, p := range ps {
		if r.Contains(p) {
			out = append(out, p)
		}
	}

	return out
}

// Compare orders ranges lexicographically on (Low, High).
// Returns -1, 0, or +1.
func (r Range) Compare(o Range) int {
	if c := pitch.Compare(r.Low, o.Low); c != 0 {
		return c
	}

	return pitch.Compare(r.High, o.High)
}

// Sounding returns the voice's sounding range: the written range shifted by
// the transposition interval.
func (v Voice) Sounding() Range {
	return Range{
		Low:  v.Written.Low.Transpose(v.Transposition),
		High: v.Written.High.Transpose(v.Transposition),
	}
}

// Order validates vs and returns a new slice holding the voices in the
// engine's fixed order: highest sounding range first, ties broken by name.
// The input slice is not modified.
//
// Returns ErrNoVoices for an empty list, ErrDuplicateVoice for repeated
// names, and ErrInvertedRange for any voice whose written range is inverted.
func Order(vs []Voice) ([]Voice, error) {
	if len(vs) == 0 {
		return nil, ErrNoVoices
	}

	seen := make(map[string]bool, len(vs))
	out := make([]Voice, len(vs))
	for i, v := range vs {
		if seen[v.Name] {
			return nil, ErrDuplicateVoice
		}
		seen[v.Name] = true
		if pitch.Compare(v.Written.Low, v.Written.High) > 0 {
			return nil, ErrInvertedRange
		}
		out[i] = v
	}

	sort.SliceStable(out, func(i, j int) bool {
		if c := out[i].Sounding().Compare(out[j].Sounding()); c != 0 {
			return c > 0
		}

		return out[i].Name < out[j].Name
	})

	return out, nil
}

// SATB returns the standard four-voice chorale ensemble with conventional
// ranges and the customary octave spacing cap between adjacent upper voices.
// The bass voice carries no cap against the tenor.
func SATB() []Voice {
	return []Voice{
		{Name: "Soprano", Written: MustRange("C4", "G5"), Clef: "treble"},
		{Name: "Alto", Written: MustRange("G3", "D5"), MaxSeparation: 12, Clef: "treble"},
		{Name: "Tenor", Written: MustRange("C3", "G4"), MaxSeparation: 12, Clef: "treble8vb"},
		{Name: "Bass", Written: MustRange("E2", "C4"), Clef: "bass"},
	}
}
