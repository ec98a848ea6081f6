package figure

import "errors"

var (
	// ErrBadFigure indicates a figure string that does not parse:
	// an empty token, a numeral outside 1..15, or an unknown accidental.
	ErrBadFigure = errors.New("figure: malformed figure string")
)

// Resolution identifies the resolution obligation a figure shape imposes on
// the motion into the next chord. The set is closed: movement checking
// switches over these variants and nothing else.
type Resolution int

const (
	// ResolutionNone imposes no constraint on the following motion.
	ResolutionNone Resolution = iota

	// ResolutionFourThree marks the six-four-three shape: the voice sounding
	// the fourth above the bass must resolve downward by step.
	ResolutionFourThree

	// ResolutionDimSixFive marks the diminished six-five shape (a six-five
	// whose fifth is lowered): the diminished fifth resolves down by step,
	// and the sixth resolves according to the configured doubling mode.
	ResolutionDimSixFive
)

// String returns the variant name for diagnostics.
func (r Resolution) String() string {
	switch r {
	case ResolutionNone:
		return "none"
	case ResolutionFourThree:
		return "four-three"
	case ResolutionDimSixFive:
		return "diminished-six-five"
	default:
		return "unknown"
	}
}

// Offset is one required interval above the bass.
type Offset struct {
	// Number is the figured-bass numeral, 1..15 (1 = the bass class itself).
	Number int

	// Alter is the chromatic shift the figure's accidental applies to the
	// diatonic degree: # raises, b (or a leading minus) lowers.
	Alter int

	// Natural is set when the figure writes an explicit natural sign,
	// which pins the degree to its unaltered letter regardless of mode.
	Natural bool

	// Explicit distinguishes offsets the figure wrote out from members the
	// completion table supplied. Doubling restrictions only ever attach to
	// explicit, altered offsets.
	Explicit bool
}

// Altered reports whether the offset carries any accidental marking.
func (o Offset) Altered() bool {
	return o.Natural || o.Alter != 0
}

// Figure is the structured form of one bass note's figure.
type Figure struct {
	// Text is the original figure string, kept for error messages.
	Text string

	// Offsets is the complete required-member list, largest numeral first,
	// after table completion. Every chord tone the realization must cover
	// appears here exactly once.
	Offsets []Offset

	// Resolution is the obligation this figure imposes on the next motion.
	Resolution Resolution
}

// Offset returns the offset with the given numeral and whether it exists.
func (f Figure) Offset(number int) (Offset, bool) {
	for _, o := range f.Offsets {
		if o.Number == number {
			return o, true
		}
	}

	return Offset{}, false
}
