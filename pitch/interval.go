package pitch

// Abs returns the interval with both components made non-negative.
// Because Steps and Semitones always share a sign for real intervals,
// this is the "unsigned size" used by the class tests below.
func (iv Interval) Abs() Interval {
	out := iv
	if out.Steps < 0 {
		out.Steps = -out.Steps
	}
	if out.Semitones < 0 {
		out.Semitones = -out.Semitones
	}

	return out
}

// Direction returns -1 for downward motion, +1 for upward, 0 for none.
// Semitones decide; a purely diatonic respelling (0 semitones) counts as
// no motion.
func (iv Interval) Direction() int {
	return sign(iv.Semitones)
}

// simple reduces the interval to its within-one-octave class:
// steps modulo 7, semitones modulo 12, both on the absolute size.
func (iv Interval) simple() (int, int) {
	a := iv.Abs()

	return a.Steps % 7, a.Semitones % 12
}

// IsPerfectUnison reports a true unison: no displacement at all.
func (iv Interval) IsPerfectUnison() bool {
	return iv.Steps == 0 && iv.Semitones == 0
}

// IsPerfectOctave reports one or more exact octaves (not a unison).
func (iv Interval) IsPerfectOctave() bool {
	s, h := iv.simple()

	return iv.Steps != 0 && s == 0 && h == 0
}

// IsPerfectFifth reports a perfect fifth or any compound thereof
// (a twelfth is a fifth for voice-leading purposes).
func (iv Interval) IsPerfectFifth() bool {
	s, h := iv.simple()

	return s == 4 && h == 7
}

// IsPerfectConsonance reports a unison, octave, or fifth class.
// These are the intervals the parallel/hidden motion rules guard.
func (iv Interval) IsPerfectConsonance() bool {
	return iv.IsPerfectUnison() || iv.IsPerfectOctave() || iv.IsPerfectFifth()
}

// IsStep reports motion by a melodic second: one staff position and at most
// two semitones (covers minor, major, and the occasional chromatic second).
func (iv Interval) IsStep() bool {
	a := iv.Abs()

	return a.Steps == 1 && a.Semitones >= 1 && a.Semitones <= 2
}
