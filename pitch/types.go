// Package pitch defines the spelled-pitch value types and sentinel errors.
package pitch

import "errors"

// Diatonic step constants (white-key letters). StepC..StepB index into the
// natural-semitone table; arithmetic on steps is always modulo 7.
const (
	StepC = iota
	StepD
	StepE
	StepF
	StepG
	StepA
	StepB
)

var (
	// ErrBadPitch indicates a pitch string that does not parse as
	// letter + optional accidentals + octave (e.g. "C4", "Eb3", "F#5").
	ErrBadPitch = errors.New("pitch: malformed pitch string")

	// ErrBadStep indicates a diatonic step outside 0..6.
	ErrBadStep = errors.New("pitch: diatonic step out of range")
)

// stepSemis maps a diatonic step to its natural chromatic offset within an
// octave: C=0, D=2, E=4, F=5, G=7, A=9, B=11.
var stepSemis = [7]int{0, 2, 4, 5, 7, 9, 11}

// stepNames maps a diatonic step to its letter name.
var stepNames = [7]string{"C", "D", "E", "F", "G", "A", "B"}

// Pitch is a spelled pitch: diatonic step, chromatic alteration (sharps
// positive, flats negative), and octave in scientific pitch notation.
// The zero value is C0. Pitch is an immutable value type.
type Pitch struct {
	// Step is the diatonic letter, StepC..StepB.
	Step int
	// Alter is the chromatic alteration in semitones (#=+1, b=-1).
	Alter int
	// Octave is the scientific octave number (C4 = middle C).
	Octave int
}

// Class is a spelled pitch class: a Pitch with the octave discarded.
type Class struct {
	Step  int
	Alter int
}

// Interval is the displacement between two pitches, measured simultaneously
// in diatonic steps (staff positions) and semitones (sounding distance).
// Both components are signed; upward motion is positive.
type Interval struct {
	Steps     int
	Semitones int
}
