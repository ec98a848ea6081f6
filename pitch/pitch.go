package pitch

import (
	"fmt"
	"strconv"
	"strings"
)

// New returns the pitch with the given step, alteration and octave.
// Returns ErrBadStep if step is outside StepC..StepB.
func New(step, alter, octave int) (Pitch, error) {
	if step < StepC || step > StepB {
		return Pitch{}, ErrBadStep
	}

	return Pitch{Step: step, Alter: alter, Octave: octave}, nil
}

// MustParse is Parse that panics on error; intended for literals in tests
// and examples.
func MustParse(s string) Pitch {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return p
}

// Parse reads a pitch in scientific notation: a letter A..G, optional
// accidentals (#, ##, x, b, bb, n), and a (possibly negative) octave.
// Examples: "C4", "F#3", "Bb2", "Cx5", "A-1".
func Parse(s string) (Pitch, error) {
	if len(s) < 2 {
		return Pitch{}, fmt.Errorf("pitch: %q: %w", s, ErrBadPitch)
	}

	// 1. Letter.
	var step int
	switch s[0] {
	case 'C', 'c':
		step = StepC
	case 'D', 'd':
		step = StepD
	case 'E', 'e':
		step = StepE
	case 'F', 'f':
		step = StepF
	case 'G', 'g':
		step = StepG
	case 'A', 'a':
		step = StepA
	case 'B', 'b':
		step = StepB
	default:
		return Pitch{}, fmt.Errorf("pitch: %q: %w", s, ErrBadPitch)
	}

	// 2. Accidentals.
	rest := s[1:]
	alter := 0
	switch {
	case strings.HasPrefix(rest, "##"), strings.HasPrefix(rest, "x"):
		alter = 2
		rest = strings.TrimPrefix(strings.TrimPrefix(rest, "##"), "x")
	case strings.HasPrefix(rest, "#"):
		alter = 1
		rest = rest[1:]
	case strings.HasPrefix(rest, "bb"):
		alter = -2
		rest = rest[2:]
	case strings.HasPrefix(rest, "b"):
		alter = -1
		rest = rest[1:]
	case strings.HasPrefix(rest, "n"):
		rest = rest[1:]
	}

	// 3. Octave (signed integer).
	oct, err := strconv.Atoi(rest)
	if err != nil {
		return Pitch{}, fmt.Errorf("pitch: %q: %w", s, ErrBadPitch)
	}

	return Pitch{Step: step, Alter: alter, Octave: oct}, nil
}

// String renders the pitch in the same notation Parse accepts.
func (p Pitch) String() string {
	return p.PitchClass().String() + strconv.Itoa(p.Octave)
}

// String renders the class as letter plus accidentals.
func (c Class) String() string {
	acc := ""
	switch {
	case c.Alter >= 2:
		acc = strings.Repeat("#", c.Alter)
	case c.Alter == 1:
		acc = "#"
	case c.Alter == -1:
		acc = "b"
	case c.Alter <= -2:
		acc = strings.Repeat("b", -c.Alter)
	}

	return stepNames[c.Step%7] + acc
}

// Semitone returns the sounding height as a MIDI note number (C4 = 60).
func (p Pitch) Semitone() int {
	return (p.Octave+1)*12 + stepSemis[p.Step] + p.Alter
}

// DiatonicIndex returns the absolute staff position, 7 per octave (C4 = 28).
// Alterations do not move the staff position.
func (p Pitch) DiatonicIndex() int {
	return p.Octave*7 + p.Step
}

// PitchClass returns the spelled class of p (octave discarded).
func (p Pitch) PitchClass() Class {
	return Class{Step: p.Step, Alter: p.Alter}
}

// Compare orders pitches by sounding height, ties broken by staff position
// (so Gb4 < F#4 is false: equal sound, F#4 sits lower on the staff).
// Returns -1, 0, or +1.
func Compare(a, b Pitch) int {
	if d := a.Semitone() - b.Semitone(); d != 0 {
		return sign(d)
	}

	return sign(a.DiatonicIndex() - b.DiatonicIndex())
}

// SamePitchClass reports whether a and b have identical spelling
// (step and alteration), in any octave.
func SamePitchClass(a, b Pitch) bool {
	return a.Step == b.Step && a.Alter == b.Alter
}

// SameClass reports whether p belongs to spelled class c.
func (p Pitch) SameClass(c Class) bool {
	return p.Step == c.Step && p.Alter == c.Alter
}

// Enharmonic reports whether a and b sound as the same chromatic class in
// any octave (F#4 and Gb3 are enharmonic).
func Enharmonic(a, b Pitch) bool {
	return mod12(a.Semitone()) == mod12(b.Semitone())
}

// Transpose shifts p by the given number of diatonic steps and semitones,
// keeping the spelling consistent: the step count decides the letter and
// octave, and the alteration absorbs whatever the semitone count requires.
func (p Pitch) Transpose(iv Interval) Pitch {
	di := p.DiatonicIndex() + iv.Steps
	step := ((di % 7) + 7) % 7
	oct := (di - step) / 7
	natural := (oct+1)*12 + stepSemis[step]

	return Pitch{Step: step, Alter: p.Semitone() + iv.Semitones - natural, Octave: oct}
}

// Between returns the interval from a up to b (negative components if b
// lies below a).
func Between(a, b Pitch) Interval {
	return Interval{
		Steps:     b.DiatonicIndex() - a.DiatonicIndex(),
		Semitones: b.Semitone() - a.Semitone(),
	}
}

func sign(d int) int {
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	default:
		return 0
	}
}

func mod12(x int) int {
	return ((x % 12) + 12) % 12
}
