package pitch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cantus/pitch"
)

func TestParse_Basics(t *testing.T) {
	p, err := pitch.Parse("C4")
	require.NoError(t, err)
	assert.Equal(t, pitch.Pitch{Step: pitch.StepC, Octave: 4}, p)
	assert.Equal(t, 60, p.Semitone())
	assert.Equal(t, 28, p.DiatonicIndex())

	p, err = pitch.Parse("F#3")
	require.NoError(t, err)
	assert.Equal(t, pitch.Pitch{Step: pitch.StepF, Alter: 1, Octave: 3}, p)
	assert.Equal(t, 54, p.Semitone())

	p, err = pitch.Parse("Bb2")
	require.NoError(t, err)
	assert.Equal(t, pitch.Pitch{Step: pitch.StepB, Alter: -1, Octave: 2}, p)

	p, err = pitch.Parse("Cx5")
	require.NoError(t, err)
	assert.Equal(t, 2, p.Alter)

	p, err = pitch.Parse("A-1")
	require.NoError(t, err)
	assert.Equal(t, -1, p.Octave)
}

func TestParse_Malformed(t *testing.T) {
	for _, s := range []string{"", "C", "H4", "C#", "4C", "C#x4"} {
		_, err := pitch.Parse(s)
		assert.ErrorIs(t, err, pitch.ErrBadPitch, "input %q", s)
	}
}

func TestString_RoundTrip(t *testing.T) {
	for _, s := range []string{"C4", "F#3", "Bb2", "G5", "Ebb3", "D##6"} {
		p, err := pitch.Parse(s)
		require.NoError(t, err)
		assert.Equal(t, s, p.String())
	}
}

func TestNew_BadStep(t *testing.T) {
	_, err := pitch.New(7, 0, 4)
	assert.ErrorIs(t, err, pitch.ErrBadStep)
}

func TestCompare(t *testing.T) {
	c4 := pitch.MustParse("C4")
	d4 := pitch.MustParse("D4")
	assert.Equal(t, -1, pitch.Compare(c4, d4))
	assert.Equal(t, 1, pitch.Compare(d4, c4))
	assert.Equal(t, 0, pitch.Compare(c4, c4))

	// Enharmonic pair: equal sound, staff position breaks the tie.
	fs4 := pitch.MustParse("F#4")
	gb4 := pitch.MustParse("Gb4")
	assert.Equal(t, -1, pitch.Compare(fs4, gb4))
	assert.True(t, pitch.Enharmonic(fs4, gb4))
	assert.False(t, pitch.SamePitchClass(fs4, gb4))
}

func TestTranspose_KeepsSpelling(t *testing.T) {
	c4 := pitch.MustParse("C4")

	// Up a major third: 2 steps, 4 semitones ⇒ E4.
	assert.Equal(t, pitch.MustParse("E4"), c4.Transpose(pitch.Interval{Steps: 2, Semitones: 4}))

	// Up a minor third: 2 steps, 3 semitones ⇒ Eb4, not D#4.
	assert.Equal(t, pitch.MustParse("Eb4"), c4.Transpose(pitch.Interval{Steps: 2, Semitones: 3}))

	// Down a perfect fifth crosses the octave line.
	assert.Equal(t, pitch.MustParse("F3"), c4.Transpose(pitch.Interval{Steps: -4, Semitones: -7}))
}

func TestBetween(t *testing.T) {
	iv := pitch.Between(pitch.MustParse("C4"), pitch.MustParse("G4"))
	assert.Equal(t, pitch.Interval{Steps: 4, Semitones: 7}, iv)

	down := pitch.Between(pitch.MustParse("G4"), pitch.MustParse("C4"))
	assert.Equal(t, pitch.Interval{Steps: -4, Semitones: -7}, down)
}
