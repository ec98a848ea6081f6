package voicing

import (
	"errors"

	"github.com/katalvlaran/cantus/pitch"
)

var (
	// ErrInvertedRange indicates a range whose low pitch sounds above its
	// high pitch.
	ErrInvertedRange = errors.New("voicing: range low is above range high")

	// ErrNoVoices indicates an empty voice list.
	ErrNoVoices = errors.New("voicing: voice list is empty")

	// ErrDuplicateVoice indicates two voices sharing a name; names are the
	// voice identity and must be unique.
	ErrDuplicateVoice = errors.New("voicing: duplicate voice name")
)

// Range is an inclusive [Low, High] pitch span.
type Range struct {
	Low  pitch.Pitch
	High pitch.Pitch
}

// Voice describes one part of the ensemble.
type Voice struct {
	// Name identifies the voice ("Soprano", "Violin II"). Unique per list.
	Name string

	// Written is the notated range of the voice.
	Written Range

	// Transposition shifts the written range to the sounding range
	// (zero for non-transposing voices).
	Transposition pitch.Interval

	// MaxSeparation caps the interval, in semitones, between this voice and
	// the voice immediately above it in the fixed order. Zero means no cap.
	MaxSeparation int

	// Clef is the voice's default clef, carried only for downstream
	// rendering; the engine never reads it.
	Clef string
}
