// Package pitch provides spelled-pitch and interval arithmetic for the
// cantus realization engine.
//
// A Pitch is a spelled note: a diatonic step (C..B), a chromatic alteration
// in semitones, and an octave in scientific pitch notation (C4 = middle C).
// Spelling is preserved everywhere: F#4 and Gb4 sound the same but are
// distinct values, because voice-leading rules care about spelling while
// range checks care about sound.
//
// Two coordinates describe every pitch:
//
//   - Semitone()      — the sounding height (MIDI number; C4 = 60)
//   - DiatonicIndex() — the staff position (7 per octave; C4 = 28)
//
// An Interval is the pair of deltas between two pitches in those same
// coordinates, which makes interval classification (perfect fifth, octave,
// step) a matter of integer arithmetic.
//
// All types are immutable values; all functions are pure.
package pitch
