// Package scale answers the engine's key-membership questions: which spelled
// pitch class sits on a given scale degree, and which pitches inside a range
// realize the chord members a figure requires above a bass note.
//
// A Scale is a tonic class plus a mode; everything else is derived. Figure
// accidentals are applied on top of the diatonic degree (a "#6" raises the
// diatonic sixth by a semitone, an "n" pins it to its natural letter), so
// the same figure string means the right thing in every key.
package scale
