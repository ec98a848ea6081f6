// Package voicing models the ensemble a realization is written for: named
// voices with written pitch ranges, optional transpositions, spacing limits,
// and a fixed high-to-low order.
//
// The order is established exactly once, by Order, before any realization
// work begins, and is immutable for the life of a request: every possibility
// the engine produces lists its pitches in this voice order, with the bass
// voice last. Ordering early means the generation and movement rules can
// talk about "the voice above" by plain index arithmetic.
package voicing
