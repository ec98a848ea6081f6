// Package cantus realizes figured bass: give it an annotated bass line and
// an ensemble of voice ranges, and it computes every n-part realization
// that satisfies classical voice-leading rules — exactly, exhaustively,
// and deterministically.
//
// 🚀 What is cantus?
//
//	A library that turns a figured bass line into a queryable search
//	space of realizations:
//		• Pitch primitives: spelled pitches, classes, and intervals
//		• Figures: numeral parsing, shape completion, resolution tags
//		• Keys: diatonic spelling of figure degrees in any supported mode
//		• Voices: ranges, transpositions, and fixed high-to-low ordering
//		• Rules: a YAML-loadable snapshot of voice-leading permissions
//		• Chains: generation, movement linking, pruning, and the query
//		  surface — exact counting, lazy enumeration, seeded sampling
//
// ✨ Why choose cantus?
//
//   - Exact – counts and enumerates the full space, never a heuristic subset
//   - Deterministic – identical inputs give identical chains at any
//     worker count, and sampling is reproducible by seed
//   - Loud failures – infeasible segments and dead-end chains return
//     errors naming the bass note and figure responsible
//   - Pure Go API – build a chain once, then query it concurrently
//
// Everything is organized under six subpackages:
//
//	pitch/   — spelled pitches, pitch classes, intervals
//	figure/  — figured-bass numeral parsing and completion
//	scale/   — keys, modes, and degree spelling
//	voicing/ — voice ranges, transpositions, ensemble ordering
//	rules/   — the voice-leading rule snapshot and its YAML codec
//	chain/   — the realization engine and its queries
//
// Quick start:
//
//	line := []chain.BassNote{
//		{Pitch: pitch.MustParse("C3")},
//		{Pitch: pitch.MustParse("G3"), Figure: "7"},
//		{Pitch: pitch.MustParse("C3")},
//	}
//	c, err := chain.Build(line, voicing.SATB(), rules.Default())
//	if err != nil {
//		// the error names the offending segment
//	}
//	n, _ := c.Count()     // exact number of realizations
//	p, _ := c.Sample(nil) // one seeded random realization
//	vs, _ := c.Possibilities(p)
//
// See examples/ for complete runnable programs.
package cantus
