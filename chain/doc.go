// Package chain is the figured-bass realization engine: it turns an
// annotated bass line into the directed acyclic graph of every legal
// harmonization and answers counting, enumeration, and sampling queries
// over that graph without ever materializing the full progression space.
//
// Model:
//
//	bass line  →  one Segment per bass note
//	Segment    →  its legal chord voicings (Possibilities), stable indices
//	adjacency  →  which voicing of segment i may move to which of segment i+1
//
// Build drives the whole pipeline in strict phases: per-segment possibility
// generation (backtracking over voices in fixed high-to-low order), pairwise
// movement generation between adjacent segments, and a single backward
// pruning sweep that deletes every voicing with no path to the final
// segment. The pruned chain is immutable and safe for concurrent queries.
//
// Queries:
//
//   - Count        — exact number of end-to-end progressions, by backward
//     dynamic programming (never by enumeration).
//   - Enumerate    — lazy forward expansion of every progression.
//   - Sample       — one random walk, uniform among successors at each step.
//     Note: this is deliberately NOT uniform over progressions; the draw is
//     biased toward regions with high local branching. See Sample.
//
// Failure is loud: a segment with no legal voicing, a chain with no
// surviving path, and a query on an unbuilt chain are all distinct,
// descriptive errors — never an empty result.
//
// Complexity: generation is exponential in voices per segment (bounded by
// ranges and spacing; cap with rules.WithSegmentCap); movements are
// O(|A|·|B|·V²) per adjacent pair; pruning, counting and sampling are linear
// in segments × surviving possibilities × branching.
package chain
