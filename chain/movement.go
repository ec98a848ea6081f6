package chain

import (
	"context"

	"github.com/katalvlaran/cantus/figure"
	"github.com/katalvlaran/cantus/pitch"
	"github.com/katalvlaran/cantus/rules"
)

// linkSegments fills segment i's sparse adjacency: for every possibility
// pair (a ∈ segs[i], b ∈ segs[i+1]), record b's index under a iff the motion
// a→b is legal. The check is pairwise and never consults any other segment,
// which keeps the pass independent per adjacent pair.
//
// Complexity: O(|A|·|B|·V²) per pair, V = number of voices.
func (c *Chain) linkSegments(ctx context.Context, i int) error {
	a, b := c.segs[i], c.segs[i+1]
	a.next = make([][]int, len(a.poss))
	for ai, pa := range a.poss {
		if err := ctx.Err(); err != nil {
			return err
		}
		for bi, pb := range b.poss {
			if c.allowedMovement(pa, pb, a) {
				a.next[ai] = append(a.next[ai], bi)
			}
		}
	}

	return nil
}

// allowedMovement reports whether moving every voice from its pitch in pa to
// its pitch in pb satisfies the rule snapshot and pa's figure obligations.
func (c *Chain) allowedMovement(pa, pb Possibility, from *Segment) bool {
	nv := len(c.voices)

	// 1. Melodic leap cap, upper voices (the bass line is the caller's).
	if c.cfg.MaxLeap > 0 {
		for vi := 0; vi < nv-1; vi++ {
			iv := pitch.Between(pa[vi], pb[vi]).Abs()
			if iv.Semitones > c.cfg.MaxLeap {
				return false
			}
		}
	}

	// 2. Voice overlap between adjacent voices across the motion.
	if !c.cfg.AllowVoiceOverlap {
		for vi := 0; vi < nv-1; vi++ {
			if pitch.Compare(pb[vi], pa[vi+1]) < 0 {
				return false
			}
			if pitch.Compare(pb[vi+1], pa[vi]) > 0 {
				return false
			}
		}
	}

	// 3. Parallel perfect consonances, every voice pair.
	for hi := 0; hi < nv-1; hi++ {
		for lo := hi + 1; lo < nv; lo++ {
			if c.parallelPerfect(pa[hi], pa[lo], pb[hi], pb[lo]) {
				return false
			}
		}
	}

	// 4. Hidden (direct) fifths/octaves between the outer voices.
	if !c.cfg.AllowHiddenPerfects && hiddenPerfect(pa[0], pa[nv-1], pb[0], pb[nv-1]) {
		return false
	}

	// 5. Resolution obligation carried by the earlier segment's figure.
	return c.resolutionHonored(pa, pb, from)
}

// parallelPerfect reports a forbidden parallel: both voices move, in the
// same direction, and the pair sounds the same perfect consonance class
// before and after.
func (c *Chain) parallelPerfect(aHi, aLo, bHi, bLo pitch.Pitch) bool {
	mHi := pitch.Between(aHi, bHi)
	mLo := pitch.Between(aLo, bLo)
	if mHi.Direction() == 0 || mHi.Direction() != mLo.Direction() {
		return false
	}

	before := pitch.Between(aLo, aHi)
	after := pitch.Between(bLo, bHi)
	switch {
	case before.IsPerfectUnison() && after.IsPerfectUnison():
		return !c.cfg.AllowParallelUnisons
	case before.IsPerfectFifth() && after.IsPerfectFifth():
		return !c.cfg.AllowParallelFifths
	case before.IsPerfectOctave() && after.IsPerfectOctave():
		return !c.cfg.AllowParallelOctaves
	default:
		return false
	}
}

// hiddenPerfect reports similar (not parallel) motion of the outer voices
// into a perfect fifth or octave.
func hiddenPerfect(aTop, aBot, bTop, bBot pitch.Pitch) bool {
	mTop := pitch.Between(aTop, bTop)
	mBot := pitch.Between(aBot, bBot)
	if mTop.Direction() == 0 || mTop.Direction() != mBot.Direction() {
		return false
	}

	after := pitch.Between(bBot, bTop)
	if !after.IsPerfectFifth() && !after.IsPerfectOctave() {
		return false
	}

	// Same perfect class before and after is the parallel case, which the
	// parallel rule already judged.
	before := pitch.Between(aBot, aTop)
	sameClass := (before.IsPerfectFifth() && after.IsPerfectFifth()) ||
		(before.IsPerfectOctave() && after.IsPerfectOctave())

	return !sameClass
}

// resolutionHonored dispatches on the closed resolution variant of the
// earlier segment's figure. A figure without an obligation constrains
// nothing. Obligations bind the upper voices only; the bass motion is fixed
// by the input line.
func (c *Chain) resolutionHonored(pa, pb Possibility, from *Segment) bool {
	switch from.fig.Resolution {
	case figure.ResolutionNone:
		return true

	case figure.ResolutionFourThree:
		// The voice sounding the fourth above the bass resolves down by
		// step (onto the third of the next harmony).
		off, ok := from.fig.Offset(4)
		if !ok {
			return true
		}
		cls := c.key.ClassForOffset(from.bass, off)

		return eachVoiceOnClass(pa, pb, cls, func(motion pitch.Interval) bool {
			return motion.IsStep() && motion.Direction() < 0
		})

	case figure.ResolutionDimSixFive:
		// The diminished fifth falls by step; the sixth follows the
		// configured doubling mode.
		if off, ok := from.fig.Offset(5); ok {
			cls := c.key.ClassForOffset(from.bass, off)
			if !eachVoiceOnClass(pa, pb, cls, func(motion pitch.Interval) bool {
				return motion.IsStep() && motion.Direction() < 0
			}) {
				return false
			}
		}
		off, ok := from.fig.Offset(6)
		if !ok {
			return true
		}
		cls := c.key.ClassForOffset(from.bass, off)
		if c.cfg.Dim65Doubling == rules.DoublingStandard {
			return eachVoiceOnClass(pa, pb, cls, func(motion pitch.Interval) bool {
				return motion.IsStep() && motion.Direction() < 0
			})
		}

		return eachVoiceOnClass(pa, pb, cls, func(motion pitch.Interval) bool {
			return motion.IsPerfectUnison() || (motion.IsStep() && motion.Direction() > 0)
		})

	default:
		return true
	}
}

// eachVoiceOnClass applies ok to the motion of every upper voice of pa that
// sounds the given class, using the per-voice displacement into pb.
// Returns false as soon as one such voice fails.
func eachVoiceOnClass(pa, pb Possibility, cls pitch.Class, ok func(pitch.Interval) bool) bool {
	for vi := 0; vi < len(pa)-1; vi++ {
		if !pa[vi].SameClass(cls) {
			continue
		}
		if !ok(pitch.Between(pa[vi], pb[vi])) {
			return false
		}
	}

	return true
}
