package chain

import (
	"context"
	"fmt"

	"github.com/katalvlaran/cantus/figure"
	"github.com/katalvlaran/cantus/pitch"
	"github.com/katalvlaran/cantus/rules"
	"github.com/katalvlaran/cantus/scale"
	"github.com/katalvlaran/cantus/voicing"
)

// member is one distinct required chord tone of a segment: its spelled
// class, the smallest figure numeral that names it, and whether the figure
// marked it with an explicit accidental (a tendency tone).
type member struct {
	number  int
	class   pitch.Class
	altered bool
}

// generator holds the backtracking state for one segment's possibility
// generation. One generator per segment; nothing is shared across segments,
// which is what makes the generation pass embarrassingly parallel.
type generator struct {
	seg    *Segment
	pos    int // segment position, for error context
	voices []voicing.Voice
	cfg    rules.Config

	members  []member
	memberOf map[pitch.Class]*member
	cands    [][]pitch.Pitch // per upper voice, ascending

	assign []pitch.Pitch       // current partial voicing, bass pre-pinned
	counts map[pitch.Class]int // occurrences per class in assign
	unseen int                 // required classes not yet covered

	steps int // sparse cancellation checks counter
}

// generate fills seg.poss with every voicing satisfying the segment's local
// constraints, in deterministic lexicographic order over the fixed voice
// order and ascending candidate lists.
//
// Returns ErrSegmentInfeasible (wrapped with position, bass, and figure) if
// no voicing exists, and ErrSegmentCapExceeded if the configured cap is hit.
func (s *Segment) generate(ctx context.Context, key scale.Scale, voices []voicing.Voice, cfg rules.Config, pos int) error {
	gen := &generator{
		seg:      s,
		pos:      pos,
		voices:   voices,
		cfg:      cfg,
		memberOf: make(map[pitch.Class]*member),
		counts:   make(map[pitch.Class]int),
		assign:   make(Possibility, len(voices)),
	}

	// 1. Resolve the figure's required chord tones to spelled classes. The
	//    bass's own class is always a chord member: when the figure writes no
	//    root numeral, an implied octave is appended (pinned to the bass's
	//    spelling, not the diatonic degree) so upper voices may double the
	//    bass. The bass itself satisfies its coverage below.
	offsets := s.fig.Offsets
	if !hasRootOffset(offsets) {
		root := figure.Offset{Number: 8}
		root.Alter = s.bass.Alter - key.ClassForOffset(s.bass, root).Alter
		offsets = append(append([]figure.Offset(nil), offsets...), root)
	}
	for _, off := range offsets {
		cls := key.ClassForOffset(s.bass, off)
		if have, ok := gen.memberOf[cls]; ok {
			have.altered = have.altered || (off.Explicit && off.Altered())
			continue
		}
		gen.members = append(gen.members, member{
			number:  off.Number,
			class:   cls,
			altered: off.Explicit && off.Altered(),
		})
	}
	for i := range gen.members {
		gen.memberOf[gen.members[i].class] = &gen.members[i]
	}
	gen.unseen = len(gen.members)

	// 2. Candidate pitches per upper voice: range-filtered chord tones.
	gen.cands = make([][]pitch.Pitch, len(voices)-1)
	for vi := 0; vi < len(voices)-1; vi++ {
		gen.cands[vi] = key.PitchesForDegrees(s.bass, offsets, voices[vi].Sounding())
	}

	// 3. Pin the bass and account for any chord tone it covers itself.
	bassVoice := len(voices) - 1
	gen.assign[bassVoice] = s.bass
	gen.counts[s.bass.PitchClass()] = 1
	if _, required := gen.memberOf[s.bass.PitchClass()]; required {
		gen.unseen--
	}

	// 4. Backtracking search over upper voices in fixed high-to-low order.
	if err := gen.search(ctx, 0); err != nil {
		return err
	}

	s.stats.Generated = len(s.poss)
	if len(s.poss) == 0 {
		return fmt.Errorf("chain: segment %d (bass %s, figure %q): %w",
			pos, s.bass, s.fig.Text, ErrSegmentInfeasible)
	}

	return nil
}

// search assigns voice vi and recurses. Partial assignments are pruned as
// soon as a spacing, crossing, doubling, or coverage constraint fails —
// never generated in full and filtered afterward.
func (g *generator) search(ctx context.Context, vi int) error {
	// Leaf: all upper voices assigned; coverage already guaranteed by the
	// bound below, so record the voicing.
	if vi == len(g.voices)-1 {
		if g.cfg.SegmentCap > 0 && len(g.seg.poss) >= g.cfg.SegmentCap {
			return fmt.Errorf("chain: segment %d (bass %s, figure %q): cap %d: %w",
				g.pos, g.seg.bass, g.seg.fig.Text, g.cfg.SegmentCap, ErrSegmentCapExceeded)
		}
		g.seg.poss = append(g.seg.poss, append(Possibility(nil), g.assign...))

		return nil
	}

	lowest := vi == len(g.voices)-2 // the upper voice adjacent to the bass

	for _, p := range g.cands[vi] {
		// Rare cancellation check, off the hot path.
		g.steps++
		if g.steps&1023 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		// 1. Crossing: stay at or below the voice above.
		if vi > 0 && !g.cfg.AllowVoiceCrossing && pitch.Compare(p, g.assign[vi-1]) > 0 {
			continue
		}

		// 2. Crossing against the pinned bass.
		if lowest && !g.cfg.AllowVoiceCrossing && pitch.Compare(p, g.seg.bass) < 0 {
			continue
		}

		// 3. Spacing to the voice above (this voice's own cap).
		if vi > 0 && g.voices[vi].MaxSeparation > 0 &&
			g.assign[vi-1].Semitone()-p.Semitone() > g.voices[vi].MaxSeparation {
			continue
		}

		// 4. Spacing between the lowest upper voice and the bass
		//    (the bass voice's cap).
		if lowest && g.voices[vi+1].MaxSeparation > 0 &&
			p.Semitone()-g.seg.bass.Semitone() > g.voices[vi+1].MaxSeparation {
			continue
		}

		// 5. Doubling restrictions, checked the moment a class recurs.
		cls := p.PitchClass()
		m := g.memberOf[cls]
		if g.counts[cls] >= 1 && m != nil {
			if m.altered && !g.cfg.AllowAlteredDoubling {
				continue
			}
			if len(g.cfg.DoublingOf) > 0 && !containsInt(g.cfg.DoublingOf, m.number) {
				continue
			}
		}

		// 6. Coverage bound: the remaining voices must still be able to
		//    supply every uncovered required class.
		covers := g.counts[cls] == 0 && m != nil
		unseenAfter := g.unseen
		if covers {
			unseenAfter--
		}
		if unseenAfter > len(g.voices)-2-vi {
			continue
		}

		// 7. Commit and recurse.
		g.assign[vi] = p
		g.counts[cls]++
		g.unseen = unseenAfter
		err := g.search(ctx, vi+1)
		g.counts[cls]--
		if covers {
			g.unseen++
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// hasRootOffset reports whether the figure already names the bass's own
// degree (a unison, octave, or double octave numeral).
func hasRootOffset(offsets []figure.Offset) bool {
	for _, o := range offsets {
		if o.Number%7 == 1 {
			return true
		}
	}

	return false
}

func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}

	return false
}
