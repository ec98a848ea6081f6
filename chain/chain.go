package chain

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/cantus/figure"
	"github.com/katalvlaran/cantus/rules"
	"github.com/katalvlaran/cantus/scale"
	"github.com/katalvlaran/cantus/voicing"
)

// Build realizes an annotated bass line: it validates the input, parses
// every figure, generates each segment's possibilities, links adjacent
// segments with legal movements, and prunes the result backward. The
// returned chain is query-ready and immutable.
//
// The phases run strictly in order; the two generation passes are
// parallelized across segments/pairs when WithWorkers(n>1) is set, with no
// shared mutable state. Pruning is always a single sequential backward
// sweep.
//
// Errors: ErrInvalidInput (empty line, fewer than two voices, bad voice
// list, unknown mode), figure.ErrBadFigure (wrapped with position),
// ErrSegmentInfeasible, ErrSegmentCapExceeded, ErrChainInfeasible — each
// carrying enough context to name the bass note or figure responsible.
func Build(line []BassNote, voices []voicing.Voice, cfg rules.Config, opts ...Option) (*Chain, error) {
	// 1. Apply options.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.Workers < 1 {
		o.Workers = 1
	}

	// 2. Validate input before any segment exists.
	if len(line) == 0 {
		return nil, fmt.Errorf("chain: empty bass line: %w", ErrInvalidInput)
	}
	ordered, err := voicing.Order(voices)
	if err != nil {
		return nil, fmt.Errorf("chain: voices: %w", err)
	}
	if len(ordered) < 2 {
		return nil, fmt.Errorf("chain: need at least two voices, got %d: %w", len(ordered), ErrInvalidInput)
	}
	key, err := scale.New(o.Tonic, o.Mode)
	if err != nil {
		return nil, fmt.Errorf("chain: key: %w", err)
	}

	// 3. Parse every figure up front; a malformed figure rejects the whole
	//    request before any generation work runs.
	segs := make([]*Segment, len(line))
	for i, bn := range line {
		fig, ferr := figure.Parse(bn.Figure)
		if ferr != nil {
			return nil, fmt.Errorf("chain: segment %d (bass %s): %w", i, bn.Pitch, ferr)
		}
		segs[i] = &Segment{bass: bn.Pitch, fig: fig}
	}

	c := &Chain{voices: ordered, cfg: cfg, key: key, segs: segs}

	// 4. Phase one: per-segment possibility generation.
	if err = c.buildPossibilities(o); err != nil {
		return nil, err
	}

	// 5. Phase two: movement generation between adjacent segments.
	if err = c.buildMovements(o); err != nil {
		return nil, err
	}

	// 6. Phase three: the backward pruning sweep.
	if err = c.Prune(); err != nil {
		return nil, err
	}

	return c, nil
}

// buildPossibilities runs the generation pass. Each worker owns exactly one
// segment at a time; segments share nothing, so any worker count yields the
// same deterministic per-segment output.
func (c *Chain) buildPossibilities(o Options) error {
	g, ctx := errgroup.WithContext(o.Ctx)
	g.SetLimit(o.Workers)
	for i, seg := range c.segs {
		i, seg := i, seg
		g.Go(func() error {
			return seg.generate(ctx, c.key, c.voices, c.cfg, i)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	c.state = statePossibilities

	return nil
}

// buildMovements runs the linking pass over every adjacent segment pair.
// Requires both endpoints' possibilities to exist, hence the phase order.
func (c *Chain) buildMovements(o Options) error {
	g, ctx := errgroup.WithContext(o.Ctx)
	g.SetLimit(o.Workers)
	for i := 0; i < len(c.segs)-1; i++ {
		i := i
		g.Go(func() error {
			return c.linkSegments(ctx, i)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	c.state = stateMovements

	return nil
}

// Prune removes every possibility that cannot reach the final segment, and
// every adjacency entry referencing a removed possibility, in one backward
// sweep: a final-segment possibility always survives; an earlier one
// survives iff at least one of its movement targets survives. Survival
// depends only on later segments, never earlier ones.
//
// Deletion is compaction-with-reindexing over each segment's possibility
// arena, so surviving adjacency entries are remapped and never dangle.
// Pruning an already-pruned chain is a no-op sweep (idempotent).
//
// Returns ErrChainInfeasible if the sweep empties the first segment, and
// ErrChainNotReady if movements have not been built yet.
//
// Complexity: O(Σ possibilities + Σ adjacency entries).
func (c *Chain) Prune() error {
	if c.state < stateMovements {
		return fmt.Errorf("chain: movements not built: %w", ErrChainNotReady)
	}

	n := len(c.segs)
	if n == 1 {
		// A single segment has no movements to trim; generation already
		// guaranteed it is non-empty.
		c.state = statePruned

		return nil
	}

	// 1. The final segment survives wholesale; identity remap.
	remap := make([]int, len(c.segs[n-1].poss))
	for i := range remap {
		remap[i] = i
	}

	// 2. Sweep backward, compacting each segment against its successor.
	for i := n - 2; i >= 0; i-- {
		seg := c.segs[i]
		newPoss := make([]Possibility, 0, len(seg.poss))
		newNext := make([][]int, 0, len(seg.poss))
		thisRemap := make([]int, len(seg.poss))
		for pi := range seg.poss {
			thisRemap[pi] = -1
			var kept []int
			for _, t := range seg.next[pi] {
				if remap[t] >= 0 {
					kept = append(kept, remap[t])
				}
			}
			if len(kept) == 0 {
				seg.stats.Pruned++
				continue
			}
			thisRemap[pi] = len(newPoss)
			newPoss = append(newPoss, seg.poss[pi])
			newNext = append(newNext, kept)
		}
		seg.poss = newPoss
		seg.next = newNext
		remap = thisRemap
	}

	// 3. An empty first segment means joint infeasibility.
	if len(c.segs[0].poss) == 0 {
		first, last := c.segs[0], c.segs[n-1]

		return fmt.Errorf("chain: from segment 0 (bass %s, figure %q) to segment %d (bass %s, figure %q): %w",
			first.bass, first.fig.Text, n-1, last.bass, last.fig.Text, ErrChainInfeasible)
	}
	c.state = statePruned

	return nil
}
