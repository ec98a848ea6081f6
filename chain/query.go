package chain

import (
	"fmt"
	"math/big"
	"math/rand"
)

// ready guards every query against an unbuilt or partially built chain.
func (c *Chain) ready() error {
	if c.state != statePruned {
		return ErrChainNotReady
	}

	return nil
}

// queryable additionally requires at least two segments: a progression is a
// motion, and a single chord has none.
func (c *Chain) queryable() error {
	if err := c.ready(); err != nil {
		return err
	}
	if len(c.segs) < 2 {
		return fmt.Errorf("chain: %d segment(s): %w", len(c.segs), ErrChainTooShort)
	}

	return nil
}

// Count returns the exact number of distinct end-to-end progressions
// through the pruned chain, by dynamic programming from the last segment
// backward: every final possibility counts 1; an earlier possibility counts
// the sum over its movement targets; the chain's total is the sum over the
// first segment.
//
// The result is exact at any magnitude (big.Int) and the work scales with
// segments × possibilities × branching — never with the progression count
// itself.
func (c *Chain) Count() (*big.Int, error) {
	if err := c.queryable(); err != nil {
		return nil, err
	}

	n := len(c.segs)
	counts := make([]*big.Int, len(c.segs[n-1].poss))
	for i := range counts {
		counts[i] = big.NewInt(1)
	}

	for i := n - 2; i >= 0; i-- {
		seg := c.segs[i]
		cur := make([]*big.Int, len(seg.poss))
		for pi := range seg.poss {
			sum := new(big.Int)
			for _, t := range seg.next[pi] {
				sum.Add(sum, counts[t])
			}
			cur[pi] = sum
		}
		counts = cur
	}

	total := new(big.Int)
	for _, v := range counts {
		total.Add(total, v)
	}

	return total, nil
}

// Enumerate walks every progression in deterministic order by forward
// expansion from the first segment, invoking fn for each complete
// progression. fn receives its own index slice. Returning an error from fn
// aborts the walk and Enumerate returns that error. The walk is lazy —
// nothing is materialized beyond the current path — and restartable by
// calling Enumerate again.
func (c *Chain) Enumerate(fn func(Progression) error) error {
	if err := c.queryable(); err != nil {
		return err
	}

	idx := make([]int, len(c.segs))
	var expand func(depth int) error
	expand = func(depth int) error {
		if depth == len(c.segs) {
			return fn(Progression{Indices: append([]int(nil), idx...)})
		}
		if depth == 0 {
			for pi := range c.segs[0].poss {
				idx[0] = pi
				if err := expand(1); err != nil {
					return err
				}
			}

			return nil
		}
		for _, t := range c.segs[depth-1].next[idx[depth-1]] {
			idx[depth] = t
			if err := expand(depth + 1); err != nil {
				return err
			}
		}

		return nil
	}

	return expand(0)
}

// EnumerateAll collects every progression into a slice. The slice length
// always equals Count(); prefer Enumerate for large chains.
func (c *Chain) EnumerateAll() ([]Progression, error) {
	var out []Progression
	err := c.Enumerate(func(p Progression) error {
		out = append(out, p)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Sample returns one random progression: a uniformly chosen possibility in
// the first segment, then at each step a uniform choice among the current
// possibility's movement targets. Pruning guarantees every step has at
// least one target.
//
// The draw is intentionally NOT uniform over progressions: a progression's
// probability is the product of 1/branching at each of its steps, so paths
// through sparse regions are over-represented relative to 1/Count(). This
// mirrors the historical sampler's contract; use Enumerate when exact
// distribution matters.
//
// A nil rng uses the package's default deterministic stream (NewRand(0)).
func (c *Chain) Sample(rng *rand.Rand) (Progression, error) {
	if err := c.queryable(); err != nil {
		return Progression{}, err
	}
	if rng == nil {
		rng = NewRand(0)
	}

	idx := make([]int, len(c.segs))
	idx[0] = rng.Intn(len(c.segs[0].poss))
	for i := 1; i < len(c.segs); i++ {
		targets := c.segs[i-1].next[idx[i-1]]
		idx[i] = targets[rng.Intn(len(targets))]
	}

	return Progression{Indices: idx}, nil
}

// Possibilities resolves an index progression to its concrete voicings,
// one per segment. Returns ErrBadProgression if the length or any index
// does not fit the chain.
func (c *Chain) Possibilities(p Progression) ([]Possibility, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	if len(p.Indices) != len(c.segs) {
		return nil, fmt.Errorf("chain: progression length %d, chain length %d: %w",
			len(p.Indices), len(c.segs), ErrBadProgression)
	}

	out := make([]Possibility, len(c.segs))
	for i, pi := range p.Indices {
		if pi < 0 || pi >= len(c.segs[i].poss) {
			return nil, fmt.Errorf("chain: segment %d index %d out of range: %w", i, pi, ErrBadProgression)
		}
		out[i] = c.segs[i].Possibility(pi)
	}

	return out, nil
}
