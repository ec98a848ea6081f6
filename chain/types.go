package chain

import (
	"context"
	"errors"
	"strings"

	"github.com/katalvlaran/cantus/figure"
	"github.com/katalvlaran/cantus/pitch"
	"github.com/katalvlaran/cantus/rules"
	"github.com/katalvlaran/cantus/scale"
	"github.com/katalvlaran/cantus/voicing"
)

var (
	// ErrInvalidInput indicates a request rejected before any segment was
	// built: empty bass line, too few voices, or an unknown key.
	ErrInvalidInput = errors.New("chain: invalid input")

	// ErrSegmentInfeasible indicates a segment whose local constraints admit
	// zero voicings; the wrapped message names the segment position.
	ErrSegmentInfeasible = errors.New("chain: segment admits no possibilities")

	// ErrSegmentCapExceeded indicates a segment that hit the configured
	// possibility cap; generation stops rather than truncating silently.
	ErrSegmentCapExceeded = errors.New("chain: segment possibility cap exceeded")

	// ErrChainInfeasible indicates that pruning emptied the first segment:
	// every segment is locally satisfiable but no progression survives
	// end to end.
	ErrChainInfeasible = errors.New("chain: no progression survives pruning")

	// ErrChainNotReady indicates a query on a chain that has not completed
	// building and pruning.
	ErrChainNotReady = errors.New("chain: chain is not built and pruned")

	// ErrChainTooShort indicates a progression query on a chain of fewer
	// than two segments.
	ErrChainTooShort = errors.New("chain: need at least two segments for progression queries")

	// ErrBadProgression indicates a progression whose length or indices do
	// not fit the chain.
	ErrBadProgression = errors.New("chain: progression does not fit chain")
)

// BassNote is one input position: a bass pitch plus its figure string
// (empty for a plain root-position triad).
type BassNote struct {
	Pitch  pitch.Pitch
	Figure string
}

// Possibility is one complete voicing: exactly one sounding pitch per
// voice, in the chain's fixed high-to-low voice order, bass last.
// Possibilities are never mutated after generation.
type Possibility []pitch.Pitch

// Top returns the highest voice's pitch.
func (p Possibility) Top() pitch.Pitch { return p[0] }

// Bass returns the bass voice's pitch.
func (p Possibility) Bass() pitch.Pitch { return p[len(p)-1] }

// String renders the voicing top-down, e.g. "C5 E4 G3 C3".
func (p Possibility) String() string {
	parts := make([]string, len(p))
	for i, q := range p {
		parts[i] = q.String()
	}

	return strings.Join(parts, " ")
}

// Progression is one end-to-end path through the chain: the possibility
// index chosen at each segment.
type Progression struct {
	Indices []int
}

// Stats reports per-segment generation diagnostics.
type Stats struct {
	// Generated counts possibilities produced by local generation.
	Generated int
	// Pruned counts possibilities later removed by the backward sweep.
	Pruned int
}

// Segment is the per-bass-note unit of the search: the bass pitch, the
// parsed figure, the possibility arena (append-only, 0-based stable
// indices), and — except on the final segment — the sparse adjacency from
// each possibility to the compatible possibilities of the next segment.
type Segment struct {
	bass  pitch.Pitch
	fig   figure.Figure
	poss  []Possibility
	next  [][]int
	stats Stats
}

// Bass returns the segment's bass pitch.
func (s *Segment) Bass() pitch.Pitch { return s.bass }

// Figure returns the segment's parsed figure.
func (s *Segment) Figure() figure.Figure { return s.fig }

// Size returns the number of (surviving) possibilities.
func (s *Segment) Size() int { return len(s.poss) }

// Possibility returns a copy of possibility i.
func (s *Segment) Possibility(i int) Possibility {
	return append(Possibility(nil), s.poss[i]...)
}

// Next returns a copy of possibility i's outgoing adjacency; nil on the
// final segment.
func (s *Segment) Next(i int) []int {
	if s.next == nil {
		return nil
	}

	return append([]int(nil), s.next[i]...)
}

// Stats returns the segment's generation diagnostics.
func (s *Segment) Stats() Stats { return s.stats }

// buildState tracks the chain's strict build phases.
type buildState int

const (
	stateUnbuilt buildState = iota
	statePossibilities
	stateMovements
	statePruned
)

// Chain owns the ordered segments, the voice order, the rule snapshot, and
// the key. After Build returns it is pruned, read-only, and safe for
// concurrent queries.
type Chain struct {
	voices []voicing.Voice
	cfg    rules.Config
	key    scale.Scale
	segs   []*Segment
	state  buildState
}

// Len returns the number of segments.
func (c *Chain) Len() int { return len(c.segs) }

// Segment returns segment i.
func (c *Chain) Segment(i int) *Segment { return c.segs[i] }

// Voices returns a copy of the fixed high-to-low voice order.
func (c *Chain) Voices() []voicing.Voice {
	return append([]voicing.Voice(nil), c.voices...)
}

// Key returns the chain's key.
func (c *Chain) Key() scale.Scale { return c.key }

// Rules returns the rule snapshot the chain was built with.
func (c *Chain) Rules() rules.Config { return c.cfg }

// Option configures optional behavior of Build.
type Option func(*Options)

// Options holds configurable parameters for Build.
type Options struct {
	// Tonic and Mode fix the key the figures are read in.
	// Default: C major.
	Tonic pitch.Class
	Mode  scale.Mode

	// Workers bounds the parallelism of the generation passes (possibility
	// generation across segments, movement generation across adjacent
	// pairs). Pruning is always sequential. Default 1.
	Workers int

	// Ctx allows cancellation of the generation passes; defaults to
	// context.Background().
	Ctx context.Context
}

// DefaultOptions returns C major, single worker, background context.
func DefaultOptions() Options {
	return Options{
		Tonic:   pitch.Class{Step: pitch.StepC},
		Mode:    scale.Major,
		Workers: 1,
		Ctx:     context.Background(),
	}
}

// WithKey sets the key the figures are interpreted in.
func WithKey(tonic pitch.Class, mode scale.Mode) Option {
	return func(o *Options) {
		o.Tonic = tonic
		o.Mode = mode
	}
}

// WithWorkers bounds the parallelism of the generation passes.
// Values below 1 are treated as 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithContext allows cancelling Build mid-generation.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
