package rules

import "errors"

var (
	// ErrBadRuleFile indicates a YAML rule file that failed to decode or
	// carried an invalid value.
	ErrBadRuleFile = errors.New("rules: malformed rule file")
)

// Doubling selects how a diminished six-five chord may double on resolution.
type Doubling int

const (
	// DoublingStandard requires the sixth above the bass to resolve
	// downward by step alongside the falling diminished fifth.
	DoublingStandard Doubling = iota

	// DoublingAlternate lets the sixth stay or rise by step instead,
	// doubling the root of the chord of resolution.
	DoublingAlternate
)

// String returns the doubling mode's name.
func (d Doubling) String() string {
	if d == DoublingAlternate {
		return "alternate"
	}

	return "standard"
}

// Config is one immutable rule snapshot. Construct via New, Default, or
// LoadYAML; Default is the strict historical rule set.
type Config struct {
	// AllowVoiceCrossing permits an upper voice to sound below the voice
	// under it within a single chord.
	AllowVoiceCrossing bool

	// AllowVoiceOverlap permits a voice to move past where its neighbor
	// just sounded between two chords.
	AllowVoiceOverlap bool

	// AllowParallelUnisons / Fifths / Octaves permit two voices to move in
	// parallel into the named perfect consonance.
	AllowParallelUnisons bool
	AllowParallelFifths  bool
	AllowParallelOctaves bool

	// AllowHiddenPerfects permits the outer voices to approach a perfect
	// fifth or octave in similar motion.
	AllowHiddenPerfects bool

	// AllowAlteredDoubling permits a chord member carrying an explicit
	// figure accidental (a tendency tone) to appear in more than one voice.
	AllowAlteredDoubling bool

	// MaxLeap caps each voice's melodic motion in semitones; 0 removes
	// the cap. Default 12 (an octave).
	MaxLeap int

	// DoublingOf, when non-empty, restricts which figure numerals may be
	// doubled within a chord. Empty means any unaltered member.
	DoublingOf []int

	// Dim65Doubling selects the diminished six-five resolution mode.
	Dim65Doubling Doubling

	// SegmentCap bounds the possibilities generated per segment; exceeding
	// it is a reported error, never a silent truncation. 0 means unbounded.
	SegmentCap int
}

// Option mutates a Config under construction.
type Option func(*Config)

// New returns the strict default configuration with opts applied.
func New(opts ...Option) Config {
	cfg := Default()
	for _, fn := range opts {
		fn(&cfg)
	}

	return cfg
}

// Default returns the strict historical rule set.
func Default() Config {
	return Config{MaxLeap: 12, Dim65Doubling: DoublingStandard}
}

// AllowVoiceCrossing relaxes the in-chord crossing prohibition.
func AllowVoiceCrossing() Option {
	return func(c *Config) { c.AllowVoiceCrossing = true }
}

// AllowVoiceOverlap relaxes the between-chord overlap prohibition.
func AllowVoiceOverlap() Option {
	return func(c *Config) { c.AllowVoiceOverlap = true }
}

// AllowParallelUnisons relaxes the parallel-unison prohibition.
func AllowParallelUnisons() Option {
	return func(c *Config) { c.AllowParallelUnisons = true }
}

// AllowParallelFifths relaxes the parallel-fifth prohibition.
func AllowParallelFifths() Option {
	return func(c *Config) { c.AllowParallelFifths = true }
}

// AllowParallelOctaves relaxes the parallel-octave prohibition.
func AllowParallelOctaves() Option {
	return func(c *Config) { c.AllowParallelOctaves = true }
}

// AllowHiddenPerfects relaxes the outer-voice hidden fifth/octave rule.
func AllowHiddenPerfects() Option {
	return func(c *Config) { c.AllowHiddenPerfects = true }
}

// AllowAlteredDoubling permits doubling of figure-altered chord members.
func AllowAlteredDoubling() Option {
	return func(c *Config) { c.AllowAlteredDoubling = true }
}

// WithMaxLeap caps per-voice melodic motion at n semitones (0 = no cap).
func WithMaxLeap(n int) Option {
	return func(c *Config) { c.MaxLeap = n }
}

// WithDoublingOf restricts doubling to the given figure numerals.
func WithDoublingOf(numbers ...int) Option {
	return func(c *Config) { c.DoublingOf = append([]int(nil), numbers...) }
}

// WithDim65Doubling selects the diminished six-five resolution mode.
func WithDim65Doubling(d Doubling) Option {
	return func(c *Config) { c.Dim65Doubling = d }
}

// WithSegmentCap bounds per-segment possibility generation (0 = unbounded).
func WithSegmentCap(n int) Option {
	return func(c *Config) { c.SegmentCap = n }
}
