package rules

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// yamlConfig is the on-disk shape of a rule file. Field names mirror Config
// but use the permissive "allow_*" vocabulary so a file reads as a list of
// relaxations over the strict default.
type yamlConfig struct {
	AllowVoiceCrossing   *bool  `yaml:"allow_voice_crossing"`
	AllowVoiceOverlap    *bool  `yaml:"allow_voice_overlap"`
	AllowParallelUnisons *bool  `yaml:"allow_parallel_unisons"`
	AllowParallelFifths  *bool  `yaml:"allow_parallel_fifths"`
	AllowParallelOctaves *bool  `yaml:"allow_parallel_octaves"`
	AllowHiddenPerfects  *bool  `yaml:"allow_hidden_perfects"`
	AllowAlteredDoubling *bool  `yaml:"allow_altered_doubling"`
	MaxLeap              *int   `yaml:"max_leap"`
	DoublingOf           []int  `yaml:"doubling_of"`
	Dim65Doubling        string `yaml:"dim65_doubling"`
	SegmentCap           *int   `yaml:"segment_cap"`
}

// LoadYAML decodes a rule file into a Config. Omitted keys keep the strict
// default; unknown keys are rejected. Returns ErrBadRuleFile (wrapped) on
// any decode or validation failure.
func LoadYAML(r io.Reader) (Config, error) {
	var raw yamlConfig
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		return Config{}, fmt.Errorf("rules: decode: %v: %w", err, ErrBadRuleFile)
	}

	cfg := Default()
	setBool := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	setBool(&cfg.AllowVoiceCrossing, raw.AllowVoiceCrossing)
	setBool(&cfg.AllowVoiceOverlap, raw.AllowVoiceOverlap)
	setBool(&cfg.AllowParallelUnisons, raw.AllowParallelUnisons)
	setBool(&cfg.AllowParallelFifths, raw.AllowParallelFifths)
	setBool(&cfg.AllowParallelOctaves, raw.AllowParallelOctaves)
	setBool(&cfg.AllowHiddenPerfects, raw.AllowHiddenPerfects)
	setBool(&cfg.AllowAlteredDoubling, raw.AllowAlteredDoubling)

	if raw.MaxLeap != nil {
		if *raw.MaxLeap < 0 {
			return Config{}, fmt.Errorf("rules: max_leap %d: %w", *raw.MaxLeap, ErrBadRuleFile)
		}
		cfg.MaxLeap = *raw.MaxLeap
	}
	if raw.SegmentCap != nil {
		if *raw.SegmentCap < 0 {
			return Config{}, fmt.Errorf("rules: segment_cap %d: %w", *raw.SegmentCap, ErrBadRuleFile)
		}
		cfg.SegmentCap = *raw.SegmentCap
	}
	cfg.DoublingOf = append([]int(nil), raw.DoublingOf...)

	switch raw.Dim65Doubling {
	case "", "standard":
		cfg.Dim65Doubling = DoublingStandard
	case "alternate":
		cfg.Dim65Doubling = DoublingAlternate
	default:
		return Config{}, fmt.Errorf("rules: dim65_doubling %q: %w", raw.Dim65Doubling, ErrBadRuleFile)
	}

	return cfg, nil
}

// WriteYAML encodes the configuration as a rule file that LoadYAML reads
// back identically.
func (c Config) WriteYAML(w io.Writer) error {
	raw := yamlConfig{
		AllowVoiceCrossing:   &c.AllowVoiceCrossing,
		AllowVoiceOverlap:    &c.AllowVoiceOverlap,
		AllowParallelUnisons: &c.AllowParallelUnisons,
		AllowParallelFifths:  &c.AllowParallelFifths,
		AllowParallelOctaves: &c.AllowParallelOctaves,
		AllowHiddenPerfects:  &c.AllowHiddenPerfects,
		AllowAlteredDoubling: &c.AllowAlteredDoubling,
		MaxLeap:              &c.MaxLeap,
		DoublingOf:           c.DoublingOf,
		Dim65Doubling:        c.Dim65Doubling.String(),
		SegmentCap:           &c.SegmentCap,
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(raw); err != nil {
		return fmt.Errorf("rules: encode: %v: %w", err, ErrBadRuleFile)
	}

	return nil
}
