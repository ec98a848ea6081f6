// Package rules holds the voice-leading rule configuration for a
// realization run.
//
// A Config is built once — with New and functional options, or from a YAML
// rule file with LoadYAML — and is read-only from then on, so every segment
// and movement check in a run evaluates the same rule snapshot. The default
// configuration is the historical strict rule set: no crossing, no overlap,
// no parallel or hidden perfect consonances, altered degrees never doubled,
// melodic leaps capped at an octave. Options relax or tune individual rules.
package rules
