package rules_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cantus/rules"
)

func TestDefault_IsStrict(t *testing.T) {
	cfg := rules.Default()
	assert.False(t, cfg.AllowVoiceCrossing)
	assert.False(t, cfg.AllowVoiceOverlap)
	assert.False(t, cfg.AllowParallelFifths)
	assert.False(t, cfg.AllowParallelOctaves)
	assert.False(t, cfg.AllowParallelUnisons)
	assert.False(t, cfg.AllowHiddenPerfects)
	assert.False(t, cfg.AllowAlteredDoubling)
	assert.Equal(t, 12, cfg.MaxLeap)
	assert.Equal(t, rules.DoublingStandard, cfg.Dim65Doubling)
	assert.Zero(t, cfg.SegmentCap)
	assert.Empty(t, cfg.DoublingOf)
}

func TestNew_AppliesOptions(t *testing.T) {
	cfg := rules.New(
		rules.AllowParallelOctaves(),
		rules.AllowVoiceCrossing(),
		rules.WithMaxLeap(5),
		rules.WithDim65Doubling(rules.DoublingAlternate),
		rules.WithDoublingOf(3, 5),
		rules.WithSegmentCap(100),
	)
	assert.True(t, cfg.AllowParallelOctaves)
	assert.True(t, cfg.AllowVoiceCrossing)
	assert.False(t, cfg.AllowParallelFifths)
	assert.Equal(t, 5, cfg.MaxLeap)
	assert.Equal(t, rules.DoublingAlternate, cfg.Dim65Doubling)
	assert.Equal(t, []int{3, 5}, cfg.DoublingOf)
	assert.Equal(t, 100, cfg.SegmentCap)
}

func TestLoadYAML(t *testing.T) {
	in := strings.NewReader(`
allow_parallel_octaves: true
max_leap: 7
dim65_doubling: alternate
doubling_of: [3, 5]
`)
	cfg, err := rules.LoadYAML(in)
	require.NoError(t, err)
	assert.True(t, cfg.AllowParallelOctaves)
	assert.False(t, cfg.AllowParallelFifths, "omitted keys keep the strict default")
	assert.Equal(t, 7, cfg.MaxLeap)
	assert.Equal(t, rules.DoublingAlternate, cfg.Dim65Doubling)
	assert.Equal(t, []int{3, 5}, cfg.DoublingOf)
}

func TestLoadYAML_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown key":   "allow_consecutive_ninths: true\n",
		"bad doubling":  "dim65_doubling: sideways\n",
		"negative leap": "max_leap: -1\n",
		"negative cap":  "segment_cap: -3\n",
		"not yaml":      ":\n-",
	}
	for name, in := range cases {
		_, err := rules.LoadYAML(strings.NewReader(in))
		assert.ErrorIs(t, err, rules.ErrBadRuleFile, name)
	}
}

func TestYAML_RoundTrip(t *testing.T) {
	want := rules.New(
		rules.AllowHiddenPerfects(),
		rules.WithMaxLeap(9),
		rules.WithDim65Doubling(rules.DoublingAlternate),
		rules.WithDoublingOf(5),
	)

	var buf bytes.Buffer
	require.NoError(t, want.WriteYAML(&buf))

	got, err := rules.LoadYAML(&buf)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
