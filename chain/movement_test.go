package chain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cantus/chain"
	"github.com/katalvlaran/cantus/pitch"
	"github.com/katalvlaran/cantus/rules"
	"github.com/katalvlaran/cantus/voicing"
)

// dim65Line is a bass line whose middle figure carries the diminished 6-5
// obligation: the lowered fifth must fall by step, the sixth moves per the
// configured doubling mode.
func dim65Line(last, lastFig string) []chain.BassNote {
	return []chain.BassNote{note("D3", ""), note("E3", "6,-5"), note(last, lastFig)}
}

// realized enumerates every progression and resolves it to voicings.
func realized(t *testing.T, c *chain.Chain) [][]chain.Possibility {
	t.Helper()
	progs, err := c.EnumerateAll()
	require.NoError(t, err)
	require.NotEmpty(t, progs)

	out := make([][]chain.Possibility, len(progs))
	for i, p := range progs {
		vs, verr := c.Possibilities(p)
		require.NoError(t, verr)
		out[i] = vs
	}

	return out
}

// voicesOnClass returns the upper-voice indices of v sounding the class of p.
func voicesOnClass(v chain.Possibility, cls pitch.Class) []int {
	var out []int
	for vi := 0; vi < len(v)-1; vi++ {
		if v[vi].SameClass(cls) {
			out = append(out, vi)
		}
	}

	return out
}

func downByStep(iv pitch.Interval) bool { return iv.IsStep() && iv.Direction() < 0 }
func upByStep(iv pitch.Interval) bool   { return iv.IsStep() && iv.Direction() > 0 }

// fingerprint flattens a realization into a comparable key.
func fingerprint(vs []chain.Possibility) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.String()
	}

	return strings.Join(parts, " | ")
}

// TestDim65_DoublingTogglesLegality builds the same line under both doubling
// modes: every chord's sixth voice must fall by step under standard and hold
// or rise by step under alternate, so no single realization can be legal
// under both — the rule toggle partitions the legal space.
func TestDim65_DoublingTogglesLegality(t *testing.T) {
	line := dim65Line("C3", "7,6")

	std, err := chain.Build(line, voicing.SATB(), rules.Default())
	require.NoError(t, err)
	alt, err := chain.Build(line, voicing.SATB(), rules.New(rules.WithDim65Doubling(rules.DoublingAlternate)))
	require.NoError(t, err)

	bb := pitch.Class{Step: pitch.StepB, Alter: -1} // lowered fifth over E
	sixth := pitch.Class{Step: pitch.StepC}         // sixth over E

	stdSeen := make(map[string]bool)
	for _, vs := range realized(t, std) {
		from, to := vs[1], vs[2]
		for _, vi := range voicesOnClass(from, bb) {
			assert.True(t, downByStep(pitch.Between(from[vi], to[vi])),
				"lowered fifth must fall by step: %s -> %s", from, to)
		}
		for _, vi := range voicesOnClass(from, sixth) {
			assert.True(t, downByStep(pitch.Between(from[vi], to[vi])),
				"sixth must fall by step under standard doubling: %s -> %s", from, to)
		}
		stdSeen[fingerprint(vs)] = true
	}

	for _, vs := range realized(t, alt) {
		from, to := vs[1], vs[2]
		for _, vi := range voicesOnClass(from, bb) {
			assert.True(t, downByStep(pitch.Between(from[vi], to[vi])),
				"lowered fifth must fall by step: %s -> %s", from, to)
		}
		for _, vi := range voicesOnClass(from, sixth) {
			motion := pitch.Between(from[vi], to[vi])
			assert.True(t, motion.IsPerfectUnison() || upByStep(motion),
				"sixth must hold or rise by step under alternate doubling: %s -> %s", from, to)
		}
		assert.False(t, stdSeen[fingerprint(vs)],
			"no realization may be legal under both doubling modes: %s", fingerprint(vs))
	}
}

func TestDim65_AlternateDoubling(t *testing.T) {
	// Resolving onto F (6 over F supplies D and A) lets the sixth rise by
	// step to D or hold, which only the alternate mode permits.
	line := dim65Line("F3", "6")

	c, err := chain.Build(line, voicing.SATB(), rules.New(rules.WithDim65Doubling(rules.DoublingAlternate)))
	require.NoError(t, err)

	bb := pitch.Class{Step: pitch.StepB, Alter: -1}
	sixth := pitch.Class{Step: pitch.StepC}
	for _, vs := range realized(t, c) {
		from, to := vs[1], vs[2]
		for _, vi := range voicesOnClass(from, bb) {
			assert.True(t, downByStep(pitch.Between(from[vi], to[vi])),
				"lowered fifth must fall by step: %s -> %s", from, to)
		}
		for _, vi := range voicesOnClass(from, sixth) {
			motion := pitch.Between(from[vi], to[vi])
			assert.True(t, motion.IsPerfectUnison() || upByStep(motion),
				"sixth must hold or rise by step under alternate doubling: %s -> %s", from, to)
		}
	}

	_, err = chain.Build(line, voicing.SATB(), rules.Default())
	assert.ErrorIs(t, err, chain.ErrChainInfeasible)
}

func TestProgressions_KeepBassLine(t *testing.T) {
	line := dim65Line("C3", "7,6")
	c, err := chain.Build(line, voicing.SATB(), rules.Default())
	require.NoError(t, err)

	for _, vs := range realized(t, c) {
		require.Len(t, vs, len(line))
		for i, v := range vs {
			assert.Equal(t, line[i].Pitch, v.Bass(), "segment %d bass must match the input line", i)
		}
	}
}

func TestProgressions_NoParallelPerfects(t *testing.T) {
	c, err := chain.Build(dim65Line("C3", "7,6"), voicing.SATB(), rules.Default())
	require.NoError(t, err)

	perfect := func(iv pitch.Interval) (string, bool) {
		switch {
		case iv.IsPerfectUnison():
			return "unison", true
		case iv.IsPerfectFifth():
			return "fifth", true
		case iv.IsPerfectOctave():
			return "octave", true
		default:
			return "", false
		}
	}

	for _, vs := range realized(t, c) {
		for s := 0; s < len(vs)-1; s++ {
			from, to := vs[s], vs[s+1]
			for hi := 0; hi < len(from)-1; hi++ {
				for lo := hi + 1; lo < len(from); lo++ {
					mHi := pitch.Between(from[hi], to[hi])
					mLo := pitch.Between(from[lo], to[lo])
					if mHi.Direction() == 0 || mHi.Direction() != mLo.Direction() {
						continue
					}
					before, okB := perfect(pitch.Between(from[lo], from[hi]))
					after, okA := perfect(pitch.Between(to[lo], to[hi]))
					if okB && okA && before == after {
						t.Errorf("parallel %s between voices %d,%d: %s -> %s", after, hi, lo, from, to)
					}
				}
			}
		}
	}
}
