package chain_test

import (
	"testing"

	"github.com/katalvlaran/cantus/chain"
	"github.com/katalvlaran/cantus/rules"
	"github.com/katalvlaran/cantus/voicing"
)

// benchLine is a cadential bass line long enough to exercise generation,
// linking, and pruning without dominating CI time.
func benchLine() []chain.BassNote {
	return []chain.BassNote{
		note("C3", ""), note("F3", "6"), note("G3", ""),
		note("G3", "7"), note("C3", ""),
	}
}

func benchChain(b *testing.B) *chain.Chain {
	b.Helper()
	c, err := chain.Build(benchLine(), voicing.SATB(), rules.Default())
	if err != nil {
		b.Fatalf("build: %v", err)
	}

	return c
}

func BenchmarkBuild_SATB(b *testing.B) {
	line := benchLine()
	voices := voicing.SATB()
	cfg := rules.Default()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := chain.Build(line, voices, cfg); err != nil {
			b.Fatalf("build: %v", err)
		}
	}
}

func BenchmarkBuild_SATB_Parallel(b *testing.B) {
	line := benchLine()
	voices := voicing.SATB()
	cfg := rules.Default()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := chain.Build(line, voices, cfg, chain.WithWorkers(4)); err != nil {
			b.Fatalf("build: %v", err)
		}
	}
}

func BenchmarkCount(b *testing.B) {
	c := benchChain(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Count(); err != nil {
			b.Fatalf("count: %v", err)
		}
	}
}

func BenchmarkSample(b *testing.B) {
	c := benchChain(b)
	rng := chain.NewRand(0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Sample(rng); err != nil {
			b.Fatalf("sample: %v", err)
		}
	}
}
