package figure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cantus/figure"
)

// numbers extracts the completed numeral shape, largest first.
func numbers(f figure.Figure) []int {
	out := make([]int, len(f.Offsets))
	for i, o := range f.Offsets {
		out[i] = o.Number
	}

	return out
}

func TestParse_Completion(t *testing.T) {
	cases := []struct {
		in   string
		want []int
	}{
		{"", []int{5, 3}},
		{"6", []int{6, 3}},
		{"6,4", []int{6, 4}},
		{"7", []int{7, 5, 3}},
		{"6,5", []int{6, 5, 3}},
		{"4,3", []int{6, 4, 3}},
		{"2", []int{6, 4, 2}},
		{"4,2", []int{6, 4, 2}},
		{"9", []int{9, 5, 3}},
		{"8", []int{8}},
		{"5,3", []int{5, 3}},
	}
	for _, tc := range cases {
		f, err := figure.Parse(tc.in)
		require.NoError(t, err, "figure %q", tc.in)
		assert.Equal(t, tc.want, numbers(f), "figure %q", tc.in)
	}
}

func TestParse_Accidentals(t *testing.T) {
	f, err := figure.Parse("6,-5")
	require.NoError(t, err)

	five, ok := f.Offset(5)
	require.True(t, ok)
	assert.Equal(t, -1, five.Alter)
	assert.True(t, five.Explicit)
	assert.True(t, five.Altered())

	three, ok := f.Offset(3)
	require.True(t, ok)
	assert.False(t, three.Explicit, "completed member is not explicit")
	assert.False(t, three.Altered())

	f, err = figure.Parse("#6, b3")
	require.NoError(t, err)
	six, _ := f.Offset(6)
	assert.Equal(t, 1, six.Alter)
	third, _ := f.Offset(3)
	assert.Equal(t, -1, third.Alter)

	f, err = figure.Parse("n3")
	require.NoError(t, err)
	third, _ = f.Offset(3)
	assert.True(t, third.Natural)
	assert.True(t, third.Altered())
}

func TestParse_Resolutions(t *testing.T) {
	cases := []struct {
		in   string
		want figure.Resolution
	}{
		{"", figure.ResolutionNone},
		{"6", figure.ResolutionNone},
		{"6,5", figure.ResolutionNone},
		{"6,-5", figure.ResolutionDimSixFive},
		{"4,3", figure.ResolutionFourThree},
		{"6,4,3", figure.ResolutionFourThree},
		{"6,4", figure.ResolutionNone},
		{"7", figure.ResolutionNone},
	}
	for _, tc := range cases {
		f, err := figure.Parse(tc.in)
		require.NoError(t, err, "figure %q", tc.in)
		assert.Equal(t, tc.want, f.Resolution, "figure %q", tc.in)
	}
}

func TestParse_Malformed(t *testing.T) {
	for _, s := range []string{",", "6,", "0", "16", "x", "6,#", "6,,4", "abc"} {
		_, err := figure.Parse(s)
		assert.ErrorIs(t, err, figure.ErrBadFigure, "input %q", s)
	}

	_, err := figure.Parse("6,6")
	assert.ErrorIs(t, err, figure.ErrBadFigure, "duplicate numeral")
}

func TestParse_KeepsText(t *testing.T) {
	f, err := figure.Parse("6,-5")
	require.NoError(t, err)
	assert.Equal(t, "6,-5", f.Text)
}
