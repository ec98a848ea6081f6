package figure

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// completion lists the chord members conventionally implied by each written
// figure shape, keyed by the sorted numerals actually written. Members added
// from this table carry no accidental and are marked non-explicit.
var completion = map[string][]int{
	"":      {5, 3},
	"3":     {5, 3},
	"5":     {5, 3},
	"5,3":   {5, 3},
	"6":     {6, 3},
	"6,3":   {6, 3},
	"6,4":   {6, 4},
	"7":     {7, 5, 3},
	"7,3":   {7, 5, 3},
	"7,5":   {7, 5, 3},
	"7,5,3": {7, 5, 3},
	"6,5":   {6, 5, 3},
	"6,5,3": {6, 5, 3},
	"4,3":   {6, 4, 3},
	"6,4,3": {6, 4, 3},
	"2":     {6, 4, 2},
	"4,2":   {6, 4, 2},
	"6,4,2": {6, 4, 2},
	"9":     {9, 5, 3},
	"9,5,3": {9, 5, 3},
}

// Parse converts a figure string into its structured Figure.
//
// Grammar per comma-separated token: an optional accidental prefix
// ("#" or "+" raise, "b" or "-" lower, "##"/"x" and "bb" double, "n"
// natural), then a numeral 1..15. The empty string is the implied 5,3.
// Whitespace around tokens is ignored.
//
// Omitted members are filled in from the conventional completion table;
// numerals with no table entry are kept as written. The resolution variant
// is classified from the completed shape (see Resolution).
func Parse(s string) (Figure, error) {
	fig := Figure{Text: s}

	// 1. Tokenize and parse the written offsets.
	written := make(map[int]Offset)
	var numbers []int
	trimmed := strings.TrimSpace(s)
	if trimmed != "" {
		for _, tok := range strings.Split(trimmed, ",") {
			off, err := parseToken(strings.TrimSpace(tok))
			if err != nil {
				return Figure{}, fmt.Errorf("figure: %q: %w", s, err)
			}
			if _, dup := written[off.Number]; dup {
				return Figure{}, fmt.Errorf("figure: %q: duplicate numeral %d: %w", s, off.Number, ErrBadFigure)
			}
			written[off.Number] = off
			numbers = append(numbers, off.Number)
		}
	}

	// 2. Complete the shape from the conventional table.
	sort.Sort(sort.Reverse(sort.IntSlice(numbers)))
	shape := make([]string, len(numbers))
	for i, n := range numbers {
		shape[i] = strconv.Itoa(n)
	}
	members, ok := completion[strings.Join(shape, ",")]
	if !ok {
		members = numbers
	}

	for _, n := range members {
		if off, explicit := written[n]; explicit {
			fig.Offsets = append(fig.Offsets, off)
			continue
		}
		fig.Offsets = append(fig.Offsets, Offset{Number: n})
	}
	sort.SliceStable(fig.Offsets, func(i, j int) bool {
		return fig.Offsets[i].Number > fig.Offsets[j].Number
	})

	// 3. Classify the resolution obligation.
	fig.Resolution = classify(fig)

	return fig, nil
}

// parseToken parses one "accidental + numeral" token.
func parseToken(tok string) (Offset, error) {
	if tok == "" {
		return Offset{}, ErrBadFigure
	}

	off := Offset{Explicit: true}
	rest := tok
	switch {
	case strings.HasPrefix(rest, "##"), strings.HasPrefix(rest, "x"):
		off.Alter = 2
		rest = strings.TrimPrefix(strings.TrimPrefix(rest, "##"), "x")
	case strings.HasPrefix(rest, "#"), strings.HasPrefix(rest, "+"):
		off.Alter = 1
		rest = rest[1:]
	case strings.HasPrefix(rest, "bb"):
		off.Alter = -2
		rest = rest[2:]
	case strings.HasPrefix(rest, "b"), strings.HasPrefix(rest, "-"):
		off.Alter = -1
		rest = rest[1:]
	case strings.HasPrefix(rest, "n"):
		off.Natural = true
		rest = rest[1:]
	}

	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 || n > 15 {
		return Offset{}, ErrBadFigure
	}
	off.Number = n

	return off, nil
}

// classify maps a completed figure shape to its resolution variant.
func classify(fig Figure) Resolution {
	four, hasFour := fig.Offset(4)
	six, hasSix := fig.Offset(6)
	five, hasFive := fig.Offset(5)
	_, hasThree := fig.Offset(3)

	switch {
	// Six-five with a lowered fifth: the diminished six-five shape.
	case hasSix && hasFive && five.Alter < 0:
		return ResolutionDimSixFive
	// Six-five with a lowered sixth over a natural fifth also spells a
	// diminished fifth between the upper members; treat it the same way.
	case hasSix && hasFive && six.Alter < 0 && five.Explicit:
		return ResolutionDimSixFive
	case hasSix && hasFour && hasThree && four.Explicit:
		return ResolutionFourThree
	default:
		return ResolutionNone
	}
}
