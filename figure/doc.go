// Package figure parses figured-bass notation strings into structured
// harmony descriptions.
//
// A figure is the comma-separated shorthand written under a bass note:
// numerals for the intervals sounding above the bass, each with an optional
// accidental. Parse turns the string into a Figure — the complete set of
// required interval offsets, with omitted chord members filled in from the
// conventional completion table (an empty figure means a 5,3 root-position
// triad; "6" means 6,3; "7" means 7,5,3; and so on).
//
// Certain figure shapes additionally carry a resolution obligation for the
// following chord. Rather than re-deriving this downstream by matching raw
// strings, Parse classifies the shape once into the closed Resolution enum,
// and movement checking dispatches on that variant.
package figure
