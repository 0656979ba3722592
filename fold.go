package charclass

import (
	"unicode"
)

// Folder is a case-folding relation: Equivalents returns the values that
// fold together with r, not including r itself. Values that are not
// scalar values are ignored.
type Folder interface {
	Equivalents(r rune) []rune
}

// FoldFunc adapts a function to the Folder interface.
type FoldFunc func(r rune) []rune

func (f FoldFunc) Equivalents(r rune) []rune {
	return f(r)
}

type FoldTable map[rune][]rune

func (t FoldTable) Equivalents(r rune) []rune {
	return t[r]
}

// SimpleFold relates each value to its whole Unicode simple case folding
// orbit, as enumerated by unicode.SimpleFold.
var SimpleFold Folder = FoldFunc(simpleFoldOrbit)

func simpleFoldOrbit(r rune) []rune {
	var orbit []rune
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		orbit = append(orbit, f)
	}
	return orbit
}

// Fold returns c together with the image of each of its values under f.
//
// Fold makes one pass only: values added by f are not folded again. Call
// Fold until the result stops changing if f is not closed under itself.
func (c Class) Fold(f Folder) Class {
	var extra []Range
	for _, r := range c.ranges {
		for v := r.Lo; v <= r.Hi; v++ {
			for _, e := range f.Equivalents(v) {
				if IsScalar(e) && !r.Contains(e) {
					extra = append(extra, Range{e, e})
				}
			}
		}
	}
	if len(extra) == 0 {
		return c
	}
	return c.Union(Class{normalize(extra)})
}
