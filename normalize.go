package charclass

import (
	"cmp"
	"slices"
)

// Class is a set of Unicode scalar values in canonical form: ranges sorted
// by Lo, neither overlapping nor adjacent, none crossing the surrogate gap.
// Two classes hold the same set exactly when their ranges are identical.
//
// The zero Class is empty and ready to use.
type Class struct {
	ranges []Range
}

// Empty returns the class with no values.
func Empty() Class {
	return Class{}
}

var full = []Range{{0, SurrogateMin - 1}, {SurrogateMax + 1, MaxScalar}}

// Full returns the class of every scalar value.
func Full() Class {
	return Class{slices.Clone(full)}
}

// Single returns the class holding only v.
func Single(v rune) (Class, error) {
	return FromRange(v, v)
}

// FromRange returns the class of [lo, hi]. A range crossing the surrogate
// gap is split around it.
func FromRange(lo, hi rune) (Class, error) {
	if err := checkRange(lo, hi); err != nil {
		return Class{}, err
	}
	return Class{splitGap(nil, lo, hi)}, nil
}

// FromRunes returns the class of the given values, in any order.
func FromRunes(vs ...rune) (Class, error) {
	rs := make([]Range, 0, len(vs))
	for _, v := range vs {
		if err := checkRange(v, v); err != nil {
			return Class{}, err
		}
		rs = append(rs, Range{v, v})
	}
	return Class{normalize(rs)}, nil
}

// New returns the class covering the union of rs. The ranges may come in
// any order and may overlap, touch or cross the surrogate gap.
func New(rs ...Range) (Class, error) {
	clipped := make([]Range, 0, len(rs)+1)
	for _, r := range rs {
		if err := checkRange(r.Lo, r.Hi); err != nil {
			return Class{}, err
		}
		clipped = splitGap(clipped, r.Lo, r.Hi)
	}
	return Class{normalize(clipped)}, nil
}

// normalize sorts and merges rs in place and returns the canonical prefix.
// The ranges must already be clipped against the surrogate gap; clipped
// ranges on either side of the gap are never adjacent, so the sweep cannot
// join them.
func normalize(rs []Range) []Range {
	if len(rs) == 0 {
		return nil
	}

	slices.SortFunc(rs, func(a, b Range) int { return cmp.Compare(a.Lo, b.Lo) })

	out := rs[:1]
	for _, r := range rs[1:] {
		last := &out[len(out)-1]
		if r.Lo <= last.Hi+1 {
			if r.Hi > last.Hi {
				last.Hi = r.Hi
			}
			continue
		}
		out = append(out, r)
	}
	return slices.Clip(out)
}
