package charclass

import (
	"cmp"
	"iter"
	"slices"
	"sort"
)

// Contains reports whether v is in c.
func (c Class) Contains(v rune) bool {
	rs := c.ranges
	i := sort.Search(len(rs), func(i int) bool { return rs[i].Hi >= v })
	return i < len(rs) && rs[i].Lo <= v
}

// ContainsRange reports whether every scalar value in [lo, hi] is in c.
// Surrogates inside [lo, hi] are ignored; an empty or invalid range is
// never contained.
func (c Class) ContainsRange(lo, hi rune) bool {
	if checkRange(lo, hi) != nil {
		return false
	}
	for _, r := range splitGap(nil, lo, hi) {
		rs := c.ranges
		i := sort.Search(len(rs), func(i int) bool { return rs[i].Hi >= r.Lo })
		if i == len(rs) || rs[i].Lo > r.Lo || rs[i].Hi < r.Hi {
			return false
		}
	}
	return true
}

// IsSubsetOf reports whether every value of c is also in d.
func (c Class) IsSubsetOf(d Class) bool {
	j := 0
	for _, r := range c.ranges {
		for j < len(d.ranges) && d.ranges[j].Hi < r.Lo {
			j++
		}
		if j == len(d.ranges) || d.ranges[j].Lo > r.Lo || d.ranges[j].Hi < r.Hi {
			return false
		}
	}
	return true
}

// Equal reports whether c and d hold the same values.
func (c Class) Equal(d Class) bool {
	return slices.Equal(c.ranges, d.ranges)
}

// Compare orders classes by their ranges, lexicographically. It returns 0
// exactly when c.Equal(d).
func (c Class) Compare(d Class) int {
	return slices.CompareFunc(c.ranges, d.ranges, func(a, b Range) int {
		if a.Lo != b.Lo {
			return cmp.Compare(a.Lo, b.Lo)
		}
		return cmp.Compare(a.Hi, b.Hi)
	})
}

// Count returns the number of scalar values in c.
func (c Class) Count() int {
	n := 0
	for _, r := range c.ranges {
		n += r.Size()
	}
	return n
}

func (c Class) Len() int {
	return len(c.ranges)
}

func (c Class) IsEmpty() bool {
	return len(c.ranges) == 0
}

// IsFull reports whether c holds every scalar value.
func (c Class) IsFull() bool {
	return slices.Equal(c.ranges, full)
}

func (c Class) Extent() (r Range, ok bool) {
	if len(c.ranges) == 0 {
		return
	}
	return Range{c.ranges[0].Lo, c.ranges[len(c.ranges)-1].Hi}, true
}

// Ranges returns a copy of the canonical ranges of c.
func (c Class) Ranges() []Range {
	return slices.Clone(c.ranges)
}

// Intervals yields the ranges of c in ascending order.
func (c Class) Intervals() iter.Seq[Range] {
	return func(yield func(Range) bool) {
		for _, r := range c.ranges {
			if !yield(r) {
				return
			}
		}
	}
}

// Runes yields every value of c in ascending order.
func (c Class) Runes() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range c.ranges {
			for v := r.Lo; v <= r.Hi; v++ {
				if !yield(v) {
					return
				}
			}
		}
	}
}
