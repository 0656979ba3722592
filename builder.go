package charclass

import (
	"slices"
	"sort"
)

// Builder grows or shrinks a class in place. Every change leaves the
// builder in canonical form, so Class can snapshot it at any time.
//
// A Builder must not be used by more than one goroutine at a time. The
// zero Builder is empty and ready to use.
type Builder struct {
	ranges []Range
}

// NewBuilder returns a builder starting from the values of c.
func NewBuilder(c Class) *Builder {
	return &Builder{slices.Clone(c.ranges)}
}

// Class returns a snapshot of the builder. Later changes to the builder do
// not show through it.
func (b *Builder) Class() Class {
	if len(b.ranges) == 0 {
		return Class{}
	}
	return Class{slices.Clone(b.ranges)}
}

// Add inserts the single value v.
func (b *Builder) Add(v rune) error {
	_, err := b.AddRange(v, v)
	return err
}

// AddRange inserts [lo, hi] and reports how many values were not already
// present.
func (b *Builder) AddRange(lo, hi rune) (n int, err error) {
	if err := checkRange(lo, hi); err != nil {
		return 0, err
	}
	var buf [2]Range
	for _, r := range splitGap(buf[:0], lo, hi) {
		n += b.addRange(r.Lo, r.Hi)
	}
	return n, nil
}

func (b *Builder) addRange(lo, hi rune) int {
	s := b.ranges

	i := sort.Search(len(s), func(i int) bool { return s[i].Lo > lo }) - 1
	j := sort.Search(len(s), func(i int) bool { return s[i].Hi > hi })
	if i == j {
		return 0
	}

	var r Range
	if i >= 0 && lo <= s[i].Hi+1 {
		r.Lo = s[i].Lo
	} else {
		r.Lo = lo
		i++
	}
	if j < len(s) && s[j].Lo <= hi+1 {
		r.Hi = s[j].Hi
		j++
	} else {
		r.Hi = hi
	}

	added := r.Size()
	for _, old := range s[i:j] {
		added -= old.Size()
	}

	if i < j {
		s[i] = r
	} else {
		s = slices.Insert(s, i, r)
	}
	i++

	if i < j {
		s = slices.Delete(s, i, j)
	}
	b.ranges = s
	return added
}

func (b *Builder) Delete(v rune) error {
	_, err := b.DeleteRange(v, v)
	return err
}

// DeleteRange removes [lo, hi] and reports how many values were present.
func (b *Builder) DeleteRange(lo, hi rune) (n int, err error) {
	if err := checkRange(lo, hi); err != nil {
		return 0, err
	}
	var buf [2]Range
	for _, r := range splitGap(buf[:0], lo, hi) {
		n += b.deleteRange(r.Lo, r.Hi)
	}
	return n, nil
}

func (b *Builder) deleteRange(lo, hi rune) int {
	s := b.ranges

	i := sort.Search(len(s), func(i int) bool { return s[i].Lo > lo }) - 1
	j := sort.Search(len(s), func(i int) bool { return s[i].Hi > hi })

	var (
		r1, r2     Range
		has1, has2 bool
	)
	if i >= 0 && lo <= s[i].Hi+1 {
		r1, has1 = Range{s[i].Lo, lo - 1}, s[i].Lo < lo
	} else {
		i++
	}
	if j < len(s) && s[j].Lo <= hi+1 {
		r2, has2 = Range{hi + 1, s[j].Hi}, true
		j++
	}

	removed := 0
	for _, old := range s[i:j] {
		removed += old.Size()
	}
	if has1 {
		removed -= r1.Size()
	}
	if has2 {
		removed -= r2.Size()
	}

	if has1 {
		s[i] = r1
		i++
	}
	if has2 {
		if i < j {
			s[i] = r2
		} else {
			s = slices.Insert(s, i, r2)
			j++
		}
		i++
	}

	if i < j {
		s = slices.Delete(s, i, j)
	}
	b.ranges = s
	return removed
}

// AddClass inserts every value of c.
func (b *Builder) AddClass(c Class) {
	b.ranges = slices.Clone(Class{b.ranges}.Union(c).ranges)
}

// DeleteClass removes every value of c.
func (b *Builder) DeleteClass(c Class) {
	b.ranges = slices.Clone(Class{b.ranges}.Difference(c).ranges)
}

// Negate replaces the contents with their complement.
func (b *Builder) Negate() {
	b.ranges = slices.Clone(Class{b.ranges}.Complement().ranges)
}

func (b *Builder) Count() int {
	return Class{b.ranges}.Count()
}

func (b *Builder) Reset() {
	b.ranges = nil
}
