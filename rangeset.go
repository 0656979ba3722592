package charclass

import (
	"github.com/b97tsk/rangeset"
)

// RangeSet returns c as a rangeset of half-open rune ranges.
func (c Class) RangeSet() rangeset.RangeSet[rune] {
	s := make(rangeset.RangeSet[rune], len(c.ranges))
	for i, r := range c.ranges {
		s[i] = rangeset.Range[rune]{Low: r.Lo, High: r.Hi + 1}
	}
	return s
}

// FromRangeSet returns the class of the values in s. Surrogates in s are
// dropped; values outside [0, U+10FFFF] are an error.
func FromRangeSet(s rangeset.RangeSet[rune]) (Class, error) {
	rs := make([]Range, 0, len(s)+1)
	for _, r := range s {
		if r.Low >= r.High {
			continue
		}
		lo, hi := r.Low, r.High-1
		if lo < 0 || hi > MaxScalar {
			return Class{}, &RangeError{lo, hi, ErrOutOfDomain}
		}
		rs = splitGap(rs, lo, hi)
	}
	return Class{normalize(rs)}, nil
}
