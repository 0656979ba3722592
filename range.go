// Package charclass implements character classes: sets of Unicode scalar
// values kept as sorted, merged, inclusive ranges.
//
// A Class is a value. Every operation returns a new Class and never changes
// its operands, so classes can be shared between goroutines freely. Use a
// Builder for exclusive, in-place construction.
//
// # Notation
//
// A class is written as '[' followed by items and ']'. A '^' right after
// the '[' complements the class. An item is a single value or a range
// "lo-hi". Values are written literally or escaped:
//
//	\\ \] \[ \^ \-          the character itself
//	\a \b \f \n \r \t \v    control characters, as in Go
//	\xHH \uHHHH \UHHHHHHHH  hexadecimal, exactly 2, 4 or 8 digits
//
// A literal '-' is allowed as the first item or right before the closing
// ']'. The input "." is shorthand for the full class. A range may end on
// a surrogate; the gap is cut out as everywhere else.
//
// String writes the canonical notation. It escapes ']', '^', '-', '\' and
// every value unicode.IsPrint rejects, so its output always parses back to
// the same class.
package charclass

import (
	"fmt"
	"unicode"
)

const (
	// MaxScalar is the largest Unicode scalar value.
	MaxScalar rune = unicode.MaxRune

	// SurrogateMin and SurrogateMax bound the surrogate gap, which is never
	// part of any class.
	SurrogateMin rune = 0xD800
	SurrogateMax rune = 0xDFFF

	// DomainSize is the number of scalar values.
	DomainSize = int(MaxScalar) + 1 - int(SurrogateMax-SurrogateMin+1)
)

// Range is an inclusive interval [Lo, Hi] of scalar values.
//
// Ranges held by a Class never cross the surrogate gap.
type Range struct {
	Lo, Hi rune
}

// Size returns the number of scalar values in r.
func (r Range) Size() int {
	return int(r.Hi-r.Lo) + 1
}

// Contains reports whether v lies in r.
func (r Range) Contains(v rune) bool {
	return r.Lo <= v && v <= r.Hi
}

func (r Range) String() string {
	if r.Lo == r.Hi {
		return fmt.Sprintf("%U", r.Lo)
	}
	return fmt.Sprintf("%U-%U", r.Lo, r.Hi)
}

// IsScalar reports whether v is a Unicode scalar value.
func IsScalar(v rune) bool {
	return 0 <= v && v <= MaxScalar && (v < SurrogateMin || v > SurrogateMax)
}

// checkRange validates caller input. Ranges crossing the surrogate gap are
// valid; they are clipped by splitGap.
func checkRange(lo, hi rune) error {
	switch {
	case lo > hi:
		return &RangeError{lo, hi, ErrMalformedRange}
	case lo < 0 || hi > MaxScalar:
		return &RangeError{lo, hi, ErrOutOfDomain}
	case lo >= SurrogateMin && hi <= SurrogateMax:
		return &RangeError{lo, hi, ErrOutOfDomain}
	}
	return nil
}

// splitGap appends [lo, hi] to dst with the surrogate gap cut out. The
// result is zero, one or two ranges.
func splitGap(dst []Range, lo, hi rune) []Range {
	if lo < 0 {
		lo = 0
	}
	if hi > MaxScalar {
		hi = MaxScalar
	}
	if lo > hi {
		return dst
	}
	if lo < SurrogateMin {
		dst = append(dst, Range{lo, min(hi, SurrogateMin-1)})
	}
	if hi > SurrogateMax {
		dst = append(dst, Range{max(lo, SurrogateMax+1), hi})
	}
	return dst
}
