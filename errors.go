package charclass

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedRange is returned for a range whose low end is above its
	// high end.
	ErrMalformedRange = errors.New("malformed range")

	// ErrOutOfDomain is returned for values that are not scalar values:
	// negative, above U+10FFFF, a single surrogate, or a range lying
	// wholly inside the surrogate gap. Ranges that only cross the gap
	// are clipped instead.
	ErrOutOfDomain = errors.New("value out of domain")

	// ErrSyntax is returned for malformed notation.
	ErrSyntax = errors.New("invalid notation")
)

// RangeError describes a rejected range.
type RangeError struct {
	Lo, Hi rune
	Err    error
}

func (e *RangeError) Error() string {
	if e.Lo == e.Hi {
		return fmt.Sprintf("charclass: %v: %#x", e.Err, e.Lo)
	}
	return fmt.Sprintf("charclass: %v: %#x-%#x", e.Err, e.Lo, e.Hi)
}

func (e *RangeError) Unwrap() error { return e.Err }

// ParseError describes malformed notation. Offset is the byte offset in the
// input at which the problem was found.
type ParseError struct {
	Notation string
	Offset   int
	Msg      string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("charclass: parsing %q: offset %d: %s", e.Notation, e.Offset, e.Msg)
}

// Unwrap returns the domain error behind e, or ErrSyntax.
func (e *ParseError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrSyntax
}

// Is makes every ParseError match ErrSyntax, in addition to its cause.
func (e *ParseError) Is(target error) bool {
	return target == ErrSyntax
}
