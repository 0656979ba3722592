package charclass

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// FromTable returns the class of the values in t.
func FromTable(t *unicode.RangeTable) Class {
	var rs []Range
	for _, r := range t.R16 {
		rs = appendStrided(rs, rune(r.Lo), rune(r.Hi), rune(r.Stride))
	}
	for _, r := range t.R32 {
		rs = appendStrided(rs, rune(r.Lo), rune(r.Hi), rune(r.Stride))
	}
	return Class{normalize(rs)}
}

func appendStrided(rs []Range, lo, hi, stride rune) []Range {
	if stride <= 1 {
		return splitGap(rs, lo, hi)
	}
	for v := lo; v <= hi; v += stride {
		rs = splitGap(rs, v, v)
	}
	return rs
}

// Table returns c as a compacted unicode.RangeTable, for use with
// unicode.Is and friends.
func (c Class) Table() *unicode.RangeTable {
	var rt unicode.RangeTable
	for _, r := range c.ranges {
		if r.Lo <= 0xFFFF {
			hi := min(r.Hi, 0xFFFF)
			rt.R16 = append(rt.R16, unicode.Range16{Lo: uint16(r.Lo), Hi: uint16(hi), Stride: 1})
			if r.Hi == hi {
				continue
			}
			r.Lo = 0x10000
		}
		rt.R32 = append(rt.R32, unicode.Range32{Lo: uint32(r.Lo), Hi: uint32(r.Hi), Stride: 1})
	}
	return rangetable.Merge(&rt)
}

// Assigned returns the class of code points assigned in the given Unicode
// version, such as "9.0.0". ok is false if no data is available for that
// version.
func Assigned(version string) (c Class, ok bool) {
	t := rangetable.Assigned(version)
	if t == nil {
		return Class{}, false
	}
	return FromTable(t), true
}
