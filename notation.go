package charclass

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse reads a class written in notation.
func Parse(s string) (Class, error) {
	if s == "." {
		return Full(), nil
	}
	p := parser{src: s}
	return p.parse()
}

// MustParse is like Parse but panics on error. It simplifies
// initialization of package-level classes.
func MustParse(s string) Class {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Class) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for _, r := range c.ranges {
		writeValue(&sb, r.Lo)
		if r.Hi != r.Lo {
			sb.WriteByte('-')
			writeValue(&sb, r.Hi)
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

// GoString returns a Go expression that rebuilds c.
func (c Class) GoString() string {
	return "charclass.MustParse(" + strconv.Quote(c.String()) + ")"
}

// MarshalText implements encoding.TextMarshaler.
func (c Class) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Class) UnmarshalText(text []byte) error {
	d, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = d
	return nil
}

var namedEscapes = map[rune]byte{
	'\a': 'a',
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	'\v': 'v',
}

func writeValue(sb *strings.Builder, v rune) {
	switch v {
	case ']', '^', '-', '\\':
		sb.WriteByte('\\')
		sb.WriteRune(v)
		return
	}
	if c, ok := namedEscapes[v]; ok {
		sb.WriteByte('\\')
		sb.WriteByte(c)
		return
	}
	switch {
	case unicode.IsPrint(v):
		sb.WriteRune(v)
	case v < utf8.RuneSelf:
		fmt.Fprintf(sb, `\x%02X`, v)
	case v <= 0xFFFF:
		fmt.Fprintf(sb, `\u%04X`, v)
	default:
		fmt.Fprintf(sb, `\U%08X`, v)
	}
}

type parser struct {
	src string
	pos int
}

func (p *parser) fail(off int, err error, format string, a ...interface{}) *ParseError {
	return &ParseError{
		Notation: p.src,
		Offset:   off,
		Msg:      fmt.Sprintf(format, a...),
		Err:      err,
	}
}

func (p *parser) parse() (Class, error) {
	if !strings.HasPrefix(p.src, "[") {
		return Class{}, p.fail(0, nil, "expected '['")
	}
	p.pos = 1

	negate := false
	if p.pos < len(p.src) && p.src[p.pos] == '^' {
		negate = true
		p.pos++
	}

	var b Builder
	for first := true; ; first = false {
		if p.pos >= len(p.src) {
			return Class{}, p.fail(len(p.src), nil, "missing closing ']'")
		}
		if p.src[p.pos] == ']' {
			p.pos++
			break
		}

		start := p.pos
		lo, err := p.value(first)
		if err != nil {
			return Class{}, err
		}
		hi := lo
		if p.pos+1 < len(p.src) && p.src[p.pos] == '-' && p.src[p.pos+1] != ']' {
			p.pos++
			hi, err = p.value(false)
			if err != nil {
				return Class{}, err
			}
			if lo > hi {
				return Class{}, p.fail(start, ErrMalformedRange, "range %s is reversed", p.src[start:p.pos])
			}
		}
		if _, err := b.AddRange(lo, hi); err != nil {
			return Class{}, p.fail(start, ErrOutOfDomain, "%s is not a scalar value", p.src[start:p.pos])
		}
	}

	if p.pos != len(p.src) {
		return Class{}, p.fail(p.pos, nil, "unexpected %q after ']'", p.src[p.pos:])
	}

	c := b.Class()
	if negate {
		c = c.Complement()
	}
	return c, nil
}

// value reads one literal or escaped value. first is set for the first
// item, where a bare '-' is literal.
func (p *parser) value(first bool) (rune, error) {
	r, size := utf8.DecodeRuneInString(p.src[p.pos:])
	switch {
	case r == utf8.RuneError && size == 1:
		return 0, p.fail(p.pos, nil, "invalid UTF-8")
	case r == '\\':
		return p.escape()
	case r == '-':
		if !first && (p.pos+1 >= len(p.src) || p.src[p.pos+1] != ']') {
			return 0, p.fail(p.pos, nil, "unexpected '-'")
		}
	}
	p.pos += size
	return r, nil
}

func (p *parser) escape() (rune, error) {
	start := p.pos
	p.pos++
	if p.pos >= len(p.src) {
		return 0, p.fail(start, nil, "unterminated escape")
	}

	c := p.src[p.pos]
	p.pos++
	switch c {
	case '\\', ']', '[', '^', '-':
		return rune(c), nil
	case 'x':
		return p.hex(start, 2)
	case 'u':
		return p.hex(start, 4)
	case 'U':
		return p.hex(start, 8)
	}
	for v, name := range namedEscapes {
		if c == name {
			return v, nil
		}
	}
	r, _ := utf8.DecodeRuneInString(p.src[start+1:])
	return 0, p.fail(start, nil, "invalid escape \\%c", r)
}

func (p *parser) hex(start, digits int) (rune, error) {
	if p.pos+digits > len(p.src) {
		return 0, p.fail(start, nil, "escape needs %d hex digits", digits)
	}
	v, err := strconv.ParseUint(p.src[p.pos:p.pos+digits], 16, 32)
	if err != nil {
		return 0, p.fail(start, nil, "escape needs %d hex digits", digits)
	}
	p.pos += digits
	if v > uint64(MaxScalar) {
		return 0, p.fail(start, ErrOutOfDomain, "%s is not a scalar value", p.src[start:p.pos])
	}
	return rune(v), nil
}
