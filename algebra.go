package charclass

// The set operations below walk both operands once, so each costs
// O(m+n) in the number of ranges. None of them writes to an operand.

// Union returns the values in c or d.
func (c Class) Union(d Class) Class {
	switch {
	case len(d.ranges) == 0:
		return c
	case len(c.ranges) == 0:
		return d
	}

	x, y := c.ranges, d.ranges
	out := make([]Range, 0, len(x)+len(y))
	for len(x) > 0 || len(y) > 0 {
		var r Range
		if len(y) == 0 || len(x) > 0 && x[0].Lo <= y[0].Lo {
			r, x = x[0], x[1:]
		} else {
			r, y = y[0], y[1:]
		}
		if n := len(out); n > 0 && r.Lo <= out[n-1].Hi+1 {
			if r.Hi > out[n-1].Hi {
				out[n-1].Hi = r.Hi
			}
			continue
		}
		out = append(out, r)
	}
	return Class{out}
}

// UnionOf returns the union of all given classes.
func UnionOf(cs ...Class) Class {
	n := 0
	for _, c := range cs {
		n += len(c.ranges)
	}
	rs := make([]Range, 0, n)
	for _, c := range cs {
		rs = append(rs, c.ranges...)
	}
	return Class{normalize(rs)}
}

// Intersect returns the values in both c and d.
func (c Class) Intersect(d Class) Class {
	x, y := c.ranges, d.ranges
	if len(x) == 0 || len(y) == 0 {
		return Class{}
	}

	var out []Range
	i, j := 0, 0
	for i < len(x) && j < len(y) {
		lo, hi := max(x[i].Lo, y[j].Lo), min(x[i].Hi, y[j].Hi)
		if lo <= hi {
			out = append(out, Range{lo, hi})
		}
		if x[i].Hi < y[j].Hi {
			i++
		} else {
			j++
		}
	}
	return Class{out}
}

// Difference returns the values in c but not in d.
func (c Class) Difference(d Class) Class {
	x, y := c.ranges, d.ranges
	if len(x) == 0 || len(y) == 0 {
		return c
	}

	out := make([]Range, 0, len(x)+len(y))
	j := 0
	for _, r := range x {
		for j < len(y) && y[j].Hi < r.Lo {
			j++
		}
		lo := r.Lo
		for j < len(y) && y[j].Lo <= r.Hi {
			if y[j].Lo > lo {
				out = append(out, Range{lo, y[j].Lo - 1})
			}
			if y[j].Hi >= r.Hi {
				// y[j] may still cover the next range of x.
				lo = r.Hi + 1
				break
			}
			lo = y[j].Hi + 1
			j++
		}
		if lo <= r.Hi {
			out = append(out, Range{lo, r.Hi})
		}
	}
	if len(out) == 0 {
		return Class{}
	}
	return Class{out}
}

// SymmetricDifference returns the values in exactly one of c and d.
func (c Class) SymmetricDifference(d Class) Class {
	return c.Difference(d).Union(d.Difference(c))
}

// Complement returns every scalar value not in c.
func (c Class) Complement() Class {
	return Class{full}.Difference(c)
}

// Insert and Remove are the value forms of Builder.AddRange/DeleteRange.
func (c Class) Insert(lo, hi rune) (Class, error) {
	d, err := FromRange(lo, hi)
	if err != nil {
		return c, err
	}
	return c.Union(d), nil
}

func (c Class) Remove(lo, hi rune) (Class, error) {
	d, err := FromRange(lo, hi)
	if err != nil {
		return c, err
	}
	return c.Difference(d), nil
}

func (c Class) Negate() Class {
	return c.Complement()
}
