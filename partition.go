package charclass

import (
	"github.com/google/btree"
)

// Partition splits the scalar domain into segments so that each class
// added to it is a union of whole segments. Lexers use the segments as
// their input alphabet.
//
// Segment boundaries live in a B-tree, so Add and Lookup cost O(log n)
// per boundary.
type Partition struct {
	tree    *btree.BTree
	covered Class
}

type boundary rune

func (a boundary) Less(b btree.Item) bool {
	return a < b.(boundary)
}

// NewPartition returns a partition with no classes added.
func NewPartition() *Partition {
	p := &Partition{tree: btree.New(2)}
	for _, v := range []rune{0, SurrogateMin, SurrogateMax + 1, MaxScalar + 1} {
		p.tree.ReplaceOrInsert(boundary(v))
	}
	return p
}

// Add refines the partition by c.
func (p *Partition) Add(c Class) {
	for _, r := range c.ranges {
		p.tree.ReplaceOrInsert(boundary(r.Lo))
		p.tree.ReplaceOrInsert(boundary(r.Hi + 1))
	}
	p.covered = p.covered.Union(c)
}

func (p *Partition) Covered() Class {
	return p.covered
}

// Segments returns, in ascending order, the segments covered by at least
// one added class.
func (p *Partition) Segments() []Range {
	var out []Range
	prev := rune(-1)
	p.tree.Ascend(func(it btree.Item) bool {
		b := rune(it.(boundary))
		if prev >= 0 && p.covered.Contains(prev) {
			out = append(out, Range{prev, b - 1})
		}
		prev = b
		return true
	})
	return out
}

// Split returns the segments that make up c. c need not have been added;
// its values outside the covered set come back as their own pieces.
func (p *Partition) Split(c Class) []Range {
	var out []Range
	for _, r := range c.ranges {
		lo := r.Lo
		p.tree.AscendRange(boundary(r.Lo+1), boundary(r.Hi+1), func(it btree.Item) bool {
			b := rune(it.(boundary))
			out = append(out, Range{lo, b - 1})
			lo = b
			return true
		})
		out = append(out, Range{lo, r.Hi})
	}
	return out
}

// Lookup returns the segment holding v. ok is false if no added class
// contains v.
func (p *Partition) Lookup(v rune) (seg Range, ok bool) {
	if !p.covered.Contains(v) {
		return Range{}, false
	}
	p.tree.DescendLessOrEqual(boundary(v), func(it btree.Item) bool {
		seg.Lo = rune(it.(boundary))
		return false
	})
	p.tree.AscendGreaterOrEqual(boundary(v+1), func(it btree.Item) bool {
		seg.Hi = rune(it.(boundary)) - 1
		return false
	})
	return seg, true
}
