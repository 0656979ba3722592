package charclass

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartition(t *testing.T) {
	p := NewPartition()
	assert.Empty(t, p.Segments())

	p.Add(MustParse("[a-z]"))
	p.Add(MustParse("[aeiou]"))
	p.Add(MustParse("[0-9a-f]"))

	segs := p.Segments()
	assert.Equal(t, []Range{
		{'0', '9'},
		{'a', 'a'}, {'b', 'd'}, {'e', 'e'}, {'f', 'f'},
		{'g', 'h'}, {'i', 'i'}, {'j', 'n'}, {'o', 'o'},
		{'p', 't'}, {'u', 'u'}, {'v', 'z'},
	}, segs)
	assert.Equal(t, "[0-9a-z]", p.Covered().String())

	seg, ok := p.Lookup('c')
	require.True(t, ok)
	assert.Equal(t, Range{'b', 'd'}, seg)
	seg, ok = p.Lookup('z')
	require.True(t, ok)
	assert.Equal(t, Range{'v', 'z'}, seg)
	_, ok = p.Lookup('A')
	assert.False(t, ok)

	assert.Equal(t, []Range{{'a', 'a'}, {'b', 'd'}, {'e', 'e'}, {'f', 'f'}}, p.Split(MustParse("[a-f]")))
	assert.Equal(t, []Range{{'A', 'Z'}, {'v', 'z'}}, p.Split(MustParse("[A-Zv-z]")))
}

func TestPartitionSurrogateGap(t *testing.T) {
	p := NewPartition()
	p.Add(Full())
	assert.Equal(t, []Range{{0, SurrogateMin - 1}, {SurrogateMax + 1, MaxScalar}}, p.Segments())

	seg, ok := p.Lookup(MaxScalar)
	require.True(t, ok)
	assert.Equal(t, Range{SurrogateMax + 1, MaxScalar}, seg)
}

// Every added class must be exactly the union of some segments, and no
// segment may straddle a class boundary.
func TestPartitionRefines(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 100; i++ {
		p := NewPartition()
		var classes []Class
		for n := rng.Intn(5) + 1; n > 0; n-- {
			c := randomClass(rng)
			classes = append(classes, c)
			p.Add(c)
		}

		segs := p.Segments()
		rebuilt, err := New(segs...)
		require.NoError(t, err)
		require.True(t, rebuilt.Equal(UnionOf(classes...)))

		for _, c := range classes {
			for _, seg := range segs {
				in := c.ContainsRange(seg.Lo, seg.Hi)
				out := c.Intersect(mustRange(t, seg.Lo, seg.Hi)).IsEmpty()
				require.True(t, in != out, "segment %v splits %v", seg, c)
			}
			pieces, err := New(p.Split(c)...)
			require.NoError(t, err)
			require.True(t, pieces.Equal(c))
		}
	}
}
