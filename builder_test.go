package charclass

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	var b Builder

	expect := func(title, expected string) {
		t.Helper()
		require.Equal(t, expected, b.Class().String(), title)
		requireCanonical(t, b.Class())
	}

	_, err := b.AddRange('b', 'a')
	require.ErrorIs(t, err, ErrMalformedRange)
	expect("case 1", "[]")
	require.NoError(t, b.Add('b'))
	expect("case 2", "[b]")
	require.NoError(t, b.Add('a'))
	expect("case 3", "[a-b]")
	require.NoError(t, b.Add('c'))
	expect("case 4", "[a-c]")
	n, err := b.AddRange('b', 'b')
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	expect("case 5", "[a-c]")
	n, _ = b.AddRange('e', 'g')
	assert.Equal(t, 3, n)
	expect("case 6", "[a-ce-g]")
	_, err = b.DeleteRange('b', 'a')
	require.ErrorIs(t, err, ErrMalformedRange)
	expect("case 7", "[a-ce-g]")
	n, _ = b.DeleteRange('x', 'z')
	assert.Equal(t, 0, n)
	expect("case 8", "[a-ce-g]")
	require.NoError(t, b.Delete('b'))
	expect("case 9", "[ace-g]")
	require.NoError(t, b.Add('b'))
	expect("case 10", "[a-ce-g]")
	require.NoError(t, b.Delete('b'))
	n, _ = b.DeleteRange('c', 'f')
	assert.Equal(t, 3, n)
	expect("case 11", "[ag]")
	n, _ = b.AddRange('a', 'z')
	assert.Equal(t, 24, n)
	expect("case 12", "[a-z]")
	b.Reset()
	expect("case 13", "[]")
}

func TestBuilderSurrogateGap(t *testing.T) {
	var b Builder

	n, err := b.AddRange(0xD7F0, 0xE00F)
	require.NoError(t, err)
	assert.Equal(t, 32, n)
	assert.Equal(t, []Range{{0xD7F0, 0xD7FF}, {0xE000, 0xE00F}}, b.Class().Ranges())

	_, err = b.AddRange(0xD800, 0xDFFF)
	require.ErrorIs(t, err, ErrOutOfDomain)

	n, err = b.DeleteRange(0xD7FF, 0xE000)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []Range{{0xD7F0, 0xD7FE}, {0xE001, 0xE00F}}, b.Class().Ranges())

	b.Negate()
	assert.Equal(t, DomainSize-30, b.Count())
	b.Negate()
	assert.Equal(t, 30, b.Count())
}

func TestBuilderNegateEmpty(t *testing.T) {
	var b Builder
	b.Negate()
	require.True(t, b.Class().IsFull())
	require.NoError(t, b.Delete('a'))
	assert.True(t, Full().IsFull(), "builder must not write through to shared ranges")
	assert.Equal(t, DomainSize-1, b.Count())
}

func TestBuilderSnapshot(t *testing.T) {
	b := NewBuilder(MustParse("[a-c]"))
	snap := b.Class()
	require.NoError(t, b.Add('d'))
	b.AddClass(MustParse("[0-9]"))
	assert.Equal(t, "[a-c]", snap.String())
	assert.Equal(t, "[0-9a-d]", b.Class().String())

	b.DeleteClass(MustParse("[2-8b]"))
	assert.Equal(t, "[0-19ac-d]", b.Class().String())
}

// The in-place builder and the value operations must agree.
func TestBuilderMatchesAlgebra(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 300; i++ {
		var b Builder
		var c Class
		for step := 0; step < 12; step++ {
			lo := randomValue(rng)
			hi := min(lo+rune(rng.Intn(64)), MaxScalar)

			var err1, err2 error
			var n int
			before := c
			switch rng.Intn(3) {
			case 0:
				n, err1 = b.AddRange(lo, hi)
				c, err2 = c.Insert(lo, hi)
				if err1 == nil {
					require.Equal(t, c.Count()-before.Count(), n)
				}
			case 1:
				n, err1 = b.DeleteRange(lo, hi)
				c, err2 = c.Remove(lo, hi)
				if err1 == nil {
					require.Equal(t, before.Count()-c.Count(), n)
				}
			default:
				b.Negate()
				c = c.Negate()
			}
			require.Equal(t, err1 == nil, err2 == nil)
			require.Equal(t, c.Ranges(), b.Class().Ranges())
			requireCanonical(t, b.Class())
		}
	}
}
