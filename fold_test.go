package charclass

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestFoldSimple(t *testing.T) {
	c := MustParse("[a-z]").Fold(SimpleFold)
	want := UnionOf(MustParse("[A-Za-z]"), MustParse(`[\u017F\u212A]`))
	assert.True(t, c.Equal(want), c.String())

	c = MustParse("[k]").Fold(SimpleFold)
	assert.Equal(t, "[Kk\u212A]", c.String())

	// Values without case are left alone.
	c = MustParse("[0-9_]")
	assert.True(t, c.Fold(SimpleFold).Equal(c))
	assert.True(t, Empty().Fold(SimpleFold).IsEmpty())
}

func TestFoldSinglePass(t *testing.T) {
	table := FoldTable{
		'a': {'b'},
		'b': {'c'},
	}
	c := MustParse("[a]").Fold(table)
	assert.Equal(t, "[a-b]", c.String())

	c = c.Fold(table)
	assert.Equal(t, "[a-c]", c.String())
	assert.True(t, c.Fold(table).Equal(c))
}

func TestFoldIgnoresInvalidImages(t *testing.T) {
	f := FoldFunc(func(r rune) []rune {
		return []rune{-1, 0xD800, MaxScalar + 1, unicode.ToUpper(r)}
	})
	c := MustParse("[ab]").Fold(f)
	assert.Equal(t, "[A-Ba-b]", c.String())
	requireCanonical(t, c)
}

func TestFoldFullClass(t *testing.T) {
	assert.True(t, Full().Fold(SimpleFold).IsFull())
}
