package charclass

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// requireCanonical checks every invariant of the canonical form.
func requireCanonical(t *testing.T, c Class) {
	t.Helper()
	for i, r := range c.ranges {
		require.LessOrEqual(t, r.Lo, r.Hi, "range %d is empty", i)
		require.True(t, IsScalar(r.Lo) && IsScalar(r.Hi), "range %v leaves the domain", r)
		require.False(t, r.Lo <= SurrogateMax && r.Hi >= SurrogateMin, "range %v touches the surrogate gap", r)
		if i > 0 {
			require.Less(t, c.ranges[i-1].Hi+1, r.Lo, "ranges %d and %d are not separated", i-1, i)
		}
	}
}

// Values are drawn near the interesting edges of the domain so that random
// classes overlap often.
var hotspots = []struct{ lo, hi rune }{
	{0, 0x100},
	{SurrogateMin - 0x40, SurrogateMax + 0x40},
	{MaxScalar - 0x80, MaxScalar},
}

func randomValue(rng *rand.Rand) rune {
	h := hotspots[rng.Intn(len(hotspots))]
	return h.lo + rune(rng.Intn(int(h.hi-h.lo)+1))
}

func randomClass(rng *rand.Rand) Class {
	var b Builder
	for n := rng.Intn(7); n > 0; n-- {
		lo := randomValue(rng)
		hi := min(lo+rune(rng.Intn(48)), MaxScalar)
		b.AddRange(lo, hi) // ranges inside the gap are rejected; that's fine here
	}
	return b.Class()
}

func mustRange(t *testing.T, lo, hi rune) Class {
	t.Helper()
	c, err := FromRange(lo, hi)
	require.NoError(t, err)
	return c
}
