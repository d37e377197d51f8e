package mastermind

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerator_SameSeedSameSecret(t *testing.T) {
	g1 := NewGenerator(nil)
	g2 := NewGenerator(nil)

	s1 := g1.FromSeed(1234, DefaultPalette(), 4)
	s2 := g2.FromSeed(1234, DefaultPalette(), 4)

	assert.Equal(t, s1.Code(), s2.Code())
	assert.Equal(t, int64(1234), g1.LastSeed())
}

func TestGenerator_ReseedsEveryGame(t *testing.T) {
	var seen []int64
	g := NewGenerator(NewFixedSeeds([]int64{7, 8, 7}, nil))
	g.OnSeed = func(seed int64) { seen = append(seen, seed) }

	first := g.Random(DefaultPalette(), 4)
	g.Random(DefaultPalette(), 4)
	third := g.Random(DefaultPalette(), 4)

	assert.Equal(t, []int64{7, 8, 7}, seen)
	assert.Equal(t, first.Code(), third.Code(), "replaying a seed reproduces the secret")
}

func TestGenerator_DrawsFromPalette(t *testing.T) {
	palette := []Color{Blue, Pink}
	g := NewGenerator(nil)

	for seed := int64(0); seed < 50; seed++ {
		secret := g.FromSeed(seed, palette, 6)
		assert.Equal(t, 6, secret.Len())
		for _, c := range secret.Code() {
			assert.Contains(t, palette, c)
		}
	}
}

func TestGenerator_AllowsDuplicates(t *testing.T) {
	g := NewGenerator(nil)
	found := false
	for seed := int64(0); seed < 200 && !found; seed++ {
		code := g.FromSeed(seed, DefaultPalette(), 4).Code()
		counts := map[Color]int{}
		for _, c := range code {
			counts[c]++
			if counts[c] > 1 {
				found = true
			}
		}
	}
	assert.True(t, found, "sampling is with replacement")
}

func TestFixedSeeds_FallsBack(t *testing.T) {
	src := NewFixedSeeds([]int64{1}, NewFixedSeeds([]int64{99}, nil))

	assert.Equal(t, int64(1), src.NextSeed())
	assert.Equal(t, int64(99), src.NextSeed())
}

func TestGenerator_PanicsOnEmptyPalette(t *testing.T) {
	assert.Panics(t, func() {
		NewGenerator(nil).FromSeed(1, nil, 4)
	})
}
