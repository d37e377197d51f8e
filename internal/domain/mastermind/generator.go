package mastermind

import (
	"math/rand"
	"time"
)

// SeedSource hands out a fresh seed for each new game.
type SeedSource interface {
	NextSeed() int64
}

// TimeSeeds derives seeds from the wall clock.
type TimeSeeds struct{}

// NextSeed returns the current time in nanoseconds.
func (TimeSeeds) NextSeed() int64 {
	return time.Now().UnixNano()
}

// FixedSeeds replays a recorded sequence of seeds, then falls back.
type FixedSeeds struct {
	seeds    []int64
	next     int
	fallback SeedSource
}

// NewFixedSeeds creates a source that yields seeds in order.
// Once exhausted it uses fallback; a nil fallback means TimeSeeds.
func NewFixedSeeds(seeds []int64, fallback SeedSource) *FixedSeeds {
	if fallback == nil {
		fallback = TimeSeeds{}
	}
	return &FixedSeeds{seeds: seeds, fallback: fallback}
}

// NextSeed returns the next recorded seed.
func (f *FixedSeeds) NextSeed() int64 {
	if f.next < len(f.seeds) {
		s := f.seeds[f.next]
		f.next++
		return s
	}
	return f.fallback.NextSeed()
}

// Generator draws random secrets. It is reseeded at the start of every
// game, so a secret's seed alone reproduces that secret.
type Generator struct {
	seeds    SeedSource
	rng      *rand.Rand
	lastSeed int64

	// OnSeed is called with every seed the generator is reset to.
	OnSeed func(seed int64)
}

// NewGenerator creates a generator. A nil source means TimeSeeds.
func NewGenerator(seeds SeedSource) *Generator {
	if seeds == nil {
		seeds = TimeSeeds{}
	}
	return &Generator{seeds: seeds}
}

// Random reseeds from the seed source and draws a secret of the given
// length. Colors are sampled uniformly with replacement.
func (g *Generator) Random(palette []Color, slots int) SecretCode {
	return g.FromSeed(g.seeds.NextSeed(), palette, slots)
}

// FromSeed reseeds with seed and draws a secret.
func (g *Generator) FromSeed(seed int64, palette []Color, slots int) SecretCode {
	if len(palette) == 0 {
		panic("mastermind: cannot draw from an empty palette")
	}
	g.rng = rand.New(rand.NewSource(seed))
	g.lastSeed = seed
	if g.OnSeed != nil {
		g.OnSeed(seed)
	}

	code := make(Code, slots)
	for i := range code {
		code[i] = palette[g.rng.Intn(len(palette))]
	}
	return newRandomSecret(code, seed)
}

// LastSeed returns the seed most recently used.
func (g *Generator) LastSeed() int64 {
	return g.lastSeed
}
