package mastermind

import (
	"fmt"
	"strings"
)

// Code is an ordered, fully resolved sequence of colors.
type Code []Color

// Equal reports whether both codes have the same colors in the same order.
func (c Code) Equal(other Code) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (c Code) Clone() Code {
	out := make(Code, len(c))
	copy(out, c)
	return out
}

func (c Code) String() string {
	parts := make([]string, len(c))
	for i, col := range c {
		parts[i] = col.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Provenance records where a secret came from.
type Provenance interface {
	isProvenance()
	fmt.Stringer
}

// RandomSeed marks a secret drawn from a seeded generator.
type RandomSeed struct {
	Seed int64
}

func (RandomSeed) isProvenance() {}

func (p RandomSeed) String() string { return fmt.Sprintf("random(seed=%d)", p.Seed) }

// PlayerSpecified marks a secret set by hand. There is no seed.
type PlayerSpecified struct{}

func (PlayerSpecified) isProvenance() {}

func (PlayerSpecified) String() string { return "player" }

// SecretCode is the immutable hidden code plus its provenance.
// Edits produce a new SecretCode; the old one is never mutated.
type SecretCode struct {
	code       Code
	provenance Provenance
}

// NewPlayerSecret wraps an explicit code with PlayerSpecified provenance.
func NewPlayerSecret(code Code) SecretCode {
	return SecretCode{code: code.Clone(), provenance: PlayerSpecified{}}
}

func newRandomSecret(code Code, seed int64) SecretCode {
	return SecretCode{code: code, provenance: RandomSeed{Seed: seed}}
}

// Code returns a copy of the secret colors.
func (s SecretCode) Code() Code {
	return s.code.Clone()
}

// Len returns the number of slots.
func (s SecretCode) Len() int {
	return len(s.code)
}

// At returns the color in slot i.
func (s SecretCode) At(i int) Color {
	return s.code[i]
}

// Provenance returns how the secret was created.
func (s SecretCode) Provenance() Provenance {
	return s.provenance
}

// Seed returns the generator seed, if the secret was drawn randomly.
func (s SecretCode) Seed() (int64, bool) {
	if p, ok := s.provenance.(RandomSeed); ok {
		return p.Seed, true
	}
	return 0, false
}

// SeedText is the human-readable seed line shown under the board.
func (s SecretCode) SeedText() string {
	if seed, ok := s.Seed(); ok {
		return fmt.Sprintf("Seed: %d", seed)
	}
	return "Seed: N/A"
}

// WithSlot returns a player-specified copy with slot i replaced by c.
func (s SecretCode) WithSlot(i int, c Color) SecretCode {
	code := s.code.Clone()
	code[i] = c
	return SecretCode{code: code, provenance: PlayerSpecified{}}
}
