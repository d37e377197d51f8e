package mastermind

import "fmt"

// ScoredGuess is a submitted guess and its key pegs.
type ScoredGuess struct {
	Guess     Code
	Correct   int // right color, right slot
	Misplaced int // right color, wrong slot, bounded by unmatched multiplicity
}

// Solved reports whether every slot was a correct hit.
func (s ScoredGuess) Solved() bool {
	return s.Correct == len(s.Guess)
}

// Evaluate scores guess against secret.
//
// The first pass counts exact matches and tallies the colors of the
// remaining positions on each side. The second pass pairs those leftovers:
// each color contributes min(guess count, secret count) misplaced hits.
// Swapping the arguments yields the same counts.
//
// Panics if the codes differ in length.
func Evaluate(guess, secret Code) ScoredGuess {
	if len(guess) != len(secret) {
		panic(fmt.Sprintf("mastermind: guess has %d slots, secret has %d", len(guess), len(secret)))
	}

	var guessLeft, secretLeft [numColors]int
	correct := 0
	for i := range guess {
		if guess[i] == secret[i] {
			correct++
			continue
		}
		guessLeft[guess[i]]++
		secretLeft[secret[i]]++
	}

	misplaced := 0
	for c := range guessLeft {
		misplaced += min(guessLeft[c], secretLeft[c])
	}

	return ScoredGuess{
		Guess:     guess.Clone(),
		Correct:   correct,
		Misplaced: misplaced,
	}
}
