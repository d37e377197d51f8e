package mastermind

import (
	"time"

	"github.com/younwookim/bqdemos/internal/timing"
)

// GameState is one of InProgress, EditPassword, Victory or TooManyGuesses.
// Payload fields are only reachable after a type switch.
type GameState interface {
	isGameState()
}

// InProgress is the guessing phase.
type InProgress struct {
	StartTime timing.Timestamp
	Row       WorkingRow
}

func (InProgress) isGameState() {}

// EditPassword lets the player set the secret by hand.
type EditPassword struct{}

func (EditPassword) isGameState() {}

// Victory means the last guess matched the secret.
type Victory struct {
	TotalTime time.Duration
}

func (Victory) isGameState() {}

// TooManyGuesses means the guess limit was reached without a match.
type TooManyGuesses struct{}

func (TooManyGuesses) isGameState() {}

// Ended reports whether s is a terminal (for guessing) state.
func Ended(s GameState) bool {
	switch s.(type) {
	case Victory, TooManyGuesses:
		return true
	default:
		return false
	}
}
