// Package state flattens the per-game state machines into one Phase value
// that scenes use for HUD colors and transition logging.
package state

import (
	"github.com/younwookim/bqdemos/internal/domain/mastermind"
	"github.com/younwookim/bqdemos/internal/domain/turntimer"
)

// Phase represents the coarse state of the running scene
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseEditPassword
	PhaseVictory
	PhaseDefeat
	PhasePaused
	PhaseRunning
	PhaseGameOver
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseEditPassword:
		return "EditPassword"
	case PhaseVictory:
		return "Victory"
	case PhaseDefeat:
		return "TooManyGuesses"
	case PhasePaused:
		return "Paused"
	case PhaseRunning:
		return "Running"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Ended reports whether the phase finishes a round
func (p Phase) Ended() bool {
	return p == PhaseVictory || p == PhaseDefeat || p == PhaseGameOver
}

// FromMastermind maps a mastermind game state to its phase
func FromMastermind(s mastermind.GameState) Phase {
	switch s.(type) {
	case mastermind.EditPassword:
		return PhaseEditPassword
	case mastermind.Victory:
		return PhaseVictory
	case mastermind.TooManyGuesses:
		return PhaseDefeat
	default:
		return PhasePlaying
	}
}

// FromTimer maps a turn timer state to its phase
func FromTimer(s turntimer.TimerState) Phase {
	if _, ok := s.(turntimer.Running); ok {
		return PhaseRunning
	}
	return PhasePaused
}
