// Package results stores finished games: an in-memory store for local runs
// and a Redis store that also keeps a fastest-win leaderboard.
package results

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned by Get for an unknown ID.
var ErrNotFound = errors.New("result not found")

// Outcome is how a game ended
type Outcome string

const (
	OutcomeVictory        Outcome = "victory"
	OutcomeTooManyGuesses Outcome = "too_many_guesses"
	OutcomeGameOver       Outcome = "game_over"
)

// Result is one finished game.
type Result struct {
	ID         string        `json:"id"`
	Game       string        `json:"game"`
	Outcome    Outcome       `json:"outcome"`
	Guesses    int           `json:"guesses,omitempty"`
	Score      int           `json:"score,omitempty"`
	Duration   time.Duration `json:"duration"`
	Seed       int64         `json:"seed,omitempty"`
	HasSeed    bool          `json:"hasSeed,omitempty"`
	FinishedAt time.Time     `json:"finishedAt"`
}

// New returns a result with a fresh ID, finished at the current wall time.
func New(game string, outcome Outcome, duration time.Duration) Result {
	return Result{
		ID:         uuid.NewString(),
		Game:       game,
		Outcome:    outcome,
		Duration:   duration,
		FinishedAt: time.Now().UTC(),
	}
}

// Won reports whether the result counts toward the fastest list
func (r Result) Won() bool {
	return r.Outcome == OutcomeVictory
}

// Store persists results.
type Store interface {
	Save(ctx context.Context, r Result) error
	Get(ctx context.Context, id string) (Result, error)
	// Fastest returns up to n wins ordered by duration, shortest first.
	Fastest(ctx context.Context, n int) ([]Result, error)
	// Recent returns up to n results, newest first.
	Recent(ctx context.Context, n int) ([]Result, error)
	Close() error
}
