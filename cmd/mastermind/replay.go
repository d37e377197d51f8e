package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/younwookim/bqdemos/internal/application/replay"
	"github.com/younwookim/bqdemos/internal/application/scene/mastermind"
	mm "github.com/younwookim/bqdemos/internal/domain/mastermind"
	"github.com/younwookim/bqdemos/internal/timing"
)

// ReplaySummary is what a headless replay reproduced
type ReplaySummary struct {
	Frames   int
	Phase    string
	Secret   mm.Code
	Seed     string
	Finished bool
	Outcome  string
	Guesses  int
	Duration string
}

func (s ReplaySummary) String() string {
	if !s.Finished {
		return fmt.Sprintf("replayed %d frames, unfinished (%s), secret %s, %s",
			s.Frames, s.Phase, s.Secret, s.Seed)
	}
	return fmt.Sprintf("replayed %d frames, %s in %d guesses (%s), secret %s, %s",
		s.Frames, s.Outcome, s.Guesses, s.Duration, s.Secret, s.Seed)
}

// RunReplay drives a board from a recording without opening a window.
// The recorded seeds are fed back so every secret is drawn again.
func RunReplay(path string, rules mm.Rules, logger *zap.Logger) (ReplaySummary, error) {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return ReplaySummary{}, err
	}
	if data.Game != mastermind.GameName {
		return ReplaySummary{}, fmt.Errorf("replay %s records %q, not %q", path, data.Game, mastermind.GameName)
	}

	replayer := replay.NewReplayer(*data)
	board := mastermind.New(mastermind.Options{
		Rules:     rules,
		Input:     replayer,
		Generator: mm.NewGenerator(mm.NewFixedSeeds(replayer.Seeds(), nil)),
		Logger:    logger,
	}, replayer.Origin())

	for !replayer.Done() {
		if _, err := board.Update(replayer.Now()); err != nil {
			return ReplaySummary{}, fmt.Errorf("frame %d: %w", replayer.CurrentFrame(), err)
		}
	}

	secret := board.Session().Secret()
	summary := ReplaySummary{
		Frames: replayer.TotalFrames(),
		Phase:  board.Phase().String(),
		Secret: secret.Code(),
		Seed:   secret.SeedText(),
	}
	if r, ok := board.LastResult(); ok {
		summary.Finished = true
		summary.Outcome = string(r.Outcome)
		summary.Guesses = r.Guesses
		summary.Duration = timing.FormatClock(r.Duration)
	}
	return summary, nil
}
