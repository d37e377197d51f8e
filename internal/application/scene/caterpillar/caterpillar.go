// Package caterpillar provides the grid snake scene.
package caterpillar

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/younwookim/bqdemos/internal/application/scene"
	"github.com/younwookim/bqdemos/internal/application/state"
	"github.com/younwookim/bqdemos/internal/application/system"
	cp "github.com/younwookim/bqdemos/internal/domain/caterpillar"
	"github.com/younwookim/bqdemos/internal/infrastructure/obslog"
	"github.com/younwookim/bqdemos/internal/infrastructure/results"
	"github.com/younwookim/bqdemos/internal/timing"
)

// GameName tags stored results
const GameName = "caterpillar"

const storeTimeout = 500 * time.Millisecond

// Options configures a field scene. Rules and Input are required.
type Options struct {
	Rules    cp.Rules
	Input    system.InputSource
	Bindings system.Bindings
	Store    results.Store // nil skips result persistence
	NextSeed func() int64  // nil seeds from the wall clock
	Logger   *zap.Logger
}

// Field is the caterpillar scene
type Field struct {
	game     *cp.Game
	rules    cp.Rules
	input    system.InputSource
	bindings system.Bindings
	store    results.Store
	nextSeed func() int64
	log      *zap.Logger

	phase     state.Phase
	startedAt timing.Timestamp
	best      int
	last      *results.Result
}

// New creates the scene and starts the first round at now.
// Panics if opts.Rules is invalid.
func New(opts Options, now timing.Timestamp) *Field {
	log := opts.Logger
	if log == nil {
		log = obslog.L()
	}
	next := opts.NextSeed
	if next == nil {
		next = func() int64 { return time.Now().UnixNano() }
	}
	f := &Field{
		rules:    opts.Rules,
		input:    opts.Input,
		bindings: opts.Bindings,
		store:    opts.Store,
		nextSeed: next,
		log:      log.With(zap.String("scene", GameName)),
	}
	f.start(now)
	return f
}

// Game exposes the running round for inspection
func (f *Field) Game() *cp.Game {
	return f.game
}

// Phase returns PhasePlaying or PhaseGameOver
func (f *Field) Phase() state.Phase {
	return f.phase
}

// Best returns the highest score of this session
func (f *Field) Best() int {
	return f.best
}

// LastResult returns the result of the most recently finished round.
func (f *Field) LastResult() (results.Result, bool) {
	if f.last == nil {
		return results.Result{}, false
	}
	return *f.last, true
}

// Direction picks the held heading. Right wins over left, left over up,
// up over down.
func Direction(held system.ActionSet) cp.Direction {
	switch {
	case held.Has(system.ActionRight):
		return cp.Right
	case held.Has(system.ActionLeft):
		return cp.Left
	case held.Has(system.ActionUp):
		return cp.Up
	case held.Has(system.ActionDown):
		return cp.Down
	default:
		return cp.NoDirection
	}
}

// Update implements scene.Scene
func (f *Field) Update(now timing.Timestamp) (scene.Scene, error) {
	in := f.input.GetInput()

	if f.game.Over() {
		if in.Down.Has(system.ActionRestart) {
			f.start(now)
		}
		return nil, nil
	}

	score := f.game.Score()
	if !f.game.Update(Direction(in.Down), now) {
		return nil, nil
	}
	if f.game.Score() > score {
		f.log.Debug("fruit eaten",
			zap.Int("score", f.game.Score()),
			zap.Int("length", f.game.Length()),
			zap.Duration("tick", f.game.Tick()),
		)
	}
	if f.game.Over() {
		f.setPhase(state.PhaseGameOver)
		f.finish(now)
	}
	return nil, nil
}

func (f *Field) start(now timing.Timestamp) {
	seed := f.nextSeed()
	f.game = cp.NewGame(f.rules, seed, now)
	f.startedAt = now
	f.setPhase(state.PhasePlaying)
	f.log.Debug("round started", zap.Int64("seed", seed))
}

func (f *Field) setPhase(next state.Phase) {
	if next == f.phase {
		return
	}
	f.log.Info("phase changed",
		zap.Stringer("from", f.phase),
		zap.Stringer("to", next),
	)
	f.phase = next
}

func (f *Field) finish(now timing.Timestamp) {
	duration := now.Sub(f.startedAt)
	r := results.New(GameName, results.OutcomeGameOver, duration)
	r.Score = f.game.Score()
	r.Seed, r.HasSeed = f.game.Seed(), true
	f.last = &r
	if r.Score > f.best {
		f.best = r.Score
	}

	f.log.Info("game finished",
		zap.Int("score", r.Score),
		zap.Int("length", f.game.Length()),
		zap.Duration("duration", duration),
		zap.Int64("seed", r.Seed),
	)

	if f.store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	if err := f.store.Save(ctx, r); err != nil {
		f.log.Warn("failed to save result", zap.Error(err))
	}
}

// OnEnter implements scene.Scene
func (f *Field) OnEnter() {
	f.log.Info("field ready",
		zap.Int("squares", f.rules.Squares),
		zap.Duration("tick", f.rules.InitialTick),
	)
}

// OnExit implements scene.Scene
func (f *Field) OnExit() {
	f.log.Info("field closed", zap.Int("best", f.best))
}
