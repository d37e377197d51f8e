// Package mastermind provides the Mastermind board scene.
package mastermind

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/younwookim/bqdemos/internal/application/replay"
	"github.com/younwookim/bqdemos/internal/application/scene"
	"github.com/younwookim/bqdemos/internal/application/state"
	"github.com/younwookim/bqdemos/internal/application/system"
	mm "github.com/younwookim/bqdemos/internal/domain/mastermind"
	"github.com/younwookim/bqdemos/internal/infrastructure/obslog"
	"github.com/younwookim/bqdemos/internal/infrastructure/results"
	"github.com/younwookim/bqdemos/internal/timing"
)

// GameName tags recordings and stored results
const GameName = "mastermind"

const storeTimeout = 500 * time.Millisecond

// Options configures a board scene. Only Rules and Input are required.
type Options struct {
	Rules     mm.Rules
	Input     system.InputSource
	Bindings  system.Bindings // used for on-screen hints
	Generator *mm.Generator   // nil draws time-seeded secrets
	Store     results.Store   // nil skips result persistence
	Recorder  *replay.Recorder

	// RecordPath is where F5 and finished games write the recording.
	// Empty generates a timestamped name.
	RecordPath string
	Logger     *zap.Logger
}

// Board is the Mastermind scene
type Board struct {
	session  *mm.Session
	layout   Layout
	input    system.InputSource
	bindings system.Bindings
	store    results.Store
	log      *zap.Logger

	recorder   *replay.Recorder
	recordPath string

	phase     state.Phase
	startedAt timing.Timestamp

	// Presentation
	numbers    bool
	mouseX     int
	mouseY     int
	mouseMoved bool
	best       time.Duration
	hasBest    bool
	last       *results.Result
}

// New creates the board and draws the first secret at now.
// Panics if opts.Rules is invalid.
func New(opts Options, now timing.Timestamp) *Board {
	log := opts.Logger
	if log == nil {
		log = obslog.L()
	}
	gen := opts.Generator
	if gen == nil {
		gen = mm.NewGenerator(nil)
	}

	b := &Board{
		layout:     NewLayout(opts.Rules),
		input:      opts.Input,
		bindings:   opts.Bindings,
		store:      opts.Store,
		log:        log.With(zap.String("scene", GameName)),
		recorder:   opts.Recorder,
		recordPath: opts.RecordPath,
	}

	// Hook before the first draw so the recording holds every seed.
	prev := gen.OnSeed
	gen.OnSeed = func(seed int64) {
		if b.recorder != nil {
			b.recorder.RecordSeed(seed)
		}
		b.log.Debug("secret drawn", zap.Int64("seed", seed))
		if prev != nil {
			prev(seed)
		}
	}

	b.session = mm.NewSession(opts.Rules, gen, now)
	b.phase = state.FromMastermind(b.session.State())
	b.startedAt = now
	b.refreshBest()
	return b
}

// Session exposes the game for inspection
func (b *Board) Session() *mm.Session {
	return b.session
}

// Phase returns the phase as of the end of the last update
func (b *Board) Phase() state.Phase {
	return b.phase
}

// LastResult returns the result of the most recently finished game.
func (b *Board) LastResult() (results.Result, bool) {
	if b.last == nil {
		return results.Result{}, false
	}
	return *b.last, true
}

// NumbersShown reports whether the number overlay is on
func (b *Board) NumbersShown() bool {
	return b.numbers
}

// Update implements scene.Scene
func (b *Board) Update(now timing.Timestamp) (scene.Scene, error) {
	in := b.input.GetInput()
	if b.recorder != nil {
		b.recorder.RecordFrame(now, in)
	}

	if in.MouseX != 0 || in.MouseY != 0 {
		b.mouseMoved = true
	}
	b.mouseX, b.mouseY = in.MouseX, in.MouseY

	if in.Pressed.Has(system.ActionToggleNumbers) {
		b.numbers = !b.numbers
	}
	if in.Pressed.Has(system.ActionCopySeed) {
		b.copySeed()
	}
	if in.Pressed.Has(system.ActionSaveRecording) {
		b.saveRecording()
	}

	for _, intent := range b.intents(in) {
		if !b.session.Apply(intent, now) {
			continue
		}
		if _, ok := intent.(mm.Submit); ok {
			h := b.session.History()
			g := h[len(h)-1]
			b.log.Debug("guess submitted",
				zap.Stringer("guess", g.Guess),
				zap.Int("correct", g.Correct),
				zap.Int("misplaced", g.Misplaced),
				zap.Int("guesses", len(h)),
			)
		}
	}

	b.syncPhase(now)
	return nil, nil
}

// intents translates one frame of input using the phase the frame started
// in, so a key shared by two phases (space) acts once.
func (b *Board) intents(in system.InputState) []mm.Intent {
	var out []mm.Intent
	rules := b.session.Rules()
	mx, my := float64(in.MouseX), float64(in.MouseY)

	selectColor := func() {
		if in.Digit >= 1 && in.Digit <= len(rules.Palette) {
			out = append(out, mm.SelectColor{Color: rules.Palette[in.Digit-1]})
		}
		if in.LeftClick {
			if k, ok := b.layout.SwatchAt(mx, my); ok {
				out = append(out, mm.SelectColor{Color: rules.Palette[k]})
			}
		}
	}

	switch b.phase {
	case state.PhasePlaying:
		selectColor()
		active := b.layout.ActiveRow(b.session.GuessCount())
		if i, j, ok := b.layout.SlotAt(mx, my); ok && j == active {
			if in.LeftClick {
				out = append(out, mm.SetSlot{Index: i})
			}
			if in.RightClick {
				out = append(out, mm.ClearSlot{Index: i})
			}
		}
		if in.Pressed.Has(system.ActionSubmit) {
			out = append(out, mm.Submit{})
		}
		if in.Pressed.Has(system.ActionToggleEdit) {
			out = append(out, mm.ToggleEditPassword{})
		}

	case state.PhaseEditPassword:
		selectColor()
		if i, j, ok := b.layout.SlotAt(mx, my); ok && j == 0 && in.LeftClick {
			out = append(out, mm.SetSecretSlot{Index: i})
		}
		if in.Pressed.Has(system.ActionToggleEdit) {
			out = append(out, mm.ToggleEditPassword{})
		}

	case state.PhaseVictory, state.PhaseDefeat:
		if in.Pressed.Has(system.ActionReplay) {
			out = append(out, mm.ReplaySamePassword{})
		} else if in.Pressed.Has(system.ActionNewPassword) {
			out = append(out, mm.NewPassword{})
		}
	}
	return out
}

func (b *Board) syncPhase(now timing.Timestamp) {
	st := b.session.State()
	if ip, ok := st.(mm.InProgress); ok {
		b.startedAt = ip.StartTime
	}

	next := state.FromMastermind(st)
	if next == b.phase {
		return
	}
	b.log.Info("phase changed",
		zap.Stringer("from", b.phase),
		zap.Stringer("to", next),
	)
	prev := b.phase
	b.phase = next
	if next.Ended() && !prev.Ended() {
		b.finish(st, now)
	}
}

func (b *Board) finish(st mm.GameState, now timing.Timestamp) {
	outcome := results.OutcomeTooManyGuesses
	duration := now.Sub(b.startedAt)
	if v, ok := st.(mm.Victory); ok {
		outcome = results.OutcomeVictory
		duration = v.TotalTime
	}

	r := results.New(GameName, outcome, duration)
	r.Guesses = b.session.GuessCount()
	r.Seed, r.HasSeed = b.session.Secret().Seed()
	b.last = &r

	fields := []zap.Field{
		zap.String("outcome", string(outcome)),
		zap.Int("guesses", r.Guesses),
		zap.Duration("duration", duration),
		zap.String("seed", b.session.Secret().SeedText()),
	}
	if outcome == results.OutcomeVictory {
		fields = append(fields, zap.String("title", mm.WinTitle(r.Guesses)))
	}
	b.log.Info("game finished", fields...)

	if b.store != nil {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		if err := b.store.Save(ctx, r); err != nil {
			b.log.Warn("failed to save result", zap.Error(err))
		}
		b.refreshBest()
	}

	if b.recorder != nil {
		b.saveRecording()
	}
}

func (b *Board) refreshBest() {
	if b.store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	top, err := b.store.Fastest(ctx, 1)
	if err != nil {
		b.log.Warn("failed to load fastest result", zap.Error(err))
		return
	}
	if len(top) > 0 {
		b.best, b.hasBest = top[0].Duration, true
	}
}

// copySeed logs the seed of the current secret. There is no portable
// clipboard, so the log line is where players copy it from.
func (b *Board) copySeed() {
	secret := b.session.Secret()
	if seed, ok := secret.Seed(); ok {
		b.log.Info("seed", zap.Int64("seed", seed))
		return
	}
	b.log.Info("seed", zap.String("seed", "N/A"), zap.Stringer("provenance", secret.Provenance()))
}

func (b *Board) saveRecording() {
	if b.recorder == nil {
		return
	}
	path := b.recordPath
	if path == "" {
		path = replay.GenerateFilename(GameName)
	}
	if err := b.recorder.Save(path); err != nil {
		b.log.Warn("failed to save recording", zap.String("path", path), zap.Error(err))
		return
	}
	b.log.Info("recording saved", zap.String("path", path), zap.Int("frames", b.recorder.FrameCount()))
}

// OnEnter implements scene.Scene
func (b *Board) OnEnter() {
	b.log.Info("board ready",
		zap.Int("slots", b.layout.Slots),
		zap.Int("guesses", b.layout.Guesses),
		zap.String("seed", b.session.Secret().SeedText()),
	)
}

// OnExit implements scene.Scene
func (b *Board) OnExit() {
	if b.recorder != nil && b.recorder.IsRecording() {
		b.saveRecording()
		b.recorder.Stop()
	}
}
