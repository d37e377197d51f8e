package mastermind

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/younwookim/bqdemos/internal/application/replay"
	"github.com/younwookim/bqdemos/internal/application/state"
	"github.com/younwookim/bqdemos/internal/application/system"
	mm "github.com/younwookim/bqdemos/internal/domain/mastermind"
	"github.com/younwookim/bqdemos/internal/infrastructure/results"
	"github.com/younwookim/bqdemos/internal/timing"
)

type fixture struct {
	board  *Board
	script *system.ScriptedInput
	clock  *timing.ManualClock
	store  *results.MemoryStore
	logs   *observer.ObservedLogs
}

func newFixture(t *testing.T, rules mm.Rules, seeds ...int64) *fixture {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	f := &fixture{
		script: &system.ScriptedInput{},
		clock:  timing.NewManualClock(timing.At(time.Second)),
		store:  results.NewMemoryStore(10),
		logs:   logs,
	}
	f.board = New(Options{
		Rules:     rules,
		Input:     f.script,
		Generator: mm.NewGenerator(mm.NewFixedSeeds(seeds, nil)),
		Store:     f.store,
		Logger:    zap.New(core),
	}, f.clock.Now())
	return f
}

// play queues frames and runs one Update per frame, a second apart.
func (f *fixture) play(t *testing.T, frames ...system.InputState) {
	t.Helper()
	f.script.Frames = append(f.script.Frames, frames...)
	for !f.script.Done() {
		f.clock.Advance(time.Second)
		next, err := f.board.Update(f.clock.Now())
		require.NoError(t, err)
		require.Nil(t, next)
	}
}

func press(a system.Action) system.InputState {
	return system.InputState{Pressed: system.ActionSet(0).With(a)}
}

func click(l Layout, i, j int) system.InputState {
	x, y := l.SlotCenter(i, j)
	return system.InputState{LeftClick: true, MouseX: int(x), MouseY: int(y)}
}

func rightClick(l Layout, i, j int) system.InputState {
	in := click(l, i, j)
	in.LeftClick, in.RightClick = false, true
	return in
}

func paletteDigit(rules mm.Rules, c mm.Color) int {
	for k, p := range rules.Palette {
		if p == c {
			return k + 1
		}
	}
	return 0
}

// fill selects each color by digit and clicks it into row j.
func fill(b *Board, code mm.Code, j int) []system.InputState {
	var out []system.InputState
	for i, c := range code {
		out = append(out, system.InputState{Digit: paletteDigit(b.session.Rules(), c)}, click(b.layout, i, j))
	}
	return out
}

// wrongCode differs from the secret in every slot.
func wrongCode(b *Board) mm.Code {
	secret := b.session.Secret().Code()
	palette := b.session.Rules().Palette
	out := make(mm.Code, len(secret))
	for i, c := range secret {
		out[i] = palette[0]
		if c == palette[0] {
			out[i] = palette[1]
		}
	}
	return out
}

func TestBoard_StartsPlaying(t *testing.T) {
	f := newFixture(t, mm.DefaultRules(), 42)

	assert.Equal(t, state.PhasePlaying, f.board.Phase())
	seed, ok := f.board.Session().Secret().Seed()
	assert.True(t, ok)
	assert.Equal(t, int64(42), seed)
	assert.Equal(t, 1, f.logs.FilterMessage("secret drawn").Len())
}

func TestBoard_WinSavesResult(t *testing.T) {
	f := newFixture(t, mm.DefaultRules(), 42)
	b := f.board
	secret := b.session.Secret().Code()

	frames := fill(b, secret, b.layout.ActiveRow(0))
	frames = append(frames, press(system.ActionSubmit))
	f.play(t, frames...)

	assert.Equal(t, state.PhaseVictory, b.Phase())
	r, ok := b.LastResult()
	require.True(t, ok)
	assert.Equal(t, results.OutcomeVictory, r.Outcome)
	assert.Equal(t, 1, r.Guesses)
	assert.Equal(t, time.Duration(len(frames))*time.Second, r.Duration)
	assert.Equal(t, int64(42), r.Seed)
	assert.True(t, r.HasSeed)

	fastest, err := f.store.Fastest(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, fastest, 1)
	assert.Equal(t, r.ID, fastest[0].ID)

	finished := f.logs.FilterMessage("game finished").All()
	require.Len(t, finished, 1)
	assert.Equal(t, "LUCKER DUCKER", finished[0].ContextMap()["title"])
	assert.Equal(t, 1, f.logs.FilterMessage("guess submitted").Len())
}

func TestBoard_SubmitAndNewPasswordShareSpace(t *testing.T) {
	f := newFixture(t, mm.DefaultRules(), 42, 43)
	b := f.board

	// Space submits and starts a new password; only the first applies per frame.
	both := system.ActionSet(0).With(system.ActionSubmit).With(system.ActionNewPassword)
	frames := fill(b, b.session.Secret().Code(), b.layout.ActiveRow(0))
	frames = append(frames, system.InputState{Pressed: both})
	f.play(t, frames...)

	assert.Equal(t, state.PhaseVictory, b.Phase())
	seed, _ := b.session.Secret().Seed()
	assert.Equal(t, int64(42), seed)

	f.play(t, system.InputState{Pressed: both})
	assert.Equal(t, state.PhasePlaying, b.Phase())
	seed, _ = b.session.Secret().Seed()
	assert.Equal(t, int64(43), seed)
	assert.Equal(t, 0, b.session.GuessCount())
}

func TestBoard_ReplaySamePassword(t *testing.T) {
	f := newFixture(t, mm.DefaultRules(), 42, 43)
	b := f.board
	before := b.session.Secret().Code()

	frames := fill(b, before, b.layout.ActiveRow(0))
	frames = append(frames, press(system.ActionSubmit), press(system.ActionReplay))
	f.play(t, frames...)

	assert.Equal(t, state.PhasePlaying, b.Phase())
	assert.Equal(t, before, b.session.Secret().Code())
}

func TestBoard_LoseAfterMaxGuesses(t *testing.T) {
	rules := mm.Rules{Palette: mm.DefaultPalette(), Slots: 4, MaxGuesses: 2}
	f := newFixture(t, rules, 7)
	b := f.board
	wrong := wrongCode(b)

	var frames []system.InputState
	for g := 0; g < 2; g++ {
		frames = append(frames, fill(b, wrong, b.layout.ActiveRow(g))...)
		frames = append(frames, press(system.ActionSubmit))
	}
	f.play(t, frames...)

	assert.Equal(t, state.PhaseDefeat, b.Phase())
	r, ok := b.LastResult()
	require.True(t, ok)
	assert.Equal(t, results.OutcomeTooManyGuesses, r.Outcome)
	assert.Equal(t, 2, r.Guesses)
	assert.Equal(t, time.Duration(len(frames))*time.Second, r.Duration)

	fastest, err := f.store.Fastest(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, fastest)
	recent, err := f.store.Recent(context.Background(), 5)
	require.NoError(t, err)
	assert.Len(t, recent, 1)
}

func TestBoard_ClicksOnlyReachActiveRow(t *testing.T) {
	f := newFixture(t, mm.DefaultRules(), 42)
	b := f.board
	l := b.layout

	f.play(t,
		system.InputState{Digit: 3},
		click(l, 1, 3),              // not the active row
		click(l, 2, 0),              // secret row
		click(l, 1, l.ActiveRow(0)), // active row
		rightClick(l, 1, 5),         // not the active row
	)

	ip, ok := b.session.State().(mm.InProgress)
	require.True(t, ok)
	assert.Equal(t, mm.WorkingRow{mm.NoColor, mm.Yellow, mm.NoColor, mm.NoColor}, ip.Row)

	f.play(t, rightClick(l, 1, l.ActiveRow(0)))
	ip = b.session.State().(mm.InProgress)
	assert.True(t, ip.Row.IsEmpty())
}

func TestBoard_IncompleteSubmitIgnored(t *testing.T) {
	f := newFixture(t, mm.DefaultRules(), 42)
	b := f.board

	f.play(t, click(b.layout, 0, b.layout.ActiveRow(0)), press(system.ActionSubmit))

	assert.Equal(t, 0, b.session.GuessCount())
	assert.Equal(t, 0, f.logs.FilterMessage("guess submitted").Len())
}

func TestBoard_SwatchClickSelects(t *testing.T) {
	f := newFixture(t, mm.DefaultRules(), 42)
	b := f.board

	x, y := b.layout.SwatchCenter(4)
	f.play(t, system.InputState{LeftClick: true, MouseX: int(x), MouseY: int(y)})

	assert.Equal(t, mm.Blue, b.session.Selected())
}

func TestBoard_DigitOutsidePaletteIgnored(t *testing.T) {
	f := newFixture(t, mm.DefaultRules(), 42)

	f.play(t, system.InputState{Digit: 9})

	assert.Equal(t, mm.Red, f.board.session.Selected())
}

func TestBoard_EditPassword(t *testing.T) {
	f := newFixture(t, mm.DefaultRules(), 42)
	b := f.board

	f.play(t,
		press(system.ActionToggleEdit),
		system.InputState{Digit: 2},
		click(b.layout, 0, 0),
		click(b.layout, 1, b.layout.ActiveRow(0)), // ignored while editing
	)

	assert.Equal(t, state.PhaseEditPassword, b.Phase())
	assert.Equal(t, mm.Orange, b.session.Secret().At(0))
	assert.Equal(t, "Seed: N/A", b.session.Secret().SeedText())

	f.play(t, press(system.ActionToggleEdit))
	assert.Equal(t, state.PhasePlaying, b.Phase())
	assert.Equal(t, 2, f.logs.FilterMessage("phase changed").Len())
}

func TestBoard_EditPasswordBlockedAfterGuess(t *testing.T) {
	f := newFixture(t, mm.DefaultRules(), 42)
	b := f.board

	frames := fill(b, wrongCode(b), b.layout.ActiveRow(0))
	frames = append(frames, press(system.ActionSubmit), press(system.ActionToggleEdit))
	f.play(t, frames...)

	assert.Equal(t, state.PhasePlaying, b.Phase())
}

func TestBoard_ToggleNumbersAndCopySeed(t *testing.T) {
	f := newFixture(t, mm.DefaultRules(), 42)

	f.play(t, press(system.ActionToggleNumbers))
	assert.True(t, f.board.NumbersShown())
	f.play(t, press(system.ActionToggleNumbers), press(system.ActionCopySeed))
	assert.False(t, f.board.NumbersShown())

	seeds := f.logs.FilterMessage("seed").All()
	require.Len(t, seeds, 1)
	assert.Equal(t, int64(42), seeds[0].ContextMap()["seed"])
}

func TestBoard_RecordingReplaysToSameOutcome(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	origin := timing.At(time.Second)
	rec := replay.NewRecorder(GameName, origin)
	script := &system.ScriptedInput{}
	clock := timing.NewManualClock(origin)

	b := New(Options{
		Rules:      mm.DefaultRules(),
		Input:      script,
		Generator:  mm.NewGenerator(mm.NewFixedSeeds([]int64{99}, nil)),
		Recorder:   rec,
		RecordPath: path,
		Logger:     zap.NewNop(),
	}, origin)

	wrong := wrongCode(b)
	script.Frames = append(script.Frames, fill(b, wrong, b.layout.ActiveRow(0))...)
	script.Frames = append(script.Frames, press(system.ActionSubmit))
	script.Frames = append(script.Frames, fill(b, b.session.Secret().Code(), b.layout.ActiveRow(1))...)
	script.Frames = append(script.Frames, press(system.ActionSubmit))
	for !script.Done() {
		clock.Advance(250 * time.Millisecond)
		_, err := b.Update(clock.Now())
		require.NoError(t, err)
	}
	want, ok := b.LastResult()
	require.True(t, ok)

	// Finishing a game writes the recording.
	_, err := os.Stat(path)
	require.NoError(t, err)
	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, []int64{99}, data.Seeds)

	replayer := replay.NewReplayer(*data)
	again := New(Options{
		Rules:     mm.DefaultRules(),
		Input:     replayer,
		Generator: mm.NewGenerator(mm.NewFixedSeeds(replayer.Seeds(), nil)),
		Logger:    zap.NewNop(),
	}, replayer.Origin())
	for !replayer.Done() {
		_, err := again.Update(replayer.Now())
		require.NoError(t, err)
	}

	got, ok := again.LastResult()
	require.True(t, ok)
	assert.Equal(t, want.Outcome, got.Outcome)
	assert.Equal(t, want.Guesses, got.Guesses)
	assert.Equal(t, want.Duration, got.Duration)
	assert.Equal(t, b.session.Secret().Code(), again.session.Secret().Code())
}

func TestBoard_OnExitSavesRecording(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exit.json")
	rec := replay.NewRecorder(GameName, timing.At(0))
	b := New(Options{
		Rules:      mm.DefaultRules(),
		Input:      &system.ScriptedInput{Frames: []system.InputState{{Digit: 2}}},
		Recorder:   rec,
		RecordPath: path,
		Logger:     zap.NewNop(),
	}, timing.At(0))

	_, err := b.Update(timing.At(time.Millisecond))
	require.NoError(t, err)
	b.OnExit()

	assert.False(t, rec.IsRecording())
	_, err = os.Stat(path)
	assert.NoError(t, err)
}
