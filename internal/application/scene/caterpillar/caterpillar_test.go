package caterpillar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/younwookim/bqdemos/internal/application/state"
	"github.com/younwookim/bqdemos/internal/application/system"
	cp "github.com/younwookim/bqdemos/internal/domain/caterpillar"
	"github.com/younwookim/bqdemos/internal/infrastructure/results"
	"github.com/younwookim/bqdemos/internal/timing"
)

type fixture struct {
	field  *Field
	script *system.ScriptedInput
	clock  *timing.ManualClock
	store  *results.MemoryStore
	logs   *observer.ObservedLogs
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	f := &fixture{
		script: &system.ScriptedInput{},
		clock:  timing.NewManualClock(timing.At(time.Second)),
		store:  results.NewMemoryStore(10),
		logs:   logs,
	}
	seed := int64(100)
	rules := cp.DefaultRules()
	rules.Squares = 4
	f.field = New(Options{
		Rules:    rules,
		Input:    f.script,
		Store:    f.store,
		NextSeed: func() int64 { seed++; return seed },
		Logger:   zap.New(core),
	}, f.clock.Now())
	return f
}

// play runs one Update per queued frame. Frames are a second apart,
// so every frame moves the caterpillar exactly once.
func (f *fixture) play(t *testing.T, frames ...system.InputState) {
	t.Helper()
	f.script.Frames = append(f.script.Frames, frames...)
	for !f.script.Done() {
		f.clock.Advance(time.Second)
		next, err := f.field.Update(f.clock.Now())
		require.NoError(t, err)
		require.Nil(t, next)
	}
}

func hold(actions ...system.Action) system.InputState {
	var s system.ActionSet
	for _, a := range actions {
		s = s.With(a)
	}
	return system.InputState{Down: s}
}

var idle = system.InputState{}

func TestDirection(t *testing.T) {
	tests := []struct {
		name string
		held []system.Action
		want cp.Direction
	}{
		{"none", nil, cp.NoDirection},
		{"up", []system.Action{system.ActionUp}, cp.Up},
		{"right beats up", []system.Action{system.ActionUp, system.ActionRight}, cp.Right},
		{"left beats down", []system.Action{system.ActionDown, system.ActionLeft}, cp.Left},
		{"up beats down", []system.Action{system.ActionDown, system.ActionUp}, cp.Up},
		{"restart only", []system.Action{system.ActionRestart}, cp.NoDirection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Direction(hold(tt.held...).Down))
		})
	}
}

func TestField_StartsPlaying(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, state.PhasePlaying, f.field.Phase())
	assert.Equal(t, int64(101), f.field.Game().Seed())
	assert.Equal(t, cp.Point{}, f.field.Game().Head())
	_, ok := f.field.LastResult()
	assert.False(t, ok)
}

func TestField_HeldDirectionSteers(t *testing.T) {
	f := newFixture(t)
	f.play(t, hold(system.ActionDown), hold(system.ActionDown))
	assert.Equal(t, cp.Point{X: 0, Y: 2}, f.field.Game().Head())
	assert.Equal(t, cp.Down, f.field.Game().Heading())
}

func TestField_WallEndsRoundAndSavesResult(t *testing.T) {
	f := newFixture(t)
	// Straight right along the top row: x=4 leaves a 4x4 field.
	f.play(t, idle, idle, idle)
	assert.False(t, f.field.Game().Over())
	f.play(t, idle)

	require.True(t, f.field.Game().Over())
	assert.Equal(t, state.PhaseGameOver, f.field.Phase())

	r, ok := f.field.LastResult()
	require.True(t, ok)
	assert.Equal(t, GameName, r.Game)
	assert.Equal(t, results.OutcomeGameOver, r.Outcome)
	assert.Equal(t, f.field.Game().Score(), r.Score)
	assert.Equal(t, 4*time.Second, r.Duration)
	assert.Equal(t, int64(101), r.Seed)
	assert.True(t, r.HasSeed)
	assert.Equal(t, r.Score, f.field.Best())

	recent, err := f.store.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, r.ID, recent[0].ID)

	finished := f.logs.FilterMessage("game finished").All()
	require.Len(t, finished, 1)
	assert.Equal(t, int64(101), finished[0].ContextMap()["seed"])
}

func TestField_FrozenAfterGameOver(t *testing.T) {
	f := newFixture(t)
	f.play(t, idle, idle, idle, idle)
	head := f.field.Game().Head()

	f.play(t, hold(system.ActionDown), idle)
	assert.Equal(t, head, f.field.Game().Head())
	assert.Equal(t, state.PhaseGameOver, f.field.Phase())
}

func TestField_HeldRestart(t *testing.T) {
	f := newFixture(t)
	f.play(t, hold(system.ActionRestart))
	assert.Equal(t, int64(101), f.field.Game().Seed(), "restart is ignored while playing")

	f.play(t, idle, idle, idle)
	f.play(t, hold(system.ActionRestart))

	assert.Equal(t, state.PhasePlaying, f.field.Phase())
	assert.False(t, f.field.Game().Over())
	assert.Equal(t, int64(102), f.field.Game().Seed())
	assert.Equal(t, cp.Point{}, f.field.Game().Head())

	phases := f.logs.FilterMessage("phase changed").All()
	require.Len(t, phases, 2)
	assert.Equal(t, "GameOver", phases[0].ContextMap()["to"])
	assert.Equal(t, "Playing", phases[1].ContextMap()["to"])
}

func TestField_NoStore(t *testing.T) {
	script := &system.ScriptedInput{Frames: []system.InputState{idle, idle, idle, idle}}
	rules := cp.DefaultRules()
	rules.Squares = 2
	clock := timing.NewManualClock(timing.At(0))
	field := New(Options{Rules: rules, Input: script, NextSeed: func() int64 { return 1 }}, clock.Now())

	for !script.Done() {
		clock.Advance(time.Second)
		_, err := field.Update(clock.Now())
		require.NoError(t, err)
	}
	assert.True(t, field.Game().Over())
	_, ok := field.LastResult()
	assert.True(t, ok)
}

func TestGrid(t *testing.T) {
	g := NewGrid(512, 512, 16)
	assert.Equal(t, 25.0, g.OffsetX)
	assert.Equal(t, 25.0, g.OffsetY)
	assert.Equal(t, 28.875, g.Cell)
	assert.Equal(t, 462.0, g.Size())

	x, y := g.CellAt(cp.Point{X: 2, Y: 1})
	assert.Equal(t, 25+2*28.875, x)
	assert.Equal(t, 25+28.875, y)

	wide := NewGrid(800, 450, 10)
	assert.Equal(t, 200.0, wide.OffsetX)
	assert.Equal(t, 25.0, wide.OffsetY)
	assert.Equal(t, 40.0, wide.Cell)
}
