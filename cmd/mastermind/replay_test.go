package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/younwookim/bqdemos/internal/application/replay"
	"github.com/younwookim/bqdemos/internal/application/scene/mastermind"
	"github.com/younwookim/bqdemos/internal/application/system"
	mm "github.com/younwookim/bqdemos/internal/domain/mastermind"
	"github.com/younwookim/bqdemos/internal/infrastructure/results"
	"github.com/younwookim/bqdemos/internal/timing"
)

// rowInputs selects each color by digit and clicks it into row j.
func rowInputs(rules mm.Rules, l mastermind.Layout, code mm.Code, j int) []system.InputState {
	var out []system.InputState
	for i, c := range code {
		digit := 0
		for k, p := range rules.Palette {
			if p == c {
				digit = k + 1
			}
		}
		x, y := l.SlotCenter(i, j)
		out = append(out,
			system.InputState{Digit: digit},
			system.InputState{LeftClick: true, MouseX: int(x), MouseY: int(y)},
		)
	}
	return out
}

// record plays a wrong guess then the secret on a live board and saves the recording.
func record(t *testing.T, rules mm.Rules, seed int64) (string, results.Result) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.json")
	origin := timing.At(time.Second)
	clock := timing.NewManualClock(origin)
	script := &system.ScriptedInput{}

	board := mastermind.New(mastermind.Options{
		Rules:      rules,
		Input:      script,
		Generator:  mm.NewGenerator(mm.NewFixedSeeds([]int64{seed}, nil)),
		Recorder:   replay.NewRecorder(mastermind.GameName, origin),
		RecordPath: path,
		Logger:     zap.NewNop(),
	}, origin)

	secret := board.Session().Secret().Code()
	wrong := make(mm.Code, len(secret))
	for i, c := range secret {
		wrong[i] = rules.Palette[0]
		if c == rules.Palette[0] {
			wrong[i] = rules.Palette[1]
		}
	}

	l := mastermind.NewLayout(rules)
	submit := system.InputState{Pressed: system.ActionSet(0).With(system.ActionSubmit)}
	script.Frames = append(script.Frames, rowInputs(rules, l, wrong, l.ActiveRow(0))...)
	script.Frames = append(script.Frames, submit)
	script.Frames = append(script.Frames, rowInputs(rules, l, secret, l.ActiveRow(1))...)
	script.Frames = append(script.Frames, submit)

	for !script.Done() {
		clock.Advance(250 * time.Millisecond)
		_, err := board.Update(clock.Now())
		require.NoError(t, err)
	}
	res, ok := board.LastResult()
	require.True(t, ok)
	return path, res
}

func TestRunReplay_ReproducesLiveGame(t *testing.T) {
	rules := mm.DefaultRules()
	path, live := record(t, rules, 1234)

	summary, err := RunReplay(path, rules, zap.NewNop())
	require.NoError(t, err)

	assert.True(t, summary.Finished)
	assert.Equal(t, string(results.OutcomeVictory), summary.Outcome)
	assert.Equal(t, live.Guesses, summary.Guesses)
	assert.Equal(t, 2, summary.Guesses)
	assert.Equal(t, timing.FormatClock(live.Duration), summary.Duration)
	assert.Equal(t, "Seed: 1234", summary.Seed)
	assert.Equal(t, "Victory", summary.Phase)
	assert.Contains(t, summary.String(), "victory in 2 guesses")
}

func TestRunReplay_Errors(t *testing.T) {
	rules := mm.DefaultRules()

	_, err := RunReplay(filepath.Join(t.TempDir(), "missing.json"), rules, zap.NewNop())
	assert.Error(t, err)

	other := replay.NewRecorder("caterpillar", timing.At(0))
	other.RecordFrame(timing.At(time.Millisecond), system.InputState{})
	path := filepath.Join(t.TempDir(), "other.json")
	require.NoError(t, other.Save(path))

	_, err = RunReplay(path, rules, zap.NewNop())
	assert.ErrorContains(t, err, `records "caterpillar"`)
}

func TestReplaySummary_Unfinished(t *testing.T) {
	s := ReplaySummary{Frames: 3, Phase: "Playing", Secret: mm.Code{mm.Red}, Seed: "Seed: 7"}
	assert.Equal(t, "replayed 3 frames, unfinished (Playing), secret [red], Seed: 7", s.String())
}
