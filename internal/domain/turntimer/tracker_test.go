package turntimer

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/bqdemos/internal/timing"
)

func statsOf(turns ...time.Duration) *TurnStats {
	s := &TurnStats{}
	for _, d := range turns {
		s.Tick(d)
		s.EndTurn(0)
	}
	return s
}

func TestTurnStats_Median(t *testing.T) {
	tests := []struct {
		name  string
		turns []time.Duration
		want  time.Duration
	}{
		{"odd", []time.Duration{30 * time.Second, 10 * time.Second, 20 * time.Second}, 20 * time.Second},
		{"even", []time.Duration{20 * time.Second, 10 * time.Second}, 15 * time.Second},
		{"single", []time.Duration{7 * time.Second}, 7 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := statsOf(tt.turns...).MedianTurn()
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTurnStats_IncludesCurrentTurnWithoutMutating(t *testing.T) {
	s := statsOf(10*time.Second, 20*time.Second)
	s.Tick(60 * time.Second)

	median, ok := s.MedianTurn()
	require.True(t, ok)
	assert.Equal(t, 20*time.Second, median)

	longest, ok := s.MaxTurn()
	require.True(t, ok)
	assert.Equal(t, 60*time.Second, longest)

	assert.Equal(t, 3, s.NumTurns())
	assert.Equal(t, 2, s.Completed(), "in-progress turn is not recorded")
}

func TestTurnStats_Empty(t *testing.T) {
	var s TurnStats

	_, ok := s.MedianTurn()
	assert.False(t, ok)
	_, ok = s.MaxTurn()
	assert.False(t, ok)
	assert.Equal(t, 0, s.NumTurns())
}

func TestTurnStats_MaxOfCompleted(t *testing.T) {
	s := statsOf(5*time.Second, 40*time.Second, 12*time.Second)

	longest, ok := s.MaxTurn()
	require.True(t, ok)
	assert.Equal(t, 40*time.Second, longest)
}

func TestTurnStats_ShortTurnNotRecorded(t *testing.T) {
	var s TurnStats
	s.Tick(300 * time.Millisecond)
	s.EndTurn(DefaultMinTurn)

	assert.Equal(t, 0, s.Completed())
	assert.Equal(t, time.Duration(0), s.Current(), "reset regardless of threshold")

	s.Tick(DefaultMinTurn)
	s.EndTurn(DefaultMinTurn)
	assert.Equal(t, 1, s.Completed(), "threshold is inclusive")
}

func TestRotation(t *testing.T) {
	var r Rotation[string]
	assert.Panics(t, func() { r.Advance() })
	assert.Panics(t, func() { r.Current() })

	r.Push("a")
	r.Push("b")
	r.Push("c")

	start := r.Index()
	for i := 0; i < r.Len(); i++ {
		r.Advance()
	}
	assert.Equal(t, start, r.Index(), "a full cycle returns to the start")

	r.Advance()
	assert.Equal(t, "b", *r.Current())
}

func newTestTracker(t *testing.T) (*Tracker, *timing.ManualClock) {
	t.Helper()
	tr := NewTracker(DefaultMinTurn)
	tr.AddParticipant("Ada", color.RGBA{R: 255, A: 255})
	tr.AddParticipant("Bo", color.RGBA{G: 255, A: 255})
	return tr, timing.NewManualClock(timing.At(0))
}

func TestTracker_StartsPaused(t *testing.T) {
	tr, clock := newTestTracker(t)
	assert.Equal(t, Paused{}, tr.State())

	clock.Advance(time.Minute)
	tr.Update(Input{}, clock.Now())
	assert.Equal(t, time.Duration(0), tr.TotalTime())
}

func TestTracker_AttributesElapsedTime(t *testing.T) {
	tr, clock := newTestTracker(t)

	tr.Update(Input{TogglePause: true}, clock.Now())
	require.True(t, tr.IsRunning())

	clock.Advance(3 * time.Second)
	tr.Update(Input{}, clock.Now())
	clock.Advance(2 * time.Second)
	tr.Update(Input{}, clock.Now())

	assert.Equal(t, 5*time.Second, tr.Current().Total)
	assert.Equal(t, 5*time.Second, tr.Current().Stats.Current())
}

func TestTracker_PauseGapIsNotAttributed(t *testing.T) {
	tr, clock := newTestTracker(t)

	tr.Update(Input{TogglePause: true}, clock.Now())
	clock.Advance(2 * time.Second)
	tr.Update(Input{}, clock.Now())

	clock.Advance(time.Second)
	tr.Update(Input{TogglePause: true}, clock.Now())
	assert.Equal(t, Paused{}, tr.State())

	clock.Advance(time.Hour)
	tr.Update(Input{TogglePause: true}, clock.Now())
	clock.Advance(time.Second)
	tr.Update(Input{}, clock.Now())

	assert.Equal(t, 3*time.Second, tr.Current().Total, "the pausing tick and the paused hour are skipped")
}

func TestTracker_NextParticipant(t *testing.T) {
	tr, clock := newTestTracker(t)

	tr.Update(Input{TogglePause: true}, clock.Now())
	clock.Advance(10 * time.Second)
	tr.Update(Input{NextParticipant: true}, clock.Now())

	participants, idx := tr.Participants()
	assert.Equal(t, 1, idx)
	assert.Equal(t, 10*time.Second, participants[0].Total, "time before the switch goes to the previous participant")
	assert.Equal(t, 1, participants[0].Stats.Completed())
	assert.Equal(t, time.Duration(0), participants[1].Total)

	clock.Advance(200 * time.Millisecond)
	tr.Update(Input{NextParticipant: true}, clock.Now())

	participants, idx = tr.Participants()
	assert.Equal(t, 0, idx, "rotation wraps")
	assert.Equal(t, 0, participants[1].Stats.Completed(), "quick press is not a turn")
	assert.Equal(t, 200*time.Millisecond, participants[1].Total, "quick press still counts toward total")
}

func TestTracker_NextIgnoredWhilePaused(t *testing.T) {
	tr, clock := newTestTracker(t)

	tr.Update(Input{NextParticipant: true}, clock.Now())
	_, idx := tr.Participants()
	assert.Equal(t, 0, idx)
}

func TestTracker_ShareAndAverage(t *testing.T) {
	tr, clock := newTestTracker(t)

	tr.Update(Input{TogglePause: true}, clock.Now())
	clock.Advance(30 * time.Second)
	tr.Update(Input{NextParticipant: true}, clock.Now())
	clock.Advance(10 * time.Second)
	tr.Update(Input{NextParticipant: true}, clock.Now())
	clock.Advance(30 * time.Second)
	tr.Update(Input{NextParticipant: true}, clock.Now())

	participants, _ := tr.Participants()
	ada := &participants[0]
	assert.Equal(t, 60*time.Second, ada.Total)
	assert.InDelta(t, 60.0/70.0, tr.Share(ada), 1e-9)

	avg, ok := ada.AverageTurn()
	require.True(t, ok)
	assert.Equal(t, 30*time.Second, avg)
}

func TestTracker_EmptyRotationPanics(t *testing.T) {
	tr := NewTracker(DefaultMinTurn)
	clock := timing.NewManualClock(timing.At(0))

	tr.Update(Input{TogglePause: true}, clock.Now())
	assert.Panics(t, func() {
		tr.Update(Input{}, clock.Now())
	})
}
