package turntimer

import (
	"image/color"
	"time"

	"github.com/younwookim/bqdemos/internal/timing"
)

// TimerState is either Paused or Running.
type TimerState interface {
	isTimerState()
}

// Paused attributes no time to anyone.
type Paused struct{}

// Running attributes time to the active participant since LastTick.
type Running struct {
	LastTick timing.Timestamp
}

func (Paused) isTimerState()  {}
func (Running) isTimerState() {}

// Participant is one seat at the table.
type Participant struct {
	Name  string
	Color color.RGBA
	Total time.Duration
	Stats TurnStats
}

// AverageTurn returns Total divided by the number of turns.
func (p *Participant) AverageTurn() (time.Duration, bool) {
	n := p.Stats.NumTurns()
	if n == 0 {
		return 0, false
	}
	return p.Total / time.Duration(n), true
}

// Input is what the tracker reads from one frame.
type Input struct {
	TogglePause     bool
	NextParticipant bool
}

// Tracker is the turn timer state machine.
type Tracker struct {
	participants Rotation[Participant]
	state        TimerState
	minTurn      time.Duration
}

// NewTracker returns a paused tracker with no participants.
func NewTracker(minTurn time.Duration) *Tracker {
	if minTurn < 0 {
		minTurn = 0
	}
	return &Tracker{state: Paused{}, minTurn: minTurn}
}

// AddParticipant appends a participant to the rotation.
func (t *Tracker) AddParticipant(name string, c color.RGBA) {
	t.participants.Push(Participant{Name: name, Color: c})
}

// Update runs one frame of the state machine against now.
// Time spent before a participant change is attributed to the previous participant.
func (t *Tracker) Update(in Input, now timing.Timestamp) {
	switch st := t.state.(type) {
	case Paused:
		if in.TogglePause {
			t.state = Running{LastTick: now}
		}
	case Running:
		if in.TogglePause {
			t.state = Paused{}
			return
		}

		elapsed := now.Sub(st.LastTick)
		p := t.participants.Current()
		p.Total += elapsed
		p.Stats.Tick(elapsed)
		t.state = Running{LastTick: now}

		if in.NextParticipant {
			p.Stats.EndTurn(t.minTurn)
			t.participants.Advance()
		}
	}
}

// State returns the timer state.
func (t *Tracker) State() TimerState {
	return t.state
}

// IsRunning reports whether time is being attributed.
func (t *Tracker) IsRunning() bool {
	_, ok := t.state.(Running)
	return ok
}

// Participants returns the participants and the active index.
func (t *Tracker) Participants() ([]Participant, int) {
	return t.participants.Items(), t.participants.Index()
}

// Current returns the active participant.
func (t *Tracker) Current() *Participant {
	return t.participants.Current()
}

// TotalTime sums every participant's total.
func (t *Tracker) TotalTime() time.Duration {
	var total time.Duration
	for _, p := range t.participants.items {
		total += p.Total
	}
	return total
}

// Share returns p's fraction of the total time in [0, 1].
func (t *Tracker) Share(p *Participant) float64 {
	total := t.TotalTime()
	if total == 0 {
		return 0
	}
	return float64(p.Total) / float64(total)
}

// MinTurn returns the threshold below which turns are not recorded.
func (t *Tracker) MinTurn() time.Duration {
	return t.minTurn
}
