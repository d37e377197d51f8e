// Package turntracker provides the tabletop turn timer scene.
package turntracker

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/younwookim/bqdemos/internal/application/scene"
	"github.com/younwookim/bqdemos/internal/application/state"
	"github.com/younwookim/bqdemos/internal/application/system"
	"github.com/younwookim/bqdemos/internal/domain/turntimer"
	"github.com/younwookim/bqdemos/internal/infrastructure/obslog"
	"github.com/younwookim/bqdemos/internal/timing"
)

// Options configures a table scene. Tracker and Input are required.
type Options struct {
	Tracker  *turntimer.Tracker
	Input    system.InputSource
	Bindings system.Bindings
	Logger   *zap.Logger
}

// Table is the turn tracker scene
type Table struct {
	tracker  *turntimer.Tracker
	input    system.InputSource
	bindings system.Bindings
	log      *zap.Logger

	phase  state.Phase
	totals bool
	detail bool
}

// New creates the scene. Totals are shown in concise form.
func New(opts Options) *Table {
	log := opts.Logger
	if log == nil {
		log = obslog.L()
	}
	return &Table{
		tracker:  opts.Tracker,
		input:    opts.Input,
		bindings: opts.Bindings,
		log:      log.With(zap.String("scene", "turntracker")),
		phase:    state.FromTimer(opts.Tracker.State()),
		totals:   true,
	}
}

// Tracker exposes the timer for inspection
func (t *Table) Tracker() *turntimer.Tracker {
	return t.tracker
}

// Phase returns PhasePaused or PhaseRunning
func (t *Table) Phase() state.Phase {
	return t.phase
}

// TotalsShown reports whether every participant's totals are listed
func (t *Table) TotalsShown() bool {
	return t.totals
}

// Detailed reports whether totals use the detailed format
func (t *Table) Detailed() bool {
	return t.detail
}

// Update implements scene.Scene
func (t *Table) Update(now timing.Timestamp) (scene.Scene, error) {
	in := t.input.GetInput()

	if in.Pressed.Has(system.ActionToggleTotals) {
		t.totals = !t.totals
	}
	if in.Pressed.Has(system.ActionToggleDetail) {
		t.detail = !t.detail
	}

	prev := t.tracker.Current()
	prevName := prev.Name
	prevTotal := prev.Total
	turn := prev.Stats.Current()

	t.tracker.Update(turntimer.Input{
		TogglePause:     in.Pressed.Has(system.ActionTogglePause),
		NextParticipant: in.Pressed.Has(system.ActionNextParticipant),
	}, now)

	if cur := t.tracker.Current(); cur != prev {
		t.log.Debug("participant changed",
			zap.String("from", prevName),
			zap.String("to", cur.Name),
			zap.Duration("turn", turn+prev.Total-prevTotal),
		)
	}

	next := state.FromTimer(t.tracker.State())
	if next != t.phase {
		t.log.Info("phase changed",
			zap.Stringer("from", t.phase),
			zap.Stringer("to", next),
			zap.Duration("total", t.tracker.TotalTime()),
		)
		t.phase = next
	}
	return nil, nil
}

// Lines returns the text shown for each participant, in seat order.
func (t *Table) Lines() []string {
	ps, cur := t.tracker.Participants()
	out := make([]string, len(ps))
	for i := range ps {
		p := &ps[i]
		mark := "[ ]"
		if i == cur {
			mark = "[X]"
		}
		line := fmt.Sprintf("%s %-8s", mark, p.Name)

		switch {
		case !t.totals:
			if i == cur {
				line += " " + timing.FormatConcise(p.Stats.Current())
			}
		case t.detail:
			avg, avgOK := p.AverageTurn()
			longest, maxOK := p.Stats.MaxTurn()
			median, medOK := p.Stats.MedianTurn()
			line += fmt.Sprintf(" %s (%2.0f%%) -- (%d turns; avg: %s, max: %s, median: %s)",
				timing.FormatDetailed(p.Total),
				t.tracker.Share(p)*100,
				p.Stats.NumTurns(),
				timing.FormatStat(avg, avgOK),
				timing.FormatStat(longest, maxOK),
				timing.FormatStat(median, medOK),
			)
		default:
			line += fmt.Sprintf(" %s (%2.0f%%)", timing.FormatConcise(p.Total), t.tracker.Share(p)*100)
		}
		out[i] = line
	}
	return out
}

// OnEnter implements scene.Scene
func (t *Table) OnEnter() {
	ps, _ := t.tracker.Participants()
	t.log.Info("tracker ready",
		zap.Int("participants", len(ps)),
		zap.Duration("min_turn", t.tracker.MinTurn()),
	)
}

// OnExit implements scene.Scene
func (t *Table) OnExit() {
	ps, _ := t.tracker.Participants()
	for i := range ps {
		p := &ps[i]
		t.log.Info("participant total",
			zap.String("name", p.Name),
			zap.Duration("total", p.Total),
			zap.Int("turns", p.Stats.NumTurns()),
		)
	}
}
