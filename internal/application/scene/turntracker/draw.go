package turntracker

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/bqdemos/internal/application/scene/ui"
	"github.com/younwookim/bqdemos/internal/application/state"
	"github.com/younwookim/bqdemos/internal/application/system"
)

const (
	pieX      = 300
	pieY      = 300
	pieRadius = 230
	// The active participant's slice sticks out
	activeGrow = 1.2

	lineHeight = 50
	lineScale  = 3
	detailSize = 1.5
)

var (
	colorPausedBG  = color.RGBA{80, 80, 80, 255}
	colorRunningBG = color.RGBA{200, 200, 200, 255}
	colorEmptyPie  = color.RGBA{130, 130, 130, 255}
	colorHighlight = color.RGBA{255, 255, 255, 255}
	colorPaused    = color.RGBA{230, 41, 55, 255}
)

// Slice is one participant's sector of the pie, in degrees clockwise from north.
type Slice struct {
	Start  float64
	Sweep  float64
	Radius float64
	Color  color.RGBA
}

// Slices returns the pie sectors for participants with time on the clock.
func (t *Table) Slices() []Slice {
	ps, cur := t.tracker.Participants()
	var out []Slice
	start := 0.0
	for i := range ps {
		p := &ps[i]
		sweep := t.tracker.Share(p) * 360
		if sweep <= 0 {
			continue
		}
		r := float64(pieRadius)
		if i == cur {
			r *= activeGrow
		}
		out = append(out, Slice{Start: start, Sweep: sweep, Radius: r, Color: p.Color})
		start += sweep
	}
	return out
}

// Draw implements scene.Scene
func (t *Table) Draw(screen *ebiten.Image) {
	if t.phase == state.PhasePaused {
		screen.Fill(colorPausedBG)
	} else {
		screen.Fill(colorRunningBG)
	}

	slices := t.Slices()
	if len(slices) == 0 {
		ui.FillCircle(screen, pieX, pieY, pieRadius, colorEmptyPie)
	}
	for _, s := range slices {
		ui.FillWedge(screen, pieX, pieY, s.Radius, s.Start, s.Sweep, s.Color)
	}

	if t.phase == state.PhasePaused {
		ui.Label{
			Text:   "PAUSED",
			X:      pieX,
			Y:      pieY + pieRadius,
			Scale:  lineScale,
			Color:  colorPaused,
			HAlign: ui.AlignCenter,
		}.Draw(screen)
	}

	ps, cur := t.tracker.Participants()
	scale := float64(lineScale)
	if t.detail && t.totals {
		scale = detailSize
	}
	for i, line := range t.Lines() {
		l := ui.Label{
			Text:  line,
			X:     10,
			Y:     pieY + pieRadius + 20 + lineHeight*float64(i+1),
			Scale: scale,
			Color: ps[i].Color,
		}
		l.Draw(screen)
		if i == cur {
			x, y, w, h := l.Bounds()
			ui.StrokeRect(screen, x-4, y-4, w+8, h+8, 6, colorHighlight)
		}
	}

	ui.Label{
		Text: fmt.Sprintf("[%s] next  [%s] pause  [%s] totals  [%s] detail",
			t.bindings.Label(system.ActionNextParticipant),
			t.bindings.Label(system.ActionTogglePause),
			t.bindings.Label(system.ActionToggleTotals),
			t.bindings.Label(system.ActionToggleDetail),
		),
		X:      float64(screen.Bounds().Dx()) - 6,
		Y:      float64(screen.Bounds().Dy()) - 6,
		Color:  color.Black,
		HAlign: ui.AlignEnd,
		VAlign: ui.AlignEnd,
	}.Draw(screen)
}
