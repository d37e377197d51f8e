package caterpillar

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/bqdemos/internal/application/scene/ui"
	"github.com/younwookim/bqdemos/internal/application/system"
	cp "github.com/younwookim/bqdemos/internal/domain/caterpillar"
)

// gridMargin is the total padding around the playing field
const gridMargin = 50

var (
	colorBG       = color.RGBA{200, 200, 200, 255}
	colorField    = color.RGBA{255, 255, 255, 255}
	colorGridLine = color.RGBA{200, 200, 200, 255}
	colorHead     = color.RGBA{0, 117, 44, 255}
	colorBody     = color.RGBA{0, 158, 47, 255}
	colorFruit    = color.RGBA{255, 203, 0, 255}
	colorText     = color.RGBA{80, 80, 80, 255}
)

// Grid maps cells to screen space for a given screen size.
type Grid struct {
	OffsetX float64
	OffsetY float64
	Cell    float64
	Squares int
}

// NewGrid centers a square field of squares cells on a w by h screen.
func NewGrid(w, h float64, squares int) Grid {
	size := min(w, h)
	return Grid{
		OffsetX: (w - size + gridMargin) / 2,
		OffsetY: (h - size + gridMargin) / 2,
		Cell:    (size - gridMargin) / float64(squares),
		Squares: squares,
	}
}

// Size returns the side length of the field
func (g Grid) Size() float64 {
	return g.Cell * float64(g.Squares)
}

// CellAt returns the top-left corner of cell p
func (g Grid) CellAt(p cp.Point) (x, y float64) {
	return g.OffsetX + float64(p.X)*g.Cell, g.OffsetY + float64(p.Y)*g.Cell
}

// Draw implements scene.Scene
func (f *Field) Draw(screen *ebiten.Image) {
	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	if f.game.Over() {
		screen.Fill(colorField)
		ui.Label{
			Text:   fmt.Sprintf("Game Over. Press [%s] to play again.", f.bindings.Label(system.ActionRestart)),
			X:      w / 2,
			Y:      h / 2,
			Scale:  1.5,
			Color:  colorText,
			HAlign: ui.AlignCenter,
			VAlign: ui.AlignCenter,
		}.Draw(screen)
	} else {
		screen.Fill(colorBG)
		g := NewGrid(w, h, f.rules.Squares)
		ui.FillRect(screen, g.OffsetX, g.OffsetY, g.Size(), g.Size(), colorField)
		for i := 1; i < g.Squares; i++ {
			d := g.Cell * float64(i)
			ui.FillRect(screen, g.OffsetX, g.OffsetY+d-1, g.Size(), 2, colorGridLine)
			ui.FillRect(screen, g.OffsetX+d-1, g.OffsetY, 2, g.Size(), colorGridLine)
		}

		x, y := g.CellAt(f.game.Head())
		ui.FillRect(screen, x, y, g.Cell, g.Cell, colorHead)
		for _, p := range f.game.Body() {
			x, y := g.CellAt(p)
			ui.FillRect(screen, x, y, g.Cell, g.Cell, colorBody)
		}
		x, y = g.CellAt(f.game.Fruit())
		ui.FillRect(screen, x, y, g.Cell, g.Cell, colorFruit)
	}

	// Debug info
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("Score: %d  Best: %d\nFPS: %.0f  TPS: %.0f", f.game.Score(), f.best, ebiten.ActualFPS(), ebiten.ActualTPS()),
		6, 4)
}
