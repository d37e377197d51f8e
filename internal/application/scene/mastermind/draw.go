package mastermind

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/bqdemos/internal/application/scene/ui"
	"github.com/younwookim/bqdemos/internal/application/state"
	"github.com/younwookim/bqdemos/internal/application/system"
	mm "github.com/younwookim/bqdemos/internal/domain/mastermind"
	"github.com/younwookim/bqdemos/internal/timing"
)

// Colors for rendering
var (
	colorBG        = color.RGBA{76, 63, 47, 255}
	colorBoard     = color.RGBA{127, 106, 79, 255}
	colorSeparator = color.RGBA{0, 0, 0, 255}
	colorGold      = color.RGBA{255, 203, 0, 255}
	colorOutline   = color.RGBA{255, 255, 255, 255}
	colorCorrect   = color.RGBA{255, 255, 255, 255}
	colorMisplaced = color.RGBA{97, 97, 97, 255}
	colorWinText   = color.RGBA{0, 117, 44, 255}
	colorLoseText  = color.RGBA{230, 41, 55, 255}
	colorTextBox   = color.RGBA{199, 199, 199, 204}
	colorFPSBox    = color.RGBA{255, 255, 255, 77}
)

// secretRowColor tints the secret row by phase.
func secretRowColor(p state.Phase) color.RGBA {
	switch p {
	case state.PhaseEditPassword:
		return colorBoard
	case state.PhaseVictory:
		return color.RGBA{0, 228, 48, 255}
	case state.PhaseDefeat:
		return color.RGBA{230, 41, 55, 255}
	default:
		return color.RGBA{0, 0, 0, 255}
	}
}

// Draw implements scene.Scene
func (b *Board) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	l := b.layout
	st := b.session.State()

	// Board and separators
	ui.FillRect(screen, boardOffsetX, boardOffsetY, l.BoardWidth(), l.BoardHeight(), colorBoard)
	ui.FillRect(screen, boardOffsetX+l.GuessWidth(), boardOffsetY, rowSeparator, l.BoardHeight(), colorSeparator)
	for j := 0; j < l.Guesses; j++ {
		y := boardOffsetY + l.RowHeight()*float64(j+1) + rowSeparator*float64(j)
		ui.FillRect(screen, boardOffsetX, y, l.BoardWidth(), rowSeparator, colorSeparator)
	}

	// Secret row
	ui.FillRect(screen, boardOffsetX, boardOffsetY, l.GuessWidth(), l.RowHeight(), secretRowColor(b.phase))
	secret := b.session.Secret()
	if b.phase == state.PhasePlaying {
		for i := 0; i < secret.Len(); i++ {
			x, y := l.SlotCenter(i, 0)
			b.drawSlotText(screen, x, y, "?", color.White)
		}
	} else {
		for i := 0; i < secret.Len(); i++ {
			b.drawPeg(screen, i, 0, secret.At(i))
		}
	}

	// Guesses
	history := b.session.History()
	for k, g := range history {
		for i, c := range g.Guess {
			b.drawPeg(screen, i, l.HistoryRow(k), c)
		}
	}
	if ip, ok := st.(mm.InProgress); ok {
		j := l.ActiveRow(len(history))
		for i, c := range ip.Row {
			if c.Valid() {
				b.drawPeg(screen, i, j, c)
			}
		}
		ui.StrokeRect(screen, boardOffsetX, l.RowTop(j), l.GuessWidth(), l.RowHeight(), 4, colorGold)
	}
	for i := 0; i < l.Slots; i++ {
		for j := 0; j <= l.Guesses; j++ {
			x, y := l.SlotCenter(i, j)
			ui.StrokeCircle(screen, x, y, slotRadius, 1, colorOutline)
		}
	}

	// Key pegs: correct first, then misplaced
	for k, g := range history {
		j := l.HistoryRow(k)
		idx := 0
		for n := 0; n < g.Correct; n++ {
			x, y := l.KeyCenter(idx, j)
			ui.FillCircle(screen, x, y, keyRadius, colorCorrect)
			idx++
		}
		for n := 0; n < g.Misplaced; n++ {
			x, y := l.KeyCenter(idx, j)
			ui.FillCircle(screen, x, y, keyRadius, colorMisplaced)
			idx++
		}
	}
	for j := 1; j <= l.Guesses; j++ {
		for k := 0; k < l.Slots; k++ {
			x, y := l.KeyCenter(k, j)
			ui.StrokeCircle(screen, x, y, keyRadius, 1, colorGold)
		}
	}

	// Palette
	for k, c := range b.session.Rules().Palette {
		x, y := l.SwatchCenter(k)
		ui.FillCircle(screen, x, y, swatchRadius, c.RGBA())
		if c == b.session.Selected() {
			ui.StrokeCircle(screen, x, y, swatchRadius+2, 2, colorGold)
		}
		b.drawSlotText(screen, x, y, strconv.Itoa(k+1), color.Black)
	}

	b.drawOutcome(screen, st, len(history))
	b.drawFooter(screen)
	b.drawCursor(screen)
}

func (b *Board) drawPeg(screen *ebiten.Image, i, j int, c mm.Color) {
	x, y := b.layout.SlotCenter(i, j)
	ui.FillCircle(screen, x, y, slotRadius, c.RGBA())
	if b.numbers {
		for k, p := range b.session.Rules().Palette {
			if p == c {
				b.drawSlotText(screen, x, y, strconv.Itoa(k+1), color.Black)
			}
		}
	}
}

func (b *Board) drawSlotText(screen *ebiten.Image, x, y float64, s string, c color.Color) {
	ui.Label{Text: s, X: x, Y: y, Scale: 2, Color: c, HAlign: ui.AlignCenter, VAlign: ui.AlignCenter}.Draw(screen)
}

func (b *Board) drawOutcome(screen *ebiten.Image, st mm.GameState, guesses int) {
	hint := fmt.Sprintf("Press [%s] to replay the same password.\nPress [%s] for a new password.",
		b.bindings.Label(system.ActionReplay), b.bindings.Label(system.ActionNewPassword))

	var msg string
	var c color.Color
	switch v := st.(type) {
	case mm.Victory:
		msg = fmt.Sprintf("You won in %d guesses! You are a %s!\nTime: %s",
			guesses, mm.WinTitle(guesses), timing.FormatClock(v.TotalTime))
		if b.hasBest {
			msg += "\nBest: " + timing.FormatClock(b.best)
		}
		c = colorWinText
	case mm.TooManyGuesses:
		msg = "You lose lmao"
		c = colorLoseText
	default:
		return
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	ui.Label{
		Text:   msg + "\n\n" + hint,
		X:      float64(w) / 2,
		Y:      float64(h) / 2,
		Scale:  1.5,
		Color:  c,
		HAlign: ui.AlignCenter,
		VAlign: ui.AlignCenter,
	}.DrawBoxed(screen, colorTextBox, 2)
}

func (b *Board) drawFooter(screen *ebiten.Image) {
	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	const pad = 3.0

	fps := ui.Label{
		Text:   fmt.Sprintf("%.0f FPS", ebiten.ActualFPS()),
		X:      w - pad*2,
		Y:      h - pad*2,
		Color:  color.Black,
		HAlign: ui.AlignEnd,
		VAlign: ui.AlignEnd,
	}
	fps.DrawBoxed(screen, colorFPSBox, pad)

	fx, _, _, _ := fps.Bounds()
	ui.Label{
		Text:   b.session.Secret().SeedText(),
		X:      fx - pad*3,
		Y:      h - pad*2,
		Scale:  1.5,
		Color:  color.White,
		HAlign: ui.AlignEnd,
		VAlign: ui.AlignEnd,
	}.DrawBoxed(screen, color.Black, pad)
}

// drawCursor draws the selected color under the mouse once it has moved.
func (b *Board) drawCursor(screen *ebiten.Image) {
	bounds := screen.Bounds()
	onScreen := b.mouseX >= 0 && b.mouseY >= 0 && b.mouseX <= bounds.Dx() && b.mouseY <= bounds.Dy()
	if !onScreen || !b.mouseMoved {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
		return
	}
	x, y := float64(b.mouseX), float64(b.mouseY)
	ui.FillCircle(screen, x, y, cursorRadius, b.session.Selected().RGBA())
	ui.FillCircle(screen, x, y, 1, color.Black)
	ui.StrokeCircle(screen, x, y, cursorRadius, 1, color.Black)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
}
