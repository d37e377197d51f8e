package mastermind

import (
	"math"

	mm "github.com/younwookim/bqdemos/internal/domain/mastermind"
)

// Board geometry in screen pixels
const (
	boardOffsetX = 20.0
	boardOffsetY = 20.0
	rowSeparator = 1.0
	slotSize     = 50.0
	slotRadius   = slotSize / 2
	slotPadding  = 5.0
	keySize      = 18.0
	keyRadius    = keySize / 2
	swatchSize   = 40.0
	swatchRadius = swatchSize / 2
	swatchPad    = 10.0
	cursorRadius = 15.0
)

// Layout maps board cells to screen coordinates and back.
//
// Cells are addressed by (i, j): i is the slot, left to right; j is the
// row, top to bottom. Row 0 holds the secret, row Guesses holds the first
// guess, and guess k (0-based) sits on row Guesses-k.
type Layout struct {
	Slots       int
	Guesses     int
	PaletteSize int
}

// NewLayout sizes the board for rules.
func NewLayout(rules mm.Rules) Layout {
	return Layout{
		Slots:       rules.Slots,
		Guesses:     rules.MaxGuesses,
		PaletteSize: len(rules.Palette),
	}
}

// RowHeight is the height of one row without its separator.
func (l Layout) RowHeight() float64 {
	return slotSize + slotPadding*2
}

// GuessWidth is the width of the slot area of a row.
func (l Layout) GuessWidth() float64 {
	n := float64(l.Slots)
	return slotSize*n + slotPadding*(n+1)
}

// keyPadding fits two rows of key pegs into one board row.
func (l Layout) keyPadding() float64 {
	return (l.RowHeight() - keySize*2) / 3
}

func (l Layout) keysPerTopRow() int {
	return (l.Slots + 1) / 2
}

// KeyWidth is the width of the key peg area of a row.
func (l Layout) KeyWidth() float64 {
	n := float64(l.keysPerTopRow())
	return n*keySize + l.keyPadding()*(n+1)
}

// BoardWidth is the total board width.
func (l Layout) BoardWidth() float64 {
	return l.GuessWidth() + l.KeyWidth()
}

// BoardHeight covers the secret row and every guess row.
func (l Layout) BoardHeight() float64 {
	g := float64(l.Guesses)
	return l.RowHeight()*(g+1) + rowSeparator*g
}

// RowTop returns the y coordinate of the top of row j.
func (l Layout) RowTop(j int) float64 {
	return boardOffsetY + (l.RowHeight()+rowSeparator)*float64(j)
}

// ActiveRow is the row of the working guess after guesses submissions.
func (l Layout) ActiveRow(guesses int) int {
	return l.Guesses - guesses
}

// HistoryRow is the row of the k-th submitted guess.
func (l Layout) HistoryRow(k int) int {
	return l.Guesses - k
}

// SlotCenter returns the center of cell (i, j).
func (l Layout) SlotCenter(i, j int) (x, y float64) {
	fi, fj := float64(i), float64(j)
	x = boardOffsetX + slotRadius + slotSize*fi + slotPadding*(fi+1)
	y = boardOffsetY + slotRadius + slotSize*fj + slotPadding*(fj*2+1) + rowSeparator*fj
	return x, y
}

// SlotAt returns the cell whose bounding square contains (x, y).
// Points in the padding between cells hit nothing.
func (l Layout) SlotAt(x, y float64) (i, j int, ok bool) {
	x -= boardOffsetX + slotPadding
	for {
		if x < 0 || i >= l.Slots {
			return 0, 0, false
		}
		if x <= slotSize {
			break
		}
		i++
		x -= slotSize + slotPadding
	}

	y -= boardOffsetY + slotPadding
	for {
		if y < 0 || j >= l.Guesses+1 {
			return 0, 0, false
		}
		if y <= slotSize {
			break
		}
		j++
		y -= slotSize + slotPadding + rowSeparator + slotPadding
	}
	return i, j, true
}

// KeyOffset returns the center of key peg k relative to the top-left of
// the key area of a row. The first ceil(slots/2) pegs fill the top line.
func (l Layout) KeyOffset(k int) (x, y float64) {
	top := l.keysPerTopRow()
	xi, yi := k, 0
	if k >= top {
		xi, yi = k-top, 1
	}
	step := l.keyPadding() + keyRadius*2
	x = step*float64(xi) + l.keyPadding() + keyRadius
	y = step*float64(yi) + l.keyPadding() + keyRadius
	return x, y
}

// KeyCenter returns the screen center of key peg k on row j.
func (l Layout) KeyCenter(k, j int) (x, y float64) {
	ox, oy := l.KeyOffset(k)
	return boardOffsetX + l.GuessWidth() + ox, l.RowTop(j) + oy
}

// SwatchCenter returns the center of palette swatch k below the board.
// Swatches are spread evenly across the board width.
func (l Layout) SwatchCenter(k int) (x, y float64) {
	n := float64(l.PaletteSize)
	gap := 0.0
	if l.PaletteSize > 1 {
		gap = (l.BoardWidth() - (n*swatchSize + swatchPad*2)) / (n - 1)
	}
	x = boardOffsetX + (gap+swatchRadius*2)*float64(k) + swatchPad + swatchRadius
	y = boardOffsetY + l.BoardHeight() + swatchPad + swatchRadius
	return x, y
}

// SwatchAt returns the palette index of the swatch under (x, y).
func (l Layout) SwatchAt(x, y float64) (int, bool) {
	for k := 0; k < l.PaletteSize; k++ {
		cx, cy := l.SwatchCenter(k)
		if math.Hypot(x-cx, y-cy) <= swatchRadius {
			return k, true
		}
	}
	return 0, false
}
