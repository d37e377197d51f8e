// Package mastermind implements the Mastermind rules: secret codes, guess
// scoring, and the per-session state machine.
//
// The package has no rendering or input dependencies. Scenes translate
// polled input into Intents and read state back for drawing.
package mastermind

import (
	"fmt"
	"image/color"
	"strings"
)

// Color is a peg color. The zero value is NoColor (an empty slot).
type Color uint8

const (
	NoColor Color = iota
	Red
	Orange
	Yellow
	Green
	Blue
	Purple
	Pink
	Brown
	White

	numColors = int(White) + 1
)

// MaxPaletteSize is the largest palette that digit keys 1-9 can address.
const MaxPaletteSize = 9

var colorNames = [numColors]string{
	NoColor: "none",
	Red:     "red",
	Orange:  "orange",
	Yellow:  "yellow",
	Green:   "green",
	Blue:    "blue",
	Purple:  "purple",
	Pink:    "pink",
	Brown:   "brown",
	White:   "white",
}

// RGBA values used when drawing pegs
var colorRGBA = [numColors]color.RGBA{
	NoColor: {0, 0, 0, 0},
	Red:     {230, 41, 55, 255},
	Orange:  {255, 161, 0, 255},
	Yellow:  {253, 249, 0, 255},
	Green:   {0, 228, 48, 255},
	Blue:    {0, 121, 241, 255},
	Purple:  {200, 122, 255, 255},
	Pink:    {255, 109, 194, 255},
	Brown:   {127, 106, 79, 255},
	White:   {245, 245, 245, 255},
}

// String returns the lowercase color name
func (c Color) String() string {
	if int(c) >= numColors {
		return "unknown"
	}
	return colorNames[c]
}

// RGBA returns the display color
func (c Color) RGBA() color.RGBA {
	if int(c) >= numColors {
		return color.RGBA{}
	}
	return colorRGBA[c]
}

// Valid reports whether c is a real peg color (not NoColor).
func (c Color) Valid() bool {
	return c > NoColor && int(c) < numColors
}

// ParseColor parses a color name, case-insensitively.
func ParseColor(name string) (Color, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i := 1; i < numColors; i++ {
		if colorNames[i] == n {
			return Color(i), nil
		}
	}
	return NoColor, fmt.Errorf("unknown color %q", name)
}

// DefaultPalette is the six-color palette of the classic game.
func DefaultPalette() []Color {
	return []Color{Red, Orange, Yellow, Green, Blue, Purple}
}
