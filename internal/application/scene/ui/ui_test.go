package ui

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWedgePoints(t *testing.T) {
	pts := WedgePoints(100, 100, 10, 0, 90, 100)

	require.GreaterOrEqual(t, len(pts), 3)
	assert.Equal(t, [2]float64{100, 100}, pts[0], "starts at the center")

	first := pts[1]
	assert.InDelta(t, 100, first[0], 1e-9, "zero degrees is north")
	assert.InDelta(t, 90, first[1], 1e-9)

	last := pts[len(pts)-1]
	assert.InDelta(t, 110, last[0], 1e-9, "ninety degrees is east")
	assert.InDelta(t, 100, last[1], 1e-9)

	for _, p := range pts[1:] {
		assert.InDelta(t, 10, math.Hypot(p[0]-100, p[1]-100), 1e-9)
	}
}

func TestWedgePoints_TinySweep(t *testing.T) {
	pts := WedgePoints(0, 0, 5, 45, 0.01, 100)
	assert.Len(t, pts, 3)
}

func TestLabel_Bounds(t *testing.T) {
	l := Label{Text: "Seed: 42", X: 200, Y: 100, Scale: 2, HAlign: AlignEnd, VAlign: AlignCenter}

	w, h := l.Size()
	assert.InDelta(t, 2*7*8, w, 1e-9, "basicfont glyphs are 7px wide")
	assert.Greater(t, h, 0.0)

	x, y, bw, bh := l.Bounds()
	assert.InDelta(t, 200-w, x, 1e-9)
	assert.InDelta(t, 100-h/2, y, 1e-9)
	assert.Equal(t, w, bw)
	assert.Equal(t, h, bh)
}

func TestLabel_DefaultScale(t *testing.T) {
	small := Label{Text: "x"}
	big := Label{Text: "x", Scale: 3}

	sw, _ := small.Size()
	bw, _ := big.Size()
	assert.InDelta(t, 3*sw, bw, 1e-9)
}
