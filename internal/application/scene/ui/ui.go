// Package ui holds the drawing helpers shared by the demo scenes.
package ui

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Face is the bitmap font every scene draws with.
var Face = text.NewGoXFace(basicfont.Face7x13)

// Align positions text relative to its anchor point
type Align = text.Align

const (
	AlignStart  = text.AlignStart
	AlignCenter = text.AlignCenter
	AlignEnd    = text.AlignEnd
)

// Label is a piece of text anchored at (X, Y).
type Label struct {
	Text   string
	X, Y   float64
	Scale  float64
	Color  color.Color
	HAlign Align
	VAlign Align
}

func (l Label) scale() float64 {
	if l.Scale <= 0 {
		return 1
	}
	return l.Scale
}

func (l Label) lineSpacing() float64 {
	return Face.Metrics().HLineGap + Face.Metrics().HAscent + Face.Metrics().HDescent
}

// Size returns the drawn width and height of the label.
func (l Label) Size() (w, h float64) {
	w, h = text.Measure(l.Text, Face, l.lineSpacing())
	s := l.scale()
	return w * s, h * s
}

// Bounds returns the rectangle the label covers.
func (l Label) Bounds() (x, y, w, h float64) {
	w, h = l.Size()
	x = l.X - offset(l.HAlign, w)
	y = l.Y - offset(l.VAlign, h)
	return x, y, w, h
}

func offset(a Align, size float64) float64 {
	switch a {
	case AlignCenter:
		return size / 2
	case AlignEnd:
		return size
	default:
		return 0
	}
}

// Draw renders the label.
func (l Label) Draw(dst *ebiten.Image) {
	op := &text.DrawOptions{}
	op.LineSpacing = l.lineSpacing()
	op.PrimaryAlign = l.HAlign
	op.SecondaryAlign = l.VAlign
	s := l.scale()
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(l.X, l.Y)
	if l.Color != nil {
		op.ColorScale.ScaleWithColor(l.Color)
	}
	text.Draw(dst, l.Text, Face, op)
}

// DrawBoxed renders the label over a filled background padded by pad.
func (l Label) DrawBoxed(dst *ebiten.Image, bg color.Color, pad float64) {
	x, y, w, h := l.Bounds()
	vector.DrawFilledRect(dst, float32(x-pad), float32(y-pad), float32(w+2*pad), float32(h+2*pad), bg, false)
	l.Draw(dst)
}

// FillCircle draws a filled, antialiased circle.
func FillCircle(dst *ebiten.Image, x, y, r float64, c color.Color) {
	vector.DrawFilledCircle(dst, float32(x), float32(y), float32(r), c, true)
}

// StrokeCircle draws a circle outline.
func StrokeCircle(dst *ebiten.Image, x, y, r, width float64, c color.Color) {
	vector.StrokeCircle(dst, float32(x), float32(y), float32(r), float32(width), c, true)
}

// FillRect draws a filled rectangle.
func FillRect(dst *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

// StrokeRect draws a rectangle outline.
func StrokeRect(dst *ebiten.Image, x, y, w, h, width float64, c color.Color) {
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), float32(width), c, false)
}

var whiteSubImage *ebiten.Image

func white() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// WedgePoints returns the outline of a pie wedge centered at (cx, cy):
// the center followed by points along the arc. Angles are in degrees,
// clockwise from north. At least two arc points are always returned.
func WedgePoints(cx, cy, r, startDeg, sweepDeg float64, sides int) [][2]float64 {
	steps := int(math.Ceil(math.Abs(sweepDeg) / 360 * float64(sides)))
	if steps < 1 {
		steps = 1
	}
	pts := make([][2]float64, 0, steps+2)
	pts = append(pts, [2]float64{cx, cy})
	for k := 0; k <= steps; k++ {
		deg := startDeg + sweepDeg*float64(k)/float64(steps) - 90
		rad := deg * math.Pi / 180
		pts = append(pts, [2]float64{cx + r*math.Cos(rad), cy + r*math.Sin(rad)})
	}
	return pts
}

// FillWedge draws a pie wedge as a triangle fan.
func FillWedge(dst *ebiten.Image, cx, cy, r, startDeg, sweepDeg float64, c color.Color) {
	if sweepDeg <= 0 || r <= 0 {
		return
	}
	pts := WedgePoints(cx, cy, r, startDeg, sweepDeg, 100)
	cr, cg, cb, ca := c.RGBA()
	vs := make([]ebiten.Vertex, len(pts))
	for i, p := range pts {
		vs[i] = ebiten.Vertex{
			DstX:   float32(p[0]),
			DstY:   float32(p[1]),
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(cr) / 0xffff,
			ColorG: float32(cg) / 0xffff,
			ColorB: float32(cb) / 0xffff,
			ColorA: float32(ca) / 0xffff,
		}
	}
	is := make([]uint16, 0, 3*(len(pts)-2))
	for i := 1; i+1 < len(pts); i++ {
		is = append(is, 0, uint16(i), uint16(i+1))
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	dst.DrawTriangles(vs, is, white(), op)
}
