//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Overlay draws the brush outline on top of the grid view.
type Overlay struct {
	scale   int
	gridW   int
	gridH   int
	visible bool
	cx, cy  int
	radius  int

	pixel *ebiten.Image
}

// NewOverlay constructs an overlay for a w×h grid drawn at scale.
func NewOverlay(w, h, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{scale: scale, gridW: w, gridH: h}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// SetBrush places the outline at grid cell (x, y). visible=false hides it.
func (o *Overlay) SetBrush(x, y, radius int, visible bool) {
	o.cx, o.cy, o.radius, o.visible = x, y, radius, visible
}

// Draw paints the outline cells that fall inside the grid.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	s := float64(o.scale)
	for _, p := range circleOutline(o.cx, o.cy, o.radius) {
		if p.X < 0 || p.Y < 0 || p.X >= o.gridW || p.Y >= o.gridH {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(s, s)
		op.GeoM.Translate(float64(p.X)*s, float64(p.Y)*s)
		op.ColorScale.ScaleWithColor(color.RGBA{R: 255, G: 255, B: 255, A: 160})
		screen.DrawImage(o.pixel, op)
	}
}
