// Package backdrop draws the decorative dot grid behind the browser. The
// grid glows around the mouse pointer and redraws on every frame tick; it
// never reads application state.
package backdrop

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// Params configures the dot grid. Distances are logical units; a
// terminal cell spans CellWidth x CellHeight units, which keeps the grid
// square on screen even though cells are about twice as tall as wide.
type Params struct {
	Spacing    float64
	Radius     float64
	BaseSize   float64
	MaxScale   float64
	BaseAlpha  float64
	GlowAlpha  float64
	CellWidth  float64
	CellHeight float64
	FPS        int
	Color      colorful.Color
	Background colorful.Color
}

// DefaultParams returns the stock look: rgb(102,126,234) dots every 30
// units, growing up to 4x and +0.4 alpha within 80 units of the pointer.
func DefaultParams() Params {
	return Params{
		Spacing:    30,
		Radius:     80,
		BaseSize:   1.5,
		MaxScale:   4,
		BaseAlpha:  0.15,
		GlowAlpha:  0.4,
		CellWidth:  8,
		CellHeight: 16,
		FPS:        30,
		Color:      colorful.Color{R: 102.0 / 255, G: 126.0 / 255, B: 234.0 / 255},
		Background: colorful.Color{R: 0, G: 0, B: 0},
	}
}

// withDefaults replaces non-positive values with the defaults.
func (p Params) withDefaults() Params {
	d := DefaultParams()
	if p.Spacing <= 0 {
		p.Spacing = d.Spacing
	}
	if p.Radius <= 0 {
		p.Radius = d.Radius
	}
	if p.BaseSize <= 0 {
		p.BaseSize = d.BaseSize
	}
	if p.MaxScale < 1 {
		p.MaxScale = d.MaxScale
	}
	if p.BaseAlpha <= 0 {
		p.BaseAlpha = d.BaseAlpha
	}
	if p.GlowAlpha < 0 {
		p.GlowAlpha = d.GlowAlpha
	}
	if p.CellWidth <= 0 {
		p.CellWidth = d.CellWidth
	}
	if p.CellHeight <= 0 {
		p.CellHeight = d.CellHeight
	}
	if p.FPS <= 0 {
		p.FPS = d.FPS
	}
	return p
}

// FrameInterval returns the delay between frame ticks.
func (p Params) FrameInterval() time.Duration {
	return time.Second / time.Duration(p.withDefaults().FPS)
}
