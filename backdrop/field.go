package backdrop

import "math"

// Pointer is the last known pointer position in logical units.
type Pointer struct {
	X, Y float64
}

// Offscreen is the pointer position before any mouse event arrives.
var Offscreen = Pointer{X: -1000, Y: -1000}

// PointerAt converts a terminal cell to the logical position of its centre.
func PointerAt(col, row int, p Params) Pointer {
	p = p.withDefaults()
	return Pointer{
		X: (float64(col) + 0.5) * p.CellWidth,
		Y: (float64(row) + 0.5) * p.CellHeight,
	}
}

// Surface is the drawing area, in cells and in logical units.
type Surface struct {
	Cols, Rows    int
	Width, Height float64
}

// NewSurface sizes a surface of cols x rows terminal cells.
func NewSurface(cols, rows int, p Params) Surface {
	p = p.withDefaults()
	cols, rows = max(cols, 0), max(rows, 0)
	return Surface{
		Cols:   cols,
		Rows:   rows,
		Width:  float64(cols) * p.CellWidth,
		Height: float64(rows) * p.CellHeight,
	}
}

// Dot is one grid point for one frame.
type Dot struct {
	X, Y     float64
	Col, Row int
	Size     float64
	Alpha    float64
}

// Glow returns dot size and alpha at distance d from the pointer. Inside
// the radius both grow linearly as d shrinks; outside they are the base values.
func Glow(p Params, d float64) (size, alpha float64) {
	p = p.withDefaults()
	if d >= p.Radius {
		return p.BaseSize, p.BaseAlpha
	}
	factor := 1 - d/p.Radius
	size = p.BaseSize + p.BaseSize*(p.MaxScale-1)*factor
	alpha = p.BaseAlpha + p.GlowAlpha*factor
	return size, alpha
}

// Compute lays the grid over s and applies the pointer glow to every dot.
func Compute(s Surface, ptr Pointer, p Params) []Dot {
	p = p.withDefaults()
	if s.Cols == 0 || s.Rows == 0 {
		return nil
	}

	nx := int(math.Ceil(s.Width / p.Spacing))
	ny := int(math.Ceil(s.Height / p.Spacing))
	dots := make([]Dot, 0, nx*ny)

	for x := 0.0; x < s.Width; x += p.Spacing {
		for y := 0.0; y < s.Height; y += p.Spacing {
			d := math.Hypot(x-ptr.X, y-ptr.Y)
			size, alpha := Glow(p, d)
			dots = append(dots, Dot{
				X:     x,
				Y:     y,
				Col:   min(int(x/p.CellWidth), s.Cols-1),
				Row:   min(int(y/p.CellHeight), s.Rows-1),
				Size:  size,
				Alpha: alpha,
			})
		}
	}
	return dots
}
