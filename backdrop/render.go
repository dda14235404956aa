package backdrop

import (
	"math"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// alphaLevels quantizes alpha so styled glyphs can be reused across frames.
const alphaLevels = 32

// Glyph picks a dot character for a dot of the given size.
func Glyph(p Params, size float64) string {
	p = p.withDefaults()
	ratio := size / p.BaseSize
	switch {
	case ratio >= 3:
		return "●"
	case ratio >= 2:
		return "•"
	default:
		return "·"
	}
}

// DotColor blends the dot colour over the background at the given alpha.
func DotColor(p Params, alpha float64) colorful.Color {
	alpha = math.Max(0, math.Min(1, alpha))
	return p.Background.BlendRgb(p.Color, alpha).Clamped()
}

type glyphKey struct {
	glyph string
	level int
}

type palette struct {
	params Params

	mu    sync.Mutex
	cache map[glyphKey]string
}

func newPalette(p Params) *palette {
	return &palette{params: p, cache: make(map[glyphKey]string)}
}

func (pl *palette) styled(glyph string, alpha float64) string {
	level := int(math.Round(math.Max(0, math.Min(1, alpha)) * alphaLevels))
	key := glyphKey{glyph: glyph, level: level}

	pl.mu.Lock()
	defer pl.mu.Unlock()
	if s, ok := pl.cache[key]; ok {
		return s
	}
	c := DotColor(pl.params, float64(level)/alphaLevels)
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render(glyph)
	pl.cache[key] = s
	return s
}

// render places dots on the cell grid. When several dots share a cell the
// largest one wins.
func (pl *palette) render(s Surface, dots []Dot) string {
	cells := make([]*Dot, s.Cols*s.Rows)
	for i := range dots {
		d := &dots[i]
		idx := d.Row*s.Cols + d.Col
		if cur := cells[idx]; cur == nil || d.Size > cur.Size {
			cells[idx] = d
		}
	}

	var b strings.Builder
	for row := 0; row < s.Rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < s.Cols; col++ {
			d := cells[row*s.Cols+col]
			if d == nil {
				b.WriteByte(' ')
				continue
			}
			b.WriteString(pl.styled(Glyph(pl.params, d.Size), d.Alpha))
		}
	}
	return b.String()
}
