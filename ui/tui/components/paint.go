package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"circularmenu/internal/menu"
)

// Hit targets reported by the cell grid.
const (
	HitNone       = -2
	HitController = -1
)

// backdrop is what translucent colors are composited over.
var backdrop = colorful.Color{R: 0, G: 0, B: 0}

type cell struct {
	glyph string
	fg    string
	bg    string
	bold  bool
	under bool
	hit   int
}

type grid struct {
	w, h  int
	cells [][]cell
}

func newGrid(w, h int) *grid {
	g := &grid{w: w, h: h, cells: make([][]cell, h)}
	for y := range g.cells {
		row := make([]cell, w)
		for x := range row {
			row[x] = cell{glyph: " ", hit: HitNone}
		}
		g.cells[y] = row
	}
	return g
}

func (g *grid) in(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.w && y < g.h
}

func (g *grid) at(x, y int) *cell {
	if !g.in(x, y) {
		return nil
	}
	return &g.cells[y][x]
}

// hit returns the target under a grid cell.
func (g *grid) hit(x, y int) int {
	if c := g.at(x, y); c != nil {
		return c.hit
	}
	return HitNone
}

func (c cell) style() lipgloss.Style {
	st := lipgloss.NewStyle()
	if c.fg != "" {
		st = st.Foreground(lipgloss.Color(c.fg))
	}
	if c.bg != "" {
		st = st.Background(lipgloss.Color(c.bg))
	}
	return st.Bold(c.bold).Underline(c.under)
}

func (c cell) sameStyle(o cell) bool {
	return c.fg == o.fg && c.bg == o.bg && c.bold == o.bold && c.under == o.under
}

// String renders runs of equally styled cells with one style each.
func (g *grid) String() string {
	var b strings.Builder
	for y, row := range g.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].sameStyle(row[start]) {
				continue
			}
			var run strings.Builder
			for _, c := range row[start:x] {
				run.WriteString(c.glyph)
			}
			b.WriteString(row[start].style().Render(run.String()))
			start = x
		}
	}
	return b.String()
}

// over composites c on top of base using its alpha channel.
func over(base colorful.Color, c menu.Color) colorful.Color {
	col := colorful.Color{
		R: float64(c.R()) / 255,
		G: float64(c.G()) / 255,
		B: float64(c.B()) / 255,
	}
	a := float64(c.A()) / 255
	if a >= 1 {
		return col
	}
	return base.BlendRgb(col, a)
}

func toColorful(c menu.Color) colorful.Color {
	return over(backdrop, c)
}

func hexOf(c menu.Color) string {
	return toColorful(c).Clamped().Hex()
}

// sampleGradient returns the color at t in [0, 1] with stops spread evenly.
// Neighbouring stops are blended in Lab space.
func sampleGradient(g menu.Gradient, t float64) colorful.Color {
	switch len(g.Stops) {
	case 0:
		return backdrop
	case 1:
		return toColorful(g.Stops[0])
	}
	if t <= 0 {
		return toColorful(g.Stops[0])
	}
	if t >= 1 {
		return toColorful(g.Stops[len(g.Stops)-1])
	}
	pos := t * float64(len(g.Stops)-1)
	i := int(pos)
	return toColorful(g.Stops[i]).BlendLab(toColorful(g.Stops[i+1]), pos-float64(i)).Clamped()
}
