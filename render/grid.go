package render

import (
	"github.com/mattn/go-runewidth"

	"github.com/dteedit/dte/term"
)

// Cell is one screen position's desired content: a rune and the
// attribute it should be painted with. Wide runes (CJK, some emoji)
// occupy two cells; the second cell is written as a zero-rune
// placeholder the diff skips over, matching how terminals themselves
// treat the column after a double-width character.
type Cell struct {
	Rune rune
	Attr term.Attr
}

// Grid is one full frame's worth of desired cell contents, addressed
// the same (x, y) way term.Screen.SetCell is.
type Grid struct {
	W, H  int
	cells []Cell
}

// NewGrid allocates a blank grid of the given size, every cell a
// space with the zero Attr.
func NewGrid(w, h int) *Grid {
	g := &Grid{W: w, H: h, cells: make([]Cell, w*h)}
	for i := range g.cells {
		g.cells[i] = Cell{Rune: ' '}
	}
	return g
}

func (g *Grid) index(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return 0, false
	}
	return y*g.W + x, true
}

// Set writes one cell, silently clipping writes outside the grid
// (the same clip-at-the-edge behavior every renderer call site in
// peco's layout.go relies on rather than bounds-checking itself).
func (g *Grid) Set(x, y int, cell Cell) {
	if i, ok := g.index(x, y); ok {
		g.cells[i] = cell
	}
}

// Get reads one cell; out-of-range reads return a blank cell rather
// than panicking, so diffing against a resized previous grid is safe.
func (g *Grid) Get(x, y int) Cell {
	if i, ok := g.index(x, y); ok {
		return g.cells[i]
	}
	return Cell{Rune: ' '}
}

// PutString writes s starting at (x, y) with attr, advancing by each
// rune's display width and writing a zero-rune placeholder cell for the
// second column of any double-width rune, so column arithmetic done
// by callers (cursor placement, right-aligned status text) stays
// correct the way edit.DisplayColumn's tab/width expansion does for
// the buffer side of the same problem.
func (g *Grid) PutString(x, y int, s string, attr term.Attr) int {
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w <= 0 {
			w = 1
		}
		g.Set(col, y, Cell{Rune: r, Attr: attr})
		for i := 1; i < w; i++ {
			g.Set(col+i, y, Cell{Rune: 0, Attr: attr})
		}
		col += w
	}
	return col
}

// Fill paints every cell in [x, x+w) on row y with attr and a space,
// the grid equivalent of peco's PrintArgs{Fill: true}.
func (g *Grid) Fill(x, y, w int, attr term.Attr) {
	for i := 0; i < w; i++ {
		g.Set(x+i, y, Cell{Rune: ' ', Attr: attr})
	}
}
