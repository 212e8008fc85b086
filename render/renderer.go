package render

import "github.com/dteedit/dte/term"

// Renderer owns the previous frame's Grid and turns a newly painted
// Grid into the minimal set of term.Screen.SetCell calls needed to
// bring the terminal up to date — this design's "emit exactly enough
// bytes to update the changed lines" contract, implemented here as a
// cell-level diff rather than a byte-level one since term.Screen (and
// tcell underneath it) already owns the actual escape-sequence
// encoding, batching, and sync-update wrapping. This mirrors how
// peco's termbox backend left diffing to termbox itself; dte's own
// diff lives one layer up because the highlighter repaints whole
// lines at a time and most of a line is usually unchanged between
// keystrokes.
type Renderer struct {
	screen term.Screen
	prev   *Grid
}

// NewRenderer wraps screen; the first Flush always repaints every
// cell, since there is no previous frame to diff against.
func NewRenderer(screen term.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Flush diffs next against the last frame rendered (if any) and
// writes only the cells that changed, then asks the screen to
// present the batch. next becomes the new previous frame.
func (r *Renderer) Flush(next *Grid) error {
	for y := 0; y < next.H; y++ {
		for x := 0; x < next.W; x++ {
			cell := next.Get(x, y)
			if r.prev != nil && x < r.prev.W && y < r.prev.H {
				if r.prev.Get(x, y) == cell {
					continue
				}
			}
			if cell.Rune == 0 {
				continue // wide-rune placeholder: nothing to draw here
			}
			r.screen.SetCell(x, y, cell.Rune, cell.Attr)
		}
	}
	r.prev = next
	return r.screen.Flush()
}

// Invalidate discards the cached previous frame, forcing the next
// Flush to repaint unconditionally — used after a resize or after an
// external program may have scribbled on the terminal (exec-open,
// filter, a suspended shell returning via SIGCONT).
func (r *Renderer) Invalidate() {
	r.prev = nil
}
