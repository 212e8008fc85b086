// Package edit implements the cursor-motion, selection, indent/shift,
// and search/replace operations that sit on top of buffer.Buffer and
// change.Tree: the editing behavior a key binding or command actually
// invokes. Grounded on original_source/src/move.c, indent.c, and
// shift.c.
package edit

import (
	"github.com/dteedit/dte/buffer"
	"github.com/dteedit/dte/change"
)

// View is one cursor's-worth of editing state over a Buffer: a
// "Preferred-x" column plus the BlockIter cursor itself. Mirrors
// dte's View struct narrowed to the fields move.c/indent.c/shift.c
// actually touch (the render-facing scroll/window fields live in the
// layout package instead).
type View struct {
	Buffer  *buffer.Buffer
	Cursor  buffer.BlockIter
	Changes *change.Tree

	preferredX      int
	preferredXValid bool

	// CenterOnScroll requests the renderer re-center the view on the
	// cursor line at the next repaint (set by GotoLine, matching
	// move_to_line's view->center_on_scroll = true).
	CenterOnScroll bool

	// selKind/selAnchor hold the selection state this design describes
	// for View: "a selection anchor offset or 'no selection', a
	// selection kind (none / chars / lines)". See selection.go.
	selKind   SelectionKind
	selAnchor int
}

// NewView returns a View positioned at the start of b, recording
// edits into changes (nil disables undo tracking).
func NewView(b *buffer.Buffer, changes *change.Tree) *View {
	return &View{Buffer: b, Cursor: b.BOF(), Changes: changes}
}

// ResetPreferredX clears the remembered column, so the next vertical
// motion re-derives it from the cursor's current position. Every
// non-vertical motion calls this, matching move.c's
// view_reset_preferred_x calls.
func (v *View) ResetPreferredX() {
	v.preferredXValid = false
}

// getPreferredX returns the remembered column, falling back to the
// cursor's current display column (view_get_preferred_x).
func (v *View) getPreferredX() int {
	if v.preferredXValid {
		return v.preferredX
	}
	return DisplayColumn(v.Cursor, v.Buffer.Options.TabWidth)
}
