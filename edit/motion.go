package edit

import (
	"github.com/mattn/go-runewidth"

	"github.com/dteedit/dte/buffer"
)

// SmartBolType selects move_bol's toggle behavior, mirroring
// original_source/src/move.c's SmartBolType enum.
type SmartBolType int

const (
	// BOLSimple always goes to byte offset 0 of the line.
	BOLSimple SmartBolType = iota
	// BOLIndent goes to the first non-blank character when the cursor
	// is past it, and otherwise to byte offset 0 (staying there if
	// already at byte 0).
	BOLIndent
	// BOLToggleLR toggles between byte 0 and the first non-blank
	// character on repeated invocation.
	BOLToggleLR
)

// DisplayColumn computes the 0-based display column of it within its
// line, expanding tabs to tabWidth and counting each rune's terminal
// cell width via go-runewidth, the same library render's
// screen-column calculations use.
func DisplayColumn(it buffer.BlockIter, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 8
	}
	bol := it
	bol.BOL()
	target := it.ByteOffset()

	col := 0
	for bol.ByteOffset() < target {
		r, size := bol.RuneAt()
		if size == 0 || r == '\n' {
			break
		}
		if r == '\t' {
			col = nextTabStop(col, tabWidth)
		} else {
			col += runewidth.RuneWidth(r)
		}
		bol.StepChar()
	}
	return col
}

func nextTabStop(col, tabWidth int) int {
	return col + (tabWidth - col%tabWidth)
}

// MoveToPreferredX repositions the cursor within its current line to
// the display column preferredX, landing on the nearest character
// boundary at or before it. Grounded on move_to_preferred_x (the
// emulate_tab indentation-snap branch is out of scope: this editor's
// LocalOptions doesn't carry that flag, see DESIGN.md).
func (v *View) MoveToPreferredX(preferredX int) {
	tabWidth := v.Buffer.Options.TabWidth
	if tabWidth <= 0 {
		tabWidth = 8
	}
	v.Cursor.BOL()

	col := 0
	for col < preferredX {
		r, size := v.Cursor.RuneAt()
		if size == 0 || r == '\n' {
			break
		}
		var next int
		if r == '\t' {
			next = nextTabStop(col, tabWidth)
		} else {
			next = col + runewidth.RuneWidth(r)
		}
		if next > preferredX {
			break
		}
		col = next
		v.Cursor.StepChar()
	}
}

// MoveLeft moves the cursor back one character, wrapping to the
// end of the previous line at BOL.
func (v *View) MoveLeft() {
	if !v.Cursor.PrevChar() {
		return
	}
	v.ResetPreferredX()
}

// MoveRight moves the cursor forward one character, wrapping to
// the start of the next line at EOL.
func (v *View) MoveRight() {
	if !v.Cursor.StepChar() {
		return
	}
	v.ResetPreferredX()
}

// MoveBOL implements move_bol's three toggle variants.
func (v *View) MoveBOL(kind SmartBolType) {
	bol := v.Cursor
	bol.BOL()
	cursorOffset := v.Cursor.ByteOffset() - bol.ByteOffset()

	if kind == BOLSimple {
		v.Cursor = bol
		v.ResetPreferredX()
		return
	}

	atBOL := cursorOffset == 0
	if atBOL && kind == BOLIndent {
		v.ResetPreferredX()
		return
	}

	indent := blankPrefixLen(bol)
	if atBOL {
		// At BOL and toggling: move right to the first non-blank rune.
		for i := 0; i < indent; i++ {
			v.Cursor.StepChar()
		}
		v.ResetPreferredX()
		return
	}

	var move int
	if cursorOffset > indent && kind != BOLToggleLR {
		move = cursorOffset - indent
	} else {
		move = cursorOffset
	}
	for i := 0; i < move; i++ {
		v.Cursor.PrevChar()
	}
	v.ResetPreferredX()
}

// blankPrefixLen counts the run of leading spaces/tabs on the line it
// (already at BOL) points into.
func blankPrefixLen(it buffer.BlockIter) int {
	n := 0
	for {
		r, size := it.RuneAt()
		if size == 0 || (r != ' ' && r != '\t') {
			return n
		}
		it.StepChar()
		n++
	}
}

// MoveEOL moves to just past the line's last character (onto its
// newline, or EOF).
func (v *View) MoveEOL() {
	v.Cursor.EOL()
	v.ResetPreferredX()
}

// MoveUp moves up count lines, restoring the preferred display column.
func (v *View) MoveUp(count int) {
	x := v.getPreferredX()
	for ; count > 0; count-- {
		if !v.Cursor.PrevLine() {
			break
		}
	}
	v.MoveToPreferredX(x)
	v.preferredX, v.preferredXValid = x, true
}

// MoveDown moves down count lines, restoring the preferred display column.
func (v *View) MoveDown(count int) {
	x := v.getPreferredX()
	for ; count > 0; count-- {
		if !v.Cursor.NextLine() {
			break
		}
	}
	v.MoveToPreferredX(x)
	v.preferredX, v.preferredXValid = x, true
}

// MoveBOF moves to the start of the buffer.
func (v *View) MoveBOF() {
	v.Cursor = v.Buffer.BOF()
	v.ResetPreferredX()
}

// MoveEOF moves to the end of the buffer.
func (v *View) MoveEOF() {
	v.Cursor = v.Buffer.EOF()
	v.ResetPreferredX()
}

// GotoLine moves to the first byte of 1-based line number line and
// requests a re-center on the next repaint.
func (v *View) GotoLine(line int) {
	if line < 1 {
		line = 1
	}
	v.CenterOnScroll = true
	v.Cursor = v.Buffer.GoToLine(line - 1)
}

// GotoColumn moves to the 1-based character column within the current
// line (a tab or wide character counts as one), stopping early at a
// newline.
func (v *View) GotoColumn(column int) {
	v.Cursor.BOL()
	for column > 1 {
		r, size := v.Cursor.RuneAt()
		if size == 0 || r == '\n' {
			break
		}
		if !v.Cursor.StepChar() {
			break
		}
		column--
	}
	v.ResetPreferredX()
}
