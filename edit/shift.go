package edit

import (
	"github.com/dteedit/dte/buffer"
	"github.com/dteedit/dte/change"
)

// insertAt inserts data at it and records it, the edit package's
// stand-in for the original's buffer_insert_bytes (which threads
// through a single View that owns both the BlockIter and the change
// log).
func insertAt(it *buffer.BlockIter, changes *change.Tree, data []byte) {
	offset := it.ByteOffset()
	it.Insert(data)
	if changes != nil {
		changes.RecordInsert(offset, data)
	}
}

// deleteAt deletes n bytes at it and records the deletion.
func deleteAt(it *buffer.BlockIter, changes *change.Tree, n int) {
	offset := it.ByteOffset()
	removed := it.Delete(n)
	if changes != nil && len(removed) > 0 {
		changes.RecordDelete(offset, removed)
	}
}

// replaceAt atomically replaces n bytes at it with data and records
// the replace as a single non-coalescing change.
func replaceAt(it *buffer.BlockIter, changes *change.Tree, n int, data []byte) {
	offset := it.ByteOffset()
	removed := it.Replace(n, data)
	if changes != nil {
		changes.RecordReplace(offset, removed, data)
	}
}

// shiftLineRight applies shift_right's per-line logic to the single
// line at bol (already positioned at BOL): remove a whitespace-only
// line's indentation, extend a "sane" indentation by one level, or
// normalize an insane one to info.Level+count sane levels.
func shiftLineRight(v *View, bol *buffer.BlockIter, count int) {
	line := lineBytes(*bol)
	info := GetIndentInfo(v.Buffer.Options, line)
	switch {
	case info.WSOnly:
		if info.Bytes > 0 {
			deleteAt(bol, v.Changes, info.Bytes)
		}
	case info.Sane:
		insertAt(bol, v.Changes, []byte(makeIndentLevels(v.Buffer.Options, count)))
	default:
		replaceAt(bol, v.Changes, info.Bytes, []byte(makeIndentLevels(v.Buffer.Options, info.Level+count)))
	}
}

// shiftLineLeft applies shift_left's per-line logic.
func shiftLineLeft(v *View, bol *buffer.BlockIter, count int) {
	opts := v.Buffer.Options
	line := lineBytes(*bol)
	info := GetIndentInfo(opts, line)
	switch {
	case info.WSOnly:
		if info.Bytes > 0 {
			deleteAt(bol, v.Changes, info.Bytes)
		}
	case info.Level > 0 && info.Sane:
		n := count
		if n > info.Level {
			n = info.Level
		}
		if useSpacesForIndent(opts) {
			n *= opts.IndentWidth
		}
		deleteAt(bol, v.Changes, n)
	case info.Bytes > 0:
		if info.Level > count {
			replaceAt(bol, v.Changes, info.Bytes, []byte(makeIndentLevels(opts, info.Level-count)))
		} else {
			deleteAt(bol, v.Changes, info.Bytes)
		}
	}
}

// makeIndentLevels is MakeIndent scaled by the buffer's indent width,
// i.e. alloc_indent's count-of-levels variant rather than
// MakeIndent's width-in-columns one.
func makeIndentLevels(opts buffer.LocalOptions, levels int) string {
	if levels <= 0 {
		return ""
	}
	return MakeIndent(opts, levels*opts.IndentWidth)
}

// ShiftLines shifts the cursor's line (or, with an active selection,
// every selected line) right (count > 0) or left (count < 0) by
// |count| indent levels, bracketing every per-line edit in one undo
// chain. Grounded on shift_lines/do_shift_lines/shift_right/shift_left.
func (v *View) ShiftLines(count int) {
	if count == 0 {
		return
	}
	width := v.Buffer.Options.IndentWidth
	x := v.getPreferredX() + count*width
	if x < 0 {
		x = 0
	}

	nrLines := 1
	if v.selKind != SelectNone {
		start, _, _ := v.Selection()
		v.selKind = SelectLines
		nrLines = v.NumSelectedLines()
		v.Cursor = v.seekOffset(start)
	}

	if v.Changes != nil {
		v.Changes.BeginChangeChain()
	}
	v.Cursor.BOL()
	for i := 0; i < nrLines; i++ {
		if count > 0 {
			shiftLineRight(v, &v.Cursor, count)
		} else {
			shiftLineLeft(v, &v.Cursor, -count)
		}
		if i+1 < nrLines {
			v.Cursor.NextLine()
		}
	}
	if v.Changes != nil {
		v.Changes.EndChangeChain()
	}

	v.MoveToPreferredX(x)
	v.preferredX, v.preferredXValid = x, true
}
