package edit

// Register holds one clipboard-like slot: the last yanked or deleted
// text plus whether it was captured line-wise (so Paste knows whether
// to insert it at the cursor or as whole lines above/below). Grounded
// on this design's "Shared-resource policy": "the clipboard ... is
// process-wide and mutated only by the main thread" — so Register
// carries no locking of its own; callers are responsible for only
// touching it from the main thread, exactly as the buffer/tag-cache
// registers this design describes.
type Register struct {
	Text     string
	Linewise bool
}

// Set stores text into the register.
func (r *Register) Set(text string, linewise bool) {
	r.Text = text
	r.Linewise = linewise
}

// Copy stores the active selection's text into reg without modifying
// the buffer. Does nothing if there's no active selection.
func (v *View) Copy(reg *Register) {
	start, end, ok := v.Selection()
	if !ok {
		return
	}
	content := v.Buffer.Bytes()
	reg.Set(string(content[start:end]), v.selKind == SelectLines)
}

// Cut deletes the active selection, recording the edit, and stores the
// removed text into reg. Does nothing if there's no active selection.
func (v *View) Cut(reg *Register) {
	start, end, ok := v.Selection()
	if !ok {
		return
	}
	it := v.seekOffset(start)
	linewise := v.selKind == SelectLines
	v.ClearSelection()
	deleted := it.Delete(end - start)
	if v.Changes != nil && len(deleted) > 0 {
		v.Changes.RecordDelete(start, deleted)
	}
	reg.Set(string(deleted), linewise)
	v.Cursor = it
	v.ResetPreferredX()
}

// Paste inserts reg's text at the cursor. A line-wise register is
// inserted as whole lines starting at the current line's beginning
// (matching a linewise yank's usual "paste above/below" placement);
// a character-wise register is inserted directly at the cursor.
func (v *View) Paste(reg *Register) {
	if reg.Text == "" {
		return
	}
	it := v.Cursor
	if reg.Linewise {
		it.BOL()
	}
	insertAt(&it, v.Changes, []byte(reg.Text))
	v.Cursor = it
	v.ResetPreferredX()
}
