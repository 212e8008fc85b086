package edit

// InsertText inserts s at the cursor and records it for undo,
// satisfying input.Target so a View can be wired as a mode's literal-
// insertion destination directly. Matches insertAt's offset-then-
// Insert-then-record ordering.
func (v *View) InsertText(s string) {
	if s == "" {
		return
	}
	insertAt(&v.Cursor, v.Changes, []byte(s))
	v.ResetPreferredX()
}

// GotoOffset moves the cursor to absolute byte offset, for callers
// (search, tag jumps) that locate a target position outside of any
// existing BlockIter.
func (v *View) GotoOffset(offset int) {
	v.Cursor = v.seekOffset(offset)
	v.ResetPreferredX()
}
