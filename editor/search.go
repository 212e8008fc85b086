package editor

import (
	"github.com/dteedit/dte/edit"
	"github.com/dteedit/dte/errbuf"
)

// runSearch compiles pattern and moves the active view's cursor to
// the next match at or after the current position, wrapping around the
// buffer — the `search`/`accept` pair's effect once the typed pattern
// is accepted out of search mode.
func (s *State) runSearch(eb *errbuf.ErrorBuffer, pattern string) bool {
	if pattern == "" {
		return true
	}
	ob := s.ActiveBuffer()
	if ob == nil {
		return eb.ErrorMsg("no active buffer")
	}
	re, err := edit.CompileSearchPattern(pattern)
	if err != nil {
		return eb.ErrorMsg("%s", err)
	}
	content := string(ob.Buffer.Bytes())
	from := ob.View.Cursor.ByteOffset()
	match, ok := edit.FindNext(re, content, from, edit.SearchForward, true)
	if !ok {
		return eb.ErrorMsg("Pattern not found: %s", pattern)
	}
	ob.View.GotoOffset(match.Start)
	return true
}
