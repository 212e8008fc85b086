package editor

import (
	"path/filepath"

	"github.com/dteedit/dte/edit"
	"github.com/dteedit/dte/errbuf"
)

// jumpToTag opens (or switches to) the file a tag definition lives in
// and positions the cursor on it, the effect of the `-t` CLI flag and
// the `tag` command it's equivalent to. Lineno-addressed tags go
// straight to that line; pattern-addressed ones (ctags' `/pattern/`
// form, used when a file was reindexed after edits shifted line
// numbers) fall back to a forward search for the pattern text.
func (s *State) jumpToTag(eb *errbuf.ErrorBuffer, name string) bool {
	if s.Tags == nil {
		return eb.ErrorMsg("no tags file loaded")
	}
	matches := s.Tags.Lookup(name, s.currentFileRelToTags())
	if len(matches) == 0 {
		return eb.ErrorMsg("tag not found: %s", name)
	}
	tag := matches[0]

	path := tag.Filename
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.Tags.Dir, path)
	}
	if !s.openFile(eb, path) {
		return false
	}
	ob := s.ActiveBuffer()

	if tag.Lineno > 0 {
		ob.View.GotoLine(tag.Lineno)
		return true
	}
	if tag.Pattern != "" {
		re, err := edit.CompileSearchPattern(tag.Pattern)
		if err != nil {
			return eb.ErrorMsg("tag %s: %s", name, err)
		}
		content := string(ob.Buffer.Bytes())
		if m, ok := edit.FindNext(re, content, 0, edit.SearchForward, false); ok {
			ob.View.GotoOffset(m.Start)
		}
	}
	return true
}

// currentFileRelToTags reports the active buffer's path relative to
// the tags file's directory, matching the form Tag.Filename is stored
// in, so Lookup's local-definition tie-break can recognize "this is
// the file I'm already in."
func (s *State) currentFileRelToTags() string {
	ob := s.ActiveBuffer()
	if ob == nil || s.Tags == nil {
		return ""
	}
	rel, err := filepath.Rel(s.Tags.Dir, ob.Buffer.File.AbsPath)
	if err != nil {
		return ob.Buffer.File.AbsPath
	}
	return rel
}
