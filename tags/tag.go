// Package tags loads and caches a tags(5) cross-reference file (as
// produced by ctags) and answers definition/prefix queries against it.
// Grounded on original_source/src/tag.h's newer, caller-owned-TagFile
// interface (load_tag_file(TagFile*, ErrorBuffer*), tag_lookup,
// collect_tags, dump_tags, tag_file_free) rather than tag.c's older
// single global current_tag_file — ctags.c/next_tag itself did not
// survive the source filter, so the tags(5) line grammar below is
// written from the format the tag.h field comments and this design's
// Tags(5) note describe, not transliterated from missing C source.
package tags

import (
	"github.com/google/btree"
)

// Tag is one entry from a tags(5) file: a named definition, the file
// it's defined in, how to locate it there, and whether its visibility
// is local to that file (ctags' "file:" field on static symbols).
type Tag struct {
	Name     string
	Filename string
	Pattern  string // a /pattern/ search command, or "" if Lineno is set
	Lineno   int
	Kind     byte // ctags kind letter: 'f' func, 'v' var, 's' struct, ...
	Local    bool
}

// btreeItem adapts a Tag into google/btree's ordering interface, the
// same Item-per-node pattern peco-peco/selection/selection.go uses —
// ordered first by name, then by filename so repeated names from
// different files stay stably grouped.
type btreeItem struct {
	Tag
}

func (a btreeItem) Less(other btree.Item) bool {
	b := other.(btreeItem)
	if a.Name != b.Name {
		return a.Name < b.Name
	}
	if a.Filename != b.Filename {
		return a.Filename < b.Filename
	}
	return a.Lineno < b.Lineno
}
