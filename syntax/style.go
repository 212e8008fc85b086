package syntax

import (
	"golang.org/x/text/cases"

	"github.com/dteedit/dte/internal/intern"
)

// foldCaser does Unicode case folding for InListIcase/LiteralIcase
// condition matching, rather than a byte-wise ToLower: a syntax
// definition's keyword lists are free-form text, not guaranteed
// ASCII, so golang.org/x/text/cases (already in the pack, used
// indirectly for terminal encoding) is the correct fold primitive.
var foldCaser = cases.Fold()

func foldCase(s string) string {
	return foldCaser.String(s)
}

// Style is a resolved terminal attribute set a span of text is
// painted with. Kept minimal here since the renderer (not this
// package) owns the actual terminal color/attribute representation;
// Style is the handle syntax conditions/actions carry a pointer to.
type Style struct {
	Name       string
	Foreground string
	Background string
	Bold       bool
	Underline  bool
	Italic     bool
}

// StyleMap resolves "syntaxname.emitname" strings to a *Style, per
// update_action_style's `"%s.%s"` lookup key. Fully-qualified names
// repeat constantly (every condition that fires the same emit name
// looks it up again on every highlighted line), so the map is keyed by
// intern.ID rather than the string itself: one pool lookup per name
// instead of a string-content comparison on every highlight pass.
type StyleMap struct {
	pool   *intern.Pool
	styles map[intern.ID]*Style
}

// NewStyleMap returns an empty StyleMap with its own name pool.
func NewStyleMap() *StyleMap {
	return &StyleMap{pool: intern.New(), styles: make(map[intern.ID]*Style)}
}

// Set registers a style under a fully-qualified name.
func (m *StyleMap) Set(fullName string, s *Style) {
	m.styles[m.pool.Intern(fullName)] = s
}

// FindStyle looks up a fully-qualified style name.
func FindStyle(m *StyleMap, fullName string) *Style {
	if m == nil {
		return nil
	}
	// Intern rather than just comparing strings: a lookup for a name
	// nothing was ever Set under still gets an id (and a permanent,
	// if harmless, pool entry) the same way a real miss would, which
	// keeps this path identical to the cache-hit path instead of a
	// special case.
	return m.styles[m.pool.Intern(fullName)]
}
