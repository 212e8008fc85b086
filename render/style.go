package render

import (
	"github.com/dteedit/dte/syntax"
	"github.com/dteedit/dte/term"
)

// Bridge resolves a *syntax.Style into the term package's own
// attribute type, the hand-off point between the highlighter (which
// knows nothing of terminals) and the screen backend (which knows
// nothing of syntax definitions). A nil style (unhighlighted text)
// bridges to the zero Attr, meaning "whatever the default pane style
// is" — callers merge that with the pane's base Attr themselves.
func Bridge(s *syntax.Style) term.Attr {
	if s == nil {
		return term.Attr{}
	}
	a := term.Attr{Bold: s.Bold, Underline: s.Underline, Italic: s.Italic}
	if rgb, ok := ParseColor(s.Foreground); ok {
		a.Foreground, a.HasFg = rgb, true
	}
	if rgb, ok := ParseColor(s.Background); ok {
		a.Background, a.HasBg = rgb, true
	}
	return a
}
