package render

import (
	"github.com/dteedit/dte/syntax"
	"github.com/dteedit/dte/term"
)

// PaintLine writes one source line into row y of g starting at column
// x, expanding tabs to tabWidth and resolving each byte range's style
// from spans — the spans produced by syntax.Highlighter.HighlightLine,
// assumed sorted and non-overlapping the way the highlighter's own
// condition-matching loop guarantees. base is the attribute unstyled
// runs (or bytes span doesn't cover) are painted with, letting a
// caller give a window its own default background independent of
// whatever the loaded syntax file defines.
func PaintLine(g *Grid, x, y int, line []byte, spans []syntax.Span, styles *syntax.StyleMap, base term.Attr, tabWidth int) {
	if tabWidth <= 0 {
		tabWidth = 8
	}
	col := x
	byteOff := 0
	spanIdx := 0
	for _, r := range string(line) {
		attr := base
		for spanIdx < len(spans) && byteOff >= spans[spanIdx].End {
			spanIdx++
		}
		if spanIdx < len(spans) {
			sp := spans[spanIdx]
			if byteOff >= sp.Start && byteOff < sp.End && sp.Style != nil {
				attr = mergeAttr(base, Bridge(sp.Style))
			}
		}
		if r == '\t' {
			next := nextTabStop(col-x, tabWidth) + x
			g.Fill(col, y, next-col, attr)
			col = next
		} else {
			col = g.PutString(col, y, string(r), attr)
		}
		byteOff += len(string(r))
	}
	_ = styles // reserved for per-name fallback lookups once action styles need it
}

// mergeAttr lets a span's style override only the channels it
// actually sets, so a keyword highlighted bold-only still shows the
// window's own background rather than going transparent-black.
func mergeAttr(base, over term.Attr) term.Attr {
	out := base
	if over.HasFg {
		out.Foreground, out.HasFg = over.Foreground, true
	}
	if over.HasBg {
		out.Background, out.HasBg = over.Background, true
	}
	out.Bold = out.Bold || over.Bold
	out.Underline = out.Underline || over.Underline
	out.Italic = out.Italic || over.Italic
	return out
}

func nextTabStop(col, tabWidth int) int {
	return col + (tabWidth - col%tabWidth)
}
