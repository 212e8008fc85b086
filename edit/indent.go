package edit

import (
	"strings"

	"github.com/dteedit/dte/buffer"
)

// IndentInfo summarizes a line's leading whitespace run, grounded on
// original_source/src/indent.c's IndentInfo: the display width it
// occupies, its indent level (width / indent_width), whether it is
// "sane" (consistently spaces-only or tabs-only up to the last whole
// level), the raw byte count, and whether the whole line is
// whitespace.
type IndentInfo struct {
	Width  int
	Level  int
	Sane   bool
	Bytes  int
	WSOnly bool
}

func indentLevel(width, indentWidth int) int {
	if indentWidth <= 0 {
		return 0
	}
	return width / indentWidth
}

func indentRemainder(width, indentWidth int) int {
	if indentWidth <= 0 {
		return 0
	}
	return width % indentWidth
}

func nextIndentWidth(width, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 8
	}
	return width + (tabWidth - width%tabWidth)
}

// useSpacesForIndent mirrors dte's use_spaces_for_indent(): spaces
// unless the buffer's ExpandTab option is off.
func useSpacesForIndent(opts buffer.LocalOptions) bool {
	return opts.ExpandTab
}

// GetIndentInfo classifies line's leading whitespace run against opts,
// matching get_indent_info's single left-to-right scan.
func GetIndentInfo(opts buffer.LocalOptions, line []byte) IndentInfo {
	spaceIndent := useSpacesForIndent(opts)
	info := IndentInfo{Sane: true}
	var spaces, tabs, pos int

	for pos = 0; pos < len(line); pos++ {
		switch line[pos] {
		case ' ':
			info.Width++
			spaces++
		case '\t':
			info.Width = nextIndentWidth(info.Width, opts.TabWidth)
			tabs++
		default:
			goto scanned
		}
		if indentRemainder(info.Width, opts.IndentWidth) == 0 && info.Sane {
			if spaceIndent {
				info.Sane = tabs == 0
			} else {
				info.Sane = spaces == 0
			}
		}
	}
scanned:
	info.Level = indentLevel(info.Width, opts.IndentWidth)
	info.WSOnly = pos == len(line)
	info.Bytes = spaces + tabs
	return info
}

// MakeIndent builds width columns of indentation text per opts: all
// spaces if ExpandTab, else one tab per whole TabWidth columns plus a
// spaces remainder.
func MakeIndent(opts buffer.LocalOptions, width int) string {
	if width <= 0 {
		return ""
	}
	if useSpacesForIndent(opts) {
		return strings.Repeat(" ", width)
	}
	tabs := indentLevel(width, opts.TabWidth)
	spaces := indentRemainder(width, opts.TabWidth)
	return strings.Repeat("\t", tabs) + strings.Repeat(" ", spaces)
}

// GetIndentForNextLine computes the indentation auto-indent should
// carry onto a freshly opened line below `line`, at the same width
// as line's own indentation. Unlike get_indent_for_next_line, this
// never increases the width for brace-opening lines: that branch in
// the original depends on a compiled regex engine not wired into
// this package (this design's "Regex engine" design note treats any
// conforming engine as acceptable, but none is plugged in here yet;
// the syntax package is the one that owns regex condition matching).
func GetIndentForNextLine(opts buffer.LocalOptions, line []byte) string {
	width := 0
	for _, c := range line {
		switch c {
		case ' ':
			width++
		case '\t':
			width = nextIndentWidth(width, opts.TabWidth)
		default:
			return MakeIndent(opts, width)
		}
	}
	return MakeIndent(opts, width)
}

// currentIndentBytes mirrors get_current_indent_bytes: the number of
// bytes making up the last indentation level before cursorOffset in
// buf (the count restarts at every level boundary), or -1 if the
// cursor isn't positioned exactly on an indentation-level boundary
// within pure whitespace.
func currentIndentBytes(buf []byte, cursorOffset, indentWidth, tabWidth int) int {
	bytes := 0
	width := 0
	for i := 0; i < cursorOffset; i++ {
		if indentRemainder(width, indentWidth) == 0 {
			bytes = 0
			width = 0
		}
		switch buf[i] {
		case '\t':
			width = nextIndentWidth(width, tabWidth)
		case ' ':
			width++
		default:
			return -1
		}
		bytes++
	}
	if indentRemainder(width, indentWidth) != 0 {
		return -1
	}
	return bytes
}

// IndentLevelBytesLeft returns how many bytes of indentation
// `emulate_tab`-style backspace should delete to the left of the
// cursor, or 0 if the cursor isn't at a clean indent-level boundary.
func IndentLevelBytesLeft(opts buffer.LocalOptions, cursor buffer.BlockIter) int {
	bol := cursor
	bol.BOL()
	cursorOffset := cursor.ByteOffset() - bol.ByteOffset()
	if cursorOffset == 0 {
		return 0
	}
	line := lineBytes(bol)
	n := currentIndentBytes(line, cursorOffset, opts.IndentWidth, opts.TabWidth)
	if n < 0 {
		return 0
	}
	return n
}

// IndentLevelBytesRight returns how many bytes of indentation
// `emulate_tab`-style Delete should remove to the right of the
// cursor, or 0 if not applicable.
func IndentLevelBytesRight(opts buffer.LocalOptions, cursor buffer.BlockIter) int {
	bol := cursor
	bol.BOL()
	cursorOffset := cursor.ByteOffset() - bol.ByteOffset()
	line := lineBytes(bol)
	if currentIndentBytes(line, cursorOffset, opts.IndentWidth, opts.TabWidth) < 0 {
		return 0
	}

	width := 0
	for i := cursorOffset; i < len(line); i++ {
		switch line[i] {
		case '\t':
			width = nextIndentWidth(width, opts.TabWidth)
		case ' ':
			width++
		default:
			return 0
		}
		if indentRemainder(width, opts.IndentWidth) == 0 {
			return i - cursorOffset + 1
		}
	}
	return 0
}

// lineBytes reads bol's (already-at-BOL) current line content,
// excluding the trailing newline.
func lineBytes(bol buffer.BlockIter) []byte {
	eol := bol
	eol.EOL()
	content := bol.Buffer().Bytes()
	lo, hi := bol.ByteOffset(), eol.ByteOffset()
	if lo < 0 || hi > len(content) || lo > hi {
		return nil
	}
	return content[lo:hi]
}
