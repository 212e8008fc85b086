package editor

import (
	"fmt"
	"strconv"

	"github.com/dteedit/dte/buffer"
	"github.com/dteedit/dte/edit"
	"github.com/dteedit/dte/input"
	"github.com/dteedit/dte/layout"
	"github.com/dteedit/dte/render"
	"github.com/dteedit/dte/term"
)

var (
	lineNumberAttr = term.Attr{Foreground: term.RGB{R: 127, G: 127, B: 127}, HasFg: true}
	statusAttr     = term.Attr{Foreground: term.RGB{R: 0, G: 0, B: 0}, Background: term.RGB{R: 200, G: 200, B: 200}, HasFg: true, HasBg: true}
	errorAttr      = term.Attr{Foreground: term.RGB{R: 255, G: 255, B: 255}, Background: term.RGB{R: 160, G: 0, B: 0}, HasFg: true, HasBg: true}
)

// Paint builds one full-screen Grid reflecting s's current state —
// every window's visible lines, gutters, and the bottom status/command
// line — and flushes it through s.Renderer. Syntax highlighting isn't
// wired in here (no per-buffer Syntax is attached yet in this
// package), so every line paints as a single unstyled run; that hook
// point is render.PaintLine once a buffer carries a *syntax.Syntax.
func (s *State) Paint() error {
	w, h := s.Screen.Size()
	grid := render.NewGrid(w, h)

	s.Root.ForEach(func(win *layout.Window) {
		s.paintWindow(grid, win)
	})

	s.paintStatusLine(grid, h-1, w)

	if err := s.Renderer.Flush(grid); err != nil {
		return err
	}
	s.placeCursor()
	return s.Screen.Flush()
}

func (s *State) paintWindow(grid *render.Grid, win *layout.Window) {
	if win.View == nil {
		return
	}
	buf := win.View.Buffer
	topLine := win.View.Cursor.LineNumber() // no scroll-offset tracking yet: first visible line tracks the cursor's line
	if topLine < 0 {
		topLine = 0
	}

	for row := 0; row < win.EditH; row++ {
		lineNum := topLine + row
		y := win.EditY + row
		if win.LineNumberWidth > 0 {
			paintLineNumber(grid, win, y, lineNum, buf.NLCount())
		}
		if lineNum > buf.NLCount() {
			continue
		}
		line := readLine(buf, lineNum)
		render.PaintLine(grid, win.EditX, y, line, nil, nil, term.Attr{}, defaultTabWidth)
	}
}

func paintLineNumber(grid *render.Grid, win *layout.Window, y, lineNum, total int) {
	text := ""
	if lineNum <= total {
		text = strconv.Itoa(lineNum + 1)
	}
	pad := win.LineNumberWidth - 1 - len(text)
	x := win.Rect.X
	for i := 0; i < pad; i++ {
		grid.Set(x+i, y, render.Cell{Rune: ' ', Attr: lineNumberAttr})
	}
	grid.PutString(x+pad, y, text, lineNumberAttr)
	grid.Set(x+win.LineNumberWidth-1, y, render.Cell{Rune: ' ', Attr: lineNumberAttr})
}

// readLine extracts one logical line's bytes (without its trailing
// newline) by walking a BlockIter rune-by-rune, the same iteration
// style edit/motion.go and edit/word.go use rather than adding a
// buffer-level "line slice" accessor this package would be the only
// caller of.
func readLine(buf *buffer.Buffer, lineNum int) []byte {
	it := buf.GoToLine(lineNum)
	var out []byte
	for {
		r, size := it.RuneAt()
		if size == 0 || r == '\n' {
			break
		}
		out = append(out, []byte(string(r))...)
		if !it.StepChar() {
			break
		}
	}
	return out
}

func (s *State) paintStatusLine(grid *render.Grid, y, w int) {
	attr := statusAttr
	if s.Ebuf != nil && s.Ebuf.IsError() {
		attr = errorAttr
	}
	grid.Fill(0, y, w, attr)

	mode := "normal"
	if m := s.Dispatcher.Current(); m != nil {
		mode = m.Kind.String()
	}

	msg := ""
	if s.Ebuf != nil {
		msg = s.Ebuf.Message()
	}
	if mode == "command" {
		msg = ":" + s.CommandLine.String()
	} else if mode == "search" {
		msg = "/" + s.SearchLine.String()
	}
	grid.PutString(0, y, msg, attr)

	right := fmt.Sprintf("[%s]", mode)
	grid.PutString(w-len(right), y, right, attr)
}

func (s *State) placeCursor() {
	mode := s.Dispatcher.Current()
	if mode != nil {
		_, h := s.Screen.Size()
		switch mode.Kind {
		case input.ModeCommand:
			s.Screen.ShowCursor(1+s.CommandLine.Pos(), h-1, term.CursorBarSteady)
			return
		case input.ModeSearch:
			s.Screen.ShowCursor(1+s.SearchLine.Pos(), h-1, term.CursorBarSteady)
			return
		}
	}
	if ob := s.ActiveBuffer(); ob != nil && s.Active != nil {
		topLine := ob.View.Cursor.LineNumber()
		row := ob.View.Cursor.LineNumber() - topLine
		col := s.Active.EditX + edit.DisplayColumn(ob.View.Cursor, defaultTabWidth)
		s.Screen.ShowCursor(col, s.Active.EditY+row, term.CursorBlockSteady)
	}
}

const defaultTabWidth = 8
