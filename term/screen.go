// Package term hides the terminal backend from the rest of the editor,
// the same boundary peco-peco/screen.go draws around termbox: a small
// Screen interface the renderer programs against, and one concrete
// implementation backing it with a real library. this design explicitly
// treats the terminfo/ANSI output backend as an external collaborator
// ("mechanical to re-implement"), so this package is the seam, not a
// from-scratch terminal protocol implementation — gdamore/tcell/v2
// already owns CUP/SGR/sync-update emission; golang.org/x/term backs
// the one piece tcell doesn't: querying the current raw terminal size
// for a non-interactive fallback path.
package term

// Event is whatever caused PollEvent to return: a key, a paste, or a
// resize. Mirrors peco's termbox.Event wrapping, generalized to the
// richer key reporting dte's keymap grammar needs (modifiers, Kitty
// keyboard protocol flags when advertised).
type Event interface {
	isEvent()
}

// KeyEvent is one keypress, already decoded into the editor's own key
// representation (see the keys package) rather than a raw byte
// sequence.
type KeyEvent struct {
	Rune  rune
	Name  string // non-empty for named keys: "enter", "up", "f5", ...
	Ctrl  bool
	Alt   bool
	Shift bool
}

func (KeyEvent) isEvent() {}

// PasteEvent carries one bracketed-paste payload as a single unit, so
// the input dispatcher doesn't have to treat a paste as a burst of
// individual keypresses.
type PasteEvent struct {
	Text string
}

func (PasteEvent) isEvent() {}

// ResizeEvent reports the new terminal size in cells.
type ResizeEvent struct {
	Width, Height int
}

func (ResizeEvent) isEvent() {}

// Attr is a resolved terminal attribute set for one screen cell —
// term's own representation, kept separate from syntax.Style so this
// package doesn't need to import syntax; the render package is what
// bridges the two.
type Attr struct {
	Foreground RGB
	Background RGB
	HasFg      bool
	HasBg      bool
	Bold       bool
	Underline  bool
	Italic     bool
}

// RGB is a 24-bit truecolor value; term degrades it to the terminal's
// advertised color depth (256-color or 16-color) when truecolor isn't
// available.
type RGB struct {
	R, G, B uint8
}

// Screen is the boundary the renderer and input dispatcher program
// against, generalizing peco's Screen interface (Clear/Flush/SetCell/
// Size/PollEvent) with a richer cell-attribute type and the cursor/
// title/clipboard operations this design's terminal-protocol note names
// (DECSCUSR cursor style, OSC 52 clipboard, alt-screen toggle).
type Screen interface {
	Init() error
	Fini()

	Size() (w, h int)
	Clear()
	SetCell(x, y int, ch rune, attr Attr)
	ShowCursor(x, y int, style CursorStyle)
	HideCursor()
	Flush() error

	SetClipboard(text string) error
	SetTitle(title string)

	PollEvent() (Event, bool)
	PostResize(w, h int)
}

// CursorStyle maps to DECSCUSR's six shapes.
type CursorStyle int

const (
	CursorDefault CursorStyle = iota
	CursorBlockBlink
	CursorBlockSteady
	CursorUnderlineBlink
	CursorUnderlineSteady
	CursorBarBlink
	CursorBarSteady
)
