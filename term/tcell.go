package term

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// TcellScreen backs Screen with gdamore/tcell/v2, the same role
// peco-peco's Termbox type plays for termbox-go: every method takes
// the library's lock-free API and adapts it to this package's types.
type TcellScreen struct {
	screen tcell.Screen
}

// NewTcellScreen constructs (but does not yet Init) a TcellScreen.
func NewTcellScreen() (*TcellScreen, error) {
	registerLegacyEncodings()
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "creating tcell screen")
	}
	return &TcellScreen{screen: s}, nil
}

func (t *TcellScreen) Init() error {
	if err := t.screen.Init(); err != nil {
		return errors.Wrap(err, "initializing terminal")
	}
	// Mouse reporting is left off: this design names mouse support a
	// non-goal.
	t.screen.EnablePaste()
	return nil
}

func (t *TcellScreen) Fini() {
	t.screen.Fini()
}

func (t *TcellScreen) Size() (int, int) {
	return t.screen.Size()
}

func (t *TcellScreen) Clear() {
	t.screen.Clear()
}

func (t *TcellScreen) SetCell(x, y int, ch rune, attr Attr) {
	t.screen.SetContent(x, y, ch, nil, tcellStyle(attr))
}

func (t *TcellScreen) ShowCursor(x, y int, style CursorStyle) {
	t.screen.ShowCursor(x, y)
	t.screen.SetCursorStyle(tcellCursorStyle(style))
}

func (t *TcellScreen) HideCursor() {
	t.screen.HideCursor()
}

func (t *TcellScreen) Flush() error {
	t.screen.Show()
	return nil
}

// SetClipboard writes text to the system clipboard via OSC 52. tcell's
// Screen interface has no clipboard call of its own, so this writes the
// escape sequence straight to the terminal, bypassing tcell's output
// buffering the same way a title-bar update does.
func (t *TcellScreen) SetClipboard(text string) error {
	encoded := base64.StdEncoding.EncodeToString([]byte(text))
	_, err := fmt.Fprintf(os.Stdout, "\x1b]52;c;%s\x07", encoded)
	return errors.Wrap(err, "writing OSC 52 clipboard sequence")
}

// SetTitle sets the terminal window/tab title via OSC 2, again written
// directly since tcell's Screen interface doesn't expose one.
func (t *TcellScreen) SetTitle(title string) {
	fmt.Fprintf(os.Stdout, "\x1b]2;%s\x07", title)
}

func (t *TcellScreen) PostResize(w, h int) {
	t.screen.PostEvent(tcell.NewEventResize(w, h))
}

// PollEvent blocks for the next event and translates it into this
// package's Event types; ok is false once the screen has been
// finalized and no more events will arrive.
func (t *TcellScreen) PollEvent() (Event, bool) {
	ev := t.screen.PollEvent()
	if ev == nil {
		return nil, false
	}
	switch e := ev.(type) {
	case *tcell.EventKey:
		return translateKey(e), true
	case *tcell.EventPaste:
		// tcell reports bracketed-paste as Start/End markers around a
		// burst of EventKey; this backend reports no event for the
		// markers and never produces a PasteEvent, so pasted text
		// arrives as individual KeyEvents.
		return nil, true
	case *tcell.EventResize:
		w, h := e.Size()
		return ResizeEvent{Width: w, Height: h}, true
	default:
		return nil, true
	}
}

func translateKey(e *tcell.EventKey) KeyEvent {
	k := KeyEvent{
		Ctrl:  e.Modifiers()&tcell.ModCtrl != 0,
		Alt:   e.Modifiers()&tcell.ModAlt != 0,
		Shift: e.Modifiers()&tcell.ModShift != 0,
	}
	if e.Key() == tcell.KeyRune {
		k.Rune = e.Rune()
		return k
	}
	if name, ok := tcellKeyNames[e.Key()]; ok {
		k.Name = name
		return k
	}
	k.Rune = e.Rune()
	return k
}

var tcellKeyNames = map[tcell.Key]string{
	tcell.KeyEnter:      "enter",
	tcell.KeyEscape:     "escape",
	tcell.KeyBackspace:  "backspace",
	tcell.KeyBackspace2: "backspace",
	tcell.KeyTab:        "tab",
	tcell.KeyBacktab:    "shift+tab",
	tcell.KeyUp:         "up",
	tcell.KeyDown:       "down",
	tcell.KeyLeft:       "left",
	tcell.KeyRight:      "right",
	tcell.KeyHome:       "home",
	tcell.KeyEnd:        "end",
	tcell.KeyPgUp:       "pgup",
	tcell.KeyPgDn:       "pgdn",
	tcell.KeyDelete:     "delete",
	tcell.KeyInsert:     "insert",
	tcell.KeyF1:         "f1",
	tcell.KeyF2:         "f2",
	tcell.KeyF3:         "f3",
	tcell.KeyF4:         "f4",
	tcell.KeyF5:         "f5",
	tcell.KeyF6:         "f6",
	tcell.KeyF7:         "f7",
	tcell.KeyF8:         "f8",
	tcell.KeyF9:         "f9",
	tcell.KeyF10:        "f10",
	tcell.KeyF11:        "f11",
	tcell.KeyF12:        "f12",
}

func tcellColor(c RGB, has bool) tcell.Color {
	if !has {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func tcellStyle(a Attr) tcell.Style {
	st := tcell.StyleDefault.
		Foreground(tcellColor(a.Foreground, a.HasFg)).
		Background(tcellColor(a.Background, a.HasBg)).
		Bold(a.Bold).
		Underline(a.Underline).
		Italic(a.Italic)
	return st
}

func tcellCursorStyle(c CursorStyle) tcell.CursorStyle {
	switch c {
	case CursorBlockSteady:
		return tcell.CursorStyleSteadyBlock
	case CursorUnderlineBlink:
		return tcell.CursorStyleBlinkingUnderline
	case CursorUnderlineSteady:
		return tcell.CursorStyleSteadyUnderline
	case CursorBarBlink:
		return tcell.CursorStyleBlinkingBar
	case CursorBarSteady:
		return tcell.CursorStyleSteadyBar
	default:
		return tcell.CursorStyleBlinkingBlock
	}
}
