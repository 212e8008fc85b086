package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestTranslateKeyRune(t *testing.T) {
	e := tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModShift)
	k := translateKey(e)
	if k.Rune != 'x' || k.Name != "" || !k.Shift {
		t.Fatalf("unexpected translation: %+v", k)
	}
}

func TestTranslateKeyNamed(t *testing.T) {
	e := tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModCtrl)
	k := translateKey(e)
	if k.Name != "enter" || !k.Ctrl {
		t.Fatalf("unexpected translation: %+v", k)
	}
}

func TestTranslateKeyBackspace2NormalizesToBackspace(t *testing.T) {
	e := tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone)
	k := translateKey(e)
	if k.Name != "backspace" {
		t.Fatalf("expected backspace, got %q", k.Name)
	}
}

func TestTcellColorDefaultWhenUnset(t *testing.T) {
	if got := tcellColor(RGB{R: 10, G: 20, B: 30}, false); got != tcell.ColorDefault {
		t.Fatalf("expected ColorDefault, got %v", got)
	}
}

func TestTcellColorTruecolorWhenSet(t *testing.T) {
	got := tcellColor(RGB{R: 10, G: 20, B: 30}, true)
	want := tcell.NewRGBColor(10, 20, 30)
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestTcellStyleChainsAttributes(t *testing.T) {
	st := tcellStyle(Attr{Bold: true, Underline: true})
	fg, bg, attrs := st.Decompose()
	if fg != tcell.ColorDefault || bg != tcell.ColorDefault {
		t.Fatalf("expected default colors when HasFg/HasBg are false, got fg=%v bg=%v", fg, bg)
	}
	if attrs&tcell.AttrBold == 0 || attrs&tcell.AttrUnderline == 0 {
		t.Fatalf("expected bold and underline attrs set, got %v", attrs)
	}
	if attrs&tcell.AttrItalic != 0 {
		t.Fatal("expected italic unset")
	}
}

func TestTcellCursorStyleMapping(t *testing.T) {
	cases := map[CursorStyle]tcell.CursorStyle{
		CursorBlockSteady:     tcell.CursorStyleSteadyBlock,
		CursorUnderlineBlink:  tcell.CursorStyleBlinkingUnderline,
		CursorUnderlineSteady: tcell.CursorStyleSteadyUnderline,
		CursorBarBlink:        tcell.CursorStyleBlinkingBar,
		CursorBarSteady:       tcell.CursorStyleSteadyBar,
		CursorDefault:         tcell.CursorStyleBlinkingBlock,
	}
	for in, want := range cases {
		if got := tcellCursorStyle(in); got != want {
			t.Errorf("tcellCursorStyle(%v) = %v, want %v", in, got, want)
		}
	}
}
