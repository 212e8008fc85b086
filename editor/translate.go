package editor

import (
	"github.com/dteedit/dte/keys"
	"github.com/dteedit/dte/term"
)

// termNameToKeyType maps term.KeyEvent's loose name strings (chosen to
// match tcell's own naming, not the keys package's canonical F1/escape
// spellings) onto keys.KeyType's symbolic constants.
var termNameToKeyType = map[string]keys.KeyType{
	"up":        keys.KeyArrowUp,
	"down":      keys.KeyArrowDown,
	"left":      keys.KeyArrowLeft,
	"right":     keys.KeyArrowRight,
	"home":      keys.KeyHome,
	"end":       keys.KeyEnd,
	"insert":    keys.KeyIns,
	"delete":    keys.KeyDel,
	"pgup":      keys.KeyPgup,
	"pgdn":      keys.KeyPgdn,
	"tab":       keys.KeyTab,
	"enter":     keys.KeyEnter,
	"escape":    keys.KeyEsc,
	"backspace": keys.KeyBackspace,
	"f1":        keys.KeyF1,
	"f2":        keys.KeyF2,
	"f3":        keys.KeyF3,
	"f4":        keys.KeyF4,
	"f5":        keys.KeyF5,
	"f6":        keys.KeyF6,
	"f7":        keys.KeyF7,
	"f8":        keys.KeyF8,
	"f9":        keys.KeyF9,
	"f10":       keys.KeyF10,
	"f11":       keys.KeyF11,
	"f12":       keys.KeyF12,
}

// TranslateKeyEvent converts the terminal backend's decoded event into
// the dispatcher's KeyCode representation: a symbolic key when term
// named one, otherwise a plain rune carrying whatever modifiers were
// reported. "shift+tab" has no dedicated KeyType in the keys package
// (dte's binding grammar expresses it as Shift+Tab instead), so it's
// translated as KeyTab with ModShift set.
func TranslateKeyEvent(ev term.KeyEvent) keys.KeyCode {
	mod := keys.ModNone
	if ev.Ctrl {
		mod |= keys.ModCtrl
	}
	if ev.Alt {
		mod |= keys.ModMeta
	}
	if ev.Shift {
		mod |= keys.ModShift
	}

	name := ev.Name
	if name == "shift+tab" {
		name = "tab"
		mod |= keys.ModShift
	}
	if kt, ok := termNameToKeyType[name]; ok {
		return keys.NewSymbolicKeyCode(kt, mod)
	}
	return keys.NewRuneKeyCode(ev.Rune, mod)
}
