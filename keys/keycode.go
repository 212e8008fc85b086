package keys

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// KeyType enumerates the symbolic (non-printable) keys the terminal
// decoder can produce.
type KeyType int

const (
	keyTypeNone KeyType = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
	KeyIns
	KeyDel
	KeyPgup
	KeyPgdn
	KeyTab
	KeyEnter
	KeyEsc
	KeySpace
	KeyBackspace
	KeyBackspace2
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlH
	KeyCtrlK
	KeyCtrlN
	KeyCtrlP
	KeyCtrlR
	KeyCtrlSpace
	KeyCtrlU
	KeyCtrlW
	// KeyPasteMarker is the distinguished value signalling the
	// terminal decoder has a queued bracketed-paste payload
	// (the glossary entry for "Paste marker").
	KeyPasteMarker
)

var keyTypeToName = map[KeyType]string{
	KeyArrowUp:     "up",
	KeyArrowDown:   "down",
	KeyArrowLeft:   "left",
	KeyArrowRight:  "right",
	KeyHome:        "home",
	KeyEnd:         "end",
	KeyIns:         "ins",
	KeyDel:         "del",
	KeyPgup:        "pgup",
	KeyPgdn:        "pgdown",
	KeyTab:         "tab",
	KeyEnter:       "enter",
	KeyEsc:         "escape",
	KeySpace:       "space",
	KeyBackspace:   "backspace",
	KeyBackspace2:  "backspace",
	KeyF1:          "F1",
	KeyF2:          "F2",
	KeyF3:          "F3",
	KeyF4:          "F4",
	KeyF5:          "F5",
	KeyF6:          "F6",
	KeyF7:          "F7",
	KeyF8:          "F8",
	KeyF9:          "F9",
	KeyF10:         "F10",
	KeyF11:         "F11",
	KeyF12:         "F12",
	KeyCtrlA:       "^A",
	KeyCtrlB:       "^B",
	KeyCtrlC:       "^C",
	KeyCtrlD:       "^D",
	KeyCtrlE:       "^E",
	KeyCtrlF:       "^F",
	KeyCtrlG:       "^G",
	KeyCtrlH:       "^H",
	KeyCtrlK:       "^K",
	KeyCtrlN:       "^N",
	KeyCtrlP:       "^P",
	KeyCtrlR:       "^R",
	KeyCtrlSpace:   "^@",
	KeyCtrlU:       "^U",
	KeyCtrlW:       "^W",
	KeyPasteMarker: "<paste>",
}

var nameToKeyType = func() map[string]KeyType {
	m := make(map[string]KeyType, len(keyTypeToName))
	for k, v := range keyTypeToName {
		m[strings.ToLower(v)] = k
	}
	// ParseKeyString tries the lower-cased name first, so every
	// symbolic name (F-keys and `^X` names included) matches
	// case-insensitively; the display spellings are kept as keys too.
	for k, v := range keyTypeToName {
		m[v] = k
	}
	return m
}()

// KeyCode is the 32-bit tagged runtime representation of a decoded
// key event (this design): either a Unicode scalar or a symbolic
// KeyType in the low bits, with modifier flags in the high bits.
type KeyCode uint32

const (
	kcSpecialBit KeyCode = 1 << 24
	kcModShift           = 25
	kcModMask    KeyCode = 0x7 << kcModShift
	kcValueMask  KeyCode = kcSpecialBit - 1
)

// KeyNone is the "no key decoded" sentinel.
const KeyNone KeyCode = 0

// KeyPaste is the distinguished paste-marker KeyCode.
var KeyPaste = NewSymbolicKeyCode(KeyPasteMarker, ModNone)

// NewRuneKeyCode builds a KeyCode carrying a literal Unicode scalar.
func NewRuneKeyCode(r rune, mod ModifierKey) KeyCode {
	return KeyCode(r)&kcValueMask | KeyCode(mod)<<kcModShift
}

// NewSymbolicKeyCode builds a KeyCode carrying a symbolic KeyType.
func NewSymbolicKeyCode(k KeyType, mod ModifierKey) KeyCode {
	return kcSpecialBit | KeyCode(k)&kcValueMask | KeyCode(mod)<<kcModShift
}

// IsSymbolic reports whether kc carries a symbolic KeyType rather
// than a literal rune.
func (kc KeyCode) IsSymbolic() bool { return kc&kcSpecialBit != 0 }

// Modifier extracts the modifier bits from kc.
func (kc KeyCode) Modifier() ModifierKey { return ModifierKey((kc & kcModMask) >> kcModShift) }

// Rune returns the literal scalar kc carries, or 0 if kc is symbolic.
func (kc KeyCode) Rune() rune {
	if kc.IsSymbolic() {
		return 0
	}
	return rune(kc & kcValueMask)
}

// Symbol returns the symbolic KeyType kc carries, or 0 if kc is a
// literal rune.
func (kc KeyCode) Symbol() KeyType {
	if !kc.IsSymbolic() {
		return keyTypeNone
	}
	return KeyType(kc & kcValueMask)
}

// IsPrintable reports whether kc is a literal, non-control rune
// suitable for direct text insertion (this design dispatch rule 3).
func (kc KeyCode) IsPrintable() bool {
	if kc.IsSymbolic() || kc == KeyNone {
		return false
	}
	r := kc.Rune()
	return r >= 0x20 && r != 0x7f
}

// ToKey converts a KeyCode into the Key type the binding trie indexes
// on.
func (kc KeyCode) ToKey() Key {
	if kc.IsSymbolic() {
		return Key{Modifier: kc.Modifier(), Key: kc.Symbol()}
	}
	return Key{Modifier: kc.Modifier(), Ch: kc.Rune()}
}

// String renders kc in the canonical `[C-][M-][S-]<name>` form.
func (kc KeyCode) String() string {
	return kc.ToKey().String()
}

// ParseKeyString parses a single key-string token (this design's
// grammar) into a KeyCode. Multi-key chords ("C-x,C-n") should be
// split on "," by the caller and each term passed here.
func ParseKeyString(s string) (KeyCode, error) {
	orig := s
	var mod ModifierKey
	for {
		switch {
		case strings.HasPrefix(s, "C-"):
			mod |= ModCtrl
			s = s[2:]
		case strings.HasPrefix(s, "M-"):
			mod |= ModMeta
			s = s[2:]
		case strings.HasPrefix(s, "S-"):
			mod |= ModShift
			s = s[2:]
		default:
			goto name
		}
	}
name:
	if s == "" {
		return KeyNone, errors.Errorf("empty key name in %q", orig)
	}

	// `^X` control-character escape form.
	if len(s) == 2 && s[0] == '^' {
		c := s[1]
		switch {
		case c == '@':
			return NewSymbolicKeyCode(KeyCtrlSpace, mod), nil
		case c >= 'A' && c <= 'Z':
			return NewRuneKeyCode(rune(c-'A'+1), mod), nil
		}
	}

	if kt, ok := nameToKeyType[strings.ToLower(s)]; ok {
		return NewSymbolicKeyCode(kt, mod), nil
	}
	if kt, ok := nameToKeyType[s]; ok {
		return NewSymbolicKeyCode(kt, mod), nil
	}

	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return KeyNone, errors.Errorf("unknown key name %q", orig)
	}

	if mod != ModNone && isPrintableRune(r) && mod == ModShift {
		// Shift alone on a printable is rejected (case already encodes
		// it). A printable with no modifier at all is accepted.
		return KeyNone, errors.Errorf("bare printable key %q cannot be bound", orig)
	}
	return NewRuneKeyCode(r, mod), nil
}

func isPrintableRune(r rune) bool {
	return r >= 0x20 && r != 0x7f
}

// ParseKeyList splits a comma-separated key-sequence string ("C-x,C-n")
// into its KeyList form, suitable for Keymap.Bind / the trie.
func ParseKeyList(s string) (KeyList, error) {
	var list KeyList
	for _, term := range strings.Split(s, ",") {
		term = strings.TrimSpace(term)
		kc, err := ParseKeyString(term)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing key sequence %q", s)
		}
		list = append(list, kc.ToKey())
	}
	return list, nil
}

// CanonicalKeyString re-renders a key-string (as accepted by
// ParseKeyString) into its canonical form, used by the testable
// round-trip property keycode_to_string(keycode_from_string(k)) == k.
func CanonicalKeyString(s string) (string, error) {
	kc, err := ParseKeyString(s)
	if err != nil {
		return "", err
	}
	return kc.String(), nil
}

func init() {
	// Guard against keyTypeToName / nameToKeyType drifting apart,
	// e.g. a new KeyType added without a display name.
	for k := range keyTypeToName {
		if _, ok := nameToKeyType[keyTypeToName[k]]; !ok {
			panic(fmt.Sprintf("keys: %v has a display name but no reverse mapping", k))
		}
	}
}
