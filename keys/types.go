// Package keys implements the editor's KeyCode model, the
// `[C-][M-][S-]<name>` key-string grammar, and the per-mode key
// binding maps. The multi-key chord matcher (chordtrie.go,
// ahocorasick.go, sequence.go) reuses peco's internal/keyseq ternary
// search tree and Aho-Corasick failure-link construction, folded into
// a single unexported chordTrie/chordNode pair rather than peco's
// separate Trie/Node interfaces, since this package only ever has one
// trie shape to store chords in. keycode.go and keymap.go are written
// fresh against this design's KeyCode and binding model.
package keys

import "strings"

// ModifierKey is a bitfield of the three modifiers this design's key
// string grammar recognizes.
type ModifierKey int

const (
	ModNone  ModifierKey = 0
	ModCtrl  ModifierKey = 1 << 0
	ModMeta  ModifierKey = 1 << 1
	ModShift ModifierKey = 1 << 2
)

// String renders the modifier bits in the canonical Ctrl, Meta, Shift
// order.
func (m ModifierKey) String() string {
	var parts []string
	if m&ModCtrl != 0 {
		parts = append(parts, "C")
	}
	if m&ModMeta != 0 {
		parts = append(parts, "M")
	}
	if m&ModShift != 0 {
		parts = append(parts, "S")
	}
	return strings.Join(parts, "-")
}

// Key is one node's label in the key-sequence trie: a symbolic
// KeyType, or (if Key==0) a literal printable rune, plus its modifiers.
type Key struct {
	Modifier ModifierKey
	Key      KeyType
	Ch       rune
}

// NewKeyFromKey creates an unmodified Key from a symbolic KeyType.
func NewKeyFromKey(k KeyType) Key {
	return Key{Key: k}
}

// NewKeyFromRune creates an unmodified Key from a printable rune.
func NewKeyFromRune(r rune) Key {
	return Key{Ch: r}
}

// Compare orders two Keys by modifier, then key type, then rune; used
// by the ternary trie to keep children sorted.
func (k Key) Compare(x Key) int {
	if k.Modifier != x.Modifier {
		if k.Modifier < x.Modifier {
			return -1
		}
		return 1
	}
	if k.Key != x.Key {
		if k.Key < x.Key {
			return -1
		}
		return 1
	}
	if k.Ch != x.Ch {
		if k.Ch < x.Ch {
			return -1
		}
		return 1
	}
	return 0
}

// String renders the key as its canonical key-string form.
func (k Key) String() string {
	var name string
	if k.Key == 0 {
		name = string([]rune{k.Ch})
	} else {
		name = keyTypeToName[k.Key]
	}
	if m := k.Modifier.String(); m != "" {
		// Shift is only meaningful (and only ever emitted) for
		// non-printable keys, per this design's canonicalisation rule;
		// printable single characters already carry case.
		if k.Key == 0 && k.Modifier&ModShift != 0 && k.Modifier == ModShift {
			return name // bare printable: Shift alone is never a binding
		}
		return m + "-" + name
	}
	return name
}

// KeyList is an ordered sequence of Keys, used both for multi-key
// chord bindings (`C-x,C-n`) and as the trie path type.
type KeyList []Key

func (kl KeyList) String() string {
	parts := make([]string, len(kl))
	for i, k := range kl {
		parts[i] = k.String()
	}
	return strings.Join(parts, ",")
}

// Equals reports whether kl and x are the same sequence of Keys.
func (kl KeyList) Equals(x KeyList) bool {
	if len(kl) != len(x) {
		return false
	}
	for i := range kl {
		if kl[i].Compare(x[i]) != 0 {
			return false
		}
	}
	return true
}
