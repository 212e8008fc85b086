package keys

import (
	"sort"

	"github.com/pkg/errors"
)

// Keymap is a compiled key-sequence binding table for one input mode:
// a key-string ("C-x,C-n") maps to an opaque bound value (normally a
// *command.CachedCommand, kept opaque here so this package stays free
// of a dependency on the command language). Adapted from peco's
// Keymap/Keyseq pairing in keymap.go, generalized from a single flat
// action-name map to the generic binding value this editor needs.
type Keymap struct {
	seq     *Sequence
	sources map[string]string // original key-string -> canonical key-string, insertion order lost
	order   []string          // original key-strings in bind order, for stable serialization
	values  map[string]any    // original key-string -> bound value
	dirty   bool
}

// NewKeymap creates an empty, uncompiled Keymap.
func NewKeymap() *Keymap {
	return &Keymap{
		seq:     NewSequence(),
		sources: make(map[string]string),
		values:  make(map[string]any),
	}
}

// Bind associates keyString (this design grammar, comma-joined for
// chords) with value. Re-binding an existing key-string overwrites
// its value and its position in serialization order is preserved.
// Bind must be followed by Compile before Lookup is used.
func (km *Keymap) Bind(keyString string, value any) error {
	list, err := ParseKeyList(keyString)
	if err != nil {
		return errors.Wrapf(err, "binding %q", keyString)
	}
	canon := list.String()
	if _, exists := km.values[keyString]; !exists {
		km.order = append(km.order, keyString)
	}
	km.sources[keyString] = canon
	km.values[keyString] = value
	km.seq.Add(list, value)
	km.dirty = true
	return nil
}

// Unbind removes a previously bound key-string, if present.
func (km *Keymap) Unbind(keyString string) {
	if _, ok := km.values[keyString]; !ok {
		return
	}
	delete(km.values, keyString)
	delete(km.sources, keyString)
	for i, k := range km.order {
		if k == keyString {
			km.order = append(km.order[:i], km.order[i+1:]...)
			break
		}
	}
	km.rebuild()
}

func (km *Keymap) rebuild() {
	km.seq = NewSequence()
	for _, k := range km.order {
		list, _ := ParseKeyList(k) // already validated in Bind
		km.seq.Add(list, km.values[k])
	}
	km.dirty = true
}

// Compile finalizes the binding trie for Lookup. Must be called after
// the last Bind/Unbind and before any Lookup.
func (km *Keymap) Compile() error {
	if err := km.seq.Matcher.Compile(); err != nil {
		return errors.Wrap(err, "compiling keymap")
	}
	km.dirty = false
	return nil
}

// Lookup advances the mode's key-sequence matcher with key. It
// returns the bound value on a complete match, ErrInSequence while a
// multi-key chord is still possible, or ErrNoMatch.
func (km *Keymap) Lookup(key Key) (any, error) {
	return km.seq.AcceptKey(key)
}

// CancelChain abandons any in-progress multi-key sequence for this mode.
func (km *Keymap) CancelChain() { km.seq.CancelChain() }

// InMiddleOfChain reports whether a multi-key chord is in progress.
func (km *Keymap) InMiddleOfChain() bool { return km.seq.InMiddleOfChain() }

// Binding pairs a bound key-string with its value, in bind order; the
// serializer used for this design's bindings-file round-trip walks
// this in order to emit stable `bind <keystring> <command>` lines.
type Binding struct {
	KeyString string
	Value     any
}

// Bindings returns all bindings in the order they were first bound,
// with each KeyString rendered in its canonical form.
func (km *Keymap) Bindings() []Binding {
	out := make([]Binding, 0, len(km.order))
	for _, k := range km.order {
		out = append(out, Binding{KeyString: km.sources[k], Value: km.values[k]})
	}
	return out
}

// SortedBindings returns all bindings ordered lexically by canonical
// key-string, for deterministic dumps independent of bind order.
func (km *Keymap) SortedBindings() []Binding {
	out := km.Bindings()
	sort.Slice(out, func(i, j int) bool { return out[i].KeyString < out[j].KeyString })
	return out
}
