// Package input implements the editor's mode stack and key
// dispatcher: this design's single-threaded cooperative loop that
// turns one decoded KeyCode into a paste, a binding invocation, a
// literal insertion, or a discard. Grounded on peco's
// Keymap.ExecuteAction/LookupAction cooperative-dispatch shape (one
// Event in, one Action resolved and executed against shared state),
// adapted from peco's single always-active mode to this design's
// normal/command/search mode stack with explicit push/pop.
package input

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/dteedit/dte/command"
	"github.com/dteedit/dte/keys"
)

// ModeKind identifies one of the three input modes: normal, command,
// or search, determining the active CommandSet and binding group.
type ModeKind int

const (
	ModeNormal ModeKind = iota
	ModeCommand
	ModeSearch
)

func (k ModeKind) String() string {
	switch k {
	case ModeNormal:
		return "normal"
	case ModeCommand:
		return "command"
	case ModeSearch:
		return "search"
	default:
		return "unknown"
	}
}

// Target receives literal text insertion for a mode: the buffer in
// normal mode, the command-line text in command/search mode.
type Target interface {
	InsertText(s string)
}

// PasteSource supplies the bracketed-paste payload the terminal
// decoder queued behind the keys.KeyPaste marker.
type PasteSource interface {
	ReadPaste() (string, bool)
}

// Mode bundles one input mode's legal commands, its compiled key
// bindings, and where its literal text insertions land.
type Mode struct {
	Kind   ModeKind
	Keymap *keys.Keymap
	Cmds   *command.CommandSet
	Target Target

	// StripPasteNewlines replaces '\n' with ' ' in pasted text before
	// insertion, per this design's rule for command/search mode
	// (false for normal mode, which inserts paste text as-is).
	StripPasteNewlines bool
}

// Dispatcher is the mode stack plus key router. Mode transitions are
// never performed by Dispatcher itself (this design: "mode
// transitions are implicit consequences of commands") — command
// implementations call Push/Pop explicitly.
type Dispatcher struct {
	modes map[ModeKind]*Mode
	stack []ModeKind

	Runner   *command.Runner
	Recorder *command.Recorder
	Paste    PasteSource
}

// NewDispatcher returns a Dispatcher starting in normal mode.
func NewDispatcher(runner *command.Runner, rec *command.Recorder) *Dispatcher {
	return &Dispatcher{
		modes:    make(map[ModeKind]*Mode),
		stack:    []ModeKind{ModeNormal},
		Runner:   runner,
		Recorder: rec,
	}
}

// Register installs (or replaces) a mode's definition.
func (d *Dispatcher) Register(m *Mode) {
	d.modes[m.Kind] = m
}

// Push enters a new mode, nesting on top of the current one.
func (d *Dispatcher) Push(kind ModeKind) {
	d.stack = append(d.stack, kind)
}

// Pop leaves the current mode and returns to the one beneath it. The
// bottom (normal) mode is never popped.
func (d *Dispatcher) Pop() {
	if len(d.stack) > 1 {
		d.stack = d.stack[:len(d.stack)-1]
	}
}

// Depth reports how many modes are currently nested (1 means just
// normal mode).
func (d *Dispatcher) Depth() int {
	return len(d.stack)
}

// Current returns the active mode, or nil if it was never Registered.
func (d *Dispatcher) Current() *Mode {
	return d.modes[d.stack[len(d.stack)-1]]
}

// CancelChain abandons the active mode's in-progress key chord, the
// effect of the `cancel` command on a pending multi-key binding.
func (d *Dispatcher) CancelChain() {
	if m := d.Current(); m != nil {
		m.Keymap.CancelChain()
	}
}

// Dispatch implements this design's dispatch rule for a single
// decoded key against the active mode.
func (d *Dispatcher) Dispatch(kc keys.KeyCode) error {
	mode := d.Current()
	if mode == nil {
		return errors.Errorf("input: no mode registered for %v", d.stack[len(d.stack)-1])
	}

	if kc == keys.KeyPaste {
		return d.dispatchPaste(mode)
	}

	value, err := mode.Keymap.Lookup(kc.ToKey())
	switch err {
	case nil:
		return d.invoke(value)
	case keys.ErrInSequence:
		return nil // waiting for the rest of a chord
	case keys.ErrNoMatch:
		// fall through to literal insertion / discard
	default:
		return err
	}

	if kc.IsPrintable() {
		text := string(kc.Rune())
		mode.Target.InsertText(text)
		if d.Recorder != nil {
			d.Recorder.RecordInsert(text)
		}
	}
	return nil
}

func (d *Dispatcher) dispatchPaste(mode *Mode) error {
	if d.Paste == nil {
		return nil
	}
	text, ok := d.Paste.ReadPaste()
	if !ok || text == "" {
		return nil
	}
	if mode.StripPasteNewlines {
		text = strings.ReplaceAll(text, "\n", " ")
	}
	mode.Target.InsertText(text)
	if d.Recorder != nil {
		d.Recorder.RecordInsert(text)
	}
	return nil
}

func (d *Dispatcher) invoke(value any) error {
	cc, ok := value.(*command.CachedCommand)
	if !ok {
		return errors.Errorf("input: binding value %T is not a *command.CachedCommand", value)
	}
	cc.Invoke(d.Runner)
	return nil
}
