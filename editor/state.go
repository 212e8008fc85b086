// Package editor wires every other package together into one running
// program: it owns the buffer/view/window arenas, the command set,
// the input dispatcher, and the render loop. Grounded on peco-peco's
// ctx.go/state.go — a single struct holding everything an Action
// needs, passed by pointer — generalized from peco's one-buffer
// design to this design's multi-buffer, multi-window arena.
package editor

import (
	"github.com/dteedit/dte/buffer"
	"github.com/dteedit/dte/change"
	"github.com/dteedit/dte/command"
	"github.com/dteedit/dte/edit"
	"github.com/dteedit/dte/errbuf"
	"github.com/dteedit/dte/input"
	"github.com/dteedit/dte/layout"
	"github.com/dteedit/dte/render"
	"github.com/dteedit/dte/syntax"
	"github.com/dteedit/dte/tags"
	"github.com/dteedit/dte/term"
)

// OpenBuffer is one loaded file: its storage, its undo tree, and the
// View the active window shows into it. this design's arena note asks for
// index-addressed Buffers/Windows to avoid reference cycles; Go's
// garbage collector already makes that cycle-avoidance unnecessary,
// so this keeps pointers directly rather than reintroducing an index
// layer purely for its own sake (see DESIGN.md's Open Question entry).
type OpenBuffer struct {
	Buffer  *buffer.Buffer
	Changes *change.Tree
	View    *edit.View
}

// State is the editor's single top-level object: every command
// implementation receives *State as its "editor" argument, the same
// role peco's *Ctx plays for every Action function.
type State struct {
	Buffers []*OpenBuffer

	Root   *layout.Frame
	Active *layout.Window

	Screen   term.Screen
	Renderer *render.Renderer
	Styles   *syntax.StyleMap

	Ebuf       *errbuf.ErrorBuffer
	Runner     *command.Runner
	Dispatcher *input.Dispatcher
	Recorder   *command.Recorder

	CommandLine *CommandLine
	SearchLine  *CommandLine

	Tags *tags.TagFile

	Clipboard string

	Quit     bool
	ExitCode int

	paste pendingPaste
}

// ActiveBuffer returns the OpenBuffer backing the active window's
// View, or nil if somehow no window is active (only possible before
// the first window is created).
func (s *State) ActiveBuffer() *OpenBuffer {
	if s.Active == nil {
		return nil
	}
	for _, ob := range s.Buffers {
		if ob.View == s.Active.View {
			return ob
		}
	}
	return nil
}

// NewBuffer creates an empty buffer, registers it in the arena, and
// returns its OpenBuffer. Mirrors dte's open_empty_buffer.
func (s *State) NewBuffer() *OpenBuffer {
	b := buffer.New()
	changes := change.New()
	ob := &OpenBuffer{
		Buffer:  b,
		Changes: changes,
		View:    edit.NewView(b, changes),
	}
	s.Buffers = append(s.Buffers, ob)
	return ob
}

// CloseBuffer drops ob from the arena. Callers are responsible for
// making sure no Window still points at ob.View first (the layout
// package's Close already refuses to remove the last window).
func (s *State) CloseBuffer(ob *OpenBuffer) {
	for i, cur := range s.Buffers {
		if cur == ob {
			s.Buffers = append(s.Buffers[:i], s.Buffers[i+1:]...)
			return
		}
	}
}
