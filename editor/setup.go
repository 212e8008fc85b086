package editor

import (
	"os"

	"github.com/dteedit/dte/command"
	"github.com/dteedit/dte/errbuf"
	"github.com/dteedit/dte/input"
	"github.com/dteedit/dte/keys"
	"github.com/dteedit/dte/layout"
	"github.com/dteedit/dte/render"
	"github.com/dteedit/dte/term"
)

// New builds a fully wired State over screen with one empty buffer
// filling the whole terminal: the editor-package equivalent of peco's
// NewCtx, except this design's multi-window model means "wired" includes
// a one-leaf layout tree and a three-mode dispatcher, not just a
// single always-active Action table.
func New(screen term.Screen) *State {
	s := &State{
		Screen:      screen,
		Renderer:    render.NewRenderer(screen),
		Ebuf:        errbuf.New(func(msg string) { os.Stderr.WriteString(msg + "\n") }),
		CommandLine: &CommandLine{},
		SearchLine:  &CommandLine{},
		Recorder:    command.NewRecorder(),
	}

	ob := s.NewBuffer()
	w, h := screen.Size()
	s.Root = layout.NewRoot(layout.Rect{X: 0, Y: 0, W: w, H: h}, layout.Options{ShowLineNumbers: true}, ob.View)
	s.Active = s.Root.Window

	s.Runner = &command.Runner{
		Cmds:    s.coreCommands(),
		Ebuf:    s.Ebuf,
		Flags:   command.AllowRecording,
		Changes: ob.Changes,
	}
	cmds := s.Runner.Cmds

	s.Dispatcher = input.NewDispatcher(s.Runner, s.Recorder)
	s.Dispatcher.Paste = &s.paste
	s.Dispatcher.Register(&input.Mode{
		Kind:   input.ModeNormal,
		Keymap: defaultNormalKeymap(cmds),
		Cmds:   cmds,
		Target: ob.View,
	})
	s.Dispatcher.Register(&input.Mode{
		Kind:               input.ModeCommand,
		Keymap:             defaultPromptKeymap(cmds),
		Cmds:               cmds,
		Target:             s.CommandLine,
		StripPasteNewlines: true,
	})
	s.Dispatcher.Register(&input.Mode{
		Kind:               input.ModeSearch,
		Keymap:             defaultPromptKeymap(cmds),
		Cmds:               cmds,
		Target:             s.SearchLine,
		StripPasteNewlines: true,
	})

	return s
}

// bindOrPanic binds keyString to value, panicking on a malformed key
// string: these are the editor's own builtin bindings, not user
// input, so a parse failure here is a programming error, exactly the
// assumption dte's own builtin table construction makes.
func bindOrPanic(km *keys.Keymap, keyString string, value any) {
	if err := km.Bind(keyString, value); err != nil {
		panic("editor: invalid builtin key string " + keyString + ": " + err.Error())
	}
}

// defaultNormalKeymap is the minimal always-present normal-mode
// binding set; a config-driven `bind` command layers the user's own
// bindings on top of (or over) these once the rc file loads.
func defaultNormalKeymap(cmds *command.CommandSet) *keys.Keymap {
	km := keys.NewKeymap()
	bindOrPanic(km, "C-q", command.Compile("quit", cmds))
	bindOrPanic(km, "C-s", command.Compile("save", cmds))
	bindOrPanic(km, ":", command.Compile("command", cmds))
	bindOrPanic(km, "/", command.Compile("search", cmds))
	bindOrPanic(km, "escape", command.Compile("cancel", cmds))
	bindOrPanic(km, "up", command.Compile("up", cmds))
	bindOrPanic(km, "down", command.Compile("down", cmds))
	bindOrPanic(km, "left", command.Compile("left", cmds))
	bindOrPanic(km, "right", command.Compile("right", cmds))
	if err := km.Compile(); err != nil {
		panic("editor: compiling builtin normal keymap: " + err.Error())
	}
	return km
}

// defaultPromptKeymap is shared by command and search mode: both are
// single-line text entry that ends with Enter (accept) or Escape
// (cancel back to normal mode).
func defaultPromptKeymap(cmds *command.CommandSet) *keys.Keymap {
	km := keys.NewKeymap()
	bindOrPanic(km, "enter", command.Compile("accept", cmds))
	bindOrPanic(km, "escape", command.Compile("cancel", cmds))
	if err := km.Compile(); err != nil {
		panic("editor: compiling builtin prompt keymap: " + err.Error())
	}
	return km
}
