package editor

import (
	"os"

	"github.com/dteedit/dte/buffer"
	"github.com/dteedit/dte/command"
	"github.com/dteedit/dte/errbuf"
	"github.com/dteedit/dte/input"
	"github.com/dteedit/dte/layout"
	"github.com/dteedit/dte/syntax"
)

// coreCommands builds the CommandSet shared by every mode: the small
// set of operations every mode-transition needs by name (command,
// cancel, accept, quit, save, open). A real config-driven build would
// load many more from the alias/bind config files; this is the fixed
// core the editor always provides regardless of what rc the user
// loads, the same way dte's own builtin_commands table is always
// present underneath whatever the user binds on top.
func (s *State) coreCommands() *command.CommandSet {
	table := buildCoreCommandTable(s)

	return &command.CommandSet{
		Lookup: func(name string) *command.Command { return table[name] },
		MacroRecord: func(cmd *command.Command, rawArgs []string) {
			if s.Recorder == nil {
				return
			}
			// `command` itself is excluded from macro recording
			// (its body is recorded as the command it eventually runs,
			// not as "command <text>" verbatim).
			if cmd.Name == "command" {
				return
			}
			s.Recorder.RecordCommand(cmd.Name, command.RenderArgs(append([]string{cmd.Name}, rawArgs...)))
		},
	}
}

// buildCoreCommandTable is coreCommands' table, factored out so
// BuiltinCommandNames/DumpBuiltinConfig can enumerate it without a
// live Dispatcher/Runner attached.
func buildCoreCommandTable(s *State) map[string]*command.Command {
	return map[string]*command.Command{
		"quit": {
			Name: "quit",
			Spec: command.Spec{MaxArgs: 0},
			Func: func(eb *errbuf.ErrorBuffer, args command.Args) bool {
				s.Quit = true
				return true
			},
		},
		"command": {
			Name:      "command",
			Spec:      command.Spec{MaxArgs: 1},
			AllowInRC: true,
			Func: func(eb *errbuf.ErrorBuffer, args command.Args) bool {
				s.CommandLine.Clear()
				if len(args.Positional) == 1 {
					s.CommandLine.InsertText(args.Positional[0])
				}
				s.Dispatcher.Push(input.ModeCommand)
				return true
			},
		},
		"search": {
			Name: "search",
			Spec: command.Spec{MaxArgs: 0},
			Func: func(eb *errbuf.ErrorBuffer, args command.Args) bool {
				s.SearchLine.Clear()
				s.Dispatcher.Push(input.ModeSearch)
				return true
			},
		},
		"cancel": {
			Name: "cancel",
			Spec: command.Spec{MaxArgs: 0},
			Func: func(eb *errbuf.ErrorBuffer, args command.Args) bool {
				if s.Dispatcher.Depth() > 1 {
					s.Dispatcher.Pop()
				} else {
					s.Dispatcher.CancelChain()
				}
				return true
			},
		},
		"accept": {
			Name: "accept",
			Spec: command.Spec{MaxArgs: 0},
			Func: func(eb *errbuf.ErrorBuffer, args command.Args) bool {
				return s.acceptCurrentMode(eb)
			},
		},
		"open": {
			Name:      "open",
			Spec:      command.Spec{MinArgs: 1, MaxArgs: 1},
			AllowInRC: true,
			Func: func(eb *errbuf.ErrorBuffer, args command.Args) bool {
				return s.openFile(eb, args.Positional[0])
			},
		},
		"save": {
			Name: "save",
			Spec: command.Spec{Flags: "f", MaxArgs: 1},
			Func: func(eb *errbuf.ErrorBuffer, args command.Args) bool {
				path := ""
				if len(args.Positional) == 1 {
					path = args.Positional[0]
				}
				return s.saveFile(eb, path, args.HasFlag('f'))
			},
		},
		"close": {
			Name: "close",
			Spec: command.Spec{MaxArgs: 0},
			Func: func(eb *errbuf.ErrorBuffer, args command.Args) bool {
				return s.closeActiveWindow(eb)
			},
		},
		"split": {
			Name: "split",
			Spec: command.Spec{Flags: "v", MaxArgs: 0},
			Func: func(eb *errbuf.ErrorBuffer, args command.Args) bool {
				s.splitActiveWindow(args.HasFlag('v'))
				return true
			},
		},
		"up": {
			Name: "up",
			Spec: command.Spec{MaxArgs: 0},
			Func: func(eb *errbuf.ErrorBuffer, args command.Args) bool {
				if ob := s.ActiveBuffer(); ob != nil {
					ob.View.MoveUp(1)
				}
				return true
			},
		},
		"down": {
			Name: "down",
			Spec: command.Spec{MaxArgs: 0},
			Func: func(eb *errbuf.ErrorBuffer, args command.Args) bool {
				if ob := s.ActiveBuffer(); ob != nil {
					ob.View.MoveDown(1)
				}
				return true
			},
		},
		"left": {
			Name: "left",
			Spec: command.Spec{MaxArgs: 0},
			Func: func(eb *errbuf.ErrorBuffer, args command.Args) bool {
				if ob := s.ActiveBuffer(); ob != nil {
					ob.View.MoveLeft()
				}
				return true
			},
		},
		"right": {
			Name: "right",
			Spec: command.Spec{MaxArgs: 0},
			Func: func(eb *errbuf.ErrorBuffer, args command.Args) bool {
				if ob := s.ActiveBuffer(); ob != nil {
					ob.View.MoveRight()
				}
				return true
			},
		},
		"tag": {
			Name: "tag",
			Spec: command.Spec{MinArgs: 1, MaxArgs: 1},
			Func: func(eb *errbuf.ErrorBuffer, args command.Args) bool {
				return s.jumpToTag(eb, args.Positional[0])
			},
		},
		"styleset": {
			Name:      "styleset",
			Spec:      command.Spec{MinArgs: 1, MaxArgs: 1},
			AllowInRC: true,
			Func: func(eb *errbuf.ErrorBuffer, args command.Args) bool {
				return s.loadStyleSet(eb, args.Positional[0])
			},
		},
		"next-window": {
			Name: "next-window",
			Spec: command.Spec{MaxArgs: 0},
			Func: func(eb *errbuf.ErrorBuffer, args command.Args) bool {
				if w := layout.NextWindow(s.Root, s.Active); w != nil {
					s.Active = w
				}
				return true
			},
		},
		"prev-window": {
			Name: "prev-window",
			Spec: command.Spec{MaxArgs: 0},
			Func: func(eb *errbuf.ErrorBuffer, args command.Args) bool {
				if w := layout.PrevWindow(s.Root, s.Active); w != nil {
					s.Active = w
				}
				return true
			},
		},
	}
}

// acceptCurrentMode implements `accept`'s mode-dependent behavior:
// command mode runs the typed line and returns to normal mode; search
// mode returns to normal mode and runs the typed pattern through
// runSearch (editor/search.go).
func (s *State) acceptCurrentMode(eb *errbuf.ErrorBuffer) bool {
	mode := s.Dispatcher.Current()
	if mode == nil {
		return true
	}
	switch mode.Kind {
	case input.ModeCommand:
		line := s.CommandLine.String()
		s.CommandLine.Clear()
		s.Dispatcher.Pop()
		if line == "" {
			return true
		}
		return s.Runner.HandleCommand(line)
	case input.ModeSearch:
		pattern := s.SearchLine.String()
		s.SearchLine.Clear()
		s.Dispatcher.Pop()
		return s.runSearch(eb, pattern)
	default:
		return true
	}
}

func (s *State) openFile(eb *errbuf.ErrorBuffer, path string) bool {
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return eb.ErrorMsg("%s: %s", path, err)
	}
	ob := s.NewBuffer()
	if len(data) > 0 {
		ob.Buffer = buffer.NewFromBytes(data)
		ob.View.Buffer = ob.Buffer
		ob.View.Cursor = ob.Buffer.BOF()
	}
	ob.Buffer.File.AbsPath = path
	ob.Buffer.File.DisplayName = path

	if s.Active != nil {
		s.Active.View = ob.View
	}
	return true
}

// loadStyleSet replaces s.Styles with the style palette decoded from
// the YAML file at path, so bound styles are available to the syntax
// highlighter the next time a buffer paints. A failed load leaves the
// previous style set (if any) untouched.
func (s *State) loadStyleSet(eb *errbuf.ErrorBuffer, path string) bool {
	m, err := syntax.LoadStyleSet(path)
	if err != nil {
		return eb.ErrorMsg("%s", err)
	}
	s.Styles = m
	return true
}

func (s *State) saveFile(eb *errbuf.ErrorBuffer, path string, force bool) bool {
	ob := s.ActiveBuffer()
	if ob == nil {
		return eb.ErrorMsg("no active buffer")
	}
	if path == "" {
		path = ob.Buffer.File.AbsPath
	}
	if path == "" {
		return eb.ErrorMsg("no filename")
	}
	if err := os.WriteFile(path, ob.Buffer.Bytes(), 0644); err != nil {
		return eb.ErrorMsg("%s: %s", path, err)
	}
	ob.Buffer.File.AbsPath = path
	ob.Buffer.File.DisplayName = path
	return true
}

func (s *State) closeActiveWindow(eb *errbuf.ErrorBuffer) bool {
	if s.Active == nil {
		return true
	}
	newRoot, next := layout.Close(layout.Options{}, s.Root, s.Active)
	s.Root = newRoot
	if next != nil {
		s.Active = next
	}
	return true
}

// splitActiveWindow finds the leaf Frame wrapping the active Window
// and splits it, making the new pane active. layout.Frame.Split takes
// a *Frame, not a *Window, so the leaf has to be located first.
func (s *State) splitActiveWindow(vertical bool) {
	if s.Active == nil {
		return
	}
	leaf := findFrameForWindow(s.Root, s.Active)
	if leaf == nil {
		return
	}
	s.Active = leaf.Split(layout.Options{}, vertical)
}

func findFrameForWindow(f *layout.Frame, w *layout.Window) *layout.Frame {
	if f.IsLeaf() {
		if f.Window == w {
			return f
		}
		return nil
	}
	for _, c := range f.Children {
		if found := findFrameForWindow(c, w); found != nil {
			return found
		}
	}
	return nil
}
