package editor

import (
	"github.com/dteedit/dte/keys"
	"github.com/dteedit/dte/layout"
	"github.com/dteedit/dte/term"
)

// pendingPaste implements input.PasteSource over a single buffered
// payload: PollEvent hands the loop a whole PasteEvent at once, so
// there's never more than one pending paste waiting behind the
// keys.KeyPaste marker the dispatcher looks for.
type pendingPaste struct {
	text string
	has  bool
}

func (p *pendingPaste) ReadPaste() (string, bool) {
	if !p.has {
		return "", false
	}
	p.has = false
	return p.text, true
}

// Run drives the single-threaded, cooperative event loop: poll one
// event, translate and dispatch it, repaint, repeat — the same shape
// peco-peco's View.Loop drives over termbox.PollEvent, generalized to
// the three-event (key/paste/resize) surface term.Screen exposes and
// the multi-mode dispatcher this package wires up in New. The loop
// exits once a command (quit) sets s.Quit; ExitCode is whatever that
// command left behind.
func (s *State) Run() (int, error) {
	if err := s.Screen.Init(); err != nil {
		return 1, err
	}
	defer s.Screen.Fini()

	if err := s.Paint(); err != nil {
		return 1, err
	}

	for !s.Quit {
		ev, ok := s.Screen.PollEvent()
		if !ok {
			break
		}
		if err := s.handleEvent(ev); err != nil {
			return 1, err
		}
		if s.Quit {
			break
		}
		if err := s.Paint(); err != nil {
			return 1, err
		}
	}
	return s.ExitCode, nil
}

func (s *State) handleEvent(ev term.Event) error {
	s.syncActiveChanges()
	switch e := ev.(type) {
	case term.KeyEvent:
		kc := TranslateKeyEvent(e)
		return s.Dispatcher.Dispatch(kc)
	case term.PasteEvent:
		s.paste.text, s.paste.has = e.Text, true
		return s.Dispatcher.Dispatch(keys.KeyPaste)
	case term.ResizeEvent:
		s.handleResize(e.Width, e.Height)
		return nil
	}
	return nil
}

// syncActiveChanges points the command runner's undo-bracketing tree
// at whatever buffer is active before dispatching the next event:
// window switches and file opens change which buffer is active
// between dispatches, and r.Changes has to follow that or an edit
// typed against one buffer would get bracketed into another's tree.
func (s *State) syncActiveChanges() {
	if ob := s.ActiveBuffer(); ob != nil {
		s.Runner.Changes = ob.Changes
	}
}

func (s *State) handleResize(w, h int) {
	if s.Root == nil {
		return
	}
	s.Root.Resize(layout.Options{ShowLineNumbers: true}, layout.Rect{X: 0, Y: 0, W: w, H: h})
	s.Renderer.Invalidate()
	s.Screen.PostResize(w, h)
}
