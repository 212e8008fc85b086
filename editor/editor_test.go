package editor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dteedit/dte/syntax"
	"github.com/dteedit/dte/tags"
	"github.com/dteedit/dte/term"
)

// fakeScreen is a minimal term.Screen good enough to build a State
// against in tests: a fixed size and no-op everything else. Nothing
// under test here drives PollEvent, so it's left unset (nil Event,
// false) rather than faked out.
type fakeScreen struct {
	w, h int
}

func (f *fakeScreen) Init() error { return nil }
func (f *fakeScreen) Fini()       {}

func (f *fakeScreen) Size() (int, int) {
	if f.w == 0 {
		return 80, 24
	}
	return f.w, f.h
}

func (f *fakeScreen) Clear()                                     {}
func (f *fakeScreen) SetCell(x, y int, ch rune, attr term.Attr)   {}
func (f *fakeScreen) ShowCursor(x, y int, style term.CursorStyle) {}
func (f *fakeScreen) HideCursor()                                 {}
func (f *fakeScreen) Flush() error                                { return nil }
func (f *fakeScreen) SetClipboard(text string) error              { return nil }
func (f *fakeScreen) SetTitle(title string)                       {}
func (f *fakeScreen) PollEvent() (term.Event, bool)                { return nil, false }
func (f *fakeScreen) PostResize(w, h int)                          {}

func newTestState() *State {
	return New(&fakeScreen{w: 80, h: 24})
}

func TestCoreCommandsQuitSetsQuit(t *testing.T) {
	s := newTestState()
	if !s.Runner.HandleCommand("quit") {
		t.Fatal("quit command reported failure")
	}
	if !s.Quit {
		t.Fatal("expected s.Quit to be set after quit")
	}
}

func TestCoreCommandsCommandEntersCommandMode(t *testing.T) {
	s := newTestState()
	if !s.Runner.HandleCommand("command") {
		t.Fatal("command command reported failure")
	}
	if s.Dispatcher.Current().Kind.String() != "command" {
		t.Fatalf("expected command mode, got %s", s.Dispatcher.Current().Kind)
	}
}

func TestCoreCommandsCancelPopsNestedMode(t *testing.T) {
	s := newTestState()
	s.Runner.HandleCommand("command")
	if s.Dispatcher.Depth() != 2 {
		t.Fatalf("Depth() = %d, want 2 after entering command mode", s.Dispatcher.Depth())
	}
	s.Runner.HandleCommand("cancel")
	if s.Dispatcher.Depth() != 1 {
		t.Fatalf("Depth() = %d, want 1 after cancel", s.Dispatcher.Depth())
	}
}

func TestAcceptRunsTypedCommandLine(t *testing.T) {
	s := newTestState()
	s.Runner.HandleCommand("command")
	s.CommandLine.InsertText("quit")
	s.Runner.HandleCommand("accept")
	if !s.Quit {
		t.Fatal("expected accept to run the typed `quit` command")
	}
	if s.Dispatcher.Depth() != 1 {
		t.Fatalf("Depth() = %d, want 1 after accept returns to normal mode", s.Dispatcher.Depth())
	}
}

func TestOpenLoadsFileContentIntoActiveView(t *testing.T) {
	s := newTestState()
	dir := t.TempDir()
	path := filepath.Join(dir, "greeting.txt")
	if err := os.WriteFile(path, []byte("hello world"), 0644); err != nil {
		t.Fatal(err)
	}
	if !s.Runner.HandleCommand("open " + path) {
		t.Fatal("open command reported failure")
	}
	ob := s.ActiveBuffer()
	if ob == nil {
		t.Fatal("expected an active buffer after open")
	}
	if got := string(ob.Buffer.Bytes()); got != "hello world" {
		t.Fatalf("buffer contents = %q, want %q", got, "hello world")
	}
	if ob.Buffer.File.AbsPath != path {
		t.Fatalf("AbsPath = %q, want %q", ob.Buffer.File.AbsPath, path)
	}
}

func TestOpenMissingFileStartsEmptyBuffer(t *testing.T) {
	s := newTestState()
	path := filepath.Join(t.TempDir(), "does-not-exist.txt")
	if !s.Runner.HandleCommand("open " + path) {
		t.Fatal("open command reported failure for a non-existent file")
	}
	ob := s.ActiveBuffer()
	if ob == nil || len(ob.Buffer.Bytes()) != 0 {
		t.Fatal("expected an empty active buffer for a missing file")
	}
}

func TestSaveWritesBufferToDisk(t *testing.T) {
	s := newTestState()
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	ob := s.ActiveBuffer()
	ob.View.InsertText("saved text")
	if !s.Runner.HandleCommand("save " + path) {
		t.Fatal("save command reported failure")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "saved text" {
		t.Fatalf("file contents = %q, want %q", string(data), "saved text")
	}
}

func TestSaveWithNoFilenameAndNoPriorPathErrors(t *testing.T) {
	s := newTestState()
	if s.Runner.HandleCommand("save") {
		t.Fatal("expected save with no filename and no prior path to fail")
	}
}

func TestSearchMovesCursorToNextMatch(t *testing.T) {
	s := newTestState()
	ob := s.ActiveBuffer()
	ob.View.InsertText("alpha beta gamma")
	ob.View.GotoOffset(0)

	ok := s.runSearch(s.Ebuf, "beta")
	if !ok {
		t.Fatalf("expected search for %q to succeed", "beta")
	}
	if got := ob.View.Cursor.ByteOffset(); got != 6 {
		t.Fatalf("cursor offset = %d, want 6 (start of %q)", got, "beta")
	}
}

func TestSearchNoMatchReportsError(t *testing.T) {
	s := newTestState()
	ob := s.ActiveBuffer()
	ob.View.InsertText("alpha beta gamma")

	if s.runSearch(s.Ebuf, "zzz") {
		t.Fatal("expected search for a missing pattern to fail")
	}
}

func TestJumpToTagOpensFileAndGotoLine(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "greeter.go")
	if err := os.WriteFile(target, []byte("package main\n\nfunc greet() {}\n"), 0644); err != nil {
		t.Fatal(err)
	}
	tagsPath := filepath.Join(dir, "tags")
	if err := os.WriteFile(tagsPath, []byte("greet\tgreeter.go\t3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	tf, err := tags.Load(tagsPath)
	if err != nil {
		t.Fatal(err)
	}

	s := newTestState()
	s.Tags = tf
	if !s.jumpToTag(s.Ebuf, "greet") {
		t.Fatalf("jumpToTag failed: %s", s.Ebuf.Message())
	}
	ob := s.ActiveBuffer()
	if ob.Buffer.File.AbsPath != target {
		t.Fatalf("AbsPath = %q, want %q", ob.Buffer.File.AbsPath, target)
	}
	if got := ob.View.Cursor.LineNumber(); got != 2 {
		t.Fatalf("LineNumber() = %d, want 2 (0-based line 3)", got)
	}
}

func TestJumpToTagUnknownNameReportsError(t *testing.T) {
	dir := t.TempDir()
	tagsPath := filepath.Join(dir, "tags")
	if err := os.WriteFile(tagsPath, []byte("greet\tgreeter.go\t3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	tf, err := tags.Load(tagsPath)
	if err != nil {
		t.Fatal(err)
	}

	s := newTestState()
	s.Tags = tf
	if s.jumpToTag(s.Ebuf, "nope") {
		t.Fatal("expected jumpToTag to fail for an unknown tag name")
	}
}

func TestStyleSetCommandLoadsPalette(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "styles.yaml")
	contents := "styles:\n  go.keyword:\n    fg: yellow\n    bold: true\n"
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	s := newTestState()
	if s.Styles != nil {
		t.Fatal("expected no style set loaded by default")
	}
	if !s.Runner.HandleCommand("styleset " + path) {
		t.Fatalf("styleset command failed: %s", s.Ebuf.Message())
	}
	st := syntax.FindStyle(s.Styles, "go.keyword")
	if st == nil || st.Foreground != "yellow" || !st.Bold {
		t.Fatalf("go.keyword = %+v", st)
	}
}

func TestStyleSetCommandMissingFileReportsError(t *testing.T) {
	s := newTestState()
	if s.Runner.HandleCommand("styleset " + filepath.Join(t.TempDir(), "missing.yaml")) {
		t.Fatal("expected styleset to fail for a missing file")
	}
}
