package layout

import (
	"testing"

	"github.com/dteedit/dte/buffer"
	"github.com/dteedit/dte/change"
	"github.com/dteedit/dte/edit"
)

func newTestView() *edit.View {
	b := buffer.NewFromBytes([]byte("line one\nline two\n"))
	return edit.NewView(b, change.New())
}

func TestNewRootFillsRect(t *testing.T) {
	opts := Options{}
	root := NewRoot(Rect{X: 0, Y: 0, W: 80, H: 24}, opts, newTestView())
	if !root.IsLeaf() {
		t.Fatal("expected a fresh root to be a leaf")
	}
	if root.Window.EditW != 80 || root.Window.EditH != 23 {
		t.Fatalf("unexpected edit size: %+v", root.Window)
	}
}

func TestLineNumbersWidenTheGutter(t *testing.T) {
	opts := Options{ShowLineNumbers: true}
	root := NewRoot(Rect{X: 0, Y: 0, W: 80, H: 24}, opts, newTestView())
	if root.Window.LineNumberWidth != lineNumbersMinWidth {
		t.Fatalf("expected minimum gutter width %d, got %d", lineNumbersMinWidth, root.Window.LineNumberWidth)
	}
	if root.Window.EditX != lineNumbersMinWidth {
		t.Fatalf("expected EditX to start after the gutter, got %d", root.Window.EditX)
	}
}

func TestSplitVerticalDividesWidth(t *testing.T) {
	opts := Options{}
	root := NewRoot(Rect{X: 0, Y: 0, W: 80, H: 24}, opts, newTestView())
	second := root.Split(opts, true)

	if len(root.Children) != 2 {
		t.Fatalf("expected 2 children after split, got %d", len(root.Children))
	}
	first := root.Children[0].Window
	if first.Rect.W != 40 || second.Rect.W != 40 {
		t.Fatalf("expected an even width split, got %d and %d", first.Rect.W, second.Rect.W)
	}
	if second.Rect.X != 40 {
		t.Fatalf("expected second pane to start at x=40, got %d", second.Rect.X)
	}
}

func TestSplitHorizontalDividesHeight(t *testing.T) {
	opts := Options{}
	root := NewRoot(Rect{X: 0, Y: 0, W: 80, H: 24}, opts, newTestView())
	second := root.Split(opts, false)

	first := root.Children[0].Window
	if first.Rect.H != 12 || second.Rect.H != 12 {
		t.Fatalf("expected an even height split, got %d and %d", first.Rect.H, second.Rect.H)
	}
	if second.Rect.Y != 12 {
		t.Fatalf("expected second pane to start at y=12, got %d", second.Rect.Y)
	}
}

func TestNextAndPrevWindowCycle(t *testing.T) {
	opts := Options{}
	root := NewRoot(Rect{X: 0, Y: 0, W: 80, H: 24}, opts, newTestView())
	first := root.Window
	second := root.Split(opts, true)

	if NextWindow(root, first) != second {
		t.Fatal("expected NextWindow(first) to be second")
	}
	if NextWindow(root, second) != first {
		t.Fatal("expected NextWindow to wrap around to first")
	}
	if PrevWindow(root, first) != second {
		t.Fatal("expected PrevWindow(first) to wrap around to second")
	}
}

func TestCloseCollapsesParentToSurvivingSibling(t *testing.T) {
	opts := Options{}
	root := NewRoot(Rect{X: 0, Y: 0, W: 80, H: 24}, opts, newTestView())
	first := root.Window
	second := root.Split(opts, true)

	newRoot, next := Close(opts, root, second)
	if next != first {
		t.Fatalf("expected next active window to be first, got %+v", next)
	}
	if !newRoot.IsLeaf() {
		t.Fatal("expected collapsing back to one window to produce a leaf root")
	}
	if newRoot.Window.Rect.W != 80 {
		t.Fatalf("expected the surviving window to reclaim the full width, got %d", newRoot.Window.Rect.W)
	}
}

func TestCloseRefusesToRemoveTheLastWindow(t *testing.T) {
	opts := Options{}
	root := NewRoot(Rect{X: 0, Y: 0, W: 80, H: 24}, opts, newTestView())
	_, next := Close(opts, root, root.Window)
	if next != nil {
		t.Fatal("expected closing the only window to report no next window")
	}
	if !root.IsLeaf() || root.Window == nil {
		t.Fatal("expected the lone window to survive")
	}
}

func TestScrollMarginClampsToHalfEditHeight(t *testing.T) {
	opts := Options{}
	root := NewRoot(Rect{X: 0, Y: 0, W: 80, H: 11}, opts, newTestView())
	if got := ScrollMargin(root.Window, 100); got != (root.Window.EditH-1)/2 {
		t.Fatalf("expected clamp to %d, got %d", (root.Window.EditH-1)/2, got)
	}
}
