package edit

import (
	"bytes"
	"testing"

	"github.com/dteedit/dte/buffer"
	"github.com/dteedit/dte/change"
)

func newTestView(content string) *View {
	b := buffer.NewFromBytes([]byte(content))
	b.Options = testOptions()
	return NewView(b, change.New())
}

func TestShiftRightSaneIndentAddsOneLevel(t *testing.T) {
	v := newTestView("    foo\n")
	v.ShiftLines(1)
	if !bytes.Equal(v.Buffer.Bytes(), []byte("        foo\n")) {
		t.Fatalf("got %q", v.Buffer.Bytes())
	}
}

func TestShiftRightWhitespaceOnlyLineIsCleared(t *testing.T) {
	v := newTestView("    \n")
	v.ShiftLines(1)
	if !bytes.Equal(v.Buffer.Bytes(), []byte("\n")) {
		t.Fatalf("got %q", v.Buffer.Bytes())
	}
}

func TestShiftLeftRemovesOneLevel(t *testing.T) {
	v := newTestView("        foo\n")
	v.ShiftLines(-1)
	if !bytes.Equal(v.Buffer.Bytes(), []byte("    foo\n")) {
		t.Fatalf("got %q", v.Buffer.Bytes())
	}
}

func TestShiftLeftClampsAtZero(t *testing.T) {
	v := newTestView("    foo\n")
	v.ShiftLines(-5)
	if !bytes.Equal(v.Buffer.Bytes(), []byte("foo\n")) {
		t.Fatalf("got %q", v.Buffer.Bytes())
	}
}

func TestShiftRightRecordsUndoableChange(t *testing.T) {
	v := newTestView("    foo\n")
	v.ShiftLines(1)
	if v.Changes.Current() == v.Changes.Root() {
		t.Fatal("expected a change to be recorded")
	}
}
