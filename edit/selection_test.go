package edit

import "testing"

func TestSelectionCharsRangeOrdersAnchorAndCursor(t *testing.T) {
	v := newTestView("hello world\n")
	v.Cursor = v.seekOffset(6)
	v.StartSelection(SelectChars)
	v.Cursor = v.seekOffset(2)

	start, end, ok := v.Selection()
	if !ok || start != 2 || end != 6 {
		t.Fatalf("got start=%d end=%d ok=%v", start, end, ok)
	}
}

func TestSelectionLinesWidensToWholeLines(t *testing.T) {
	v := newTestView("one\ntwo\nthree\n")
	v.Cursor = v.seekOffset(5) // inside "two"
	v.StartSelection(SelectLines)

	start, end, ok := v.Selection()
	if !ok || start != 4 || end != 8 {
		t.Fatalf("got start=%d end=%d ok=%v", start, end, ok)
	}
	if n := v.NumSelectedLines(); n != 1 {
		t.Fatalf("expected 1 line, got %d", n)
	}
}

func TestSelectionLinesSpanningMultipleLines(t *testing.T) {
	v := newTestView("one\ntwo\nthree\n")
	v.Cursor = v.seekOffset(0)
	v.StartSelection(SelectLines)
	v.Cursor = v.seekOffset(5)

	if n := v.NumSelectedLines(); n != 2 {
		t.Fatalf("expected 2 lines, got %d", n)
	}
}

func TestClearSelectionDisablesRange(t *testing.T) {
	v := newTestView("hello\n")
	v.StartSelection(SelectChars)
	v.ClearSelection()
	if _, _, ok := v.Selection(); ok {
		t.Fatal("expected no active selection")
	}
}

func TestShiftLinesWithSelectionShiftsEveryLine(t *testing.T) {
	v := newTestView("    one\n    two\nthree\n")
	v.Cursor = v.seekOffset(0)
	v.StartSelection(SelectChars)
	v.Cursor = v.seekOffset(10) // inside "two"

	v.ShiftLines(1)

	want := "        one\n        two\nthree\n"
	if got := string(v.Buffer.Bytes()); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}
