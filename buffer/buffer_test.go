package buffer

import (
	"bytes"
	"strings"
	"testing"
)

func TestEmptyBufferInvariant(t *testing.T) {
	b := New()
	if b.FirstBlock() != b.LastBlock() {
		t.Fatal("empty buffer must have exactly one block")
	}
	if b.FirstBlock().Len() != 0 {
		t.Fatal("empty buffer's block must be empty")
	}
}

func TestInsertUpdatesNLCount(t *testing.T) {
	b := NewFromBytes([]byte("abc\n"))
	it := b.EOF()
	it.Insert([]byte("def\nghi\n"))

	want := strings.Count("abc\ndef\nghi\n", "\n")
	if b.NLCount() != want {
		t.Fatalf("nl=%d want %d", b.NLCount(), want)
	}
	if !bytes.Equal(b.Bytes(), []byte("abc\ndef\nghi\n")) {
		t.Fatalf("unexpected contents: %q", b.Bytes())
	}
}

func TestInsertDeleteRoundTrip(t *testing.T) {
	b := NewFromBytes([]byte("abc\n"))
	it := b.EOF()
	it.Insert([]byte("XYZ"))
	if !bytes.Equal(b.Bytes(), []byte("abc\nXYZ")) {
		t.Fatalf("got %q", b.Bytes())
	}

	// delete the XYZ we just inserted, from the same absolute offset
	back := b.BOF()
	for i := 0; i < 4; i++ {
		back.StepByte()
	}
	removed := back.Delete(3)
	if !bytes.Equal(removed, []byte("XYZ")) {
		t.Fatalf("removed = %q", removed)
	}
	if !bytes.Equal(b.Bytes(), []byte("abc\n")) {
		t.Fatalf("buffer not restored: %q", b.Bytes())
	}
}

func TestNLCountMatchesContentAfterManyMutations(t *testing.T) {
	b := New()
	it := b.BOF()
	it.Insert([]byte("line1\nline2\nline3\n"))
	it2 := b.GoToLine(1)
	it2.Insert([]byte("inserted\n"))
	it3 := b.GoToLine(0)
	it3.Delete(6) // remove "line1\n"

	want := bytes.Count(b.Bytes(), []byte("\n"))
	if b.NLCount() != want {
		t.Fatalf("nl=%d want %d (content=%q)", b.NLCount(), want, b.Bytes())
	}
}

func TestGoToLine(t *testing.T) {
	b := NewFromBytes([]byte("a\nbb\nccc\n"))
	it := b.GoToLine(2)
	r, _ := it.RuneAt()
	if r != 'c' {
		t.Fatalf("expected line 2 to start with 'c', got %q", r)
	}
}

func TestSplitAcrossPreferredSize(t *testing.T) {
	b := New()
	it := b.BOF()
	line := strings.Repeat("x", 100) + "\n"
	var big strings.Builder
	for i := 0; i < 200; i++ {
		big.WriteString(line)
	}
	it.Insert([]byte(big.String()))

	if b.FirstBlock() == b.LastBlock() {
		t.Fatal("expected the insert to split into multiple blocks")
	}
	if !bytes.Equal(b.Bytes(), []byte(big.String())) {
		t.Fatal("content corrupted across block split")
	}
	// every block but the last must end in a newline
	for blk := b.FirstBlock(); blk != b.LastBlock(); blk = blk.Next() {
		buf := blk.Bytes()
		if len(buf) == 0 || buf[len(buf)-1] != '\n' {
			t.Fatalf("non-terminal block does not end in newline: %q", buf)
		}
	}
}

func TestNLCountAfterDelete(t *testing.T) {
	b := New()
	it := b.BOF()
	it.Insert([]byte("aaaa\n"))
	it.Insert([]byte("bbbb\n"))

	// Both lines sit in one block (splitting is covered by
	// TestSplitAcrossPreferredSize); here we just check that deleting
	// a whole line keeps nl accurate.
	d := b.GoToLine(0)
	d.Delete(5)
	if b.NLCount() != bytes.Count(b.Bytes(), []byte("\n")) {
		t.Fatal("nl count diverged after delete")
	}
}

func TestReplaceIsAtomic(t *testing.T) {
	b := NewFromBytes([]byte("hello world\n"))
	it := b.GoToLine(0)
	for i := 0; i < 5; i++ {
		it.StepByte()
	}
	removed := it.Replace(6, []byte("there"))
	if !bytes.Equal(removed, []byte(" world")) {
		t.Fatalf("removed=%q", removed)
	}
	if !bytes.Equal(b.Bytes(), []byte("hellothere\n")) {
		t.Fatalf("got %q", b.Bytes())
	}
}

func TestUTF8Stepping(t *testing.T) {
	b := NewFromBytes([]byte("aéb\n")) // a é b
	it := b.BOF()
	it.StepChar()
	r, _ := it.RuneAt()
	if r != 'é' {
		t.Fatalf("expected é, got %q", r)
	}
	it.StepChar()
	r, _ = it.RuneAt()
	if r != 'b' {
		t.Fatalf("expected b, got %q", r)
	}
	it.PrevChar()
	r, _ = it.RuneAt()
	if r != 'é' {
		t.Fatalf("PrevChar landed on %q, want é", r)
	}
}

func TestBOLEOL(t *testing.T) {
	b := NewFromBytes([]byte("first\nsecond\nthird"))
	it := b.GoToLine(1)
	for i := 0; i < 3; i++ {
		it.StepByte()
	}
	it.BOL()
	if it.LineNumber() != 1 {
		t.Fatalf("BOL moved to wrong line: %d", it.LineNumber())
	}
	it.EOL()
	r, _ := it.RuneAt()
	if r != '\n' {
		t.Fatalf("EOL did not land on newline, got %q", r)
	}
}
