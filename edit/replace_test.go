package edit

import "testing"

func TestExpandReplacementIndexedGroups(t *testing.T) {
	re, err := CompileSearchPattern(`(\w+)@(\w+)`)
	if err != nil {
		t.Fatal(err)
	}
	m, ok := FindNext(re, "user@host", 0, SearchForward, false)
	if !ok {
		t.Fatal("expected a match")
	}
	if got := ExpandReplacement(`$2!$1`, m); got != "host!user" {
		t.Fatalf("got %q", got)
	}
}

func TestExpandReplacementNamedGroupAndLiteralDollar(t *testing.T) {
	re, err := CompileSearchPattern(`(?<name>\w+)`)
	if err != nil {
		t.Fatal(err)
	}
	m, ok := FindNext(re, "alice", 0, SearchForward, false)
	if !ok {
		t.Fatal("expected a match")
	}
	if got := ExpandReplacement(`$$${name}`, m); got != "$alice" {
		t.Fatalf("got %q", got)
	}
}

func TestReplaceMatchEditsBuffer(t *testing.T) {
	v := newTestView("hello world\n")
	re, err := CompileSearchPattern(`world`)
	if err != nil {
		t.Fatal(err)
	}
	m, ok := FindNext(re, string(v.Buffer.Bytes()), 0, SearchForward, false)
	if !ok {
		t.Fatal("expected a match")
	}
	v.ReplaceMatch(m, "there")
	if got := string(v.Buffer.Bytes()); got != "hello there\n" {
		t.Fatalf("got %q", got)
	}
}

func TestReplaceAllReplacesEveryOccurrence(t *testing.T) {
	v := newTestView("cat cat cat\n")
	re, err := CompileSearchPattern(`cat`)
	if err != nil {
		t.Fatal(err)
	}
	n := v.ReplaceAll(re, "dog")
	if n != 3 {
		t.Fatalf("expected 3 replacements, got %d", n)
	}
	if got := string(v.Buffer.Bytes()); got != "dog dog dog\n" {
		t.Fatalf("got %q", got)
	}
}
