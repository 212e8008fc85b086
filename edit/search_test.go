package edit

import "testing"

func TestFindNextForwardFindsMatch(t *testing.T) {
	re, err := CompileSearchPattern(`wor\w+`)
	if err != nil {
		t.Fatal(err)
	}
	m, ok := FindNext(re, "hello world", 0, SearchForward, false)
	if !ok || m.Start != 6 || m.End != 11 {
		t.Fatalf("got %+v ok=%v", m, ok)
	}
}

func TestFindNextForwardWrapsAround(t *testing.T) {
	re, err := CompileSearchPattern(`foo`)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := FindNext(re, "foo bar", 1, SearchForward, false); ok {
		t.Fatal("expected no match without wrap past the only occurrence")
	}
	m, ok := FindNext(re, "foo bar", 1, SearchForward, true)
	if !ok || m.Start != 0 {
		t.Fatalf("expected wrapped match at 0, got %+v ok=%v", m, ok)
	}
}

func TestFindNextBackwardFindsPriorMatch(t *testing.T) {
	re, err := CompileSearchPattern(`o`)
	if err != nil {
		t.Fatal(err)
	}
	m, ok := FindNext(re, "foo boo", 6, SearchBackward, false)
	if !ok || m.Start != 5 {
		t.Fatalf("got %+v ok=%v", m, ok)
	}
}

func TestFindNextBackwardWrapsToLastMatch(t *testing.T) {
	re, err := CompileSearchPattern(`o`)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := FindNext(re, "oXX", 0, SearchBackward, false); ok {
		t.Fatal("expected no match strictly before offset 0")
	}
	m, ok := FindNext(re, "oXX", 0, SearchBackward, true)
	if !ok || m.Start != 0 {
		t.Fatalf("got %+v ok=%v", m, ok)
	}
}

func TestSearchMatchNamedGroup(t *testing.T) {
	re, err := CompileSearchPattern(`(?<word>\w+)`)
	if err != nil {
		t.Fatal(err)
	}
	m, ok := FindNext(re, "hello", 0, SearchForward, false)
	if !ok || m.NamedGroup("word") != "hello" {
		t.Fatalf("got %+v ok=%v", m, ok)
	}
}
