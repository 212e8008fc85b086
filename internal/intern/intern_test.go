package intern

import "testing"

func TestInternRoundTrip(t *testing.T) {
	p := New()
	id1 := p.Intern("keyword")
	id2 := p.Intern("string")
	id3 := p.Intern("keyword")

	if id1 != id3 {
		t.Fatalf("expected same id for repeated intern, got %d and %d", id1, id3)
	}
	if id1 == id2 {
		t.Fatal("distinct strings got the same id")
	}

	if s, ok := p.Lookup(id2); !ok || s != "string" {
		t.Fatalf("lookup failed: %q %v", s, ok)
	}

	if _, ok := p.Lookup(0); ok {
		t.Fatal("id 0 must never resolve")
	}

	names := p.SortedNames()
	if len(names) != 2 || names[0] != "keyword" || names[1] != "string" {
		t.Fatalf("unexpected sorted names: %v", names)
	}
}
