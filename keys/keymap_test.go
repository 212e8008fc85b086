package keys

import "testing"

func TestKeymapSingleKeyBinding(t *testing.T) {
	km := NewKeymap()
	if err := km.Bind("C-a", "move-left"); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if err := km.Compile(); err != nil {
		t.Fatalf("Compile: %v", err)
	}

	v, err := km.Lookup(Key{Modifier: ModCtrl, Ch: 'a'})
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if v != "move-left" {
		t.Fatalf("Lookup = %v, want move-left", v)
	}
}

func TestKeymapChordRequiresFullSequence(t *testing.T) {
	km := NewKeymap()
	if err := km.Bind("C-x,C-n", "next-buffer"); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if err := km.Compile(); err != nil {
		t.Fatalf("Compile: %v", err)
	}

	xKey := Key{Modifier: ModCtrl, Ch: 'x'}
	nKey := Key{Modifier: ModCtrl, Ch: 'n'}

	if _, err := km.Lookup(xKey); err != ErrInSequence {
		t.Fatalf("first key: got %v, want ErrInSequence", err)
	}
	if !km.InMiddleOfChain() {
		t.Fatal("expected InMiddleOfChain after first key of chord")
	}
	v, err := km.Lookup(nKey)
	if err != nil {
		t.Fatalf("second key: %v", err)
	}
	if v != "next-buffer" {
		t.Fatalf("Lookup = %v, want next-buffer", v)
	}
	if km.InMiddleOfChain() {
		t.Fatal("chain should be reset after complete match")
	}
}

func TestKeymapLongestSequenceWins(t *testing.T) {
	km := NewKeymap()
	must := func(err error) {
		if err != nil {
			t.Fatal(err)
		}
	}
	must(km.Bind("C-x", "short"))
	must(km.Bind("C-x,C-n", "long"))
	must(km.Compile())

	xKey := Key{Modifier: ModCtrl, Ch: 'x'}
	nKey := Key{Modifier: ModCtrl, Ch: 'n'}

	// "C-x" alone never fires while "C-x,C-n" is still reachable.
	if _, err := km.Lookup(xKey); err != ErrInSequence {
		t.Fatalf("got %v, want ErrInSequence", err)
	}
	v, err := km.Lookup(nKey)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if v != "long" {
		t.Fatalf("Lookup = %v, want long", v)
	}
}

func TestKeymapNoMatchResetsChain(t *testing.T) {
	km := NewKeymap()
	if err := km.Bind("C-x,C-n", "next-buffer"); err != nil {
		t.Fatal(err)
	}
	if err := km.Compile(); err != nil {
		t.Fatal(err)
	}

	xKey := Key{Modifier: ModCtrl, Ch: 'x'}
	zKey := Key{Modifier: ModCtrl, Ch: 'z'}

	if _, err := km.Lookup(xKey); err != ErrInSequence {
		t.Fatalf("got %v", err)
	}
	if _, err := km.Lookup(zKey); err != ErrNoMatch {
		t.Fatalf("got %v, want ErrNoMatch", err)
	}
	if km.InMiddleOfChain() {
		t.Fatal("chain should reset after a non-matching key")
	}
}

func TestKeymapBindingsRoundTrip(t *testing.T) {
	km := NewKeymap()
	must := func(err error) {
		if err != nil {
			t.Fatal(err)
		}
	}
	must(km.Bind("C-a", "move-bol"))
	must(km.Bind("M-S-up", "select-up"))
	must(km.Compile())

	bindings := km.Bindings()
	if len(bindings) != 2 {
		t.Fatalf("len(Bindings()) = %d, want 2", len(bindings))
	}
	got := map[string]any{}
	for _, b := range bindings {
		got[b.KeyString] = b.Value
	}
	if got["C-a"] != "move-bol" {
		t.Fatalf("C-a binding = %v", got["C-a"])
	}
	if got["M-S-up"] != "select-up" {
		t.Fatalf("M-S-up binding = %v", got["M-S-up"])
	}
}

func TestKeymapUnbind(t *testing.T) {
	km := NewKeymap()
	if err := km.Bind("C-a", "move-bol"); err != nil {
		t.Fatal(err)
	}
	km.Unbind("C-a")
	if err := km.Compile(); err != nil {
		t.Fatal(err)
	}
	if _, err := km.Lookup(Key{Modifier: ModCtrl, Ch: 'a'}); err != ErrNoMatch {
		t.Fatalf("got %v, want ErrNoMatch after unbind", err)
	}
}

func TestParseKeyStringRejectsBarePrintableWithShift(t *testing.T) {
	if _, err := ParseKeyString("S-a"); err == nil {
		t.Fatal("expected error binding a bare printable with Shift alone")
	}
}

func TestCanonicalKeyStringRoundTrip(t *testing.T) {
	cases := []string{"C-a", "M-C-x", "C-M-S-up", "escape", "F5"}
	for _, c := range cases {
		s1, err := CanonicalKeyString(c)
		if err != nil {
			t.Fatalf("%q: %v", c, err)
		}
		s2, err := CanonicalKeyString(s1)
		if err != nil {
			t.Fatalf("%q round 2: %v", s1, err)
		}
		if s1 != s2 {
			t.Fatalf("not idempotent: %q -> %q -> %q", c, s1, s2)
		}
	}
}
