package command

import "testing"

func roundTrip(t *testing.T, arg string) {
	t.Helper()
	rendered := EscapeArg(arg)
	argv, err := Tokenize(rendered, NopExpander{})
	if err != nil {
		t.Fatalf("EscapeArg(%q) = %q, Tokenize error: %v", arg, rendered, err)
	}
	if len(argv) != 1 || argv[0] != arg {
		t.Fatalf("EscapeArg(%q) = %q, round-trip = %v, want [%q]", arg, rendered, argv, arg)
	}
}

func TestEscapeArgRoundTrips(t *testing.T) {
	cases := []string{
		"",
		"plain",
		"has space",
		"$DOLLAR",
		"semi;colon",
		"hash#tag",
		`back\slash`,
		`quote"mark`,
		"it's got an apostrophe",
		"~leading",
		"mixed 'quote' and $var and ~tilde",
		"tab\tnewline\nend",
		"multiple''''quotes",
	}
	for _, c := range cases {
		roundTrip(t, c)
	}
}

func TestRenderArgsJoinsWithSpaces(t *testing.T) {
	rendered := RenderArgs([]string{"a", "b c", "it's"})
	argv, err := Tokenize(rendered, NopExpander{})
	if err != nil {
		t.Fatalf("Tokenize(%q): %v", rendered, err)
	}
	want := []string{"a", "b c", "it's"}
	if len(argv) != len(want) {
		t.Fatalf("got %v, want %v", argv, want)
	}
	for i, w := range want {
		if argv[i] != w {
			t.Fatalf("argv[%d] = %q, want %q", i, argv[i], w)
		}
	}
}

func TestRenderBindingFormatsModeFlag(t *testing.T) {
	line := RenderBinding("command", "C-x", "insert hi")
	want := "bind -c C-x insert hi"
	if line != want {
		t.Fatalf("got %q, want %q", line, want)
	}

	line = RenderBinding("normal", "F5", "save")
	want = "bind F5 save"
	if line != want {
		t.Fatalf("got %q, want %q", line, want)
	}
}
