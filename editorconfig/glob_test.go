package editorconfig

import "testing"

func matches(t *testing.T, pattern, candidate string) bool {
	t.Helper()
	re, err := CompileGlob(pattern)
	if err != nil {
		t.Fatalf("CompileGlob(%q): %v", pattern, err)
	}
	ok, err := re.MatchString(candidate)
	if err != nil {
		t.Fatalf("MatchString(%q) against %q: %v", candidate, pattern, err)
	}
	return ok
}

func TestGlobLiteralAndWildcards(t *testing.T) {
	cases := []struct {
		pattern, candidate string
		want               bool
	}{
		{"*", "file.c", true},
		{"*.{c,h}", "file.c", true},
		{"*.{foo}", "file.foo", true},
		{"*.{foo{bar,baz}}", "file.foobaz", true},
		{"*.{foo{bar,baz}}", "file.foo", false},
		{"a/**/b/c/*.[ch]", "a/zzz/yyy/foo/b/c/file.h", true},
		{"a/*/b/c/*.[ch]", "a/zzz/yyy/foo/b/c/file.h", false},
		{"}*.{x,y}", "}foo.y", true},
		{"}*.{x,y}", "foo.y", false},
		{"{}*.{x,y}", "foo.y", true},
		{"*.[xyz]", "foo.z", true},
		{"*.[xyz", "foo.z", false},
		{"*.[xyz", "foo.[xyz", true},
		{"*.[!xyz]", "foo.a", true},
		{"*.[!xyz]", "foo.z", false},
		{"*.[", "foo.[", true},
		{"*.[a", "foo.[a", true},
		{"*.[abc]def", "foo.bdef", true},
		{"x{{foo,},}", "x", true},
		{"x{{foo,},}", "xfoo", true},
		{"file.{,,x,,y,,}", "file.x", true},
		{"file.{,,x,,y,,}", "file.", true},
		{"file.{,,x,,y,,}", "file.z", false},
		{"*.x,y,z", "file.x,y,z", true},
		{"*.{x,y,z}", "file.y", true},
		{"*.{x,y,z}", "file.x,y,z", false},
		{"*.{x,y,z}", "file.{x,y,z}", false},
		{"file.{{{a,b,{c,,d}}}}", "file.d", true},
		{"file.{{{a,b,{c,,d}}}}", "file.", true},
		{"file.{{{a,b,{c,d}}}}", "file.", false},
		{"file.{c[vl]d,inc}", "file.cvd", true},
		{"file.{c[vl]d,inc}", "file.cld", true},
		{"file.{c[vl]d,inc}", "file.inc", true},
		{"file.{c[vl]d,inc}", "file.cd", false},
		{"a?b.c", "a_b.c", true},
		{"a?b.c", "a/b.c", false},
		{`a\[.abc`, "a[.abc", true},
		{`a\{.abc`, "a{.abc", true},
		{`a\*.abc`, "a*.abc", true},
		{`a\?.abc`, "a?.abc", true},
		{`a\*.abc`, "az.abc", false},
		{`a\?.abc`, "az.abc", false},
		{"{{{a}}}", "a", true},
		{"{{{a}}", "a", false},
		{`*.xyz\`, `file.xyz\`, true},
		{`*.xyz\`, "file.xyz", false},
	}
	for _, c := range cases {
		if got := matches(t, c.pattern, c.candidate); got != c.want {
			t.Errorf("match(%q, %q) = %v, want %v", c.pattern, c.candidate, got, c.want)
		}
	}
}
