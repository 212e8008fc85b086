package command

import "strings"

// isBareSafe reports whether r can appear in an unquoted token without
// being special to tokenizeSegment (whitespace, `;`/newline command
// separators, `#` comments, the quote/escape/variable introducers, and
// a leading `~`).
func isBareSafe(r rune, atStart bool) bool {
	switch r {
	case ' ', '\t', '\r', '\n', ';', '#', '\'', '"', '\\', '$':
		return false
	case '~':
		return !atStart
	}
	return r >= 0x20
}

// needsQuoting reports whether arg round-trips through tokenizeSegment
// unchanged when written bare (no quoting at all).
func needsQuoting(arg string) bool {
	if arg == "" {
		return true
	}
	for i, r := range arg {
		if !isBareSafe(r, i == 0) {
			return true
		}
	}
	return false
}

// EscapeArg renders a single argument so that tokenizing it back
// (Tokenize, with any Expander) reproduces arg exactly: the
// round-trip law this design requires. A single-quoted string can
// contain anything except a literal `'`, including `$`, `#`, `;`,
// backslashes and whitespace, without triggering any of those
// characters' special meaning; only a literal `'` itself must be
// switched out into a separate double-quoted segment. Adjacent
// quoted segments concatenate into one token, so this never needs to
// insert a backslash escape.
func EscapeArg(arg string) string {
	if !needsQuoting(arg) {
		return arg
	}
	if arg == "" {
		return "''"
	}

	var out strings.Builder
	var run strings.Builder
	flushRun := func() {
		if run.Len() > 0 {
			out.WriteByte('\'')
			out.WriteString(run.String())
			out.WriteByte('\'')
			run.Reset()
		}
	}
	for _, r := range arg {
		if r == '\'' {
			flushRun()
			out.WriteString(`"'"`)
			continue
		}
		run.WriteRune(r)
	}
	flushRun()
	return out.String()
}

// RenderArgs joins argv into one command-line string whose tokens,
// re-tokenized, reproduce argv exactly.
func RenderArgs(argv []string) string {
	parts := make([]string, len(argv))
	for i, a := range argv {
		parts[i] = EscapeArg(a)
	}
	return strings.Join(parts, " ")
}

// bindModeFlag is the single-character flag the bindings-file grammar
// (this design: `bind [-cns] <keystring> <command>`) uses for each
// non-default input mode.
func bindModeFlag(mode string) (flag byte, ok bool) {
	switch mode {
	case "command":
		return 'c', true
	case "search":
		return 's', true
	case "normal":
		return 0, false // default mode: no flag emitted
	}
	return 0, false
}

// RenderBinding formats one `bind` line for mode/keyString/command,
// matching the `bind [-cns] <keystring> <command>` grammar. mode is
// "normal" (default, no flag), "command", or "search"; an unrecognized
// mode is treated as "normal" with an explicit `-n` flag so the
// round-trip is still exact.
func RenderBinding(mode, keyString, command string) string {
	var b strings.Builder
	b.WriteString("bind ")
	if flag, ok := bindModeFlag(mode); ok {
		b.WriteByte('-')
		b.WriteByte(flag)
		b.WriteByte(' ')
	} else if mode != "normal" {
		b.WriteString("-n ")
	}
	b.WriteString(EscapeArg(keyString))
	b.WriteByte(' ')
	b.WriteString(command)
	return b.String()
}
