// Package editorconfig implements EditorConfig ingestion: the glob
// grammar this design documents (`*`, `**`, `?`, `[…]`, `[!…]`, brace
// alternation with nesting, literal escapes via `\`) and the four
// recognised properties (indent_style, indent_size, tab_width,
// max_line_length). No original_source file covers this — EditorConfig
// is explicitly named an external collaborator in this design — so the
// glob compiler here is original code following the documented
// grammar directly.
package editorconfig

import (
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/pkg/errors"
)

// CompileGlob translates an EditorConfig glob pattern into a regexp2
// matcher anchored across the whole candidate path.
func CompileGlob(pattern string) (*regexp2.Regexp, error) {
	var out strings.Builder
	out.WriteString(`\A`)
	if err := translateGlob(pattern, &out, 0); err != nil {
		return nil, errors.Wrapf(err, "compiling glob %q", pattern)
	}
	out.WriteString(`\z`)
	re, err := regexp2.Compile(out.String(), 0)
	if err != nil {
		return nil, errors.Wrapf(err, "compiling glob %q", pattern)
	}
	return re, nil
}

// translateGlob walks pattern once, appending the equivalent regex
// fragment to out. A construct that turns out to be malformed — an
// unterminated `[...]`, an unmatched `{`, or a trailing `\` — falls
// back to matching its opening character literally rather than
// failing the whole compile, mirroring ec_pattern_match's permissive
// handling of the same inputs.
func translateGlob(pattern string, out *strings.Builder, depth int) error {
	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch r {
		case '\\':
			if i+1 >= len(runes) {
				out.WriteString(regexp2.Escape(`\`))
				break
			}
			i++
			out.WriteString(regexp2.Escape(string(runes[i])))
		case '*':
			if i+1 < len(runes) && runes[i+1] == '*' {
				out.WriteString(`.*`)
				i++
			} else {
				out.WriteString(`[^/]*`)
			}
		case '?':
			out.WriteString(`[^/]`)
		case '[':
			j := i + 1
			negate := j < len(runes) && (runes[j] == '!' || runes[j] == '^')
			if negate {
				j++
			}
			start := j
			for j < len(runes) && runes[j] != ']' {
				j++
			}
			if j >= len(runes) {
				// Unterminated class: '[' and everything after it up
				// to here stand for themselves literally.
				out.WriteString(regexp2.Escape(string(r)))
				break
			}
			class := string(runes[start:j])
			out.WriteByte('[')
			if negate {
				out.WriteByte('^')
			}
			out.WriteString(escapeClassBody(class))
			out.WriteByte(']')
			i = j
		case '{':
			alts, next, err := splitBraceAlternatives(runes, i+1)
			if err != nil {
				// Unmatched brace: treat '{' as a literal character and
				// let the rest of the string parse normally from here.
				out.WriteString(regexp2.Escape(string(r)))
				break
			}
			out.WriteByte('(')
			for k, alt := range alts {
				if k > 0 {
					out.WriteByte('|')
				}
				if err := translateGlob(alt, out, depth+1); err != nil {
					return err
				}
			}
			out.WriteByte(')')
			i = next
		case '}':
			out.WriteString(regexp2.Escape(string(r)))
		case '/', '.', '(', ')', '+', '|', '^', '$':
			out.WriteString(regexp2.Escape(string(r)))
		default:
			out.WriteRune(r)
		}
	}
	return nil
}

// escapeClassBody escapes the handful of bytes meaningful inside a
// regex character class but not inside an EditorConfig one.
func escapeClassBody(class string) string {
	var out strings.Builder
	for _, r := range class {
		if r == '\\' || r == ']' || r == '^' {
			out.WriteByte('\\')
		}
		out.WriteRune(r)
	}
	return out.String()
}

// splitBraceAlternatives finds the comma-separated alternatives inside
// a `{...}` starting just after the opening brace at runes[start-1],
// respecting nested braces, returning the raw (untranslated)
// alternative substrings and the index of the matching '}'.
func splitBraceAlternatives(runes []rune, start int) ([]string, int, error) {
	depth := 1
	var alts []string
	segStart := start
	i := start
	for ; i < len(runes); i++ {
		switch runes[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				alts = append(alts, string(runes[segStart:i]))
				return alts, i, nil
			}
		case ',':
			if depth == 1 {
				alts = append(alts, string(runes[segStart:i]))
				segStart = i + 1
			}
		}
	}
	return nil, 0, errors.New("unterminated brace alternation")
}
