package edit

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// ExpandReplacement substitutes `$$`, `$N` (group by index), and
// `${name}` (group by name) references in template against sm's
// captures, the template grammar a `replace` command's replacement
// argument uses.
func ExpandReplacement(template string, sm SearchMatch) string {
	var out strings.Builder
	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '$' || i+1 >= len(template) {
			out.WriteByte(c)
			continue
		}
		next := template[i+1]
		switch {
		case next == '$':
			out.WriteByte('$')
			i++
		case next == '{':
			end := strings.IndexByte(template[i+2:], '}')
			if end < 0 {
				out.WriteByte(c)
				continue
			}
			name := template[i+2 : i+2+end]
			out.WriteString(sm.NamedGroup(name))
			i += 2 + end
		case next >= '0' && next <= '9':
			j := i + 1
			for j < len(template) && template[j] >= '0' && template[j] <= '9' {
				j++
			}
			n := 0
			for _, d := range template[i+1 : j] {
				n = n*10 + int(d-'0')
			}
			out.WriteString(sm.Group(n))
			i = j - 1
		default:
			out.WriteByte(c)
		}
	}
	return out.String()
}

// ReplaceMatch substitutes sm's matched range in v's buffer with
// template (expanded against sm's captures), recording the edit as an
// atomic, non-coalescing change. The cursor is left just after the
// inserted replacement.
func (v *View) ReplaceMatch(sm SearchMatch, template string) {
	it := v.seekOffset(sm.Start)
	replacement := ExpandReplacement(template, sm)
	replaceAt(&it, v.Changes, sm.End-sm.Start, []byte(replacement))
	v.Cursor = it
	v.ResetPreferredX()
}

// ReplaceAll substitutes every match of re in v's buffer with template,
// scanning left to right. Re-reads the buffer's content and re-runs
// the search after each edit, since a replacement of different length
// than its match shifts every subsequent byte offset. Returns the
// number of replacements made.
func (v *View) ReplaceAll(re *regexp2.Regexp, template string) int {
	count := 0
	from := 0
	for {
		content := string(v.Buffer.Bytes())
		sm, ok := FindNext(re, content, from, SearchForward, false)
		if !ok {
			break
		}
		v.ReplaceMatch(sm, template)
		replacement := ExpandReplacement(template, sm)
		from = sm.Start + len(replacement)
		count++
	}
	return count
}
