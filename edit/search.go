package edit

import (
	"github.com/dlclark/regexp2"
	"github.com/pkg/errors"
)

// SearchDirection selects forward or backward search, mirroring the
// `dir` field of the macro recorder's Search(pat, dir, add_to_history)
// event (see command/macro.go).
type SearchDirection int

const (
	SearchForward SearchDirection = iota
	SearchBackward
)

// SearchMatch is one match's byte range and its captured groups,
// addressable by index or name per this design's "Regex engine" design
// note.
type SearchMatch struct {
	Start, End int
	re         *regexp2.Regexp
	m          *regexp2.Match
}

// Group returns the text captured by the i'th group (0 is the whole
// match), or "" if that group didn't participate.
func (sm SearchMatch) Group(i int) string {
	if sm.m == nil {
		return ""
	}
	groups := sm.m.Groups()
	if i < 0 || i >= len(groups) {
		return ""
	}
	return groups[i].String()
}

// NamedGroup returns the text captured by a named group, or "" if it
// didn't participate or doesn't exist.
func (sm SearchMatch) NamedGroup(name string) string {
	if sm.m == nil {
		return ""
	}
	g := sm.m.GroupByName(name)
	if g == nil {
		return ""
	}
	return g.String()
}

// CompileSearchPattern compiles pattern with Multiline semantics, so
// `^`/`$` match at embedded line boundaries rather than only at the
// buffer's extremes — the closest regexp2 comes to POSIX `REG_NEWLINE`
// without hand-rolling offset bookkeeping around every match.
// regexp2 is the pack's available regex engine (an indirect dependency
// of a sibling example repo) with .NET-style capture groups addressable
// by name, which stdlib `regexp`'s RE2 engine cannot provide.
func CompileSearchPattern(pattern string) (*regexp2.Regexp, error) {
	re, err := regexp2.Compile(pattern, regexp2.Multiline)
	if err != nil {
		return nil, errors.Wrap(err, "compiling search pattern")
	}
	return re, nil
}

// FindNext returns the next match of re in content relative to from,
// in the given direction, wrapping around the buffer's ends when wrap
// is true. ok is false if nothing matches anywhere in content.
func FindNext(re *regexp2.Regexp, content string, from int, dir SearchDirection, wrap bool) (result SearchMatch, ok bool) {
	if dir == SearchForward {
		return findNextForward(re, content, from, wrap)
	}
	return findNextBackward(re, content, from, wrap)
}

func toMatch(re *regexp2.Regexp, m *regexp2.Match) SearchMatch {
	return SearchMatch{Start: m.Index, End: m.Index + m.Length, re: re, m: m}
}

func findNextForward(re *regexp2.Regexp, content string, from int, wrap bool) (SearchMatch, bool) {
	m, _ := re.FindStringMatchStartingAt(content, from)
	if m != nil {
		return toMatch(re, m), true
	}
	if !wrap {
		return SearchMatch{}, false
	}
	m, _ = re.FindStringMatch(content)
	if m == nil {
		return SearchMatch{}, false
	}
	return toMatch(re, m), true
}

// findNextBackward scans every match in content (regexp2 has no
// native reverse search) and keeps the last one strictly before from,
// falling back to the overall last match when wrap is requested.
func findNextBackward(re *regexp2.Regexp, content string, from int, wrap bool) (SearchMatch, bool) {
	var best, last *regexp2.Match
	m, _ := re.FindStringMatch(content)
	for m != nil {
		if m.Index < from && (best == nil || m.Index > best.Index) {
			best = m
		}
		if last == nil || m.Index > last.Index {
			last = m
		}
		m, _ = re.FindNextMatch(m)
	}
	if best != nil {
		return toMatch(re, best), true
	}
	if wrap && last != nil {
		return toMatch(re, last), true
	}
	return SearchMatch{}, false
}
