package syntax

import (
	"strings"
	"unicode/utf8"
)

// isWordByte mirrors the word-boundary test CondInList/CondInListIcase
// use to find where a candidate word starts and ends: a letter,
// digit, or underscore.
func isWordByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// wordAt returns the maximal run of word bytes starting at pos (which
// must itself be a word byte), used by the InList conditions to pull
// out the candidate keyword to look up.
func wordAt(line []byte, pos int) string {
	end := pos
	for end < len(line) && isWordByte(line[end]) {
		end++
	}
	return string(line[pos:end])
}

// matchCondition evaluates cond against line at byte offset pos,
// returning whether it matched and, if so, how many bytes it
// consumed. lineOffset is line's absolute byte offset in the buffer
// (needed only by CondBufferStart).
func matchCondition(cond *Condition, line []byte, pos int, lineOffset int) (bool, int) {
	switch cond.Kind {
	case CondLiteral:
		if bytesHasPrefix(line[pos:], cond.Bytes) {
			return true, len(cond.Bytes)
		}
		return false, 0

	case CondLiteralIcase:
		if len(cond.Bytes) > len(line)-pos {
			return false, 0
		}
		if strings.EqualFold(string(line[pos:pos+len(cond.Bytes)]), string(cond.Bytes)) {
			return true, len(cond.Bytes)
		}
		return false, 0

	case CondCharSet:
		if pos < len(line) && cond.Set.Has(line[pos]) {
			return true, 1
		}
		return false, 0

	case CondBlank:
		if pos < len(line) && (line[pos] == ' ' || line[pos] == '\t') {
			return true, 1
		}
		return false, 0

	case CondInList, CondInListIcase:
		if pos >= len(line) || !isWordByte(line[pos]) {
			return false, 0
		}
		// Only a word boundary start counts: the previous byte (if
		// any) must not itself be a word byte.
		if pos > 0 && isWordByte(line[pos-1]) {
			return false, 0
		}
		word := wordAt(line, pos)
		if cond.list != nil && cond.list.Has(word) {
			return true, len(word)
		}
		return false, 0

	case CondRegex:
		if cond.Regex == nil {
			return false, 0
		}
		m, err := cond.Regex.FindStringMatchStartingAt(string(line), pos)
		if err != nil || m == nil || m.Index != utf8.RuneCount(line[:pos]) || m.Length == 0 {
			return false, 0
		}
		return true, len(m.String())

	case CondHeredocBegin:
		if pos >= len(line) || !isWordByte(line[pos]) {
			return false, 0
		}
		word := wordAt(line, pos)
		return true, len(word)

	case CondHeredocEnd:
		if len(cond.HeredocDelim) == 0 {
			return false, 0
		}
		if bytesHasPrefix(line[pos:], cond.HeredocDelim) {
			return true, len(cond.HeredocDelim)
		}
		return false, 0

	case CondBufferStart:
		if lineOffset+pos == 0 {
			return true, 0
		}
		return false, 0

	case CondEOL:
		if pos == len(line) {
			return true, 0
		}
		return false, 0

	default:
		return false, 0
	}
}

func bytesHasPrefix(s, prefix []byte) bool {
	if len(prefix) > len(s) {
		return false
	}
	for i := range prefix {
		if s[i] != prefix[i] {
			return false
		}
	}
	return true
}

// stepRuneLen returns the byte length of the UTF-8 scalar starting at
// pos in line (1 if pos is at or past the end, or on a decode error),
// the granularity the default action advances by when no condition
// matches — this design says "one byte (or UTF-8 scalar) at a time".
func stepRuneLen(line []byte, pos int) int {
	if pos >= len(line) {
		return 1
	}
	_, size := utf8.DecodeRune(line[pos:])
	if size <= 0 {
		return 1
	}
	return size
}
