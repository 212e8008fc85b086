// Package codec provides the small UTF-8 stepping helpers the block
// iterator and command tokenizer share. It intentionally stays a thin
// wrapper around the standard library decoder rather than a reimplementation
// of it.
package codec

import "unicode/utf8"

// DecodeRuneAt decodes the codepoint starting at offset i in b, returning
// the rune, its encoded length in bytes, and whether the byte at i is a
// valid UTF-8 lead byte. An empty slice or out-of-range offset yields
// (utf8.RuneError, 0, false).
func DecodeRuneAt(b []byte, i int) (r rune, size int, ok bool) {
	if i < 0 || i >= len(b) {
		return utf8.RuneError, 0, false
	}
	r, size = utf8.DecodeRune(b[i:])
	if r == utf8.RuneError && size <= 1 {
		return utf8.RuneError, 1, false
	}
	return r, size, true
}

// PrevRuneLen returns the byte length of the codepoint that ends
// immediately before offset i in b, scanning backward at most
// utf8.UTFMax bytes. Returns 1 if no valid lead byte is found
// (treat the preceding byte as a lone byte, as dte's util/utf8.c does).
func PrevRuneLen(b []byte, i int) int {
	start := i - utf8.UTFMax
	if start < 0 {
		start = 0
	}
	for j := i - 1; j >= start; j-- {
		if utf8.RuneStart(b[j]) {
			if _, size := utf8.DecodeRune(b[j:i]); size == i-j {
				return i - j
			}
			return 1
		}
	}
	return 1
}

// RuneCount returns the number of UTF-8 codepoints in b, treating any
// invalid byte as its own one-byte codepoint (matches the editor's
// "never crash on bad encoding" stance).
func RuneCount(b []byte) int {
	return utf8.RuneCount(b)
}

// IsContinuation reports whether c is a UTF-8 continuation byte (10xxxxxx).
func IsContinuation(c byte) bool {
	return c&0xC0 == 0x80
}

// EncodeRune appends the UTF-8 encoding of r to dst and returns the result.
func EncodeRune(dst []byte, r rune) []byte {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	return append(dst, buf[:n]...)
}
