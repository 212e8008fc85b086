package edit

import (
	"unicode"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/words"
)

// wordSegment is one UAX#29 word-boundary segment's byte range within
// the buffer content passed to segmentsAt.
type wordSegment struct {
	start, end int
}

// segmentsAt runs the UAX#29 word segmenter over content, replacing
// original_source/src/move.c's hand-rolled CT_SPACE/CT_NEWLINE/
// CT_WORD/CT_OTHER classification with the ecosystem segmenter the
// pack already depends on (peco pulls it in indirectly).
func segmentsAt(content []byte) []wordSegment {
	var segs []wordSegment
	seg := words.NewSegmenter(content)
	pos := 0
	for seg.Next() {
		tok := seg.Value()
		segs = append(segs, wordSegment{start: pos, end: pos + len(tok)})
		pos += len(tok)
	}
	return segs
}

// isSpaceSegment reports whether a segment's content is entirely
// Unicode whitespace (the only class move.c's word motion skips over
// silently, distinct from punctuation runs which are themselves a
// stop/start boundary).
func isSpaceSegment(content []byte, s wordSegment) bool {
	for i := s.start; i < s.end; {
		r, size := utf8.DecodeRune(content[i:s.end])
		if !unicode.IsSpace(r) {
			return false
		}
		i += size
	}
	return s.end > s.start
}

// segmentIndexContaining returns the index of the segment containing
// byte offset, or len(segs) if offset is at or past the end.
func segmentIndexContaining(segs []wordSegment, offset int) int {
	for i, s := range segs {
		if offset >= s.start && offset < s.end {
			return i
		}
	}
	return len(segs)
}

// nextWordBoundary returns the byte offset of the start of the next
// word/punctuation run after offset, skipping any run of whitespace in
// between (the forward `word` motion's target).
func nextWordBoundary(content []byte, offset int) int {
	segs := segmentsAt(content)
	if len(segs) == 0 {
		return offset
	}
	i := segmentIndexContaining(segs, offset)
	if i >= len(segs) {
		return len(content)
	}
	i++
	for i < len(segs) && isSpaceSegment(content, segs[i]) {
		i++
	}
	if i >= len(segs) {
		return len(content)
	}
	return segs[i].start
}

// prevWordBoundary returns the byte offset of the start of the
// word/punctuation run at or before offset, skipping whitespace runs,
// the backward `word` motion's target.
func prevWordBoundary(content []byte, offset int) int {
	segs := segmentsAt(content)
	if len(segs) == 0 {
		return 0
	}
	i := segmentIndexContaining(segs, offset)
	if i >= len(segs) {
		i = len(segs) - 1
	}
	// If we're already at the exact start of a non-space segment,
	// move to the previous one so repeated calls keep walking back.
	if offset == segs[i].start && !isSpaceSegment(content, segs[i]) {
		i--
	} else if offset <= segs[i].start {
		i--
	}
	for i >= 0 && isSpaceSegment(content, segs[i]) {
		i--
	}
	if i < 0 {
		return 0
	}
	return segs[i].start
}

// NextWordStart moves the cursor to the start of the next word or
// punctuation run, skipping whitespace (move_cursor word-forward
// binding target).
func (v *View) NextWordStart() {
	content := v.Buffer.Bytes()
	offset := v.Cursor.ByteOffset()
	v.setAbsoluteOffset(nextWordBoundary(content, offset))
	v.ResetPreferredX()
}

// PrevWordStart moves the cursor to the start of the previous word or
// punctuation run, skipping whitespace.
func (v *View) PrevWordStart() {
	content := v.Buffer.Bytes()
	offset := v.Cursor.ByteOffset()
	v.setAbsoluteOffset(prevWordBoundary(content, offset))
	v.ResetPreferredX()
}

// setAbsoluteOffset repositions the cursor to absolute byte offset
// from the start of the buffer.
func (v *View) setAbsoluteOffset(offset int) {
	it := v.Buffer.BOF()
	for it.ByteOffset() < offset {
		if !it.StepByte() {
			break
		}
	}
	v.Cursor = it
}
