package buffer

import (
	"github.com/dteedit/dte/internal/codec"
)

// BlockIter is a (block, byte-offset-within-block) cursor into a
// Buffer. It is value-typed and cheap to copy: the "save and restore"
// pattern this design describes is just `saved := it` / `it = saved`.
type BlockIter struct {
	buf *Buffer
	blk *Block
	off int
}

// Buffer returns the buffer this iterator points into.
func (it BlockIter) Buffer() *Buffer { return it.buf }

// Block returns the block the iterator currently points into.
func (it BlockIter) Block() *Block { return it.blk }

// Offset returns the byte offset within the current block.
func (it BlockIter) Offset() int { return it.off }

// BOF returns an iterator at the beginning of the buffer.
func (b *Buffer) BOF() BlockIter {
	b.mu.Lock()
	defer b.mu.Unlock()
	return BlockIter{buf: b, blk: b.first, off: 0}
}

// EOF returns an iterator at the end of the buffer.
func (b *Buffer) EOF() BlockIter {
	b.mu.Lock()
	defer b.mu.Unlock()
	return BlockIter{buf: b, blk: b.last, off: b.last.Len()}
}

// AtEOF reports whether it is positioned at the very end of the buffer.
func (it BlockIter) AtEOF() bool {
	return it.blk.next == nil && it.off >= it.blk.Len()
}

// AtBOF reports whether it is positioned at the very start of the buffer.
func (it BlockIter) AtBOF() bool {
	return it.blk.prev == nil && it.off == 0
}

// ByteOffset computes the absolute byte offset of it within the
// buffer by walking preceding blocks. O(blocks).
func (it BlockIter) ByteOffset() int {
	n := it.off
	for blk := it.blk.prev; blk != nil; blk = blk.prev {
		n += blk.Len()
	}
	return n
}

// LineNumber computes the 0-based line number of it by summing
// newline counts of preceding blocks plus newlines within the current
// block up to the offset. O(blocks + bytes-in-block), matching
// this design's stated go_to_line complexity class.
func (it BlockIter) LineNumber() int {
	n := 0
	for blk := it.blk.prev; blk != nil; blk = blk.prev {
		n += blk.nl
	}
	n += countNL(it.blk.buf[:it.off])
	return n
}

// StepByte advances the iterator one byte, crossing block boundaries.
// Returns false if already at EOF.
func (it *BlockIter) StepByte() bool {
	if it.off < it.blk.Len() {
		it.off++
		return true
	}
	if it.blk.next == nil {
		return false
	}
	it.blk = it.blk.next
	it.off = 0
	// An empty block mid-list would stall the cursor; step past it.
	for it.off >= it.blk.Len() && it.blk.next != nil {
		it.blk = it.blk.next
	}
	return true
}

// PrevByte moves the iterator back one byte, crossing block boundaries.
// Returns false if already at BOF.
func (it *BlockIter) PrevByte() bool {
	if it.off > 0 {
		it.off--
		return true
	}
	if it.blk.prev == nil {
		return false
	}
	it.blk = it.blk.prev
	it.off = it.blk.Len()
	for it.off == 0 && it.blk.prev != nil {
		it.blk = it.blk.prev
	}
	if it.off > 0 {
		it.off--
	}
	return true
}

// RuneAt returns the codepoint starting at the iterator's position
// without moving it, and the byte length of that codepoint. Returns
// (0, 0) at EOF.
func (it BlockIter) RuneAt() (rune, int) {
	if it.off >= it.blk.Len() {
		return 0, 0
	}
	r, size, ok := codec.DecodeRuneAt(it.blk.buf, it.off)
	if !ok {
		return rune(it.blk.buf[it.off]), 1
	}
	return r, size
}

// StepChar advances the iterator by one UTF-8 codepoint.
func (it *BlockIter) StepChar() bool {
	_, size := it.RuneAt()
	if size == 0 {
		return false
	}
	for i := 0; i < size; i++ {
		if !it.StepByte() {
			return i > 0
		}
	}
	return true
}

// PrevChar moves the iterator back one UTF-8 codepoint.
func (it *BlockIter) PrevChar() bool {
	if it.AtBOF() {
		return false
	}
	// Gather enough preceding bytes (within this and the previous
	// block) to find the lead byte length, then step back that many.
	prefix := it.blk.buf[:it.off]
	var size int
	if len(prefix) > 0 {
		size = codec.PrevRuneLen(prefix, len(prefix))
	} else if it.blk.prev != nil {
		size = codec.PrevRuneLen(it.blk.prev.buf, len(it.blk.prev.buf))
	} else {
		size = 1
	}
	for i := 0; i < size; i++ {
		if !it.PrevByte() {
			return i > 0
		}
	}
	return true
}

// BOL moves the iterator to the beginning of its current line.
func (it *BlockIter) BOL() {
	for {
		if it.off == 0 {
			if it.blk.prev == nil {
				return
			}
			// Crossing into the previous block only makes sense if
			// that block doesn't already end in a newline (meaning
			// the line started there).
		}
		saved := *it
		if !it.PrevByte() {
			return
		}
		r, _ := it.RuneAt()
		if r == '\n' {
			*it = saved
			return
		}
	}
}

// EOL moves the iterator to the byte offset just after the end of
// its current line's content (i.e. onto the newline, or EOF).
func (it *BlockIter) EOL() {
	for {
		r, size := it.RuneAt()
		if size == 0 {
			return // EOF
		}
		if r == '\n' {
			return
		}
		it.StepByte()
	}
}

// NextLine moves to the beginning of the next line. Returns false if
// there is no next line (iterator is left at EOF).
func (it *BlockIter) NextLine() bool {
	it.EOL()
	if !it.StepByte() {
		return false
	}
	return true
}

// PrevLine moves to the beginning of the previous line. Returns false
// if already on the first line.
func (it *BlockIter) PrevLine() bool {
	it.BOL()
	if it.AtBOF() {
		return false
	}
	it.PrevByte() // step onto the previous line's trailing newline
	it.BOL()
	return true
}

// GoToLine repositions it to the first byte of 0-based line k,
// scanning linearly from the first block as this design prescribes
// (no line index is maintained at block granularity).
func (b *Buffer) GoToLine(k int) BlockIter {
	b.mu.Lock()
	blk := b.first
	b.mu.Unlock()

	remaining := k
	for blk.next != nil && remaining > blk.nl {
		remaining -= blk.nl
		blk = blk.next
	}

	it := BlockIter{buf: b, blk: blk, off: 0}
	for remaining > 0 {
		r, size := it.RuneAt()
		if size == 0 {
			break
		}
		it.StepByte()
		if r == '\n' {
			remaining--
		}
	}
	return it
}
