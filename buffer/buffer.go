package buffer

import (
	"sync"
	"sync/atomic"
)

var nextBufferID uint64

// FileInfo records the file identity of a Buffer: where it came from
// and how it should be treated on save.
type FileInfo struct {
	AbsPath     string
	DisplayName string
	StatFingerprint string
	Encoding    string
	CRLF        bool
	BOM         bool
	ReadOnly    bool
	Temporary   bool
	Locked      bool
}

// LocalOptions mirrors dte's per-buffer option struct (~20 fields in
// the original; the editor-core-relevant subset is kept here, the
// rest live in the config loader, out of this package's scope).
type LocalOptions struct {
	IndentWidth int
	TabWidth    int
	TextWidth   int
	FileType    string
	Overwrite   bool
	AutoIndent  bool
	IndentRegex string
	ExpandTab   bool
}

// DefaultLocalOptions returns dte's stock defaults.
func DefaultLocalOptions() LocalOptions {
	return LocalOptions{
		IndentWidth: 8,
		TabWidth:    8,
		TextWidth:   72,
	}
}

// Buffer owns the block list and everything that hangs off a single
// open file: identity, options, the dirty range, and (via the id
// field) a place for the change package's tree and the editor
// package's view set to attach without buffer importing either.
type Buffer struct {
	mu sync.Mutex

	id    uint64
	first *Block
	last  *Block
	nl    int // total newline count across all blocks

	File    FileInfo
	Options LocalOptions

	changedLineMin int
	changedLineMax int

	// Views is a set of opaque view ids observing this buffer; the
	// editor package owns the meaning of the id, buffer only tracks
	// membership so it can answer "am I observed".
	views map[int]struct{}
}

const noChangeLine = int(^uint(0) >> 1) // math.MaxInt, kept local to avoid an import just for this

// New creates an empty buffer: exactly one empty block, as required
// by this design's "empty buffers contain exactly one empty block" invariant.
func New() *Buffer {
	b := &Buffer{
		id:             atomic.AddUint64(&nextBufferID, 1),
		Options:        DefaultLocalOptions(),
		changedLineMin: noChangeLine,
		changedLineMax: -1,
		views:          map[int]struct{}{},
	}
	blk := newBlock(preferredBlockSize)
	b.first = blk
	b.last = blk
	return b
}

// NewFromBytes creates a buffer whose block list holds the given
// content, inserted with a single Insert: content larger than
// maxBlockSize is split once at a line boundary near
// preferredBlockSize, so the tail block may still exceed that size.
func NewFromBytes(content []byte) *Buffer {
	b := New()
	if len(content) == 0 {
		return b
	}
	b.first.buf = b.first.buf[:0]
	b.last = b.first
	it := b.BOF()
	it.Insert(content)
	return b
}

// ID returns the buffer's process-unique identifier.
func (b *Buffer) ID() uint64 { return b.id }

// NLCount returns the total number of newline bytes across all blocks.
func (b *Buffer) NLCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.nl
}

// FirstBlock returns the head of the block list.
func (b *Buffer) FirstBlock() *Block { return b.first }

// LastBlock returns the tail of the block list.
func (b *Buffer) LastBlock() *Block { return b.last }

// AddView / RemoveView track buffer observers by opaque id (the
// editor package's view handle), per this design's View set invariant.
func (b *Buffer) AddView(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.views[id] = struct{}{}
}

func (b *Buffer) RemoveView(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.views, id)
}

func (b *Buffer) ViewCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.views)
}

// DirtyRange returns [min,max] changed lines, or ok=false if nothing
// has changed since the last ClearDirty.
func (b *Buffer) DirtyRange() (min, max int, ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.changedLineMin > b.changedLineMax {
		return 0, 0, false
	}
	return b.changedLineMin, b.changedLineMax, true
}

// ClearDirty resets the dirty range to empty, as the renderer does
// after a repaint.
func (b *Buffer) ClearDirty() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.changedLineMin = noChangeLine
	b.changedLineMax = -1
}

func (b *Buffer) markDirty(line int) {
	if line < b.changedLineMin {
		b.changedLineMin = line
	}
	if line > b.changedLineMax {
		b.changedLineMax = line
	}
}

func (b *Buffer) markDirtyRange(lo, hi int) {
	if lo < b.changedLineMin {
		b.changedLineMin = lo
	}
	if hi > b.changedLineMax {
		b.changedLineMax = hi
	}
}

// Bytes concatenates every block's contents, i.e. the full file
// contents. Intended for tests and for save(); large-file callers
// should stream blocks instead.
func (b *Buffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]byte, 0, b.size())
	for blk := b.first; blk != nil; blk = blk.next {
		out = append(out, blk.buf...)
	}
	return out
}

func (b *Buffer) size() int {
	n := 0
	for blk := b.first; blk != nil; blk = blk.next {
		n += blk.Len()
	}
	return n
}

func (b *Buffer) unlinkBlock(blk *Block) {
	if blk.prev != nil {
		blk.prev.next = blk.next
	} else {
		b.first = blk.next
	}
	if blk.next != nil {
		blk.next.prev = blk.prev
	} else {
		b.last = blk.prev
	}
}

func (b *Buffer) insertBlockAfter(after, blk *Block) {
	blk.prev = after
	blk.next = after.next
	if after.next != nil {
		after.next.prev = blk
	} else {
		b.last = blk
	}
	after.next = blk
}
