// Package change implements the per-buffer undo tree: a tree of owned
// Change nodes, coalescing of adjacent same-kind edits, change chains,
// and undo/redo with sticky redo-branch selection. The public
// begin/end bracketing API is
// grounded on original_source/src/command/run.c, which wraps every
// command in `begin_change(CHANGE_MERGE_NONE)` / `end_change()`.
package change

import (
	"errors"

	"github.com/dteedit/dte/buffer"
)

// MergeTag classifies the coalescing policy of a leaf Change.
type MergeTag int

const (
	// TagNone: the change never coalesces with a sibling.
	TagNone MergeTag = iota
	// TagInsert: adjacent forward inserts at the same growing point merge.
	TagInsert
	// TagDelete: adjacent forward deletes (Ctrl-D style) merge.
	TagDelete
	// TagErase: adjacent backward deletes (Backspace style) merge.
	// Distinct from TagDelete per this design.
	TagErase
)

// ErrAtRoot is returned by Undo when the current node is already the tree root.
var ErrAtRoot = errors.New("change: nothing to undo")

// ErrNoRedo is returned by Redo when the current node is a leaf with no children.
var ErrNoRedo = errors.New("change: nothing to redo")

// Change is one node of the undo tree. The forward (redo) direction of
// a node deletes `DeleteCount` bytes at Offset and inserts `Inserted`;
// the backward (undo) direction deletes len(Inserted) bytes at Offset
// and re-inserts `Deleted`.
//
// Design note: this design describes the node as carrying only an
// "owned byte buffer of inserted bytes" for redo. Undoing a delete
// requires knowing what was deleted, which isn't recoverable from the
// buffer alone once the delete has been applied, so this
// implementation also stores the deleted bytes (`Deleted`). This is
// an implementation necessity the spec's prose elides, not a
// deviation from its semantics.
type Change struct {
	Offset      int
	DeleteCount int
	Inserted    []byte
	Deleted     []byte

	tag      MergeTag
	chainLen int  // set on the final node of a multi-edit chain (>=1)
	midChain bool // true for every node recorded while a chain was open, including the final one

	parent         *Change
	children       []*Change
	preferredChild int // index into children, -1 if none
}

// IsRoot reports whether c has no parent.
func (c *Change) IsRoot() bool { return c.parent == nil }

// Tag returns the node's coalescing tag.
func (c *Change) Tag() MergeTag { return c.tag }

// Tree is a per-buffer undo tree.
type Tree struct {
	root    *Change
	current *Change

	pendingTag MergeTag
	chainDepth int
	chainStart *Change // node current pointed at when the open chain began
	chainCount int
}

// New creates a tree with a single root node and no pending merge hint.
func New() *Tree {
	root := &Change{preferredChild: -1}
	return &Tree{root: root, current: root, pendingTag: TagNone}
}

// Current returns the tree's current node (the "you are here" pointer
// that Undo/Redo move).
func (t *Tree) Current() *Change { return t.current }

// Root returns the tree's root node.
func (t *Tree) Root() *Change { return t.root }

// BeginChange declares the merge-coalescing intent for the edit(s)
// about to be recorded. Matches dte's begin_change(merge_hint).
func (t *Tree) BeginChange(hint MergeTag) {
	t.pendingTag = hint
}

// EndChange closes the merge scope opened by BeginChange.
func (t *Tree) EndChange() {
	t.pendingTag = TagNone
}

// BeginChangeChain opens a scope in which every Record* call becomes
// part of a single undo step, regardless of individual coalescing.
func (t *Tree) BeginChangeChain() {
	if t.chainDepth == 0 {
		t.chainStart = t.current
		t.chainCount = 0
	}
	t.chainDepth++
}

// EndChangeChain closes the chain scope opened by BeginChangeChain.
// The final node recorded during the chain is tagged with the number
// of edits in the chain, so Undo/Redo treat them as one step.
func (t *Tree) EndChangeChain() {
	if t.chainDepth == 0 {
		return
	}
	t.chainDepth--
	if t.chainDepth == 0 && t.chainCount > 0 {
		t.current.chainLen = t.chainCount
	}
}

func (t *Tree) inChain() bool { return t.chainDepth > 0 }

// contiguous reports whether appending `next` directly after the
// current leaf's forward effect is valid for tag.
func contiguous(cur *Change, tag MergeTag, offset int, length int) bool {
	if cur.IsRoot() || cur.tag != tag {
		return false
	}
	switch tag {
	case TagInsert:
		return cur.Offset+len(cur.Inserted) == offset
	case TagDelete:
		return cur.Offset == offset
	case TagErase:
		return offset+length == cur.Offset
	default:
		return false
	}
}

// RecordInsert attaches (or coalesces into) a leaf recording that
// `data` was inserted at offset.
func (t *Tree) RecordInsert(offset int, data []byte) *Change {
	if !t.inChain() && contiguous(t.current, TagInsert, offset, len(data)) {
		t.current.Inserted = append(t.current.Inserted, data...)
		return t.current
	}
	c := &Change{
		Offset:         offset,
		Inserted:       append([]byte(nil), data...),
		tag:            t.pendingTag,
		preferredChild: -1,
	}
	t.attach(c)
	return c
}

// RecordDelete attaches (or coalesces into) a leaf recording that
// `deleted` was removed starting at offset (forward/Ctrl-D style
// delete; use RecordErase for backward/Backspace style).
func (t *Tree) RecordDelete(offset int, deleted []byte) *Change {
	if !t.inChain() && contiguous(t.current, TagDelete, offset, len(deleted)) {
		t.current.Deleted = append(t.current.Deleted, deleted...)
		t.current.DeleteCount += len(deleted)
		return t.current
	}
	c := &Change{
		Offset:         offset,
		DeleteCount:    len(deleted),
		Deleted:        append([]byte(nil), deleted...),
		tag:            t.pendingTag,
		preferredChild: -1,
	}
	t.attach(c)
	return c
}

// RecordErase is RecordDelete's backward-merging counterpart, used
// for Backspace-style deletion where each successive delete is
// logically "before" the previous one.
func (t *Tree) RecordErase(offset int, deleted []byte) *Change {
	if !t.inChain() && contiguous(t.current, TagErase, offset, len(deleted)) {
		t.current.Deleted = append(append([]byte(nil), deleted...), t.current.Deleted...)
		t.current.DeleteCount += len(deleted)
		t.current.Offset = offset
		return t.current
	}
	c := &Change{
		Offset:         offset,
		DeleteCount:    len(deleted),
		Deleted:        append([]byte(nil), deleted...),
		tag:            t.pendingTag,
		preferredChild: -1,
	}
	t.attach(c)
	return c
}

// RecordReplace records an atomic delete+insert. Per this design's
// Open Question resolution, a replace never coalesces with a
// neighboring change, regardless of the pending merge hint.
func (t *Tree) RecordReplace(offset int, deleted, inserted []byte) *Change {
	c := &Change{
		Offset:         offset,
		DeleteCount:    len(deleted),
		Deleted:        append([]byte(nil), deleted...),
		Inserted:       append([]byte(nil), inserted...),
		tag:            TagNone,
		preferredChild: -1,
	}
	t.attach(c)
	return c
}

func (t *Tree) attach(c *Change) {
	c.parent = t.current
	t.current.preferredChild = len(t.current.children)
	t.current.children = append(t.current.children, c)
	t.current = c
	if t.inChain() {
		c.midChain = true
		t.chainCount++
	}
}

// stepsForUndo returns how many parent-hops a single Undo() call
// should perform from the current node: 1 normally, or chainLen if
// the current node closes a multi-edit chain.
func stepsForUndo(c *Change) int {
	if c.chainLen > 1 {
		return c.chainLen
	}
	return 1
}

// Undo applies the inverse of the current node (and, if it closes a
// chain, every node back to the chain start) and steps to the parent.
func (t *Tree) Undo(apply func(offset, deleteCount int, insert []byte) []byte) error {
	if t.current.IsRoot() {
		return ErrAtRoot
	}
	steps := stepsForUndo(t.current)
	for i := 0; i < steps; i++ {
		c := t.current
		apply(c.Offset, len(c.Inserted), c.Deleted)
		t.current = c.parent
		if t.current.IsRoot() {
			break
		}
	}
	return nil
}

// Redo re-applies the preferred child (or the child at the given
// index, if id >= 0) and steps to it, walking forward through an
// entire chain (mirroring stepsForUndo's backward collapse) when the
// chosen branch enters one, so `undo; redo` lands back on the exact
// node `undo` left from rather than stopping mid-chain.
func (t *Tree) Redo(apply func(offset, deleteCount int, insert []byte) []byte, id int) error {
	if len(t.current.children) == 0 {
		return ErrNoRedo
	}
	idx := t.current.preferredChild
	if id >= 0 {
		if id >= len(t.current.children) {
			return ErrNoRedo
		}
		idx = id
		t.current.preferredChild = id
	}
	child := t.current.children[idx]

	for {
		apply(child.Offset, child.DeleteCount, child.Inserted)
		t.current = child
		// Stop once we reach the chain's terminal node (chainLen set),
		// or the node was never part of an open chain to begin with.
		// Interior chain nodes are only ever followed by their single
		// successor, never branched, since Undo always collapses a
		// chain to its start rather than resting on an interior node.
		if child.chainLen > 0 || !child.midChain || len(child.children) == 0 {
			break
		}
		child = child.children[child.preferredChild]
	}
	return nil
}

// ApplyToBuffer is the `apply` callback Undo/Redo expect, bound to a
// concrete buffer.Buffer: it deletes deleteCount bytes at offset and
// inserts `insert`, returning the bytes actually deleted (which the
// caller can sanity-check against what the Change recorded).
func ApplyToBuffer(b *buffer.Buffer) func(offset, deleteCount int, insert []byte) []byte {
	return func(offset, deleteCount int, insert []byte) []byte {
		it := seek(b, offset)
		return it.Replace(deleteCount, insert)
	}
}

func seek(b *buffer.Buffer, offset int) buffer.BlockIter {
	it := b.BOF()
	for i := 0; i < offset; i++ {
		if !it.StepByte() {
			break
		}
	}
	return it
}
