package layout

import "github.com/dteedit/dte/edit"

// Frame is one node of the split tree: either a leaf holding exactly
// one Window, or an internal node holding an ordered list of child
// Frames all split the same way (Vertical: side-by-side columns;
// horizontal: stacked rows — dte's own naming, where a "vertical"
// split divides the screen with a vertical line).
type Frame struct {
	Parent   *Frame
	Vertical bool
	Children []*Frame

	Window *Window // non-nil only for a leaf
}

// NewRoot creates the single-leaf root frame filling rect and showing
// view.
func NewRoot(rect Rect, opts Options, view *edit.View) *Frame {
	w := &Window{Rect: rect, View: view}
	CalculateLineNumbers(opts, w)
	return &Frame{Window: w}
}

// IsLeaf reports whether f holds a Window directly.
func (f *Frame) IsLeaf() bool {
	return f.Window != nil
}

// Split divides target's rectangle in two, turning target into an
// internal node with two leaf children: the original window (shrunk
// into the first half) and a freshly created one in the second half.
// vertical=true splits side-by-side (a vertical dividing line);
// vertical=false stacks the new window below. Returns the new leaf's
// Window.
func (f *Frame) Split(opts Options, vertical bool) *Window {
	if !f.IsLeaf() {
		panic("layout: Split called on a non-leaf frame")
	}

	rect := f.Window.Rect
	var firstRect, secondRect Rect
	if vertical {
		leftW := rect.W / 2
		firstRect = Rect{X: rect.X, Y: rect.Y, W: leftW, H: rect.H}
		secondRect = Rect{X: rect.X + leftW, Y: rect.Y, W: rect.W - leftW, H: rect.H}
	} else {
		topH := rect.H / 2
		firstRect = Rect{X: rect.X, Y: rect.Y, W: rect.W, H: topH}
		secondRect = Rect{X: rect.X, Y: rect.Y + topH, W: rect.W, H: rect.H - topH}
	}

	firstWin := f.Window
	firstWin.Rect = firstRect
	CalculateLineNumbers(opts, firstWin)

	secondWin := &Window{Rect: secondRect}
	CalculateLineNumbers(opts, secondWin)

	left := &Frame{Parent: f, Window: firstWin}
	right := &Frame{Parent: f, Window: secondWin}

	f.Window = nil
	f.Vertical = vertical
	f.Children = []*Frame{left, right}
	return secondWin
}

// Resize recomputes every leaf's rectangle under f from rect, dividing
// rect equally among children along the split axis (remainder
// pixels/cells going to the last child, matching the half-split
// Split already performs for two children).
func (f *Frame) Resize(opts Options, rect Rect) {
	if f.IsLeaf() {
		f.Window.Rect = rect
		CalculateLineNumbers(opts, f.Window)
		return
	}

	n := len(f.Children)
	if n == 0 {
		return
	}
	if f.Vertical {
		base := rect.W / n
		x := rect.X
		for i, child := range f.Children {
			w := base
			if i == n-1 {
				w = rect.X + rect.W - x
			}
			child.Resize(opts, Rect{X: x, Y: rect.Y, W: w, H: rect.H})
			x += w
		}
	} else {
		base := rect.H / n
		y := rect.Y
		for i, child := range f.Children {
			h := base
			if i == n-1 {
				h = rect.Y + rect.H - y
			}
			child.Resize(opts, Rect{X: rect.X, Y: y, W: rect.W, H: h})
			y += h
		}
	}
}

// ForEach walks every leaf window in left-to-right / top-to-bottom
// order, the Go analogue of frame_for_each_window.
func (f *Frame) ForEach(fn func(*Window)) {
	if f.IsLeaf() {
		fn(f.Window)
		return
	}
	for _, child := range f.Children {
		child.ForEach(fn)
	}
}

// windowOrder collects every leaf window under f in traversal order.
func windowOrder(f *Frame) []*Window {
	var out []*Window
	f.ForEach(func(w *Window) { out = append(out, w) })
	return out
}

// NextWindow and PrevWindow port next_window/prev_window: cyclic
// neighbors of target in f's traversal order.
func NextWindow(root *Frame, target *Window) *Window {
	order := windowOrder(root)
	for i, w := range order {
		if w == target {
			return order[(i+1)%len(order)]
		}
	}
	return nil
}

func PrevWindow(root *Frame, target *Window) *Window {
	order := windowOrder(root)
	for i, w := range order {
		if w == target {
			return order[(i-1+len(order))%len(order)]
		}
	}
	return nil
}

// Close removes target's leaf from the tree, collapsing its parent
// when only one sibling remains (the sibling takes over the parent's
// position and rectangle) the same way the original's remove_frame
// folds a now-single-child internal frame back into its own parent.
// Returns the window that should become active afterward, or nil if
// target was the last window in the tree (callers must keep at least
// one window, per window.c's "windows must contain at least one
// buffer" invariant — handled one level up, in the editor package).
func Close(opts Options, root *Frame, target *Window) (newRoot *Frame, next *Window) {
	order := windowOrder(root)
	if len(order) <= 1 {
		return root, nil
	}

	next = NextWindow(root, target)
	if next == target {
		next = nil
	}

	leaf := findLeaf(root, target)
	if leaf == nil || leaf.Parent == nil {
		return root, next
	}

	parent := leaf.Parent
	fullRect := parentRect(root, parent)

	siblings := make([]*Frame, 0, len(parent.Children)-1)
	for _, c := range parent.Children {
		if c != leaf {
			siblings = append(siblings, c)
		}
	}
	parent.Children = siblings

	if len(siblings) == 1 {
		collapseSingleChild(parent, siblings[0])
	}

	parent.Resize(opts, fullRect)
	return root, next
}

// collapseSingleChild replaces parent's single remaining child with
// its own contents, so a split that's down to one side stops being an
// internal node at all.
func collapseSingleChild(parent, only *Frame) {
	parent.Window = only.Window
	parent.Vertical = only.Vertical
	parent.Children = only.Children
	for _, c := range parent.Children {
		c.Parent = parent
	}
}

func findLeaf(f *Frame, target *Window) *Frame {
	if f.IsLeaf() {
		if f.Window == target {
			return f
		}
		return nil
	}
	for _, c := range f.Children {
		if found := findLeaf(c, target); found != nil {
			return found
		}
	}
	return nil
}

// parentRect recovers an internal frame's own rectangle from its
// leaves' union, since Frame doesn't separately store one once split.
func parentRect(root, f *Frame) Rect {
	order := windowOrder(f)
	if len(order) == 0 {
		return Rect{}
	}
	r := order[0].Rect
	minX, minY := r.X, r.Y
	maxX, maxY := r.X+r.W, r.Y+r.H
	for _, w := range order[1:] {
		if w.Rect.X < minX {
			minX = w.Rect.X
		}
		if w.Rect.Y < minY {
			minY = w.Rect.Y
		}
		if w.Rect.X+w.Rect.W > maxX {
			maxX = w.Rect.X + w.Rect.W
		}
		if w.Rect.Y+w.Rect.H > maxY {
			maxY = w.Rect.Y + w.Rect.H
		}
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}
