package layout

import "fmt"

// Split divides a window in two, returning the new leaf. side picks the
// edge of the target the new window appears on. size fixes the outcome in
// character cells: positive keeps the target at size, negative gives the
// new window -size, zero divides the target in half. Splitting a member
// of an atomic group splits the whole group unless opts.InsideAtom; the
// new window becomes a member of the group.
//
// The new window joins the target's existing combination when that runs
// along the requested axis; otherwise, or when opts.Nest or the target's
// combination limit demands it, a fresh parent combination is inserted.
func (f *Frame) Split(id NodeID, size int, side Side, opts Options) (NodeID, error) {
	a := f.arena
	w := a.win(id)
	if w.frame != f {
		return InvalidID, ErrWrongFrame
	}
	if id == f.minibuffer {
		return InvalidID, fmt.Errorf("split minibuffer: %w", ErrCannotDelete)
	}
	if w.atom && !opts.InsideAtom {
		id = a.AtomRoot(id)
		w = &a.nodes[id]
	}

	horiz := side.Horizontal()
	cell := f.cell(horiz)
	cur := w.pixelSize(horiz)

	var newPix int
	switch {
	case size == 0:
		newPix = cur / cell / 2 * cell
	case size > 0:
		newPix = cur - size*cell
	default:
		newPix = -size * cell
	}
	newPix = newPix / cell * cell
	oldPix := cur - newPix

	minNew := f.freshLeafMin(horiz, opts)
	if newPix < minNew || oldPix < a.minPixels(id, horiz, opts) {
		return InvalidID, fmt.Errorf("split %s at %d cells: %w", side, size, ErrTooSmall)
	}

	// Shrink the target's subtree to its retained size before touching
	// the structure, so a failure leaves the tree untouched.
	f.resetScratch(horiz)
	if err := f.planSubtree(id, oldPix, horiz, opts); err != nil {
		return InvalidID, err
	}
	if !opts.PixelExact {
		f.roundPlanned(id, horiz)
	}
	if err := f.validatePlanned(id, horiz, opts); err != nil {
		return InvalidID, err
	}
	a.Walk(id, false, func(n NodeID) bool {
		nw := &a.nodes[n]
		nw.setPixelSize(horiz, nw.newPixel)
		return true
	})

	// Splitting a group's root gets a fresh parent combination that
	// becomes the new group root, so the new window joins the group on
	// either axis. Inside the group the atomic parent is reusable.
	parent := a.nodes[id].parent
	reuse := parent.Valid() &&
		a.nodes[parent].kind == kindFor(horiz) &&
		!opts.Nest &&
		(!a.nodes[id].atom || a.nodes[parent].atom) &&
		!a.nodes[id].combinationLimit

	comb := parent
	if !reuse {
		comb = a.alloc()
		cw := &a.nodes[comb]
		cw.kind = kindFor(horiz)
		cw.frame = f
		cw.pixelLeft = a.nodes[id].pixelLeft
		cw.pixelTop = a.nodes[id].pixelTop
		cw.pixelWidth = a.nodes[id].pixelWidth
		cw.pixelHeight = a.nodes[id].pixelHeight
		cw.setPixelSize(horiz, cur)
		cw.side = a.nodes[id].side
		cw.atom = a.nodes[id].atom
		if parent.Valid() {
			a.replace(id, comb)
		} else {
			f.root = comb
			cw.normal = 1.0
		}
		a.link(comb, id, InvalidID)
		a.nodes[id].normal = 1.0
	}

	leaf := a.alloc()
	n := &a.nodes[leaf]
	n.kind = KindLeaf
	n.frame = f
	n.side = a.nodes[id].side
	n.atom = a.nodes[comb].atom
	n.setPixelSize(horiz, newPix)
	n.setPixelSize(!horiz, a.nodes[id].pixelSize(!horiz))

	if side == SideLeft || side == SideTop {
		a.link(comb, leaf, a.nodes[id].prev)
	} else {
		a.link(comb, leaf, id)
	}

	a.relayout(f.root, 0, 0)
	a.recomputeNormals(comb)
	return leaf, nil
}

// freshLeafMin returns the minimum size of a brand-new empty leaf.
func (f *Frame) freshLeafMin(horizontal bool, opts Options) int {
	if opts.IgnoreMinimums {
		if horizontal {
			return safeMinWidth * f.cellW
		}
		return safeMinHeight * f.cellH
	}
	if horizontal {
		return f.limits.MinWidth * f.cellW
	}
	return f.limits.MinHeight * f.cellH
}
