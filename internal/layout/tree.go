package layout

// Read-only navigation over a frame's tree. These helpers are safe to
// call between top-level operations; they must not be interleaved with a
// resize pass, whose scratch state they know nothing about.

// Parent returns the parent of id, or InvalidID for a root.
func (a *Arena) Parent(id NodeID) NodeID { return a.win(id).parent }

// FirstChild returns the first child of id, or InvalidID for leaves.
func (a *Arena) FirstChild(id NodeID) NodeID { return a.win(id).firstChild }

// LastChild returns the last child of id, or InvalidID for leaves.
func (a *Arena) LastChild(id NodeID) NodeID { return a.win(id).lastChild }

// NextSibling returns the sibling after id, or InvalidID.
func (a *Arena) NextSibling(id NodeID) NodeID { return a.win(id).next }

// PrevSibling returns the sibling before id, or InvalidID.
func (a *Arena) PrevSibling(id NodeID) NodeID { return a.win(id).prev }

// Walk visits the subtree rooted at id in pre-order. When leavesOnly is
// set, internal windows are skipped. Returning false from visit stops the
// walk.
func (a *Arena) Walk(id NodeID, leavesOnly bool, visit func(NodeID) bool) bool {
	w := &a.nodes[id]
	if !leavesOnly || w.kind == KindLeaf {
		if !visit(id) {
			return false
		}
	}
	for c := w.firstChild; c.Valid(); c = a.nodes[c].next {
		if !a.Walk(c, leavesOnly, visit) {
			return false
		}
	}
	return true
}

// Leaves returns the live windows of the subtree in tree order.
func (a *Arena) Leaves(id NodeID) []NodeID {
	var out []NodeID
	a.Walk(id, true, func(n NodeID) bool {
		out = append(out, n)
		return true
	})
	return out
}

// cyclable reports whether a leaf participates in ordinary navigation.
func (a *Arena) cyclable(id NodeID, opts Options) bool {
	w := &a.nodes[id]
	if w.params.NoOther {
		return false
	}
	if w.side != SideNone && !opts.IncludeSide {
		return false
	}
	return true
}

// CycleLeaves returns the frame's live windows in cyclic navigation
// order. Side windows and no-other windows are excluded unless opts says
// otherwise; the minibuffer never participates.
func (f *Frame) CycleLeaves(opts Options) []NodeID {
	a := f.arena
	var out []NodeID
	a.Walk(f.root, true, func(n NodeID) bool {
		if a.cyclable(n, opts) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// NextLeaf returns the window after id in cyclic order, wrapping around.
// It returns id itself when nothing else is cyclable.
func (f *Frame) NextLeaf(id NodeID, opts Options) NodeID {
	return f.stepLeaf(id, opts, 1)
}

// PrevLeaf returns the window before id in cyclic order, wrapping around.
func (f *Frame) PrevLeaf(id NodeID, opts Options) NodeID {
	return f.stepLeaf(id, opts, -1)
}

func (f *Frame) stepLeaf(id NodeID, opts Options, dir int) NodeID {
	order := f.CycleLeaves(opts)
	if len(order) == 0 {
		return id
	}
	at := -1
	for i, n := range order {
		if n == id {
			at = i
			break
		}
	}
	if at < 0 {
		// id itself is not cyclable; start from the beginning.
		return order[0]
	}
	return order[(at+dir+len(order))%len(order)]
}

// FirstLeaf returns the first live window of the subtree in tree order.
func (a *Arena) FirstLeaf(id NodeID) NodeID {
	w := &a.nodes[id]
	for w.kind != KindLeaf {
		id = w.firstChild
		w = &a.nodes[id]
	}
	return id
}

// MainWindow returns the root of the largest subtree free of side
// windows: the area ordinary display operations act on. With no side
// windows this is the frame root.
func (f *Frame) MainWindow() NodeID {
	a := f.arena
	id := f.root
	for {
		w := &a.nodes[id]
		if w.kind == KindLeaf {
			return id
		}
		// Descend while some child carries side windows; the main area
		// is the largest child subtree without any.
		best := InvalidID
		bestArea := -1
		clean := true
		for c := w.firstChild; c.Valid(); c = a.nodes[c].next {
			if a.hasSideWindows(c) {
				clean = false
				continue
			}
			area := a.nodes[c].pixelWidth * a.nodes[c].pixelHeight
			if area > bestArea {
				bestArea = area
				best = c
			}
		}
		if clean {
			return id
		}
		if !best.Valid() {
			// Every child holds side windows; give up at this level.
			return id
		}
		id = best
	}
}

func (a *Arena) hasSideWindows(id NodeID) bool {
	found := false
	a.Walk(id, true, func(n NodeID) bool {
		if a.nodes[n].side != SideNone {
			found = true
			return false
		}
		return true
	})
	return found
}

// AtomRoot returns the root of the atomic group containing id, or id
// itself when it is not part of a group.
func (a *Arena) AtomRoot(id NodeID) NodeID {
	if !a.nodes[id].atom {
		return id
	}
	root := id
	for {
		p := a.nodes[root].parent
		if !p.Valid() || !a.nodes[p].atom {
			break
		}
		root = p
	}
	return root
}

// InAtom reports whether id belongs to an atomic group.
func (a *Arena) InAtom(id NodeID) bool { return a.win(id).atom }

// MostRecentlyUsed returns the cyclable leaf with the highest use tick,
// excluding the given window. InvalidID when none qualifies.
func (f *Frame) MostRecentlyUsed(exclude NodeID, opts Options) NodeID {
	a := f.arena
	best := InvalidID
	var bestTick uint64
	a.Walk(f.root, true, func(n NodeID) bool {
		if n == exclude || !a.cyclable(n, opts) {
			return true
		}
		if t := a.nodes[n].useTick; best == InvalidID || t > bestTick {
			best, bestTick = n, t
		}
		return true
	})
	return best
}

// LeastRecentlyUsed returns the cyclable leaf with the lowest use tick,
// excluding the given window. InvalidID when none qualifies.
func (f *Frame) LeastRecentlyUsed(exclude NodeID, opts Options) NodeID {
	a := f.arena
	best := InvalidID
	var bestTick uint64
	a.Walk(f.root, true, func(n NodeID) bool {
		if n == exclude || !a.cyclable(n, opts) {
			return true
		}
		if t := a.nodes[n].useTick; best == InvalidID || t < bestTick {
			best, bestTick = n, t
		}
		return true
	})
	return best
}

// LargestLeaf returns the cyclable leaf with the greatest pixel area,
// excluding the given window.
func (f *Frame) LargestLeaf(exclude NodeID, opts Options) NodeID {
	a := f.arena
	best := InvalidID
	bestArea := -1
	a.Walk(f.root, true, func(n NodeID) bool {
		if n == exclude || !a.cyclable(n, opts) {
			return true
		}
		if area := a.nodes[n].pixelWidth * a.nodes[n].pixelHeight; area > bestArea {
			best, bestArea = n, area
		}
		return true
	})
	return best
}

// WindowAt returns the leaf containing the frame-relative pixel point, or
// InvalidID when the point falls outside the root tree.
func (f *Frame) WindowAt(x, y int) NodeID {
	a := f.arena
	found := InvalidID
	a.Walk(f.root, true, func(n NodeID) bool {
		w := &a.nodes[n]
		if x >= w.pixelLeft && x < w.pixelLeft+w.pixelWidth &&
			y >= w.pixelTop && y < w.pixelTop+w.pixelHeight {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindContent returns the first leaf of the frame displaying c, searching
// in tree order. Side windows are included.
func (f *Frame) FindContent(c Content) NodeID {
	a := f.arena
	found := InvalidID
	a.Walk(f.root, true, func(n NodeID) bool {
		if a.nodes[n].content == c {
			found = n
			return false
		}
		return true
	})
	return found
}
