package layout

import "fmt"

// Delete removes a window from its frame, handing its space to the
// surviving siblings. Deleting any member of an atomic group deletes the
// whole group unless opts.InsideAtom is set. The frame root, the
// minibuffer, and the frame's main window cannot be deleted; those
// requests fail before anything is mutated. Side windows are always
// deletable.
func (f *Frame) Delete(id NodeID, opts Options) error {
	a := f.arena
	w := a.win(id)
	if w.frame != f {
		return ErrWrongFrame
	}
	if id == f.minibuffer {
		return fmt.Errorf("delete minibuffer: %w", ErrCannotDelete)
	}
	if w.atom && !opts.InsideAtom {
		id = a.AtomRoot(id)
	}
	if id == f.root {
		return fmt.Errorf("delete root window: %w", ErrCannotDelete)
	}
	// With side windows present the main window is below the root; a
	// frame must never be left showing only its side windows.
	if id == f.MainWindow() {
		return fmt.Errorf("delete main window: %w", ErrCannotDelete)
	}

	parent := a.nodes[id].parent
	horiz := combinedHorizontally(a.nodes[parent].kind)
	freed := a.nodes[id].pixelSize(horiz)

	deletedLeft := a.nodes[id].pixelLeft
	deletedTop := a.nodes[id].pixelTop
	containedSelected := f.containsSelected(id)

	// Plan where the freed space goes before touching the structure. An
	// adjacent sibling takes all of it when it can; otherwise everyone
	// shares proportionally.
	f.resetScratch(horiz)
	absorber := f.pickAbsorber(id, horiz)
	if absorber.Valid() {
		if err := f.planSubtree(absorber, a.nodes[absorber].newPixel+freed, horiz, opts); err != nil {
			return err
		}
	} else {
		var siblings []NodeID
		for c := a.nodes[parent].firstChild; c.Valid(); c = a.nodes[c].next {
			if c != id {
				siblings = append(siblings, c)
			}
		}
		if err := f.distributeAmong(siblings, freed, horiz, opts); err != nil {
			return err
		}
	}

	a.unlink(id)
	f.commit(parent, horiz)
	a.releaseTree(id)

	// A combination of one is no combination at all: the surviving child
	// takes its parent's place and size.
	if a.childCount(parent) == 1 {
		only := a.nodes[parent].firstChild
		a.unlink(only)
		if parent == f.root {
			f.root = only
			a.nodes[only].normal = 1.0
		} else {
			a.replace(parent, only)
		}
		a.release(parent)
		parent = only
	}
	f.dissolveBrokenAtom(parent)

	a.relayout(f.root, 0, 0)
	a.Walk(f.root, false, func(n NodeID) bool {
		if a.nodes[n].kind != KindLeaf {
			a.recomputeNormals(n)
		}
		return true
	})

	if containedSelected {
		f.selected = f.replacementSelection(deletedLeft, deletedTop, opts)
		a.Touch(f.selected)
	}
	return nil
}

// containsSelected reports whether the frame's selected window lives in
// the subtree rooted at id.
func (f *Frame) containsSelected(id NodeID) bool {
	a := f.arena
	found := false
	a.Walk(id, true, func(n NodeID) bool {
		if n == f.selected {
			found = true
			return false
		}
		return true
	})
	return found
}

// pickAbsorber returns an adjacent sibling able to take the whole freed
// size by itself, preferring the previous one. InvalidID when neither can.
func (f *Frame) pickAbsorber(id NodeID, horizontal bool) NodeID {
	a := f.arena
	for _, cand := range []NodeID{a.nodes[id].prev, a.nodes[id].next} {
		if cand.Valid() && !a.fixedAlong(cand, horizontal) {
			return cand
		}
	}
	return InvalidID
}

// replacementSelection picks the window to select after the selected
// window was deleted: the most recently used window, else the window now
// occupying the deleted window's position, else the frame's first window.
func (f *Frame) replacementSelection(left, top int, opts Options) NodeID {
	if mru := f.MostRecentlyUsed(InvalidID, opts); mru.Valid() {
		return mru
	}
	if at := f.WindowAt(left, top); at.Valid() {
		return at
	}
	return f.arena.FirstLeaf(f.root)
}

// dissolveBrokenAtom clears atomic tagging when a group has decayed to
// fewer than two members. Inconsistent tagging is a caller bug; the
// conservative recovery is to dissolve the group, not to crash.
func (f *Frame) dissolveBrokenAtom(near NodeID) {
	a := f.arena
	if !a.nodes[near].atom {
		return
	}
	root := a.AtomRoot(near)
	if a.nodes[root].kind == KindLeaf || a.childCount(root) < 2 {
		a.Walk(root, false, func(n NodeID) bool {
			a.nodes[n].atom = false
			return true
		})
	}
}

// DeleteOther deletes every live window of the frame except id. Side
// windows survive unless opts.IncludeSide; windows protected by the
// NoDelete parameter always survive.
func (f *Frame) DeleteOther(id NodeID, opts Options) error {
	a := f.arena
	w := a.win(id)
	if w.frame != f {
		return ErrWrongFrame
	}
	if w.kind != KindLeaf {
		return ErrNotLeaf
	}
	for {
		victim := InvalidID
		a.Walk(f.root, true, func(n NodeID) bool {
			if n == id {
				return true
			}
			nw := &a.nodes[n]
			if nw.params.NoDelete {
				return true
			}
			if nw.side != SideNone && !opts.IncludeSide {
				return true
			}
			victim = n
			return false
		})
		if !victim.Valid() {
			return nil
		}
		if err := f.Delete(victim, Options{
			IgnoreMinimums: true,
			InsideAtom:     true,
			IncludeSide:    opts.IncludeSide,
		}); err != nil {
			return err
		}
	}
}
