package layout

import "fmt"

// Atomic groups. Tagging an internal window atomic ties its whole
// subtree together: split, resize and delete requests against any member
// are redirected to the group root, so the group only ever changes as a
// unit. A group reduced to a single member dissolves automatically.

// MakeAtom marks the subtree rooted at id as one atomic group. The root
// must be an internal window with at least two children; a leaf has
// nothing to hold together.
func (a *Arena) MakeAtom(id NodeID) error {
	w := a.win(id)
	if w.kind == KindLeaf {
		return fmt.Errorf("atom root must be a combination: %w", ErrNotLeaf)
	}
	a.Walk(id, false, func(n NodeID) bool {
		a.nodes[n].atom = true
		return true
	})
	return nil
}

// DissolveAtom removes atomic tagging from the group containing id.
func (a *Arena) DissolveAtom(id NodeID) {
	if !a.nodes[id].atom {
		return
	}
	root := a.AtomRoot(id)
	a.Walk(root, false, func(n NodeID) bool {
		a.nodes[n].atom = false
		return true
	})
}

// CheckAtomConsistency verifies invariant bookkeeping for the frame's
// atomic groups: every child of an atom member below the group root must
// itself carry the tag. A violated group is dissolved rather than left
// half-tagged; the return value names the dissolved roots.
func (f *Frame) CheckAtomConsistency() []NodeID {
	a := f.arena
	var dissolved []NodeID
	for {
		broken := InvalidID
		a.Walk(f.root, false, func(n NodeID) bool {
			w := &a.nodes[n]
			if !w.atom || w.kind == KindLeaf {
				return true
			}
			for c := w.firstChild; c.Valid(); c = a.nodes[c].next {
				if !a.nodes[c].atom {
					broken = n
					return false
				}
			}
			return true
		})
		if !broken.Valid() {
			return dissolved
		}
		root := a.AtomRoot(broken)
		a.DissolveAtom(root)
		dissolved = append(dissolved, root)
	}
}
