package layout

import "fmt"

// The resize engine. A resize is planned entirely in per-window scratch
// fields (newPixel), validated, and only then committed, so a request
// that cannot be satisfied leaves every authoritative size untouched.
//
// Shrinking space is found in three steps: fixed-size and preserved-size
// windows contribute nothing, a proportional pass takes from everyone
// else according to current size, and any remainder is collected one cell
// at a time from whichever donor has the most spare capacity, first in
// child order winning ties. The tie-break is kept stable deliberately.

// ResizeWindow grows or shrinks id by delta pixels along one axis,
// taking the space from (or giving it to) its siblings. A window inside
// an atomic group resizes the whole group unless opts.InsideAtom is set.
func (f *Frame) ResizeWindow(id NodeID, delta int, horizontal bool, opts Options) error {
	a := f.arena
	w := a.win(id)
	if w.frame != f {
		return ErrWrongFrame
	}
	if delta == 0 {
		return nil
	}
	if w.atom && !opts.InsideAtom {
		id = a.AtomRoot(id)
	}

	// Resizing along an axis only makes sense inside a combination that
	// runs along it; climb until we find one.
	parent := a.nodes[id].parent
	for parent.Valid() && a.nodes[parent].kind != kindFor(horizontal) {
		id = parent
		parent = a.nodes[parent].parent
	}
	if !parent.Valid() {
		return fmt.Errorf("resize by %d: %w", delta, ErrRootWindow)
	}

	f.resetScratch(horizontal)

	cur := a.nodes[id].pixelSize(horizontal)
	if err := f.planSubtree(id, cur+delta, horizontal, opts); err != nil {
		return err
	}

	var siblings []NodeID
	for c := a.nodes[parent].firstChild; c.Valid(); c = a.nodes[c].next {
		if c != id {
			siblings = append(siblings, c)
		}
	}
	if err := f.distributeAmong(siblings, -delta, horizontal, opts); err != nil {
		return err
	}

	if !opts.PixelExact {
		f.roundPlanned(parent, horizontal)
	}
	if err := f.validatePlanned(parent, horizontal, opts); err != nil {
		return err
	}
	f.commit(parent, horizontal)
	return nil
}

// resizeRoot gives the frame's root tree a new pixel size on both axes.
func (f *Frame) resizeRoot(pixelW, pixelH int, opts Options) error {
	a := f.arena
	for _, pass := range []struct {
		horizontal bool
		size       int
	}{{true, pixelW}, {false, pixelH}} {
		if pass.size == a.nodes[f.root].pixelSize(pass.horizontal) {
			continue
		}
		f.resetScratch(pass.horizontal)
		if err := f.planSubtree(f.root, pass.size, pass.horizontal, opts); err != nil {
			return err
		}
		if !opts.PixelExact {
			f.roundPlanned(f.root, pass.horizontal)
		}
		if err := f.validatePlanned(f.root, pass.horizontal, opts); err != nil {
			return err
		}
		f.commit(f.root, pass.horizontal)
	}
	return nil
}

// resetScratch primes every scratch field under the frame root for a new
// resize pass along one axis.
func (f *Frame) resetScratch(horizontal bool) {
	a := f.arena
	a.Walk(f.root, false, func(n NodeID) bool {
		w := &a.nodes[n]
		w.newPixel = w.pixelSize(horizontal)
		return true
	})
}

// planSubtree records a new size for id and propagates the change into
// its children: proportionally along the combination axis, uniformly
// across it.
func (f *Frame) planSubtree(id NodeID, size int, horizontal bool, opts Options) error {
	a := f.arena
	w := &a.nodes[id]
	delta := size - w.newPixel
	w.newPixel = size
	if w.kind == KindLeaf {
		return nil
	}

	if w.kind == kindFor(horizontal) {
		if delta == 0 {
			return nil
		}
		var children []NodeID
		for c := w.firstChild; c.Valid(); c = a.nodes[c].next {
			children = append(children, c)
		}
		return f.distributeAmong(children, delta, horizontal, opts)
	}

	// Orthogonal combination: every child matches the parent's size.
	for c := w.firstChild; c.Valid(); c = a.nodes[c].next {
		if err := f.planSubtree(c, size, horizontal, opts); err != nil {
			return err
		}
	}
	return nil
}

// distributeAmong splits delta across the candidate windows and plans
// each affected subtree. Candidates keep their relative proportions where
// possible; minimums bound every shrink.
func (f *Frame) distributeAmong(cands []NodeID, delta int, horizontal bool, opts Options) error {
	if len(cands) == 0 {
		if delta != 0 {
			return fmt.Errorf("distribute %d pixels: %w", delta, ErrTooSmall)
		}
		return nil
	}
	if delta == 0 {
		// Still propagate orthogonal sizing into subtrees that were
		// planned by the caller.
		return nil
	}
	if delta > 0 {
		return f.distributeGrowth(cands, delta, horizontal, opts)
	}
	return f.distributeShrink(cands, -delta, horizontal, opts)
}

func (f *Frame) distributeGrowth(cands []NodeID, delta int, horizontal bool, opts Options) error {
	a := f.arena

	// Fixed-size subtrees keep their size when someone else can take the
	// growth. When everything is fixed the space must still go somewhere:
	// gaps are worse than a stretched fixed window.
	eligible := make([]NodeID, 0, len(cands))
	for _, c := range cands {
		if !a.fixedAlong(c, horizontal) {
			eligible = append(eligible, c)
		}
	}
	if len(eligible) == 0 {
		eligible = cands
	}

	total := 0
	for _, c := range eligible {
		total += a.nodes[c].newPixel
	}
	remaining := delta
	for i, c := range eligible {
		var share int
		if i == len(eligible)-1 {
			share = remaining
		} else if total > 0 {
			share = delta * a.nodes[c].newPixel / total
		} else {
			share = delta / len(eligible)
		}
		if share > remaining {
			share = remaining
		}
		remaining -= share
		if err := f.planSubtree(c, a.nodes[c].newPixel+share, horizontal, opts); err != nil {
			return err
		}
	}
	return nil
}

func (f *Frame) distributeShrink(cands []NodeID, need int, horizontal bool, opts Options) error {
	a := f.arena
	cell := f.cell(horizontal)

	// Step one: fixed and preserved subtrees contribute nothing.
	type donor struct {
		id    NodeID
		take  int
		spare int
	}
	var donors []donor
	totalCur := 0
	for _, c := range cands {
		if a.fixedAlong(c, horizontal) || a.preservedAlong(c, horizontal) {
			continue
		}
		spare := a.nodes[c].newPixel - a.minPixels(c, horizontal, opts)
		if spare <= 0 {
			continue
		}
		donors = append(donors, donor{id: c, spare: spare})
		totalCur += a.nodes[c].newPixel
	}
	if len(donors) == 0 {
		return fmt.Errorf("shrink by %d pixels: %w", need, ErrTooSmall)
	}

	// Step two: proportional to current size, clamped to spare.
	remaining := need
	for i := range donors {
		d := &donors[i]
		take := need * a.nodes[d.id].newPixel / totalCur
		if take > d.spare {
			take = d.spare
		}
		if take > remaining {
			take = remaining
		}
		d.take = take
		d.spare -= take
		remaining -= take
	}

	// Step three: best-effort iterative allocation. One cell at a time
	// from the donor with the most spare; first in child order on ties.
	for remaining > 0 {
		best := -1
		for i := range donors {
			if donors[i].spare <= 0 {
				continue
			}
			if best < 0 || donors[i].spare > donors[best].spare {
				best = i
			}
		}
		if best < 0 {
			return fmt.Errorf("shrink by %d pixels: %w", need, ErrTooSmall)
		}
		step := cell
		if step > donors[best].spare {
			step = donors[best].spare
		}
		if step > remaining {
			step = remaining
		}
		donors[best].take += step
		donors[best].spare -= step
		remaining -= step
	}

	for _, d := range donors {
		if err := f.planSubtree(d.id, a.nodes[d.id].newPixel-d.take, horizontal, opts); err != nil {
			return err
		}
	}
	return nil
}

// roundPlanned snaps planned sizes to whole character cells, keeping each
// combination's children summing exactly to their parent.
func (f *Frame) roundPlanned(id NodeID, horizontal bool) {
	a := f.arena
	w := &a.nodes[id]
	if w.kind == KindLeaf {
		return
	}
	if w.kind == kindFor(horizontal) {
		cell := f.cell(horizontal)
		target := w.newPixel
		sum := 0
		var children []NodeID
		for c := w.firstChild; c.Valid(); c = a.nodes[c].next {
			cw := &a.nodes[c]
			cw.newPixel = cw.newPixel / cell * cell
			if cw.newPixel < cell {
				cw.newPixel = cell
			}
			sum += cw.newPixel
			children = append(children, c)
		}
		// Hand leftover cells to children in order, preferring non-fixed
		// subtrees; steal from the largest when we overshot.
		for sum < target {
			gave := false
			for _, c := range children {
				if a.fixedAlong(c, horizontal) {
					continue
				}
				a.nodes[c].newPixel += cell
				sum += cell
				gave = true
				break
			}
			if !gave {
				a.nodes[children[len(children)-1]].newPixel += cell
				sum += cell
			}
		}
		for sum > target {
			best := children[0]
			for _, c := range children[1:] {
				if a.nodes[c].newPixel > a.nodes[best].newPixel {
					best = c
				}
			}
			a.nodes[best].newPixel -= cell
			sum -= cell
		}
	}
	for c := w.firstChild; c.Valid(); c = a.nodes[c].next {
		// Orthogonal children track the parent exactly.
		if w.kind != kindFor(horizontal) {
			a.nodes[c].newPixel = w.newPixel
		}
		f.roundPlanned(c, horizontal)
	}
}

// validatePlanned rejects a plan that shrinks any leaf below its
// effective minimum. Leaves that are not shrinking are left alone: a
// frame that was already tight stays legal.
func (f *Frame) validatePlanned(id NodeID, horizontal bool, opts Options) error {
	a := f.arena
	var bad NodeID = InvalidID
	a.Walk(id, true, func(n NodeID) bool {
		w := &a.nodes[n]
		if w.newPixel >= w.pixelSize(horizontal) {
			return true
		}
		if w.newPixel < a.minPixels(n, horizontal, opts) {
			bad = n
			return false
		}
		return true
	})
	if bad.Valid() {
		return fmt.Errorf("window at %d,%d: %w",
			a.nodes[bad].pixelLeft, a.nodes[bad].pixelTop, ErrTooSmall)
	}
	return nil
}

// commit copies every planned size into the authoritative fields in one
// pass, then refreshes positions and normal fractions.
func (f *Frame) commit(id NodeID, horizontal bool) {
	a := f.arena
	a.Walk(id, false, func(n NodeID) bool {
		w := &a.nodes[n]
		w.setPixelSize(horizontal, w.newPixel)
		return true
	})
	a.relayout(f.root, 0, 0)
	a.Walk(f.root, false, func(n NodeID) bool {
		if a.nodes[n].kind != KindLeaf {
			a.recomputeNormals(n)
		}
		return true
	})
	if p := a.nodes[id].parent; p.Valid() {
		a.recomputeNormals(p)
	}
}
