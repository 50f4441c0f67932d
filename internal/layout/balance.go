package layout

// Balance equalizes window sizes inside the subtree rooted at id: in
// every combination each child gets the same share of the parent, except
// fixed-size subtrees, which keep their size, and children whose minimum
// exceeds the even share, which get their minimum. Runs one pass per
// axis and commits each atomically.
func (f *Frame) Balance(id NodeID, opts Options) error {
	a := f.arena
	w := a.win(id)
	if w.frame != f {
		return ErrWrongFrame
	}
	for _, horiz := range []bool{true, false} {
		f.resetScratch(horiz)
		if err := f.balancePlan(id, a.nodes[id].pixelSize(horiz), horiz, opts); err != nil {
			return err
		}
		if err := f.validatePlanned(id, horiz, opts); err != nil {
			return err
		}
		f.commit(id, horiz)
	}
	return nil
}

// balancePlan assigns size to id and spreads it evenly across any
// combination running along the axis.
func (f *Frame) balancePlan(id NodeID, size int, horizontal bool, opts Options) error {
	a := f.arena
	w := &a.nodes[id]
	w.newPixel = size
	if w.kind == KindLeaf {
		return nil
	}

	if w.kind != kindFor(horizontal) {
		for c := w.firstChild; c.Valid(); c = a.nodes[c].next {
			if err := f.balancePlan(c, size, horizontal, opts); err != nil {
				return err
			}
		}
		return nil
	}

	// Fixed subtrees keep their size; the rest share what remains.
	var flex []NodeID
	budget := size
	for c := w.firstChild; c.Valid(); c = a.nodes[c].next {
		if a.fixedAlong(c, horizontal) {
			budget -= a.nodes[c].newPixel
		} else {
			flex = append(flex, c)
		}
	}
	if len(flex) == 0 {
		for c := w.firstChild; c.Valid(); c = a.nodes[c].next {
			if err := f.balancePlan(c, a.nodes[c].newPixel, horizontal, opts); err != nil {
				return err
			}
		}
		return nil
	}

	shares := f.evenShares(flex, budget, horizontal, opts)
	i := 0
	for c := w.firstChild; c.Valid(); c = a.nodes[c].next {
		if a.fixedAlong(c, horizontal) {
			if err := f.balancePlan(c, a.nodes[c].newPixel, horizontal, opts); err != nil {
				return err
			}
			continue
		}
		if err := f.balancePlan(c, shares[i], horizontal, opts); err != nil {
			return err
		}
		i++
	}
	return nil
}

// evenShares divides budget across the windows in whole cells, raising
// any share that would fall below a window's minimum and paying for that
// out of the others. Leftover cells go to the first windows in order.
func (f *Frame) evenShares(ids []NodeID, budget int, horizontal bool, opts Options) []int {
	a := f.arena
	cell := f.cell(horizontal)
	n := len(ids)

	shares := make([]int, n)
	fixedAtMin := make([]bool, n)
	for {
		pool := budget
		free := 0
		for i := range ids {
			if fixedAtMin[i] {
				pool -= shares[i]
			} else {
				free++
			}
		}
		if free == 0 {
			break
		}
		base := pool / free / cell * cell
		extraCells := (pool - base*free) / cell
		j := 0
		for i := range ids {
			if fixedAtMin[i] {
				continue
			}
			shares[i] = base
			if j < extraCells {
				shares[i] += cell
			}
			j++
		}
		// Raise any share below its minimum and resettle the rest.
		raised := false
		for i, id := range ids {
			if fixedAtMin[i] {
				continue
			}
			if min := a.minPixels(id, horizontal, opts); shares[i] < min {
				shares[i] = min
				fixedAtMin[i] = true
				raised = true
			}
		}
		if !raised {
			break
		}
	}
	return shares
}
