package layout

import (
	"fmt"
	"sort"
)

// Side windows are anchored to one frame edge at a numeric slot. Windows
// on the left and right edges stack vertically; windows on the top and
// bottom edges sit side by side. Each edge holds at most its configured
// bound; past that, placement reuses the window with the nearest slot.

// SideWindows returns the frame's side windows on one edge, ordered by
// slot.
func (f *Frame) SideWindows(side Side) []NodeID {
	a := f.arena
	var out []NodeID
	a.Walk(f.root, true, func(n NodeID) bool {
		if a.nodes[n].side == side {
			out = append(out, n)
		}
		return true
	})
	sort.SliceStable(out, func(i, j int) bool {
		return a.nodes[out[i]].slot < a.nodes[out[j]].slot
	})
	return out
}

// DisplaySide places content in a side window on the given edge.
// Placement prefers an existing window with the same slot, then makes a
// new window adjacent to the nearest slot while the edge is under its
// bound, and finally reuses the window whose slot is numerically closest.
// sizeCells fixes the new window's size across the edge; zero picks a
// quarter of the frame.
func (f *Frame) DisplaySide(c Content, side Side, slot int, sizeCells int, opts Options) (NodeID, error) {
	if side == SideNone {
		return InvalidID, fmt.Errorf("display side window: no edge given")
	}
	a := f.arena
	bound := f.sideBounds.Bound(side)
	if bound <= 0 {
		return InvalidID, fmt.Errorf("edge %s: %w", side, ErrSideBound)
	}

	existing := f.SideWindows(side)

	// Exact slot match wins.
	for _, id := range existing {
		if a.nodes[id].slot == slot {
			a.SetContent(id, c)
			return id, nil
		}
	}

	// Bound reached: reuse the nearest slot, lower slot on ties.
	if len(existing) >= bound {
		best := existing[0]
		for _, id := range existing[1:] {
			if slotDistance(a.nodes[id].slot, slot) < slotDistance(a.nodes[best].slot, slot) {
				best = id
			}
		}
		a.SetContent(best, c)
		return best, nil
	}

	id, err := f.newSideWindow(side, slot, sizeCells, existing, opts)
	if err != nil {
		return InvalidID, err
	}
	a.SetContent(id, c)
	return id, nil
}

func slotDistance(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

// newSideWindow creates a side window on the edge. The first window of
// an edge splits the whole root tree; later ones split the side window
// with the nearest slot so the edge stays one run of windows.
func (f *Frame) newSideWindow(side Side, slot, sizeCells int, existing []NodeID, opts Options) (NodeID, error) {
	a := f.arena

	if len(existing) == 0 {
		size := sizeCells
		if size <= 0 {
			if side.Horizontal() {
				size = f.Cols() / 4
			} else {
				size = (f.Lines() - 1) / 4
			}
		}
		id, err := f.Split(f.root, -size, side, Options{
			IgnoreMinimums: opts.IgnoreMinimums,
			PixelExact:     opts.PixelExact,
		})
		if err != nil {
			return InvalidID, err
		}
		w := &a.nodes[id]
		w.side = side
		w.slot = slot
		return id, nil
	}

	// Insert adjacent to the nearest slot: after the greatest smaller
	// slot, or before the smallest greater one.
	anchor := InvalidID
	after := false
	for _, id := range existing {
		if a.nodes[id].slot < slot {
			anchor = id
			after = true
		}
	}
	if !anchor.Valid() {
		anchor = existing[0]
		after = false
	}

	// Side windows on vertical edges stack top to bottom; horizontal
	// edges grow sideways.
	var splitSide Side
	if side.Horizontal() {
		if after {
			splitSide = SideBottom
		} else {
			splitSide = SideTop
		}
	} else {
		if after {
			splitSide = SideRight
		} else {
			splitSide = SideLeft
		}
	}

	id, err := f.Split(anchor, 0, splitSide, Options{
		IgnoreMinimums: opts.IgnoreMinimums,
		PixelExact:     opts.PixelExact,
	})
	if err != nil {
		return InvalidID, err
	}
	w := &a.nodes[id]
	w.side = side
	w.slot = slot
	return id, nil
}

// SetSide tags an existing window as a side window. Mostly useful for
// state restoration.
func (a *Arena) SetSide(id NodeID, side Side, slot int) {
	w := a.win(id)
	w.side = side
	w.slot = slot
}
