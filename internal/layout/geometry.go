package layout

// Pixel geometry accessors. Positions are relative to the frame origin.

// Edges returns the window's pixel rectangle.
func (a *Arena) Edges(id NodeID) (left, top, width, height int) {
	w := a.win(id)
	return w.pixelLeft, w.pixelTop, w.pixelWidth, w.pixelHeight
}

// PixelWidth returns the window's width in pixels.
func (a *Arena) PixelWidth(id NodeID) int { return a.win(id).pixelWidth }

// PixelHeight returns the window's height in pixels.
func (a *Arena) PixelHeight(id NodeID) int { return a.win(id).pixelHeight }

// Cols returns the window's width in character cells.
func (a *Arena) Cols(id NodeID) int {
	w := a.win(id)
	return w.pixelWidth / w.frame.cellW
}

// Lines returns the window's height in character cells.
func (a *Arena) Lines(id NodeID) int {
	w := a.win(id)
	return w.pixelHeight / w.frame.cellH
}

// Normal returns the window's fraction of its parent's size along the
// parent's combination axis.
func (a *Arena) Normal(id NodeID) float64 { return a.win(id).normal }

// pixelSize returns the window's size along one axis.
func (w *Window) pixelSize(horizontal bool) int {
	if horizontal {
		return w.pixelWidth
	}
	return w.pixelHeight
}

func (w *Window) setPixelSize(horizontal bool, v int) {
	if horizontal {
		w.pixelWidth = v
	} else {
		w.pixelHeight = v
	}
}

// cell returns the frame's cell size along one axis.
func (f *Frame) cell(horizontal bool) int {
	if horizontal {
		return f.cellW
	}
	return f.cellH
}

// combinedHorizontally reports whether a combination kind runs along the
// horizontal axis.
func combinedHorizontally(k Kind) bool { return k == KindHorizontal }

// kindFor returns the combination kind for an axis.
func kindFor(horizontal bool) Kind {
	if horizontal {
		return KindHorizontal
	}
	return KindVertical
}

// minPixels returns the smallest size id may take along one axis without
// violating its constraints. For combinations this aggregates the
// children: a sum along the combination axis, a maximum across it.
func (a *Arena) minPixels(id NodeID, horizontal bool, opts Options) int {
	w := &a.nodes[id]
	f := w.frame
	if w.kind != KindLeaf {
		along := combinedHorizontally(w.kind) == horizontal
		total := 0
		for c := w.firstChild; c.Valid(); c = a.nodes[c].next {
			m := a.minPixels(c, horizontal, opts)
			if along {
				total += m
			} else if m > total {
				total = m
			}
		}
		return total
	}

	var min int
	if horizontal {
		min = safeMinWidth * f.cellW
	} else {
		min = safeMinHeight * f.cellH
	}
	if opts.IgnoreMinimums {
		return min
	}
	if horizontal {
		if m := f.limits.MinWidth * f.cellW; m > min {
			min = m
		}
		if w.content != nil {
			if m := w.content.MinDisplayWidth() * f.cellW; m > min {
				min = m
			}
		}
		if w.preservedWidth > min {
			min = w.preservedWidth
		}
	} else {
		if m := f.limits.MinHeight * f.cellH; m > min {
			min = m
		}
		if w.content != nil {
			if m := w.content.MinDisplayHeight() * f.cellH; m > min {
				min = m
			}
		}
		if w.preservedHeight > min {
			min = w.preservedHeight
		}
	}
	return min
}

// MinCols returns the effective minimum width of id in cells.
func (a *Arena) MinCols(id NodeID, opts Options) int {
	return a.minPixels(id, true, opts) / a.win(id).frame.cellW
}

// MinLines returns the effective minimum height of id in cells.
func (a *Arena) MinLines(id NodeID, opts Options) int {
	return a.minPixels(id, false, opts) / a.win(id).frame.cellH
}

// fixedAlong reports whether the whole subtree refuses automatic resizing
// along one axis. A combination is fixed when every child is.
func (a *Arena) fixedAlong(id NodeID, horizontal bool) bool {
	w := &a.nodes[id]
	if w.kind == KindLeaf {
		if horizontal {
			return w.fixed.width()
		}
		return w.fixed.height()
	}
	for c := w.firstChild; c.Valid(); c = a.nodes[c].next {
		if !a.fixedAlong(c, horizontal) {
			return false
		}
	}
	return true
}

// preservedAlong reports whether the subtree holds a preserved size on
// the axis that would be violated by shrinking below the current size.
func (a *Arena) preservedAlong(id NodeID, horizontal bool) bool {
	w := &a.nodes[id]
	if w.kind == KindLeaf {
		if horizontal {
			return w.preservedWidth > 0 && w.pixelWidth <= w.preservedWidth
		}
		return w.preservedHeight > 0 && w.pixelHeight <= w.preservedHeight
	}
	for c := w.firstChild; c.Valid(); c = a.nodes[c].next {
		if a.preservedAlong(c, horizontal) {
			return true
		}
	}
	return false
}

// relayout recomputes every position in the subtree from the sizes, which
// are authoritative. Children of a combination are packed with no gaps;
// their orthogonal size is forced to the parent's.
func (a *Arena) relayout(id NodeID, left, top int) {
	w := &a.nodes[id]
	w.pixelLeft = left
	w.pixelTop = top
	if w.kind == KindLeaf {
		return
	}
	horiz := combinedHorizontally(w.kind)
	pos := 0
	for c := w.firstChild; c.Valid(); c = a.nodes[c].next {
		cw := &a.nodes[c]
		if horiz {
			cw.pixelHeight = w.pixelHeight
			a.relayout(c, left+pos, top)
			pos += cw.pixelWidth
		} else {
			cw.pixelWidth = w.pixelWidth
			a.relayout(c, left, top+pos)
			pos += cw.pixelHeight
		}
	}
}

// recomputeNormals refreshes the normal-size fractions of parent's
// children from their committed sizes.
func (a *Arena) recomputeNormals(parent NodeID) {
	p := &a.nodes[parent]
	if p.kind == KindLeaf {
		return
	}
	horiz := combinedHorizontally(p.kind)
	total := p.pixelSize(horiz)
	if total <= 0 {
		return
	}
	for c := p.firstChild; c.Valid(); c = a.nodes[c].next {
		a.nodes[c].normal = float64(a.nodes[c].pixelSize(horiz)) / float64(total)
	}
}
