package layout_test

import (
	"math"
	"testing"

	"github.com/mullion/mullion/internal/layout"
)

// fakeContent is a minimal content handle for tests.
type fakeContent struct {
	name string
	live bool
	minW int
	minH int
}

func (c *fakeContent) Live() bool            { return c.live }
func (c *fakeContent) MinDisplayWidth() int  { return c.minW }
func (c *fakeContent) MinDisplayHeight() int { return c.minH }

func content(name string) *fakeContent {
	return &fakeContent{name: name, live: true}
}

// newTestFrame builds an 80x41 frame (80x40 body plus a one-line
// minibuffer) on a 1x1 cell backend.
func newTestFrame(t *testing.T) (*layout.Arena, *layout.Frame) {
	t.Helper()
	a := layout.NewArena()
	f := a.NewFrame("test", 80, 41, layout.CellMetrics{W: 1, H: 1},
		layout.Limits{MinWidth: 4, MinHeight: 2},
		layout.SideBounds{Left: 2, Top: 2, Right: 2, Bottom: 3})
	return a, f
}

// checkTree asserts the structural invariants that must hold after every
// mutation: internal windows have at least two children, children
// partition the parent exactly along the combination axis, match it on
// the other, and normal fractions sum to one.
func checkTree(t *testing.T, a *layout.Arena, f *layout.Frame) {
	t.Helper()
	a.Walk(f.Root(), false, func(id layout.NodeID) bool {
		kind := a.Kind(id)
		if kind == layout.KindLeaf {
			return true
		}
		pl, pt, pw, ph := a.Edges(id)

		n := 0
		sum := 0
		normals := 0.0
		pos := 0
		for c := a.FirstChild(id); c.Valid(); c = a.NextSibling(c) {
			n++
			cl, ct, cw, ch := a.Edges(c)
			normals += a.Normal(c)
			if kind == layout.KindHorizontal {
				sum += cw
				if ch != ph {
					t.Errorf("window %d: height %d, parent %d", c, ch, ph)
				}
				if ct != pt {
					t.Errorf("window %d: top %d, parent %d", c, ct, pt)
				}
				if cl != pl+pos {
					t.Errorf("window %d: left %d, want %d (gap or overlap)", c, cl, pl+pos)
				}
				pos += cw
			} else {
				sum += ch
				if cw != pw {
					t.Errorf("window %d: width %d, parent %d", c, cw, pw)
				}
				if cl != pl {
					t.Errorf("window %d: left %d, parent %d", c, cl, pl)
				}
				if ct != pt+pos {
					t.Errorf("window %d: top %d, want %d (gap or overlap)", c, ct, pt+pos)
				}
				pos += ch
			}
		}
		if n < 2 {
			t.Errorf("internal window %d has %d children", id, n)
		}
		parentSize := pw
		if kind == layout.KindVertical {
			parentSize = ph
		}
		if sum != parentSize {
			t.Errorf("children of %d sum to %d, parent is %d", id, sum, parentSize)
		}
		if math.Abs(normals-1.0) > 1e-9 {
			t.Errorf("normals of %d sum to %g", id, normals)
		}
		return true
	})
}

func sizeOf(t *testing.T, a *layout.Arena, id layout.NodeID) (w, h int) {
	t.Helper()
	_, _, w, h = a.Edges(id)
	return w, h
}
