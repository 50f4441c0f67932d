package layout

import "fmt"

// Metrics is the measurement oracle supplied by the display backend: the
// pixel size of one character cell. A plain terminal backend returns 1x1.
type Metrics interface {
	CellWidth() int
	CellHeight() int
}

// CellMetrics is a trivial Metrics implementation.
type CellMetrics struct {
	W, H int
}

func (m CellMetrics) CellWidth() int  { return m.W }
func (m CellMetrics) CellHeight() int { return m.H }

// Limits carries the configured per-window minimum sizes in character
// cells. Content preferences and preserved sizes may raise the effective
// minimum above these.
type Limits struct {
	MinWidth  int
	MinHeight int
}

// safe minimums, in character cells. Even with IgnoreMinimums a window
// never goes below these.
const (
	safeMinWidth  = 2
	safeMinHeight = 1
)

// SideBounds caps the number of side windows anchored to each frame edge.
type SideBounds struct {
	Left, Top, Right, Bottom int
}

// Bound returns the cap for one edge. Zero means side windows are not
// allowed on that edge.
func (b SideBounds) Bound(s Side) int {
	switch s {
	case SideLeft:
		return b.Left
	case SideTop:
		return b.Top
	case SideRight:
		return b.Right
	case SideBottom:
		return b.Bottom
	}
	return 0
}

// Frame is one display surface: a root window tree tiling its pixel area,
// plus a one-line minibuffer window pinned to the bottom edge that is not
// part of the root tree.
type Frame struct {
	arena *Arena
	name  string

	root       NodeID
	minibuffer NodeID
	selected   NodeID

	pixelWidth  int
	pixelHeight int

	cellW int
	cellH int

	limits     Limits
	sideBounds SideBounds

	visible bool
	tick    uint64
}

// NewFrame creates a frame of the given pixel size owning a single live
// root window and a minibuffer. The first frame created becomes the
// arena's selected frame.
func (a *Arena) NewFrame(name string, pixelW, pixelH int, m Metrics, lim Limits, sb SideBounds) *Frame {
	cellW, cellH := m.CellWidth(), m.CellHeight()
	if cellW < 1 {
		cellW = 1
	}
	if cellH < 1 {
		cellH = 1
	}
	if lim.MinWidth < safeMinWidth {
		lim.MinWidth = safeMinWidth
	}
	if lim.MinHeight < safeMinHeight {
		lim.MinHeight = safeMinHeight
	}
	f := &Frame{
		arena:       a,
		name:        name,
		pixelWidth:  pixelW,
		pixelHeight: pixelH,
		cellW:       cellW,
		cellH:       cellH,
		limits:      lim,
		sideBounds:  sb,
		visible:     true,
	}

	root := a.alloc()
	rw := &a.nodes[root]
	rw.kind = KindLeaf
	rw.frame = f
	rw.pixelWidth = pixelW
	rw.pixelHeight = pixelH - cellH

	mini := a.alloc()
	mw := &a.nodes[mini]
	mw.kind = KindLeaf
	mw.frame = f
	mw.pixelTop = pixelH - cellH
	mw.pixelWidth = pixelW
	mw.pixelHeight = cellH
	mw.params.NoOther = true

	f.root = root
	f.minibuffer = mini
	f.selected = root
	f.tick = 1
	a.nodes[root].useTick = 1

	a.frames = append(a.frames, f)
	if a.selected == nil {
		a.selected = f
	}
	return f
}

// Name returns the frame's label.
func (f *Frame) Name() string { return f.name }

// Arena returns the arena owning the frame's windows.
func (f *Frame) Arena() *Arena { return f.arena }

// Root returns the root window of the frame's tree.
func (f *Frame) Root() NodeID { return f.root }

// Minibuffer returns the frame's minibuffer window. It is always present
// and never part of the root tree.
func (f *Frame) Minibuffer() NodeID { return f.minibuffer }

// Selected returns the frame's selected window.
func (f *Frame) Selected() NodeID { return f.selected }

// Select makes id the frame's selected window and marks it used. Internal
// windows, the minibuffer, and windows of other frames are rejected.
func (f *Frame) Select(id NodeID) error {
	w := f.arena.win(id)
	if w.frame != f {
		return ErrWrongFrame
	}
	if w.kind != KindLeaf {
		return ErrNotLeaf
	}
	if id == f.minibuffer {
		return fmt.Errorf("select minibuffer: %w", ErrCannotDelete)
	}
	f.selected = id
	f.arena.Touch(id)
	return nil
}

// PixelSize returns the frame's full pixel dimensions.
func (f *Frame) PixelSize() (w, h int) { return f.pixelWidth, f.pixelHeight }

// CellSize returns the pixel size of one character cell.
func (f *Frame) CellSize() (w, h int) { return f.cellW, f.cellH }

// Cols returns the frame width in columns.
func (f *Frame) Cols() int { return f.pixelWidth / f.cellW }

// Lines returns the frame height in lines, minibuffer included.
func (f *Frame) Lines() int { return f.pixelHeight / f.cellH }

// Limits returns the configured minimum window sizes.
func (f *Frame) Limits() Limits { return f.limits }

// SideBounds returns the per-edge side window caps.
func (f *Frame) SideBounds() SideBounds { return f.sideBounds }

// Visible reports whether the frame is shown. Invisible frames are
// skipped by the visible-frames reuse scope.
func (f *Frame) Visible() bool { return f.visible }

// SetVisible shows or hides the frame.
func (f *Frame) SetVisible(v bool) { f.visible = v }

// DeleteFrame removes a frame and frees its whole tree. The last
// remaining frame cannot be deleted.
func (a *Arena) DeleteFrame(f *Frame) error {
	if len(a.frames) <= 1 {
		return fmt.Errorf("layout: delete frame %q: %w", f.name, ErrCannotDelete)
	}
	idx := -1
	for i, have := range a.frames {
		if have == f {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("layout: delete frame %q: unknown frame", f.name)
	}
	a.releaseTree(f.root)
	a.release(f.minibuffer)
	a.frames = append(a.frames[:idx], a.frames[idx+1:]...)
	if a.selected == f {
		a.selected = a.frames[0]
	}
	return nil
}

// Resize changes the frame's pixel size, redistributing the delta across
// the tree proportionally. Minimum sizes are honored when possible and
// relaxed to the safe floor when the frame itself becomes too small.
func (f *Frame) Resize(pixelW, pixelH int) {
	minW := f.limits.MinWidth * f.cellW
	minH := f.limits.MinHeight*f.cellH + f.cellH // room for the minibuffer
	if pixelW < minW {
		pixelW = minW
	}
	if pixelH < minH {
		pixelH = minH
	}

	bodyH := pixelH - f.cellH
	if err := f.resizeRoot(pixelW, bodyH, Options{}); err != nil {
		// Best effort: retry with minimums relaxed to the safe floor. A
		// tree stacked deep enough can defeat even that; the frame then
		// clamps to whatever the tree holds, so the two never diverge.
		if err := f.resizeRoot(pixelW, bodyH, Options{IgnoreMinimums: true}); err != nil {
			root := &f.arena.nodes[f.root]
			pixelW = root.pixelWidth
			pixelH = root.pixelHeight + f.cellH
		}
	}
	f.pixelWidth = pixelW
	f.pixelHeight = pixelH

	mini := &f.arena.nodes[f.minibuffer]
	mini.pixelLeft = 0
	mini.pixelTop = pixelH - f.cellH
	mini.pixelWidth = pixelW
	mini.pixelHeight = f.cellH
}
