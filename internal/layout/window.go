package layout

// Content is the opaque handle for whatever a leaf window displays. The
// engine never looks inside it; it only stores it, compares it, and asks
// for liveness and a preferred minimum display size in character cells.
type Content interface {
	// Live reports whether the content can still be displayed.
	Live() bool
	// MinDisplayWidth returns the preferred minimum width in columns.
	// Zero means no preference.
	MinDisplayWidth() int
	// MinDisplayHeight returns the preferred minimum height in lines.
	// Zero means no preference.
	MinDisplayHeight() int
}

// Dedication controls how strongly a window is tied to its content.
type Dedication uint8

const (
	// DedicatedNone lets any operation replace the window's content.
	DedicatedNone Dedication = iota
	// DedicatedSoft keeps automatic placement away from the window but
	// allows explicit replacement.
	DedicatedSoft
	// DedicatedStrong reserves the window for its current content.
	DedicatedStrong
)

// Side names the frame edge a side window is anchored to. SideNone marks
// an ordinary window.
type Side uint8

const (
	SideNone Side = iota
	SideLeft
	SideTop
	SideRight
	SideBottom
)

// String returns the side name used in persisted layouts.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideTop:
		return "top"
	case SideRight:
		return "right"
	case SideBottom:
		return "bottom"
	default:
		return "none"
	}
}

// Horizontal reports whether the side sits on the left or right edge.
func (s Side) Horizontal() bool { return s == SideLeft || s == SideRight }

// Fixed marks which axes of a window refuse automatic resizing.
type Fixed uint8

const (
	FixedNone Fixed = iota
	FixedWidth
	FixedHeight
	FixedBoth
)

func (f Fixed) width() bool  { return f == FixedWidth || f == FixedBoth }
func (f Fixed) height() bool { return f == FixedHeight || f == FixedBoth }

// historyCap bounds the per-window lists of previously and subsequently
// shown contents.
const historyCap = 16

// Window is one node of a frame's tree: either a leaf showing content or
// an internal combination owning at least two children. All fields are
// arena-private; access goes through Arena and Frame methods.
type Window struct {
	alive bool
	kind  Kind
	frame *Frame

	parent     NodeID
	firstChild NodeID
	lastChild  NodeID
	prev       NodeID
	next       NodeID

	// Geometry, in pixels relative to the frame origin.
	pixelLeft   int
	pixelTop    int
	pixelWidth  int
	pixelHeight int

	// normal is this window's fraction of its parent's size along the
	// parent's combination axis. Siblings sum to 1.0.
	normal float64

	// Scratch field, valid only inside a single resize pass.
	newPixel int

	content Content
	// start and point are opaque position markers owned by the content
	// collaborator; the engine only stores them.
	start int
	point int

	dedicated Dedication
	fixed     Fixed
	// preservedWidth/Height, when non-zero, are pixel sizes the resize
	// engine will not shrink below unless overridden.
	preservedWidth  int
	preservedHeight int

	// combinationLimit forces the next split of this window to insert a
	// new parent instead of joining the existing combination.
	combinationLimit bool

	params Params

	// prevShown and nextShown track contents recently displayed here,
	// most recent first. Bounded by historyCap.
	prevShown []Content
	nextShown []Content

	side Side
	slot int
	atom bool

	// useTick orders windows by most recent use within their frame.
	useTick uint64
}

// Accessors. All take the arena because windows are arena slots.

// Kind returns whether id is a leaf or a combination.
func (a *Arena) Kind(id NodeID) Kind { return a.win(id).kind }

// IsLeaf reports whether id is a live (content-bearing) window.
func (a *Arena) IsLeaf(id NodeID) bool { return a.win(id).kind == KindLeaf }

// FrameOf returns the frame owning id.
func (a *Arena) FrameOf(id NodeID) *Frame { return a.win(id).frame }

// Content returns the content shown in id, or nil for internal windows
// and empty leaves.
func (a *Arena) Content(id NodeID) Content { return a.win(id).content }

// SetContent assigns content to a leaf window, pushing the previous
// content onto the window's history.
func (a *Arena) SetContent(id NodeID, c Content) {
	w := a.win(id)
	if w.kind != KindLeaf {
		return
	}
	if w.content != nil && w.content != c {
		w.pushPrevShown(w.content)
	}
	w.content = c
	w.start = 0
	w.point = 0
	if w.frame != nil {
		w.frame.tick++
		w.useTick = w.frame.tick
	}
}

func (w *Window) pushPrevShown(c Content) {
	// Drop duplicates, keep most recent first.
	for i, have := range w.prevShown {
		if have == c {
			w.prevShown = append(w.prevShown[:i], w.prevShown[i+1:]...)
			break
		}
	}
	w.prevShown = append([]Content{c}, w.prevShown...)
	if len(w.prevShown) > historyCap {
		w.prevShown = w.prevShown[:historyCap]
	}
}

// PrevShown returns the contents previously displayed in id, most recent
// first. The slice is a copy.
func (a *Arena) PrevShown(id NodeID) []Content {
	w := a.win(id)
	out := make([]Content, len(w.prevShown))
	copy(out, w.prevShown)
	return out
}

// NextShown returns the contents displayed in id after the current one
// was buried, most recent first. The slice is a copy.
func (a *Arena) NextShown(id NodeID) []Content {
	w := a.win(id)
	out := make([]Content, len(w.nextShown))
	copy(out, w.nextShown)
	return out
}

// SetShownHistory replaces both history lists. Used by state restoration.
func (a *Arena) SetShownHistory(id NodeID, prev, next []Content) {
	w := a.win(id)
	if len(prev) > historyCap {
		prev = prev[:historyCap]
	}
	if len(next) > historyCap {
		next = next[:historyCap]
	}
	w.prevShown = append([]Content(nil), prev...)
	w.nextShown = append([]Content(nil), next...)
}

// Marker returns the stored start and point markers of id.
func (a *Arena) Marker(id NodeID) (start, point int) {
	w := a.win(id)
	return w.start, w.point
}

// SetMarker stores the start and point markers of id.
func (a *Arena) SetMarker(id NodeID, start, point int) {
	w := a.win(id)
	w.start = start
	w.point = point
}

// Dedicated returns the dedication of id.
func (a *Arena) Dedicated(id NodeID) Dedication { return a.win(id).dedicated }

// SetDedicated sets the dedication of id.
func (a *Arena) SetDedicated(id NodeID, d Dedication) { a.win(id).dedicated = d }

// FixedSize returns which axes of id refuse automatic resizing.
func (a *Arena) FixedSize(id NodeID) Fixed { return a.win(id).fixed }

// SetFixedSize marks axes of id as refusing automatic resizing.
func (a *Arena) SetFixedSize(id NodeID, f Fixed) { a.win(id).fixed = f }

// PreserveSize records the window's current size on the given axes as a
// floor the resize engine will respect. Passing false for both clears any
// preserved sizes.
func (a *Arena) PreserveSize(id NodeID, width, height bool) {
	w := a.win(id)
	if width {
		w.preservedWidth = w.pixelWidth
	} else {
		w.preservedWidth = 0
	}
	if height {
		w.preservedHeight = w.pixelHeight
	} else {
		w.preservedHeight = 0
	}
}

// CombinationLimit reports whether the next split of id must nest.
func (a *Arena) CombinationLimit(id NodeID) bool { return a.win(id).combinationLimit }

// SetCombinationLimit forces or releases nesting on the next split of id.
func (a *Arena) SetCombinationLimit(id NodeID, v bool) { a.win(id).combinationLimit = v }

// SideOf returns the frame edge id is anchored to, or SideNone.
func (a *Arena) SideOf(id NodeID) Side { return a.win(id).side }

// Slot returns the side-window slot index of id. Meaningless when SideOf
// returns SideNone.
func (a *Arena) Slot(id NodeID) int { return a.win(id).slot }

// UseTick returns the frame-scoped recency counter of id; larger is more
// recently used.
func (a *Arena) UseTick(id NodeID) uint64 { return a.win(id).useTick }

// Touch marks id as the most recently used window of its frame.
func (a *Arena) Touch(id NodeID) {
	w := a.win(id)
	if w.frame != nil {
		w.frame.tick++
		w.useTick = w.frame.tick
	}
}

// Param returns the named extra parameter of id.
func (a *Arena) Param(id NodeID, key string) (string, bool) {
	return a.win(id).params.Get(key)
}

// SetParam sets the named extra parameter of id.
func (a *Arena) SetParam(id NodeID, key, value string) {
	a.win(id).params.Set(key, value)
}

// WindowParams returns a copy of the window's parameter set.
func (a *Arena) WindowParams(id NodeID) Params { return a.win(id).params.clone() }

// SetWindowParams replaces the window's parameter set.
func (a *Arena) SetWindowParams(id NodeID, p Params) { a.win(id).params = p.clone() }
