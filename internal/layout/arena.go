package layout

// NodeID identifies a window slot in an Arena. IDs are stable for the
// lifetime of the window and are never reused while the window is alive.
type NodeID int32

// InvalidID is the null window reference.
const InvalidID NodeID = -1

// Valid reports whether the ID refers to a slot at all.
func (id NodeID) Valid() bool { return id >= 0 }

// Kind describes what a window node is: a leaf that shows content, or an
// internal combination whose children are arranged along one axis.
type Kind uint8

const (
	// KindLeaf is a live window displaying content.
	KindLeaf Kind = iota
	// KindHorizontal is an internal window whose children sit side by side.
	KindHorizontal
	// KindVertical is an internal window whose children are stacked top to bottom.
	KindVertical
)

// String returns the kind name used in persisted layouts.
func (k Kind) String() string {
	switch k {
	case KindHorizontal:
		return "hsplit"
	case KindVertical:
		return "vsplit"
	default:
		return "leaf"
	}
}

// Arena owns every window of every frame. A window tree is just a root
// NodeID plus the index-linked structure inside the arena.
type Arena struct {
	nodes []Window
	free  []NodeID

	frames   []*Frame
	selected *Frame
	nextGen  uint32
}

// NewArena creates an empty arena with room for a typical tree.
func NewArena() *Arena {
	return &Arena{
		nodes: make([]Window, 0, 32),
	}
}

// Frames returns the live frames in creation order.
func (a *Arena) Frames() []*Frame {
	out := make([]*Frame, len(a.frames))
	copy(out, a.frames)
	return out
}

// SelectedFrame returns the frame that currently receives commands.
func (a *Arena) SelectedFrame() *Frame { return a.selected }

// SelectFrame makes f the frame that receives commands. Frames belonging
// to other arenas are ignored.
func (a *Arena) SelectFrame(f *Frame) {
	for _, have := range a.frames {
		if have == f {
			a.selected = f
			return
		}
	}
}

// alloc reserves a window slot and returns its ID. Freed slots are reused.
func (a *Arena) alloc() NodeID {
	if n := len(a.free); n > 0 {
		id := a.free[n-1]
		a.free = a.free[:n-1]
		a.nodes[id] = Window{}
		a.initNode(id)
		return id
	}
	id := NodeID(len(a.nodes))
	a.nodes = append(a.nodes, Window{})
	a.initNode(id)
	return id
}

func (a *Arena) initNode(id NodeID) {
	w := &a.nodes[id]
	w.alive = true
	w.parent = InvalidID
	w.firstChild = InvalidID
	w.lastChild = InvalidID
	w.prev = InvalidID
	w.next = InvalidID
	w.normal = 1.0
	w.slot = 0
}

// release returns a single slot to the free list. The caller is
// responsible for unlinking it first.
func (a *Arena) release(id NodeID) {
	w := &a.nodes[id]
	*w = Window{}
	a.free = append(a.free, id)
}

// releaseTree returns a whole subtree to the free list.
func (a *Arena) releaseTree(id NodeID) {
	for c := a.nodes[id].firstChild; c.Valid(); {
		next := a.nodes[c].next
		a.releaseTree(c)
		c = next
	}
	a.release(id)
}

// win returns the window for id. It panics on a dead or invalid ID, which
// is always a caller bug: IDs are handed out by this package and revoked
// only by Delete.
func (a *Arena) win(id NodeID) *Window {
	if !id.Valid() || int(id) >= len(a.nodes) || !a.nodes[id].alive {
		panic("layout: dead window reference")
	}
	return &a.nodes[id]
}

// Alive reports whether id still refers to a live window.
func (a *Arena) Alive(id NodeID) bool {
	return id.Valid() && int(id) < len(a.nodes) && a.nodes[id].alive
}

// link inserts child into parent's child list. If after is valid the child
// goes immediately after it, otherwise the child becomes the first child.
func (a *Arena) link(parent, child, after NodeID) {
	c := &a.nodes[child]
	c.parent = parent
	p := &a.nodes[parent]
	if after.Valid() {
		c.prev = after
		c.next = a.nodes[after].next
		a.nodes[after].next = child
		if c.next.Valid() {
			a.nodes[c.next].prev = child
		} else {
			p.lastChild = child
		}
		return
	}
	c.prev = InvalidID
	c.next = p.firstChild
	if p.firstChild.Valid() {
		a.nodes[p.firstChild].prev = child
	} else {
		p.lastChild = child
	}
	p.firstChild = child
}

// unlink removes child from its parent's child list without freeing it.
func (a *Arena) unlink(child NodeID) {
	c := &a.nodes[child]
	parent := c.parent
	if c.prev.Valid() {
		a.nodes[c.prev].next = c.next
	} else if parent.Valid() {
		a.nodes[parent].firstChild = c.next
	}
	if c.next.Valid() {
		a.nodes[c.next].prev = c.prev
	} else if parent.Valid() {
		a.nodes[parent].lastChild = c.prev
	}
	c.parent = InvalidID
	c.prev = InvalidID
	c.next = InvalidID
}

// replace puts repl in the tree position held by old. old is left
// unlinked but alive.
func (a *Arena) replace(old, repl NodeID) {
	o := &a.nodes[old]
	parent, prev := o.parent, o.prev
	a.unlink(old)
	if parent.Valid() {
		a.link(parent, repl, prev)
	}
	r := &a.nodes[repl]
	r.normal = o.normal
}

// childCount returns the number of direct children of id.
func (a *Arena) childCount(id NodeID) int {
	n := 0
	for c := a.nodes[id].firstChild; c.Valid(); c = a.nodes[c].next {
		n++
	}
	return n
}
