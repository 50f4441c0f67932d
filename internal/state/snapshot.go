package state

import (
	"github.com/mullion/mullion/internal/layout"
)

// Named is the optional identity a content handle may carry. Contents
// without a name are snapshotted as empty leaves.
type Named interface {
	Name() string
}

// Capture records the subtree rooted at id. forStorage selects the
// stricter parameter persistence used for records written to disk;
// in-memory records keep Persistent keys too. Markers and shown-buffer
// history are captured either way, as names and plain numbers.
func Capture(f *layout.Frame, id layout.NodeID, forStorage bool) *Snapshot {
	a := f.Arena()
	return &Snapshot{
		Frame: f.Name(),
		Cols:  a.Cols(id),
		Lines: a.Lines(id),
		Root:  captureWindow(f, id, forStorage),
	}
}

func captureWindow(f *layout.Frame, id layout.NodeID, forStorage bool) WindowState {
	a := f.Arena()
	params := a.WindowParams(id)
	ws := WindowState{
		Kind:      a.Kind(id).String(),
		Cols:      a.Cols(id),
		Lines:     a.Lines(id),
		Normal:    a.Normal(id),
		Dedicated: dedicationName(a.Dedicated(id)),
		Fixed:     fixedName(a.FixedSize(id)),
		NoOther:   params.NoOther,
		NoDelete:  params.NoDelete,
		Params:    params.PersistedExtra(forStorage),
	}
	if forStorage {
		// NoDelete is session state, not document state.
		ws.NoDelete = false
	}
	if s := a.SideOf(id); s != layout.SideNone {
		ws.Side = s.String()
		ws.Slot = a.Slot(id)
	}

	if a.IsLeaf(id) {
		ws.Buffer = contentName(a.Content(id))
		ws.Start, ws.Point = a.Marker(id)
		ws.PrevShown = contentNames(a.PrevShown(id))
		ws.NextShown = contentNames(a.NextShown(id))
		return ws
	}

	for c := a.FirstChild(id); c.Valid(); c = a.NextSibling(c) {
		ws.Children = append(ws.Children, captureWindow(f, c, forStorage))
	}
	return ws
}

func contentName(c layout.Content) string {
	if n, ok := c.(Named); ok {
		return n.Name()
	}
	return ""
}

func contentNames(cs []layout.Content) []string {
	var out []string
	for _, c := range cs {
		if name := contentName(c); name != "" {
			out = append(out, name)
		}
	}
	return out
}
