package state

import (
	"errors"
	"fmt"

	"github.com/mullion/mullion/internal/layout"
)

// Policy says what restore does with a leaf whose recorded buffer no
// longer exists.
type Policy uint8

const (
	// SwitchToSimilar shows the most similar live buffer instead, or an
	// empty window when nothing similar exists.
	SwitchToSimilar Policy = iota
	// DeleteWindow drops the window from the restored layout.
	DeleteWindow
	// Placeholder keeps the window with no content.
	Placeholder
)

// Resolver turns recorded buffer names back into live content.
type Resolver interface {
	Lookup(name string) (layout.Content, bool)
	MostSimilar(name string) layout.Content
}

// RestoreOptions configures Restore. A nil Resolver treats every
// recorded buffer as dead.
type RestoreOptions struct {
	Policy   Policy
	Resolver Resolver
}

// Restore rebuilds the snapshot's tree in place of the anchor window,
// which must be a leaf. Recorded sizes are used as-is when the anchor
// matches the captured dimensions and scaled by normal fractions when it
// does not. Errors from an unsplittable anchor surface to the caller;
// partially restored shape is possible then, matching replay semantics.
func Restore(f *layout.Frame, anchor layout.NodeID, snap *Snapshot, opts RestoreOptions) error {
	a := f.Arena()
	if !a.IsLeaf(anchor) {
		return fmt.Errorf("state: restore: anchor: %w", layout.ErrNotLeaf)
	}

	r := restorer{
		f:     f,
		a:     a,
		opts:  opts,
		exact: snap.Cols == a.Cols(anchor) && snap.Lines == a.Lines(anchor),
	}
	if err := r.window(&snap.Root, anchor); err != nil {
		return fmt.Errorf("state: restore: %w", err)
	}

	for _, id := range r.doomed {
		if !a.Alive(id) {
			continue
		}
		if err := f.Delete(id, layout.Options{IgnoreMinimums: true, InsideAtom: true}); err != nil {
			// The last window cannot be dropped; it stays as a
			// placeholder instead.
			if errors.Is(err, layout.ErrCannotDelete) {
				continue
			}
			return fmt.Errorf("state: restore: drop dead window: %w", err)
		}
	}
	return nil
}

type restorer struct {
	f      *layout.Frame
	a      *layout.Arena
	opts   RestoreOptions
	exact  bool
	doomed []layout.NodeID
}

func (r *restorer) window(ws *WindowState, id layout.NodeID) error {
	if ws.Kind == "leaf" || len(ws.Children) == 0 {
		r.applyAttrs(ws, id)
		return r.leaf(ws, id)
	}

	horizontal := ws.Kind == "hsplit"
	sizes := r.childSizes(ws, id, horizontal)

	cur := id
	comb := layout.InvalidID
	for i := 0; i < len(ws.Children)-1; i++ {
		rest, err := r.split(cur, sizes[i], horizontal, i == 0)
		if err != nil {
			return err
		}
		if i == 0 {
			comb = r.a.Parent(rest)
		}
		if err := r.window(&ws.Children[i], cur); err != nil {
			return err
		}
		cur = rest
	}
	if err := r.window(&ws.Children[len(ws.Children)-1], cur); err != nil {
		return err
	}
	// The record node's own attributes belong on the combination the
	// replay produced, not on any leaf.
	if comb.Valid() {
		r.applyAttrs(ws, comb)
	}
	return nil
}

func (r *restorer) applyAttrs(ws *WindowState, id layout.NodeID) {
	a := r.a
	p := layout.Params{NoOther: ws.NoOther, NoDelete: ws.NoDelete}
	for k, v := range ws.Params {
		p.Set(k, v)
	}
	a.SetWindowParams(id, p)
	a.SetDedicated(id, parseDedication(ws.Dedicated))
	a.SetFixedSize(id, parseFixed(ws.Fixed))
	if side := parseSide(ws.Side); side != layout.SideNone {
		a.SetSide(id, side, ws.Slot)
	}
}

// split carves sizeCells off for cur and returns the window holding the
// remainder. The first split of a combination nests when cur already
// sits in a combination along the same axis, so recorded same-axis
// nesting survives the replay.
func (r *restorer) split(cur layout.NodeID, sizeCells int, horizontal, first bool) (layout.NodeID, error) {
	a := r.a
	side := layout.SideBottom
	if horizontal {
		side = layout.SideRight
	}

	opts := layout.Options{InsideAtom: true}
	if first {
		if parent := a.Parent(cur); parent.Valid() && sameAxis(a.Kind(parent), horizontal) {
			opts.Nest = true
		}
	}

	rest, err := r.f.Split(cur, sizeCells, side, opts)
	if errors.Is(err, layout.ErrTooSmall) {
		opts.IgnoreMinimums = true
		rest, err = r.f.Split(cur, sizeCells, side, opts)
	}
	if err != nil {
		return layout.InvalidID, fmt.Errorf("replay split: %w", err)
	}
	return rest, nil
}

func sameAxis(k layout.Kind, horizontal bool) bool {
	if horizontal {
		return k == layout.KindHorizontal
	}
	return k == layout.KindVertical
}

// childSizes returns the cell size of each recorded child, scaled into
// the space the live window actually has.
func (r *restorer) childSizes(ws *WindowState, id layout.NodeID, horizontal bool) []int {
	a := r.a
	total := a.Lines(id)
	if horizontal {
		total = a.Cols(id)
	}

	recorded := 0
	for i := range ws.Children {
		if horizontal {
			recorded += ws.Children[i].Cols
		} else {
			recorded += ws.Children[i].Lines
		}
	}
	sizes := make([]int, len(ws.Children))
	if r.exact && recorded == total {
		for i := range ws.Children {
			if horizontal {
				sizes[i] = ws.Children[i].Cols
			} else {
				sizes[i] = ws.Children[i].Lines
			}
		}
		return sizes
	}

	// Sizes no longer fit; fall back to the normal fractions.
	used := 0
	for i := range ws.Children[:len(ws.Children)-1] {
		s := int(ws.Children[i].Normal * float64(total))
		if s < 1 {
			s = 1
		}
		sizes[i] = s
		used += s
	}
	last := total - used
	if last < 1 {
		last = 1
	}
	sizes[len(sizes)-1] = last
	return sizes
}

func (r *restorer) leaf(ws *WindowState, id layout.NodeID) error {
	a := r.a

	c, keep := r.resolveContent(ws.Buffer)
	if !keep {
		r.doomed = append(r.doomed, id)
		return nil
	}
	if c != nil {
		a.SetContent(id, c)
		a.SetMarker(id, ws.Start, ws.Point)
	}
	a.SetShownHistory(id, r.lookupAll(ws.PrevShown), r.lookupAll(ws.NextShown))
	return nil
}

// resolveContent maps a recorded buffer name to live content. keep is
// false only under the DeleteWindow policy with a dead buffer.
func (r *restorer) resolveContent(name string) (c layout.Content, keep bool) {
	if name == "" {
		return nil, true
	}
	if r.opts.Resolver != nil {
		if c, ok := r.opts.Resolver.Lookup(name); ok {
			return c, true
		}
	}
	switch r.opts.Policy {
	case DeleteWindow:
		return nil, false
	case SwitchToSimilar:
		if r.opts.Resolver != nil {
			if c := r.opts.Resolver.MostSimilar(name); c != nil {
				return c, true
			}
		}
	}
	return nil, true
}

func (r *restorer) lookupAll(names []string) []layout.Content {
	if r.opts.Resolver == nil {
		return nil
	}
	var out []layout.Content
	for _, name := range names {
		if c, ok := r.opts.Resolver.Lookup(name); ok {
			out = append(out, c)
		}
	}
	return out
}
