package display

import (
	"errors"

	"github.com/mullion/mullion/internal/layout"
)

// The built-in strategies. Each is usable on its own in an Action and
// several are chained by the standard fallback pipeline.

// ReuseWindow resolves to a window already showing the content, searching
// frames per the configured reuse scope.
func ReuseWindow(ws *Workspace, c layout.Content, cfg *Config) (WindowRef, bool) {
	for _, f := range ws.frames(cfg) {
		id := f.FindContent(c)
		if !id.Valid() {
			continue
		}
		if cfg.inhibitSame() && f == ws.Arena.SelectedFrame() && id == f.Selected() {
			continue
		}
		return WindowRef{Frame: f, ID: id}, true
	}
	return WindowRef{}, false
}

// SameWindow resolves to the selected window itself. It declines when
// same-window use is inhibited or the selected window is dedicated to
// other content.
func SameWindow(ws *Workspace, c layout.Content, cfg *Config) (WindowRef, bool) {
	if cfg.inhibitSame() {
		return WindowRef{}, false
	}
	a := ws.Arena
	f := a.SelectedFrame()
	id := f.Selected()
	if a.Dedicated(id) != layout.DedicatedNone && a.Content(id) != c {
		return WindowRef{}, false
	}
	if p := a.WindowParams(id); p.NoOther {
		return WindowRef{}, false
	}
	return WindowRef{Frame: f, ID: id}, true
}

// UseSideWindow places the content in a side window, bottom edge slot 0
// unless the configuration says otherwise.
func UseSideWindow(ws *Workspace, c layout.Content, cfg *Config) (WindowRef, bool) {
	f := ws.Arena.SelectedFrame()
	side := layout.SideBottom
	if cfg.Side != nil {
		side = *cfg.Side
	}
	slot := 0
	if cfg.Slot != nil {
		slot = *cfg.Slot
	}
	size := 0
	if side.Horizontal() {
		if cfg.Width != nil {
			size = cfg.Width.Resolve(f.Cols())
		}
	} else if cfg.Height != nil {
		size = cfg.Height.Resolve(f.Lines() - 1)
	}

	id, err := f.DisplaySide(c, side, slot, size, layout.Options{})
	if err != nil {
		return WindowRef{}, false
	}
	return WindowRef{Frame: f, ID: id}, true
}

// PopUpWindow splits a new window off the selected window, or off the
// frame's largest window when the selected one is too small. Below
// first, to the right as a second try.
func PopUpWindow(ws *Workspace, c layout.Content, cfg *Config) (WindowRef, bool) {
	a := ws.Arena
	f := a.SelectedFrame()

	targets := []layout.NodeID{f.Selected()}
	if big := f.LargestLeaf(f.Selected(), layout.Options{}); big.Valid() {
		targets = append(targets, big)
	}

	for _, id := range targets {
		size := 0
		if cfg.Height != nil {
			size = cfg.Height.Resolve(a.Lines(id))
		}
		nw, err := f.Split(id, -size, layout.SideBottom, layout.Options{})
		if err == nil {
			return WindowRef{Frame: f, ID: nw}, true
		}
		if !errors.Is(err, layout.ErrTooSmall) {
			continue
		}
		size = 0
		if cfg.Width != nil {
			size = cfg.Width.Resolve(a.Cols(id))
		}
		if nw, err := f.Split(id, -size, layout.SideRight, layout.Options{}); err == nil {
			return WindowRef{Frame: f, ID: nw}, true
		}
	}
	return WindowRef{}, false
}

// UseLRU takes over the least recently used window that is neither
// selected nor dedicated to other content.
func UseLRU(ws *Workspace, c layout.Content, cfg *Config) (WindowRef, bool) {
	a := ws.Arena
	for _, f := range ws.frames(cfg) {
		best := layout.InvalidID
		var bestTick uint64
		for _, id := range f.CycleLeaves(layout.Options{}) {
			if id == f.Selected() {
				continue
			}
			if a.Dedicated(id) != layout.DedicatedNone && a.Content(id) != c {
				continue
			}
			if t := a.UseTick(id); !best.Valid() || t < bestTick {
				best, bestTick = id, t
			}
		}
		if best.Valid() {
			return WindowRef{Frame: f, ID: best}, true
		}
	}
	return WindowRef{}, false
}

// UseOtherFrame resolves to another visible frame's selected window.
func UseOtherFrame(ws *Workspace, c layout.Content, cfg *Config) (WindowRef, bool) {
	a := ws.Arena
	sel := a.SelectedFrame()
	for _, f := range a.Frames() {
		if f == sel || !f.Visible() {
			continue
		}
		id := f.Selected()
		if a.Dedicated(id) != layout.DedicatedNone && a.Content(id) != c {
			continue
		}
		return WindowRef{Frame: f, ID: id}, true
	}
	return WindowRef{}, false
}
