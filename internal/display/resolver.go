// Package display decides which window shows a given piece of content.
// A request runs an ordered pipeline of placement strategies assembled
// from an overriding action, a per-content rule table, the caller's
// action and a global default, each contributing strategies and
// configuration; the first strategy to produce a live window wins.
package display

import (
	"errors"

	"github.com/mullion/mullion/internal/layout"
)

// ErrNoWindow is returned when the pipeline resolves to nothing and the
// configuration does not allow that.
var ErrNoWindow = errors.New("display: no window")

// Workspace is the tree the resolver works against.
type Workspace struct {
	Arena *layout.Arena
}

// WindowRef names one window: a frame plus the node inside its tree.
type WindowRef struct {
	Frame *layout.Frame
	ID    layout.NodeID
}

// Valid reports whether the reference names a window at all.
func (w WindowRef) Valid() bool { return w.Frame != nil && w.ID.Valid() }

// Strategy attempts one placement. It may mutate the tree (split, reuse
// a window, raise a frame); returning false means it declines and the
// pipeline moves on.
type Strategy func(ws *Workspace, c layout.Content, cfg *Config) (WindowRef, bool)

// Action pairs an ordered strategy list with the configuration those
// strategies run under.
type Action struct {
	Strategies []Strategy
	Config     Config
}

// Rule is one entry of the conditional match table.
type Rule struct {
	Match  func(c layout.Content) bool
	Action Action
}

// Resolver assembles and runs display pipelines. Priority order:
// Override, first matching Rule, the caller's action, Default, and the
// fixed fallback.
type Resolver struct {
	Override *Action
	Rules    []Rule
	Default  *Action

	fallback Action
}

// NewResolver returns a resolver with the standard fallback pipeline:
// reuse a window already showing the content, else split one off, else
// take over the least recently used window.
func NewResolver() *Resolver {
	return &Resolver{
		fallback: Action{
			Strategies: []Strategy{ReuseWindow, PopUpWindow, UseLRU},
		},
	}
}

// Display resolves a window for the content and installs the content in
// it. caller may be nil. When every strategy declines, the result is
// ErrNoWindow unless the merged configuration allows resolving to
// nothing, in which case the returned reference is simply not Valid.
func (r *Resolver) Display(ws *Workspace, c layout.Content, caller *Action) (WindowRef, error) {
	var strategies []Strategy
	var cfg Config

	add := func(act *Action) {
		if act == nil {
			return
		}
		strategies = append(strategies, act.Strategies...)
		cfg.merge(&act.Config)
	}

	add(r.Override)
	for i := range r.Rules {
		if r.Rules[i].Match(c) {
			add(&r.Rules[i].Action)
			break
		}
	}
	add(caller)
	add(r.Default)
	add(&r.fallback)

	for _, s := range strategies {
		ref, ok := s(ws, c, &cfg)
		if !ok {
			continue
		}
		r.install(ref, c, &cfg)
		return ref, nil
	}

	if cfg.allowNone() {
		return WindowRef{ID: layout.InvalidID}, nil
	}
	return WindowRef{ID: layout.InvalidID}, ErrNoWindow
}

// install puts the content in the chosen window and applies the
// configured dedication. A window already showing the content is left
// untouched apart from its use tick.
func (r *Resolver) install(ref WindowRef, c layout.Content, cfg *Config) {
	a := ref.Frame.Arena()
	if a.Content(ref.ID) != c {
		a.SetContent(ref.ID, c)
	} else {
		a.Touch(ref.ID)
	}
	if cfg.Dedicate != nil {
		a.SetDedicated(ref.ID, *cfg.Dedicate)
	}
}

// frames returns the frames a reuse strategy may search, selected frame
// first.
func (ws *Workspace) frames(cfg *Config) []*layout.Frame {
	selected := ws.Arena.SelectedFrame()
	switch cfg.reuseScope() {
	case ScopeFrame:
		if cfg.Frame != nil {
			return []*layout.Frame{cfg.Frame}
		}
		return nil
	case ScopeSelected:
		return []*layout.Frame{selected}
	case ScopeVisible:
		out := []*layout.Frame{selected}
		for _, f := range ws.Arena.Frames() {
			if f != selected && f.Visible() {
				out = append(out, f)
			}
		}
		return out
	default: // ScopeAll
		out := []*layout.Frame{selected}
		for _, f := range ws.Arena.Frames() {
			if f != selected {
				out = append(out, f)
			}
		}
		return out
	}
}
