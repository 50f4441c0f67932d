package buffer

import (
	"fmt"
	"sync"
)

// Registry tracks live buffers by name and by recency of use. Names are
// unique; creating a second buffer with a taken name gets a numeric
// suffix, the way editors disambiguate.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]*Buffer
	order  []*Buffer // most recently used first
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Buffer)}
}

// Create makes a live buffer with a unique name derived from name and
// registers it as most recently used.
func (r *Registry) Create(name, kind string) *Buffer {
	r.mu.Lock()
	defer r.mu.Unlock()

	unique := name
	for n := 2; ; n++ {
		if _, taken := r.byName[unique]; !taken {
			break
		}
		unique = fmt.Sprintf("%s<%d>", name, n)
	}

	b := New(unique, kind)
	r.byName[unique] = b
	r.order = append([]*Buffer{b}, r.order...)
	return b
}

// Lookup returns the buffer with the exact name.
func (r *Registry) Lookup(name string) (*Buffer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.byName[name]
	return b, ok
}

// Kill marks the named buffer dead and forgets it. Windows still showing
// it see Live() turn false and resolve that through their own policy.
func (r *Registry) Kill(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.byName[name]
	if !ok {
		return fmt.Errorf("kill buffer %q: no such buffer", name)
	}
	b.live = false
	delete(r.byName, name)
	for i, have := range r.order {
		if have == b {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Touch moves the buffer to the front of the use order.
func (r *Registry) Touch(b *Buffer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, have := range r.order {
		if have == b {
			r.order = append(r.order[:i], r.order[i+1:]...)
			r.order = append([]*Buffer{b}, r.order...)
			return
		}
	}
}

// Buffers returns the live buffers, most recently used first.
func (r *Registry) Buffers() []*Buffer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Buffer, len(r.order))
	copy(out, r.order)
	return out
}

// MostSimilar returns the live buffer whose name is closest to name:
// longest shared prefix wins, same kind breaks prefix ties, then use
// order. Nil when the registry is empty. Used when a saved layout names
// a buffer that no longer exists.
func (r *Registry) MostSimilar(name, kind string) *Buffer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var best *Buffer
	bestScore := -1
	for _, b := range r.order {
		score := commonPrefix(b.name, name) * 2
		if kind != "" && b.kind == kind {
			score++
		}
		if score > bestScore {
			best, bestScore = b, score
		}
	}
	return best
}

func commonPrefix(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}
