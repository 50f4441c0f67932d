// Package buffer provides the content handles shown inside windows. A
// buffer here is only an identity: a stable ID, a unique name, and the
// display constraints the layout engine asks about. What a buffer holds
// is some other package's business.
package buffer

import (
	"github.com/google/uuid"

	"github.com/mullion/mullion/internal/layout"
)

// Buffer is a displayable piece of content. It satisfies layout.Content.
type Buffer struct {
	id   string
	name string
	kind string
	minW int
	minH int
	live bool
}

var _ layout.Content = (*Buffer)(nil)

// New creates a live buffer. kind is a coarse role label ("file",
// "shell", "log", ...) used for similarity matching; it may be empty.
func New(name, kind string) *Buffer {
	return &Buffer{
		id:   uuid.New().String(),
		name: name,
		kind: kind,
		live: true,
	}
}

// ID returns the buffer's stable identity, unchanged across renames.
func (b *Buffer) ID() string { return b.id }

// Name returns the buffer's current name.
func (b *Buffer) Name() string { return b.name }

// Kind returns the buffer's role label.
func (b *Buffer) Kind() string { return b.kind }

// Live reports whether the buffer is still usable for display.
func (b *Buffer) Live() bool { return b.live }

// MinDisplayWidth returns the buffer's minimum window width in cells.
func (b *Buffer) MinDisplayWidth() int { return b.minW }

// MinDisplayHeight returns the buffer's minimum window height in cells.
func (b *Buffer) MinDisplayHeight() int { return b.minH }

// SetMinDisplaySize sets the smallest window the buffer accepts. Zero
// means no constraint.
func (b *Buffer) SetMinDisplaySize(w, h int) {
	b.minW = w
	b.minH = h
}
