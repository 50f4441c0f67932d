package display

import (
	"github.com/mullion/mullion/internal/layout"
)

// SizeSpec expresses a desired window size: an absolute cell count, a
// fraction of the available space, or a callback computing cells from
// the available total. Zero value means "no preference".
type SizeSpec struct {
	cells    int
	fraction float64
	fn       func(total int) int
}

// Cells asks for an absolute size.
func Cells(n int) SizeSpec { return SizeSpec{cells: n} }

// Fraction asks for a share of the available space.
func Fraction(x float64) SizeSpec { return SizeSpec{fraction: x} }

// ByFunc computes the size from the available total at resolution time.
func ByFunc(fn func(total int) int) SizeSpec { return SizeSpec{fn: fn} }

// Resolve turns the size spec into cells given the available total. Zero
// when it holds no preference.
func (s SizeSpec) Resolve(total int) int {
	switch {
	case s.fn != nil:
		return s.fn(total)
	case s.cells > 0:
		return s.cells
	case s.fraction > 0:
		return int(s.fraction * float64(total))
	}
	return 0
}

// Scope bounds which frames a reuse strategy may search.
type Scope uint8

const (
	// ScopeSelected searches only the selected frame.
	ScopeSelected Scope = iota
	// ScopeVisible searches every visible frame.
	ScopeVisible
	// ScopeAll searches every frame.
	ScopeAll
	// ScopeFrame searches one specific frame, named in Config.Frame.
	ScopeFrame
)

// Config is the resolver's merged option record. Pointer fields
// distinguish "unset" from an explicit zero; merging is first-write-wins
// per key across the action chain.
type Config struct {
	Height *SizeSpec
	Width  *SizeSpec

	// Dedicate marks the chosen window dedicated to the content.
	Dedicate *layout.Dedication

	// Reuse bounds the frame search of reuse strategies.
	Reuse *Scope
	// Frame is the specific frame searched under ScopeFrame.
	Frame *layout.Frame

	// InhibitSameWindow forbids resolving to the selected window.
	InhibitSameWindow *bool

	// AllowNone permits the pipeline to legitimately resolve to no
	// window at all.
	AllowNone *bool

	// Side and Slot direct the side-window strategy.
	Side *layout.Side
	Slot *int
}

// merge fills dst's unset keys from src. Earlier writes win.
func (dst *Config) merge(src *Config) {
	if src == nil {
		return
	}
	if dst.Height == nil {
		dst.Height = src.Height
	}
	if dst.Width == nil {
		dst.Width = src.Width
	}
	if dst.Dedicate == nil {
		dst.Dedicate = src.Dedicate
	}
	if dst.Reuse == nil {
		dst.Reuse = src.Reuse
	}
	if dst.Frame == nil {
		dst.Frame = src.Frame
	}
	if dst.InhibitSameWindow == nil {
		dst.InhibitSameWindow = src.InhibitSameWindow
	}
	if dst.AllowNone == nil {
		dst.AllowNone = src.AllowNone
	}
	if dst.Side == nil {
		dst.Side = src.Side
	}
	if dst.Slot == nil {
		dst.Slot = src.Slot
	}
}

func (c *Config) reuseScope() Scope {
	if c.Reuse == nil {
		return ScopeSelected
	}
	return *c.Reuse
}

func (c *Config) inhibitSame() bool {
	return c.InhibitSameWindow != nil && *c.InhibitSameWindow
}

func (c *Config) allowNone() bool {
	return c.AllowNone != nil && *c.AllowNone
}

// Ptr is a small helper for filling Config's optional fields.
func Ptr[T any](v T) *T { return &v }
