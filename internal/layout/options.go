package layout

// Options carries the call-scoped overrides a single mutation may need.
// The zero value is the default behavior. Options are passed explicitly,
// never stored.
type Options struct {
	// IgnoreMinimums relaxes configured and content-preferred minimum
	// sizes down to the safe floor of one line by two columns.
	IgnoreMinimums bool

	// PixelExact skips rounding sizes to whole character cells.
	PixelExact bool

	// Nest forces Split to insert a new parent combination even when the
	// target's existing combination runs along the requested axis.
	Nest bool

	// InsideAtom lets an operation address a member of an atomic group
	// directly instead of being redirected to the group root.
	InsideAtom bool

	// IncludeSide makes navigation and full-frame sweeps treat side
	// windows like ordinary windows.
	IncludeSide bool
}
