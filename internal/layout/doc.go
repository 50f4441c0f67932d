// Package layout implements the window tree at the heart of mullion: a
// frame is tiled by rectangular windows arranged in nested horizontal and
// vertical combinations. The package owns the tree structure, proportional
// resize arithmetic, split/delete mutations, atomic grouping and
// edge-anchored side windows.
//
// Windows live in a slot-indexed arena. Parent, child and sibling
// relationships are NodeID indices into the arena rather than pointers, so
// the tree carries no reference cycles and a window handle stays valid for
// as long as the window is alive.
//
// All mutations are synchronous and single-threaded. Operations that can
// fail validate their preconditions up front and leave the tree untouched
// on error. Behavior that callers may need to vary per call (ignoring
// minimum sizes, forcing a nested split) is carried in an explicit Options
// value, never in package-level state.
package layout
