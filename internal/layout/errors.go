package layout

import "errors"

// Sentinel errors returned by tree mutations. Every failing operation
// leaves the tree exactly as it was.
var (
	// ErrTooSmall means a resize or split cannot be satisfied without
	// pushing some window below its minimum size.
	ErrTooSmall = errors.New("layout: window too small")

	// ErrCannotDelete means the target window is protected from the
	// operation: the frame root, the minibuffer, or the frame's main
	// window.
	ErrCannotDelete = errors.New("layout: cannot delete window")

	// ErrNotLeaf means an operation that needs a live window was handed
	// an internal one.
	ErrNotLeaf = errors.New("layout: window is not a leaf")

	// ErrWrongFrame means the window does not belong to the frame the
	// operation was invoked on.
	ErrWrongFrame = errors.New("layout: window belongs to another frame")

	// ErrSideBound means an edge already holds its configured maximum
	// number of side windows.
	ErrSideBound = errors.New("layout: side window bound reached")

	// ErrRootWindow means the operation was aimed at a frame root, whose
	// size is owned by the frame itself.
	ErrRootWindow = errors.New("layout: operation not applicable to the frame root")
)
