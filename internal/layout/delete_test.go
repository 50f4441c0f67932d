package layout_test

import (
	"errors"
	"testing"

	"github.com/mullion/mullion/internal/layout"
)

// ============================================================================
// Deleting windows
// ============================================================================

func TestDeleteRestoresPreSplitSize(t *testing.T) {
	a, f := newTestFrame(t)
	orig := f.Root()
	_, _, w0, h0 := a.Edges(orig)

	nw, err := f.Split(orig, 0, layout.SideBottom, layout.Options{})
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if err := f.Delete(nw, layout.Options{}); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if f.Root() != orig {
		t.Errorf("root = %v, want the original leaf %v", f.Root(), orig)
	}
	if _, _, w, h := a.Edges(orig); w != w0 || h != h0 {
		t.Errorf("size = %dx%d, want the pre-split %dx%d", w, h, w0, h0)
	}
	if a.Alive(nw) {
		t.Error("deleted window still alive")
	}
	checkTree(t, a, f)
}

func TestDeletePrevSiblingAbsorbs(t *testing.T) {
	a, f := newTestFrame(t)
	left := f.Root()

	mid, err := f.Split(left, 0, layout.SideRight, layout.Options{})
	if err != nil {
		t.Fatalf("first split: %v", err)
	}
	right, err := f.Split(mid, 0, layout.SideRight, layout.Options{})
	if err != nil {
		t.Fatalf("second split: %v", err)
	}

	// 40 | 20 | 20; deleting the middle window hands its width to the
	// previous sibling.
	if err := f.Delete(mid, layout.Options{}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if w := a.PixelWidth(left); w != 60 {
		t.Errorf("left width = %d, want 60", w)
	}
	if w := a.PixelWidth(right); w != 20 {
		t.Errorf("right width = %d, want 20", w)
	}
	checkTree(t, a, f)
}

func TestDeleteFixedSiblingSkipped(t *testing.T) {
	a, f := newTestFrame(t)
	left := f.Root()
	mid, _ := f.Split(left, 0, layout.SideRight, layout.Options{})
	right, _ := f.Split(mid, 0, layout.SideRight, layout.Options{})
	a.SetFixedSize(left, layout.FixedWidth)

	if err := f.Delete(mid, layout.Options{}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if w := a.PixelWidth(left); w != 40 {
		t.Errorf("fixed-width window resized: width = %d, want 40", w)
	}
	if w := a.PixelWidth(right); w != 40 {
		t.Errorf("right width = %d, want 40", w)
	}
	checkTree(t, a, f)
}

func TestDeleteCollapsesSingleChildCombination(t *testing.T) {
	a, f := newTestFrame(t)
	top := f.Root()
	bottom, _ := f.Split(top, 0, layout.SideBottom, layout.Options{})
	extra, err := f.Split(bottom, 0, layout.SideRight, layout.Options{})
	if err != nil {
		t.Fatalf("nested split: %v", err)
	}

	if err := f.Delete(extra, layout.Options{}); err != nil {
		t.Fatalf("delete: %v", err)
	}

	// The horizontal combination held only bottom once extra was gone, so
	// bottom must have taken its place under the root combination.
	if got := a.Parent(bottom); got != f.Root() {
		t.Errorf("parent of survivor = %v, want frame root %v", got, f.Root())
	}
	if k := a.Kind(f.Root()); k != layout.KindVertical {
		t.Errorf("root kind = %v, want vsplit", k)
	}
	if w := a.PixelWidth(bottom); w != 80 {
		t.Errorf("survivor width = %d, want 80", w)
	}
	checkTree(t, a, f)
}

func TestDeleteRootAndMinibufferRejected(t *testing.T) {
	_, f := newTestFrame(t)

	if err := f.Delete(f.Root(), layout.Options{}); !errors.Is(err, layout.ErrCannotDelete) {
		t.Errorf("deleting the only window: err = %v, want ErrCannotDelete", err)
	}
	if err := f.Delete(f.Minibuffer(), layout.Options{}); !errors.Is(err, layout.ErrCannotDelete) {
		t.Errorf("deleting the minibuffer: err = %v, want ErrCannotDelete", err)
	}
}

func TestDeleteMainWindowRejected(t *testing.T) {
	a, f := newTestFrame(t)
	main := f.Root()
	side, err := f.DisplaySide(content("log"), layout.SideBottom, 0, 0, layout.Options{})
	if err != nil {
		t.Fatalf("display side: %v", err)
	}

	// The side window pushed the main window below the root; it still
	// may not be deleted, or the frame would show only side windows.
	if err := f.Delete(main, layout.Options{}); !errors.Is(err, layout.ErrCannotDelete) {
		t.Errorf("deleting the main window: err = %v, want ErrCannotDelete", err)
	}
	if !a.Alive(main) {
		t.Fatal("main window gone after a rejected delete")
	}

	// The side window itself stays deletable.
	if err := f.Delete(side, layout.Options{}); err != nil {
		t.Fatalf("deleting the side window: %v", err)
	}
	if f.Root() != main {
		t.Errorf("root = %v, want %v", f.Root(), main)
	}
	checkTree(t, a, f)
}

func TestDeleteSelectedPicksMostRecentlyUsed(t *testing.T) {
	a, f := newTestFrame(t)
	first := f.Root()
	second, _ := f.Split(first, 0, layout.SideBottom, layout.Options{})
	third, _ := f.Split(second, 0, layout.SideBottom, layout.Options{})

	a.Touch(first)
	a.Touch(second)
	if err := f.Select(third); err != nil {
		t.Fatalf("select: %v", err)
	}

	if err := f.Delete(third, layout.Options{}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := f.Selected(); got != second {
		t.Errorf("selected = %v, want most recently used %v", got, second)
	}
	checkTree(t, a, f)
}

// ============================================================================
// Deleting everything else
// ============================================================================

func TestDeleteOther(t *testing.T) {
	a, f := newTestFrame(t)
	keep := f.Root()
	b, _ := f.Split(keep, 0, layout.SideBottom, layout.Options{})
	c, _ := f.Split(b, 0, layout.SideRight, layout.Options{})
	d, _ := f.Split(keep, 0, layout.SideRight, layout.Options{})

	if err := f.DeleteOther(keep, layout.Options{}); err != nil {
		t.Fatalf("delete other: %v", err)
	}
	for _, gone := range []layout.NodeID{b, c, d} {
		if a.Alive(gone) {
			t.Errorf("window %v survived DeleteOther", gone)
		}
	}
	if f.Root() != keep {
		t.Errorf("root = %v, want sole survivor %v", f.Root(), keep)
	}
	if _, _, w, h := a.Edges(keep); w != 80 || h != 40 {
		t.Errorf("survivor size = %dx%d, want 80x40", w, h)
	}
	checkTree(t, a, f)
}

func TestDeleteOtherSparesProtectedWindows(t *testing.T) {
	a, f := newTestFrame(t)
	keep := f.Root()
	protected, _ := f.Split(keep, 0, layout.SideBottom, layout.Options{})
	victim, _ := f.Split(protected, 0, layout.SideRight, layout.Options{})

	p := a.WindowParams(protected)
	p.NoDelete = true
	a.SetWindowParams(protected, p)

	if err := f.DeleteOther(keep, layout.Options{}); err != nil {
		t.Fatalf("delete other: %v", err)
	}
	if !a.Alive(protected) {
		t.Error("window with the no-delete parameter was deleted")
	}
	if a.Alive(victim) {
		t.Error("unprotected window survived")
	}
	checkTree(t, a, f)
}

// ============================================================================
// Deletion and atomic groups
// ============================================================================

func TestDeleteAtomMemberDeletesGroup(t *testing.T) {
	a, f := newTestFrame(t)
	top := f.Root()
	bl, _ := f.Split(top, 0, layout.SideBottom, layout.Options{})
	br, _ := f.Split(bl, 0, layout.SideRight, layout.Options{})

	group := a.Parent(bl)
	if err := a.MakeAtom(group); err != nil {
		t.Fatalf("make atom: %v", err)
	}

	if err := f.Delete(br, layout.Options{}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if a.Alive(bl) || a.Alive(br) {
		t.Error("deleting one member left part of the atomic group alive")
	}
	if f.Root() != top {
		t.Errorf("root = %v, want %v", f.Root(), top)
	}
	if _, _, _, h := a.Edges(top); h != 40 {
		t.Errorf("surviving window height = %d, want 40", h)
	}
	checkTree(t, a, f)
}

func TestDeleteInsideAtom(t *testing.T) {
	a, f := newTestFrame(t)
	top := f.Root()
	bl, _ := f.Split(top, 0, layout.SideBottom, layout.Options{})
	br, _ := f.Split(bl, 0, layout.SideRight, layout.Options{})

	if err := a.MakeAtom(a.Parent(bl)); err != nil {
		t.Fatalf("make atom: %v", err)
	}
	if err := f.Delete(br, layout.Options{InsideAtom: true}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !a.Alive(bl) {
		t.Fatal("other group member was deleted")
	}
	// A group of one is dissolved rather than kept half-tagged.
	if a.InAtom(bl) {
		t.Error("sole survivor still tagged as an atomic member")
	}
	checkTree(t, a, f)
}
