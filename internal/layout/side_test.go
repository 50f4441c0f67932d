package layout_test

import (
	"errors"
	"testing"

	"github.com/mullion/mullion/internal/layout"
)

func TestDisplaySideFirstWindow(t *testing.T) {
	a, f := newTestFrame(t)
	c := content("messages")

	id, err := f.DisplaySide(c, layout.SideBottom, 0, 0, layout.Options{})
	if err != nil {
		t.Fatalf("display side: %v", err)
	}
	if got := a.SideOf(id); got != layout.SideBottom {
		t.Errorf("side = %v, want bottom", got)
	}
	if got := a.Slot(id); got != 0 {
		t.Errorf("slot = %d, want 0", got)
	}
	// Default size is a quarter of the frame body.
	if h := a.PixelHeight(id); h != 10 {
		t.Errorf("height = %d, want 10", h)
	}
	if a.Content(id) != c {
		t.Error("content not installed")
	}
	checkTree(t, a, f)
}

func TestDisplaySideExplicitSize(t *testing.T) {
	a, f := newTestFrame(t)
	id, err := f.DisplaySide(content("log"), layout.SideRight, 0, 25, layout.Options{})
	if err != nil {
		t.Fatalf("display side: %v", err)
	}
	if w := a.PixelWidth(id); w != 25 {
		t.Errorf("width = %d, want 25", w)
	}
	checkTree(t, a, f)
}

func TestDisplaySideReusesExactSlot(t *testing.T) {
	a, f := newTestFrame(t)
	first, err := f.DisplaySide(content("one"), layout.SideBottom, 1, 0, layout.Options{})
	if err != nil {
		t.Fatalf("first display: %v", err)
	}

	c := content("two")
	second, err := f.DisplaySide(c, layout.SideBottom, 1, 0, layout.Options{})
	if err != nil {
		t.Fatalf("second display: %v", err)
	}
	if second != first {
		t.Errorf("slot 1 placed in %v, want reuse of %v", second, first)
	}
	if a.Content(first) != c {
		t.Error("reused window did not take the new content")
	}
	if n := len(f.SideWindows(layout.SideBottom)); n != 1 {
		t.Errorf("bottom edge holds %d windows, want 1", n)
	}
	checkTree(t, a, f)
}

func TestDisplaySideSlotOrdering(t *testing.T) {
	a, f := newTestFrame(t)

	// Created out of order, the edge still lays out by slot left to right.
	for _, slot := range []int{2, 0, 1} {
		if _, err := f.DisplaySide(content("w"), layout.SideBottom, slot, 0, layout.Options{}); err != nil {
			t.Fatalf("slot %d: %v", slot, err)
		}
	}

	wins := f.SideWindows(layout.SideBottom)
	if len(wins) != 3 {
		t.Fatalf("bottom edge holds %d windows, want 3", len(wins))
	}
	lastLeft := -1
	for _, id := range wins {
		left, _, _, _ := a.Edges(id)
		if left <= lastLeft {
			t.Errorf("slot %d at x=%d, out of geometric order", a.Slot(id), left)
		}
		lastLeft = left
	}
	checkTree(t, a, f)
}

func TestDisplaySideBoundReusesNearestSlot(t *testing.T) {
	a, f := newTestFrame(t)
	var bySlot [3]layout.NodeID
	for slot := 0; slot < 3; slot++ {
		id, err := f.DisplaySide(content("w"), layout.SideBottom, slot, 0, layout.Options{})
		if err != nil {
			t.Fatalf("slot %d: %v", slot, err)
		}
		bySlot[slot] = id
	}

	// The bottom edge is full; a far slot lands in the numerically
	// closest window instead of growing the edge.
	c := content("late")
	id, err := f.DisplaySide(c, layout.SideBottom, 10, 0, layout.Options{})
	if err != nil {
		t.Fatalf("display past bound: %v", err)
	}
	if id != bySlot[2] {
		t.Errorf("placed in %v, want nearest-slot window %v", id, bySlot[2])
	}
	if a.Content(id) != c {
		t.Error("reused window did not take the new content")
	}
	if n := len(f.SideWindows(layout.SideBottom)); n != 3 {
		t.Errorf("bottom edge grew to %d windows past its bound", n)
	}
	checkTree(t, a, f)
}

func TestDisplaySideZeroBound(t *testing.T) {
	a := layout.NewArena()
	f := a.NewFrame("nobound", 80, 41, layout.CellMetrics{W: 1, H: 1},
		layout.Limits{MinWidth: 4, MinHeight: 2},
		layout.SideBounds{})

	_, err := f.DisplaySide(content("x"), layout.SideLeft, 0, 0, layout.Options{})
	if !errors.Is(err, layout.ErrSideBound) {
		t.Fatalf("err = %v, want ErrSideBound", err)
	}
}

func TestSideWindowsSkippedByNavigation(t *testing.T) {
	a, f := newTestFrame(t)
	main := f.Root()
	side, err := f.DisplaySide(content("log"), layout.SideBottom, 0, 0, layout.Options{})
	if err != nil {
		t.Fatalf("display side: %v", err)
	}

	order := f.CycleLeaves(layout.Options{})
	for _, id := range order {
		if id == side {
			t.Error("side window appears in ordinary navigation")
		}
	}
	if got := f.NextLeaf(main, layout.Options{}); got != main {
		t.Errorf("next leaf = %v, want %v (nothing else cyclable)", got, main)
	}

	with := f.CycleLeaves(layout.Options{IncludeSide: true})
	found := false
	for _, id := range with {
		if id == side {
			found = true
		}
	}
	if !found {
		t.Error("side window missing even with IncludeSide")
	}
	checkTree(t, a, f)
}

func TestMainWindowIgnoresSideWindows(t *testing.T) {
	a, f := newTestFrame(t)
	main := f.Root()
	if got := f.MainWindow(); got != main {
		t.Fatalf("main window = %v, want root %v", got, main)
	}

	if _, err := f.DisplaySide(content("log"), layout.SideBottom, 0, 0, layout.Options{}); err != nil {
		t.Fatalf("display side: %v", err)
	}
	if got := f.MainWindow(); got != main {
		t.Errorf("main window = %v, want %v after adding a side window", got, main)
	}
	checkTree(t, a, f)
}
