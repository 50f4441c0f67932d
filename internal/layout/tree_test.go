package layout_test

import (
	"errors"
	"testing"

	"github.com/mullion/mullion/internal/layout"
)

func TestCycleLeavesAndWrap(t *testing.T) {
	_, f := newTestFrame(t)
	first := f.Root()
	second, _ := f.Split(first, 0, layout.SideBottom, layout.Options{})
	third, _ := f.Split(second, 0, layout.SideRight, layout.Options{})

	order := f.CycleLeaves(layout.Options{})
	if len(order) != 3 {
		t.Fatalf("cycle holds %d windows, want 3", len(order))
	}
	if order[0] != first || order[1] != second || order[2] != third {
		t.Errorf("cycle order = %v, want [%v %v %v]", order, first, second, third)
	}

	if got := f.NextLeaf(third, layout.Options{}); got != first {
		t.Errorf("next after last = %v, want wrap to %v", got, first)
	}
	if got := f.PrevLeaf(first, layout.Options{}); got != third {
		t.Errorf("prev before first = %v, want wrap to %v", got, third)
	}
}

func TestCycleExcludesNoOtherWindows(t *testing.T) {
	a, f := newTestFrame(t)
	first := f.Root()
	second, _ := f.Split(first, 0, layout.SideBottom, layout.Options{})

	p := a.WindowParams(second)
	p.NoOther = true
	a.SetWindowParams(second, p)

	for _, id := range f.CycleLeaves(layout.Options{}) {
		if id == second {
			t.Error("no-other window appears in the cycle")
		}
	}
	if got := f.NextLeaf(first, layout.Options{}); got != first {
		t.Errorf("next leaf = %v, want %v", got, first)
	}
}

func TestUseOrdering(t *testing.T) {
	a, f := newTestFrame(t)
	first := f.Root()
	second, _ := f.Split(first, 0, layout.SideBottom, layout.Options{})
	third, _ := f.Split(second, 0, layout.SideRight, layout.Options{})

	a.Touch(second)
	a.Touch(third)
	a.Touch(first)

	if got := f.MostRecentlyUsed(layout.InvalidID, layout.Options{}); got != first {
		t.Errorf("most recently used = %v, want %v", got, first)
	}
	if got := f.MostRecentlyUsed(first, layout.Options{}); got != third {
		t.Errorf("most recently used excluding %v = %v, want %v", first, got, third)
	}
	if got := f.LeastRecentlyUsed(layout.InvalidID, layout.Options{}); got != second {
		t.Errorf("least recently used = %v, want %v", got, second)
	}
}

func TestLargestLeaf(t *testing.T) {
	_, f := newTestFrame(t)
	big := f.Root()
	small, _ := f.Split(big, -10, layout.SideBottom, layout.Options{})

	if got := f.LargestLeaf(layout.InvalidID, layout.Options{}); got != big {
		t.Errorf("largest leaf = %v, want %v", got, big)
	}
	if got := f.LargestLeaf(big, layout.Options{}); got != small {
		t.Errorf("largest leaf excluding %v = %v, want %v", big, got, small)
	}
}

func TestWindowAt(t *testing.T) {
	_, f := newTestFrame(t)
	top := f.Root()
	bottom, _ := f.Split(top, 0, layout.SideBottom, layout.Options{})

	if got := f.WindowAt(5, 5); got != top {
		t.Errorf("window at (5,5) = %v, want %v", got, top)
	}
	if got := f.WindowAt(5, 25); got != bottom {
		t.Errorf("window at (5,25) = %v, want %v", got, bottom)
	}
	if got := f.WindowAt(500, 500); got.Valid() {
		t.Errorf("window at (500,500) = %v, want none", got)
	}
}

func TestFindContent(t *testing.T) {
	a, f := newTestFrame(t)
	top := f.Root()
	bottom, _ := f.Split(top, 0, layout.SideBottom, layout.Options{})

	c := content("target")
	a.SetContent(bottom, c)

	if got := f.FindContent(c); got != bottom {
		t.Errorf("find content = %v, want %v", got, bottom)
	}
	if got := f.FindContent(content("absent")); got.Valid() {
		t.Errorf("find absent content = %v, want none", got)
	}
}

func TestSelectRejectsIneligibleWindows(t *testing.T) {
	a, f := newTestFrame(t)
	f.Split(f.Root(), 0, layout.SideBottom, layout.Options{})

	if err := f.Select(f.Root()); !errors.Is(err, layout.ErrNotLeaf) {
		t.Errorf("selecting a combination: err = %v, want ErrNotLeaf", err)
	}

	before := f.Selected()
	if err := f.Select(f.Minibuffer()); !errors.Is(err, layout.ErrCannotDelete) {
		t.Errorf("selecting the minibuffer: err = %v, want ErrCannotDelete", err)
	}
	if f.Selected() != before {
		t.Error("rejected selection changed the selected window")
	}

	other := a.NewFrame("other", 40, 21, layout.CellMetrics{W: 1, H: 1},
		layout.Limits{MinWidth: 4, MinHeight: 2}, layout.SideBounds{})
	if err := f.Select(other.Root()); !errors.Is(err, layout.ErrWrongFrame) {
		t.Errorf("selecting another frame's window: err = %v, want ErrWrongFrame", err)
	}
}

// ============================================================================
// Frames
// ============================================================================

func TestArenaFrames(t *testing.T) {
	a, f := newTestFrame(t)
	if got := a.SelectedFrame(); got != f {
		t.Fatalf("selected frame = %v, want the first frame", got)
	}

	g := a.NewFrame("second", 40, 21, layout.CellMetrics{W: 1, H: 1},
		layout.Limits{MinWidth: 4, MinHeight: 2}, layout.SideBounds{})
	if n := len(a.Frames()); n != 2 {
		t.Fatalf("arena holds %d frames, want 2", n)
	}

	a.SelectFrame(g)
	if got := a.SelectedFrame(); got != g {
		t.Errorf("selected frame = %v, want %v", got, g)
	}

	if err := a.DeleteFrame(g); err != nil {
		t.Fatalf("delete frame: %v", err)
	}
	if n := len(a.Frames()); n != 1 {
		t.Errorf("arena holds %d frames after delete, want 1", n)
	}
	if a.Alive(g.Root()) {
		t.Error("deleted frame's windows still alive")
	}

	if err := a.DeleteFrame(f); !errors.Is(err, layout.ErrCannotDelete) {
		t.Errorf("deleting the last frame: err = %v, want ErrCannotDelete", err)
	}
}
