package app_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mullion/mullion/internal/app"
	"github.com/mullion/mullion/internal/config"
	"github.com/mullion/mullion/internal/layout"
)

func newTestApp(t *testing.T) *app.App {
	t.Helper()
	m := app.New(config.DefaultConfig(), filepath.Join(t.TempDir(), "layout.yaml"))
	m.Frame.Resize(80, 41)
	return m
}

func leaves(m *app.App) []layout.NodeID {
	return m.Frame.CycleLeaves(layout.Options{IncludeSide: true})
}

// =============================================================================
// Window Action Tests
// =============================================================================

func TestSplitBelowSharesBuffer(t *testing.T) {
	m := newTestApp(t)
	sel := m.Frame.Selected()
	scratch := m.Arena.Content(sel)

	m.Execute("split_below")

	ls := leaves(m)
	if len(ls) != 2 {
		t.Fatalf("Expected 2 windows after split, got %d", len(ls))
	}
	for _, id := range ls {
		if m.Arena.Content(id) != scratch {
			t.Error("Expected both windows to show the same buffer")
		}
	}
	if m.Frame.Selected() != sel {
		t.Error("Expected selection to stay on the original window")
	}
}

func TestSplitRightGeometry(t *testing.T) {
	m := newTestApp(t)

	m.Execute("split_right")

	ls := leaves(m)
	if len(ls) != 2 {
		t.Fatalf("Expected 2 windows, got %d", len(ls))
	}
	if got := m.Arena.Cols(ls[0]); got != 40 {
		t.Errorf("Expected left window 40 cols, got %d", got)
	}
	if got := m.Arena.Cols(ls[1]); got != 40 {
		t.Errorf("Expected right window 40 cols, got %d", got)
	}
}

func TestDeleteWindow(t *testing.T) {
	m := newTestApp(t)
	m.Execute("split_below")
	m.Execute("delete_window")

	if got := len(leaves(m)); got != 1 {
		t.Errorf("Expected 1 window after delete, got %d", got)
	}
}

func TestDeleteSoleWindowReportsError(t *testing.T) {
	m := newTestApp(t)
	m.Execute("delete_window")

	if got := len(leaves(m)); got != 1 {
		t.Fatalf("Expected the sole window to survive, got %d windows", got)
	}
	if m.Echo == "" {
		t.Error("Expected an error message in the echo area")
	}
}

func TestDeleteOtherWindows(t *testing.T) {
	m := newTestApp(t)
	m.Execute("split_below")
	m.Execute("split_right")
	m.Execute("delete_other")

	if got := len(leaves(m)); got != 1 {
		t.Errorf("Expected 1 window after delete_other, got %d", got)
	}
}

func TestWindowCycling(t *testing.T) {
	m := newTestApp(t)
	m.Execute("split_below")
	first := m.Frame.Selected()

	m.Execute("next_window")
	second := m.Frame.Selected()
	if second == first {
		t.Fatal("Expected next_window to move selection")
	}

	m.Execute("prev_window")
	if m.Frame.Selected() != first {
		t.Error("Expected prev_window to move selection back")
	}
}

func TestBalanceWindows(t *testing.T) {
	m := newTestApp(t)
	m.Execute("split_below")
	// Skew the split before balancing.
	if err := m.Frame.ResizeWindow(m.Frame.Selected(), 10, false, layout.Options{}); err != nil {
		t.Fatalf("ResizeWindow failed: %v", err)
	}

	m.Execute("balance_windows")

	ls := leaves(m)
	if m.Arena.Lines(ls[0]) != m.Arena.Lines(ls[1]) {
		t.Errorf("Expected balanced heights, got %d and %d",
			m.Arena.Lines(ls[0]), m.Arena.Lines(ls[1]))
	}
}

// =============================================================================
// Resize Action Tests
// =============================================================================

func TestResizeActions(t *testing.T) {
	m := newTestApp(t)
	m.Execute("split_below")
	sel := m.Frame.Selected()
	before := m.Arena.Lines(sel)

	m.Execute("grow_height")
	if got := m.Arena.Lines(sel); got != before+1 {
		t.Errorf("Expected height %d after grow, got %d", before+1, got)
	}

	m.Execute("shrink_height")
	if got := m.Arena.Lines(sel); got != before {
		t.Errorf("Expected height %d after shrink, got %d", before, got)
	}
}

func TestResizeSoleWindowReportsError(t *testing.T) {
	m := newTestApp(t)
	m.Execute("grow_height")

	if m.Echo == "" {
		t.Error("Expected resizing the sole window to report an error")
	}
}

// =============================================================================
// Atom Action Tests
// =============================================================================

func TestMakeAndDissolveAtom(t *testing.T) {
	m := newTestApp(t)
	m.Execute("split_below")
	sel := m.Frame.Selected()

	m.Execute("make_atom")
	if !m.Arena.InAtom(sel) {
		t.Fatal("Expected the selected window to be in an atom group")
	}

	m.Execute("dissolve_atom")
	if m.Arena.InAtom(sel) {
		t.Error("Expected the atom group to be dissolved")
	}
}

func TestMakeAtomOnRootReportsError(t *testing.T) {
	m := newTestApp(t)
	m.Execute("make_atom")

	if m.Arena.InAtom(m.Frame.Selected()) {
		t.Error("Expected no atom group for a sole window")
	}
	if m.Echo == "" {
		t.Error("Expected an error message in the echo area")
	}
}

// =============================================================================
// Buffer Action Tests
// =============================================================================

func TestNewBufferDisplaysAndSelects(t *testing.T) {
	m := newTestApp(t)
	m.Execute("new_buffer")

	if got := len(m.Buffers.Buffers()); got != 2 {
		t.Fatalf("Expected 2 buffers, got %d", got)
	}
	b := m.SelectedBuffer()
	if b == nil {
		t.Fatal("Expected the new buffer to be selected")
	}
	if b.Name() != "scratch-1" {
		t.Errorf("Expected buffer scratch-1, got %q", b.Name())
	}
	if got := len(leaves(m)); got != 2 {
		t.Errorf("Expected the new buffer to pop up a second window, got %d windows", got)
	}
}

func TestKillBufferSwapsToSimilar(t *testing.T) {
	m := newTestApp(t)
	m.Execute("new_buffer")

	killed := m.SelectedBuffer()
	m.Execute("kill_buffer")

	if killed.Live() {
		t.Error("Expected the killed buffer to be dead")
	}
	b := m.SelectedBuffer()
	if b == nil {
		t.Fatal("Expected a substitute buffer in the window")
	}
	if b.Name() != "*scratch*" {
		t.Errorf("Expected substitute *scratch*, got %q", b.Name())
	}
}

// =============================================================================
// Layout Persistence Tests
// =============================================================================

func TestSaveAndRestoreLayout(t *testing.T) {
	m := newTestApp(t)
	m.Execute("split_below")
	m.Execute("split_right")
	want := len(leaves(m))

	m.Execute("save_layout")
	if _, err := os.Stat(m.StatePath); err != nil {
		t.Fatalf("Expected saved layout file: %v", err)
	}

	m.Execute("delete_other")
	if got := len(leaves(m)); got != 1 {
		t.Fatalf("Expected 1 window before restore, got %d", got)
	}

	m.Execute("restore_layout")
	if got := len(leaves(m)); got != want {
		t.Errorf("Expected %d windows after restore, got %d", want, got)
	}
}

func TestRestoreWithoutSavedLayoutReportsError(t *testing.T) {
	m := newTestApp(t)
	m.Execute("restore_layout")

	if m.Echo == "" {
		t.Error("Expected an error message when no saved layout exists")
	}
}

// =============================================================================
// Misc Action Tests
// =============================================================================

func TestToggleHelp(t *testing.T) {
	m := newTestApp(t)
	m.Execute("toggle_help")
	if !m.ShowHelp {
		t.Fatal("Expected help to be shown")
	}
	m.Execute("toggle_help")
	if m.ShowHelp {
		t.Error("Expected help to be hidden again")
	}
}

func TestUnknownActionReports(t *testing.T) {
	m := newTestApp(t)
	m.Execute("warp_window")
	if m.Echo == "" {
		t.Error("Expected unknown action to be reported")
	}
}
