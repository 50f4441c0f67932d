package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/mullion/mullion/internal/layout"
	"github.com/mullion/mullion/internal/state"
)

// Execute runs one named action against the current frame. Unknown
// actions are reported in the minibuffer.
func (m *App) Execute(action string) tea.Cmd {
	f := m.Frame
	a := m.Arena
	sel := f.Selected()

	switch action {
	case "split_below":
		m.split(sel, layout.SideBottom)

	case "split_right":
		m.split(sel, layout.SideRight)

	case "delete_window":
		if err := f.Delete(sel, layout.Options{}); err != nil {
			m.Say("Cannot delete window: %v", err)
		}

	case "delete_other":
		if err := f.DeleteOther(sel, layout.Options{}); err != nil {
			m.Say("Cannot delete other windows: %v", err)
		}

	case "next_window":
		if next := f.NextLeaf(sel, layout.Options{}); next.Valid() && next != sel {
			_ = f.Select(next)
		}

	case "prev_window":
		if prev := f.PrevLeaf(sel, layout.Options{}); prev.Valid() && prev != sel {
			_ = f.Select(prev)
		}

	case "balance_windows":
		if err := f.Balance(f.Root(), layout.Options{}); err != nil {
			m.Say("Cannot balance: %v", err)
		}

	case "make_atom":
		parent := a.Parent(sel)
		if !parent.Valid() {
			m.Say("Window has no parent group")
			break
		}
		if err := a.MakeAtom(parent); err != nil {
			m.Say("Cannot make atom: %v", err)
		} else {
			m.Say("Atom group created")
		}

	case "dissolve_atom":
		root := a.AtomRoot(sel)
		if root == sel && !a.InAtom(sel) {
			m.Say("Window is not in an atom group")
			break
		}
		a.DissolveAtom(root)
		m.Say("Atom group dissolved")

	case "grow_height":
		m.resize(sel, 1, false)
	case "shrink_height":
		m.resize(sel, -1, false)
	case "grow_width":
		m.resize(sel, 1, true)
	case "shrink_width":
		m.resize(sel, -1, true)

	case "new_buffer":
		m.scratchSerial++
		b := m.Buffers.Create(fmt.Sprintf("scratch-%d", m.scratchSerial), "text")
		ref, err := m.Resolver.Display(m.Workspace(), b, nil)
		if err != nil {
			m.Say("Cannot display %s: %v", b.Name(), err)
			break
		}
		if ref.Valid() {
			_ = ref.Frame.Select(ref.ID)
		}

	case "kill_buffer":
		m.killSelectedBuffer()

	case "save_layout":
		m.saveLayout()

	case "restore_layout":
		m.restoreLayout()

	case "toggle_help":
		m.ShowHelp = !m.ShowHelp
		m.HelpScroll = 0

	case "quit":
		return tea.Quit

	default:
		m.Say("Unbound action: %s", action)
	}
	return nil
}

// split divides the selected window in half and shows the same buffer
// in the new window, keeping selection where it was.
func (m *App) split(sel layout.NodeID, side layout.Side) {
	newWin, err := m.Frame.Split(sel, 0, side, layout.Options{})
	if err != nil {
		m.Say("Cannot split: %v", err)
		return
	}
	if c := m.Arena.Content(sel); c != nil {
		m.Arena.SetContent(newWin, c)
	}
}

// resize grows or shrinks the selected window by n cells on one axis.
func (m *App) resize(sel layout.NodeID, n int, horizontal bool) {
	cellW, cellH := m.Frame.CellSize()
	delta := n * cellH
	if horizontal {
		delta = n * cellW
	}
	if err := m.Frame.ResizeWindow(sel, delta, horizontal, layout.Options{}); err != nil {
		m.Say("Cannot resize: %v", err)
	}
}

// killSelectedBuffer kills the buffer shown in the selected window and
// swaps every window showing it to the most similar live buffer.
func (m *App) killSelectedBuffer() {
	b := m.SelectedBuffer()
	if b == nil {
		m.Say("Selected window has no buffer")
		return
	}
	name, kind := b.Name(), b.Kind()
	if err := m.Buffers.Kill(name); err != nil {
		m.Say("Cannot kill %s: %v", name, err)
		return
	}

	var substitute layout.Content
	if sub := m.Buffers.MostSimilar(name, kind); sub != nil {
		substitute = sub
	}
	for _, id := range m.Frame.CycleLeaves(layout.Options{IncludeSide: true}) {
		if m.Arena.Content(id) == b {
			m.Arena.SetContent(id, substitute)
		}
	}
	m.Say("Killed buffer %s", name)
}

func (m *App) saveLayout() {
	snap := state.Capture(m.Frame, m.Frame.Root(), true)

	file, err := os.Create(m.StatePath)
	if err != nil {
		m.Say("Cannot save layout: %v", err)
		return
	}
	defer file.Close()

	if err := snap.Encode(file); err != nil {
		m.Say("Cannot save layout: %v", err)
		return
	}
	m.ShowNotification(fmt.Sprintf("Layout saved to %s", m.StatePath), "success")
}

func (m *App) restoreLayout() {
	file, err := os.Open(m.StatePath)
	if err != nil {
		m.Say("No saved layout: %v", err)
		return
	}
	defer file.Close()

	snap, err := state.Decode(file)
	if err != nil {
		m.Say("Cannot read layout: %v", err)
		return
	}

	// Collapse to a single window so the snapshot replaces the whole
	// tree rather than one leaf of it.
	sel := m.Frame.Selected()
	if err := m.Frame.DeleteOther(sel, layout.Options{}); err != nil {
		m.Say("Cannot restore layout: %v", err)
		return
	}

	err = state.Restore(m.Frame, m.Frame.Selected(), snap, state.RestoreOptions{
		Policy:   state.SwitchToSimilar,
		Resolver: bufferSource{reg: m.Buffers},
	})
	if err != nil {
		m.Say("Restore failed: %v", err)
		return
	}
	m.ShowNotification("Layout restored", "success")
}
