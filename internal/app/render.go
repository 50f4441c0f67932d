package app

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mullion/mullion/internal/buffer"
	"github.com/mullion/mullion/internal/layout"
	"github.com/mullion/mullion/internal/theme"
)

// getBorder maps the configured border style name to a lipgloss border.
func (m *App) getBorder() lipgloss.Border {
	switch m.Config.Appearance.BorderStyle {
	case "double":
		return lipgloss.DoubleBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "normal":
		return lipgloss.NormalBorder()
	default:
		return lipgloss.RoundedBorder()
	}
}

// borderColor picks the border color for one window.
func (m *App) borderColor(id layout.NodeID, selected bool) color.Color {
	switch {
	case selected:
		return theme.BorderSelected()
	case m.Arena.SideOf(id) != layout.SideNone:
		return theme.BorderSide()
	case m.Arena.InAtom(id):
		return theme.BorderAtom()
	default:
		return theme.BorderUnselected()
	}
}

// renderWindow draws one leaf window at its tree geometry.
func (m *App) renderWindow(id layout.NodeID, selected bool) *lipgloss.Layer {
	a := m.Arena
	left, top, width, height := a.Edges(id)
	if width < 2 || height < 2 {
		return nil
	}

	innerW := width - 2
	innerH := height - 2

	name := ""
	kind := ""
	if b, ok := a.Content(id).(*buffer.Buffer); ok {
		name = b.Name()
		kind = b.Kind()
		if !b.Live() {
			name += " (dead)"
		}
	}

	var body strings.Builder
	if name != "" {
		body.WriteString(lipgloss.NewStyle().Bold(true).Render(truncate(name, innerW)))
	} else {
		body.WriteString(lipgloss.NewStyle().Foreground(theme.BufferListDim()).Render("(no buffer)"))
	}

	// Modeline occupies the last inner line.
	bodyLines := innerH
	if m.Config.Appearance.ShowModeline && innerH > 1 {
		bodyLines = innerH - 1
	}

	content := lipgloss.NewStyle().
		Width(innerW).
		Height(bodyLines).
		Render(body.String())

	if m.Config.Appearance.ShowModeline && innerH > 1 {
		content += "\n" + m.renderModeline(id, name, kind, innerW, selected)
	}

	fg := theme.CanvasFg()
	if m.Config.Appearance.DimInactive && !selected {
		fg = theme.BufferListDim()
	}

	box := lipgloss.NewStyle().
		Foreground(fg).
		Border(m.getBorder()).
		BorderForeground(m.borderColor(id, selected)).
		Render(content)

	z := 0
	if selected {
		z = 1
	}
	return lipgloss.NewLayer(box).X(left).Y(top).Z(z).ID(fmt.Sprintf("win-%d", id))
}

// renderModeline draws one window's status line.
func (m *App) renderModeline(id layout.NodeID, name, kind string, width int, selected bool) string {
	a := m.Arena

	marks := ""
	if a.Dedicated(id) != layout.DedicatedNone {
		marks += "!"
	}
	if f := a.FixedSize(id); f != layout.FixedNone {
		marks += "#"
	}
	if a.SideOf(id) != layout.SideNone {
		marks += fmt.Sprintf("%s%d", a.SideOf(id), a.Slot(id))
	}

	label := fmt.Sprintf(" %s", name)
	if kind != "" {
		label += fmt.Sprintf("  [%s]", kind)
	}
	if marks != "" {
		label += "  " + marks
	}

	bg := theme.ModelineBg()
	fg := theme.ModelineFg()
	if selected {
		bg = theme.ModelineSelectedBg()
		fg = theme.ModelineSelectedFg()
	}
	if a.Dedicated(id) != layout.DedicatedNone {
		fg = theme.DedicatedAccent()
	}

	return lipgloss.NewStyle().
		Background(bg).
		Foreground(fg).
		Width(width).
		Render(truncate(label, width))
}

// renderMinibuffer draws the echo area with system stats on the right.
func (m *App) renderMinibuffer(width int) string {
	left := m.Echo
	if m.LeaderPending {
		left = lipgloss.NewStyle().
			Foreground(theme.LeaderPendingFg()).
			Render(m.Config.Keybindings.LeaderKey + "-")
	}

	right := m.GetCPUGraph() + "  " + m.GetRAMUsage()
	rightStyled := lipgloss.NewStyle().Foreground(theme.SysInfoValue()).Render(right)

	pad := width - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 1 {
		return truncate(left, width)
	}
	return left + strings.Repeat(" ", pad) + rightStyled
}

func (m *App) renderNotifications() []*lipgloss.Layer {
	var layers []*lipgloss.Layer
	y := 1
	for i, notif := range m.Notifications {
		var fg color.Color
		switch notif.Type {
		case "error":
			fg = theme.NotificationError()
		case "warning":
			fg = theme.NotificationWarning()
		case "success":
			fg = theme.NotificationSuccess()
		default:
			fg = theme.NotificationInfo()
		}

		box := lipgloss.NewStyle().
			Border(m.getBorder()).
			BorderForeground(fg).
			Padding(0, 1).
			Render(notif.Message)

		w := lipgloss.Width(box)
		x := m.Width - w - 2
		if x < 0 {
			x = 0
		}
		layers = append(layers, lipgloss.NewLayer(box).
			X(x).Y(y).Z(50+i).
			ID(fmt.Sprintf("notif-%d", i)))
		y += lipgloss.Height(box)
	}
	return layers
}

// GetCanvas composes every window, the minibuffer and the overlays.
func (m *App) GetCanvas() *lipgloss.Canvas {
	canvas := lipgloss.NewCanvas(m.Width, m.Height)
	var layers []*lipgloss.Layer

	sel := m.Frame.Selected()
	for _, id := range m.Frame.CycleLeaves(layout.Options{IncludeSide: true}) {
		if layer := m.renderWindow(id, id == sel); layer != nil {
			layers = append(layers, layer)
		}
	}

	miniTop := m.Frame.Lines() - 1
	mini := m.renderMinibuffer(m.Frame.Cols())
	layers = append(layers, lipgloss.NewLayer(mini).X(0).Y(miniTop).Z(10).ID("minibuffer"))

	if m.ShowHelp {
		layers = append(layers, m.renderHelpOverlay())
	}
	layers = append(layers, m.renderNotifications()...)

	canvas.Compose(lipgloss.NewCompositor(layers...))
	return canvas
}

// View returns the rendered view.
func (m *App) View() tea.View {
	var view tea.View
	view.SetContent(lipgloss.Sprint(m.GetCanvas().Render()))
	view.AltScreen = true
	return view
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	if len(runes) <= 3 || width <= 3 {
		return string(runes[:min(len(runes), width)])
	}
	return string(runes[:width-3]) + "..."
}
