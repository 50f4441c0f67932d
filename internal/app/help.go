package app

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mullion/mullion/internal/config"
	"github.com/mullion/mullion/internal/theme"
)

// renderHelpOverlay builds the centered help layer listing every bound
// action, grouped the same way the keybinds CLI listing groups them.
func (m *App) renderHelpOverlay() *lipgloss.Layer {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.HelpTitle())
	keyStyle := lipgloss.NewStyle().
		Foreground(theme.HelpKeyBadge()).
		Background(theme.HelpKeyBadgeBg()).
		Padding(0, 1)
	descStyle := lipgloss.NewStyle().
		Foreground(theme.HelpGray())

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("mullion keybindings"))
	sb.WriteString("\n")
	sb.WriteString(descStyle.Render("leader: " + m.Config.Keybindings.LeaderKey))
	sb.WriteString("\n\n")

	for _, section := range config.GetKeybindings(m.Keybinds) {
		sb.WriteString(titleStyle.Render(section.Title))
		sb.WriteString("\n")
		for _, b := range section.Bindings {
			sb.WriteString("  ")
			sb.WriteString(keyStyle.Render(b.Key))
			sb.WriteString("  ")
			sb.WriteString(descStyle.Render(b.Description))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	sb.WriteString(descStyle.Render("press any key to close"))

	content := sb.String()

	// Apply scroll by dropping leading lines, keeping the heading fixed
	// would complicate the overlay; the whole body scrolls.
	if m.HelpScroll > 0 {
		lines := strings.Split(content, "\n")
		if m.HelpScroll >= len(lines) {
			m.HelpScroll = len(lines) - 1
		}
		content = strings.Join(lines[m.HelpScroll:], "\n")
	}

	maxH := m.Height - 4
	if maxH > 4 {
		lines := strings.Split(content, "\n")
		if len(lines) > maxH {
			content = strings.Join(lines[:maxH], "\n")
		}
	}

	box := lipgloss.NewStyle().
		Border(m.getBorder()).
		BorderForeground(theme.HelpBorder()).
		Padding(1, 2).
		Render(content)

	x := (m.Width - lipgloss.Width(box)) / 2
	y := (m.Height - lipgloss.Height(box)) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return lipgloss.NewLayer(box).X(x).Y(y).Z(100).ID("help")
}
