// Package theme provides color themes and styling for the mullion UI.
package theme

import (
	"fmt"
	"image/color"

	"charm.land/lipgloss/v2"
	tint "github.com/lrstanley/bubbletint/v2"
)

var enabled bool

// Initialize sets up the theme registry with the specified theme name.
// Call this once at application startup.
// If themeName is empty, theming will be disabled and standard terminal colors will be used.
func Initialize(themeName string) error {
	// If no theme specified, disable theming
	if themeName == "" {
		enabled = false
		return nil
	}

	enabled = true
	tint.NewDefaultRegistry()

	// Try to set the theme by ID
	ok := tint.SetTintID(themeName)
	if !ok {
		// Theme not found, set to default
		tint.SetTintID("default")
	}

	return nil
}

// IsEnabled returns true if theming is enabled
func IsEnabled() bool {
	return enabled
}

// Current returns the currently active theme.
// Returns nil if theming is disabled.
func Current() *tint.Tint {
	if !enabled {
		return nil
	}
	return tint.Current()
}

// Background and foreground for the workspace canvas
func CanvasFg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#e5e5e5")
	}
	return t.Fg
}

func CanvasBg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#000000")
	}
	return t.Bg
}

// Window border colors
func BorderUnselected() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#7f7f7f")
	}
	return t.BrightBlack
}

func BorderSelected() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#AFFFFF")
	}
	return t.BrightCyan
}

// Side windows get a distinct border so the edge slots read as chrome
// rather than ordinary splits.
func BorderSide() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#cd00cd")
	}
	return t.Purple
}

// Atom group members share one border color regardless of selection.
func BorderAtom() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#cdcd00")
	}
	return t.Yellow
}

// Dedicated windows are marked in the modeline with this accent.
func DedicatedAccent() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#ff0000")
	}
	return t.BrightRed
}

// Modeline colors
func ModelineBg() color.Color {
	return lipgloss.Color("#2a2a3e")
}

func ModelineFg() color.Color {
	return lipgloss.Color("#a0a0a8")
}

func ModelineSelectedBg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#1a3a4e")
	}
	return t.Blue
}

func ModelineSelectedFg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#ffffff")
	}
	return t.BrightWhite
}

// Minibuffer colors
func MinibufferFg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#e5e5e5")
	}
	return t.Fg
}

func MinibufferPrompt() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#00cdcd")
	}
	return t.Cyan
}

func MinibufferError() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#ff0000")
	}
	return t.BrightRed
}

// Leader-key pending indicator shown while a prefix is active.
func LeaderPendingFg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#cd0000")
	}
	return t.Red
}

// Notification colors
func NotificationError() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#cd0000")
	}
	return t.Red
}

func NotificationWarning() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#cdcd00")
	}
	return t.Yellow
}

func NotificationSuccess() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#00cd00")
	}
	return t.Green
}

func NotificationInfo() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#0000ee")
	}
	return t.Blue
}

// Help overlay colors
func HelpKeyBadge() color.Color {
	return lipgloss.Color("5")
}

func HelpKeyBadgeBg() color.Color {
	return lipgloss.Color("0")
}

func HelpGray() color.Color {
	return lipgloss.Color("8")
}

func HelpBorder() color.Color {
	return lipgloss.Color("14")
}

func HelpTitle() color.Color {
	return lipgloss.Color("11")
}

func HelpBg() color.Color {
	return lipgloss.Color("#1a1a2e")
}

// Buffer list colors
func BufferListTitle() color.Color {
	return lipgloss.Color("14")
}

func BufferListLive() color.Color {
	return lipgloss.Color("10")
}

func BufferListDead() color.Color {
	return lipgloss.Color("9")
}

func BufferListDim() color.Color {
	return lipgloss.Color("8")
}

// System info side window colors
func SysInfoLabel() color.Color {
	return lipgloss.Color("11")
}

func SysInfoValue() color.Color {
	return lipgloss.Color("10")
}

// CLI table colors
func CLITableHeader() color.Color {
	return lipgloss.Color("12")
}

func CLITableBorder() color.Color {
	return lipgloss.Color("14")
}

func CLITableKey() color.Color {
	return lipgloss.Color("11")
}

func CLITableDim() color.Color {
	return lipgloss.Color("8")
}

// ColorToString converts a color.Color to a hex string for places where
// colors are stored as strings, such as saved layout metadata.
func ColorToString(c color.Color) string {
	if c == nil {
		return "#000000"
	}
	r, g, b, _ := c.RGBA()
	// RGBA returns values in range 0-65535, convert to 0-255
	r8, g8, b8 := uint8(r>>8), uint8(g>>8), uint8(b>>8)
	// Format as hex string
	return fmt.Sprintf("#%02x%02x%02x", r8, g8, b8)
}
