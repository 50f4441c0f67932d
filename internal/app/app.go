// Package app wires the layout engine, buffer registry and display
// resolver into an interactive bubbletea program.
package app

import (
	"fmt"
	"time"

	"github.com/mullion/mullion/internal/buffer"
	"github.com/mullion/mullion/internal/config"
	"github.com/mullion/mullion/internal/display"
	"github.com/mullion/mullion/internal/layout"
)

// Notification represents a temporary notification message.
type Notification struct {
	Message   string
	Type      string // "info", "success", "warning", "error"
	StartTime time.Time
	Duration  time.Duration
}

// NotificationDuration is how long a notification stays on screen.
const NotificationDuration = 3 * time.Second

// App is the top level model: one arena of frames, the buffer registry
// backing window contents, and the resolver that places new content.
type App struct {
	Arena    *layout.Arena
	Frame    *layout.Frame
	Buffers  *buffer.Registry
	Resolver *display.Resolver

	Config   *config.UserConfig
	Keybinds *config.KeybindRegistry

	Width  int
	Height int

	// LeaderPending is set after the leader key until the next key
	// resolves (or fails to resolve) an action.
	LeaderPending bool
	LeaderAt      time.Time

	ShowHelp   bool
	HelpScroll int

	Notifications []Notification

	// Echo is the transient minibuffer message.
	Echo   string
	EchoAt time.Time

	// StatePath is where save_layout and restore_layout read and write
	// the layout snapshot.
	StatePath string

	// System stats shown on the right of the minibuffer.
	CPUHistory    []float64
	LastCPUUpdate time.Time
	RAMUsage      float64
	LastRAMUpdate time.Time

	scratchSerial int
}

// New builds the initial application state. The frame starts at a
// nominal size and is resized on the first WindowSizeMsg.
func New(cfg *config.UserConfig, statePath string) *App {
	arena := layout.NewArena()
	frame := arena.NewFrame("main", 80, 24,
		layout.CellMetrics{W: 1, H: 1},
		layout.Limits{
			MinWidth:  cfg.Layout.MinWindowWidth,
			MinHeight: cfg.Layout.MinWindowHeight,
		},
		layout.SideBounds{
			Left:   cfg.Layout.SideBoundLeft,
			Top:    cfg.Layout.SideBoundTop,
			Right:  cfg.Layout.SideBoundRight,
			Bottom: cfg.Layout.SideBoundBottom,
		},
	)

	buffers := buffer.NewRegistry()
	scratch := buffers.Create("*scratch*", "text")
	arena.SetContent(frame.Selected(), scratch)

	m := &App{
		Arena:     arena,
		Frame:     frame,
		Buffers:   buffers,
		Resolver:  display.NewResolver(),
		Config:    cfg,
		Keybinds:  config.NewKeybindRegistry(cfg),
		StatePath: statePath,
	}
	m.configureResolver()
	return m
}

// configureResolver rebuilds the resolver's default action and rule
// table from the loaded configuration.
func (m *App) configureResolver() {
	def := display.Action{}
	switch m.Config.Display.ReuseScope {
	case "visible":
		def.Config.Reuse = display.Ptr(display.ScopeVisible)
	case "all":
		def.Config.Reuse = display.Ptr(display.ScopeAll)
	}
	if m.Config.Display.PopUpHeight > 0 {
		def.Config.Height = display.Ptr(display.Cells(m.Config.Display.PopUpHeight))
	}
	if m.Config.Display.AllowNone {
		def.Config.AllowNone = display.Ptr(true)
	}
	m.Resolver.Default = &def

	// Log-style buffers go to a bottom side window instead of popping up
	// over the main tree.
	sideHeight := m.Config.Display.SideHeight
	m.Resolver.Rules = []display.Rule{
		{
			Match: func(c layout.Content) bool {
				b, ok := c.(*buffer.Buffer)
				return ok && (b.Kind() == "log" || b.Kind() == "sysinfo")
			},
			Action: display.Action{
				Strategies: []display.Strategy{display.UseSideWindow},
				Config: display.Config{
					Side:   display.Ptr(layout.SideBottom),
					Height: display.Ptr(display.Cells(sideHeight)),
				},
			},
		},
	}
}

// Workspace returns the resolver view of the arena.
func (m *App) Workspace() *display.Workspace {
	return &display.Workspace{Arena: m.Arena}
}

// Say sets the transient minibuffer message.
func (m *App) Say(format string, args ...any) {
	m.Echo = fmt.Sprintf(format, args...)
	m.EchoAt = time.Now()
}

// ShowNotification queues a temporary notification.
func (m *App) ShowNotification(message, notifType string) {
	m.Notifications = append(m.Notifications, Notification{
		Message:   message,
		Type:      notifType,
		StartTime: time.Now(),
		Duration:  NotificationDuration,
	})
}

// CleanupNotifications removes expired notifications.
func (m *App) CleanupNotifications() {
	now := time.Now()
	var active []Notification
	for _, notif := range m.Notifications {
		if now.Sub(notif.StartTime) < notif.Duration {
			active = append(active, notif)
		}
	}
	m.Notifications = active
}

// SelectedBuffer returns the buffer shown in the selected window, nil
// when the window is empty.
func (m *App) SelectedBuffer() *buffer.Buffer {
	c := m.Arena.Content(m.Frame.Selected())
	if b, ok := c.(*buffer.Buffer); ok {
		return b
	}
	return nil
}

// bufferSource adapts the registry to the restore resolver interface.
type bufferSource struct {
	reg *buffer.Registry
}

func (s bufferSource) Lookup(name string) (layout.Content, bool) {
	b, ok := s.reg.Lookup(name)
	if !ok || !b.Live() {
		return nil, false
	}
	return b, true
}

func (s bufferSource) MostSimilar(name string) layout.Content {
	if b := s.reg.MostSimilar(name, ""); b != nil {
		return b
	}
	return nil
}
