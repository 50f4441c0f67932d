package app

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/mullion/mullion/internal/config"
)

// TickerMsg represents a periodic tick event for updating the UI.
type TickerMsg time.Time

// ConfigReloadedMsg carries a freshly loaded configuration from the
// file watcher.
type ConfigReloadedMsg struct {
	Config *config.UserConfig
}

// tickInterval drives minibuffer expiry, notification cleanup and the
// system stats refresh. A layout manager has no animating content so a
// few frames per second are plenty.
const tickInterval = 250 * time.Millisecond

// leaderTimeout cancels a pending leader key that is never followed up.
const leaderTimeout = 5 * time.Second

// echoTimeout clears a minibuffer message.
const echoTimeout = 4 * time.Second

// TickCmd creates the periodic tick command.
func TickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickerMsg(t)
	})
}

// Init starts the tick timer.
func (m *App) Init() tea.Cmd {
	return TickCmd()
}

// Update handles all incoming messages and updates the application state.
func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickerMsg:
		m.CleanupNotifications()
		m.UpdateCPUHistory()
		m.UpdateRAMUsage()
		if m.Echo != "" && time.Since(m.EchoAt) > echoTimeout {
			m.Echo = ""
		}
		if m.LeaderPending && time.Since(m.LeaderAt) > leaderTimeout {
			m.LeaderPending = false
		}
		return m, TickCmd()

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Frame.Resize(msg.Width, msg.Height)
		return m, nil

	case ConfigReloadedMsg:
		m.Config = msg.Config
		m.Keybinds = config.NewKeybindRegistry(msg.Config)
		m.configureResolver()
		m.ShowNotification("Configuration reloaded", "info")
		return m, nil

	case tea.MouseMsg:
		return m, nil
	}

	return m, nil
}

// handleKey dispatches one key press. All actions sit behind the leader
// key; ctrl+c always quits.
func (m *App) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return m, tea.Quit
	}

	if m.ShowHelp {
		switch key {
		case "up", "k":
			if m.HelpScroll > 0 {
				m.HelpScroll--
			}
		case "down", "j":
			m.HelpScroll++
		default:
			m.ShowHelp = false
		}
		return m, nil
	}

	if m.LeaderPending {
		m.LeaderPending = false
		action := m.Keybinds.GetAction(key)
		if action == "" {
			m.Say("%s %s is undefined", m.Config.Keybindings.LeaderKey, key)
			return m, nil
		}
		return m, m.Execute(action)
	}

	if key == m.Config.Keybindings.LeaderKey {
		m.LeaderPending = true
		m.LeaderAt = time.Now()
		return m, nil
	}

	return m, nil
}
