// Package config loads and watches the user configuration: keybindings,
// layout engine limits, display resolver defaults and appearance. The
// file is TOML under the XDG config directory; a missing file is created
// from defaults on first load.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// UserConfig is the top-level configuration file shape.
type UserConfig struct {
	Keybindings KeybindingsConfig `toml:"keybindings"`
	Layout      LayoutConfig      `toml:"layout"`
	Display     DisplayConfig     `toml:"display"`
	Appearance  AppearanceConfig  `toml:"appearance"`
}

// KeybindingsConfig maps actions to key lists, grouped the way the help
// overlay groups them. Multiple keys may be bound to one action.
type KeybindingsConfig struct {
	LeaderKey string              `toml:"leader_key"`
	Window    map[string][]string `toml:"window"`
	Resize    map[string][]string `toml:"resize"`
	Session   map[string][]string `toml:"session"`
}

// LayoutConfig feeds the layout engine's frame limits.
type LayoutConfig struct {
	MinWindowWidth  int  `toml:"min_window_width"`
	MinWindowHeight int  `toml:"min_window_height"`
	PixelExact      bool `toml:"pixel_exact"`

	// Per-edge side window bounds. Zero closes an edge entirely.
	SideBoundLeft   int `toml:"side_bound_left"`
	SideBoundTop    int `toml:"side_bound_top"`
	SideBoundRight  int `toml:"side_bound_right"`
	SideBoundBottom int `toml:"side_bound_bottom"`
}

// DisplayConfig sets the buffer-display resolver's global defaults.
type DisplayConfig struct {
	AllowNone   bool   `toml:"allow_none"`
	PopUpHeight int    `toml:"pop_up_height"` // cells; 0 means half
	SideHeight  int    `toml:"side_height"`   // cells for bottom side windows
	ReuseScope  string `toml:"reuse_scope"`   // selected | visible | all
}

// AppearanceConfig selects the theme and chrome.
type AppearanceConfig struct {
	Theme        string `toml:"theme"`
	BorderStyle  string `toml:"border_style"`
	DimInactive  bool   `toml:"dim_inactive"`
	ShowModeline bool   `toml:"show_modeline"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *UserConfig {
	return &UserConfig{
		Keybindings: KeybindingsConfig{
			LeaderKey: "ctrl+x",
			Window: map[string][]string{
				"split_below":     {"2"},
				"split_right":     {"3"},
				"delete_window":   {"0"},
				"delete_other":    {"1"},
				"next_window":     {"o", "tab"},
				"prev_window":     {"shift+tab"},
				"balance_windows": {"+"},
				"make_atom":       {"a"},
				"dissolve_atom":   {"shift+a"},
			},
			Resize: map[string][]string{
				"grow_height":   {"^"},
				"shrink_height": {"v"},
				"grow_width":    {">"},
				"shrink_width":  {"<"},
			},
			Session: map[string][]string{
				"new_buffer":     {"b"},
				"kill_buffer":    {"k"},
				"save_layout":    {"s"},
				"restore_layout": {"r"},
				"toggle_help":    {"?"},
				"quit":           {"ctrl+c", "q"},
			},
		},
		Layout: LayoutConfig{
			MinWindowWidth:  4,
			MinWindowHeight: 2,
			SideBoundLeft:   2,
			SideBoundTop:    2,
			SideBoundRight:  2,
			SideBoundBottom: 3,
		},
		Display: DisplayConfig{
			PopUpHeight: 0,
			SideHeight:  8,
			ReuseScope:  "selected",
		},
		Appearance: AppearanceConfig{
			Theme:        "dracula",
			BorderStyle:  "rounded",
			DimInactive:  true,
			ShowModeline: true,
		},
	}
}

// GetConfigPath returns the config file path, creating parent
// directories as needed.
func GetConfigPath() (string, error) {
	path, err := xdg.ConfigFile("mullion/config.toml")
	if err != nil {
		return "", fmt.Errorf("config: resolve path: %w", err)
	}
	return path, nil
}

// LoadUserConfig reads the user configuration, overlaying it onto the
// defaults so missing keys keep their built-in values. A missing file is
// created with the default content.
func LoadUserConfig() (*UserConfig, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if werr := WriteDefaultConfig(path); werr != nil {
			return nil, werr
		}
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// WriteDefaultConfig writes the default configuration to path with a
// short explanatory header.
func WriteDefaultConfig(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# Mullion configuration\n")
	sb.WriteString("# Keybindings map actions to arrays of keys; several keys may share\n")
	sb.WriteString("# one action. Layout values feed the window engine's minimums and\n")
	sb.WriteString("# per-edge side window bounds.\n")
	sb.WriteString("#\n")
	sb.WriteString("# Location: " + path + "\n\n")

	data, err := toml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("config: marshal defaults: %w", err)
	}
	sb.Write(data)

	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
