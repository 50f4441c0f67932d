package config_test

import (
	"testing"

	"github.com/mullion/mullion/internal/config"
)

// =============================================================================
// Default Configuration Tests
// =============================================================================

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig returned nil")
	}
	if cfg.Keybindings.LeaderKey == "" {
		t.Error("Expected default leader key to be set")
	}
	if cfg.Layout.MinWindowWidth < 2 || cfg.Layout.MinWindowHeight < 1 {
		t.Errorf("Default window minimums %dx%d below the safe floor",
			cfg.Layout.MinWindowWidth, cfg.Layout.MinWindowHeight)
	}
	if cfg.Layout.SideBoundBottom < 1 {
		t.Error("Expected the bottom edge to allow side windows by default")
	}
	if cfg.Appearance.Theme == "" {
		t.Error("Expected default theme to be set")
	}
}

func TestDefaultKeybindings(t *testing.T) {
	cfg := config.DefaultConfig()

	requiredActions := []string{
		"split_below",
		"split_right",
		"delete_window",
		"next_window",
		"prev_window",
	}
	for _, action := range requiredActions {
		keys, ok := cfg.Keybindings.Window[action]
		if !ok {
			t.Errorf("Expected %s keybinding to exist", action)
			continue
		}
		if len(keys) == 0 {
			t.Errorf("Expected %s to have at least one key bound", action)
		}
	}
}

// =============================================================================
// KeybindRegistry Tests
// =============================================================================

func TestKeybindRegistry_GetKeys(t *testing.T) {
	registry := config.NewKeybindRegistry(config.DefaultConfig())

	keys := registry.GetKeys("split_below")
	if len(keys) == 0 {
		t.Error("Expected split_below to have keys")
	}
}

func TestKeybindRegistry_GetAction(t *testing.T) {
	registry := config.NewKeybindRegistry(config.DefaultConfig())

	keys := registry.GetKeys("split_below")
	if len(keys) == 0 {
		t.Skip("No keys bound to split_below")
	}
	action := registry.GetAction(keys[0])
	if action != "split_below" {
		t.Errorf("Expected action 'split_below', got %q", action)
	}
}

func TestKeybindRegistry_GetKeysForDisplay(t *testing.T) {
	registry := config.NewKeybindRegistry(config.DefaultConfig())

	display := registry.GetKeysForDisplay("next_window")
	if display == "" {
		t.Error("Expected display string for next_window")
	}
}

func TestKeybindRegistry_UnknownAction(t *testing.T) {
	registry := config.NewKeybindRegistry(config.DefaultConfig())

	keys := registry.GetKeys("nonexistent_action")
	if len(keys) != 0 {
		t.Errorf("Expected empty keys for nonexistent action, got %v", keys)
	}
}

func TestKeybindRegistry_UnknownKey(t *testing.T) {
	registry := config.NewKeybindRegistry(config.DefaultConfig())

	action := registry.GetAction("ctrl+shift+alt+super+hyper+x")
	if action != "" {
		t.Errorf("Expected empty action for unbound key, got %q", action)
	}
}

func TestKeybindRegistry_FirstBindingWins(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Keybindings.Window = map[string][]string{
		"alpha_action": {"z"},
		"beta_action":  {"z"},
	}
	registry := config.NewKeybindRegistry(cfg)

	if action := registry.GetAction("z"); action != "alpha_action" {
		t.Errorf("Expected the first bound action to keep the key, got %q", action)
	}
}

// =============================================================================
// Key Normalizer Tests
// =============================================================================

func TestKeyNormalizer(t *testing.T) {
	normalizer := config.NewKeyNormalizer()

	tests := []struct {
		input    string
		expected string
	}{
		{"ctrl+a", "ctrl+a"},
		{"Ctrl+A", "ctrl+a"},
		{"CTRL+A", "ctrl+a"},
		{"escape", "escape"},
		{"enter", "enter"},
		{"esc", "esc"},
		{"Return", "enter"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got := normalizer.NormalizeKey(tc.input)
			if len(got) == 0 {
				t.Errorf("NormalizeKey(%q) returned empty slice", tc.input)
				return
			}
			found := false
			for _, k := range got {
				if k == tc.expected {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("NormalizeKey(%q) = %v, want to contain %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestKeyNormalizer_ValidateKey(t *testing.T) {
	normalizer := config.NewKeyNormalizer()

	tests := []struct {
		input   string
		isValid bool
	}{
		{"ctrl+a", true},
		{"n", true},
		{"enter", true},
		{"esc", true},
		{"tab", true},
		{"", false},
		{"ctrl+", false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			valid, _ := normalizer.ValidateKey(tc.input)
			if valid != tc.isValid {
				t.Errorf("ValidateKey(%q) = %v, want %v", tc.input, valid, tc.isValid)
			}
		})
	}
}

// =============================================================================
// Help Sections Tests
// =============================================================================

func TestGetKeybindings(t *testing.T) {
	sections := config.GetKeybindings(nil)
	if len(sections) == 0 {
		t.Fatal("Expected help sections from the default configuration")
	}
	for _, s := range sections {
		if s.Title == "" {
			t.Error("Help section without a title")
		}
		if len(s.Bindings) == 0 {
			t.Errorf("Help section %q has no bindings", s.Title)
		}
	}
}

func TestActionDescriptions(t *testing.T) {
	requiredDescriptions := []string{
		"split_below",
		"delete_window",
		"balance_windows",
		"toggle_help",
		"quit",
	}
	for _, action := range requiredDescriptions {
		desc, ok := config.ActionDescriptions[action]
		if !ok {
			t.Errorf("Expected description for action %q", action)
			continue
		}
		if desc == "" {
			t.Errorf("Description for %q should not be empty", action)
		}
	}
}

// =============================================================================
// Benchmarks
// =============================================================================

func BenchmarkKeybindRegistry_GetAction(b *testing.B) {
	registry := config.NewKeybindRegistry(config.DefaultConfig())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = registry.GetAction("o")
	}
}

func BenchmarkNormalizeKey(b *testing.B) {
	normalizer := config.NewKeyNormalizer()
	keys := []string{"ctrl+a", "Ctrl+Shift+B", "alt+1", "return"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = normalizer.NormalizeKey(keys[i%len(keys)])
	}
}
