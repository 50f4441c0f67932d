package config

// Keybinding is one key-to-description pair shown in help.
type Keybinding struct {
	Key         string
	Description string
}

// KeybindingSection groups related keybindings for the help overlay.
type KeybindingSection struct {
	Title    string
	Bindings []Keybinding
}

// ActionDescriptions names every bindable action for help and the
// keybinds listing.
var ActionDescriptions = map[string]string{
	"split_below":     "Split window below",
	"split_right":     "Split window right",
	"delete_window":   "Delete window",
	"delete_other":    "Delete other windows",
	"next_window":     "Select next window",
	"prev_window":     "Select previous window",
	"balance_windows": "Balance window sizes",
	"make_atom":       "Group windows atomically",
	"dissolve_atom":   "Dissolve atomic group",
	"grow_height":     "Grow window height",
	"shrink_height":   "Shrink window height",
	"grow_width":      "Grow window width",
	"shrink_width":    "Shrink window width",
	"new_buffer":      "Create buffer",
	"kill_buffer":     "Kill buffer",
	"save_layout":     "Save layout to disk",
	"restore_layout":  "Restore saved layout",
	"toggle_help":     "Toggle help",
	"quit":            "Quit",
}

// GetKeybindings returns the help sections. With a registry the keys
// come from the user configuration; without one the built-in defaults
// are shown.
func GetKeybindings(registry *KeybindRegistry) []KeybindingSection {
	if registry == nil {
		registry = NewKeybindRegistry(DefaultConfig())
	}

	sections := []KeybindingSection{}

	windows := KeybindingSection{Title: "WINDOWS"}
	for _, action := range []string{
		"split_below", "split_right", "delete_window", "delete_other",
		"next_window", "prev_window", "balance_windows",
		"make_atom", "dissolve_atom",
	} {
		addBinding(&windows, registry, action)
	}
	if len(windows.Bindings) > 0 {
		sections = append(sections, windows)
	}

	resize := KeybindingSection{Title: "RESIZE"}
	for _, action := range []string{
		"grow_height", "shrink_height", "grow_width", "shrink_width",
	} {
		addBinding(&resize, registry, action)
	}
	if len(resize.Bindings) > 0 {
		sections = append(sections, resize)
	}

	session := KeybindingSection{Title: "SESSION"}
	for _, action := range []string{
		"new_buffer", "kill_buffer", "save_layout", "restore_layout",
		"toggle_help", "quit",
	} {
		addBinding(&session, registry, action)
	}
	if len(session.Bindings) > 0 {
		sections = append(sections, session)
	}

	return sections
}

// addBinding appends the action's help row when it has keys configured.
func addBinding(section *KeybindingSection, registry *KeybindRegistry, action string) {
	keys := registry.GetKeysForDisplay(action)
	if keys == "" {
		return
	}
	desc := ActionDescriptions[action]
	if desc == "" {
		desc = action
	}
	section.Bindings = append(section.Bindings, Keybinding{Key: keys, Description: desc})
}
