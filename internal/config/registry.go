package config

import (
	"sort"
	"strings"
)

// KeybindRegistry resolves keys to actions and back, built once from the
// user configuration.
type KeybindRegistry struct {
	actionToKeys map[string][]string
	keyToAction  map[string]string
	normalizer   *KeyNormalizer
}

// NewKeybindRegistry builds a registry from every keybinding section of
// the configuration. Later sections never override an earlier binding of
// the same key.
func NewKeybindRegistry(cfg *UserConfig) *KeybindRegistry {
	r := &KeybindRegistry{
		actionToKeys: make(map[string][]string),
		keyToAction:  make(map[string]string),
		normalizer:   NewKeyNormalizer(),
	}
	for _, section := range []map[string][]string{
		cfg.Keybindings.Window,
		cfg.Keybindings.Resize,
		cfg.Keybindings.Session,
	} {
		actions := make([]string, 0, len(section))
		for action := range section {
			actions = append(actions, action)
		}
		sort.Strings(actions)
		for _, action := range actions {
			for _, key := range section[action] {
				r.bind(action, key)
			}
		}
	}
	return r
}

func (r *KeybindRegistry) bind(action, key string) {
	for _, norm := range r.normalizer.NormalizeKey(key) {
		if _, taken := r.keyToAction[norm]; taken {
			continue
		}
		r.keyToAction[norm] = action
		r.actionToKeys[action] = append(r.actionToKeys[action], norm)
	}
}

// GetAction returns the action bound to key, or "".
func (r *KeybindRegistry) GetAction(key string) string {
	for _, norm := range r.normalizer.NormalizeKey(key) {
		if action, ok := r.keyToAction[norm]; ok {
			return action
		}
	}
	return ""
}

// GetKeys returns the keys bound to action.
func (r *KeybindRegistry) GetKeys(action string) []string {
	return r.actionToKeys[action]
}

// GetKeysForDisplay returns the action's keys joined for help text, ""
// when nothing is bound.
func (r *KeybindRegistry) GetKeysForDisplay(action string) string {
	return strings.Join(r.actionToKeys[action], ", ")
}

// KeyNormalizer folds the spelling variants of key names ("Esc",
// "escape", "RETURN") into canonical forms.
type KeyNormalizer struct {
	aliases map[string][]string
}

// NewKeyNormalizer returns a normalizer with the standard alias table.
func NewKeyNormalizer() *KeyNormalizer {
	return &KeyNormalizer{aliases: map[string][]string{
		"esc":    {"esc", "escape"},
		"escape": {"escape", "esc"},
		"enter":  {"enter", "return"},
		"return": {"return", "enter"},
		"space":  {"space", " "},
	}}
}

// NormalizeKey lowercases the key and expands aliases. The first entry
// is the canonical form.
func (n *KeyNormalizer) NormalizeKey(key string) []string {
	k := strings.ToLower(strings.TrimSpace(key))
	if k == "" {
		return nil
	}
	if alts, ok := n.aliases[k]; ok {
		return alts
	}
	return []string{k}
}

// ValidateKey reports whether the key spelling is usable and, when it is
// not, why.
func (n *KeyNormalizer) ValidateKey(key string) (bool, string) {
	k := strings.TrimSpace(key)
	if k == "" {
		return false, "empty key"
	}
	if strings.HasSuffix(k, "+") {
		return false, "trailing modifier separator"
	}
	return true, ""
}
