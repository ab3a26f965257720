package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps single keys to commands.
// Keys use tea.KeyMsg.String() notation ("q", "tab", "ctrl+c"), except
// space, which is spelled "SPC".
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	order        []string // registration order, for stable help output
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
	}
}

// Bind registers a key to a command.
// Overwrites any existing binding for the key.
func (r *KeybindRegistry) Bind(k string, cmd tea.Cmd) {
	r.BindWithDesc(k, cmd, "")
}

// BindWithDesc registers a key with a description for the help footer.
// Keys bound without a description are live but hidden from help.
func (r *KeybindRegistry) BindWithDesc(k string, cmd tea.Cmd, desc string) {
	n := normalizeKey(k)
	if _, ok := r.bindings[n]; !ok {
		r.order = append(r.order, n)
	}
	r.bindings[n] = cmd
	if desc != "" {
		r.descriptions[n] = desc
	} else {
		delete(r.descriptions, n)
	}
}

// Lookup returns the command for a key, or nil if not bound.
func (r *KeybindRegistry) Lookup(k string) tea.Cmd {
	return r.bindings[normalizeKey(k)]
}

// Handle dispatches a key press. consumed is true when the key is bound.
func (r *KeybindRegistry) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	if c := r.Lookup(msg.String()); c != nil {
		return true, c
	}
	return false, nil
}

// Hints returns described bindings in registration order.
func (r *KeybindRegistry) Hints() []key.Binding {
	out := make([]key.Binding, 0, len(r.order))
	for _, k := range r.order {
		desc, ok := r.descriptions[k]
		if !ok || r.bindings[k] == nil {
			continue
		}
		out = append(out, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, desc),
		))
	}
	return out
}

// normalizeKey converts tea key strings to our canonical format.
func normalizeKey(k string) string {
	if k == " " || k == "space" {
		return "SPC"
	}
	return strings.TrimSpace(k)
}

// KeyMap implements help.KeyMap over a KeybindRegistry.
type KeyMap struct {
	registry *KeybindRegistry
}

// NewKeyMap creates a KeyMap for the given registry.
func NewKeyMap(registry *KeybindRegistry) help.KeyMap {
	return &KeyMap{registry: registry}
}

// ShortHelp implements help.KeyMap.
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.registry == nil {
		return nil
	}
	return km.registry.Hints()
}

// FullHelp implements help.KeyMap. Returns a single column.
func (km *KeyMap) FullHelp() [][]key.Binding {
	short := km.ShortHelp()
	if len(short) == 0 {
		return nil
	}
	return [][]key.Binding{short}
}
