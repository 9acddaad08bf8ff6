// Package keymap maps keys to commands per UI context. Bindings are
// declarative so user overrides from config can rebind any key, and the
// help view and command palette can enumerate what is available.
package keymap

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Binding associates a key with a command in a context.
type Binding struct {
	Key     string
	Command string
	Context string
}

// Command is a named action the app can execute. Commands are
// dispatched as messages so the model owns all state changes.
type Command struct {
	ID          string
	Name        string
	Description string
	Context     string
}

// ExecMsg is emitted when a bound key or palette entry triggers a
// command. The app's Update switches on CommandID.
type ExecMsg struct {
	CommandID string
}

// Exec returns a command that delivers an ExecMsg.
func Exec(commandID string) tea.Cmd {
	return func() tea.Msg {
		return ExecMsg{CommandID: commandID}
	}
}

// Registry holds bindings and commands. Lookup order is the active
// context first, then global. Multi-key sequences ("g g") are resolved
// by buffering the pending prefix.
type Registry struct {
	bindings  map[string]map[string]string // context -> key -> command ID
	commands  map[string]Command
	overrides map[string]string // key -> command ID, from user config
	pending   string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		bindings:  make(map[string]map[string]string),
		commands:  make(map[string]Command),
		overrides: make(map[string]string),
	}
}

// RegisterBinding adds a key binding. A later registration for the
// same context and key wins.
func (r *Registry) RegisterBinding(b Binding) {
	ctx := b.Context
	if ctx == "" {
		ctx = "global"
	}
	if r.bindings[ctx] == nil {
		r.bindings[ctx] = make(map[string]string)
	}
	r.bindings[ctx][b.Key] = b.Command
}

// RegisterCommand adds a command definition.
func (r *Registry) RegisterCommand(cmd Command) {
	r.commands[cmd.ID] = cmd
}

// GetCommand looks up a command by ID.
func (r *Registry) GetCommand(id string) (Command, bool) {
	cmd, ok := r.commands[id]
	return cmd, ok
}

// SetUserOverride rebinds a key to a command across all contexts.
// Overrides come from the keymap.overrides config section.
func (r *Registry) SetUserOverride(key, commandID string) {
	r.overrides[key] = commandID
}

// Handle resolves a key press in the given context. It returns a
// command that delivers an ExecMsg, or nil if the key is unbound. A
// prefix of a multi-key sequence returns nil while the registry waits
// for the next key.
func (r *Registry) Handle(msg tea.KeyMsg, context string) tea.Cmd {
	key := msg.String()

	candidate := key
	if r.pending != "" {
		candidate = r.pending + " " + key
	}

	if id, ok := r.resolve(candidate, context); ok {
		r.pending = ""
		return Exec(id)
	}
	if r.isPrefix(candidate, context) {
		r.pending = candidate
		return nil
	}

	// The buffered prefix led nowhere. Retry the bare key so a stray
	// "g" followed by "j" still moves the cursor.
	if r.pending != "" {
		r.pending = ""
		if id, ok := r.resolve(key, context); ok {
			return Exec(id)
		}
		if r.isPrefix(key, context) {
			r.pending = key
			return nil
		}
	}
	return nil
}

func (r *Registry) resolve(key, context string) (string, bool) {
	if id, ok := r.overrides[key]; ok {
		return id, true
	}
	if id, ok := r.bindings[context][key]; ok {
		return id, true
	}
	if context != "global" {
		if id, ok := r.bindings["global"][key]; ok {
			return id, true
		}
	}
	return "", false
}

func (r *Registry) isPrefix(key, context string) bool {
	prefix := key + " "
	for _, ctx := range []string{context, "global"} {
		for bound := range r.bindings[ctx] {
			if strings.HasPrefix(bound, prefix) {
				return true
			}
		}
	}
	return false
}

// BindingsForContext returns the bindings visible in a context,
// including global ones, sorted by key for stable display.
func (r *Registry) BindingsForContext(context string) []Binding {
	seen := make(map[string]bool)
	var out []Binding
	for _, ctx := range []string{context, "global"} {
		for key, id := range r.bindings[ctx] {
			if seen[key] {
				continue
			}
			seen[key] = true
			if override, ok := r.overrides[key]; ok {
				id = override
			}
			out = append(out, Binding{Key: key, Command: id, Context: ctx})
		}
		if context == "global" {
			break
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// KeysForCommand returns the keys bound to a command in a context, in
// sorted order. Used for footer hints.
func (r *Registry) KeysForCommand(commandID, context string) []string {
	var keys []string
	for _, b := range r.BindingsForContext(context) {
		if b.Command == commandID {
			keys = append(keys, b.Key)
		}
	}
	return keys
}

// Commands returns all registered commands sorted by name. The palette
// lists these.
func (r *Registry) Commands() []Command {
	out := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		out = append(out, cmd)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
