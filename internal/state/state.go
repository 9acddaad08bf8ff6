// Package state persists UI preferences between sessions. Notes
// themselves are never written here.
package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// State holds persistent user preferences.
type State struct {
	SortOrder     string `json:"sortOrder"`               // "newest", "oldest", or "title"
	ProjectFilter string `json:"projectFilter,omitempty"` // last active project filter
	ListWidth     int    `json:"listWidth,omitempty"`     // list pane width in columns (0 = default)
	WrapEnabled   bool   `json:"wrapEnabled"`             // wrap long lines in read mode
}

var (
	current *State
	mu      sync.RWMutex
	path    string
)

// Init loads state from the default location.
func Init() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	return InitWithDir(filepath.Join(home, ".config", "ripplenote"))
}

// InitWithDir loads state from a specified directory.
// This is primarily for testing to avoid reading real user state.
func InitWithDir(dir string) error {
	path = filepath.Join(dir, "state.json")
	return Load()
}

// Load reads state from disk.
func Load() error {
	mu.Lock()
	defer mu.Unlock()

	current = &State{
		SortOrder:   "newest",
		WrapEnabled: true,
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil // no state file yet, use defaults
	}
	if err != nil {
		return err
	}

	return json.Unmarshal(data, current)
}

// Save writes state to disk.
func Save() error {
	mu.RLock()
	defer mu.RUnlock()

	if current == nil {
		return nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(current, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// GetSortOrder returns the saved sort order name.
func GetSortOrder() string {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		return "newest"
	}
	return current.SortOrder
}

// SetSortOrder saves the sort order preference.
func SetSortOrder(order string) error {
	mu.Lock()
	if current == nil {
		current = &State{}
	}
	current.SortOrder = order
	mu.Unlock()
	return Save()
}

// GetProjectFilter returns the last active project filter.
func GetProjectFilter() string {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		return ""
	}
	return current.ProjectFilter
}

// SetProjectFilter saves the project filter.
func SetProjectFilter(project string) error {
	mu.Lock()
	if current == nil {
		current = &State{}
	}
	current.ProjectFilter = project
	mu.Unlock()
	return Save()
}

// GetListWidth returns the saved list pane width.
// Returns 0 if no preference is saved (use default).
func GetListWidth() int {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		return 0
	}
	return current.ListWidth
}

// SetListWidth saves the list pane width.
func SetListWidth(width int) error {
	mu.Lock()
	if current == nil {
		current = &State{}
	}
	current.ListWidth = width
	mu.Unlock()
	return Save()
}

// GetWrapEnabled returns the saved line wrap preference.
func GetWrapEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		return true
	}
	return current.WrapEnabled
}

// SetWrapEnabled saves the line wrap preference.
func SetWrapEnabled(enabled bool) error {
	mu.Lock()
	if current == nil {
		current = &State{}
	}
	current.WrapEnabled = enabled
	mu.Unlock()
	return Save()
}
