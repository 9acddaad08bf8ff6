package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

const (
	configDir  = ".config/ripplenote"
	configFile = "config.json"
)

// rawConfig is the JSON-unmarshaling intermediary. Pointer fields
// distinguish "absent" from zero so user files merge over defaults.
type rawConfig struct {
	UI     rawUIConfig     `json:"ui"`
	Editor rawEditorConfig `json:"editor"`
	Keymap KeymapConfig    `json:"keymap"`
}

type rawUIConfig struct {
	ShowFooter *bool  `json:"showFooter"`
	DateFormat string `json:"dateFormat"`
	ScrollOff  *int   `json:"scrollOff"`
	ListWidth  *int   `json:"listWidth"`
}

type rawEditorConfig struct {
	WrapColumn  *int `json:"wrapColumn"`
	AutoSaveSec *int `json:"autoSaveSec"`
}

// Load loads configuration from the default location.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom loads configuration from a specific path.
// If path is empty, uses ~/.config/ripplenote/config.json
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil // Return defaults on error
		}
		path = filepath.Join(home, configDir, configFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	var raw rawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	mergeConfig(cfg, &raw)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// mergeConfig merges raw config values into the config.
func mergeConfig(cfg *Config, raw *rawConfig) {
	// UI
	if raw.UI.ShowFooter != nil {
		cfg.UI.ShowFooter = *raw.UI.ShowFooter
	}
	if raw.UI.DateFormat != "" {
		cfg.UI.DateFormat = raw.UI.DateFormat
	}
	if raw.UI.ScrollOff != nil {
		cfg.UI.ScrollOff = *raw.UI.ScrollOff
	}
	if raw.UI.ListWidth != nil {
		cfg.UI.ListWidth = *raw.UI.ListWidth
	}

	// Editor
	if raw.Editor.WrapColumn != nil {
		cfg.Editor.WrapColumn = *raw.Editor.WrapColumn
	}
	if raw.Editor.AutoSaveSec != nil {
		cfg.Editor.AutoSaveSec = *raw.Editor.AutoSaveSec
	}

	// Keymap
	if raw.Keymap.Overrides != nil {
		for k, v := range raw.Keymap.Overrides {
			cfg.Keymap.Overrides[k] = v
		}
	}
}

// ExpandPath expands ~ to home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDir, configFile)
}
