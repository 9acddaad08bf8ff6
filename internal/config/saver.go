package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// saveConfig is the JSON-marshaling intermediary. Pointer fields keep
// the written file mergeable by the loader.
type saveConfig struct {
	UI     saveUIConfig     `json:"ui"`
	Editor saveEditorConfig `json:"editor"`
	Keymap KeymapConfig     `json:"keymap"`
}

type saveUIConfig struct {
	ShowFooter *bool  `json:"showFooter,omitempty"`
	DateFormat string `json:"dateFormat,omitempty"`
	ScrollOff  *int   `json:"scrollOff,omitempty"`
	ListWidth  *int   `json:"listWidth,omitempty"`
}

type saveEditorConfig struct {
	WrapColumn  *int `json:"wrapColumn,omitempty"`
	AutoSaveSec *int `json:"autoSaveSec,omitempty"`
}

// toSaveConfig converts Config to the JSON-serializable format.
func toSaveConfig(cfg *Config) saveConfig {
	return saveConfig{
		UI: saveUIConfig{
			ShowFooter: &cfg.UI.ShowFooter,
			DateFormat: cfg.UI.DateFormat,
			ScrollOff:  &cfg.UI.ScrollOff,
			ListWidth:  &cfg.UI.ListWidth,
		},
		Editor: saveEditorConfig{
			WrapColumn:  &cfg.Editor.WrapColumn,
			AutoSaveSec: &cfg.Editor.AutoSaveSec,
		},
		Keymap: cfg.Keymap,
	}
}

// Save writes the config to ~/.config/ripplenote/config.json
func Save(cfg *Config) error {
	return SaveTo(cfg, ConfigPath())
}

// SaveTo writes the config to a specific path.
func SaveTo(cfg *Config, path string) error {
	if path == "" {
		return os.ErrInvalid
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	sc := toSaveConfig(cfg)
	data, err := json.MarshalIndent(sc, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
