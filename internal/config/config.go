package config

// Config is the root configuration structure.
type Config struct {
	UI     UIConfig     `json:"ui"`
	Editor EditorConfig `json:"editor"`
	Keymap KeymapConfig `json:"keymap"`
}

// UIConfig configures UI appearance and behavior.
type UIConfig struct {
	ShowFooter bool   `json:"showFooter"`
	DateFormat string `json:"dateFormat"` // Go time layout for list timestamps
	ScrollOff  int    `json:"scrollOff"`  // lines kept visible around the list cursor
	ListWidth  int    `json:"listWidth"`  // default list pane width in columns
}

// EditorConfig configures the note editor.
type EditorConfig struct {
	// WrapColumn is the wrap width for markdown read mode (0 = pane width).
	WrapColumn int `json:"wrapColumn"`
	// AutoSaveSec debounces auto-save while typing. 0 disables auto-save.
	AutoSaveSec int `json:"autoSaveSec"`
}

// KeymapConfig holds key binding overrides.
type KeymapConfig struct {
	Overrides map[string]string `json:"overrides"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			ShowFooter: true,
			DateFormat: "Jan 2",
			ScrollOff:  2,
			ListWidth:  34,
		},
		Editor: EditorConfig{
			WrapColumn:  0,
			AutoSaveSec: 0,
		},
		Keymap: KeymapConfig{
			Overrides: make(map[string]string),
		},
	}
}

// Validate checks the configuration and clamps out-of-range values.
func (c *Config) Validate() error {
	if c.UI.ScrollOff < 0 {
		c.UI.ScrollOff = 0
	}
	if c.UI.ListWidth < 20 {
		c.UI.ListWidth = 20
	}
	if c.Editor.WrapColumn < 0 {
		c.Editor.WrapColumn = 0
	}
	if c.Editor.AutoSaveSec < 0 {
		c.Editor.AutoSaveSec = 0
	}
	return nil
}
