package config

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .mqttdash.yaml configuration file.
type Config struct {
	Version int          `yaml:"version" mapstructure:"version"`
	Title   string       `yaml:"title" mapstructure:"title"`
	Data    DataConfig   `yaml:"data" mapstructure:"data"`
	Layout  LayoutConfig `yaml:"layout" mapstructure:"layout"`
	Log     LogConfig    `yaml:"log" mapstructure:"log"`
}

// DataConfig selects where series come from.
type DataConfig struct {
	// File is a YAML sample data file. Empty means the built-in sample data.
	// Relative paths resolve against the config file's directory.
	// Supports ~ and ${HOME}, ${USER}, ${PROJECT}.
	File string `yaml:"file" mapstructure:"file"`

	// Watch reloads the dashboard when File changes.
	Watch bool `yaml:"watch" mapstructure:"watch"`
}

// LayoutConfig controls the panel grid.
type LayoutConfig struct {
	// Breakpoint is the terminal width in columns at which panels switch
	// from one column to two.
	Breakpoint int `yaml:"breakpoint" mapstructure:"breakpoint"`

	// PanelHeight is the chart height of every panel in rows.
	PanelHeight int `yaml:"panel_height" mapstructure:"panel_height"`
}

// LogConfig controls diagnostics. The dashboard owns the terminal, so logs
// only go to a file.
type LogConfig struct {
	File  string `yaml:"file" mapstructure:"file"`
	Debug bool   `yaml:"debug" mapstructure:"debug"`
}

// Defaults
const (
	DefaultTitle       = "MQTT Dashboard"
	DefaultBreakpoint  = 100
	DefaultPanelHeight = 12
)

// DefaultConfig returns a config with every default applied.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Title:   DefaultTitle,
		Layout: LayoutConfig{
			Breakpoint:  DefaultBreakpoint,
			PanelHeight: DefaultPanelHeight,
		},
	}
}
