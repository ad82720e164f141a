package config

import (
	"os"
	"path/filepath"

	"github.com/dshills/goodhex/internal/datasource"
	"github.com/dshills/goodhex/internal/view"
)

// Config holds all goodhex settings.
type Config struct {
	View        ViewConfig        `toml:"view" yaml:"view"`
	Annotations AnnotationsConfig `toml:"annotations" yaml:"annotations"`
	Palette     PaletteConfig     `toml:"palette" yaml:"palette"`
	Logging     LoggingConfig     `toml:"logging" yaml:"logging"`
	Data        DataConfig        `toml:"data" yaml:"data"`
}

// ViewConfig configures the initial view.
type ViewConfig struct {
	// Width is the number of bytes per row.
	Width int `toml:"width" yaml:"width"`
	// Start is the initial cursor address.
	Start int64 `toml:"start" yaml:"start"`
}

// AnnotationsConfig configures the annotation sets.
type AnnotationsConfig struct {
	// Sets names the annotation sets in Tab order.
	Sets []string `toml:"sets" yaml:"sets"`
	// Script is a Lua color script deriving default tags.
	Script string `toml:"script,omitempty" yaml:"script,omitempty"`
	// NonPrintableTag colors bytes outside printable ASCII when no script is
	// set. 0 disables it.
	NonPrintableTag int `toml:"nonPrintableTag" yaml:"nonPrintableTag"`
}

// PaletteConfig holds style specs. Empty entries keep the built-in style.
type PaletteConfig struct {
	Text   string   `toml:"text,omitempty" yaml:"text,omitempty"`
	Header string   `toml:"header,omitempty" yaml:"header,omitempty"`
	Marker string   `toml:"marker,omitempty" yaml:"marker,omitempty"`
	Cursor string   `toml:"cursor,omitempty" yaml:"cursor,omitempty"`
	Tags   []string `toml:"tags,omitempty" yaml:"tags,omitempty"`
}

// LoggingConfig configures the log file.
type LoggingConfig struct {
	// Level is debug, info, warn or error.
	Level string `toml:"level" yaml:"level"`
	// File receives log output. Empty discards logs.
	File string `toml:"file,omitempty" yaml:"file,omitempty"`
}

// DataConfig configures the data source.
type DataConfig struct {
	ReadOnly   bool `toml:"readOnly" yaml:"readOnly"`
	SaveOnQuit bool `toml:"saveOnQuit" yaml:"saveOnQuit"`
	// MaxMemory caps how far the in-memory buffer used without a file may
	// grow. Writes beyond it are rejected.
	MaxMemory int64 `toml:"maxMemory" yaml:"maxMemory"`
}

// DefaultSetNames are the annotation sets used when none are configured.
var DefaultSetNames = []string{"default", "structures", "strings"}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		View: ViewConfig{
			Width: view.DefaultWidth,
		},
		Annotations: AnnotationsConfig{
			Sets: append([]string(nil), DefaultSetNames...),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Data: DataConfig{
			MaxMemory: datasource.DefaultMaxMemory,
		},
	}
}

// DefaultPath returns the user configuration file path.
func DefaultPath() string {
	return filepath.Join(UserConfigDir(), "config.toml")
}

// UserConfigDir returns the goodhex configuration directory.
func UserConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "goodhex")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "goodhex")
}
