package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/goodhex/internal/datasource"
	"github.com/dshills/goodhex/internal/renderer"
	"github.com/dshills/goodhex/internal/renderer/core"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.View.Width != 0x10 {
		t.Errorf("View.Width = %d", cfg.View.Width)
	}
	if len(cfg.Annotations.Sets) != len(DefaultSetNames) {
		t.Errorf("Annotations.Sets = %v", cfg.Annotations.Sets)
	}
	if cfg.Data.MaxMemory != datasource.DefaultMaxMemory {
		t.Errorf("Data.MaxMemory = %d", cfg.Data.MaxMemory)
	}

	// The default set list must not alias the package variable.
	cfg.Annotations.Sets[0] = "changed"
	if DefaultSetNames[0] == "changed" {
		t.Error("Default() aliases DefaultSetNames")
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "config.toml", `
[view]
width = 0x20
start = 0x1000

[annotations]
sets = ["code", "data"]
nonPrintableTag = 8

[palette]
header = "bold white on red"
tags = ["", "green"]

[data]
readOnly = true
maxMemory = 0x100000
`)

	cfg, err := Load(LoadOptions{Path: path, NoEnv: true})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.View.Width != 0x20 || cfg.View.Start != 0x1000 {
		t.Errorf("View = %+v", cfg.View)
	}
	if strings.Join(cfg.Annotations.Sets, ",") != "code,data" {
		t.Errorf("Sets = %v", cfg.Annotations.Sets)
	}
	if cfg.Annotations.NonPrintableTag != 8 {
		t.Errorf("NonPrintableTag = %d", cfg.Annotations.NonPrintableTag)
	}
	if !cfg.Data.ReadOnly || cfg.Data.SaveOnQuit || cfg.Data.MaxMemory != 0x100000 {
		t.Errorf("Data = %+v", cfg.Data)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("unset Logging.Level = %q, want default", cfg.Logging.Level)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
view:
  width: 8
logging:
  level: debug
  file: /tmp/goodhex.log
data:
  saveOnQuit: true
`)

	cfg, err := Load(LoadOptions{Path: path, NoEnv: true})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.View.Width != 8 {
		t.Errorf("View.Width = %d", cfg.View.Width)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.File != "/tmp/goodhex.log" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
	if !cfg.Data.SaveOnQuit {
		t.Error("Data.SaveOnQuit = false")
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(LoadOptions{Path: filepath.Join(t.TempDir(), "none.toml"), NoEnv: true})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.View.Width != Default().View.Width {
		t.Errorf("missing file should yield defaults, got %+v", cfg.View)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "config.toml", "[view]\nwidth = 32\n")
	t.Setenv("GOODHEX_VIEW_WIDTH", "12")
	t.Setenv("GOODHEX_SETS", "one, two ,three")
	t.Setenv("GOODHEX_PALETTE_MARKER", "1")
	t.Setenv(EnvConfigPath, "/elsewhere.toml")

	cfg, err := Load(LoadOptions{Path: path})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.View.Width != 12 {
		t.Errorf("View.Width = %d, want 12", cfg.View.Width)
	}
	if strings.Join(cfg.Annotations.Sets, "|") != "one|two|three" {
		t.Errorf("Sets = %q", cfg.Annotations.Sets)
	}
	if cfg.Palette.Marker != "1" {
		t.Errorf("Palette.Marker = %q", cfg.Palette.Marker)
	}
}

func TestLoadInvalid(t *testing.T) {
	path := writeFile(t, "config.toml", `
[view]
width = 0

[annotations]
sets = ["a", "a"]
`)

	_, err := Load(LoadOptions{Path: path, NoEnv: true})
	if !errors.Is(err, ErrValidationFailed) {
		t.Fatalf("Load() error = %v, want ErrValidationFailed", err)
	}
	var verrs ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) != 2 {
		t.Errorf("errors = %v", err)
	}
}

func TestLoadParseError(t *testing.T) {
	path := writeFile(t, "config.toml", "[view\n")
	if _, err := Load(LoadOptions{Path: path, NoEnv: true}); err == nil {
		t.Error("Load() should fail on malformed TOML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		path   string
	}{
		{"negative start", func(c *Config) { c.View.Start = -1 }, "view.start"},
		{"no sets", func(c *Config) { c.Annotations.Sets = nil }, "annotations.sets"},
		{"blank set", func(c *Config) { c.Annotations.Sets = []string{" "} }, "annotations.sets[0]"},
		{"tag too big", func(c *Config) { c.Annotations.NonPrintableTag = 10 }, "annotations.nonPrintableTag"},
		{"no memory", func(c *Config) { c.Data.MaxMemory = 0 }, "data.maxMemory"},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"bad header", func(c *Config) { c.Palette.Header = "purple-ish" }, "palette.header"},
		{"bad tag", func(c *Config) { c.Palette.Tags = []string{"red", "red on"} }, "palette.tags[1]"},
		{"too many tags", func(c *Config) { c.Palette.Tags = make([]string, 11) }, "palette.tags"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			var verrs ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("Validate() = %v", err)
			}
			if verrs[0].Path != tt.path {
				t.Errorf("Path = %q, want %q", verrs[0].Path, tt.path)
			}
		})
	}
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		spec    string
		want    core.Style
		wantErr bool
	}{
		{"red", core.DefaultStyle().WithForeground(core.ColorRed), false},
		{"yellow on blue", core.NewStyle(core.ColorYellow, core.ColorBlue), false},
		{"Bold White on #ff0000", core.NewStyle(core.ColorWhite, core.ColorFromRGB(255, 0, 0)).Bold(), false},
		{"reverse", core.DefaultStyle().Reverse(), false},
		{"", core.Style{}, true},
		{"red on", core.Style{}, true},
		{"red blue", core.Style{}, true},
		{"mauve", core.Style{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := ParseStyle(tt.spec)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseStyle(%q) should fail", tt.spec)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStyle(%q) error = %v", tt.spec, err)
			}
			if !got.Equals(tt.want) {
				t.Errorf("ParseStyle(%q) = %+v, want %+v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestBuildPalette(t *testing.T) {
	cfg := Default()
	cfg.Palette.Cursor = "white on magenta"
	cfg.Palette.Tags = []string{"", "blue"}

	pal, err := cfg.BuildPalette()
	if err != nil {
		t.Fatalf("BuildPalette() error = %v", err)
	}
	def := renderer.DefaultPalette()

	if !pal.Cursor.Equals(core.NewStyle(core.ColorWhite, core.ColorMagenta)) {
		t.Errorf("Cursor = %+v", pal.Cursor)
	}
	if !pal.Header.Equals(def.Header) {
		t.Error("unset Header should keep the default")
	}
	if !pal.Tags[0].Equals(def.Tags[0]) {
		t.Error("empty tag entry should keep the default")
	}
	if !pal.Tags[1].Equals(core.DefaultStyle().WithForeground(core.ColorBlue)) {
		t.Errorf("Tags[1] = %+v", pal.Tags[1])
	}
	if !pal.Tags[2].Equals(def.Tags[2]) {
		t.Error("tags beyond the list should keep the default")
	}
}

func TestTOMLRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Palette.Header = "red on black"
	data, err := cfg.TOML()
	if err != nil {
		t.Fatalf("TOML() error = %v", err)
	}
	out := string(data)
	for _, want := range []string{"[view]", "width = 16", "red on black"} {
		if !strings.Contains(out, want) {
			t.Errorf("TOML() missing %q in:\n%s", want, out)
		}
	}

	path := writeFile(t, "dump.toml", out)
	back, err := Load(LoadOptions{Path: path, NoEnv: true})
	if err != nil {
		t.Fatalf("reload error = %v", err)
	}
	if back.Palette.Header != "red on black" || back.View.Width != 16 {
		t.Errorf("reloaded = %+v", back)
	}
}
