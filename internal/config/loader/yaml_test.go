package loader

import (
	"errors"
	"strings"
	"testing"
)

func TestYAMLLoader_Load(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/config.yaml", `
view:
  width: 8
annotations:
  sets: [default, strings]
  nonPrintableTag: 3
data:
  readOnly: true
`)

	config, err := NewYAMLLoaderWithFS(memfs, "/config.yaml").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if v, _ := GetByPath(config, "view.width"); v != 8 {
		t.Errorf("view.width = %v (%T)", v, v)
	}
	if v, _ := GetByPath(config, "data.readOnly"); v != true {
		t.Errorf("data.readOnly = %v", v)
	}
	if v, _ := GetByPath(config, "annotations.nonPrintableTag"); v != 3 {
		t.Errorf("annotations.nonPrintableTag = %v", v)
	}
}

func TestYAMLLoader_ParseError(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/bad.yml", "view: [unclosed\n")

	_, err := NewYAMLLoaderWithFS(memfs, "/bad.yml").Load()
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
}

func TestYAMLLoader_LoadFromReader(t *testing.T) {
	config, err := NewYAMLLoader("").LoadFromReader(strings.NewReader("logging:\n  level: warn\n"))
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := GetByPath(config, "logging.level"); v != "warn" {
		t.Errorf("logging.level = %v", v)
	}
}

func TestForPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"config.toml", FormatTOML},
		{"config.yaml", FormatYAML},
		{"CONFIG.YML", FormatYAML},
		{"config", FormatTOML},
	}
	for _, tt := range tests {
		if got := FormatOf(tt.path); got != tt.want {
			t.Errorf("FormatOf(%q) = %s, want %s", tt.path, got, tt.want)
		}
	}

	if _, ok := ForPath(nil, "x.yml").(*YAMLLoader); !ok {
		t.Error("ForPath(.yml) should return a YAMLLoader")
	}
	if _, ok := ForPath(nil, "x.toml").(*TOMLLoader); !ok {
		t.Error("ForPath(.toml) should return a TOMLLoader")
	}
}
