package loader

import (
	"testing"
)

func newTestEnvLoader(env ...string) *EnvLoader {
	l := NewEnvLoader(EnvPrefix)
	l.environ = func() []string { return env }
	return l
}

func TestEnvLoader_Load(t *testing.T) {
	l := newTestEnvLoader(
		"GOODHEX_LOG_LEVEL=debug",
		"GOODHEX_VIEW_WIDTH=8",
		"GOODHEX_VIEW_START=0x100",
		"GOODHEX_DATA_SAVE_ON_QUIT=yes",
		`GOODHEX_ANNOTATIONS_SETS=["a","b"]`,
		"GOODHEX_PALETTE_HEADER=red on black",
		"HOME=/root",
	)

	config, err := l.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	tests := []struct {
		path string
		want any
	}{
		{"logging.level", "debug"},
		{"view.width", int64(8)},
		{"view.start", int64(0x100)},
		{"data.saveOnQuit", true},
		{"palette.header", "red on black"},
	}
	for _, tt := range tests {
		if v, ok := GetByPath(config, tt.path); !ok || v != tt.want {
			t.Errorf("%s = %v (%T), want %v", tt.path, v, v, tt.want)
		}
	}

	sets, _ := GetByPath(config, "annotations.sets")
	if list, ok := sets.([]any); !ok || len(list) != 2 {
		t.Errorf("annotations.sets = %v", sets)
	}
	if _, ok := config["home"]; ok {
		t.Error("unprefixed variables should be ignored")
	}
}

func TestEnvLoader_Ignore(t *testing.T) {
	l := newTestEnvLoader("GOODHEX_CONFIG=/etc/goodhex.toml", "GOODHEX_X=1")
	l.Ignore("GOODHEX_CONFIG")

	config, err := l.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(config) != 0 {
		t.Errorf("config = %v, want empty", config)
	}
}

func TestEnvLoader_envToPath(t *testing.T) {
	l := NewEnvLoader(EnvPrefix)
	tests := []struct {
		env  string
		want string
	}{
		{"GOODHEX_VIEW_WIDTH", "view.width"},
		{"GOODHEX_DATA_READ_ONLY", "data.readOnly"},
		{"GOODHEX_ANNOTATIONS_NON_PRINTABLE_TAG", "annotations.nonPrintableTag"},
		{"GOODHEX_SINGLE", ""},
	}
	for _, tt := range tests {
		if got := l.envToPath(tt.env); got != tt.want {
			t.Errorf("envToPath(%q) = %q, want %q", tt.env, got, tt.want)
		}
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"", ""},
		{"true", true},
		{"Off", false},
		{"1", int64(1)},
		{"0", int64(0)},
		{"0x1f", int64(0x1f)},
		{"1.5", 1.5},
		{"yellow", "yellow"},
	}
	for _, tt := range tests {
		if got := parseValue(tt.in); got != tt.want {
			t.Errorf("parseValue(%q) = %v (%T), want %v (%T)", tt.in, got, got, tt.want, tt.want)
		}
	}
}
