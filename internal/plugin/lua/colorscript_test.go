package lua

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dshills/goodhex/internal/annotation"
)

var _ annotation.ColorPolicy = (*ColorScript)(nil)

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Warn(msg string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(msg, args...))
}

const nonPrintableScript = `
function color(addr, byte, cursor)
    if byte == nil then return 0 end
    if not isprint(byte) then return 3 end
    if addr == cursor + 1 then return 5 end
    return 0
end
`

func TestColorScriptDefaultColor(t *testing.T) {
	cs, err := NewColorScript(nonPrintableScript)
	if err != nil {
		t.Fatalf("NewColorScript() error = %v", err)
	}
	defer cs.Close()

	tests := []struct {
		name   string
		addr   int64
		b      byte
		ok     bool
		cursor int64
		want   int
	}{
		{"absent", 0, 0, false, 0, 0},
		{"printable", 0, 'A', true, 100, 0},
		{"nul", 0, 0x00, true, 100, 3},
		{"del", 0, 0x7f, true, 100, 3},
		{"after cursor", 11, 'A', true, 10, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cs.DefaultColor(tt.addr, tt.b, tt.ok, tt.cursor); got != tt.want {
				t.Errorf("DefaultColor() = %d, want %d", got, tt.want)
			}
		})
	}
	if cs.Failures() != 0 {
		t.Errorf("Failures() = %d", cs.Failures())
	}
}

func TestColorScriptFailuresLoggedOnce(t *testing.T) {
	log := &recordingLogger{}
	cs, err := NewColorScript(`function color(addr) if addr > 1 then error("boom") end return "x" end`, WithLogger(log))
	if err != nil {
		t.Fatalf("NewColorScript() error = %v", err)
	}
	defer cs.Close()

	for addr := int64(0); addr < 5; addr++ {
		if got := cs.DefaultColor(addr, 0, true, 0); got != 0 {
			t.Errorf("DefaultColor(%d) = %d, want 0", addr, got)
		}
	}
	if cs.Failures() != 5 {
		t.Errorf("Failures() = %d, want 5", cs.Failures())
	}
	if len(log.lines) != 1 {
		t.Fatalf("logged %d lines, want 1: %q", len(log.lines), log.lines)
	}
	if !strings.Contains(log.lines[0], "want number") {
		t.Errorf("log line = %q", log.lines[0])
	}
}

func TestColorScriptTimeout(t *testing.T) {
	cs, err := NewColorScript(`function color() while true do end end`, WithTimeout(10*time.Millisecond))
	if err != nil {
		t.Fatalf("NewColorScript() error = %v", err)
	}
	defer cs.Close()

	if got := cs.DefaultColor(0, 0, true, 0); got != 0 {
		t.Errorf("DefaultColor() = %d, want 0", got)
	}
	if cs.Failures() != 1 {
		t.Errorf("Failures() = %d, want 1", cs.Failures())
	}
}

func TestColorScriptPrint(t *testing.T) {
	log := &recordingLogger{}
	cs, err := NewColorScript(`print("loaded") function color() return 1 end`, WithLogger(log))
	if err != nil {
		t.Fatalf("NewColorScript() error = %v", err)
	}
	defer cs.Close()

	if len(log.lines) != 1 || !strings.HasSuffix(log.lines[0], "loaded") {
		t.Errorf("log = %q", log.lines)
	}
}

func TestColorScriptLoadErrors(t *testing.T) {
	if _, err := NewColorScript(`x = 1`); !errors.Is(err, ErrNoColorFunc) {
		t.Errorf("missing color(): error = %v", err)
	}
	if _, err := NewColorScript(`function color(`); err == nil {
		t.Error("syntax error should fail to load")
	}
	if _, err := LoadColorScript(filepath.Join(t.TempDir(), "missing.lua")); err == nil {
		t.Error("missing file should fail to load")
	}
}

func TestLoadColorScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colors.lua")
	if err := os.WriteFile(path, []byte(nonPrintableScript), 0o644); err != nil {
		t.Fatal(err)
	}

	cs, err := LoadColorScript(path)
	if err != nil {
		t.Fatalf("LoadColorScript() error = %v", err)
	}
	defer cs.Close()

	if got := cs.DefaultColor(0, 0x01, true, 100); got != 3 {
		t.Errorf("DefaultColor() = %d, want 3", got)
	}
}

func TestColorScriptInStore(t *testing.T) {
	cs, err := NewColorScript(nonPrintableScript)
	if err != nil {
		t.Fatalf("NewColorScript() error = %v", err)
	}
	defer cs.Close()

	store, err := annotation.NewStore([]string{"default"}, annotation.WithColorPolicy(cs))
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}

	if got := store.ColorOf(0, 0x00, true, 100); got != 3 {
		t.Errorf("derived ColorOf() = %d, want 3", got)
	}
	if err := store.SetColor(0, 7); err != nil {
		t.Fatal(err)
	}
	if got := store.ColorOf(0, 0x00, true, 100); got != 7 {
		t.Errorf("stored ColorOf() = %d, want 7", got)
	}
}
