package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestWatcher(t *testing.T, opts ...Option) (*Watcher, chan Event) {
	t.Helper()
	w, err := New(opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(w.Stop)

	events := make(chan Event, 16)
	w.OnChange(func(e Event) { events <- e })
	return w, events
}

func waitEvent(t *testing.T, events <-chan Event) Event {
	t.Helper()
	select {
	case e := <-events:
		return e
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestWatcherWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("a = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, events := newTestWatcher(t, WithDebounce(20*time.Millisecond))
	if err := w.Watch(path); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	w.Start()
	if !w.IsRunning() {
		t.Fatal("IsRunning() = false after Start")
	}

	if err := os.WriteFile(path, []byte("a = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	e := waitEvent(t, events)
	if e.Path != path {
		t.Errorf("Path = %q, want %q", e.Path, path)
	}
	if e.Op != OpWrite {
		t.Errorf("Op = %s, want write", e.Op)
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	w, events := newTestWatcher(t, WithDebounce(0))
	if err := w.Watch(path); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	w.Start()

	if err := os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	e := waitEvent(t, events)
	if e.Path != path {
		t.Errorf("got event for %q", e.Path)
	}
	if e.Op != OpCreate {
		t.Errorf("Op = %s, want create", e.Op)
	}
}

func TestWatcherRenameOver(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("a: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, events := newTestWatcher(t, WithDebounce(50*time.Millisecond))
	if err := w.Watch(path); err != nil {
		t.Fatal(err)
	}
	w.Start()

	tmp := filepath.Join(dir, ".config.yaml.swp")
	if err := os.WriteFile(tmp, []byte("a: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatal(err)
	}

	e := waitEvent(t, events)
	if e.Path != path {
		t.Errorf("Path = %q", e.Path)
	}
	if e.Op == OpRemove || e.Op == OpRename {
		t.Errorf("Op = %s, the file still exists", e.Op)
	}
}

func TestWatcherQueueCoalesces(t *testing.T) {
	tests := []struct {
		name string
		ops  []Operation
		want Operation
	}{
		{"writes", []Operation{OpWrite, OpWrite}, OpWrite},
		{"create then write", []Operation{OpCreate, OpWrite}, OpCreate},
		{"write then remove", []Operation{OpWrite, OpRemove}, OpRemove},
		{"remove then create", []Operation{OpRemove, OpCreate}, OpWrite},
		{"rename then write", []Operation{OpRename, OpWrite}, OpWrite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &Watcher{pending: make(map[string]Event)}
			for _, op := range tt.ops {
				w.queue(Event{Path: "/x", Op: op})
			}
			if got := w.pending["/x"].Op; got != tt.want {
				t.Errorf("coalesced op = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestWatcherUnwatchAndStop(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.toml")
	b := filepath.Join(dir, "b.toml")

	w, _ := newTestWatcher(t)
	if err := w.Watch(a); err != nil {
		t.Fatal(err)
	}
	if err := w.Watch(b); err != nil {
		t.Fatal(err)
	}
	if n := len(w.WatchedFiles()); n != 2 {
		t.Errorf("WatchedFiles() has %d entries", n)
	}
	if err := w.Unwatch(a); err != nil {
		t.Fatal(err)
	}
	if files := w.WatchedFiles(); len(files) != 1 || files[0] != b {
		t.Errorf("WatchedFiles() = %v", files)
	}

	w.Start()
	w.Stop()
	if w.IsRunning() {
		t.Error("IsRunning() = true after Stop")
	}
	if err := w.Watch(a); err != ErrClosed {
		t.Errorf("Watch() after Stop = %v, want ErrClosed", err)
	}
	w.Stop()
}

func TestOperationString(t *testing.T) {
	for op, want := range map[Operation]string{
		OpWrite: "write", OpCreate: "create", OpRemove: "remove", OpRename: "rename", Operation(9): "unknown",
	} {
		if got := op.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", op, got, want)
		}
	}
}
