package annotation

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestSetColor(t *testing.T) {
	s := NewSet("default")

	if _, ok := s.Color(5); ok {
		t.Error("new set should have no colors")
	}

	if err := s.SetColor(5, 3); err != nil {
		t.Fatalf("SetColor error = %v", err)
	}
	if tag, ok := s.Color(5); !ok || tag != 3 {
		t.Errorf("Color(5) = (%d, %v), want (3, true)", tag, ok)
	}

	if err := s.SetColor(5, 0); err != nil {
		t.Fatal(err)
	}
	if tag, _ := s.Color(5); tag != 0 {
		t.Errorf("Color(5) = %d after overwrite, want 0", tag)
	}
	if s.ColorCount() != 1 {
		t.Errorf("ColorCount() = %d, want 1", s.ColorCount())
	}
}

func TestSetColorInvalid(t *testing.T) {
	s := NewSet("default")

	for _, tag := range []int{-1, 10, 255} {
		if err := s.SetColor(0, tag); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("SetColor(0, %d) error = %v, want ErrInvalidColor", tag, err)
		}
		if err := s.SetColorRange(0, 4, tag); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("SetColorRange(0, 4, %d) error = %v, want ErrInvalidColor", tag, err)
		}
	}
	if s.ColorCount() != 0 {
		t.Errorf("invalid tags should not be stored, ColorCount() = %d", s.ColorCount())
	}
}

func TestSetColorRange(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi int64
	}{
		{"ascending", 4, 10},
		{"descending", 10, 4},
		{"single", 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSet("default")
			if err := s.SetColor(3, 1); err != nil {
				t.Fatal(err)
			}

			if err := s.SetColorRange(tt.lo, tt.hi, 6); err != nil {
				t.Fatalf("SetColorRange error = %v", err)
			}

			lo, hi := min(tt.lo, tt.hi), max(tt.lo, tt.hi)
			for addr := lo; addr <= hi; addr++ {
				if tag, ok := s.Color(addr); !ok || tag != 6 {
					t.Errorf("Color(%d) = (%d, %v), want (6, true)", addr, tag, ok)
				}
			}

			if tag, _ := s.Color(3); tag != 1 {
				t.Errorf("address below range changed to %d", tag)
			}
			if _, ok := s.Color(hi + 1); ok {
				t.Errorf("address above range was tagged")
			}
			if got := s.ColorCount(); got != int(hi-lo+2) {
				t.Errorf("ColorCount() = %d, want %d", got, hi-lo+2)
			}
		})
	}
}

func TestSetNotes(t *testing.T) {
	s := NewSet("default")

	if _, ok := s.Note(0x10); ok {
		t.Error("new set should have no notes")
	}
	if _, ok := s.FirstLine(0x10); ok {
		t.Error("FirstLine on missing note should be absent")
	}

	s.SetNote(0x10, "header magic\nsecond line\nthird")
	note, ok := s.Note(0x10)
	if !ok || note != "header magic\nsecond line\nthird" {
		t.Errorf("Note() = (%q, %v)", note, ok)
	}
	first, ok := s.FirstLine(0x10)
	if !ok || first != "header magic" {
		t.Errorf("FirstLine() = (%q, %v), want header magic", first, ok)
	}

	s.SetNote(0x10, "replaced")
	if first, _ := s.FirstLine(0x10); first != "replaced" {
		t.Errorf("FirstLine after replace = %q", first)
	}

	s.SetNote(0x10, "")
	if _, ok := s.Note(0x10); ok {
		t.Error("empty note should remove the entry")
	}

	s.SetNote(0x20, "x")
	if s.NoteCount() != 1 {
		t.Errorf("NoteCount() = %d, want 1", s.NoteCount())
	}
	s.SetNote(0x20, "")
	if s.NoteCount() != 0 {
		t.Errorf("NoteCount() = %d, want 0", s.NoteCount())
	}
}

func TestSetColorRangeTopOfAddressSpace(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi int64
		want   int
	}{
		{"last two addresses", math.MaxInt64 - 1, math.MaxInt64, 2},
		{"reversed", math.MaxInt64, math.MaxInt64 - 3, 4},
		{"single top address", math.MaxInt64, math.MaxInt64, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSet("default")

			done := make(chan error, 1)
			go func() { done <- s.SetColorRange(tt.lo, tt.hi, 4) }()

			select {
			case err := <-done:
				if err != nil {
					t.Fatalf("SetColorRange error = %v", err)
				}
			case <-time.After(2 * time.Second):
				t.Fatal("SetColorRange did not return")
			}

			if tag, ok := s.Color(math.MaxInt64); !ok || tag != 4 {
				t.Errorf("Color(MaxInt64) = (%d, %v), want (4, true)", tag, ok)
			}
			if got := s.ColorCount(); got != tt.want {
				t.Errorf("ColorCount() = %d, want %d", got, tt.want)
			}
			if _, ok := s.Color(math.MinInt64); ok {
				t.Error("range wrapped to negative addresses")
			}
		})
	}
}
