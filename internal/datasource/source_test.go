package datasource

import (
	"errors"
	"math"
	"testing"
)

func TestMemoryReadWrite(t *testing.T) {
	m := NewMemory([]byte{0x10, 0x20, 0x30})

	if b, ok := m.ByteAt(1); !ok || b != 0x20 {
		t.Errorf("ByteAt(1) = (%#x, %v), want (0x20, true)", b, ok)
	}

	if err := m.SetByteAt(1, 'A'); err != nil {
		t.Fatalf("SetByteAt error = %v", err)
	}
	if b, _ := m.ByteAt(1); b != 'A' {
		t.Errorf("ByteAt after write = %#x, want 'A'", b)
	}
}

func TestMemoryAbsent(t *testing.T) {
	m := NewMemory([]byte{1, 2})

	for _, addr := range []int64{-1, 2, 1 << 40} {
		if _, ok := m.ByteAt(addr); ok {
			t.Errorf("ByteAt(%d) should be absent", addr)
		}
	}
}

func TestMemoryWriteGrows(t *testing.T) {
	m := NewMemory(nil)

	if err := m.SetByteAt(4, 0xff); err != nil {
		t.Fatalf("SetByteAt error = %v", err)
	}
	if m.Len() != 5 {
		t.Errorf("Len() = %d, want 5", m.Len())
	}
	if b, ok := m.ByteAt(2); !ok || b != 0 {
		t.Errorf("gap byte = (%#x, %v), want (0, true)", b, ok)
	}
	if b, _ := m.ByteAt(4); b != 0xff {
		t.Errorf("ByteAt(4) = %#x, want 0xff", b)
	}
}

func TestMemoryWriteNegative(t *testing.T) {
	m := NewMemory(nil)

	err := m.SetByteAt(-1, 0)
	if !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("SetByteAt(-1) error = %v, want ErrOutOfRange", err)
	}

	var we *WriteError
	if !errors.As(err, &we) || we.Addr != -1 {
		t.Errorf("error should be *WriteError for address -1, got %v", err)
	}
}

func TestMemoryCopiesInput(t *testing.T) {
	data := []byte{1, 2, 3}
	m := NewMemory(data)
	data[0] = 9

	if b, _ := m.ByteAt(0); b != 1 {
		t.Error("NewMemory should copy its input")
	}
}

func TestMemoryWriteBeyondMaxSize(t *testing.T) {
	tests := []struct {
		name string
		addr int64
	}{
		{"at limit", 16},
		{"far past limit", 1 << 40},
		{"top of address space", math.MaxInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMemory([]byte{1, 2}, WithMaxSize(16))

			err := m.SetByteAt(tt.addr, 'x')
			if !errors.Is(err, ErrOutOfRange) {
				t.Fatalf("SetByteAt(%#x) error = %v, want ErrOutOfRange", tt.addr, err)
			}
			var we *WriteError
			if !errors.As(err, &we) || we.Addr != tt.addr {
				t.Errorf("error = %v, want *WriteError at %#x", err, tt.addr)
			}
			if m.Len() != 2 {
				t.Errorf("Len() = %d after rejected write, want 2", m.Len())
			}
		})
	}
}

func TestMemoryWriteUpToMaxSize(t *testing.T) {
	m := NewMemory(nil, WithMaxSize(16))

	if err := m.SetByteAt(15, 0xee); err != nil {
		t.Fatalf("SetByteAt(15) error = %v", err)
	}
	if m.Len() != 16 {
		t.Errorf("Len() = %d, want 16", m.Len())
	}
}

func TestMemoryDefaultMaxSize(t *testing.T) {
	tests := []struct {
		name string
		opts []MemoryOption
	}{
		{"no options", nil},
		{"zero keeps default", []MemoryOption{WithMaxSize(0)}},
		{"negative keeps default", []MemoryOption{WithMaxSize(-5)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMemory(nil, tt.opts...)
			if err := m.SetByteAt(DefaultMaxMemory, 0); !errors.Is(err, ErrOutOfRange) {
				t.Errorf("SetByteAt(DefaultMaxMemory) error = %v, want ErrOutOfRange", err)
			}
		})
	}
}
