package datasource

// Source is random-access byte storage addressed from zero.
type Source interface {
	// ByteAt returns the byte at addr. ok is false when the source
	// declines to resolve the address.
	ByteAt(addr int64) (b byte, ok bool)

	// SetByteAt stores v at addr. Rejected writes return a *WriteError.
	SetByteAt(addr int64, v byte) error
}

// Sizer is implemented by sources that know their extent.
type Sizer interface {
	Len() int64
}

// DefaultMaxMemory is the largest size a Memory source grows to by default.
const DefaultMaxMemory int64 = 64 << 20

// Memory is a growable in-memory source.
// Writes past the end extend the buffer, zero-filling any gap, up to the
// maximum size.
type Memory struct {
	data []byte
	max  int64
}

// MemoryOption configures a Memory.
type MemoryOption func(*Memory)

// WithMaxSize sets the largest size the buffer may grow to. Values below 1
// keep DefaultMaxMemory.
func WithMaxSize(n int64) MemoryOption {
	return func(m *Memory) {
		if n > 0 {
			m.max = n
		}
	}
}

// NewMemory creates a memory source holding a copy of data.
func NewMemory(data []byte, opts ...MemoryOption) *Memory {
	buf := make([]byte, len(data))
	copy(buf, data)
	m := &Memory{data: buf, max: DefaultMaxMemory}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ByteAt implements Source.
func (m *Memory) ByteAt(addr int64) (byte, bool) {
	if addr < 0 || addr >= int64(len(m.data)) {
		return 0, false
	}
	return m.data[addr], true
}

// SetByteAt implements Source.
func (m *Memory) SetByteAt(addr int64, v byte) error {
	if addr < 0 {
		return writeError(addr, ErrOutOfRange)
	}
	if addr >= int64(len(m.data)) {
		// addr < max keeps addr+1 from overflowing.
		if addr >= m.max {
			return writeError(addr, ErrOutOfRange)
		}
		grown := make([]byte, addr+1)
		copy(grown, m.data)
		m.data = grown
	}
	m.data[addr] = v
	return nil
}

// Len returns the current size of the buffer.
func (m *Memory) Len() int64 {
	return int64(len(m.data))
}
