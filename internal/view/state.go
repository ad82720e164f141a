package view

import (
	"math"

	"github.com/dshills/goodhex/internal/input/key"
	"github.com/dshills/goodhex/internal/input/mode"
)

// Navigation step sizes.
const (
	PageSize      int64 = 0x100
	LargePageSize int64 = 0x1000
)

// DefaultWidth is the initial number of bytes per row.
const DefaultWidth = 0x10

// State is the navigation state of one session.
type State struct {
	cursor  int64
	width   int
	mode    mode.Mode
	marker  int64
	marking bool
	lastKey key.Event
}

// Option configures a State.
type Option func(*State)

// WithWidth sets the initial row width. Values below 1 are ignored.
func WithWidth(width int) Option {
	return func(s *State) {
		if width >= 1 {
			s.width = width
		}
	}
}

// WithCursor sets the initial cursor address. Negative values clamp to 0.
func WithCursor(addr int64) Option {
	return func(s *State) {
		s.cursor = max(addr, 0)
	}
}

// New creates a state in Command mode at address 0 with DefaultWidth.
func New(opts ...Option) *State {
	s := &State{
		width: DefaultWidth,
		mode:  mode.Command,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Cursor returns the cursor address.
func (s *State) Cursor() int64 {
	return s.cursor
}

// Width returns the number of bytes per row.
func (s *State) Width() int {
	return s.width
}

// Mode returns the current mode.
func (s *State) Mode() mode.Mode {
	return s.mode
}

// SetMode switches the current mode.
func (s *State) SetMode(m mode.Mode) {
	s.mode = m
}

// Move shifts the cursor by delta. The result is not clamped until Clamp;
// it saturates at the ends of the int64 range instead of wrapping.
func (s *State) Move(delta int64) {
	s.cursor = addSat(s.cursor, delta)
}

// MoveRows shifts the cursor by n rows of the current width.
func (s *State) MoveRows(n int64) {
	s.cursor = addSat(s.cursor, mulSat(n, int64(s.width)))
}

func addSat(a, b int64) int64 {
	switch {
	case b > 0 && a > math.MaxInt64-b:
		return math.MaxInt64
	case b < 0 && a < math.MinInt64-b:
		return math.MinInt64
	}
	return a + b
}

// mulSat multiplies n by a positive width.
func mulSat(n, width int64) int64 {
	switch {
	case n > 0 && n > math.MaxInt64/width:
		return math.MaxInt64
	case n < 0 && n < math.MinInt64/width:
		return math.MinInt64
	}
	return n * width
}

// SetCursor places the cursor at addr. The result is not clamped until Clamp.
func (s *State) SetCursor(addr int64) {
	s.cursor = addr
}

// Clamp pulls a negative cursor back to zero.
func (s *State) Clamp() {
	if s.cursor < 0 {
		s.cursor = 0
	}
}

// IncWidth adds one byte to the row width.
func (s *State) IncWidth() {
	s.width++
}

// DecWidth removes one byte from the row width. It returns false, leaving
// the width unchanged, when the width is already 1.
func (s *State) DecWidth() bool {
	if s.width <= 1 {
		return false
	}
	s.width--
	return true
}

// ToggleMark starts range marking at the cursor, or ends it if active.
// It returns true when marking is now active.
func (s *State) ToggleMark() bool {
	if s.marking {
		s.marking = false
		s.marker = 0
		return false
	}
	s.marking = true
	s.marker = s.cursor
	return true
}

// Marker returns the marker address while range marking is active.
func (s *State) Marker() (int64, bool) {
	return s.marker, s.marking
}

// MarkedRange returns the inclusive range between the marker and the
// current cursor, in ascending order.
func (s *State) MarkedRange() (lo, hi int64, ok bool) {
	if !s.marking {
		return 0, 0, false
	}
	return min(s.marker, s.cursor), max(s.marker, s.cursor), true
}

// LastKey returns the most recently recorded key.
func (s *State) LastKey() key.Event {
	return s.lastKey
}

// RecordKey remembers ev as the last key pressed.
func (s *State) RecordKey(ev key.Event) {
	s.lastKey = ev
}

// Snapshot is a read-only copy of the state for rendering.
type Snapshot struct {
	Cursor   int64
	Width    int
	Mode     mode.Mode
	Marker   int64
	Marking  bool
	SetIndex int
}

// Snapshot returns a copy of the current state. setIndex is the position
// of the active annotation set, which the state does not own.
func (s *State) Snapshot(setIndex int) Snapshot {
	return Snapshot{
		Cursor:   s.cursor,
		Width:    s.width,
		Mode:     s.mode,
		Marker:   s.marker,
		Marking:  s.marking,
		SetIndex: setIndex,
	}
}
