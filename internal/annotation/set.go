package annotation

import "strings"

// Color tag bounds.
const (
	MinColor = 0
	MaxColor = 9
)

// Set is a named collection of color tags and notes keyed by address.
type Set struct {
	name   string
	colors map[int64]int
	notes  map[int64]string
}

// NewSet creates an empty set.
func NewSet(name string) *Set {
	return &Set{
		name:   name,
		colors: make(map[int64]int),
		notes:  make(map[int64]string),
	}
}

// Name returns the display name.
func (s *Set) Name() string {
	return s.name
}

// Color returns the stored tag for addr.
func (s *Set) Color(addr int64) (int, bool) {
	tag, ok := s.colors[addr]
	return tag, ok
}

// SetColor stores tag for addr.
func (s *Set) SetColor(addr int64, tag int) error {
	if err := checkColor(tag); err != nil {
		return err
	}
	s.colors[addr] = tag
	return nil
}

// SetColorRange stores tag for every address between lo and hi inclusive.
// The bounds may be given in either order.
func (s *Set) SetColorRange(lo, hi int64, tag int) error {
	if err := checkColor(tag); err != nil {
		return err
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	for addr := lo; ; addr++ {
		s.colors[addr] = tag
		if addr == hi {
			break
		}
	}
	return nil
}

// Note returns the note stored for addr.
func (s *Set) Note(addr int64) (string, bool) {
	note, ok := s.notes[addr]
	return note, ok
}

// SetNote stores or replaces the note for addr. An empty text removes it.
func (s *Set) SetNote(addr int64, text string) {
	if text == "" {
		delete(s.notes, addr)
		return
	}
	s.notes[addr] = text
}

// FirstLine returns the first line of the note stored for addr.
func (s *Set) FirstLine(addr int64) (string, bool) {
	note, ok := s.notes[addr]
	if !ok {
		return "", false
	}
	first, _, _ := strings.Cut(note, "\n")
	return first, true
}

// ColorCount returns the number of addresses with a stored tag.
func (s *Set) ColorCount() int {
	return len(s.colors)
}

// NoteCount returns the number of addresses with a note.
func (s *Set) NoteCount() int {
	return len(s.notes)
}
