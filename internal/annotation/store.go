package annotation

import "fmt"

// Store is the ordered, fixed list of annotation sets with one active set.
type Store struct {
	sets   []*Set
	active int
	policy ColorPolicy
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithColorPolicy sets the policy used for untagged addresses.
func WithColorPolicy(p ColorPolicy) StoreOption {
	return func(s *Store) {
		if p != nil {
			s.policy = p
		}
	}
}

// NewStore creates a store with one empty set per name, the first active.
func NewStore(names []string, opts ...StoreOption) (*Store, error) {
	if len(names) == 0 {
		return nil, ErrNoSets
	}

	seen := make(map[string]bool, len(names))
	sets := make([]*Set, 0, len(names))
	for _, name := range names {
		if seen[name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSet, name)
		}
		seen[name] = true
		sets = append(sets, NewSet(name))
	}

	s := &Store{
		sets:   sets,
		policy: NoPolicy,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// SetPolicy replaces the color policy. A nil policy restores NoPolicy.
func (s *Store) SetPolicy(p ColorPolicy) {
	if p == nil {
		p = NoPolicy
	}
	s.policy = p
}

// Len returns the number of sets.
func (s *Store) Len() int {
	return len(s.sets)
}

// Index returns the position of the active set.
func (s *Store) Index() int {
	return s.active
}

// Active returns the active set.
func (s *Store) Active() *Set {
	return s.sets[s.active]
}

// Sets returns the sets in order.
func (s *Store) Sets() []*Set {
	out := make([]*Set, len(s.sets))
	copy(out, s.sets)
	return out
}

// Cycle activates the next set, wrapping after the last, and returns the
// new index.
func (s *Store) Cycle() int {
	s.active = (s.active + 1) % len(s.sets)
	return s.active
}

// Name returns the display name of the active set.
func (s *Store) Name() string {
	return s.Active().Name()
}

// ColorOf returns the color for addr in the active set: the stored tag if
// present, otherwise the policy's default. Policy results outside the tag
// range fall back to MinColor.
func (s *Store) ColorOf(addr int64, b byte, ok bool, cursor int64) int {
	if tag, found := s.Active().Color(addr); found {
		return tag
	}
	tag := s.policy.DefaultColor(addr, b, ok, cursor)
	if tag < MinColor || tag > MaxColor {
		return MinColor
	}
	return tag
}

// SetColor stores tag for addr in the active set.
func (s *Store) SetColor(addr int64, tag int) error {
	return s.Active().SetColor(addr, tag)
}

// SetColorRange stores tag for lo..hi inclusive in the active set.
func (s *Store) SetColorRange(lo, hi int64, tag int) error {
	return s.Active().SetColorRange(lo, hi, tag)
}

// NoteOf returns the note for addr in the active set.
func (s *Store) NoteOf(addr int64) (string, bool) {
	return s.Active().Note(addr)
}

// SetNote stores the note for addr in the active set.
func (s *Store) SetNote(addr int64, text string) {
	s.Active().SetNote(addr, text)
}

// FirstLineOf returns the first note line for addr in the active set.
func (s *Store) FirstLineOf(addr int64) (string, bool) {
	return s.Active().FirstLine(addr)
}
