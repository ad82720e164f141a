package annotation

import (
	"errors"
	"fmt"
)

// Errors returned by annotation operations.
var (
	// ErrInvalidColor indicates a color tag outside [MinColor, MaxColor].
	ErrInvalidColor = errors.New("invalid color tag")

	// ErrNoSets indicates a store was created without any set names.
	ErrNoSets = errors.New("at least one annotation set is required")

	// ErrDuplicateSet indicates two sets share a display name.
	ErrDuplicateSet = errors.New("duplicate annotation set name")
)

func checkColor(tag int) error {
	if tag < MinColor || tag > MaxColor {
		return fmt.Errorf("%w: %d (must be %d-%d)", ErrInvalidColor, tag, MinColor, MaxColor)
	}
	return nil
}
