package mode

import (
	"fmt"
	"strings"
)

// Mode identifies how keys that are not global are interpreted.
type Mode uint8

const (
	// Command is the initial mode.
	Command Mode = iota

	// Insert is a placeholder mode with no bindings of its own.
	Insert

	// ASCII writes typed characters into the data source.
	ASCII

	// Annotate edits colors and notes of the active annotation set.
	Annotate
)

// All lists every mode in display order.
var All = []Mode{Command, Insert, ASCII, Annotate}

// Standard mode names, as used in configuration.
const (
	NameCommand  = "command"
	NameInsert   = "insert"
	NameASCII    = "ascii"
	NameAnnotate = "annotate"
)

// Name returns the lowercase identifier of the mode.
func (m Mode) Name() string {
	switch m {
	case Command:
		return NameCommand
	case Insert:
		return NameInsert
	case ASCII:
		return NameASCII
	case Annotate:
		return NameAnnotate
	default:
		return "unknown"
	}
}

// String returns the human-readable mode name shown in the header.
func (m Mode) String() string {
	switch m {
	case Command:
		return "Command"
	case Insert:
		return "Insert"
	case ASCII:
		return "ASCII"
	case Annotate:
		return "Annotate"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	return m <= Annotate
}

// Parse returns the mode with the given name (case-insensitive).
func Parse(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameCommand:
		return Command, nil
	case NameInsert:
		return Insert, nil
	case NameASCII:
		return ASCII, nil
	case NameAnnotate:
		return Annotate, nil
	default:
		return Command, fmt.Errorf("unknown mode: %s", name)
	}
}
