package session

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidAddress is returned for text that is not a hex address.
var ErrInvalidAddress = errors.New("invalid address")

// ParseAddress parses a hexadecimal address as typed into the goto prompt.
// Surrounding whitespace, an optional sign and an optional 0x prefix are
// accepted. Negative addresses clamp to 0 and addresses above
// math.MaxInt64 clamp to math.MaxInt64.
func ParseAddress(text string) (int64, error) {
	s := strings.TrimSpace(text)
	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	if s == "" || s[0] == '+' || s[0] == '-' {
		return 0, fmt.Errorf("%w %q", ErrInvalidAddress, strings.TrimSpace(text))
	}

	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w %q", ErrInvalidAddress, strings.TrimSpace(text))
	}
	switch {
	case neg:
		return 0, nil
	case err != nil || v > math.MaxInt64:
		return math.MaxInt64, nil
	}
	return int64(v), nil
}
