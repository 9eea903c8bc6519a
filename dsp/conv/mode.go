package conv

import (
	"fmt"
	"strings"
)

// Mode specifies the output alignment for convolution and correlation.
type Mode int

const (
	// ModeFull returns the full result with length len(a)+len(b)-1.
	ModeFull Mode = iota

	// ModeSame returns output with length max(len(a), len(b)), centered
	// on the full result.
	ModeSame

	// ModeValid returns only the portion where the signals fully overlap,
	// with length max(len(a), len(b)) - min(len(a), len(b)) + 1.
	ModeValid
)

var modeNames = [...]string{
	ModeFull:  "full",
	ModeSame:  "same",
	ModeValid: "valid",
}

// ParseMode converts "full", "same" or "valid" into a Mode. The match is
// exact; any other tag yields ErrInvalidMode.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if s == name {
			return Mode(m), nil
		}
	}
	return 0, fmt.Errorf("%w: %q (expected %s)", ErrInvalidMode, s, strings.Join(modeNames[:], ", "))
}

// String returns the mode tag accepted by ParseMode.
func (m Mode) String() string {
	if m.validate() != nil {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// OutputLen returns the result length of mode for operands of length n and
// k, or -1 if either is empty.
func (m Mode) OutputLen(n, k int) int {
	if n <= 0 || k <= 0 {
		return -1
	}
	switch m {
	case ModeSame:
		return max(n, k)
	case ModeValid:
		return max(n, k) - min(n, k) + 1
	default:
		return n + k - 1
	}
}

func (m Mode) validate() error {
	if m < ModeFull || m > ModeValid {
		return fmt.Errorf("%w: Mode(%d)", ErrInvalidMode, int(m))
	}
	return nil
}
