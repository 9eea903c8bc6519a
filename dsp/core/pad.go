package core

import (
	"errors"
	"fmt"
)

// ErrInvalidPad is returned when a padding request cannot be satisfied.
var ErrInvalidPad = errors.New("core: invalid padding")

// PadMode selects how samples outside the signal are synthesized.
type PadMode int

const (
	// PadConstant fills with zeros: 0 0 | a b c d | 0 0
	PadConstant PadMode = iota

	// PadReflect reflects about the edge, repeating the edge sample:
	// b a | a b c d | d c
	PadReflect

	// PadNearest repeats the edge sample: a a | a b c d | d d
	PadNearest

	// PadMirror reflects about the edge sample without repeating it:
	// c b | a b c d | c b
	PadMirror

	// PadWrap wraps around to the opposite edge: c d | a b c d | a b
	PadWrap
)

// String returns the lower-case name of the mode.
func (m PadMode) String() string {
	switch m {
	case PadConstant:
		return "constant"
	case PadReflect:
		return "reflect"
	case PadNearest:
		return "nearest"
	case PadMirror:
		return "mirror"
	case PadWrap:
		return "wrap"
	default:
		return fmt.Sprintf("PadMode(%d)", int(m))
	}
}

// Pad returns a copy of x extended by n samples on both sides according to
// mode. Reflect, nearest and wrap require n <= len(x); mirror requires
// n < len(x).
func Pad(x []float64, n int, mode PadMode) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative width %d", ErrInvalidPad, n)
	}
	if n == 0 {
		return Clone(x), nil
	}
	if mode == PadConstant {
		return PadZeros(x, n, n), nil
	}

	l := len(x)
	switch mode {
	case PadReflect, PadNearest, PadWrap:
		if l == 0 || n > l {
			return nil, fmt.Errorf("%w: %s width %d exceeds length %d", ErrInvalidPad, mode, n, l)
		}
	case PadMirror:
		if n >= l {
			return nil, fmt.Errorf("%w: mirror width %d must be below length %d", ErrInvalidPad, n, l)
		}
	default:
		return nil, fmt.Errorf("%w: unknown mode %s", ErrInvalidPad, mode)
	}

	out := make([]float64, l+2*n)
	copy(out[n:], x)

	for i := 0; i < n; i++ {
		// i counts outward from the edge: 0 is the sample adjacent to x.
		var head, tail float64
		switch mode {
		case PadReflect:
			head, tail = x[i], x[l-1-i]
		case PadNearest:
			head, tail = x[0], x[l-1]
		case PadMirror:
			head, tail = x[i+1], x[l-2-i]
		case PadWrap:
			head, tail = x[l-1-i], x[i]
		}
		out[n-1-i] = head
		out[n+l+i] = tail
	}

	return out, nil
}
