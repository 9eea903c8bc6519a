package core

import "gonum.org/v1/gonum/floats"

// Clone returns a copy of x. A nil input yields an empty, non-nil slice.
func Clone(x []float64) []float64 {
	out := make([]float64, len(x))
	copy(out, x)
	return out
}

// Reverse returns a new slice holding the samples of x in reverse order.
// x itself is left untouched.
func Reverse(x []float64) []float64 {
	out := Clone(x)
	floats.Reverse(out)
	return out
}

// Slice returns a copy of x[start:end] with both bounds clamped to
// [0, len(x)]. An empty slice is returned when start >= end after clamping.
func Slice(x []float64, start, end int) []float64 {
	start = clampIndex(start, len(x))
	end = clampIndex(end, len(x))
	if start >= end {
		return []float64{}
	}
	return Clone(x[start:end])
}

// ZeroExtend returns a copy of x extended with trailing zeros to length n.
// If n <= len(x) the result is an unmodified copy of x.
func ZeroExtend(x []float64, n int) []float64 {
	if n <= len(x) {
		return Clone(x)
	}
	out := make([]float64, n)
	CopyInto(out, x)
	return out
}

// PadZeros returns a copy of x with before leading and after trailing zeros.
// Negative counts are treated as zero.
func PadZeros(x []float64, before, after int) []float64 {
	before = max(before, 0)
	after = max(after, 0)

	out := make([]float64, before+len(x)+after)
	copy(out[before:], x)
	return out
}

// SumSquares returns the energy of x, i.e. the sum of its squared samples.
func SumSquares(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return floats.Dot(x, x)
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}
