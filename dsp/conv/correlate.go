package conv

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-signal/dsp/core"
)

// Orientation records whether a kernel is stored in its original sample
// order or time-reversed.
type Orientation int

const (
	// OrientationOriginal means the kernel is in the order it was supplied.
	OrientationOriginal Orientation = iota

	// OrientationReversed means the kernel has already been time-reversed.
	OrientationReversed
)

// String returns "original" or "reversed".
func (o Orientation) String() string {
	switch o {
	case OrientationOriginal:
		return "original"
	case OrientationReversed:
		return "reversed"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// Toggle returns the opposite orientation.
func (o Orientation) Toggle() Orientation {
	if o == OrientationReversed {
		return OrientationOriginal
	}
	return OrientationReversed
}

type convolveFunc func(signal, kernel []float64, mode Mode) ([]float64, error)

// Correlate computes the cross-correlation of a and b in the given mode by
// direct summation:
//
//	corr[k] = sum_i a[i] * b[i-k]  ==  Convolve(a, reverse(b))[k]
//
// In ModeFull, output index k corresponds to lag k - (len(b) - 1).
func Correlate(a, b []float64, mode Mode) ([]float64, error) {
	return CorrelateOriented(a, b, mode, OrientationOriginal)
}

// FastCorrelate is Correlate computed through the FFT path.
func FastCorrelate(a, b []float64, mode Mode) ([]float64, error) {
	return correlate(a, b, mode, OrientationOriginal, FastConvolve)
}

// CorrelateOriented is the stateless form of Correlator.CrossCorrelateMode.
// orientation states how b is currently stored: an OrientationReversed
// kernel is convolved as is, an OrientationOriginal one is reversed first.
func CorrelateOriented(a, b []float64, mode Mode, orientation Orientation) ([]float64, error) {
	return correlate(a, b, mode, orientation, Convolve)
}

func correlate(a, b []float64, mode Mode, orientation Orientation, fn convolveFunc) ([]float64, error) {
	if err := validate(a, b, mode); err != nil {
		return nil, err
	}
	if orientation == OrientationOriginal {
		b = core.Reverse(b)
	}
	return fn(a, b, mode)
}

// AutoCorrelate computes the full auto-correlation of a.
// The result has length 2*len(a) - 1 and the zero lag sits at index len(a)-1.
func AutoCorrelate(a []float64) ([]float64, error) {
	return Correlate(a, a, ModeFull)
}

// AutoCorrelateNormalized computes the auto-correlation scaled so that the
// zero-lag value is 1. An all-zero input is returned unscaled.
func AutoCorrelateNormalized(a []float64) ([]float64, error) {
	result, err := AutoCorrelate(a)
	if err != nil {
		return nil, err
	}

	if zeroLag := result[len(a)-1]; zeroLag != 0 {
		floats.Scale(1/zeroLag, result)
	}

	return result, nil
}

// CorrelateNormalized computes the full cross-correlation divided by the
// product of the L2 norms of a and b, producing values in [-1, 1].
func CorrelateNormalized(a, b []float64) ([]float64, error) {
	result, err := Correlate(a, b, ModeFull)
	if err != nil {
		return nil, err
	}

	if norm := floats.Norm(a, 2) * floats.Norm(b, 2); norm != 0 {
		floats.Scale(1/norm, result)
	}

	return result, nil
}

// FindPeak finds the index and value of the maximum in a correlation result.
// Returns -1 for an empty slice.
func FindPeak(corr []float64) (index int, value float64) {
	if len(corr) == 0 {
		return -1, 0
	}

	index = floats.MaxIdx(corr)
	return index, corr[index]
}

// LagFromIndex converts a full-mode correlation index to a lag, given the
// length of the second operand.
func LagFromIndex(index, lenB int) int {
	return index - (lenB - 1)
}

// IndexFromLag converts a lag to a full-mode correlation index.
func IndexFromLag(lag, lenB int) int {
	return lag + (lenB - 1)
}
