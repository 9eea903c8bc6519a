package conv

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-signal/dsp/core"
	"github.com/cwbudde/algo-signal/dsp/fft"
)

// ErrInvalidInput is the root of every input-validation error in this
// package. Use errors.Is(err, ErrInvalidInput) to tell caller mistakes apart
// from transform failures.
var ErrInvalidInput = errors.New("conv: invalid input")

// Errors returned by convolution and correlation functions.
var (
	ErrEmptyInput     = fmt.Errorf("%w: empty input", ErrInvalidInput)
	ErrEmptyKernel    = fmt.Errorf("%w: empty kernel", ErrInvalidInput)
	ErrInvalidMode    = fmt.Errorf("%w: unknown mode", ErrInvalidInput)
	ErrLengthMismatch = fmt.Errorf("%w: buffer length mismatch", ErrInvalidInput)
)

// directThreshold is the shorter-operand length up to which Auto prefers
// direct summation over the FFT path.
const directThreshold = 64

// Convolve computes the linear convolution of signal and kernel by direct
// summation and trims it to mode. Inputs are not modified.
//
// This is an O(N*M) algorithm; see FastConvolve for long operands.
func Convolve(signal, kernel []float64, mode Mode) ([]float64, error) {
	if err := validate(signal, kernel, mode); err != nil {
		return nil, err
	}

	full := make([]float64, len(signal)+len(kernel)-1)
	DirectTo(full, signal, kernel)

	return trimToMode(full, len(signal), len(kernel), mode), nil
}

// FastConvolve computes the same result as Convolve through the frequency
// domain: both operands are zero-padded to a power of two of at least
// len(signal)+len(kernel)-1, multiplied bin by bin, and transformed back.
func FastConvolve(signal, kernel []float64, mode Mode) ([]float64, error) {
	if err := validate(signal, kernel, mode); err != nil {
		return nil, err
	}

	full, err := fftFull(signal, kernel)
	if err != nil {
		return nil, err
	}

	return trimToMode(full, len(signal), len(kernel), mode), nil
}

// Auto picks direct summation when the shorter operand is at most 64
// samples and the FFT path otherwise.
func Auto(a, b []float64, mode Mode) ([]float64, error) {
	if min(len(a), len(b)) <= directThreshold {
		return Convolve(a, b, mode)
	}
	return FastConvolve(a, b, mode)
}

// Direct performs direct time-domain linear convolution of a and b.
// Returns a new slice of length len(a) + len(b) - 1.
func Direct(a, b []float64) ([]float64, error) {
	return Convolve(a, b, ModeFull)
}

// DirectTo performs direct convolution, writing to a pre-allocated destination.
// dst must have length len(a) + len(b) - 1 and must not alias a or b.
func DirectTo(dst, a, b []float64) {
	core.Zero(dst)

	// Iterate over the longer operand so each accumulation spans the shorter
	// one; the sum is identical because convolution commutes.
	if len(b) > len(a) {
		a, b = b, a
	}

	m := len(b)
	for i, x := range a {
		floats.AddScaled(dst[i:i+m], x, b)
	}
}

// DirectCircular performs circular convolution of a and b.
// Both inputs must have the same length N, and the result has length N.
func DirectCircular(a, b []float64) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a), len(b))
	}

	n := len(a)
	result := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			result[(i+j)%n] += a[i] * b[j]
		}
	}

	return result, nil
}

// fftFull returns the full linear convolution of a and b computed via FFT.
func fftFull(a, b []float64) ([]float64, error) {
	fullLen := len(a) + len(b) - 1
	size := fft.ConvolutionSize(len(a), len(b))

	aFreq, err := fft.ForwardReal(a, size)
	if err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}

	bFreq, err := fft.ForwardReal(b, size)
	if err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}

	for i := range aFreq {
		aFreq[i] *= bFreq[i]
	}

	timeDomain, err := fft.InverseReal(aFreq)
	if err != nil {
		return nil, fmt.Errorf("conv: inverse FFT failed: %w", err)
	}

	return timeDomain[:fullLen:fullLen], nil
}

func validate(signal, kernel []float64, mode Mode) error {
	if len(signal) == 0 {
		return ErrEmptyInput
	}
	if len(kernel) == 0 {
		return ErrEmptyKernel
	}
	return mode.validate()
}

// trimToMode extracts the portion of a full convolution result selected by
// mode. The operands are treated symmetrically: "same" is centered on the
// longer operand and "valid" keeps only positions of complete overlap.
func trimToMode(full []float64, lenA, lenB int, mode Mode) []float64 {
	long, short := max(lenA, lenB), min(lenA, lenB)

	switch mode {
	case ModeSame:
		start := (short - 1) / 2
		return full[start : start+long]
	case ModeValid:
		return full[short-1 : long]
	default:
		return full
	}
}
