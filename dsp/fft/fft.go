package fft

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Errors returned by the transform helpers.
var (
	ErrEmptyInput    = errors.New("fft: empty input")
	ErrInvalidLength = errors.New("fft: invalid transform length")
)

// Forward computes the DFT of x zero-padded to n points. n == 0 selects
// len(x). x is not modified.
func Forward(x []complex128, n int) ([]complex128, error) {
	n, err := transformLen(len(x), n)
	if err != nil {
		return nil, err
	}

	buf := make([]complex128, n)
	copy(buf, x)

	return transform(buf, false)
}

// ForwardReal computes the DFT of the real sequence x zero-padded to n
// points. n == 0 selects len(x).
func ForwardReal(x []float64, n int) ([]complex128, error) {
	n, err := transformLen(len(x), n)
	if err != nil {
		return nil, err
	}

	buf := make([]complex128, n)
	for i, v := range x {
		buf[i] = complex(v, 0)
	}

	return transform(buf, false)
}

// Inverse computes the normalized inverse DFT of X.
func Inverse(X []complex128) ([]complex128, error) {
	if len(X) == 0 {
		return nil, ErrEmptyInput
	}

	buf := make([]complex128, len(X))
	copy(buf, X)

	return transform(buf, true)
}

// InverseReal computes the normalized inverse DFT of X and returns its real
// part. The imaginary residue is discarded.
func InverseReal(X []complex128) ([]float64, error) {
	y, err := Inverse(X)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(y))
	for i, v := range y {
		out[i] = real(v)
	}

	return out, nil
}

// transform runs an in-place transform on buf using a plan owned by this call.
func transform(buf []complex128, inverse bool) ([]complex128, error) {
	if len(buf) == 1 {
		// A one-point DFT is the identity in both directions.
		return buf, nil
	}

	plan, err := algofft.NewPlan64(len(buf))
	if err != nil {
		return nil, fmt.Errorf("fft: failed to create plan of size %d: %w", len(buf), err)
	}

	if inverse {
		err = plan.Inverse(buf, buf)
	} else {
		err = plan.Forward(buf, buf)
	}
	if err != nil {
		return nil, fmt.Errorf("fft: transform of size %d failed: %w", len(buf), err)
	}

	return buf, nil
}

func transformLen(inputLen, n int) (int, error) {
	if inputLen == 0 {
		return 0, ErrEmptyInput
	}
	if n == 0 {
		return inputLen, nil
	}
	if n < inputLen {
		return 0, fmt.Errorf("%w: %d is shorter than the input (%d)", ErrInvalidLength, n, inputLen)
	}
	return n, nil
}
