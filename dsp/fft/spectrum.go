package fft

import "github.com/cwbudde/algo-vecmath"

// Magnitude returns |X[k]| for every bin.
func Magnitude(X []complex128) []float64 {
	if len(X) == 0 {
		return nil
	}

	re, im := split(X)
	out := make([]float64, len(X))
	vecmath.Magnitude(out, re, im)

	return out
}

// Power returns |X[k]|^2 for every bin.
func Power(X []complex128) []float64 {
	if len(X) == 0 {
		return nil
	}

	re, im := split(X)
	out := make([]float64, len(X))
	vecmath.Power(out, re, im)

	return out
}

func split(X []complex128) (re, im []float64) {
	buf := make([]float64, 2*len(X))
	re, im = buf[:len(X)], buf[len(X):]
	for i, c := range X {
		re[i] = real(c)
		im[i] = imag(c)
	}
	return re, im
}
