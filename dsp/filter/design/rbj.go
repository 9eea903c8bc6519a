package design

import (
	"math"

	"github.com/cwbudde/algo-signal/dsp/filter/biquad"
)

const defaultQ = 1 / math.Sqrt2

// Lowpass designs a second-order lowpass at freq (Hz) with quality factor q,
// using the RBJ cookbook formulas. A non-positive q selects 1/sqrt(2).
// Invalid frequencies yield zero coefficients.
func Lowpass(freq, q, sampleRate float64) biquad.Coefficients {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok {
		return biquad.Coefficients{}
	}

	cw, sw := math.Cos(w0), math.Sin(w0)
	alpha := sw / (2 * normalizedQ(q))
	b := 1 - cw

	return normalizeBiquad(b/2, b, b/2, 1+alpha, -2*cw, 1-alpha)
}

// Highpass designs a second-order highpass at freq (Hz) with quality factor
// q, using the RBJ cookbook formulas.
func Highpass(freq, q, sampleRate float64) biquad.Coefficients {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok {
		return biquad.Coefficients{}
	}

	cw, sw := math.Cos(w0), math.Sin(w0)
	alpha := sw / (2 * normalizedQ(q))
	b := 1 + cw

	return normalizeBiquad(b/2, -b, b/2, 1+alpha, -2*cw, 1-alpha)
}

func normalizedW0(freq, sampleRate float64) (float64, bool) {
	if !validCutoff(freq, sampleRate) {
		return 0, false
	}
	return 2 * math.Pi * freq / sampleRate, true
}

func normalizedQ(q float64) float64 {
	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		return defaultQ
	}
	return q
}

func normalizeBiquad(b0, b1, b2, a0, a1, a2 float64) biquad.Coefficients {
	if a0 == 0 || math.IsNaN(a0) || math.IsInf(a0, 0) {
		return biquad.Coefficients{}
	}

	return biquad.Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
}
