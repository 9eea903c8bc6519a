package design

import (
	"math"

	"github.com/cwbudde/algo-signal/dsp/filter/biquad"
)

// Chebyshev1LP designs a lowpass Chebyshev Type I cascade with rippleDB of
// equiripple in the passband. freq is the passband edge, where the response
// has fallen by rippleDB. The passband peak is 0 dB for every order.
// Invalid arguments, including rippleDB <= 0, return nil.
func Chebyshev1LP(freq float64, order int, rippleDB, sampleRate float64) []biquad.Coefficients {
	if order <= 0 || !(rippleDB > 0) {
		return nil
	}
	wc, ok := prewarp(freq, sampleRate)
	if !ok {
		return nil
	}

	return chebyshev1Trim(chebyshev1Prototype(order, rippleDB).lowpass(wc), order, rippleDB)
}

// Chebyshev1HP designs the highpass counterpart of Chebyshev1LP.
func Chebyshev1HP(freq float64, order int, rippleDB, sampleRate float64) []biquad.Coefficients {
	if order <= 0 || !(rippleDB > 0) {
		return nil
	}
	wc, ok := prewarp(freq, sampleRate)
	if !ok {
		return nil
	}

	return chebyshev1Trim(chebyshev1Prototype(order, rippleDB).highpass(wc), order, rippleDB)
}

// chebyshev1Trim lowers an even-order cascade by the ripple depth. Each
// section is built with unity gain at the passband end, which for even
// orders is a ripple trough rather than a peak.
func chebyshev1Trim(sections []biquad.Coefficients, order int, rippleDB float64) []biquad.Coefficients {
	if order%2 == 0 && len(sections) > 0 {
		sections[0] = scaleNumerator(sections[0], math.Pow(10, -rippleDB/20))
	}
	return sections
}

// Chebyshev2LP designs a lowpass Chebyshev Type II (inverse Chebyshev)
// cascade: flat passband, equiripple stopband at least stopbandDB down.
// freq is the stopband edge. Invalid arguments, including stopbandDB <= 0,
// return nil.
func Chebyshev2LP(freq float64, order int, stopbandDB, sampleRate float64) []biquad.Coefficients {
	if order <= 0 || !(stopbandDB > 0) {
		return nil
	}
	wc, ok := prewarp(freq, sampleRate)
	if !ok {
		return nil
	}

	return chebyshev2Prototype(order, stopbandDB).lowpass(wc)
}

// Chebyshev2HP designs the highpass counterpart of Chebyshev2LP.
func Chebyshev2HP(freq float64, order int, stopbandDB, sampleRate float64) []biquad.Coefficients {
	if order <= 0 || !(stopbandDB > 0) {
		return nil
	}
	wc, ok := prewarp(freq, sampleRate)
	if !ok {
		return nil
	}

	return chebyshev2Prototype(order, stopbandDB).highpass(wc)
}
