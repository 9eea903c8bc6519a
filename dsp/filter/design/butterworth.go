package design

import (
	"math"

	"github.com/cwbudde/algo-signal/dsp/filter/biquad"
)

// ButterworthLP designs a maximally flat lowpass cascade with its -3 dB
// point at freq. Pairs are emitted in order of increasing Q. An odd order
// ends with a first-order section (B2 = A2 = 0). Invalid arguments return nil.
func ButterworthLP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	if order <= 0 || !validCutoff(freq, sampleRate) {
		return nil
	}

	sections := make([]biquad.Coefficients, 0, (order+1)/2)
	for k := order/2 - 1; k >= 0; k-- {
		sections = append(sections, Lowpass(freq, butterworthQ(order, k), sampleRate))
	}
	if order%2 != 0 {
		wc, _ := prewarp(freq, sampleRate)
		sections = append(sections, prototype{poles: []complex128{-1}}.lowpass(wc)...)
	}

	return sections
}

// ButterworthHP designs the highpass counterpart of ButterworthLP.
func ButterworthHP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	if order <= 0 || !validCutoff(freq, sampleRate) {
		return nil
	}

	sections := make([]biquad.Coefficients, 0, (order+1)/2)
	for k := order/2 - 1; k >= 0; k-- {
		sections = append(sections, Highpass(freq, butterworthQ(order, k), sampleRate))
	}
	if order%2 != 0 {
		wc, _ := prewarp(freq, sampleRate)
		sections = append(sections, prototype{poles: []complex128{-1}}.highpass(wc)...)
	}

	return sections
}

// butterworthQ is the quality factor of the k-th pole pair, 0 <= k < order/2.
func butterworthQ(order, k int) float64 {
	return 1 / (2 * math.Sin(pairAngle(order, k)))
}
