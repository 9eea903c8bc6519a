package design

import (
	"math"

	"github.com/cwbudde/algo-signal/dsp/filter/biquad"
)

// prototype is an analog lowpass with cutoff 1 rad/s.
//
// poles holds one member of each conjugate pair (imag > 0) followed by the
// real pole of an odd order, if any. zeros, when present, holds the
// imaginary-axis zero frequency of the i-th pair; all-pole prototypes
// leave it nil.
type prototype struct {
	poles []complex128
	zeros []float64
}

// lowpass scales the prototype to wc and converts each pole group to a
// digital section with unity gain at dc.
func (p prototype) lowpass(wc float64) []biquad.Coefficients {
	sections := make([]biquad.Coefficients, 0, len(p.poles))

	for i, pole := range p.poles {
		pole *= complex(wc, 0)

		var a analogSection
		if imag(pole) == 0 {
			a.num = [3]float64{1, 0, 0}
			a.den = [3]float64{-real(pole), 1, 0}
		} else {
			a.num = [3]float64{1, 0, 0}
			if i < len(p.zeros) {
				w := wc * p.zeros[i]
				a.num = [3]float64{w * w, 0, 1}
			}
			a.den = pairDenominator(pole)
		}

		sections = append(sections, normalizeGain(bilinear(a), 1))
	}

	return sections
}

// highpass applies s -> wc/s to the prototype and converts each pole group
// to a digital section with unity gain at Nyquist.
func (p prototype) highpass(wc float64) []biquad.Coefficients {
	sections := make([]biquad.Coefficients, 0, len(p.poles))

	for i, pole := range p.poles {
		pole = complex(wc, 0) / pole

		var a analogSection
		if imag(pole) == 0 {
			a.num = [3]float64{0, 1, 0}
			a.den = [3]float64{-real(pole), 1, 0}
		} else {
			a.num = [3]float64{0, 0, 1}
			if i < len(p.zeros) {
				w := wc / p.zeros[i]
				a.num = [3]float64{w * w, 0, 1}
			}
			a.den = pairDenominator(pole)
		}

		sections = append(sections, normalizeGain(bilinear(a), -1))
	}

	return sections
}

// pairDenominator returns (s - p)(s - conj(p)) = s^2 - 2*Re(p)*s + |p|^2.
func pairDenominator(p complex128) [3]float64 {
	re, im := real(p), imag(p)
	return [3]float64{re*re + im*im, -2 * re, 1}
}

// pairAngle is the angle of the k-th Butterworth pole pair measured from
// the imaginary axis.
func pairAngle(order, k int) float64 {
	return math.Pi * float64(2*k+1) / float64(2*order)
}

// chebyshev1Prototype places poles on an ellipse for a passband ripple of
// rippleDB. The cutoff is the passband edge.
func chebyshev1Prototype(order int, rippleDB float64) prototype {
	eps := math.Sqrt(math.Pow(10, rippleDB/10) - 1)
	mu := math.Asinh(1/eps) / float64(order)
	sh, ch := math.Sinh(mu), math.Cosh(mu)

	poles := make([]complex128, 0, (order+1)/2)
	for k := order/2 - 1; k >= 0; k-- {
		theta := pairAngle(order, k)
		poles = append(poles, complex(-sh*math.Sin(theta), ch*math.Cos(theta)))
	}
	if order%2 != 0 {
		poles = append(poles, complex(-sh, 0))
	}

	return prototype{poles: poles}
}

// chebyshev2Prototype inverts the Type I poles and adds imaginary-axis zeros
// for a stopband attenuation of stopbandDB. The cutoff is the stopband edge.
func chebyshev2Prototype(order int, stopbandDB float64) prototype {
	eps := 1 / math.Sqrt(math.Pow(10, stopbandDB/10)-1)
	mu := math.Asinh(1/eps) / float64(order)
	sh, ch := math.Sinh(mu), math.Cosh(mu)

	poles := make([]complex128, 0, (order+1)/2)
	zeros := make([]float64, 0, order/2)
	for k := order/2 - 1; k >= 0; k-- {
		theta := pairAngle(order, k)
		poles = append(poles, 1/complex(-sh*math.Sin(theta), ch*math.Cos(theta)))
		zeros = append(zeros, 1/math.Cos(theta))
	}
	if order%2 != 0 {
		poles = append(poles, complex(-1/sh, 0))
	}

	return prototype{poles: poles, zeros: zeros}
}

// besselPrototype returns the -3 dB normalized Bessel poles.
func besselPrototype(order int) prototype {
	delay := besselDelayPoles[order]
	scale := besselScaleFactors[order]

	poles := make([]complex128, len(delay))
	for i, p := range delay {
		poles[i] = p / complex(scale, 0)
	}

	return prototype{poles: poles}
}
