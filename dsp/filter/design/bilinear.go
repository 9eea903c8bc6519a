package design

import (
	"math"

	"github.com/cwbudde/algo-signal/dsp/filter/biquad"
)

// validCutoff reports whether freq lies strictly between 0 and Nyquist.
func validCutoff(freq, sampleRate float64) bool {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return false
	}
	return freq > 0 && freq < sampleRate/2
}

// prewarp returns tan(pi*freq/sampleRate), the analog frequency that the
// bilinear map s = (z-1)/(z+1) sends to freq.
func prewarp(freq, sampleRate float64) (float64, bool) {
	if !validCutoff(freq, sampleRate) {
		return 0, false
	}
	return math.Tan(math.Pi * freq / sampleRate), true
}

// analogSection is the s-domain ratio
//
//	(num[2]*s^2 + num[1]*s + num[0]) / (den[2]*s^2 + den[1]*s + den[0]).
//
// A section with num[2] == den[2] == 0 is first order.
type analogSection struct {
	num, den [3]float64
}

// bilinear maps an analog section to the z-domain with s = (z-1)/(z+1).
func bilinear(a analogSection) biquad.Coefficients {
	n, d := a.num, a.den

	if n[2] == 0 && d[2] == 0 {
		// Multiply through by (z+1) only, so no pole/zero pair cancels at -1.
		a0 := d[1] + d[0]
		if a0 == 0 {
			return biquad.Coefficients{}
		}
		return biquad.Coefficients{
			B0: (n[1] + n[0]) / a0,
			B1: (n[0] - n[1]) / a0,
			A1: (d[0] - d[1]) / a0,
		}
	}

	return normalizeBiquad(
		n[2]+n[1]+n[0], 2*(n[0]-n[2]), n[2]-n[1]+n[0],
		d[2]+d[1]+d[0], 2*(d[0]-d[2]), d[2]-d[1]+d[0],
	)
}

// gainAt returns H(z) at z = 1 (dc) or z = -1 (Nyquist).
func gainAt(c biquad.Coefficients, z float64) float64 {
	return (c.B0 + z*c.B1 + c.B2) / (1 + z*c.A1 + c.A2)
}

// normalizeGain scales the numerator so that |H| = 1 at z.
func normalizeGain(c biquad.Coefficients, z float64) biquad.Coefficients {
	g := gainAt(c, z)
	if g == 0 || math.IsNaN(g) || math.IsInf(g, 0) {
		return c
	}

	c.B0 /= g
	c.B1 /= g
	c.B2 /= g

	return c
}

// scaleNumerator multiplies the numerator of c by g.
func scaleNumerator(c biquad.Coefficients, g float64) biquad.Coefficients {
	c.B0 *= g
	c.B1 *= g
	c.B2 *= g

	return c
}
