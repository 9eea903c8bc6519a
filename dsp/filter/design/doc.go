// Package design computes IIR coefficients for dsp/filter/biquad.
//
// Lowpass and Highpass are single RBJ cookbook sections. The cascade
// designers (Butterworth, Chebyshev Type I and II, Bessel) start from an
// analog prototype, pre-warp the cutoff and apply the bilinear transform,
// returning one [biquad.Coefficients] per pole pair plus a first-order
// section for odd orders.
//
// Designers return nil (or zero coefficients for single sections) when the
// frequency is not strictly between 0 and Nyquist or the order is out of
// range. Callers that need a reason validate first.
package design
