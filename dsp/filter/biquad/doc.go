// Package biquad runs second-order IIR sections.
//
// A [Section] filters with one set of [Coefficients] in Direct Form II
// Transposed. A [Chain] cascades sections for higher orders and is what the
// designers in dsp/filter/design produce coefficients for. Frequency and
// impulse responses are available on both.
package biquad
