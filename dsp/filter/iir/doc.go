// Package iir provides frequency-selective IIR filters behind a common
// [Filter] interface.
//
// Three families implement it: [Butterworth], [Chebyshev] (Type 1 or 2) and
// [Bessel]. A family is constructed for a sample rate and holds no signal
// state, so one value can be shared between goroutines. Every call designs
// its own cascade with dsp/filter/design and runs it through a
// dsp/filter/biquad chain.
//
// Band-pass is a highpass at the low cutoff followed by a lowpass at the
// high cutoff, so its order is twice the requested one. Band-stop is the sum
// of a lowpass at the low cutoff and a highpass at the high cutoff.
//
// Filtering always preserves length. Invalid arguments are reported as
// errors matching [ErrInvalidInput] before any work is done.
package iir
