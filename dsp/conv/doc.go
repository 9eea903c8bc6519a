// Package conv provides linear convolution and cross/auto-correlation of
// real sequences in the three conventional alignment modes.
//
// Two algorithms compute the same result:
//
//   - [Convolve]: direct O(N*M) summation, best for short operands
//   - [FastConvolve]: zero-padded FFT multiplication, O(N log N)
//
// Both return the full result trimmed by a [Mode]:
//
//	ModeFull   len(a)+len(b)-1 samples
//	ModeSame   max(len(a), len(b)) samples, centered
//	ModeValid  max-min+1 samples of complete overlap
//
// The operands are treated symmetrically, so the kernel may be longer than
// the signal. [Auto] picks an algorithm from the operand lengths.
//
// # Usage
//
//	out, err := conv.Convolve(signal, kernel, conv.ModeSame)
//	out, err := conv.FastConvolve(signal, kernel, conv.ModeSame) // same values
//
// Mode tags can be parsed from text:
//
//	mode, err := conv.ParseMode("valid")
//
// # Correlation
//
// Cross-correlation is convolution with the time-reversed kernel. The
// stateless functions [Correlate] and [FastCorrelate] never modify their
// input. A [Correlator] keeps its operands between calls, defaults to
// ModeValid for cross-correlation and ModeFull for auto-correlation, and
// caches the last output:
//
//	c := conv.NewAutoCorrelator(signal)
//	acf, err := c.CrossCorrelate()
//	peakIdx, peakVal := conv.FindPeak(acf)
//	lag := conv.LagFromIndex(peakIdx, len(signal))
//
// Each Correlator call stores the reversed kernel, so the kernel orientation
// toggles from call to call; see [Correlator.Orientation].
//
// # Errors
//
// Empty operands and unknown modes are reported before any computation and
// match [ErrInvalidInput] via errors.Is. Failures of the underlying FFT are
// wrapped separately. NaN and Inf samples propagate through the arithmetic
// unchanged.
package conv
