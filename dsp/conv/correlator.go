package conv

import "github.com/cwbudde/algo-signal/dsp/core"

// Correlator holds the operands of a cross- or auto-correlation and the most
// recent result.
//
// Every successful CrossCorrelate* call time-reverses the stored kernel
// before convolving, and the reversed kernel is kept. A second call on the
// same Correlator therefore reverses it back and convolves with the
// original orientation. Orientation reports the current state.
//
// A Correlator is not safe for concurrent use.
type Correlator struct {
	signal      []float64
	kernel      []float64
	output      []float64
	auto        bool
	orientation Orientation
}

// NewCorrelator prepares a cross-correlation of signal with kernel.
// The default mode is ModeValid.
func NewCorrelator(signal, kernel []float64) *Correlator {
	return &Correlator{signal: signal, kernel: kernel}
}

// NewAutoCorrelator prepares an auto-correlation of signal.
// The default mode is ModeFull.
func NewAutoCorrelator(signal []float64) *Correlator {
	return &Correlator{signal: signal, kernel: signal, auto: true}
}

// CrossCorrelate correlates in DefaultMode using direct summation.
func (c *Correlator) CrossCorrelate() ([]float64, error) {
	return c.CrossCorrelateMode(c.DefaultMode())
}

// CrossCorrelateMode correlates in mode using direct summation.
func (c *Correlator) CrossCorrelateMode(mode Mode) ([]float64, error) {
	return c.run(mode, Convolve)
}

// FastCrossCorrelate correlates in DefaultMode using the FFT path.
func (c *Correlator) FastCrossCorrelate() ([]float64, error) {
	return c.FastCrossCorrelateMode(c.DefaultMode())
}

// FastCrossCorrelateMode correlates in mode using the FFT path.
func (c *Correlator) FastCrossCorrelateMode(mode Mode) ([]float64, error) {
	return c.run(mode, FastConvolve)
}

// run validates before touching any state, so a failed call leaves the
// kernel orientation and cached output unchanged.
func (c *Correlator) run(mode Mode, fn convolveFunc) ([]float64, error) {
	if err := validate(c.signal, c.kernel, mode); err != nil {
		return nil, err
	}

	reversed := core.Reverse(c.kernel)
	out, err := fn(c.signal, reversed, mode)
	if err != nil {
		return nil, err
	}

	c.kernel = reversed
	c.orientation = c.orientation.Toggle()
	c.output = out

	return out, nil
}

// DefaultMode is ModeFull for auto-correlation and ModeValid otherwise.
func (c *Correlator) DefaultMode() Mode {
	if c.auto {
		return ModeFull
	}
	return ModeValid
}

// Output returns the result of the last successful call, or nil if there
// has been none.
func (c *Correlator) Output() []float64 { return c.output }

// Signal returns the first operand.
func (c *Correlator) Signal() []float64 { return c.signal }

// Kernel returns the kernel as currently stored (see Orientation).
func (c *Correlator) Kernel() []float64 { return c.kernel }

// Orientation reports whether the stored kernel is currently reversed.
func (c *Correlator) Orientation() Orientation { return c.orientation }

// IsAuto reports whether the Correlator was built for auto-correlation.
func (c *Correlator) IsAuto() bool { return c.auto }
