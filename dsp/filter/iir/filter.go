package iir

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-signal/dsp/filter/biquad"
)

// Filter is implemented by every IIR family in this package.
//
// Each operation designs a cascade for the given order and cutoff(s), runs
// signal through it from zero state and returns a new slice of the same
// length. Cutoffs are in Hz and must lie strictly between 0 and half the
// family's sample rate. Arguments are checked before any design or
// filtering takes place; signal is never modified.
type Filter interface {
	LowPass(signal []float64, order int, cutoff float64) ([]float64, error)
	HighPass(signal []float64, order int, cutoff float64) ([]float64, error)
	BandPass(signal []float64, order int, low, high float64) ([]float64, error)
	BandStop(signal []float64, order int, low, high float64) ([]float64, error)
}

// ErrInvalidInput is the root of every argument error in this package.
var ErrInvalidInput = errors.New("iir: invalid input")

// Errors returned by the filter families. All of them match ErrInvalidInput.
var (
	ErrInvalidSampleRate = fmt.Errorf("%w: sample rate must be positive", ErrInvalidInput)
	ErrInvalidOrder      = fmt.Errorf("%w: order out of range", ErrInvalidInput)
	ErrInvalidCutoff     = fmt.Errorf("%w: cutoff outside (0, Nyquist)", ErrInvalidInput)
	ErrInvalidBand       = fmt.Errorf("%w: low cutoff must be below high cutoff", ErrInvalidInput)
	ErrInvalidType       = fmt.Errorf("%w: unknown Chebyshev type", ErrInvalidInput)
	ErrInvalidRipple     = fmt.Errorf("%w: ripple must be positive", ErrInvalidInput)
)

// designFunc produces the sections of one response shape.
type designFunc func(freq float64, order int, sampleRate float64) []biquad.Coefficients

// cascade holds what every family shares: the sample rate, an order limit
// and the lowpass/highpass designers. The band shapes are built from those
// two.
type cascade struct {
	sampleRate float64
	maxOrder   int // 0 means unbounded
	lowpass    designFunc
	highpass   designFunc
}

func newCascade(sampleRate float64, maxOrder int, lowpass, highpass designFunc) (cascade, error) {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return cascade{}, fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}

	return cascade{
		sampleRate: sampleRate,
		maxOrder:   maxOrder,
		lowpass:    lowpass,
		highpass:   highpass,
	}, nil
}

func (c cascade) lowPass(signal []float64, order int, cutoff float64) ([]float64, error) {
	if err := c.checkSingle(order, cutoff); err != nil {
		return nil, err
	}
	return run(signal, c.lowpass(cutoff, order, c.sampleRate)), nil
}

func (c cascade) highPass(signal []float64, order int, cutoff float64) ([]float64, error) {
	if err := c.checkSingle(order, cutoff); err != nil {
		return nil, err
	}
	return run(signal, c.highpass(cutoff, order, c.sampleRate)), nil
}

// bandPass cascades a highpass at low with a lowpass at high.
func (c cascade) bandPass(signal []float64, order int, low, high float64) ([]float64, error) {
	if err := c.checkBand(order, low, high); err != nil {
		return nil, err
	}

	sections := append(c.highpass(low, order, c.sampleRate), c.lowpass(high, order, c.sampleRate)...)

	return run(signal, sections), nil
}

// bandStop sums a lowpass at low with a highpass at high, both fed the
// original signal.
func (c cascade) bandStop(signal []float64, order int, low, high float64) ([]float64, error) {
	if err := c.checkBand(order, low, high); err != nil {
		return nil, err
	}

	out := run(signal, c.lowpass(low, order, c.sampleRate))
	floats.Add(out, run(signal, c.highpass(high, order, c.sampleRate)))

	return out, nil
}

func (c cascade) checkSingle(order int, cutoff float64) error {
	if err := c.checkOrder(order); err != nil {
		return err
	}
	return c.checkCutoff(cutoff)
}

func (c cascade) checkBand(order int, low, high float64) error {
	if err := c.checkOrder(order); err != nil {
		return err
	}
	if err := c.checkCutoff(low); err != nil {
		return err
	}
	if err := c.checkCutoff(high); err != nil {
		return err
	}
	if low >= high {
		return fmt.Errorf("%w: low=%v high=%v", ErrInvalidBand, low, high)
	}
	return nil
}

func (c cascade) checkOrder(order int) error {
	if order <= 0 || (c.maxOrder > 0 && order > c.maxOrder) {
		if c.maxOrder > 0 {
			return fmt.Errorf("%w: %d (supported 1..%d)", ErrInvalidOrder, order, c.maxOrder)
		}
		return fmt.Errorf("%w: %d (must be positive)", ErrInvalidOrder, order)
	}
	return nil
}

func (c cascade) checkCutoff(cutoff float64) error {
	nyquist := c.sampleRate / 2
	if !(cutoff > 0 && cutoff < nyquist) {
		return fmt.Errorf("%w: %v Hz (Nyquist %v Hz)", ErrInvalidCutoff, cutoff, nyquist)
	}
	return nil
}

// run filters a copy of signal through a fresh chain built from sections.
func run(signal []float64, sections []biquad.Coefficients) []float64 {
	return biquad.NewChain(sections).Filter(signal)
}
