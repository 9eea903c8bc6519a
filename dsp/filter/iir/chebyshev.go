package iir

import (
	"fmt"

	"github.com/cwbudde/algo-signal/dsp/filter/biquad"
	"github.com/cwbudde/algo-signal/dsp/filter/design"
)

// Defaults for NewChebyshev.
const (
	DefaultRippleDB   = 1.0
	DefaultStopbandDB = 40.0
)

// Chebyshev filters trade passband or stopband flatness for a steeper
// transition than Butterworth of the same order.
//
// Type 1 (the default) has equiripple in the passband and its cutoffs are
// passband edges. Type 2 has a flat passband, an equiripple stopband, and its
// cutoffs are stopband edges.
type Chebyshev struct {
	c          cascade
	kind       int
	rippleDB   float64
	stopbandDB float64
}

var _ Filter = (*Chebyshev)(nil)

type chebyshevConfig struct {
	kind       int
	rippleDB   float64
	stopbandDB float64
}

// Option configures a Chebyshev family.
type Option func(*chebyshevConfig)

// WithType selects Chebyshev Type 1 or 2.
func WithType(kind int) Option {
	return func(cfg *chebyshevConfig) { cfg.kind = kind }
}

// WithRippleDB sets the Type 1 passband ripple in dB.
func WithRippleDB(db float64) Option {
	return func(cfg *chebyshevConfig) { cfg.rippleDB = db }
}

// WithStopbandDB sets the minimum Type 2 stopband attenuation in dB.
func WithStopbandDB(db float64) Option {
	return func(cfg *chebyshevConfig) { cfg.stopbandDB = db }
}

// NewChebyshev returns a Chebyshev family for the given sample rate.
func NewChebyshev(sampleRate float64, opts ...Option) (*Chebyshev, error) {
	cfg := chebyshevConfig{
		kind:       1,
		rippleDB:   DefaultRippleDB,
		stopbandDB: DefaultStopbandDB,
	}
	for _, o := range opts {
		o(&cfg)
	}

	var lowpass, highpass designFunc
	switch cfg.kind {
	case 1:
		if !(cfg.rippleDB > 0) {
			return nil, fmt.Errorf("%w: %v dB", ErrInvalidRipple, cfg.rippleDB)
		}
		lowpass = func(f float64, n int, fs float64) []biquad.Coefficients {
			return design.Chebyshev1LP(f, n, cfg.rippleDB, fs)
		}
		highpass = func(f float64, n int, fs float64) []biquad.Coefficients {
			return design.Chebyshev1HP(f, n, cfg.rippleDB, fs)
		}
	case 2:
		if !(cfg.stopbandDB > 0) {
			return nil, fmt.Errorf("%w: stopband %v dB", ErrInvalidRipple, cfg.stopbandDB)
		}
		lowpass = func(f float64, n int, fs float64) []biquad.Coefficients {
			return design.Chebyshev2LP(f, n, cfg.stopbandDB, fs)
		}
		highpass = func(f float64, n int, fs float64) []biquad.Coefficients {
			return design.Chebyshev2HP(f, n, cfg.stopbandDB, fs)
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidType, cfg.kind)
	}

	c, err := newCascade(sampleRate, 0, lowpass, highpass)
	if err != nil {
		return nil, err
	}

	return &Chebyshev{
		c:          c,
		kind:       cfg.kind,
		rippleDB:   cfg.rippleDB,
		stopbandDB: cfg.stopbandDB,
	}, nil
}

// SampleRate returns the sample rate in Hz.
func (ch *Chebyshev) SampleRate() float64 { return ch.c.sampleRate }

// Type returns 1 or 2.
func (ch *Chebyshev) Type() int { return ch.kind }

// RippleDB returns the Type 1 passband ripple.
func (ch *Chebyshev) RippleDB() float64 { return ch.rippleDB }

// StopbandDB returns the Type 2 stopband attenuation.
func (ch *Chebyshev) StopbandDB() float64 { return ch.stopbandDB }

// LowPass implements Filter.
func (ch *Chebyshev) LowPass(signal []float64, order int, cutoff float64) ([]float64, error) {
	return ch.c.lowPass(signal, order, cutoff)
}

// HighPass implements Filter.
func (ch *Chebyshev) HighPass(signal []float64, order int, cutoff float64) ([]float64, error) {
	return ch.c.highPass(signal, order, cutoff)
}

// BandPass implements Filter.
func (ch *Chebyshev) BandPass(signal []float64, order int, low, high float64) ([]float64, error) {
	return ch.c.bandPass(signal, order, low, high)
}

// BandStop implements Filter.
func (ch *Chebyshev) BandStop(signal []float64, order int, low, high float64) ([]float64, error) {
	return ch.c.bandStop(signal, order, low, high)
}
