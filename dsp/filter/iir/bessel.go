package iir

import "github.com/cwbudde/algo-signal/dsp/filter/design"

// MaxBesselOrder is the highest order the Bessel family accepts.
const MaxBesselOrder = design.MaxBesselOrder

// Bessel filters with maximally flat group delay, so the waveform shape of
// the passband survives. Cutoffs are -3 dB points and orders above
// MaxBesselOrder are rejected.
type Bessel struct {
	c cascade
}

var _ Filter = (*Bessel)(nil)

// NewBessel returns a Bessel family for the given sample rate.
func NewBessel(sampleRate float64) (*Bessel, error) {
	c, err := newCascade(sampleRate, MaxBesselOrder, design.BesselLP, design.BesselHP)
	if err != nil {
		return nil, err
	}
	return &Bessel{c: c}, nil
}

// SampleRate returns the sample rate in Hz.
func (b *Bessel) SampleRate() float64 { return b.c.sampleRate }

// LowPass implements Filter.
func (b *Bessel) LowPass(signal []float64, order int, cutoff float64) ([]float64, error) {
	return b.c.lowPass(signal, order, cutoff)
}

// HighPass implements Filter.
func (b *Bessel) HighPass(signal []float64, order int, cutoff float64) ([]float64, error) {
	return b.c.highPass(signal, order, cutoff)
}

// BandPass implements Filter.
func (b *Bessel) BandPass(signal []float64, order int, low, high float64) ([]float64, error) {
	return b.c.bandPass(signal, order, low, high)
}

// BandStop implements Filter.
func (b *Bessel) BandStop(signal []float64, order int, low, high float64) ([]float64, error) {
	return b.c.bandStop(signal, order, low, high)
}
