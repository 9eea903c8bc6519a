package iir

import "github.com/cwbudde/algo-signal/dsp/filter/design"

// Butterworth filters with a maximally flat passband. Cutoffs are -3 dB
// points.
type Butterworth struct {
	c cascade
}

var _ Filter = (*Butterworth)(nil)

// NewButterworth returns a Butterworth family for the given sample rate.
func NewButterworth(sampleRate float64) (*Butterworth, error) {
	c, err := newCascade(sampleRate, 0, design.ButterworthLP, design.ButterworthHP)
	if err != nil {
		return nil, err
	}
	return &Butterworth{c: c}, nil
}

// SampleRate returns the sample rate in Hz.
func (b *Butterworth) SampleRate() float64 { return b.c.sampleRate }

// LowPass implements Filter.
func (b *Butterworth) LowPass(signal []float64, order int, cutoff float64) ([]float64, error) {
	return b.c.lowPass(signal, order, cutoff)
}

// HighPass implements Filter.
func (b *Butterworth) HighPass(signal []float64, order int, cutoff float64) ([]float64, error) {
	return b.c.highPass(signal, order, cutoff)
}

// BandPass implements Filter.
func (b *Butterworth) BandPass(signal []float64, order int, low, high float64) ([]float64, error) {
	return b.c.bandPass(signal, order, low, high)
}

// BandStop implements Filter.
func (b *Butterworth) BandStop(signal []float64, order int, low, high float64) ([]float64, error) {
	return b.c.bandStop(signal, order, low, high)
}
