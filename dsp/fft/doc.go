// Package fft is the single transform utility used by the rest of the module.
//
// It wraps algo-fft plans with zero-padding to an arbitrary length and
// normalized inverses, so the fast convolution path and any spectrum
// consumer share one implementation.
//
//	X, err := fft.ForwardReal(signal, fft.NextPowerOf2(len(signal)))
//	y, err := fft.InverseReal(X)
//
// Each call creates its own plan and buffers, so the functions are safe for
// concurrent use.
package fft
