package iir_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-signal/dsp/core"
	"github.com/cwbudde/algo-signal/dsp/filter/iir"
)

func ExampleButterworth_LowPass() {
	const fs = 8000.0

	// 200 Hz wanted tone plus 3 kHz interference.
	signal := make([]float64, 4000)
	for i := range signal {
		t := float64(i) / fs
		signal[i] = math.Sin(2*math.Pi*200*t) + math.Sin(2*math.Pi*3000*t)
	}

	bw, err := iir.NewButterworth(fs)
	if err != nil {
		panic(err)
	}

	out, err := bw.LowPass(signal, 6, 800)
	if err != nil {
		panic(err)
	}

	fmt.Println("length preserved:", len(out) == len(signal))
	fmt.Printf("rms: in %.2f, out %.2f\n", core.RMS(signal[2000:]), core.RMS(out[2000:]))
	// Output:
	// length preserved: true
	// rms: in 1.00, out 0.71
}

func ExampleFilter() {
	cheby, _ := iir.NewChebyshev(48000, iir.WithType(2), iir.WithStopbandDB(60))
	bessel, _ := iir.NewBessel(48000)

	for _, f := range []iir.Filter{cheby, bessel} {
		_, err := f.BandPass([]float64{1, 2, 3}, 4, 5000, 1000)
		fmt.Println(errors.Is(err, iir.ErrInvalidBand), errors.Is(err, iir.ErrInvalidInput))
	}
	// Output:
	// true true
	// true true
}
