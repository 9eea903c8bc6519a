package conv_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-signal/dsp/conv"
)

func ExampleConvolve() {
	signal := []float64{1, 2, 3}
	kernel := []float64{0, 1, 0.5}

	for _, tag := range []string{"full", "same", "valid"} {
		mode, _ := conv.ParseMode(tag)
		out, _ := conv.Convolve(signal, kernel, mode)
		fmt.Println(tag, out)
	}

	// Output:
	// full [0 1 2.5 4 1.5]
	// same [1 2.5 4]
	// valid [2.5]
}

func ExampleFastConvolve() {
	signal := make([]float64, 1000)
	for i := range signal {
		signal[i] = math.Sin(2 * math.Pi * float64(i) / 50)
	}

	kernel := make([]float64, 100)
	for i := range kernel {
		kernel[i] = math.Exp(-float64(i) / 20)
	}

	direct, _ := conv.Convolve(signal, kernel, conv.ModeSame)
	fast, _ := conv.FastConvolve(signal, kernel, conv.ModeSame)

	maxDiff := 0.0
	for i := range direct {
		maxDiff = math.Max(maxDiff, math.Abs(direct[i]-fast[i]))
	}

	fmt.Printf("Output length: %d\n", len(fast))
	fmt.Printf("Paths agree: %v\n", maxDiff < 1e-9)

	// Output:
	// Output length: 1000
	// Paths agree: true
}

func ExampleCorrelator() {
	c := conv.NewAutoCorrelator([]float64{1, 2, 3})

	acf, _ := c.CrossCorrelate()
	fmt.Println(acf, c.Orientation())

	// Output:
	// [3 8 14 8 3] reversed
}

func ExampleFindPeak() {
	template := []float64{1, -1, 2}
	signal := []float64{0, 0, 0, 0, 1, -1, 2, 0}

	corr, _ := conv.Correlate(signal, template, conv.ModeFull)
	idx, val := conv.FindPeak(corr)

	fmt.Printf("lag=%d value=%.0f\n", conv.LagFromIndex(idx, len(template)), val)

	// Output:
	// lag=4 value=6
}
