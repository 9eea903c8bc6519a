package conv

import (
	"fmt"
	"math"
	"testing"
)

func BenchmarkConvolve(b *testing.B) {
	sizes := []struct {
		signal int
		kernel int
	}{
		{256, 8},
		{1024, 32},
		{4096, 64},
		{4096, 256},
	}

	for _, size := range sizes {
		signal := makeTestSignal(size.signal)
		kernel := makeTestKernel(size.kernel)

		b.Run(fmt.Sprintf("signal=%d_kernel=%d", size.signal, size.kernel), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = Convolve(signal, kernel, ModeFull)
			}
		})
	}
}

func BenchmarkFastConvolve(b *testing.B) {
	sizes := []struct {
		signal int
		kernel int
	}{
		{1024, 64},
		{4096, 64},
		{4096, 256},
		{16384, 1024},
	}

	for _, size := range sizes {
		signal := makeTestSignal(size.signal)
		kernel := makeTestKernel(size.kernel)

		b.Run(fmt.Sprintf("signal=%d_kernel=%d", size.signal, size.kernel), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = FastConvolve(signal, kernel, ModeFull)
			}
		})
	}
}

func BenchmarkCorrelator(b *testing.B) {
	signal := makeTestSignal(4096)
	kernel := makeTestKernel(128)

	b.Run("direct", func(b *testing.B) {
		c := NewCorrelator(signal, kernel)
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = c.CrossCorrelate()
		}
	})

	b.Run("fft", func(b *testing.B) {
		c := NewCorrelator(signal, kernel)
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = c.FastCrossCorrelate()
		}
	})
}

func makeTestSignal(n int) []float64 {
	signal := make([]float64, n)
	for i := range signal {
		signal[i] = math.Sin(2*math.Pi*float64(i)/64) + 0.5*math.Sin(2*math.Pi*float64(i)/17)
	}
	return signal
}

func makeTestKernel(n int) []float64 {
	kernel := make([]float64, n)
	sum := 0.0
	for i := range kernel {
		kernel[i] = math.Exp(-float64(i) / float64(n/4+1))
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}
