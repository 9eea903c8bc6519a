package conv

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-signal/internal/testutil"
)

type convolveFn struct {
	name string
	fn   func(a, b []float64, mode Mode) ([]float64, error)
}

var bothPaths = []convolveFn{
	{name: "direct", fn: Convolve},
	{name: "fft", fn: FastConvolve},
}

func TestConvolveKnownModes(t *testing.T) {
	signal := []float64{1, 2, 3}
	kernel := []float64{0, 1, 0.5}

	want := map[Mode][]float64{
		ModeFull:  {0, 1, 2.5, 4, 1.5},
		ModeSame:  {1, 2.5, 4},
		ModeValid: {2.5},
	}

	for _, path := range bothPaths {
		for mode, expected := range want {
			t.Run(path.name+"/"+mode.String(), func(t *testing.T) {
				got, err := path.fn(signal, kernel, mode)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				testutil.RequireSliceNearlyEqual(t, got, expected, 1e-12)
			})
		}
	}
}

func TestConvolveFull(t *testing.T) {
	tests := []struct {
		name     string
		a        []float64
		b        []float64
		expected []float64
	}{
		{
			name:     "simple 3x3",
			a:        []float64{1, 2, 3},
			b:        []float64{1, 1, 1},
			expected: []float64{1, 3, 6, 5, 3},
		},
		{
			name:     "impulse",
			a:        []float64{1, 2, 3, 4, 5},
			b:        []float64{1},
			expected: []float64{1, 2, 3, 4, 5},
		},
		{
			name:     "delayed impulse",
			a:        []float64{1, 2, 3, 4, 5},
			b:        []float64{0, 0, 1},
			expected: []float64{0, 0, 1, 2, 3, 4, 5},
		},
		{
			name:     "symmetric",
			a:        []float64{1, 2, 1},
			b:        []float64{1, 2, 1},
			expected: []float64{1, 4, 6, 4, 1},
		},
		{
			name:     "single samples",
			a:        []float64{3},
			b:        []float64{-2},
			expected: []float64{-6},
		},
	}

	for _, tt := range tests {
		for _, path := range bothPaths {
			t.Run(tt.name+"/"+path.name, func(t *testing.T) {
				got, err := path.fn(tt.a, tt.b, ModeFull)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				testutil.RequireSliceNearlyEqual(t, got, tt.expected, 1e-10)
			})
		}
	}
}

func TestConvolveKernelLongerThanSignal(t *testing.T) {
	a := []float64{1, 2}
	b := []float64{1, 1, 1, 1}

	want := map[Mode][]float64{
		ModeFull:  {1, 3, 3, 3, 2},
		ModeSame:  {1, 3, 3, 3},
		ModeValid: {3, 3, 3},
	}

	for _, path := range bothPaths {
		for mode, expected := range want {
			got, err := path.fn(a, b, mode)
			if err != nil {
				t.Fatalf("%s/%s: unexpected error: %v", path.name, mode, err)
			}
			testutil.RequireSliceNearlyEqual(t, got, expected, 1e-12)
		}
	}
}

func TestConvolveOutputLengths(t *testing.T) {
	for n := 1; n <= 9; n++ {
		for m := 1; m <= 9; m++ {
			a := testutil.DeterministicNoise(int64(n), 1, n)
			b := testutil.DeterministicNoise(int64(100+m), 1, m)

			for _, mode := range []Mode{ModeFull, ModeSame, ModeValid} {
				got, err := Convolve(a, b, mode)
				if err != nil {
					t.Fatalf("n=%d m=%d %s: %v", n, m, mode, err)
				}
				if want := mode.OutputLen(n, m); len(got) != want {
					t.Fatalf("n=%d m=%d %s: len=%d, want %d", n, m, mode, len(got), want)
				}
			}

			full, _ := Convolve(a, b, ModeFull)
			if len(full) != n+m-1 {
				t.Fatalf("n=%d m=%d: full len=%d, want %d", n, m, len(full), n+m-1)
			}
		}
	}
}

func TestFastConvolveMatchesDirect(t *testing.T) {
	sizes := [][2]int{
		{1, 1}, {1, 7}, {7, 1}, {5, 5}, {16, 3}, {3, 16},
		{100, 29}, {257, 64}, {1000, 333}, {64, 1024},
	}

	for _, size := range sizes {
		a := testutil.DeterministicNoise(int64(size[0]), 1, size[0])
		b := testutil.DeterministicNoise(int64(size[1]+7), 2, size[1])

		for _, mode := range []Mode{ModeFull, ModeSame, ModeValid} {
			t.Run(fmt.Sprintf("%dx%d/%s", size[0], size[1], mode), func(t *testing.T) {
				direct, err := Convolve(a, b, mode)
				if err != nil {
					t.Fatalf("direct: %v", err)
				}
				fast, err := FastConvolve(a, b, mode)
				if err != nil {
					t.Fatalf("fft: %v", err)
				}
				testutil.RequireSliceRelNearlyEqual(t, fast, direct, 1e-9)
			})
		}
	}
}

func TestConvolveCommutative(t *testing.T) {
	a := testutil.DeterministicNoise(3, 1, 37)
	b := testutil.DeterministicNoise(4, 1, 11)

	for _, path := range bothPaths {
		ab, err := path.fn(a, b, ModeFull)
		if err != nil {
			t.Fatalf("%s: %v", path.name, err)
		}
		ba, err := path.fn(b, a, ModeFull)
		if err != nil {
			t.Fatalf("%s: %v", path.name, err)
		}
		testutil.RequireSliceNearlyEqual(t, ab, ba, 1e-12)
	}
}

func TestConvolveDoesNotMutateInput(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	b := []float64{0.5, -1}
	aCopy := append([]float64(nil), a...)
	bCopy := append([]float64(nil), b...)

	for _, path := range bothPaths {
		for _, mode := range []Mode{ModeFull, ModeSame, ModeValid} {
			if _, err := path.fn(a, b, mode); err != nil {
				t.Fatalf("%s: %v", path.name, err)
			}
		}
	}

	testutil.RequireSliceNearlyEqual(t, a, aCopy, 0)
	testutil.RequireSliceNearlyEqual(t, b, bCopy, 0)
}

func TestConvolveErrors(t *testing.T) {
	for _, path := range bothPaths {
		_, err := path.fn(nil, []float64{1}, ModeFull)
		if !errors.Is(err, ErrEmptyInput) || !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s: expected ErrEmptyInput, got %v", path.name, err)
		}

		_, err = path.fn([]float64{1}, []float64{}, ModeFull)
		if !errors.Is(err, ErrEmptyKernel) || !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s: expected ErrEmptyKernel, got %v", path.name, err)
		}

		_, err = path.fn([]float64{1, 2}, []float64{1}, Mode(7))
		if !errors.Is(err, ErrInvalidMode) || !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s: expected ErrInvalidMode, got %v", path.name, err)
		}
	}
}

func TestConvolvePropagatesNaN(t *testing.T) {
	got, err := Convolve([]float64{1, math.NaN(), 3}, []float64{1}, ModeFull)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0] != 1 || !math.IsNaN(got[1]) || got[2] != 3 {
		t.Fatalf("got %v, want [1 NaN 3]", got)
	}
}

func TestAuto(t *testing.T) {
	short := testutil.DeterministicNoise(1, 1, 16)
	long := testutil.DeterministicNoise(2, 1, 200)
	signal := testutil.DeterministicNoise(3, 1, 500)

	for _, kernel := range [][]float64{short, long} {
		want, err := Convolve(signal, kernel, ModeSame)
		if err != nil {
			t.Fatalf("direct: %v", err)
		}
		got, err := Auto(signal, kernel, ModeSame)
		if err != nil {
			t.Fatalf("auto: %v", err)
		}
		testutil.RequireSliceRelNearlyEqual(t, got, want, 1e-9)
	}

	if _, err := Auto(nil, short, ModeFull); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestDirect(t *testing.T) {
	got, err := Direct([]float64{1, 2, 3}, []float64{1, 1, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{1, 3, 6, 5, 3}, 1e-12)
}

func TestDirectToOverwritesDestination(t *testing.T) {
	dst := []float64{9, 9, 9, 9}
	DirectTo(dst, []float64{1, 2}, []float64{1, 0, 1})
	testutil.RequireSliceNearlyEqual(t, dst, []float64{1, 2, 1, 2}, 0)
}

func TestDirectCircular(t *testing.T) {
	a := []float64{1, 2, 3, 4}

	got, err := DirectCircular(a, []float64{1, 0, 0, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, a, 1e-12)

	got, err = DirectCircular(a, []float64{0, 1, 0, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{4, 1, 2, 3}, 1e-12)
}

func TestDirectCircularErrors(t *testing.T) {
	if _, err := DirectCircular(nil, []float64{1}); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
	if _, err := DirectCircular([]float64{1, 2}, []float64{1}); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("expected ErrLengthMismatch, got %v", err)
	}
}
