package fft

import "testing"

func TestNextPowerOf2(t *testing.T) {
	tests := []struct{ in, want int }{
		{-3, 1}, {0, 1}, {1, 1}, {2, 2}, {3, 4}, {5, 8}, {64, 64}, {65, 128},
	}
	for _, tt := range tests {
		if got := NextPowerOf2(tt.in); got != tt.want {
			t.Errorf("NextPowerOf2(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestIsPowerOf2(t *testing.T) {
	for _, n := range []int{1, 2, 4, 1024} {
		if !IsPowerOf2(n) {
			t.Errorf("IsPowerOf2(%d) = false", n)
		}
	}
	for _, n := range []int{-4, 0, 3, 6, 1000} {
		if IsPowerOf2(n) {
			t.Errorf("IsPowerOf2(%d) = true", n)
		}
	}
}

func TestConvolutionSize(t *testing.T) {
	if got := ConvolutionSize(3, 3); got != 8 {
		t.Fatalf("ConvolutionSize(3, 3) = %d, want 8", got)
	}
	if got := ConvolutionSize(1, 1); got != 1 {
		t.Fatalf("ConvolutionSize(1, 1) = %d, want 1", got)
	}
	if got := ConvolutionSize(100, 29); got != 128 {
		t.Fatalf("ConvolutionSize(100, 29) = %d, want 128", got)
	}
}
