package fft

// NextPowerOf2 returns the smallest power of two >= n (1 for n <= 1).
func NextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// IsPowerOf2 reports whether n is a positive power of two.
func IsPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// ConvolutionSize returns the transform length used to linearly convolve
// sequences of length n and m without circular wrap-around.
func ConvolutionSize(n, m int) int {
	return NextPowerOf2(n + m - 1)
}
