package biquad

import "math/cmplx"

// Poles returns the roots of 1 + A1*z^-1 + A2*z^-2. A first-order section
// reports its single pole first and 0 second.
func (c *Coefficients) Poles() [2]complex128 {
	return quadraticRoots(1, c.A1, c.A2)
}

// Zeros returns the roots of B0 + B1*z^-1 + B2*z^-2.
func (c *Coefficients) Zeros() [2]complex128 {
	return quadraticRoots(c.B0, c.B1, c.B2)
}

// IsStable reports whether both poles lie strictly inside the unit circle.
func (c *Coefficients) IsStable() bool {
	for _, p := range c.Poles() {
		if cmplx.Abs(p) >= 1 {
			return false
		}
	}

	return true
}

// IsStable reports whether every section of the cascade is stable.
func (c *Chain) IsStable() bool {
	for i := range c.sections {
		if !c.sections[i].IsStable() {
			return false
		}
	}

	return true
}

// quadraticRoots solves a*z^2 + b*z + c = 0, which has the same roots as
// a + b*z^-1 + c*z^-2 = 0 for z != 0.
func quadraticRoots(a, b, c float64) [2]complex128 {
	if c == 0 {
		// z*(a*z + b): one root at 0, the other at -b/a.
		if a == 0 {
			return [2]complex128{}
		}
		return [2]complex128{complex(-b/a, 0), 0}
	}
	if a == 0 {
		if b == 0 {
			return [2]complex128{}
		}
		return [2]complex128{complex(-c/b, 0), 0}
	}

	sqrtDisc := cmplx.Sqrt(complex(b*b-4*a*c, 0))
	den := complex(2*a, 0)

	return [2]complex128{
		(complex(-b, 0) + sqrtDisc) / den,
		(complex(-b, 0) - sqrtDisc) / den,
	}
}
