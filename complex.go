package conic

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats/scalar"
)

// Complex helpers backing the closed-form polynomial solvers. Complex
// values are plain complex128; arithmetic, magnitude, argument,
// conjugation and the principal square root (positive at zero imaginary
// part) all come from the language and math/cmplx. Only the pieces the
// solvers need beyond that live here.

// equalsEpsilon reports whether a and b agree component-wise within tol.
func equalsEpsilon(a, b complex128, tol float64) bool {
	return scalar.EqualWithinAbs(real(a), real(b), tol) &&
		scalar.EqualWithinAbs(imag(a), imag(b), tol)
}

// nearReal reports whether the imaginary part of z is negligible.
func nearReal(z complex128, tol float64) bool {
	return math.Abs(imag(z)) <= tol
}

// cubeRoots returns the three cube roots of z: magnitude^(1/3) at
// angles θ/3, θ/3+2π/3 and θ/3+4π/3, where θ is the principal argument.
// For z = 0 all three roots are zero.
func cubeRoots(z complex128) [3]complex128 {
	r := math.Cbrt(cmplx.Abs(z))
	theta := cmplx.Phase(z) / 3
	const third = 2 * math.Pi / 3
	return [3]complex128{
		cmplx.Rect(r, theta),
		cmplx.Rect(r, theta+third),
		cmplx.Rect(r, theta+2*third),
	}
}
