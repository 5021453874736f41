package conic

import "math/cmplx"

// Line is a homogeneous line [a, b, c] with complex coefficients,
// meaning a·x + b·y + c = 0. Complex coefficients are the normal case
// here: a degenerate conic often factors into a conjugate pair of
// complex lines whose individual points are almost all non-real.
type Line [3]complex128

// lineDetTol is the determinant threshold below which two lines are
// treated as parallel or coincident.
const lineDetTol = 1e-8

// IntersectLines returns the real intersection point of two homogeneous
// lines. It reports false when the lines are (numerically) parallel or
// when the intersection point has a non-negligible imaginary part.
func IntersectLines(l1, l2 Line) (Point, bool) {
	det := l2[0]*l1[1] - l1[0]*l2[1]
	if cmplx.Abs(det) < lineDetTol {
		return Point{}, false
	}

	x := (l1[2]*l2[1] - l2[2]*l1[1]) / det

	// Back-substitute through whichever line has the stronger y
	// coefficient; det ≠ 0 guarantees at least one does.
	var y complex128
	if cmplx.Abs(l1[1]) >= cmplx.Abs(l2[1]) {
		y = -(l1[2] + l1[0]*x) / l1[1]
	} else {
		y = -(l2[2] + l2[0]*x) / l2[1]
	}

	if !nearReal(x, realTol) || !nearReal(y, realTol) {
		return Point{}, false
	}
	return Pt(real(x), real(y)), true
}
