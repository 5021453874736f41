package conic

import "math/cmplx"

// Matrix3 is a complex 3x3 matrix in row-major order. It is a value
// type: all methods return new matrices and never mutate the receiver.
//
//	| m0 m1 m2 |
//	| m3 m4 m5 |
//	| m6 m7 m8 |
type Matrix3 [9]complex128

// At returns the entry at the given row and column.
func (m Matrix3) At(row, col int) complex128 {
	return m[3*row+col]
}

// Add returns the entry-wise sum of two matrices.
func (m Matrix3) Add(o Matrix3) Matrix3 {
	var r Matrix3
	for i := range m {
		r[i] = m[i] + o[i]
	}
	return r
}

// Scale returns the matrix with every entry multiplied by s.
func (m Matrix3) Scale(s complex128) Matrix3 {
	var r Matrix3
	for i := range m {
		r[i] = s * m[i]
	}
	return r
}

// Transpose returns the transposed matrix.
func (m Matrix3) Transpose() Matrix3 {
	return Matrix3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// det2 is the 2x2 determinant a·d - b·c.
func det2(a, b, c, d complex128) complex128 {
	return a*d - b*c
}

// Det returns the determinant by cofactor expansion along the first row.
func (m Matrix3) Det() complex128 {
	return m[0]*det2(m[4], m[5], m[7], m[8]) -
		m[1]*det2(m[3], m[5], m[6], m[8]) +
		m[2]*det2(m[3], m[4], m[6], m[7])
}

// Adjugate returns the transpose of the cofactor matrix, so that
// m.Adjugate() multiplied by m equals Det()·I. For a rank-2 matrix the
// adjugate has rank 1, which makes its rows a source of null-space
// directions.
func (m Matrix3) Adjugate() Matrix3 {
	return Matrix3{
		det2(m[4], m[5], m[7], m[8]), -det2(m[1], m[2], m[7], m[8]), det2(m[1], m[2], m[4], m[5]),
		-det2(m[3], m[5], m[6], m[8]), det2(m[0], m[2], m[6], m[8]), -det2(m[0], m[2], m[3], m[5]),
		det2(m[3], m[4], m[6], m[7]), -det2(m[0], m[1], m[6], m[7]), det2(m[0], m[1], m[3], m[4]),
	}
}

// DominantRow returns the row with the greatest combined magnitude of
// its first two entries, or of all three entries when includeConstant
// is true. It is used to pull a representative line out of a rank-1
// matrix; ties resolve to the earliest row.
func (m Matrix3) DominantRow(includeConstant bool) Line {
	best, bestWeight := 0, -1.0
	for row := 0; row < 3; row++ {
		w := cmplx.Abs(m[3*row]) + cmplx.Abs(m[3*row+1])
		if includeConstant {
			w += cmplx.Abs(m[3*row+2])
		}
		if w > bestWeight {
			best, bestWeight = row, w
		}
	}
	return Line{m[3*best], m[3*best+1], m[3*best+2]}
}

// antisymmetric builds the anti-symmetric matrix corresponding to the
// cross product with r:
//
//	|   0   r2  -r1 |
//	| -r2    0   r0 |
//	|  r1  -r0    0 |
func antisymmetric(r Line) Matrix3 {
	return Matrix3{
		0, r[2], -r[1],
		-r[2], 0, r[0],
		r[1], -r[0], 0,
	}
}
