package conic

// Degenerate-conic handling: a pencil member with zero determinant is a
// line pair, but as a symmetric matrix it has rank 2. Adding a scaled
// anti-symmetric correction drops it to rank 1 without changing its
// zero-set, after which the two lines fall out as a row and a column.

// forceRank1 forces a degenerate (det ≈ 0) conic matrix to exact rank 1.
// The correction direction comes from the dominant row r of the
// adjugate, which spans the null space of a rank-2 matrix; the scale λ
// is chosen so the top-left 2x2 minor of m + λ·antisymmetric(r)
// vanishes. When that minor is already identically singular the matrix
// is returned unchanged.
func forceRank1(m Matrix3) Matrix3 {
	adj := m.Adjugate()
	s := antisymmetric(adj.DominantRow(true))

	// (m0+λs0)(m4+λs4) - (m1+λs1)(m3+λs3) = 0, a quadratic in λ.
	a := s[0]*s[4] - s[1]*s[3]
	b := m[0]*s[4] + s[0]*m[4] - m[1]*s[3] - s[1]*m[3]
	c := m[0]*m[4] - m[1]*m[3]

	roots := SolveQuadratic(a, b, c)
	switch roots.Kind {
	case FiniteRoots:
		// Any root works; take the first for determinism.
		return m.Add(s.Scale(roots.Values[0]))
	case NoRoots, AllRoots:
		return m
	}
	return m
}

// linePair extracts the two lines of a rank-1 conic matrix. The matrix
// is the outer product of the two line coefficient vectors, so its rows
// are multiples of one line and its columns multiples of the other.
func linePair(m Matrix3) (Line, Line) {
	return m.DominantRow(false), m.Transpose().DominantRow(false)
}
