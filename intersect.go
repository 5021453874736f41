package conic

import "math"

// Conic represents a conic section A·x² + B·xy + C·y² + D·x + E·y + F = 0
// as a symmetric 3x3 matrix in homogeneous coordinates, stored row-major
// with half-coefficients off the diagonal:
//
//	|  A   B/2  D/2 |
//	| B/2   C   E/2 |
//	| D/2  E/2   F  |
type Conic [9]float64

// FromCoefficients builds a conic from the six scalar coefficients of
// A·x² + B·xy + C·y² + D·x + E·y + F = 0.
func FromCoefficients(a, b, c, d, e, f float64) Conic {
	return Conic{
		a, b / 2, d / 2,
		b / 2, c, e / 2,
		d / 2, e / 2, f,
	}
}

// Circle returns the conic of the circle with the given center and radius.
func Circle(center Point, radius float64) Conic {
	return FromCoefficients(1, 0, 1,
		-2*center.X, -2*center.Y,
		center.X*center.X+center.Y*center.Y-radius*radius)
}

// Ellipse returns the conic of an axis-aligned ellipse with radii rx, ry
// rotated by rotation radians about its center.
func Ellipse(center Point, rx, ry, rotation float64) Conic {
	cos, sin := math.Cos(rotation), math.Sin(rotation)
	ia, ib := 1/(rx*rx), 1/(ry*ry)

	a := cos*cos*ia + sin*sin*ib
	b := 2 * cos * sin * (ia - ib)
	c := sin*sin*ia + cos*cos*ib

	d := -2*a*center.X - b*center.Y
	e := -b*center.X - 2*c*center.Y
	f := a*center.X*center.X + b*center.X*center.Y + c*center.Y*center.Y - 1
	return FromCoefficients(a, b, c, d, e, f)
}

// At returns the matrix entry at the given row and column.
func (c Conic) At(row, col int) float64 {
	return c[3*row+col]
}

// Coefficients returns the six scalar coefficients (A, B, C, D, E, F)
// of the conic equation, doubling the off-diagonal matrix entries.
func (c Conic) Coefficients() (a, b, cc, d, e, f float64) {
	return c[0], 2 * c[1], c[4], 2 * c[2], 2 * c[5], c[8]
}

// Eval returns the residual of the conic equation at p. A point lies on
// the conic exactly when the residual is zero.
func (c Conic) Eval(p Point) float64 {
	a, b, cc, d, e, f := c.Coefficients()
	return a*p.X*p.X + b*p.X*p.Y + cc*p.Y*p.Y + d*p.X + e*p.Y + f
}

// Matrix returns the conic as a complex Matrix3.
func (c Conic) Matrix() Matrix3 {
	var m Matrix3
	for i, v := range c {
		m[i] = complex(v, 0)
	}
	return m
}

// Result holds the intersection points of two conics together with the
// intermediate pencil diagnostics.
type Result struct {
	// Points are the real intersection points (up to four; duplicates
	// within tolerance are merged, so near-coincident tangency points
	// may still appear more than once).
	Points []Point
	// DegenerateConics are the up-to-three degenerate pencil members,
	// after rank-1 correction.
	DegenerateConics []Matrix3
	// Lines are the decomposed line pairs, one per degenerate member.
	Lines [][2]Line
	// Solutions are the per-member real solution sets found by direct
	// extraction: single points, or point+direction for an entire line.
	Solutions [][]Solution
}

// verifyTol bounds both the conic residual of an accepted intersection
// point and the distance below which two candidates merge.
const verifyTol = 1e-6

// Intersect computes the real intersection points of two conics.
//
// Both inputs must be non-degenerate (determinant well away from zero);
// behavior on degenerate inputs is unspecified. When the pencil cubic
// yields no roots the conics are taken to be coincident (an infinite
// overlap) and an empty Result is returned. The only error is
// ErrUnsolvableConic, propagated from the extraction bootstrap on an
// unanticipated degeneracy.
func Intersect(a, b Conic) (*Result, error) {
	c3, c2, c1, c0 := pencilCubic(a, b)
	roots := SolveCubic(complex(c3, 0), complex(c2, 0), complex(c1, 0), complex(c0, 0))

	res := &Result{}
	var lambdas []complex128
	switch roots.Kind {
	case FiniteRoots:
		lambdas = dedupExact(roots.Values)
	case NoRoots, AllRoots:
		// Likely an infinite overlap (coincident conics); the cubic for
		// that case collapses to a triple root, which reports empty.
		logger().Debug("pencil cubic has no distinct roots; assuming coincident conics")
		return res, nil
	}
	logger().Debug("solved pencil cubic", "roots", len(roots.Values), "unique", len(lambdas))

	ma, mb := a.Matrix(), b.Matrix()
	var candidates []Point
	for _, l := range lambdas {
		member := ma.Scale(l).Add(mb)

		// The extraction works on the uncorrected member: a conjugate
		// line pair crosses at a real point that neither decomposed
		// line exposes on its own.
		sols, err := realSolutions(member)
		if err != nil {
			return nil, err
		}

		deg := forceRank1(member)
		l1, l2 := linePair(deg)

		res.DegenerateConics = append(res.DegenerateConics, deg)
		res.Lines = append(res.Lines, [2]Line{l1, l2})
		res.Solutions = append(res.Solutions, sols)
		for _, s := range sols {
			if !s.Line {
				candidates = append(candidates, s.Point)
			}
		}
	}

	// Pairwise line intersections, including each member against
	// itself: the two lines of a single degenerate member cross at a
	// point that is the whole story for tangential contact.
	for i := range res.Lines {
		if p, ok := IntersectLines(res.Lines[i][0], res.Lines[i][1]); ok {
			candidates = append(candidates, p)
		}
		for j := i + 1; j < len(res.Lines); j++ {
			for _, la := range res.Lines[i] {
				for _, lb := range res.Lines[j] {
					if p, ok := IntersectLines(la, lb); ok {
						candidates = append(candidates, p)
					}
				}
			}
		}
	}

	// Keep candidates that actually satisfy both inputs, merging
	// duplicates. Spurious crossings (for example the lines of a
	// limiting point circle in a non-intersecting pencil) fail the
	// residual check.
	for _, p := range candidates {
		if math.Abs(a.Eval(p)) > verifyTol || math.Abs(b.Eval(p)) > verifyTol {
			continue
		}
		dup := false
		for _, q := range res.Points {
			if q.Distance(p) < verifyTol {
				dup = true
				break
			}
		}
		if !dup {
			res.Points = append(res.Points, p)
		}
	}
	logger().Debug("intersection complete",
		"members", len(res.DegenerateConics),
		"candidates", len(candidates),
		"points", len(res.Points))
	return res, nil
}

// pencilCubic expands det(λ·A + B) into its cubic coefficients in λ,
// using multilinearity of the determinant in the columns.
func pencilCubic(a, b Conic) (c3, c2, c1, c0 float64) {
	ca := [3][3]float64{
		{a[0], a[3], a[6]},
		{a[1], a[4], a[7]},
		{a[2], a[5], a[8]},
	}
	cb := [3][3]float64{
		{b[0], b[3], b[6]},
		{b[1], b[4], b[7]},
		{b[2], b[5], b[8]},
	}

	c3 = colDet(ca[0], ca[1], ca[2])
	c2 = colDet(cb[0], ca[1], ca[2]) + colDet(ca[0], cb[1], ca[2]) + colDet(ca[0], ca[1], cb[2])
	c1 = colDet(ca[0], cb[1], cb[2]) + colDet(cb[0], ca[1], cb[2]) + colDet(cb[0], cb[1], ca[2])
	c0 = colDet(cb[0], cb[1], cb[2])
	return c3, c2, c1, c0
}

// colDet is the determinant of the matrix with columns u, v, w.
func colDet(u, v, w [3]float64) float64 {
	return u[0]*(v[1]*w[2]-v[2]*w[1]) -
		u[1]*(v[0]*w[2]-v[2]*w[0]) +
		u[2]*(v[0]*w[1]-v[1]*w[0])
}

// dedupExact removes exactly-equal duplicates, preserving first-seen
// order. The cubic solver produces repeated roots as identical values,
// so no tolerance is needed.
func dedupExact(vs []complex128) []complex128 {
	out := make([]complex128, 0, len(vs))
	for _, v := range vs {
		seen := false
		for _, u := range out {
			if u == v {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, v)
		}
	}
	return out
}
