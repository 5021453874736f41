package conic

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Real-solution extraction: given one member of the pencil (before any
// rank-1 correction), find the real points that satisfy it directly.
// This matters because a degenerate member can be a pair of complex-
// conjugate lines whose single real point is not visible on either
// decomposed line by itself.
//
// The member is treated as a surface in 4 real dimensions
// (Re x, Re y, Im x, Im y). Starting from a complex seed solution, the
// directions that stay on the surface to first order form a 2D basis;
// classifying the imaginary components of that basis tells us whether
// the seed can be slid to a unique real point, a whole real line, or
// no real point at all. For a line pair the surface is ruled, so the
// first-order slide is exact.

// ErrUnsolvableConic is returned when no usable seed solution exists on
// either probe axis. This happens for conics that are degenerate in a
// way the pencil construction does not anticipate (for example an
// empty conic such as 0·x + 0·y + c = 0) and is a hard failure, not a
// "no intersection" result.
var ErrUnsolvableConic = errors.New("conic: cannot bootstrap real-solution extraction")

const (
	// singularTol decides the rank of the 2x2 imaginary-component
	// matrix from its singular values.
	singularTol = 1e-10
	// realTol decides whether an imaginary part is negligible.
	realTol = 1e-8
)

// seedProbe is the fixed complex constant used to pin one coordinate
// while solving for the other. The exact value is arbitrary; it only
// has to stay off the measure-zero set of probe lines that coincide
// with a component of some input conic, so it is deliberately
// irrational-looking and shared by every call.
const seedProbe = 1.3161203548 + 0.7724867112i

// Fixed probe vectors completing the on-surface basis during
// Gram-Schmidt. Arbitrary but fixed, so results are deterministic.
var (
	surfaceProbeA = vec4{1.1380384, -0.6085276, 0.5356281, 0.9213618}
	surfaceProbeB = vec4{-0.2953856, 0.8901467, 1.0303178, -0.4723905}
)

// Solution is a real solution set extracted from one pencil member:
// a single point, or (when Line is true) the entire line through Point
// along the unit vector Direction.
type Solution struct {
	Point     Point
	Direction Point
	Line      bool
}

// vec4 is a vector in the 4 real dimensions (Re x, Re y, Im x, Im y).
type vec4 [4]float64

func (v vec4) add(o vec4) vec4 {
	return vec4{v[0] + o[0], v[1] + o[1], v[2] + o[2], v[3] + o[3]}
}

func (v vec4) sub(o vec4) vec4 {
	return vec4{v[0] - o[0], v[1] - o[1], v[2] - o[2], v[3] - o[3]}
}

func (v vec4) scale(s float64) vec4 {
	return vec4{s * v[0], s * v[1], s * v[2], s * v[3]}
}

func (v vec4) dot(o vec4) float64 {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2] + v[3]*o[3]
}

func (v vec4) norm() float64 {
	return math.Sqrt(v.dot(v))
}

// conicCoeffs are the six scalar coefficients of
// a·x² + b·xy + c·y² + d·x + e·y + f = 0, expanded from the matrix form
// by doubling the off-diagonal half-coefficients.
type conicCoeffs struct {
	a, b, c, d, e, f complex128
}

func coefficients(m Matrix3) conicCoeffs {
	return conicCoeffs{
		a: m[0], b: 2 * m[1], c: m[4],
		d: 2 * m[2], e: 2 * m[5], f: m[8],
	}
}

// eval evaluates the conic at a complex point.
func (k conicCoeffs) eval(x, y complex128) complex128 {
	return k.a*x*x + k.b*x*y + k.c*y*y + k.d*x + k.e*y + k.f
}

// seeds finds up to two complex seed solutions of the conic. It first
// pins x to the probe constant and solves the resulting quadratic in y;
// if that produces fewer than two roots it pins y instead, and as a
// last resort accepts a lone root from either axis (the tangential
// case). Probes whose equation degenerates to 0 = 0 are unusable.
func (k conicCoeffs) seeds() ([][2]complex128, error) {
	ys := SolveQuadratic(k.c, k.b*seedProbe+k.e, (k.a*seedProbe+k.d)*seedProbe+k.f)
	if ys.Kind == FiniteRoots && len(ys.Values) >= 2 {
		return [][2]complex128{{seedProbe, ys.Values[0]}, {seedProbe, ys.Values[1]}}, nil
	}
	xs := SolveQuadratic(k.a, k.b*seedProbe+k.d, (k.c*seedProbe+k.e)*seedProbe+k.f)
	if xs.Kind == FiniteRoots && len(xs.Values) >= 2 {
		return [][2]complex128{{xs.Values[0], seedProbe}, {xs.Values[1], seedProbe}}, nil
	}
	if ys.Kind == FiniteRoots && len(ys.Values) == 1 {
		return [][2]complex128{{seedProbe, ys.Values[0]}}, nil
	}
	if xs.Kind == FiniteRoots && len(xs.Values) == 1 {
		return [][2]complex128{{xs.Values[0], seedProbe}}, nil
	}
	return nil, ErrUnsolvableConic
}

// realSolutions extracts the real solution sets of a pencil member.
func realSolutions(m Matrix3) ([]Solution, error) {
	k := coefficients(m)
	seeds, err := k.seeds()
	if err != nil {
		return nil, err
	}
	sols := make([]Solution, 0, len(seeds))
	for _, seed := range seeds {
		if s, ok := k.slideToReal(seed[0], seed[1]); ok {
			sols = append(sols, s)
		}
	}
	return sols, nil
}

// slideToReal moves a complex seed solution along the conic surface to
// cancel its imaginary coordinates, classifying the outcome by the
// singular values of the basis's imaginary components.
func (k conicCoeffs) slideToReal(x, y complex128) (Solution, bool) {
	p := vec4{real(x), real(y), imag(x), imag(y)}

	// Holomorphic partials of the conic at the seed.
	fx := 2*k.a*x + k.b*y + k.d
	fy := k.b*x + 2*k.c*y + k.e

	// Real and imaginary gradients as 4-vectors, via Cauchy-Riemann.
	gradRe := vec4{real(fx), real(fy), -imag(fx), -imag(fy)}
	gradIm := vec4{imag(fx), imag(fy), real(fx), real(fy)}

	// Orthonormal basis of the gradient span (0 to 2 vectors).
	var span []vec4
	for _, g := range []vec4{gradRe, gradIm} {
		for _, u := range span {
			g = g.sub(u.scale(g.dot(u)))
		}
		if g.norm() > singularTol {
			span = append(span, g.scale(1/g.norm()))
		}
	}

	// Complete with the fixed probes: bs spans the directions that stay
	// on the conic to first order. A probe swallowed by the span leaves
	// a zero vector in its slot.
	var bs [2]vec4
	used := span
	for i, v := range [2]vec4{surfaceProbeA, surfaceProbeB} {
		for _, u := range used {
			v = v.sub(u.scale(v.dot(u)))
		}
		if v.norm() > singularTol {
			v = v.scale(1 / v.norm())
			used = append(used, v)
			bs[i] = v
		}
	}

	// The imaginary (Im x, Im y) components of the basis, as columns.
	t00, t01 := bs[0][2], bs[1][2]
	t10, t11 := bs[0][3], bs[1][3]

	var svd mat.SVD
	if !svd.Factorize(mat.NewDense(2, 2, []float64{t00, t01, t10, t11}), mat.SVDNone) {
		return Solution{}, false
	}
	vals := svd.Values(nil)
	rank := 0
	for _, v := range vals {
		if v > singularTol {
			rank++
		}
	}
	logger().Debug("classified extraction branch", "rank", rank)

	r0, r1 := p[2], p[3]
	switch rank {
	case 2:
		// Unique combination cancelling the imaginary residual.
		dt := t00*t11 - t01*t10
		s := (r1*t01 - r0*t11) / dt
		u := (r0*t10 - r1*t00) / dt
		q := p.add(bs[0].scale(s)).add(bs[1].scale(u))
		if math.Abs(q[2]) > realTol || math.Abs(q[3]) > realTol {
			return Solution{}, false
		}
		return Solution{Point: Pt(q[0], q[1])}, true

	case 1:
		// The two imaginary columns are parallel (one may be zero).
		// Cancel the residual along the dominant column, if possible.
		cx, cy, dom := t00, t10, bs[0]
		if t01*t01+t11*t11 > cx*cx+cy*cy {
			cx, cy, dom = t01, t11, bs[1]
		}
		den := cx*cx + cy*cy
		s := -(r0*cx + r1*cy) / den
		if math.Abs(r0+s*cx) > realTol || math.Abs(r1+s*cy) > realTol {
			return Solution{}, false
		}
		q := p.add(dom.scale(s))

		// A kernel combination has zero imaginary components, giving
		// the direction of an entire real line of solutions.
		k0, k1 := t01, -t00
		if t11*t11+t10*t10 > t01*t01+t00*t00 {
			k0, k1 = t11, -t10
		}
		d4 := bs[0].scale(k0).add(bs[1].scale(k1))
		dir := Pt(d4[0], d4[1])
		if dir.Length() <= realTol {
			return Solution{Point: Pt(q[0], q[1])}, true
		}
		return Solution{Point: Pt(q[0], q[1]), Direction: dir.Normalize(), Line: true}, true

	default:
		// No imaginary motion available: the seed either already is
		// real or never will be.
		if math.Abs(r0) <= realTol && math.Abs(r1) <= realTol {
			return Solution{Point: Pt(p[0], p[1])}, true
		}
		return Solution{}, false
	}
}
