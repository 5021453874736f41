package conic

import "math/cmplx"

// Closed-form solvers for polynomials of degree 1-3 with complex
// coefficients. Even for real inputs the intermediate discriminants go
// negative, so everything runs over complex128 and realness is decided
// by the caller.

// RootKind classifies the solution set of a polynomial equation.
type RootKind int

const (
	// NoRoots means no value satisfies the equation.
	NoRoots RootKind = iota
	// AllRoots means every value satisfies the equation (0 = 0).
	AllRoots
	// FiniteRoots means the equation has the finite solution set in Values.
	FiniteRoots
)

// Roots is the solution set of a polynomial equation: either empty,
// all of C, or a finite list of values (with multiplicity, in no
// particular order).
type Roots struct {
	Kind   RootKind
	Values []complex128
}

func noRoots() Roots  { return Roots{Kind: NoRoots} }
func allRoots() Roots { return Roots{Kind: AllRoots} }

func finite(vs ...complex128) Roots { return Roots{Kind: FiniteRoots, Values: vs} }

// SolveLinear solves a·x + b = 0.
func SolveLinear(a, b complex128) Roots {
	if a == 0 {
		if b == 0 {
			return allRoots()
		}
		return noRoots()
	}
	return finite(-b / a)
}

// SolveQuadratic solves a·x² + b·x + c = 0, delegating to SolveLinear
// when a = 0. When a ≠ 0 it always returns two roots, equal for a zero
// discriminant.
func SolveQuadratic(a, b, c complex128) Roots {
	if a == 0 {
		return SolveLinear(b, c)
	}
	sq := cmplx.Sqrt(b*b - 4*a*c)
	return finite((-b+sq)/(2*a), (-b-sq)/(2*a))
}

// SolveCubic solves a·x³ + b·x² + c·x + d = 0 by Cardano's method,
// delegating to SolveQuadratic when a = 0. Roots are returned with
// multiplicity; an exact double root appears as two identical values.
//
// A triple root (Δ0 = Δ1 = 0 exactly) reports as NoRoots. Intersect
// relies on this: the pencil cubic of two coincident conics collapses
// to k·(λ-r)³, and an empty root set is its signal for that case.
func SolveCubic(a, b, c, d complex128) Roots {
	if a == 0 {
		return SolveQuadratic(b, c, d)
	}

	d0 := b*b - 3*a*c
	d1 := 2*b*b*b - 9*a*b*c + 27*a*a*d
	if d0 == 0 && d1 == 0 {
		return noRoots()
	}

	// Δ1² = 4Δ0³ with Δ0 ≠ 0: one double and one simple root, produced
	// exactly equal so callers can deduplicate with ==.
	disc := d1*d1 - 4*d0*d0*d0
	if disc == 0 {
		double := (9*a*d - b*c) / (2 * d0)
		simple := (4*a*b*c - 9*a*a*d - b*b*b) / (a * d0)
		return finite(double, double, simple)
	}

	sq := cmplx.Sqrt(disc)
	t := (d1 + sq) / 2
	if t == 0 {
		t = (d1 - sq) / 2
	}
	var roots [3]complex128
	for i, cr := range cubeRoots(t) {
		// The Δ0/C term vanishes identically when Δ0 = 0; C ≠ 0 is
		// guaranteed by the branch choice above.
		roots[i] = (b + cr + d0/cr) / (-3 * a)
	}
	return finite(roots[:]...)
}
