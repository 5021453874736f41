// Package conic computes the real intersection points of two conic
// sections given as symmetric 3x3 matrices in homogeneous coordinates.
//
// # Overview
//
// conic is a pure Go computational-geometry kernel in the GoGPU family,
// built to serve path boolean operations in gogpu/gg and similar shape
// layers. It implements the classical "pencil of conics" method: the
// pencil λ·A+B of two conics A, B contains up to three degenerate
// members, each of which factors into a pair of (possibly complex)
// lines; intersecting those lines pairwise recovers the common points
// of A and B in closed form, with no iterative root polishing.
//
// # Quick Start
//
//	import "github.com/gogpu/conic"
//
//	a := conic.Circle(conic.Pt(0, 0), 1)
//	b := conic.Circle(conic.Pt(1, 0), 1)
//
//	res, err := conic.Intersect(a, b)
//	if err != nil {
//		// an unanticipated degeneracy; see ErrUnsolvableConic
//	}
//	for _, p := range res.Points {
//		// p satisfies both conic equations
//	}
//
// The intermediate algebra runs over complex128: even for real inputs
// the pencil parameters and line coefficients are generally complex,
// and real points are recovered at the end by a tolerance check. The
// closed-form linear, quadratic and cubic solvers this requires are
// exported as SolveLinear, SolveQuadratic and SolveCubic.
//
// # Concurrency
//
// Every function in this package is a pure function over value types.
// There is no shared mutable state, so all of them are safe for
// concurrent use from any number of goroutines.
//
// # Diagnostics
//
// By default the package produces no output. Call SetLogger to receive
// a structured trace of the pencil decomposition on a *slog.Logger.
package conic

// Version is the current version of the library
const Version = "0.1.0"
