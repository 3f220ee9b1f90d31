// Package brent - solver loop and the FindRoot entry point.
//
// The refinement follows the classical algorithm of Brent as presented in
// G. Forsythe, M. Malcolm, C. Moler, "Computer Methods for Mathematical
// Computations" (the zeroin procedure). At every step the solver operates on
// three abscissae:
//
//	b - the last and the best approximation to the root
//	a - the previous approximation
//	c - an earlier approximation such that
//	    1) |f(b)| ≤ |f(c)|
//	    2) f(b) and f(c) have opposite signs, i.e. b and c confine the root
//
// Each iteration picks between two candidate steps: the bisection midpoint of
// [b, c], and an interpolated point (inverse quadratic when a, b, c are all
// distinct, secant otherwise). The interpolation is accepted only when it
// lies within the current interval and not too close to its boundaries, and
// when the preceding step shrank fast enough; the bisection result is used
// in every other case. That fallback is what guarantees termination.
//
// Design principles:
//   - Deterministic: no randomness, no time dependence; identical inputs give
//     bit-identical results.
//   - Strict sentinels: only errors from errors.go; the offending abscissa
//     travels inside *EvalError.
//   - Hot-path discipline: the working state is one triple of points held in
//     locals; no allocations per iteration (the Iteration record is only
//     materialized when a hook is installed).
package brent

import "math"

// epsilon is the machine epsilon for float64, computed once the same way the
// reference zeroin does.
var epsilon = math.Nextafter(1.0, 2.0) - 1.0

// FindRoot finds x with f(x) ≈ 0 starting from a single seed point: it runs
// FindBracket to trap a sign change around the seed, then refines the bracket
// with Solve. This is the canonical entry point.
//
// Contracts:
//   - f must be non-nil; opts must pass validation (see Options).
//   - A seed already within tolerance returns immediately with Iterations==0
//     and no evaluation beyond the seed check.
//
// Errors: every sentinel of FindBracket and Solve, unchanged — the caller can
// distinguish ErrBracketNotFound, ErrEvaluation and ErrMaxIterations.
func FindRoot(f Func, seed float64, opts Options) (Result, error) {
	br, err := FindBracket(f, seed, opts)
	if err != nil {
		return Result{}, err
	}

	return Solve(f, br, opts)
}

// Solve refines a validated bracket down to a root estimate.
//
// Contracts:
//   - br.FA and br.FB must be f(br.A) and f(br.B); endpoints of the same
//     (non-zero) sign yield ErrInvalidBracket.
//   - A degenerate bracket returns its point unchanged, converged, with zero
//     iterations.
//   - Convergence: half-width of the confining interval ≤ tolAct, or
//     |f(b)| ≤ opts.Tol, where tolAct = 2·eps·|b| + opts.Tol/2.
//   - On ErrMaxIterations the returned Result carries the best estimate seen
//     so far (Converged=false); the error and the estimate arrive together.
//
// Complexity: superlinear on well-conditioned functions, at worst one
// bisection per iteration; O(1) space.
func Solve(f Func, br Bracket, opts Options) (Result, error) {
	if f == nil {
		return Result{}, ErrNilFunc
	}
	if err := opts.validate(); err != nil {
		return Result{}, err
	}
	if br.Degenerate() {
		return Result{Root: br.A, FRoot: br.FA, Converged: true}, nil
	}
	if br.FA != 0 && br.FB != 0 && (br.FA > 0) == (br.FB > 0) {
		return Result{}, ErrInvalidBracket
	}

	var (
		a, fa = br.A, br.FA // previous approximation
		b, fb = br.B, br.FB // best approximation
		c, fc = br.A, br.FA // counterpoint confining the root
		err   error

		prevStep float64 // step taken at the previous iteration
		newStep  float64 // step to take at this iteration
		tolAct   float64 // effective tolerance at the current b
		p, q     float64 // interpolation numerator/denominator, p/q = step
		cb       float64 // c − b
		t1, t2   float64 // value ratios feeding the interpolation
	)

	for k := 1; k <= opts.MaxIter; k++ {
		prevStep = b - a

		// Keep b the endpoint with the smaller |f|; c confines from the other side.
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}

		tolAct = 2*epsilon*math.Abs(b) + opts.Tol/2
		newStep = (c - b) / 2

		if math.Abs(newStep) <= tolAct || math.Abs(fb) <= opts.Tol {
			return Result{Root: b, FRoot: fb, Iterations: k - 1, Converged: true}, nil
		}

		// Try an interpolation step when the previous step was large enough
		// and b actually improved on a.
		bisect := true
		if math.Abs(prevStep) >= tolAct && math.Abs(fa) > math.Abs(fb) {
			cb = c - b
			if a == c {
				// Only two distinct points: secant step.
				t1 = fb / fa
				p = cb * t1
				q = 1.0 - t1
			} else {
				// Three distinct points: inverse quadratic interpolation.
				q = fa / fc
				t1 = fb / fc
				t2 = fb / fa
				p = t2 * (cb*q*(q-t1) - (b-a)*(t1-1.0))
				q = (q - 1.0) * (t1 - 1.0) * (t2 - 1.0)
			}
			if p > 0 {
				q = -q
			} else {
				p = -p
			}
			// Accept only if the step stays well inside [b, c] and keeps
			// shrinking at least half as fast as the previous step did.
			if p < 0.75*cb*q-math.Abs(tolAct*q)/2 && p < math.Abs(prevStep*q/2) {
				newStep = p / q
				bisect = false
			}
		}

		// Never step by less than the effective tolerance.
		if math.Abs(newStep) < tolAct {
			if newStep > 0 {
				newStep = tolAct
			} else {
				newStep = -tolAct
			}
		}

		a, fa = b, fb
		b += newStep
		fb, err = eval(f, b)
		if err != nil {
			return Result{Root: a, FRoot: fa, Iterations: k}, err
		}

		// Restore the sign-change invariant: if the new b shares c's sign,
		// the old b (now a) becomes the counterpoint.
		if (fb > 0 && fc > 0) || (fb < 0 && fc < 0) {
			c, fc = a, fa
		}

		if opts.OnIteration != nil {
			herr := opts.OnIteration(Iteration{
				K:      k,
				X:      b,
				FX:     fb,
				C:      c,
				FC:     fc,
				Width:  math.Abs(c - b),
				Bisect: bisect,
			})
			if herr != nil {
				return Result{Root: b, FRoot: fb, Iterations: k}, herr
			}
		}
	}

	// Budget exhausted: hand back whichever confining endpoint is best.
	if math.Abs(fc) < math.Abs(fb) {
		b, fb = c, fc
	}

	return Result{Root: b, FRoot: fb, Iterations: opts.MaxIter}, ErrMaxIterations
}
