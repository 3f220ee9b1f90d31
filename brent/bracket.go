// Package brent - automatic bracket search.
//
// This file turns an arbitrary seed point into a validated two-sided bracket
// without assuming the caller knows the root's neighborhood.
//
// Design principles:
//   - Deterministic: fixed probing order (right before left) per round, so the
//     same inputs always trap the same bracket.
//   - Evaluation discipline: every point is evaluated exactly once; each side
//     caches its frontier value between rounds.
//   - Strict faults: any error or non-finite value from f terminates the
//     search immediately with an *EvalError.
package brent

import "math"

// FindBracket expands outward from seed until it finds an interval whose
// endpoint values have opposite signs, or until MaxExpand rounds are spent.
//
// Contracts:
//   - f must be non-nil; opts must pass validation.
//   - If |f(seed)| ≤ opts.Tol the degenerate bracket [seed, seed] is returned
//     and no further evaluation happens.
//   - Otherwise each round probes right then left with the current step and
//     multiplies the step by opts.Grow. The first probe whose value changes
//     sign against its side's frontier closes the bracket; an exact zero at a
//     probe (fr == 0) closes it too, since FA·FB ≤ 0 still holds.
//
// Errors: ErrNilFunc, option sentinels, ErrBracketNotFound, or an *EvalError
// (matched by ErrEvaluation) from any failed evaluation.
//
// Complexity: O(MaxExpand) evaluations worst case (two per round), O(1) space.
func FindBracket(f Func, seed float64, opts Options) (Bracket, error) {
	if f == nil {
		return Bracket{}, ErrNilFunc
	}
	if err := opts.validate(); err != nil {
		return Bracket{}, err
	}

	fseed, err := eval(f, seed)
	if err != nil {
		return Bracket{}, err
	}
	if math.Abs(fseed) <= opts.Tol {
		// Exact hit at the seed: degenerate bracket, zero solver work needed.
		return Bracket{A: seed, B: seed, FA: fseed, FB: fseed}, nil
	}

	var (
		hi, fhi = seed, fseed // right frontier and its cached value
		lo, flo = seed, fseed // left frontier and its cached value
		step    = opts.Step   // grows by opts.Grow each round
		x, fx   float64       // probe point under test
	)

	for k := 0; k < opts.MaxExpand; k++ {
		// Right side first: this pins the expansion policy, so symmetric
		// functions (x²−2 from seed 0) deterministically yield the right root.
		x = hi + step
		fx, err = eval(f, x)
		if err != nil {
			return Bracket{}, err
		}
		if opposite(fhi, fx) {
			return Bracket{A: hi, B: x, FA: fhi, FB: fx}, nil
		}
		hi, fhi = x, fx

		// Left side with the same step.
		x = lo - step
		fx, err = eval(f, x)
		if err != nil {
			return Bracket{}, err
		}
		if opposite(flo, fx) {
			return Bracket{A: x, B: lo, FA: fx, FB: flo}, nil
		}
		lo, flo = x, fx

		step *= opts.Grow
	}

	return Bracket{}, ErrBracketNotFound
}

// opposite reports whether fa and fb confine a root: a strict sign change,
// or an exact zero at the new point. Sign comparison, not a product, so
// extreme magnitudes cannot overflow or underflow the test.
func opposite(fa, fb float64) bool {
	return fb == 0 || (fa > 0) != (fb > 0)
}
