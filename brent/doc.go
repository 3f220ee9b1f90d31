// Package brent finds a zero of a continuous real-valued function f(x)
// starting from a single seed point, combining an automatic bracket search
// with Brent's derivative-free refinement.
//
// Overview:
//
//   - FindRoot(f, seed, opts) is the canonical entry point. It chains two
//     phases: FindBracket expands outward from the seed until it traps a sign
//     change, then Solve refines that bracket with Brent's method (inverse
//     quadratic interpolation, secant steps, bisection fallback).
//   - Both phases are exported separately: callers that already hold a valid
//     bracket may feed it straight to Solve.
//   - f is a plain Func value: func(x float64) (float64, error). The error
//     return is the fault channel; NaN and ±Inf results are treated as faults
//     too, never as ordinary values.
//
// Bracket search (FindBracket):
//
//   - Evaluates f(seed) once. If |f(seed)| ≤ Tol the search ends immediately
//     with the degenerate bracket [seed, seed] — an exact hit.
//   - Otherwise it expands outward in both directions with a growing step
//     (Step, multiplied by Grow each round, golden ratio by default), probing
//     the right side before the left within every round. The first probe whose
//     value changes sign against the last point on its side closes the bracket.
//   - No point is ever evaluated twice; each side caches its frontier value.
//   - After MaxExpand rounds without a sign change the search fails with
//     ErrBracketNotFound.
//
// Solver (Solve):
//
//   - Operates on the classical a/b/c triple: b is the best approximation so
//     far, a the previous one, c an earlier point such that f(b) and f(c)
//     have opposite signs — so [b, c] always confines the root.
//   - Each iteration first tries an interpolation step: inverse quadratic when
//     a, b, c are distinct, secant otherwise. The step is accepted only when
//     it lands inside the bracket, moves far enough from the edge, and keeps
//     shrinking faster than bisection would; otherwise the bracket midpoint is
//     used. This is the termination guarantee: in the worst case every step
//     is a bisection.
//   - Convergence uses the blended tolerance tolAct = 2·eps·|b| + Tol/2, so
//     roots near zero and far from zero terminate equally well. The loop ends
//     when the half-width of [b, c] drops below tolAct or |f(b)| ≤ Tol.
//   - Every completed iteration is reported to the optional OnIteration hook
//     with the current triple and bracket width; returning an error from the
//     hook aborts the solve (ErrStopped halts it deliberately).
//
// Complexity:
//
//	– Bracket search: O(MaxExpand) evaluations worst case (two per round).
//	– Solve: superlinear (~1.84 order) on well-behaved functions; worst case
//	  O(MaxIter) with bisection-rate shrinkage, never slower.
//	– Space: O(1). The working state is a fixed triple of points; nothing is
//	  allocated on the hot path.
//
// Errors (sentinel):
//
//	– ErrInvalidTolerance  if Options.Tol ≤ 0.
//	– ErrBadIterationCap   if MaxIter ≤ 0 or MaxExpand ≤ 0.
//	– ErrBadStep           if Step ≤ 0 or Grow ≤ 1.
//	– ErrNilFunc           if f is nil.
//	– ErrBracketNotFound   if expansion exhausts both sides without a sign change.
//	– ErrEvaluation        if f returns an error or a non-finite value; the
//	                       concrete *EvalError carries the offending x.
//	– ErrNonFinite         wrapped inside EvalError for NaN/±Inf results.
//	– ErrInvalidBracket    if Solve receives endpoints of the same sign.
//	– ErrMaxIterations     if the iteration budget runs out; the Result still
//	                       holds the best estimate found (Converged=false).
//	– ErrStopped           if the OnIteration hook requested a halt.
//
// Example usage:
//
//	res, err := brent.FindRoot(
//	    func(x float64) (float64, error) { return math.Exp(x) - 10, nil },
//	    0, // seed
//	    brent.DefaultOptions(),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("root=%.6f after %d iterations\n", res.Root, res.Iterations)
//
// Thread safety:
//
//   - FindRoot, FindBracket and Solve hold no package state; every call works
//     on locals only. Concurrent calls are safe as long as the supplied Func
//     itself tolerates concurrent invocation.
package brent
