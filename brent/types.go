// Package brent defines the function, bracket and option types shared by
// the bracket search and the solver loop.
package brent

import (
	"math"
)

// Func is a real-valued function of one variable. It may be evaluated any
// number of times and is assumed pure and continuous over the region of
// interest. A non-nil error marks the evaluation as failed; NaN and ±Inf
// results are equivalent to a failure and never propagate as values.
type Func func(x float64) (float64, error)

// Bracket is an interval [A, B] with cached function values such that
// FA·FB ≤ 0 — by the intermediate value theorem a continuous function has
// at least one root inside. A degenerate bracket (A == B) signals that A
// itself already satisfies the tolerance.
type Bracket struct {
	A, B   float64 // endpoints, not necessarily ordered
	FA, FB float64 // cached f(A), f(B)
}

// Degenerate reports whether the bracket collapsed onto a single point.
func (br Bracket) Degenerate() bool { return br.A == br.B }

// Width returns |B − A|.
func (br Bracket) Width() float64 { return math.Abs(br.B - br.A) }

// Iteration is a snapshot of one completed solver iteration, delivered to
// the OnIteration hook. X is the best approximation so far and [X, C]
// confines the root (FX·FC ≤ 0 always holds).
type Iteration struct {
	K      int     `json:"k"`      // 1-based iteration counter
	X      float64 `json:"x"`      // current best estimate
	FX     float64 `json:"fx"`     // f(X)
	C      float64 `json:"c"`      // opposite bracket endpoint
	FC     float64 `json:"fc"`     // f(C)
	Width  float64 `json:"width"`  // |C − X|
	Bisect bool    `json:"bisect"` // true when this step fell back to bisection
}

// Result is the outcome of Solve or FindRoot.
//
// On ErrMaxIterations the Result is still populated with the best estimate
// found so far and Converged is false, so callers may choose to accept an
// approximate answer.
type Result struct {
	Root       float64 // best root estimate
	FRoot      float64 // f(Root)
	Iterations int     // solver iterations performed (0 for an exact seed hit)
	Converged  bool    // true when a tolerance criterion was met
}

// Options configures bracket search and solver behavior.
//
// Fields:
//   - Tol         — absolute convergence tolerance; must be > 0. Used both as
//     the |f| threshold and, blended with machine epsilon, as the minimum
//     step and bracket-width threshold (tolAct = 2·eps·|x| + Tol/2).
//   - MaxIter     — solver iteration cap; must be > 0.
//   - MaxExpand   — bracket expansion rounds (each probes both sides); must be > 0.
//   - Step        — initial expansion step away from the seed; must be > 0.
//   - Grow        — per-round step multiplier; must be > 1. Default is the
//     golden ratio, giving exponential reach without overshooting wildly.
//   - OnIteration — optional observer called after every completed solver
//     iteration. Returning an error aborts the solve; return ErrStopped for
//     a deliberate halt.
//
// Example:
//
//	opts := brent.DefaultOptions()
//	opts.Tol = 1e-12
//	opts.OnIteration = func(it brent.Iteration) error {
//	  fmt.Printf("k=%d x=%.12f width=%.3g\n", it.K, it.X, it.Width)
//	  return nil
//	}
//	res, err := brent.FindRoot(f, 0, opts)
type Options struct {
	Tol         float64
	MaxIter     int
	MaxExpand   int
	Step        float64
	Grow        float64
	OnIteration func(Iteration) error
}

// DefaultOptions returns an Options with sensible defaults:
//   - Tol:       1e-8
//   - MaxIter:   100
//   - MaxExpand: 32
//   - Step:      0.1
//   - Grow:      math.Phi (golden-ratio growth)
//   - OnIteration: nil (no observation)
func DefaultOptions() Options {
	return Options{
		Tol:       1e-8,
		MaxIter:   100,
		MaxExpand: 32,
		Step:      0.1,
		Grow:      math.Phi,
	}
}

// validate checks Options against the sentinel taxonomy. Staged: cheapest
// checks first, one sentinel per failure class.
func (o Options) validate() error {
	if o.Tol <= 0 || math.IsNaN(o.Tol) || math.IsInf(o.Tol, 0) {
		return ErrInvalidTolerance
	}
	if o.MaxIter <= 0 || o.MaxExpand <= 0 {
		return ErrBadIterationCap
	}
	if o.Step <= 0 || o.Grow <= 1 || math.IsNaN(o.Step) || math.IsNaN(o.Grow) {
		return ErrBadStep
	}

	return nil
}

// eval runs f at x and normalizes every failure mode into an *EvalError:
// a returned error keeps its cause, NaN/±Inf map to ErrNonFinite.
func eval(f Func, x float64) (float64, error) {
	y, err := f(x)
	if err != nil {
		return 0, &EvalError{X: x, Err: err}
	}
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, &EvalError{X: x, Err: ErrNonFinite}
	}

	return y, nil
}
