package brent

import (
	"errors"
	"fmt"
)

// Sentinel errors for bracket search and solver execution.
var (
	// ErrInvalidTolerance indicates Options.Tol is zero or negative.
	ErrInvalidTolerance = errors.New("brent: tolerance must be positive")

	// ErrBadIterationCap indicates MaxIter or MaxExpand is zero or negative.
	ErrBadIterationCap = errors.New("brent: iteration caps must be positive")

	// ErrBadStep indicates Step ≤ 0 or Grow ≤ 1, which would stall expansion.
	ErrBadStep = errors.New("brent: expansion step must be positive and growth factor above 1")

	// ErrNilFunc indicates a nil Func was supplied.
	ErrNilFunc = errors.New("brent: function is nil")

	// ErrBracketNotFound indicates expansion exhausted both sides of the seed
	// without observing a sign change.
	ErrBracketNotFound = errors.New("brent: no sign change found within expansion range")

	// ErrEvaluation indicates the supplied function misbehaved. The concrete
	// error is always an *EvalError carrying the offending input.
	ErrEvaluation = errors.New("brent: function evaluation failed")

	// ErrNonFinite indicates an evaluation produced NaN or ±Inf.
	ErrNonFinite = errors.New("brent: function returned a non-finite value")

	// ErrInvalidBracket indicates Solve received endpoints whose function
	// values share a sign, so no root is confined.
	ErrInvalidBracket = errors.New("brent: bracket endpoints must have values of opposite sign")

	// ErrMaxIterations indicates the solver ran out of iteration budget.
	// The accompanying Result holds the best estimate found so far.
	ErrMaxIterations = errors.New("brent: maximum iterations exceeded")

	// ErrStopped indicates the OnIteration hook requested a halt.
	ErrStopped = errors.New("brent: stopped by callback")
)

// EvalError reports a failed function evaluation together with the input
// that triggered it, so callers can diagnose domain faults (log of a
// negative number, overflow, a failing backend, …).
//
// errors.Is(err, ErrEvaluation) matches every EvalError; errors.Is against
// ErrNonFinite matches only NaN/±Inf results.
type EvalError struct {
	// X is the abscissa at which the evaluation failed.
	X float64

	// Err is the underlying cause: the Func's own error, or ErrNonFinite.
	Err error
}

// Error implements the error interface.
func (e *EvalError) Error() string {
	return fmt.Sprintf("brent: evaluation failed at x=%g: %v", e.X, e.Err)
}

// Unwrap exposes both the taxonomy sentinel and the underlying cause.
func (e *EvalError) Unwrap() []error {
	return []error{ErrEvaluation, e.Err}
}
