// Package expr compiles textual expressions in a single variable x into
// solvable brent.Func values.
//
// Overview:
//
//   - New parses an expression string once (via govaluate) and returns a
//     closure that evaluates it at any x. Parse cost is paid up front; each
//     evaluation is a plain tree walk.
//   - A standard set of math builtins is available inside expressions:
//     sin, cos, tan, exp, log (natural), sqrt, abs, pow.
//   - Evaluation results must be numeric. Expressions that produce booleans
//     or strings fail with ErrNotNumeric at evaluation time, which the brent
//     package surfaces as an EvalError carrying the offending x.
//
// Example usage:
//
//	f, err := expr.New("exp(x) - 10")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := brent.FindRoot(f, 0, brent.DefaultOptions())
//	// res.Root ≈ ln(10) ≈ 2.302585
//
// Domain faults compose naturally with the solver: log(x) at a negative x
// yields NaN, which brent classifies as ErrNonFinite inside an EvalError.
//
// Thread safety:
//
//   - Funcs returned by New are safe for concurrent invocation; each
//     evaluation binds x through its own parameter map (one small allocation
//     per call).
package expr
