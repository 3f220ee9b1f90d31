package expr

import (
	"errors"
	"fmt"
	"math"

	"github.com/Knetic/govaluate"

	"github.com/katalvlaran/lvlroot/brent"
)

// Sentinel errors for expression compilation and evaluation.
var (
	// ErrNotNumeric indicates the expression evaluated to a non-numeric
	// value (boolean, string, …) at some x.
	ErrNotNumeric = errors.New("expr: expression did not evaluate to a number")

	// ErrBadArity indicates a builtin was called with the wrong number of
	// arguments, e.g. pow(x) or sqrt().
	ErrBadArity = errors.New("expr: wrong number of arguments to builtin")
)

// New compiles an expression in the variable x into a brent.Func.
//
// The expression grammar is govaluate's; on top of it the math builtins
// sin, cos, tan, exp, log, sqrt, abs and pow(base, exp) are registered.
// Parse errors are reported immediately; evaluation errors (unknown
// variables, non-numeric results) surface per call through the returned Func.
func New(input string) (brent.Func, error) {
	parsed, err := govaluate.NewEvaluableExpressionWithFunctions(input, builtins())
	if err != nil {
		return nil, fmt.Errorf("expr: parse %q: %w", input, err)
	}

	return func(x float64) (float64, error) {
		v, err := parsed.Evaluate(map[string]interface{}{"x": x})
		if err != nil {
			return 0, fmt.Errorf("expr: evaluate: %w", err)
		}

		y, ok := toFloat(v)
		if !ok {
			return 0, fmt.Errorf("%w: got %T", ErrNotNumeric, v)
		}

		return y, nil
	}, nil
}

// builtins returns the math functions exposed inside expressions. Built
// fresh per New call so the map is never shared across expressions.
func builtins() map[string]govaluate.ExpressionFunction {
	return map[string]govaluate.ExpressionFunction{
		"sin":  unary(math.Sin),
		"cos":  unary(math.Cos),
		"tan":  unary(math.Tan),
		"exp":  unary(math.Exp),
		"log":  unary(math.Log),
		"sqrt": unary(math.Sqrt),
		"abs":  unary(math.Abs),
		"pow": func(args ...interface{}) (interface{}, error) {
			if len(args) != 2 {
				return nil, fmt.Errorf("%w: pow wants 2, got %d", ErrBadArity, len(args))
			}
			base, ok1 := toFloat(args[0])
			exp, ok2 := toFloat(args[1])
			if !ok1 || !ok2 {
				return nil, ErrNotNumeric
			}

			return math.Pow(base, exp), nil
		},
	}
}

// unary adapts a one-argument math function to govaluate's calling shape.
func unary(fn func(float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("%w: want 1, got %d", ErrBadArity, len(args))
		}
		v, ok := toFloat(args[0])
		if !ok {
			return nil, ErrNotNumeric
		}

		return fn(v), nil
	}
}

// toFloat normalizes the numeric types govaluate may hand back.
func toFloat(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	default:
		return 0, false
	}
}
